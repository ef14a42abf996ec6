package busybeaver

// StepOutcome reports what happened in one call to Simulator.Step.
type StepOutcome int

const (
	Continued StepOutcome = iota
	Halted
)

// Simulator holds one machine's mutable execution state: its tape, head,
// and current state, driven against an immutable TransitionTable.
//
// A Simulator is single-use and single-threaded: construct one with
// NewSimulator, drive it with Step, and discard it. It holds no reference
// to anything the caller needs to share with another machine.
type Simulator struct {
	table TransitionTable
	tape  Tape
	state StateId
}

// NewSimulator returns a fresh Simulator for table: an empty one-cell
// tape, head at offset 0, current state A.
func NewSimulator(table TransitionTable) *Simulator {
	return &Simulator{
		table: table,
		tape:  newTape(),
		state: A,
	}
}

// State returns the machine's current state.
func (m *Simulator) State() StateId {
	return m.state
}

// Head returns the head's logical position (may be negative).
func (m *Simulator) Head() int {
	return m.tape.Head()
}

// Transition returns the transition that the next Step would execute,
// without executing it.
func (m *Simulator) Transition() Transition {
	return m.table.At(m.state, m.tape.At())
}

// Step executes exactly one transition: look up the rule for the
// current (state, symbol under head); if it would halt, return Halted
// without modifying anything; otherwise write the output symbol, move
// the head (extending the tape by one cell on demand), adopt the new
// state, and return Continued.
func (m *Simulator) Step() StepOutcome {
	t := m.Transition()
	if t.Halts() {
		return Halted
	}
	m.tape.Write(t.Out)
	m.state = t.NextState
	m.tape.Move(t.Dir)
	return Continued
}
