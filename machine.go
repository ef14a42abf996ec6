// Package busybeaver implements the tape/head simulator and the two
// geometric-loop deciders (simple cycler, translated cycler) used to prove
// that a 5-state, 2-symbol Turing machine never halts.
//
// The package knows nothing about where machine records come from; callers
// decode a TransitionTable (see Decode) from whatever source they have and
// hand it to DecideCycler or DecideTranslatedCycler.
package busybeaver

import "fmt"

// Symbol is a single tape cell value: 0 or 1.
type Symbol uint8

// Direction is the direction the head moves after writing a symbol.
type Direction uint8

const (
	Right Direction = 0
	Left  Direction = 1
)

func (d Direction) String() string {
	if d == Left {
		return "L"
	}
	return "R"
}

// StateId identifies one of the five machine states, or Undef as the
// halt sentinel carried in a Transition's NextState field.
type StateId uint8

const (
	Undef StateId = 0
	A     StateId = 1
	B     StateId = 2
	C     StateId = 3
	D     StateId = 4
	E     StateId = 5
)

func (s StateId) String() string {
	names := [...]string{"Undef", "A", "B", "C", "D", "E"}
	if int(s) < len(names) {
		return names[s]
	}
	return fmt.Sprintf("StateId(%d)", uint8(s))
}

// index returns the 0..4 offset used to address TransitionTable rows.
// It panics if called on Undef, which never indexes a row.
func (s StateId) index() int {
	if s < A || s > E {
		panic(fmt.Sprintf("busybeaver: %v is not an indexable state", s))
	}
	return int(s) - 1
}

// Transition is the action taken for one (state, symbol) pair: write
// Out, move Dir, and become NextState — or, if NextState is Undef, halt
// without writing or moving.
type Transition struct {
	Out       Symbol
	Dir       Direction
	NextState StateId
}

// Halts reports whether executing this transition halts the machine.
func (t Transition) Halts() bool {
	return t.NextState == Undef
}

// TransitionTable is the complete, immutable rule set for one machine:
// exactly 10 transitions, indexed by (state index * 2 + symbol).
type TransitionTable struct {
	rows [10]Transition
}

// At returns the transition for the given state and symbol under read.
func (t TransitionTable) At(state StateId, sym Symbol) Transition {
	return t.rows[state.index()*2+int(sym)]
}

// RecordSize is the on-disk size, in bytes, of one packed machine record.
const RecordSize = 30

// Decode parses a 30-byte packed machine record into a TransitionTable.
// The record holds 10 consecutive 3-byte transitions in the fixed order
// A0, A1, B0, B1, C0, C1, D0, D1, E0, E1, each (out, dir, next_state).
//
// A malformed transition byte (dir not in {0,1}, next_state not in
// {0..5}) is a data-integrity bug in the source record, not a recoverable
// condition, and Decode panics rather than returning a sentinel error.
func Decode(record []byte) TransitionTable {
	if len(record) != RecordSize {
		panic(fmt.Sprintf("busybeaver: record must be %d bytes, got %d", RecordSize, len(record)))
	}

	var t TransitionTable
	for i := range t.rows {
		out, dir, next := record[i*3], record[i*3+1], record[i*3+2]
		if out > 1 {
			panic(fmt.Sprintf("busybeaver: transition %d: out byte %d out of range", i, out))
		}
		if dir > 1 {
			panic(fmt.Sprintf("busybeaver: transition %d: dir byte %d out of range", i, dir))
		}
		if next > 5 {
			panic(fmt.Sprintf("busybeaver: transition %d: next_state byte %d out of range", i, next))
		}
		t.rows[i] = Transition{
			Out:       Symbol(out),
			Dir:       Direction(dir),
			NextState: StateId(next),
		}
	}
	return t
}
