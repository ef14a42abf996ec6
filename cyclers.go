package busybeaver

// MaxStepsCycler bounds the simple cycler decider's search. The decider
// observes MaxStepsCycler+1 configurations (step range 0..=MaxStepsCycler),
// preserved as-is from the reference implementation.
const MaxStepsCycler = 1000

// normalizedConfig is the equality key the simple cycler decider compares:
// the stored tape with its leading zeros stripped, the current state, and
// the logical head/tape-start coordinates. Two visits that differ only in
// how much pre-explored blank tape sits to the left of the action compare
// equal.
type normalizedConfig struct {
	tape       string
	state      StateId
	head       int
	tapeStart  int
}

func normalize(m *Simulator) normalizedConfig {
	trimmed, tapeStart := m.tape.trimmed()
	return normalizedConfig{
		tape:      symbolsToString(trimmed),
		state:     m.state,
		head:      m.tape.Head(),
		tapeStart: tapeStart,
	}
}

func symbolsToString(syms []Symbol) string {
	buf := make([]byte, len(syms))
	for i, s := range syms {
		buf[i] = byte(s)
	}
	return string(buf)
}

// DecideCycler returns true iff it proves table never halts, by running
// the machine up to MaxStepsCycler steps and checking whether its
// normalized configuration ever recurs exactly.
//
// A machine that halts within the budget is not a proof of non-halting;
// DecideCycler returns false for it rather than letting Step's undefined
// post-halt behavior corrupt the visited set.
func DecideCycler(table TransitionTable) bool {
	m := NewSimulator(table)
	seen := make(map[normalizedConfig]struct{}, MaxStepsCycler)

	for s := 0; s <= MaxStepsCycler; s++ {
		cfg := normalize(m)
		if _, ok := seen[cfg]; ok {
			return true
		}
		seen[cfg] = struct{}{}

		if m.Step() == Halted {
			return false
		}
	}
	return false
}
