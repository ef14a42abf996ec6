package busybeaver

// MaxStepsTranslatedCycler is the reference step budget for the translated
// cycler decider. A second attempt at 2*MaxStepsTranslatedCycler is the
// documented retry value for machines already known to be worth the extra
// budget.
const MaxStepsTranslatedCycler = 1000

// snapshot is a frozen machine configuration recorded at a boundary-
// extension event, for later comparison against a future event in the same
// breakpoint bucket. It owns its own copy of the tape window, since the
// live tape keeps mutating after the snapshot is taken.
type snapshot struct {
	step      int
	tape      []Symbol
	state     StateId
	head      int
	tapeStart int // logical coordinate of tape[0]
}

func newSnapshot(step int, m *Simulator) snapshot {
	window, tapeStart := m.tape.window()
	return snapshot{
		step:      step,
		tape:      window,
		state:     m.state,
		head:      m.tape.Head(),
		tapeStart: tapeStart,
	}
}

// slice converts a logical half-open range [lo, hi) into the snapshot's
// stored window and returns it, or reports false if any part of the range
// falls outside the window that was actually stored.
func (s snapshot) slice(lo, hi int) ([]Symbol, bool) {
	start, end := lo-s.tapeStart, hi-s.tapeStart
	if start < 0 || end > len(s.tape) {
		return nil, false
	}
	return s.tape[start:end], true
}

// breakpointKey identifies a breakpoint bucket: the direction of the
// boundary extension, the post-transition state, and the symbol written.
// There are 2*5*2 = 20 distinct keys.
type breakpointKey struct {
	dir   Direction
	state StateId
	sym   Symbol
}

func (k breakpointKey) index() int {
	return int(k.dir)*10 + k.state.index()*2 + int(k.sym)
}

const breakpointBucketCount = 2 * 5 * 2

// DecideTranslatedCycler runs the translated cycler decider at the
// reference budget of MaxStepsTranslatedCycler steps.
func DecideTranslatedCycler(table TransitionTable) bool {
	return DecideTranslatedCyclerBudget(table, MaxStepsTranslatedCycler)
}

// DecideTranslatedCyclerBudget returns true iff it proves table never
// halts within maxSteps steps, by tracking boundary-extension events
// (steps that push the head one cell beyond the currently stored tape
// window) and comparing the tape profile since each such event against
// every earlier event that extended the tape on the same side, left the
// machine in the same state, and wrote the same symbol onto the newly
// seen cell. A match proves the machine is in a translated cycle: its
// configuration recurs shifted by a fixed lateral displacement.
func DecideTranslatedCyclerBudget(table TransitionTable, maxSteps int) bool {
	m := NewSimulator(table)

	var buckets [breakpointBucketCount][]snapshot
	headHistory := make([]int, 0, maxSteps)

	for s := 0; s < maxSteps; s++ {
		headHistory = append(headHistory, m.tape.Head())

		t := m.Transition()
		if t.Halts() {
			return false
		}

		isBreakpoint := (t.Dir == Left && m.tape.headOffset == 0) ||
			(t.Dir == Right && m.tape.headOffset+1 == m.tape.Len())

		if isBreakpoint {
			key := breakpointKey{dir: t.Dir, state: t.NextState, sym: t.Out}
			bucket := &buckets[key.index()]
			current := newSnapshot(s, m)

			for _, prev := range *bucket {
				if translatedRangesMatch(t.Dir, headHistory, prev, current) {
					return true
				}
			}
			*bucket = append(*bucket, current)
		}

		m.Step()
	}
	return false
}

// translatedRangesMatch compares the tape profile covered since prev's
// step against the equivalent, shifted profile at current, excluding the
// cell under the head (already equal by construction: both breakpoints
// wrote the same symbol when crossing into the new cell).
func translatedRangesMatch(dir Direction, headHistory []int, prev, current snapshot) bool {
	var prevLo, prevHi, curLo, curHi int

	if dir == Right {
		leftmost := minSince(headHistory, prev.step)
		delta := current.head - leftmost
		curLo, curHi = leftmost, current.head
		prevLo, prevHi = prev.head-delta, prev.head
	} else {
		rightmost := maxSince(headHistory, prev.step)
		delta := rightmost - current.head
		curLo, curHi = current.head+1, rightmost+1
		prevLo, prevHi = prev.head+1, prev.head+1+delta
	}

	curSlice, ok := current.slice(curLo, curHi)
	if !ok {
		panic("busybeaver: current snapshot slice extraction must always succeed")
	}
	prevSlice, ok := prev.slice(prevLo, prevHi)
	if !ok {
		return false
	}
	return symbolsEqual(curSlice, prevSlice)
}

func minSince(history []int, sinceStep int) int {
	m := history[sinceStep]
	for _, h := range history[sinceStep:] {
		if h < m {
			m = h
		}
	}
	return m
}

func maxSince(history []int, sinceStep int) int {
	m := history[sinceStep]
	for _, h := range history[sinceStep:] {
		if h > m {
			m = h
		}
	}
	return m
}

func symbolsEqual(a, b []Symbol) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
