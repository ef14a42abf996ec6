package busybeaver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// haltingTable returns a table whose only reachable transition halts
// immediately on A0.
func haltingTable() TransitionTable {
	return Decode(record30([10][3]byte{
		{0, 0, 0}, // A0 = halt
	}))
}

// rightForeverTable returns a table that moves right forever writing 1s,
// regardless of the symbol under the head (spec.md §8's boundary example).
func rightForeverTable() TransitionTable {
	return Decode(record30([10][3]byte{
		{1, 0, 1}, // A0 = (1, R, A)
		{1, 0, 1}, // A1 = (1, R, A)
	}))
}

func TestSimulator_HaltsImmediately(t *testing.T) {
	m := NewSimulator(haltingTable())
	require.Equal(t, Halted, m.Step())
	assert.Equal(t, A, m.State(), "state must not change on halt")
	assert.Equal(t, 0, m.Head())
}

func TestSimulator_StepGrowsTapeOnDemand(t *testing.T) {
	m := NewSimulator(rightForeverTable())

	for i := 0; i < 20; i++ {
		outcome := m.Step()
		require.Equal(t, Continued, outcome)

		assert.GreaterOrEqual(t, m.tape.headOffset, 0)
		assert.Less(t, m.tape.headOffset, m.tape.Len())
		assert.GreaterOrEqual(t, m.tape.Len(), 1)
	}
	assert.Equal(t, 20, m.Head())
}

func TestSimulator_HeadHistoryMatchesLogicalPosition(t *testing.T) {
	// A two-state oscillator that never grows the tape past 2 cells and
	// bounces the head between offsets 0 and 1.
	table := Decode(record30([10][3]byte{
		{0, 0, 2}, // A0 = (0, R, B)
		{0, 0, 0}, // A1 = halt (unreached)
		{0, 1, 1}, // B0 = (0, L, A)
	}))
	m := NewSimulator(table)

	history := []int{m.Head()}
	for i := 0; i < 6; i++ {
		require.Equal(t, Continued, m.Step())
		history = append(history, m.Head())
	}
	assert.Equal(t, []int{0, 1, 0, 1, 0, 1, 0}, history)
}
