package busybeaver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecideCycler_OscillatorRecurs(t *testing.T) {
	// A0 = (0, R, B), B0 = (0, L, A): the head bounces between two cells
	// forever, never touching A1 or B1. The normalized configuration at
	// state B, head 1 recurs exactly two steps after it is first seen.
	table := Decode(record30([10][3]byte{
		{0, 0, 2}, // A0 = (0, R, B)
		{0, 0, 0}, // A1 = halt (unreached)
		{0, 1, 1}, // B0 = (0, L, A)
	}))

	assert.True(t, DecideCycler(table))
}

func TestDecideCycler_HaltsImmediately(t *testing.T) {
	assert.False(t, DecideCycler(haltingTable()))
}

func TestDecideCycler_MovesRightForeverIsNotCaught(t *testing.T) {
	// A cycler looks for an EXACT recurrence of the normalized
	// configuration. A machine that drifts permanently rightward never
	// revisits the same normalized configuration, so the simple cycler
	// cannot prove it non-halting even though it plainly never halts;
	// that is the translated cycler's job.
	assert.False(t, DecideCycler(rightForeverTable()))
}
