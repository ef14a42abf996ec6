package busybeaver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// record30 builds a 30-byte packed record from 10 (out, dir, next) triples
// in A0, A1, B0, B1, C0, C1, D0, D1, E0, E1 order.
func record30(rows [10][3]byte) []byte {
	buf := make([]byte, 30)
	for i, row := range rows {
		buf[i*3] = row[0]
		buf[i*3+1] = row[1]
		buf[i*3+2] = row[2]
	}
	return buf
}

func TestDecode_RoundTrip(t *testing.T) {
	raw := record30([10][3]byte{
		{1, 0, 2}, // A0 = (1, R, B)
		{0, 1, 1}, // A1 = (0, L, A)
		{1, 0, 0}, // B0 = (1, R, halt)
		{0, 0, 3}, // B1 = (0, R, C)
		{1, 1, 4}, // C0 = (1, L, D)
		{0, 0, 5}, // C1 = (0, R, E)
		{1, 0, 1}, // D0 = (1, R, A)
		{0, 1, 2}, // D1 = (0, L, B)
		{1, 0, 3}, // E0 = (1, R, C)
		{0, 1, 4}, // E1 = (0, L, D)
	})

	table := Decode(raw)

	assert.Equal(t, Transition{Out: 1, Dir: Right, NextState: B}, table.At(A, 0))
	assert.Equal(t, Transition{Out: 0, Dir: Left, NextState: A}, table.At(A, 1))
	assert.True(t, table.At(B, 0).Halts())
	assert.Equal(t, Transition{Out: 0, Dir: Left, NextState: D}, table.At(E, 1))
}

func TestDecode_PanicsOnBadRecordLength(t *testing.T) {
	assert.Panics(t, func() { Decode(make([]byte, 29)) })
}

func TestDecode_PanicsOnMalformedBytes(t *testing.T) {
	tests := []struct {
		name string
		row  [3]byte
	}{
		{"out out of range", [3]byte{2, 0, 1}},
		{"dir out of range", [3]byte{0, 2, 1}},
		{"next_state out of range", [3]byte{0, 0, 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := [10][3]byte{}
			rows[0] = tt.row
			require.Panics(t, func() { Decode(record30(rows)) })
		})
	}
}

func TestStateId_String(t *testing.T) {
	assert.Equal(t, "A", A.String())
	assert.Equal(t, "Undef", Undef.String())
}
