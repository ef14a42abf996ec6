package main

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmorenz/busybeaver"
	"github.com/gmorenz/busybeaver/dbfile"
)

// writeTestDB writes a machine database file of n machines: even indices
// halt immediately, odd indices loop forever moving right. The header is
// padded out to one full record slot, so record i starts at byte 30*(i+1).
func writeTestDB(t *testing.T, path string, n int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	var hdr [dbfile.HeaderSize]byte
	binary.BigEndian.PutUint32(hdr[0:4], uint32(n))
	binary.BigEndian.PutUint32(hdr[8:12], uint32(n))
	_, err = f.Write(hdr[:])
	require.NoError(t, err)
	_, err = f.Write(make([]byte, busybeaver.RecordSize-dbfile.HeaderSize))
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		rec := make([]byte, busybeaver.RecordSize)
		if i%2 != 0 {
			rec[0], rec[1], rec[2] = 1, 0, 1
			rec[3], rec[4], rec[5] = 1, 0, 1
		}
		_, err = f.Write(rec)
		require.NoError(t, err)
	}
}

func TestRunDecider_AllFlagDecidesWholeDatabase(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "bb5.db")
	outPath := filepath.Join(dir, "out.idx")
	writeTestDB(t, dbPath, 6)

	flagWorkers, flagQuiet = 1, true

	err := runDecider(dbPath, "", outPath, true, busybeaver.DecideTranslatedCycler)
	require.NoError(t, err)

	r, err := dbfile.OpenIndex(outPath)
	require.NoError(t, err)
	defer r.Close()
	got, err := r.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 3, 5}, got)
}

func TestRunDecider_IndexFlagRestrictsToGivenMachines(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "bb5.db")
	indexPath := filepath.Join(dir, "in.idx")
	outPath := filepath.Join(dir, "out.idx")
	writeTestDB(t, dbPath, 6)

	w, err := dbfile.CreateIndex(indexPath)
	require.NoError(t, err)
	require.NoError(t, w.WriteAll([]uint32{0, 1, 2}))
	require.NoError(t, w.Close())

	flagWorkers, flagQuiet = 2, true

	err = runDecider(dbPath, indexPath, outPath, false, busybeaver.DecideTranslatedCycler)
	require.NoError(t, err)

	r, err := dbfile.OpenIndex(outPath)
	require.NoError(t, err)
	defer r.Close()
	got, err := r.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []uint32{1}, got)
}
