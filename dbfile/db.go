// Package dbfile reads and writes the two on-disk formats the decider
// pipeline exchanges with the rest of the BB5 effort: the packed machine
// database (a header followed by fixed-size transition records) and the
// flat big-endian u32 index files used both as input (which machines to
// decide) and output (which machines a decider proved non-halting).
package dbfile

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/gmorenz/busybeaver"
)

// HeaderSize is the on-disk size, in bytes, of the database header.
const HeaderSize = 13

// Header is the 13-byte big-endian header at the start of a machine
// database file.
type Header struct {
	UndecidedTimeCount   uint32
	UndecidedSizeCount   uint32
	UndecidedTotal       uint32
	LexicographicSorting bool
}

func decodeHeader(raw [HeaderSize]byte) (Header, error) {
	h := Header{
		UndecidedTimeCount: binary.BigEndian.Uint32(raw[0:4]),
		UndecidedSizeCount: binary.BigEndian.Uint32(raw[4:8]),
		UndecidedTotal:     binary.BigEndian.Uint32(raw[8:12]),
	}
	switch raw[12] {
	case 0:
		h.LexicographicSorting = false
	case 1:
		h.LexicographicSorting = true
	default:
		return Header{}, &HeaderError{Message: fmt.Sprintf("sorting byte must be 0 or 1, got %d", raw[12])}
	}
	if h.UndecidedTotal != h.UndecidedSizeCount+h.UndecidedTimeCount {
		return Header{}, &HeaderError{Message: fmt.Sprintf(
			"undecided_total (%d) != undecided_size_count (%d) + undecided_time_count (%d)",
			h.UndecidedTotal, h.UndecidedSizeCount, h.UndecidedTimeCount,
		)}
	}
	return h, nil
}

// Database is an open machine-database file. Its ReadMachine method is
// safe for concurrent use from multiple goroutines, since it only issues
// independent ReadAt calls against the underlying file.
type Database struct {
	Header Header
	data   io.ReaderAt
	closer io.Closer
}

// Open opens the machine database at path and validates its header.
func Open(path string) (*Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dbfile: open database: %w", err)
	}
	db, err := OpenReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	db.closer = f
	return db, nil
}

// OpenReader validates the header of an already-open database source.
// Useful for testing against an in-memory buffer via bytes.NewReader.
func OpenReader(data io.ReaderAt) (*Database, error) {
	var raw [HeaderSize]byte
	if _, err := io.ReadFull(sectionReader(data, 0, HeaderSize), raw[:]); err != nil {
		return nil, fmt.Errorf("dbfile: read header: %w", err)
	}
	header, err := decodeHeader(raw)
	if err != nil {
		return nil, err
	}
	return &Database{Header: header, data: data}, nil
}

// Close releases the underlying file, if Open opened one.
func (db *Database) Close() error {
	if db.closer == nil {
		return nil
	}
	return db.closer.Close()
}

// ReadMachine decodes the transition table for machine index.
func (db *Database) ReadMachine(index uint32) (busybeaver.TransitionTable, error) {
	if index >= db.Header.UndecidedTotal {
		return busybeaver.TransitionTable{}, &RangeError{Index: index, Total: db.Header.UndecidedTotal}
	}

	var raw [busybeaver.RecordSize]byte
	offset := int64(busybeaver.RecordSize) * (int64(index) + 1)
	if _, err := io.ReadFull(sectionReader(db.data, offset, len(raw)), raw[:]); err != nil {
		return busybeaver.TransitionTable{}, fmt.Errorf("dbfile: read machine %d: %w", index, err)
	}

	return decodeRecord(index, raw[:])
}

// decodeRecord validates and decodes one packed machine record, turning
// the invariant-violation panic busybeaver.Decode raises on malformed
// bytes into a regular, reportable error: a bad database file is an
// input-file error (spec §7), not a condition the rest of the pipeline
// should have to guard against with recover().
func decodeRecord(index uint32, raw []byte) (table busybeaver.TransitionTable, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &RecordError{Index: index, Message: fmt.Sprint(r)}
		}
	}()
	table = busybeaver.Decode(raw)
	return table, nil
}

// sectionReader adapts an io.ReaderAt plus an offset/length into an
// io.Reader, for use with io.ReadFull.
func sectionReader(r io.ReaderAt, offset int64, length int) io.Reader {
	return io.NewSectionReader(r, offset, int64(length))
}
