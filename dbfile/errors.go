package dbfile

import "fmt"

// HeaderError reports a malformed or internally inconsistent database
// header: a bad sorting byte, or undecided_total not matching the sum of
// the two undecided-reason counts.
type HeaderError struct {
	Message string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("dbfile: malformed header: %s", e.Message)
}

// RangeError reports a machine index outside the database's declared
// range.
type RangeError struct {
	Index uint32
	Total uint32
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("dbfile: index %d out of range, database has %d machines", e.Index, e.Total)
}

// RecordError reports a machine record whose bytes don't decode to a
// valid TransitionTable: a data-integrity bug in the source file, not a
// recoverable condition.
type RecordError struct {
	Index   uint32
	Message string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("dbfile: machine %d: malformed record: %s", e.Index, e.Message)
}

// TruncatedIndexError reports an index file whose length is not a
// multiple of 4 bytes.
type TruncatedIndexError struct {
	TrailingBytes int
}

func (e *TruncatedIndexError) Error() string {
	return fmt.Sprintf("dbfile: index file truncated, %d trailing bytes", e.TrailingBytes)
}
