package dbfile

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// IndexReader streams big-endian u32 machine indices from a flat index
// file with no header. End-of-file terminates the stream; a truncated
// tail (a final read of 1-3 bytes) is a fatal TruncatedIndexError.
type IndexReader struct {
	r      *bufio.Reader
	closer io.Closer
}

// OpenIndex opens the index file at path for streaming reads.
func OpenIndex(path string) (*IndexReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dbfile: open index: %w", err)
	}
	return &IndexReader{r: bufio.NewReader(f), closer: f}, nil
}

// NewIndexReader wraps an already-open reader, for testing against an
// in-memory buffer.
func NewIndexReader(r io.Reader) *IndexReader {
	return &IndexReader{r: bufio.NewReader(r)}
}

// Next returns the next index in the file. ok is false at a clean
// end-of-file, with err nil.
func (r *IndexReader) Next() (index uint32, ok bool, err error) {
	var buf [4]byte
	n, err := io.ReadFull(r.r, buf[:])
	switch {
	case err == io.EOF && n == 0:
		return 0, false, nil
	case err == io.ErrUnexpectedEOF || (err == io.EOF && n > 0):
		return 0, false, &TruncatedIndexError{TrailingBytes: n}
	case err != nil:
		return 0, false, fmt.Errorf("dbfile: read index: %w", err)
	}
	return binary.BigEndian.Uint32(buf[:]), true, nil
}

// ReadAll drains the remainder of the index file into a slice, in file
// order.
func (r *IndexReader) ReadAll() ([]uint32, error) {
	var out []uint32
	for {
		idx, ok, err := r.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, idx)
	}
}

// Close releases the underlying file, if OpenIndex opened one.
func (r *IndexReader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// IndexWriter writes the flat big-endian u32 index format the decider
// driver's output files use.
type IndexWriter struct {
	w      *bufio.Writer
	closer io.Closer
}

// CreateIndex creates (or truncates) the index file at path for writing.
func CreateIndex(path string) (*IndexWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("dbfile: create index: %w", err)
	}
	return &IndexWriter{w: bufio.NewWriter(f), closer: f}, nil
}

// NewIndexWriter wraps an already-open writer, for testing against an
// in-memory buffer.
func NewIndexWriter(w io.Writer) *IndexWriter {
	return &IndexWriter{w: bufio.NewWriter(w)}
}

// Write appends one big-endian u32 index.
func (w *IndexWriter) Write(index uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], index)
	if _, err := w.w.Write(buf[:]); err != nil {
		return fmt.Errorf("dbfile: write index: %w", err)
	}
	return nil
}

// WriteAll writes every index in indices, in order.
func (w *IndexWriter) WriteAll(indices []uint32) error {
	for _, idx := range indices {
		if err := w.Write(idx); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes buffered output and releases the underlying file, if
// CreateIndex opened one.
func (w *IndexWriter) Close() error {
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("dbfile: flush index: %w", err)
	}
	if w.closer == nil {
		return nil
	}
	return w.closer.Close()
}
