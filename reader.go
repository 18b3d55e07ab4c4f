package jdate

import (
	"bufio"
	"io"

	"github.com/go-faster/errors"
)

// Reader implements reading of the fixed-width wire format.
type Reader struct {
	s *bufio.Reader
}

// NewReader initializes new Reader from provided io.Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{s: bufio.NewReader(r)}
}

// ReadFull reads len(buf) bytes into buf.
func (r *Reader) ReadFull(buf []byte) error {
	if _, err := io.ReadFull(r.s, buf); err != nil {
		return errors.Wrap(err, "read full")
	}
	return nil
}

// ReadRaw reads and returns exactly n bytes.
func (r *Reader) ReadRaw(n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := r.ReadFull(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// UInt32 reads uint32 value.
func (r *Reader) UInt32() (uint32, error) {
	buf := make([]byte, 32/8)
	if err := r.ReadFull(buf); err != nil {
		return 0, err
	}
	return bin.Uint32(buf), nil
}

// UInt64 reads uint64 value.
func (r *Reader) UInt64() (uint64, error) {
	buf := make([]byte, 64/8)
	if err := r.ReadFull(buf); err != nil {
		return 0, err
	}
	return bin.Uint64(buf), nil
}
