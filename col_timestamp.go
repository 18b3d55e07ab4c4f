package jdate

import "github.com/go-faster/errors"

// ColTimestamp represents a block of Timestamp values.
type ColTimestamp []Timestamp

// Compile-time assertion for ColTimestamp.
var _ Column = (*ColTimestamp)(nil)

// Rows returns count of rows in column.
func (c ColTimestamp) Rows() int {
	return len(c)
}

// Reset resets data in row, preserving capacity for efficiency.
func (c *ColTimestamp) Reset() {
	*c = (*c)[:0]
}

// Append value to column.
func (c *ColTimestamp) Append(v Timestamp) {
	*c = append(*c, v)
}

// AppendArr appends values to column.
func (c *ColTimestamp) AppendArr(vs []Timestamp) {
	*c = append(*c, vs...)
}

// Row returns value of row i.
func (c ColTimestamp) Row(i int) Timestamp {
	return c[i]
}

// EncodeColumn encodes Timestamp rows to *Buffer as 8-byte little-endian
// values, the layout persisted by the storage layer.
func (c ColTimestamp) EncodeColumn(b *Buffer) {
	for _, v := range c {
		b.PutUInt64(uint64(v))
	}
}

// DecodeColumn decodes Timestamp rows from *Reader.
func (c *ColTimestamp) DecodeColumn(r *Reader, rows int) error {
	data, err := r.ReadRaw(rows * 8)
	if err != nil {
		return errors.Wrap(err, "read")
	}
	v := *c
	for i := 0; i < rows; i++ {
		v = append(v, Timestamp(bin.Uint64(data[i*8:])))
	}
	*c = v
	return nil
}
