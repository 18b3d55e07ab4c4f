package jdate

import "github.com/go-faster/errors"

// ColDate represents a block of Date values.
type ColDate []Date

// Compile-time assertion for ColDate.
var _ Column = (*ColDate)(nil)

// Rows returns count of rows in column.
func (c ColDate) Rows() int {
	return len(c)
}

// Reset resets data in row, preserving capacity for efficiency.
func (c *ColDate) Reset() {
	*c = (*c)[:0]
}

// Append value to column.
func (c *ColDate) Append(v Date) {
	*c = append(*c, v)
}

// AppendArr appends values to column.
func (c *ColDate) AppendArr(vs []Date) {
	*c = append(*c, vs...)
}

// Row returns value of row i.
func (c ColDate) Row(i int) Date {
	return c[i]
}

// EncodeColumn encodes Date rows to *Buffer as 4-byte little-endian
// values, the layout persisted by the storage layer.
func (c ColDate) EncodeColumn(b *Buffer) {
	for _, v := range c {
		b.PutUInt32(uint32(v))
	}
}

// DecodeColumn decodes Date rows from *Reader.
func (c *ColDate) DecodeColumn(r *Reader, rows int) error {
	data, err := r.ReadRaw(rows * 4)
	if err != nil {
		return errors.Wrap(err, "read")
	}
	v := *c
	for i := 0; i < rows; i++ {
		v = append(v, Date(bin.Uint32(data[i*4:])))
	}
	*c = v
	return nil
}
