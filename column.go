package jdate

// Column is a block of fixed-width values in the wire format.
type Column interface {
	// Rows returns count of rows in column.
	Rows() int
	// Reset column to initial state, preserving allocated memory.
	Reset()
	// EncodeColumn encodes all rows to b.
	EncodeColumn(b *Buffer)
	// DecodeColumn decodes rows values from r.
	DecodeColumn(r *Reader, rows int) error
}
