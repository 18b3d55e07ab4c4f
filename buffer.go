package jdate

import "encoding/binary"

// bin is the wire byte order.
var bin = binary.LittleEndian

// Buffer implements an append-only byte buffer for the fixed-width wire
// format.
type Buffer struct {
	Buf []byte
}

// Reset buffer to zero length.
func (b *Buffer) Reset() {
	b.Buf = b.Buf[:0]
}

// PutUInt32 appends uint32 as 4 little-endian bytes.
func (b *Buffer) PutUInt32(v uint32) {
	buf := make([]byte, 32/8)
	bin.PutUint32(buf, v)
	b.Buf = append(b.Buf, buf...)
}

// PutUInt64 appends uint64 as 8 little-endian bytes.
func (b *Buffer) PutUInt64(v uint64) {
	buf := make([]byte, 64/8)
	bin.PutUint64(buf, v)
	b.Buf = append(b.Buf, buf...)
}
