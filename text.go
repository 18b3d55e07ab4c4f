package jdate

import (
	"encoding"

	"github.com/go-faster/errors"
)

// Compile-time assertions for text round-trip support.
var (
	_ encoding.TextMarshaler   = Date(0)
	_ encoding.TextUnmarshaler = (*Date)(nil)
	_ encoding.TextMarshaler   = Timestamp(0)
	_ encoding.TextUnmarshaler = (*Timestamp)(nil)
)

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return d.AppendText(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(data []byte) error {
	v, ok := ParseDate(string(data))
	if !ok {
		return errors.Errorf("invalid date %q", data)
	}
	*d = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Timestamp) MarshalText() ([]byte, error) {
	return t.AppendText(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Timestamp) UnmarshalText(data []byte) error {
	v, ok := ParseTimestamp(string(data))
	if !ok {
		return errors.Errorf("invalid timestamp %q", data)
	}
	*t = v
	return nil
}
