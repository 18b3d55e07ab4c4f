package jdate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTimestamp(t *testing.T) {
	t.Parallel()
	t.Run("Anchor", func(t *testing.T) {
		assert.Equal(t, Timestamp(211813488000000000), NewTimestamp(2000, 1, 1, 0, 0, 0, 0))
		assert.Equal(t, NewDate(2000, 1, 1).Timestamp(), NewTimestamp(2000, 1, 1, 0, 0, 0, 0))
		assert.Equal(t, Timestamp(212444680271123000), NewTimestamp(2020, 1, 1, 11, 11, 11, 123000))
	})
	t.Run("Fields", func(t *testing.T) {
		ts := NewTimestamp(2020, 1, 1, 11, 11, 11, 123000)
		assert.Equal(t, NewDate(2020, 1, 1), ts.Date())

		hour, min, sec := ts.Clock()
		assert.Equal(t, 11, hour)
		assert.Equal(t, 11, min)
		assert.Equal(t, 11, sec)
		assert.Equal(t, 123000, ts.Microsecond())
		assert.Equal(t, uint64(ts), ts.Micros())
	})
	t.Run("NoNormalization", func(t *testing.T) {
		// hour=25 is one day and one hour past midnight, by contract.
		assert.Equal(t,
			NewTimestamp(2020, 1, 2, 1, 0, 0, 0),
			NewTimestamp(2020, 1, 1, 25, 0, 0, 0),
		)
		assert.Equal(t,
			NewTimestamp(2020, 1, 1, 0, 1, 1, 0),
			NewTimestamp(2020, 1, 1, 0, 0, 61, 0),
		)
	})
	t.Run("DateFloor", func(t *testing.T) {
		d := NewDate(2020, 1, 1)
		assert.Equal(t, d, d.Timestamp().Date())
		assert.Equal(t, d, NewTimestamp(2020, 1, 1, 23, 59, 59, 999999).Date())
		assert.Equal(t, d+1, NewTimestamp(2020, 1, 1, 24, 0, 0, 0).Date())
	})
	t.Run("Time", func(t *testing.T) {
		v := time.Date(2011, 10, 10, 14, 59, 31, 401235000, time.UTC)
		ts := ToTimestamp(v)
		assert.True(t, ts.Time().Equal(v))
		assert.Equal(t, ts, ToTimestamp(ts.Time()))
	})
	t.Run("TruncateToMicro", func(t *testing.T) {
		v := time.Date(2011, 10, 10, 14, 59, 31, 401235999, time.UTC)
		assert.Equal(t, NewTimestamp(2011, 10, 10, 14, 59, 31, 401235), ToTimestamp(v))
	})
}

func BenchmarkNewTimestamp(b *testing.B) {
	b.ReportAllocs()

	var ts Timestamp
	for i := 0; i < b.N; i++ {
		ts = NewTimestamp(2020, 1, 1, 11, 11, 11, 123000)
	}
	_ = ts
}

func BenchmarkTimestamp_Clock(b *testing.B) {
	b.ReportAllocs()

	ts := NewTimestamp(2020, 1, 1, 11, 11, 11, 123000)
	var sec int
	for i := 0; i < b.N; i++ {
		_, _, sec = ts.Clock()
	}
	_ = sec
}
