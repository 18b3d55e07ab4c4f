package jdate

import "time"

// Timestamp represents an instant as microseconds from the Julian epoch.
//
// The date component is always recoverable by integer division with
// microseconds per day, see Date.
type Timestamp uint64

// NewTimestamp returns the Timestamp corresponding to the given calendar
// fields.
//
// Time-of-day fields are not normalized: hour=25 silently produces an
// instant one day and one hour past midnight. Date fields behave as in
// NewDate.
func NewTimestamp(year int, month time.Month, day, hour, min, sec, micros int) Timestamp {
	v := uint64(NewDate(year, month, day)) * microsPerDay
	v += uint64(hour) * microsPerHour
	v += uint64(min) * microsPerMinute
	v += uint64(sec) * microsPerSecond
	v += uint64(micros)
	return Timestamp(v)
}

// Date returns the date component of t.
func (t Timestamp) Date() Date {
	return Date(uint64(t) / microsPerDay)
}

// Micros returns the raw microsecond count of t for serialization.
func (t Timestamp) Micros() uint64 {
	return uint64(t)
}

// Clock returns the hour, minute and second components of t.
func (t Timestamp) Clock() (hour, min, sec int) {
	rem := uint64(t) % microsPerDay
	hour = int(rem / microsPerHour)
	min = int(rem % microsPerHour / microsPerMinute)
	sec = int(rem % microsPerMinute / microsPerSecond)
	return hour, min, sec
}

// Microsecond returns the microsecond-of-second component of t.
func (t Timestamp) Microsecond() int {
	return int(uint64(t) % microsPerSecond)
}

// ToTimestamp returns Timestamp of time.Time in UTC, truncated to
// microseconds.
func ToTimestamp(v time.Time) Timestamp {
	v = v.UTC()
	return NewTimestamp(
		v.Year(), v.Month(), v.Day(),
		v.Hour(), v.Minute(), v.Second(),
		v.Nanosecond()/1e3,
	)
}

// Time returns t as time.Time in UTC.
func (t Timestamp) Time() time.Time {
	us := int64(t) - unixEpochDay*microsPerDay
	return time.UnixMicro(us).UTC()
}

func (t Timestamp) String() string {
	return string(t.AppendText(nil))
}
