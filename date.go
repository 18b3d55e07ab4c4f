package jdate

import "time"

// Date represents a calendar date as a Julian day number.
//
// The encoding matches the PostgreSQL on-disk DATE representation and is
// stable over the proleptic Gregorian range [4713 BC, 5874897 AD].
type Date uint32

// DateLayout is default time format for Date.
const DateLayout = "2006-01-02"

// NewDate returns the Date corresponding to year, month and day.
//
// Fields are not validated: a nonexistent calendar date encodes to the
// day it spills into, so NewDate(1900, 2, 29) == NewDate(1900, 3, 1).
func NewDate(year int, month time.Month, day int) Date {
	var y, m uint32
	if month > 2 {
		m = uint32(month) + 1
		y = uint32(year + 4800)
	} else {
		m = uint32(month) + 13
		y = uint32(year + 4799)
	}

	// Unsigned wraparound of the intermediate terms is load-bearing for
	// years near the bottom of the range; keep everything in uint32.
	century := y / 100
	julian := y*365 - 32167
	julian += y/4 - century + century/4
	julian += 7834*m/256 + uint32(day)
	return Date(julian)
}

// YMD decomposes d into year, month and day.
func (d Date) YMD() (year int, month time.Month, day int) {
	julian := uint32(d) + 32044

	quad := julian / 146097
	extra := (julian-quad*146097)*4 + 3
	julian += 60 + quad*3 + extra/146097

	quad = julian / 1461
	julian -= quad * 1461
	y := julian * 4 / 1461
	if y != 0 {
		julian = (julian + 305) % 365
	} else {
		julian = (julian + 306) % 366
	}
	julian += 123
	y += quad * 4
	quad = julian * 2141 / 65536

	year = int(y) - 4800
	month = time.Month((quad+10)%12 + 1)
	day = int(julian - 7834*quad/256)
	return year, month, day
}

// Timestamp returns the Timestamp of midnight of d.
func (d Date) Timestamp() Timestamp {
	return Timestamp(uint64(d) * microsPerDay)
}

// ToDate returns Date of time.Time in UTC.
func ToDate(t time.Time) Date {
	t = t.UTC()
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Time returns starting time.Time of Date in UTC.
func (d Date) Time() time.Time {
	days := int64(d) - unixEpochDay
	return time.Unix(days*secPerDay, 0).UTC()
}

func (d Date) String() string {
	return string(d.AppendText(nil))
}
