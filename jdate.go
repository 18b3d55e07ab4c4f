// Package jdate implements the fixed-width binary date and timestamp
// encoding shared by the storage and execution layers.
//
// Date is a uint32 Julian day number and Timestamp a uint64 count of
// microseconds from the Julian epoch, bit-for-bit compatible with
// PostgreSQL and with previously persisted values.
package jdate

// Microseconds per time unit.
const (
	microsPerSecond = 1000 * 1000
	microsPerMinute = 60 * microsPerSecond
	microsPerHour   = 60 * microsPerMinute
	microsPerDay    = 24 * microsPerHour
)

// secPerDay represents seconds in day.
const secPerDay = 24 * 60 * 60

// unixEpochDay is the Julian day number of 1970-01-01.
const unixEpochDay = 2440588
