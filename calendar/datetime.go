// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package calendar

import (
	"time"

	"github.com/z5labs/timefmt/timeerr"
)

// DateTime is a Date paired with a Time, without any UTC offset.
type DateTime struct {
	date Date
	time Time
}

// NewDateTime returns the DateTime for the given date and time.
func NewDateTime(d Date, t Time) DateTime {
	return DateTime{date: d, time: t}
}

// Date returns the date component.
func (dt DateTime) Date() Date { return dt.date }

// Time returns the time component.
func (dt DateTime) Time() Time { return dt.time }

// AssumeOffset returns dt with the given offset attached.
func (dt DateTime) AssumeOffset(o Offset) OffsetDateTime {
	return OffsetDateTime{DateTime: dt, offset: o}
}

// In attaches the offset loc has at dt. A nil location carries no
// offset information, so the offset cannot be determined.
func (dt DateTime) In(loc *time.Location) (OffsetDateTime, error) {
	if loc == nil {
		return OffsetDateTime{}, timeerr.IndeterminateOffsetError{}
	}

	d, t := dt.date, dt.time
	std := time.Date(d.year, d.month, d.day, t.hour, t.minute, t.second, t.nanosecond, loc)
	_, secs := std.Zone()
	o, err := OffsetFromSeconds(secs)
	if err != nil {
		return OffsetDateTime{}, timeerr.ConversionRangeError{}
	}
	return dt.AssumeOffset(o), nil
}

// Parts implements the formatting value interface.
func (dt DateTime) Parts() Parts {
	return Parts{Date: &dt.date, Time: &dt.time}
}

// String returns dt as date and time separated by a space.
func (dt DateTime) String() string {
	return dt.date.String() + " " + dt.time.String()
}

// OffsetDateTime is a DateTime at a known UTC offset.
type OffsetDateTime struct {
	DateTime
	offset Offset
}

// NewOffsetDateTime returns the OffsetDateTime for the given date, time and offset.
func NewOffsetDateTime(d Date, t Time, o Offset) OffsetDateTime {
	return OffsetDateTime{DateTime: NewDateTime(d, t), offset: o}
}

// FromStd converts a standard library time. Times whose year is
// outside of [MinYear, MaxYear] cannot be represented.
func FromStd(t time.Time) (OffsetDateTime, error) {
	d, err := FromCalendarDate(t.Year(), t.Month(), t.Day())
	if err != nil {
		return OffsetDateTime{}, timeerr.ConversionRangeError{}
	}
	clock, err := FromHMSNano(t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
	if err != nil {
		return OffsetDateTime{}, timeerr.ConversionRangeError{}
	}
	_, secs := t.Zone()
	o, err := OffsetFromSeconds(secs)
	if err != nil {
		return OffsetDateTime{}, timeerr.ConversionRangeError{}
	}
	return NewOffsetDateTime(d, clock, o), nil
}

// Offset returns the UTC offset.
func (odt OffsetDateTime) Offset() Offset { return odt.offset }

// Std converts odt into a standard library time in a fixed zone.
func (odt OffsetDateTime) Std() time.Time {
	d, t := odt.date, odt.time
	loc := time.UTC
	if !odt.offset.IsUTC() {
		loc = time.FixedZone(odt.offset.String(), odt.offset.WholeSeconds())
	}
	return time.Date(d.year, d.month, d.day, t.hour, t.minute, t.second, t.nanosecond, loc)
}

// Parts implements the formatting value interface.
func (odt OffsetDateTime) Parts() Parts {
	return Parts{Date: &odt.date, Time: &odt.time, Offset: &odt.offset}
}

// String returns odt as date, time and offset separated by spaces.
func (odt OffsetDateTime) String() string {
	return odt.DateTime.String() + " " + odt.offset.String()
}
