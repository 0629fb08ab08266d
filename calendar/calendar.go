// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package calendar

import (
	"time"

	"github.com/z5labs/timefmt/timeerr"
)

// Supported year range.
const (
	MinYear = -9999
	MaxYear = 9999
)

// Parts exposes the components a calendar value can supply when formatted.
// A nil field means the value's type does not carry that component.
type Parts struct {
	Date   *Date
	Time   *Time
	Offset *Offset
}

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in the given month of year.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// WeeksInYear returns the number of ISO weeks in year, either 52 or 53.
func WeeksInYear(year int) int {
	switch weekdayOf(year, time.January, 1) {
	case time.Thursday:
		return 53
	case time.Wednesday:
		if IsLeapYear(year) {
			return 53
		}
	}
	return 52
}

// DaysFromMonday returns the number of days weekday comes after Monday, 0 through 6.
func DaysFromMonday(weekday time.Weekday) int {
	return (int(weekday) + 6) % 7
}

func weekdayOf(year int, month time.Month, day int) time.Weekday {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday()
}

func checkRange(name string, value, min, max int, conditional bool) error {
	if value >= min && value <= max {
		return nil
	}
	return timeerr.ComponentRangeError{
		Name:        name,
		Minimum:     int64(min),
		Maximum:     int64(max),
		Value:       int64(value),
		Conditional: conditional,
	}
}
