// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package calendar

import (
	"fmt"
	"time"
)

// Date is a validated calendar date in the proleptic Gregorian calendar.
type Date struct {
	year  int
	month time.Month
	day   int
}

// FromCalendarDate returns the Date for the given year, month and day of month.
func FromCalendarDate(year int, month time.Month, day int) (Date, error) {
	if err := checkRange("year", year, MinYear, MaxYear, false); err != nil {
		return Date{}, err
	}
	if err := checkRange("month", int(month), 1, 12, false); err != nil {
		return Date{}, err
	}
	if err := checkRange("day", day, 1, DaysInMonth(year, month), true); err != nil {
		return Date{}, err
	}
	return Date{year: year, month: month, day: day}, nil
}

// FromOrdinalDate returns the Date for the given year and day of year.
func FromOrdinalDate(year, ordinal int) (Date, error) {
	if err := checkRange("year", year, MinYear, MaxYear, false); err != nil {
		return Date{}, err
	}
	if err := checkRange("ordinal", ordinal, 1, DaysInYear(year), true); err != nil {
		return Date{}, err
	}

	month := time.January
	for {
		n := DaysInMonth(year, month)
		if ordinal <= n {
			break
		}
		ordinal -= n
		month++
	}
	return Date{year: year, month: month, day: ordinal}, nil
}

// FromISOWeekDate returns the Date for the given ISO week-numbering year, week and weekday.
func FromISOWeekDate(year, week int, weekday time.Weekday) (Date, error) {
	if err := checkRange("year", year, MinYear, MaxYear, false); err != nil {
		return Date{}, err
	}
	if err := checkRange("week number", week, 1, WeeksInYear(year), true); err != nil {
		return Date{}, err
	}
	if err := checkRange("weekday", int(weekday), 0, 6, false); err != nil {
		return Date{}, err
	}

	// Week 1 is the week containing January 4th.
	jan4 := DaysFromMonday(weekdayOf(year, time.January, 4))
	ordinal := 4 - jan4 + (week-1)*7 + DaysFromMonday(weekday)
	switch {
	case ordinal < 1:
		year--
		ordinal += DaysInYear(year)
	case ordinal > DaysInYear(year):
		ordinal -= DaysInYear(year)
		year++
	}
	return FromOrdinalDate(year, ordinal)
}

// Year returns the calendar year.
func (d Date) Year() int { return d.year }

// Month returns the month of the year.
func (d Date) Month() time.Month { return d.month }

// Day returns the day of the month, starting at 1.
func (d Date) Day() int { return d.day }

// Ordinal returns the day of the year, starting at 1.
func (d Date) Ordinal() int {
	return d.std().YearDay()
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return d.std().Weekday()
}

// ISOWeek returns the ISO 8601 week-numbering year and week number of d.
func (d Date) ISOWeek() (year, week int) {
	return d.std().ISOWeek()
}

// SundayBasedWeek returns the week number where week 1 starts on the
// year's first Sunday. Days before it are in week 0.
func (d Date) SundayBasedWeek() int {
	return (d.Ordinal() + 6 - int(d.Weekday())) / 7
}

// MondayBasedWeek returns the week number where week 1 starts on the
// year's first Monday. Days before it are in week 0.
func (d Date) MondayBasedWeek() int {
	return (d.Ordinal() + 6 - DaysFromMonday(d.Weekday())) / 7
}

// Parts implements the formatting value interface.
func (d Date) Parts() Parts {
	return Parts{Date: &d}
}

// String returns d in the extended ISO 8601 calendar date format.
func (d Date) String() string {
	if d.year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -d.year, d.month, d.day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

func (d Date) std() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}
