// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package parsing

import (
	"time"

	"github.com/z5labs/timefmt/timeerr"
)

type field[T any] struct {
	value T
	set   bool
}

func (f field[T]) get() (T, bool) {
	return f.value, f.set
}

func (f *field[T]) put(v T) {
	f.value = v
	f.set = true
}

// Parsed accumulates every field a format description can produce.
// The zero value is an empty accumulator ready for use.
//
// Setting a field which is already set overwrites it.
type Parsed struct {
	year             field[int]
	yearLastTwo      field[int]
	isoYear          field[int]
	isoYearLastTwo   field[int]
	month            field[time.Month]
	sundayWeekNumber field[int]
	mondayWeekNumber field[int]
	isoWeekNumber    field[int]
	weekday          field[time.Weekday]
	ordinal          field[int]
	day              field[int]
	hour24           field[int]
	hour12           field[int]
	hour12IsPM       field[bool]
	minute           field[int]
	second           field[int]
	subsecond        field[int]
	offsetHour       field[int]
	offsetMinute     field[int]
	offsetSecond     field[int]

	// offsetNegative records a '-' on an offset hour of zero.
	offsetNegative bool
}

// Year returns the calendar year.
func (p *Parsed) Year() (int, bool) { return p.year.get() }

// YearLastTwo returns the last two digits of the calendar year.
func (p *Parsed) YearLastTwo() (int, bool) { return p.yearLastTwo.get() }

// ISOYear returns the ISO week-numbering year.
func (p *Parsed) ISOYear() (int, bool) { return p.isoYear.get() }

// ISOYearLastTwo returns the last two digits of the ISO week-numbering year.
func (p *Parsed) ISOYearLastTwo() (int, bool) { return p.isoYearLastTwo.get() }

// Month returns the month of the year.
func (p *Parsed) Month() (time.Month, bool) { return p.month.get() }

// SundayWeekNumber returns the week of the year where weeks start on Sunday.
func (p *Parsed) SundayWeekNumber() (int, bool) { return p.sundayWeekNumber.get() }

// MondayWeekNumber returns the week of the year where weeks start on Monday.
func (p *Parsed) MondayWeekNumber() (int, bool) { return p.mondayWeekNumber.get() }

// ISOWeekNumber returns the ISO week of the ISO week-numbering year.
func (p *Parsed) ISOWeekNumber() (int, bool) { return p.isoWeekNumber.get() }

// Weekday returns the day of the week.
func (p *Parsed) Weekday() (time.Weekday, bool) { return p.weekday.get() }

// Ordinal returns the day of the year.
func (p *Parsed) Ordinal() (int, bool) { return p.ordinal.get() }

// Day returns the day of the month.
func (p *Parsed) Day() (int, bool) { return p.day.get() }

// Hour24 returns the hour on a 24-hour clock.
func (p *Parsed) Hour24() (int, bool) { return p.hour24.get() }

// Hour12 returns the hour on a 12-hour clock.
func (p *Parsed) Hour12() (int, bool) { return p.hour12.get() }

// Hour12IsPM reports whether the 12-hour clock hour is after noon.
func (p *Parsed) Hour12IsPM() (bool, bool) { return p.hour12IsPM.get() }

// Minute returns the minute of the hour.
func (p *Parsed) Minute() (int, bool) { return p.minute.get() }

// Second returns the second of the minute.
func (p *Parsed) Second() (int, bool) { return p.second.get() }

// Subsecond returns the fractional second in nanoseconds.
func (p *Parsed) Subsecond() (int, bool) { return p.subsecond.get() }

// OffsetHour returns the signed hour of the UTC offset.
func (p *Parsed) OffsetHour() (int, bool) { return p.offsetHour.get() }

// OffsetMinute returns the minute of the UTC offset.
func (p *Parsed) OffsetMinute() (int, bool) { return p.offsetMinute.get() }

// OffsetSecond returns the second of the UTC offset.
func (p *Parsed) OffsetSecond() (int, bool) { return p.offsetSecond.get() }

// SetYear sets the full calendar year.
func (p *Parsed) SetYear(v int) { p.year.put(v) }

// SetYearLastTwo sets the last two digits of the calendar year.
func (p *Parsed) SetYearLastTwo(v int) { p.yearLastTwo.put(v) }

// SetISOYear sets the full ISO week-numbering year.
func (p *Parsed) SetISOYear(v int) { p.isoYear.put(v) }

// SetISOYearLastTwo sets the last two digits of the ISO week-numbering year.
func (p *Parsed) SetISOYearLastTwo(v int) { p.isoYearLastTwo.put(v) }

// SetMonth sets the month of the year.
func (p *Parsed) SetMonth(v time.Month) { p.month.put(v) }

// SetSundayWeekNumber sets the week of the year, with weeks starting on Sunday.
func (p *Parsed) SetSundayWeekNumber(v int) { p.sundayWeekNumber.put(v) }

// SetMondayWeekNumber sets the week of the year, with weeks starting on Monday.
func (p *Parsed) SetMondayWeekNumber(v int) { p.mondayWeekNumber.put(v) }

// SetISOWeekNumber sets the ISO week of the year.
func (p *Parsed) SetISOWeekNumber(v int) { p.isoWeekNumber.put(v) }

// SetWeekday sets the day of the week.
func (p *Parsed) SetWeekday(v time.Weekday) { p.weekday.put(v) }

// SetOrdinal sets the day of the year.
func (p *Parsed) SetOrdinal(v int) { p.ordinal.put(v) }

// SetDay sets the day of the month.
func (p *Parsed) SetDay(v int) { p.day.put(v) }

// SetHour24 sets the hour on a 24-hour clock.
func (p *Parsed) SetHour24(v int) { p.hour24.put(v) }

// SetHour12 sets the hour on a 12-hour clock.
func (p *Parsed) SetHour12(v int) { p.hour12.put(v) }

// SetHour12IsPM sets whether the 12-hour clock hour is after noon.
func (p *Parsed) SetHour12IsPM(v bool) { p.hour12IsPM.put(v) }

// SetMinute sets the minute of the hour.
func (p *Parsed) SetMinute(v int) { p.minute.put(v) }

// SetSecond sets the second of the minute.
func (p *Parsed) SetSecond(v int) { p.second.put(v) }

// SetSubsecond sets the fractional second in nanoseconds.
func (p *Parsed) SetSubsecond(v int) { p.subsecond.put(v) }

// SetOffsetMinute sets the minute of the UTC offset.
func (p *Parsed) SetOffsetMinute(v int) { p.offsetMinute.put(v) }

// SetOffsetSecond sets the second of the UTC offset.
func (p *Parsed) SetOffsetSecond(v int) { p.offsetSecond.put(v) }

// SetOffsetHour sets the signed hour of the UTC offset.
func (p *Parsed) SetOffsetHour(v int) {
	p.offsetHour.put(v)
	p.offsetNegative = v < 0
}

// Option sets a single field of a [Parsed] accumulator,
// failing when the value cannot be represented by that field.
type Option func(*Parsed) error

// Build returns a new accumulator with every option applied in order.
// Building stops at the first option which fails.
func Build(opts ...Option) (*Parsed, error) {
	p := &Parsed{}
	for _, opt := range opts {
		err := opt(p)
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Each field accepts every value its textual form can express.
// Calendar validity is checked during resolution.
func bounded[T ~int](name string, min, max int, set func(*Parsed, T)) func(T) Option {
	return func(v T) Option {
		return func(p *Parsed) error {
			if int(v) < min || int(v) > max {
				return timeerr.ComponentRangeError{
					Name:    name,
					Minimum: int64(min),
					Maximum: int64(max),
					Value:   int64(v),
				}
			}
			set(p, v)
			return nil
		}
	}
}

// Options setting a single field. Values outside the field's bounds
// fail with a [timeerr.ComponentRangeError] naming the component.
var (
	WithYear             = bounded("year", -999_999, 999_999, (*Parsed).SetYear)
	WithYearLastTwo      = bounded("year", 0, 99, (*Parsed).SetYearLastTwo)
	WithISOYear          = bounded("year", -999_999, 999_999, (*Parsed).SetISOYear)
	WithISOYearLastTwo   = bounded("year", 0, 99, (*Parsed).SetISOYearLastTwo)
	WithMonth            = bounded("month", 1, 12, (*Parsed).SetMonth)
	WithSundayWeekNumber = bounded("week number", 0, 99, (*Parsed).SetSundayWeekNumber)
	WithMondayWeekNumber = bounded("week number", 0, 99, (*Parsed).SetMondayWeekNumber)
	WithISOWeekNumber    = bounded("week number", 1, 99, (*Parsed).SetISOWeekNumber)
	WithWeekday          = bounded("weekday", 0, 6, (*Parsed).SetWeekday)
	WithOrdinal          = bounded("ordinal", 1, 999, (*Parsed).SetOrdinal)
	WithDay              = bounded("day", 1, 99, (*Parsed).SetDay)
	WithHour24           = bounded("hour", 0, 99, (*Parsed).SetHour24)
	WithHour12           = bounded("hour", 1, 99, (*Parsed).SetHour12)
	WithMinute           = bounded("minute", 0, 99, (*Parsed).SetMinute)
	WithSecond           = bounded("second", 0, 99, (*Parsed).SetSecond)
	WithSubsecond        = bounded("subsecond", 0, 999_999_999, (*Parsed).SetSubsecond)
	WithOffsetHour       = bounded("offset hour", -99, 99, (*Parsed).SetOffsetHour)
	WithOffsetMinute     = bounded("offset minute", -99, 99, (*Parsed).SetOffsetMinute)
	WithOffsetSecond     = bounded("offset second", -99, 99, (*Parsed).SetOffsetSecond)
)

// WithHour12IsPM sets whether the 12-hour clock hour is after noon.
func WithHour12IsPM(pm bool) Option {
	return func(p *Parsed) error {
		p.SetHour12IsPM(pm)
		return nil
	}
}
