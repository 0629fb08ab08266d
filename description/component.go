// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package description

// Component is an Item naming a single date or time quantity.
// The set of components is closed.
type Component interface {
	Item

	// Name returns the human readable name used in diagnostics, e.g. "week number".
	Name() string

	component()
}

// Padding controls how numeric components are filled to their fixed width.
type Padding int

const (
	// PaddingZero fills with leading zeros. It is the default.
	PaddingZero Padding = iota

	// PaddingSpace fills with leading spaces.
	PaddingSpace

	// PaddingNone uses the minimal number of digits.
	PaddingNone
)

// MonthRepr selects how a month is represented.
type MonthRepr int

const (
	// MonthNumerical is the month number, 1 through 12. It is the default.
	MonthNumerical MonthRepr = iota

	// MonthLong is the full English month name.
	MonthLong

	// MonthShort is the three letter English month abbreviation.
	MonthShort
)

// WeekNumberRepr selects the week numbering scheme.
type WeekNumberRepr int

const (
	// WeekNumberISO numbers weeks per ISO 8601, 1 through 53.
	WeekNumberISO WeekNumberRepr = iota

	// WeekNumberSunday starts week 1 on the first Sunday of the year.
	WeekNumberSunday

	// WeekNumberMonday starts week 1 on the first Monday of the year.
	WeekNumberMonday
)

// WeekdayRepr selects how a weekday is represented.
type WeekdayRepr int

const (
	// WeekdayLong is the full English weekday name. It is the default.
	WeekdayLong WeekdayRepr = iota

	// WeekdayShort is the three letter English weekday abbreviation.
	WeekdayShort

	// WeekdaySunday is a number counting from Sunday.
	WeekdaySunday

	// WeekdayMonday is a number counting from Monday.
	WeekdayMonday
)

// YearRepr selects how much of a year is represented.
type YearRepr int

const (
	// YearFull is the whole year. It is the default.
	YearFull YearRepr = iota

	// YearLastTwo is the last two digits of the year.
	YearLastTwo
)

// SubsecondDigits is the number of fractional second digits, 1 through 9,
// or SubsecondOneOrMore.
type SubsecondDigits int

// SubsecondOneOrMore uses as many digits as are needed. It is the default.
const SubsecondOneOrMore SubsecondDigits = 0

// Day is the day of the month.
type Day struct {
	Padding Padding
}

// Month is the month of the year.
type Month struct {
	Padding         Padding
	Repr            MonthRepr
	CaseInsensitive bool
}

// Ordinal is the day of the year.
type Ordinal struct {
	Padding Padding
}

// Weekday is the day of the week.
type Weekday struct {
	Repr            WeekdayRepr
	ZeroIndexed     bool
	CaseInsensitive bool
}

// WeekNumber is the week of the year.
type WeekNumber struct {
	Padding Padding
	Repr    WeekNumberRepr
}

// Year is the calendar year, or the ISO week-numbering year.
type Year struct {
	Padding       Padding
	Repr          YearRepr
	ISOWeekBased  bool
	SignMandatory bool
}

// Hour is the hour of the day.
type Hour struct {
	Padding    Padding
	TwelveHour bool
}

// Minute is the minute of the hour.
type Minute struct {
	Padding Padding
}

// Period is AM or PM.
type Period struct {
	Lowercase       bool
	CaseInsensitive bool
}

// Second is the second of the minute.
type Second struct {
	Padding Padding
}

// Subsecond is the fractional part of the second.
type Subsecond struct {
	Digits SubsecondDigits
}

// OffsetHour is the hour component of the UTC offset.
type OffsetHour struct {
	Padding       Padding
	SignMandatory bool
}

// OffsetMinute is the minute component of the UTC offset.
type OffsetMinute struct {
	Padding Padding
}

// OffsetSecond is the second component of the UTC offset.
type OffsetSecond struct {
	Padding Padding
}

// Name implements the [Component] interface.
func (Day) Name() string { return "day" }

// Name implements the [Component] interface.
func (Month) Name() string { return "month" }

// Name implements the [Component] interface.
func (Ordinal) Name() string { return "ordinal" }

// Name implements the [Component] interface.
func (Weekday) Name() string { return "weekday" }

// Name implements the [Component] interface.
func (WeekNumber) Name() string { return "week number" }

// Name implements the [Component] interface.
func (Year) Name() string { return "year" }

// Name implements the [Component] interface.
func (Hour) Name() string { return "hour" }

// Name implements the [Component] interface.
func (Minute) Name() string { return "minute" }

// Name implements the [Component] interface.
func (Period) Name() string { return "period" }

// Name implements the [Component] interface.
func (Second) Name() string { return "second" }

// Name implements the [Component] interface.
func (Subsecond) Name() string { return "subsecond" }

// Name implements the [Component] interface.
func (OffsetHour) Name() string { return "offset hour" }

// Name implements the [Component] interface.
func (OffsetMinute) Name() string { return "offset minute" }

// Name implements the [Component] interface.
func (OffsetSecond) Name() string { return "offset second" }

func (Day) item()          {}
func (Month) item()        {}
func (Ordinal) item()      {}
func (Weekday) item()      {}
func (WeekNumber) item()   {}
func (Year) item()         {}
func (Hour) item()         {}
func (Minute) item()       {}
func (Period) item()       {}
func (Second) item()       {}
func (Subsecond) item()    {}
func (OffsetHour) item()   {}
func (OffsetMinute) item() {}
func (OffsetSecond) item() {}

func (Day) component()          {}
func (Month) component()        {}
func (Ordinal) component()      {}
func (Weekday) component()      {}
func (WeekNumber) component()   {}
func (Year) component()         {}
func (Hour) component()         {}
func (Minute) component()       {}
func (Period) component()       {}
func (Second) component()       {}
func (Subsecond) component()    {}
func (OffsetHour) component()   {}
func (OffsetMinute) component() {}
func (OffsetSecond) component() {}
