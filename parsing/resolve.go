// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package parsing

import (
	"errors"
	"time"

	"github.com/z5labs/timefmt/calendar"
	"github.com/z5labs/timefmt/timeerr"
)

// Date resolves the accumulated fields into a calendar date.
//
// A date is determined, in order of preference, by a year and ordinal day,
// a year, month and day, an ISO year, week and weekday, or a year with
// a Sunday or Monday based week number and weekday. Every other date
// field which is present must agree with the resolved date.
func (p *Parsed) Date() (calendar.Date, error) {
	d, err := p.resolveDate()
	if err != nil {
		return calendar.Date{}, resolveError(err)
	}
	return d, nil
}

// Time resolves the accumulated fields into a wall clock time. Minutes,
// seconds and the subsecond default to zero when absent.
func (p *Parsed) Time() (calendar.Time, error) {
	t, err := p.resolveTime()
	if err != nil {
		return calendar.Time{}, resolveError(err)
	}
	return t, nil
}

// Offset resolves the accumulated fields into a UTC offset. The offset
// minute and second take the sign of the offset hour.
func (p *Parsed) Offset() (calendar.Offset, error) {
	o, err := p.resolveOffset()
	if err != nil {
		return calendar.Offset{}, resolveError(err)
	}
	return o, nil
}

// DateTime resolves the accumulated fields into a date and time.
func (p *Parsed) DateTime() (calendar.DateTime, error) {
	d, err := p.Date()
	if err != nil {
		return calendar.DateTime{}, err
	}
	t, err := p.Time()
	if err != nil {
		return calendar.DateTime{}, err
	}
	return calendar.NewDateTime(d, t), nil
}

// OffsetDateTime resolves the accumulated fields into a date and time at a UTC offset.
func (p *Parsed) OffsetDateTime() (calendar.OffsetDateTime, error) {
	dt, err := p.DateTime()
	if err != nil {
		return calendar.OffsetDateTime{}, err
	}
	o, err := p.Offset()
	if err != nil {
		return calendar.OffsetDateTime{}, err
	}
	return dt.AssumeOffset(o), nil
}

func resolveError(err error) error {
	var rng timeerr.ComponentRangeError
	if errors.As(err, &rng) {
		return timeerr.ResolveComponentRange(rng)
	}
	return err
}

func resolveYear(full, lastTwo field[int]) (int, bool, error) {
	year, ok := full.get()
	if !ok {
		return 0, false, nil
	}
	if two, ok := lastTwo.get(); ok && abs(year)%100 != two {
		return 0, false, timeerr.ResolveInconsistent("year")
	}
	return year, true, nil
}

func (p *Parsed) resolveDate() (calendar.Date, error) {
	year, hasYear, err := resolveYear(p.year, p.yearLastTwo)
	if err != nil {
		return calendar.Date{}, err
	}
	isoYear, hasISOYear, err := resolveYear(p.isoYear, p.isoYearLastTwo)
	if err != nil {
		return calendar.Date{}, err
	}
	month, hasMonth := p.month.get()
	day, hasDay := p.day.get()
	ordinal, hasOrdinal := p.ordinal.get()
	weekday, hasWeekday := p.weekday.get()
	isoWeek, hasISOWeek := p.isoWeekNumber.get()
	sundayWeek, hasSundayWeek := p.sundayWeekNumber.get()
	mondayWeek, hasMondayWeek := p.mondayWeekNumber.get()

	var d calendar.Date
	switch {
	case hasYear && hasOrdinal:
		d, err = calendar.FromOrdinalDate(year, ordinal)
	case hasYear && hasMonth && hasDay:
		d, err = calendar.FromCalendarDate(year, month, day)
	case hasISOYear && hasISOWeek && hasWeekday:
		d, err = calendar.FromISOWeekDate(isoYear, isoWeek, weekday)
	case hasYear && hasSundayWeek && hasWeekday:
		jan1 := int(weekdayOfJan1(year))
		d, err = fromWeekDate(year, sundayWeek, 7*sundayWeek+int(weekday)-(jan1+6)%7)
	case hasYear && hasMondayWeek && hasWeekday:
		jan1 := calendar.DaysFromMonday(weekdayOfJan1(year))
		d, err = fromWeekDate(year, mondayWeek, 7*mondayWeek+calendar.DaysFromMonday(weekday)-(jan1+6)%7)
	default:
		return calendar.Date{}, timeerr.ErrInsufficientInformation
	}
	if err != nil {
		return calendar.Date{}, err
	}
	return d, p.checkDate(d)
}

func weekdayOfJan1(year int) time.Weekday {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

func fromWeekDate(year, week, ordinal int) (calendar.Date, error) {
	if ordinal < 1 || ordinal > calendar.DaysInYear(year) {
		return calendar.Date{}, timeerr.ComponentRangeError{
			Name:        "week number",
			Minimum:     0,
			Maximum:     53,
			Value:       int64(week),
			Conditional: true,
		}
	}
	return calendar.FromOrdinalDate(year, ordinal)
}

// checkDate reports the first present field which disagrees with d.
func (p *Parsed) checkDate(d calendar.Date) error {
	isoYear, isoWeek := d.ISOWeek()
	checks := []struct {
		name string
		f    field[int]
		want int
	}{
		{"year", p.year, d.Year()},
		{"month", field[int]{int(p.month.value), p.month.set}, int(d.Month())},
		{"day", p.day, d.Day()},
		{"ordinal", p.ordinal, d.Ordinal()},
		{"weekday", field[int]{int(p.weekday.value), p.weekday.set}, int(d.Weekday())},
		{"year", p.isoYear, isoYear},
		{"week number", p.isoWeekNumber, isoWeek},
		{"week number", p.sundayWeekNumber, d.SundayBasedWeek()},
		{"week number", p.mondayWeekNumber, d.MondayBasedWeek()},
	}
	for _, c := range checks {
		if v, ok := c.f.get(); ok && v != c.want {
			return timeerr.ResolveInconsistent(c.name)
		}
	}
	return nil
}

func (p *Parsed) resolveTime() (calendar.Time, error) {
	hour24, has24 := p.hour24.get()
	hour12, has12 := p.hour12.get()
	pm, hasPeriod := p.hour12IsPM.get()

	var hour int
	switch {
	case has24:
		hour = hour24
		if has12 && hour12 != to12(hour24) {
			return calendar.Time{}, timeerr.ResolveInconsistent("hour")
		}
		if hasPeriod && pm != (hour24 >= 12) {
			return calendar.Time{}, timeerr.ResolveInconsistent("hour")
		}
	case has12 && hasPeriod:
		if hour12 < 1 || hour12 > 12 {
			return calendar.Time{}, timeerr.ComponentRangeError{Name: "hour", Minimum: 1, Maximum: 12, Value: int64(hour12)}
		}
		hour = hour12 % 12
		if pm {
			hour += 12
		}
	default:
		return calendar.Time{}, timeerr.ErrInsufficientInformation
	}

	minute, _ := p.minute.get()
	second, _ := p.second.get()
	subsecond, _ := p.subsecond.get()
	return calendar.FromHMSNano(hour, minute, second, subsecond)
}

func to12(hour int) int {
	if hour%12 == 0 {
		return 12
	}
	return hour % 12
}

func (p *Parsed) resolveOffset() (calendar.Offset, error) {
	hours, ok := p.offsetHour.get()
	if !ok {
		return calendar.Offset{}, timeerr.ErrInsufficientInformation
	}
	minutes, _ := p.offsetMinute.get()
	seconds, _ := p.offsetSecond.get()
	if p.offsetNegative {
		minutes, seconds = -abs(minutes), -abs(seconds)
	}
	return calendar.OffsetFromHMS(hours, minutes, seconds)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
