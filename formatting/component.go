// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package formatting

import (
	"bytes"
	"strconv"
	"time"

	"github.com/z5labs/timefmt/calendar"
	"github.com/z5labs/timefmt/description"
)

// formatComponent expects the parts required by c to be present.
func formatComponent(buf *bytes.Buffer, p calendar.Parts, c description.Component) {
	switch c := c.(type) {
	case description.Day:
		writeNumber(buf, p.Date.Day(), 2, c.Padding)
	case description.Month:
		formatMonth(buf, p.Date.Month(), c)
	case description.Ordinal:
		writeNumber(buf, p.Date.Ordinal(), 3, c.Padding)
	case description.Weekday:
		formatWeekday(buf, p.Date.Weekday(), c)
	case description.WeekNumber:
		formatWeekNumber(buf, *p.Date, c)
	case description.Year:
		formatYear(buf, *p.Date, c)
	case description.Hour:
		hour := p.Time.Hour()
		if c.TwelveHour {
			hour = hour % 12
			if hour == 0 {
				hour = 12
			}
		}
		writeNumber(buf, hour, 2, c.Padding)
	case description.Minute:
		writeNumber(buf, p.Time.Minute(), 2, c.Padding)
	case description.Period:
		period := "AM"
		if p.Time.Hour() >= 12 {
			period = "PM"
		}
		if c.Lowercase {
			period = string(bytes.ToLower([]byte(period)))
		}
		buf.WriteString(period)
	case description.Second:
		writeNumber(buf, p.Time.Second(), 2, c.Padding)
	case description.Subsecond:
		formatSubsecond(buf, p.Time.Nanosecond(), c.Digits)
	case description.OffsetHour:
		if p.Offset.IsNegative() {
			buf.WriteByte('-')
		} else if c.SignMandatory {
			buf.WriteByte('+')
		}
		writeNumber(buf, abs(p.Offset.Hours()), 2, c.Padding)
	case description.OffsetMinute:
		writeNumber(buf, abs(p.Offset.Minutes()), 2, c.Padding)
	case description.OffsetSecond:
		writeNumber(buf, abs(p.Offset.Seconds()), 2, c.Padding)
	}
}

func formatMonth(buf *bytes.Buffer, m time.Month, c description.Month) {
	switch c.Repr {
	case description.MonthLong:
		buf.WriteString(m.String())
	case description.MonthShort:
		buf.WriteString(m.String()[:3])
	default:
		writeNumber(buf, int(m), 2, c.Padding)
	}
}

func formatWeekday(buf *bytes.Buffer, wd time.Weekday, c description.Weekday) {
	var n int
	switch c.Repr {
	case description.WeekdayShort:
		buf.WriteString(wd.String()[:3])
		return
	case description.WeekdaySunday:
		n = int(wd)
	case description.WeekdayMonday:
		n = calendar.DaysFromMonday(wd)
	default:
		buf.WriteString(wd.String())
		return
	}
	if !c.ZeroIndexed {
		n++
	}
	writeNumber(buf, n, 1, description.PaddingNone)
}

func formatWeekNumber(buf *bytes.Buffer, d calendar.Date, c description.WeekNumber) {
	var week int
	switch c.Repr {
	case description.WeekNumberSunday:
		week = d.SundayBasedWeek()
	case description.WeekNumberMonday:
		week = d.MondayBasedWeek()
	default:
		_, week = d.ISOWeek()
	}
	writeNumber(buf, week, 2, c.Padding)
}

func formatYear(buf *bytes.Buffer, d calendar.Date, c description.Year) {
	year := d.Year()
	if c.ISOWeekBased {
		year, _ = d.ISOWeek()
	}

	if c.Repr == description.YearLastTwo {
		writeNumber(buf, abs(year)%100, 2, c.Padding)
		return
	}
	if year < 0 {
		buf.WriteByte('-')
	} else if c.SignMandatory {
		buf.WriteByte('+')
	}
	writeNumber(buf, abs(year), 4, c.Padding)
}

func formatSubsecond(buf *bytes.Buffer, ns int, digits description.SubsecondDigits) {
	s := strconv.Itoa(ns)
	for len(s) < 9 {
		s = "0" + s
	}
	if digits != description.SubsecondOneOrMore {
		buf.WriteString(s[:digits])
		return
	}

	end := len(s)
	for end > 1 && s[end-1] == '0' {
		end--
	}
	buf.WriteString(s[:end])
}

// writeNumber writes the non-negative n filled to width according to padding.
func writeNumber(buf *bytes.Buffer, n, width int, padding description.Padding) {
	s := strconv.Itoa(n)
	if padding != description.PaddingNone {
		fill := byte('0')
		if padding == description.PaddingSpace {
			fill = ' '
		}
		for i := len(s); i < width; i++ {
			buf.WriteByte(fill)
		}
	}
	buf.WriteString(s)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
