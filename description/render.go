// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package description

import (
	"strconv"
	"strings"
)

// rfc3339Description is the closest component description of RFC3339.
// It always renders the offset as ±hh:mm rather than Z.
const rfc3339Description = "[year]-[month]-[day]T[hour]:[minute]:[second].[subsecond][offset_hour sign:mandatory]:[offset_minute]"

// Render returns the canonical description text for items. Only modifiers
// which differ from their defaults are written, so compiling the result
// yields items equal to the input once adjacent literals are merged.
//
// A [WellKnown] format has no grammar of its own and is rendered as its
// closest component description, which does not compile back to it.
func Render(items ...Item) string {
	var sb strings.Builder
	for _, item := range items {
		render(&sb, item)
	}
	return sb.String()
}

func render(sb *strings.Builder, item Item) {
	switch x := item.(type) {
	case Literal:
		sb.WriteString(strings.ReplaceAll(string(x), "[", "[["))
	case Compound:
		for _, item := range x {
			render(sb, item)
		}
	case WellKnown:
		sb.WriteString(rfc3339Description)
	case Component:
		sb.WriteByte('[')
		sb.WriteString(grammarName(x))
		for _, m := range modifiers(x) {
			sb.WriteByte(' ')
			sb.WriteString(m)
		}
		sb.WriteByte(']')
	}
}

func grammarName(c Component) string {
	return strings.ReplaceAll(c.Name(), " ", "_")
}

func modifiers(c Component) []string {
	var ms []string
	add := func(cond bool, m string) {
		if cond {
			ms = append(ms, m)
		}
	}
	padding := func(p Padding) {
		add(p == PaddingSpace, "padding:space")
		add(p == PaddingNone, "padding:none")
	}

	switch c := c.(type) {
	case Day:
		padding(c.Padding)
	case Minute:
		padding(c.Padding)
	case Ordinal:
		padding(c.Padding)
	case Second:
		padding(c.Padding)
	case OffsetMinute:
		padding(c.Padding)
	case OffsetSecond:
		padding(c.Padding)
	case Month:
		padding(c.Padding)
		add(c.Repr == MonthLong, "repr:long")
		add(c.Repr == MonthShort, "repr:short")
		add(c.CaseInsensitive, "case_sensitive:false")
	case Weekday:
		add(c.Repr == WeekdayShort, "repr:short")
		add(c.Repr == WeekdaySunday, "repr:sunday")
		add(c.Repr == WeekdayMonday, "repr:monday")
		add(c.ZeroIndexed, "one_indexed:false")
		add(c.CaseInsensitive, "case_sensitive:false")
	case WeekNumber:
		padding(c.Padding)
		add(c.Repr == WeekNumberSunday, "repr:sunday")
		add(c.Repr == WeekNumberMonday, "repr:monday")
	case Year:
		padding(c.Padding)
		add(c.Repr == YearLastTwo, "repr:last_two")
		add(c.ISOWeekBased, "base:iso_week")
		add(c.SignMandatory, "sign:mandatory")
	case Hour:
		padding(c.Padding)
		add(c.TwelveHour, "repr:12")
	case Period:
		add(c.Lowercase, "case:lower")
		add(c.CaseInsensitive, "case_sensitive:false")
	case Subsecond:
		add(c.Digits != SubsecondOneOrMore, "digits:"+strconv.Itoa(int(c.Digits)))
	case OffsetHour:
		padding(c.Padding)
		add(c.SignMandatory, "sign:mandatory")
	}
	return ms
}
