// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package description

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/z5labs/timefmt/timeerr"
)

var components = map[string]Component{
	"day":           Day{},
	"hour":          Hour{},
	"minute":        Minute{},
	"month":         Month{},
	"offset_hour":   OffsetHour{},
	"offset_minute": OffsetMinute{},
	"offset_second": OffsetSecond{},
	"ordinal":       Ordinal{},
	"period":        Period{},
	"second":        Second{},
	"subsecond":     Subsecond{},
	"weekday":       Weekday{},
	"week_number":   WeekNumber{},
	"year":          Year{},
}

var (
	paddings = map[string]Padding{
		"zero":  PaddingZero,
		"space": PaddingSpace,
		"none":  PaddingNone,
	}
	monthReprs = map[string]MonthRepr{
		"numerical": MonthNumerical,
		"long":      MonthLong,
		"short":     MonthShort,
	}
	weekdayReprs = map[string]WeekdayRepr{
		"long":   WeekdayLong,
		"short":  WeekdayShort,
		"sunday": WeekdaySunday,
		"monday": WeekdayMonday,
	}
	weekNumberReprs = map[string]WeekNumberRepr{
		"iso":    WeekNumberISO,
		"sunday": WeekNumberSunday,
		"monday": WeekNumberMonday,
	}
	yearReprs = map[string]YearRepr{
		"full":     YearFull,
		"last_two": YearLastTwo,
	}
	subsecondDigits = map[string]SubsecondDigits{
		"1": 1, "2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8, "9": 9,
		"1+": SubsecondOneOrMore,
	}

	// The boolean modifiers below map onto fields whose zero value is the default.
	twelveHour      = map[string]bool{"24": false, "12": true}
	isoWeekBased    = map[string]bool{"calendar": false, "iso_week": true}
	signMandatory   = map[string]bool{"automatic": false, "mandatory": true}
	zeroIndexed     = map[string]bool{"true": false, "false": true}
	lowercase       = map[string]bool{"upper": false, "lower": true}
	caseInsensitive = map[string]bool{"true": false, "false": true}
)

// Compile turns a textual format description into the items it describes.
// Any failure is reported as a [timeerr.InvalidDescriptionError] carrying the
// byte index of the offending input.
func Compile(s string) ([]Item, error) {
	items := []Item{}
	loc := 0
	for {
		i := strings.IndexByte(s, '[')
		if i < 0 {
			break
		}
		if i > 0 {
			items = append(items, Literal(s[:i]))
		}

		if strings.HasPrefix(s[i:], "[[") {
			items = append(items, Literal("["))
			s = s[i+2:]
			loc += i + 2
			continue
		}

		end := strings.IndexByte(s[i:], ']')
		if end < 0 {
			return nil, timeerr.InvalidDescriptionError{
				Kind:  timeerr.UnclosedOpeningBracket,
				Index: loc + i,
			}
		}

		c, err := compileComponent(s[i+1:i+end], loc+i+1)
		if err != nil {
			return nil, err
		}
		items = append(items, c)

		s = s[i+end+1:]
		loc += i + end + 1
	}
	if len(s) > 0 {
		items = append(items, Literal(s))
	}
	return items, nil
}

// MustCompile is like Compile but panics if the description is invalid.
func MustCompile(s string) []Item {
	items, err := Compile(s)
	if err != nil {
		panic(err)
	}
	return items
}

type token struct {
	value string
	index int
}

// tokenize splits s on whitespace. Indexes are relative to base.
func tokenize(s string, base int) (tokens []token, end int) {
	start := -1
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			if start >= 0 {
				tokens = append(tokens, token{value: s[start:i], index: base + start})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
		i += size
	}
	if start >= 0 {
		tokens = append(tokens, token{value: s[start:], index: base + start})
	}
	return tokens, base + len(s)
}

func compileComponent(s string, index int) (Component, error) {
	tokens, end := tokenize(s, index)
	if len(tokens) == 0 {
		return nil, timeerr.InvalidDescriptionError{
			Kind:  timeerr.MissingComponentName,
			Index: end,
		}
	}

	name := tokens[0]
	c, ok := components[name.value]
	if !ok {
		return nil, timeerr.InvalidDescriptionError{
			Kind:  timeerr.InvalidComponentName,
			Index: name.index,
			Value: name.value,
		}
	}

	for _, tok := range tokens[1:] {
		key, value, found := strings.Cut(tok.value, ":")
		if found {
			c, found = applyModifier(c, key, value)
		}
		if !found {
			return nil, timeerr.InvalidDescriptionError{
				Kind:  timeerr.InvalidModifier,
				Index: tok.index,
				Value: tok.value,
			}
		}
	}
	return c, nil
}

func lookup[T any](m map[string]T, value string, dst *T) bool {
	v, ok := m[value]
	if ok {
		*dst = v
	}
	return ok
}

// applyModifier returns c with the modifier key:value applied,
// reporting whether c accepts that modifier.
func applyModifier(c Component, key, value string) (Component, bool) {
	ok := false
	switch c := c.(type) {
	case Day:
		ok = key == "padding" && lookup(paddings, value, &c.Padding)
		return c, ok
	case Minute:
		ok = key == "padding" && lookup(paddings, value, &c.Padding)
		return c, ok
	case Ordinal:
		ok = key == "padding" && lookup(paddings, value, &c.Padding)
		return c, ok
	case Second:
		ok = key == "padding" && lookup(paddings, value, &c.Padding)
		return c, ok
	case OffsetMinute:
		ok = key == "padding" && lookup(paddings, value, &c.Padding)
		return c, ok
	case OffsetSecond:
		ok = key == "padding" && lookup(paddings, value, &c.Padding)
		return c, ok
	case Subsecond:
		ok = key == "digits" && lookup(subsecondDigits, value, &c.Digits)
		return c, ok
	case Month:
		switch key {
		case "padding":
			ok = lookup(paddings, value, &c.Padding)
		case "repr":
			ok = lookup(monthReprs, value, &c.Repr)
		case "case_sensitive":
			ok = lookup(caseInsensitive, value, &c.CaseInsensitive)
		}
		return c, ok
	case Weekday:
		switch key {
		case "repr":
			ok = lookup(weekdayReprs, value, &c.Repr)
		case "one_indexed":
			ok = lookup(zeroIndexed, value, &c.ZeroIndexed)
		case "case_sensitive":
			ok = lookup(caseInsensitive, value, &c.CaseInsensitive)
		}
		return c, ok
	case WeekNumber:
		switch key {
		case "padding":
			ok = lookup(paddings, value, &c.Padding)
		case "repr":
			ok = lookup(weekNumberReprs, value, &c.Repr)
		}
		return c, ok
	case Year:
		switch key {
		case "padding":
			ok = lookup(paddings, value, &c.Padding)
		case "repr":
			ok = lookup(yearReprs, value, &c.Repr)
		case "base":
			ok = lookup(isoWeekBased, value, &c.ISOWeekBased)
		case "sign":
			ok = lookup(signMandatory, value, &c.SignMandatory)
		}
		return c, ok
	case Hour:
		switch key {
		case "padding":
			ok = lookup(paddings, value, &c.Padding)
		case "repr":
			ok = lookup(twelveHour, value, &c.TwelveHour)
		}
		return c, ok
	case Period:
		switch key {
		case "case":
			ok = lookup(lowercase, value, &c.Lowercase)
		case "case_sensitive":
			ok = lookup(caseInsensitive, value, &c.CaseInsensitive)
		}
		return c, ok
	case OffsetHour:
		switch key {
		case "padding":
			ok = lookup(paddings, value, &c.Padding)
		case "sign":
			ok = lookup(signMandatory, value, &c.SignMandatory)
		}
		return c, ok
	}
	return c, ok
}
