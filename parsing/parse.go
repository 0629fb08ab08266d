// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package parsing

import (
	"strings"
	"time"

	"github.com/z5labs/timefmt/description"
	"github.com/z5labs/timefmt/timeerr"
)

// Parse parses the whole of input as described by items.
// Any failure is returned as a [timeerr.ParseError].
func Parse(input string, items ...description.Item) (*Parsed, error) {
	p := &Parsed{}
	rest, err := p.ParseItems(input, items...)
	if err != nil {
		return nil, timeerr.ParseOf(err.(timeerr.ParseComponentError))
	}
	if rest != "" {
		return nil, timeerr.ParseOf(timeerr.TrailingCharactersError{})
	}
	return p, nil
}

// ParseItems parses items in order from the start of input, returning the
// unconsumed remainder. On failure p is left unchanged and the error is a
// [timeerr.ParseComponentError].
func (p *Parsed) ParseItems(input string, items ...description.Item) (string, error) {
	next := *p
	for _, item := range items {
		var err error
		input, err = next.parseItem(input, item)
		if err != nil {
			return "", err
		}
	}
	*p = next
	return input, nil
}

// ParseItem parses a single item from the start of input.
func (p *Parsed) ParseItem(input string, item description.Item) (string, error) {
	return p.ParseItems(input, item)
}

// ParseComponent parses a single component from the start of input.
func (p *Parsed) ParseComponent(input string, c description.Component) (string, error) {
	return p.ParseItems(input, c)
}

// ParseLiteral consumes lit from the start of input.
func ParseLiteral(input string, lit description.Literal) (string, error) {
	rest, ok := strings.CutPrefix(input, string(lit))
	if !ok {
		return "", timeerr.ParseComponentError{Kind: timeerr.InvalidLiteral, Name: string(lit)}
	}
	return rest, nil
}

func (p *Parsed) parseItem(input string, item description.Item) (string, error) {
	switch x := item.(type) {
	case description.Literal:
		return ParseLiteral(input, x)
	case description.Compound:
		for _, item := range x {
			var err error
			input, err = p.parseItem(input, item)
			if err != nil {
				return "", err
			}
		}
		return input, nil
	case description.WellKnown:
		return p.parseRFC3339(input)
	case description.Component:
		rest, ok := p.parseComponent(input, x)
		if !ok {
			return "", timeerr.ParseComponentError{Kind: timeerr.InvalidComponent, Name: x.Name()}
		}
		return rest, nil
	default:
		return "", timeerr.ParseComponentError{Kind: timeerr.InvalidComponent}
	}
}

var (
	monthNames   = make([]string, 12)
	monthShort   = make([]string, 12)
	weekdayNames = make([]string, 7)
	weekdayShort = make([]string, 7)
	periods      = []string{"AM", "PM"}
	periodsLower = []string{"am", "pm"}
)

func init() {
	for i := range monthNames {
		monthNames[i] = time.Month(i + 1).String()
		monthShort[i] = monthNames[i][:3]
	}
	for i := range weekdayNames {
		weekdayNames[i] = time.Weekday(i).String()
		weekdayShort[i] = weekdayNames[i][:3]
	}
}

func (p *Parsed) parseComponent(input string, c description.Component) (rest string, ok bool) {
	var n int
	switch c := c.(type) {
	case description.Day:
		n, rest, ok = padded(input, 2, c.Padding)
		ok = ok && n >= 1
		if ok {
			p.SetDay(n)
		}
	case description.Month:
		n, rest, ok = parseMonth(input, c)
		if ok {
			p.SetMonth(time.Month(n))
		}
	case description.Ordinal:
		n, rest, ok = padded(input, 3, c.Padding)
		ok = ok && n >= 1
		if ok {
			p.SetOrdinal(n)
		}
	case description.Weekday:
		var wd time.Weekday
		wd, rest, ok = parseWeekday(input, c)
		if ok {
			p.SetWeekday(wd)
		}
	case description.WeekNumber:
		n, rest, ok = padded(input, 2, c.Padding)
		switch c.Repr {
		case description.WeekNumberSunday:
			if ok {
				p.SetSundayWeekNumber(n)
			}
		case description.WeekNumberMonday:
			if ok {
				p.SetMondayWeekNumber(n)
			}
		default:
			ok = ok && n >= 1
			if ok {
				p.SetISOWeekNumber(n)
			}
		}
	case description.Year:
		rest, ok = p.parseYear(input, c)
	case description.Hour:
		n, rest, ok = padded(input, 2, c.Padding)
		switch {
		case !ok:
		case c.TwelveHour:
			ok = n >= 1 && n <= 12
			if ok {
				p.SetHour12(n)
			}
		default:
			p.SetHour24(n)
		}
	case description.Minute:
		n, rest, ok = padded(input, 2, c.Padding)
		if ok {
			p.SetMinute(n)
		}
	case description.Period:
		names := periods
		if c.Lowercase {
			names = periodsLower
		}
		n, rest, ok = oneOf(input, names, c.CaseInsensitive)
		if ok {
			p.SetHour12IsPM(n == 1)
		}
	case description.Second:
		n, rest, ok = padded(input, 2, c.Padding)
		if ok {
			p.SetSecond(n)
		}
	case description.Subsecond:
		n, rest, ok = parseSubsecond(input, c.Digits)
		if ok {
			p.SetSubsecond(n)
		}
	case description.OffsetHour:
		negative, present, after := sign(input)
		if c.SignMandatory && !present {
			return input, false
		}
		n, rest, ok = padded(after, 2, c.Padding)
		if ok {
			if negative {
				n = -n
			}
			p.SetOffsetHour(n)
			p.offsetNegative = negative
		}
	case description.OffsetMinute:
		n, rest, ok = padded(input, 2, c.Padding)
		if ok {
			p.SetOffsetMinute(n)
		}
	case description.OffsetSecond:
		n, rest, ok = padded(input, 2, c.Padding)
		if ok {
			p.SetOffsetSecond(n)
		}
	}
	return rest, ok
}

func parseMonth(input string, c description.Month) (int, string, bool) {
	switch c.Repr {
	case description.MonthLong:
		i, rest, ok := oneOf(input, monthNames, c.CaseInsensitive)
		return i + 1, rest, ok
	case description.MonthShort:
		i, rest, ok := oneOf(input, monthShort, c.CaseInsensitive)
		return i + 1, rest, ok
	default:
		n, rest, ok := padded(input, 2, c.Padding)
		return n, rest, ok && n >= 1 && n <= 12
	}
}

func parseWeekday(input string, c description.Weekday) (time.Weekday, string, bool) {
	switch c.Repr {
	case description.WeekdayShort:
		i, rest, ok := oneOf(input, weekdayShort, c.CaseInsensitive)
		return time.Weekday(i), rest, ok
	case description.WeekdaySunday, description.WeekdayMonday:
		n, rest, ok := digits(input, 1, 1)
		if !c.ZeroIndexed {
			n--
		}
		if !ok || n < 0 || n > 6 {
			return 0, input, false
		}
		if c.Repr == description.WeekdayMonday {
			n = (n + 1) % 7
		}
		return time.Weekday(n), rest, true
	default:
		i, rest, ok := oneOf(input, weekdayNames, c.CaseInsensitive)
		return time.Weekday(i), rest, ok
	}
}

func (p *Parsed) parseYear(input string, c description.Year) (string, bool) {
	if c.Repr == description.YearLastTwo {
		n, rest, ok := padded(input, 2, c.Padding)
		if !ok {
			return input, false
		}
		if c.ISOWeekBased {
			p.SetISOYearLastTwo(n)
		} else {
			p.SetYearLastTwo(n)
		}
		return rest, true
	}

	negative, present, after := sign(input)
	if c.SignMandatory && !present {
		return input, false
	}
	n, rest, ok := padded(after, 4, c.Padding)
	if !ok {
		return input, false
	}
	if negative {
		n = -n
	}
	if c.ISOWeekBased {
		p.SetISOYear(n)
	} else {
		p.SetYear(n)
	}
	return rest, true
}

func parseSubsecond(input string, digitCount description.SubsecondDigits) (int, string, bool) {
	min, max := int(digitCount), int(digitCount)
	if digitCount == description.SubsecondOneOrMore {
		min, max = 1, len(input)
	}

	i := 0
	for i < len(input) && i < max && isDigit(input[i]) {
		i++
	}
	if i < min {
		return 0, input, false
	}

	n := 0
	for j := 0; j < 9; j++ {
		n *= 10
		if j < i {
			n += int(input[j] - '0')
		}
	}
	return n, input[i:], true
}
