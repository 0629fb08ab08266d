// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package timefmt

import (
	"io"

	"github.com/z5labs/timefmt/calendar"
	"github.com/z5labs/timefmt/description"
	"github.com/z5labs/timefmt/formatting"
	"github.com/z5labs/timefmt/parsing"
	"github.com/z5labs/timefmt/timeerr"
)

// Value is any calendar value which text can be parsed into.
type Value interface {
	calendar.Date | calendar.Time | calendar.Offset | calendar.DateTime | calendar.OffsetDateTime
}

// Parse parses the whole of input as described by items and resolves
// the result into a T. Any failure is a [timeerr.ParseError].
func Parse[T Value](input string, items ...description.Item) (T, error) {
	var v T
	p, err := parsing.Parse(input, items...)
	if err != nil {
		return v, err
	}

	switch x := any(&v).(type) {
	case *calendar.Date:
		*x, err = p.Date()
	case *calendar.Time:
		*x, err = p.Time()
	case *calendar.Offset:
		*x, err = p.Offset()
	case *calendar.DateTime:
		*x, err = p.DateTime()
	case *calendar.OffsetDateTime:
		*x, err = p.OffsetDateTime()
	}
	if err != nil {
		var zero T
		return zero, timeerr.ParseOf(err.(timeerr.ResolveError))
	}
	return v, nil
}

// ParseLayout compiles layout and parses input with it.
func ParseLayout[T Value](input, layout string) (T, error) {
	items, err := description.Compile(layout)
	if err != nil {
		var zero T
		return zero, timeerr.ParseOf(err.(timeerr.InvalidDescriptionError))
	}
	return Parse[T](input, items...)
}

// ParseDate parses input described by layout into a date.
func ParseDate(input, layout string) (calendar.Date, error) {
	return ParseLayout[calendar.Date](input, layout)
}

// ParseTime parses input described by layout into a time.
func ParseTime(input, layout string) (calendar.Time, error) {
	return ParseLayout[calendar.Time](input, layout)
}

// ParseOffset parses input described by layout into a UTC offset.
func ParseOffset(input, layout string) (calendar.Offset, error) {
	return ParseLayout[calendar.Offset](input, layout)
}

// ParseDateTime parses input described by layout into a date and time.
func ParseDateTime(input, layout string) (calendar.DateTime, error) {
	return ParseLayout[calendar.DateTime](input, layout)
}

// ParseOffsetDateTime parses input described by layout into a date and time at a UTC offset.
func ParseOffsetDateTime(input, layout string) (calendar.OffsetDateTime, error) {
	return ParseLayout[calendar.OffsetDateTime](input, layout)
}

// Format compiles layout and writes v formatted with it to w.
// Any failure is a [timeerr.Error].
func Format(w io.Writer, v formatting.Value, layout string) (int, error) {
	items, err := description.Compile(layout)
	if err != nil {
		return 0, timeerr.From(err.(timeerr.InvalidDescriptionError))
	}
	n, err := formatting.Format(w, v, items...)
	if err != nil {
		return n, timeerr.From(err.(timeerr.FormatError))
	}
	return n, nil
}

// FormatString compiles layout and returns v formatted with it.
// Any failure is a [timeerr.Error].
func FormatString(v formatting.Value, layout string) (string, error) {
	items, err := description.Compile(layout)
	if err != nil {
		return "", timeerr.From(err.(timeerr.InvalidDescriptionError))
	}
	s, err := formatting.String(v, items...)
	if err != nil {
		return "", timeerr.From(err.(timeerr.FormatError))
	}
	return s, nil
}
