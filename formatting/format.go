// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package formatting

import (
	"bytes"
	"io"

	"github.com/z5labs/timefmt/calendar"
	"github.com/z5labs/timefmt/description"
	"github.com/z5labs/timefmt/timeerr"
)

// Value is implemented by every calendar value which can be formatted.
type Value interface {
	Parts() calendar.Parts
}

// Format writes v to w as described by items. Errors are always a
// [timeerr.FormatError]; a failed write is its I/O variant.
func Format(w io.Writer, v Value, items ...description.Item) (int, error) {
	b, err := Append(nil, v, items...)
	if err != nil {
		return 0, err
	}

	n, err := w.Write(b)
	if err != nil {
		return n, timeerr.FormatIO(err)
	}
	if n < len(b) {
		return n, timeerr.FormatIO(io.ErrShortWrite)
	}
	return n, nil
}

// String returns v formatted as described by items.
func String(v Value, items ...description.Item) (string, error) {
	b, err := Append(nil, v, items...)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Append appends v formatted as described by items to dst. On failure
// dst is returned unchanged.
func Append(dst []byte, v Value, items ...description.Item) ([]byte, error) {
	parts := v.Parts()
	if !requires(items).satisfiedBy(parts) {
		return dst, timeerr.ErrInsufficientTypeInformation
	}

	buf := bytes.NewBuffer(dst)
	for _, item := range items {
		err := formatItem(buf, parts, item)
		if err != nil {
			return dst, err
		}
	}
	return buf.Bytes(), nil
}

type need struct {
	date, time, offset bool
}

func (n need) satisfiedBy(p calendar.Parts) bool {
	return (!n.date || p.Date != nil) && (!n.time || p.Time != nil) && (!n.offset || p.Offset != nil)
}

// requires reports which parts of a value the items read from.
func requires(items []description.Item) need {
	var n need
	for _, item := range items {
		switch x := item.(type) {
		case description.Compound:
			m := requires(x)
			n.date = n.date || m.date
			n.time = n.time || m.time
			n.offset = n.offset || m.offset
		case description.WellKnown:
			n = need{date: true, time: true, offset: true}
		case description.Day, description.Month, description.Ordinal, description.Weekday,
			description.WeekNumber, description.Year:
			n.date = true
		case description.Hour, description.Minute, description.Period, description.Second,
			description.Subsecond:
			n.time = true
		case description.OffsetHour, description.OffsetMinute, description.OffsetSecond:
			n.offset = true
		}
	}
	return n
}

func formatItem(buf *bytes.Buffer, p calendar.Parts, item description.Item) error {
	switch x := item.(type) {
	case description.Literal:
		buf.WriteString(string(x))
		return nil
	case description.Compound:
		for _, item := range x {
			err := formatItem(buf, p, item)
			if err != nil {
				return err
			}
		}
		return nil
	case description.WellKnown:
		return formatRFC3339(buf, p)
	case description.Component:
		formatComponent(buf, p, x)
		return nil
	default:
		return timeerr.ErrInsufficientTypeInformation
	}
}
