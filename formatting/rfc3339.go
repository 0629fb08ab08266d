// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package formatting

import (
	"bytes"

	"github.com/z5labs/timefmt/calendar"
	"github.com/z5labs/timefmt/description"
	"github.com/z5labs/timefmt/timeerr"
)

func formatRFC3339(buf *bytes.Buffer, p calendar.Parts) error {
	if p.Date == nil || p.Time == nil || p.Offset == nil {
		return timeerr.ErrInsufficientTypeInformation
	}
	if y := p.Date.Year(); y < 0 || y > 9999 {
		return timeerr.FormatInvalidComponent("year")
	}
	if p.Offset.Seconds() != 0 {
		return timeerr.FormatInvalidComponent("offset_second")
	}

	d, t, o := p.Date, p.Time, p.Offset
	writeNumber(buf, d.Year(), 4, description.PaddingZero)
	buf.WriteByte('-')
	writeNumber(buf, int(d.Month()), 2, description.PaddingZero)
	buf.WriteByte('-')
	writeNumber(buf, d.Day(), 2, description.PaddingZero)
	buf.WriteByte('T')
	writeNumber(buf, t.Hour(), 2, description.PaddingZero)
	buf.WriteByte(':')
	writeNumber(buf, t.Minute(), 2, description.PaddingZero)
	buf.WriteByte(':')
	writeNumber(buf, t.Second(), 2, description.PaddingZero)
	if t.Nanosecond() != 0 {
		buf.WriteByte('.')
		formatSubsecond(buf, t.Nanosecond(), description.SubsecondOneOrMore)
	}

	if o.IsUTC() {
		buf.WriteByte('Z')
		return nil
	}
	if o.IsNegative() {
		buf.WriteByte('-')
	} else {
		buf.WriteByte('+')
	}
	writeNumber(buf, abs(o.Hours()), 2, description.PaddingZero)
	buf.WriteByte(':')
	writeNumber(buf, abs(o.Minutes()), 2, description.PaddingZero)
	return nil
}
