// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package calendar

import "fmt"

// Offset is a validated UTC offset.
type Offset struct {
	hours   int
	minutes int
	seconds int
}

// UTC is the zero offset.
var UTC = Offset{}

// OffsetFromHMS returns the Offset for the given hours, minutes and seconds.
// Minutes and seconds take the sign of the most significant non-zero component.
func OffsetFromHMS(hours, minutes, seconds int) (Offset, error) {
	if err := checkRange("offset hour", hours, -23, 23, false); err != nil {
		return Offset{}, err
	}
	if err := checkRange("offset minute", minutes, -59, 59, false); err != nil {
		return Offset{}, err
	}
	if err := checkRange("offset second", seconds, -59, 59, false); err != nil {
		return Offset{}, err
	}

	switch {
	case hours > 0:
		minutes, seconds = abs(minutes), abs(seconds)
	case hours < 0:
		minutes, seconds = -abs(minutes), -abs(seconds)
	case minutes > 0:
		seconds = abs(seconds)
	case minutes < 0:
		seconds = -abs(seconds)
	}
	return Offset{hours: hours, minutes: minutes, seconds: seconds}, nil
}

// OffsetFromSeconds returns the Offset which is the given number of seconds east of UTC.
func OffsetFromSeconds(seconds int) (Offset, error) {
	return OffsetFromHMS(seconds/3600, seconds/60%60, seconds%60)
}

// Hours returns the signed hour component.
func (o Offset) Hours() int { return o.hours }

// Minutes returns the signed minute component.
func (o Offset) Minutes() int { return o.minutes }

// Seconds returns the signed second component.
func (o Offset) Seconds() int { return o.seconds }

// WholeSeconds returns the total offset in seconds east of UTC.
func (o Offset) WholeSeconds() int {
	return o.hours*3600 + o.minutes*60 + o.seconds
}

// IsNegative reports whether o is west of UTC.
func (o Offset) IsNegative() bool {
	return o.hours < 0 || o.minutes < 0 || o.seconds < 0
}

// IsUTC reports whether o is the zero offset.
func (o Offset) IsUTC() bool {
	return o == UTC
}

// Parts implements the formatting value interface.
func (o Offset) Parts() Parts {
	return Parts{Offset: &o}
}

// String returns o as ±hh:mm, with :ss appended when seconds are present.
func (o Offset) String() string {
	sign := '+'
	if o.IsNegative() {
		sign = '-'
	}
	s := fmt.Sprintf("%c%02d:%02d", sign, abs(o.hours), abs(o.minutes))
	if o.seconds != 0 {
		s += fmt.Sprintf(":%02d", abs(o.seconds))
	}
	return s
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
