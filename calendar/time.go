// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package calendar

import "fmt"

// Time is a validated wall clock time with nanosecond precision.
type Time struct {
	hour       int
	minute     int
	second     int
	nanosecond int
}

// Midnight is 00:00:00.
var Midnight = Time{}

// FromHMS returns the Time for the given hour, minute and second.
func FromHMS(hour, minute, second int) (Time, error) {
	return FromHMSNano(hour, minute, second, 0)
}

// FromHMSNano returns the Time for the given hour, minute, second and nanosecond.
func FromHMSNano(hour, minute, second, nanosecond int) (Time, error) {
	if err := checkRange("hour", hour, 0, 23, false); err != nil {
		return Time{}, err
	}
	if err := checkRange("minute", minute, 0, 59, false); err != nil {
		return Time{}, err
	}
	if err := checkRange("second", second, 0, 59, false); err != nil {
		return Time{}, err
	}
	if err := checkRange("nanosecond", nanosecond, 0, 999_999_999, false); err != nil {
		return Time{}, err
	}
	return Time{hour: hour, minute: minute, second: second, nanosecond: nanosecond}, nil
}

// Hour returns the hour of the day, 0 through 23.
func (t Time) Hour() int { return t.hour }

// Minute returns the minute of the hour.
func (t Time) Minute() int { return t.minute }

// Second returns the second of the minute.
func (t Time) Second() int { return t.second }

// Nanosecond returns the nanosecond of the second.
func (t Time) Nanosecond() int { return t.nanosecond }

// Parts implements the formatting value interface.
func (t Time) Parts() Parts {
	return Parts{Time: &t}
}

// String returns t as hh:mm:ss with an optional fractional second.
func (t Time) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
	if t.nanosecond == 0 {
		return s
	}
	frac := fmt.Sprintf("%09d", t.nanosecond)
	for frac[len(frac)-1] == '0' {
		frac = frac[:len(frac)-1]
	}
	return s + "." + frac
}
