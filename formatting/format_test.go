// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package formatting

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/z5labs/timefmt/calendar"
	"github.com/z5labs/timefmt/description"
	"github.com/z5labs/timefmt/timeerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func offsetDateTime(t *testing.T, year int, month time.Month, day, hour, minute, second, nano, offHour, offMinute, offSecond int) calendar.OffsetDateTime {
	t.Helper()

	d, err := calendar.FromCalendarDate(year, month, day)
	require.NoError(t, err)
	clock, err := calendar.FromHMSNano(hour, minute, second, nano)
	require.NoError(t, err)
	o, err := calendar.OffsetFromHMS(offHour, offMinute, offSecond)
	require.NoError(t, err)
	return calendar.NewOffsetDateTime(d, clock, o)
}

func TestString(t *testing.T) {
	// A Sunday in the last ISO week of 2020.
	sunday := offsetDateTime(t, 2021, time.January, 3, 13, 5, 9, 120_000_000, -5, -30, 0)

	testCases := []struct {
		desc string
		want string
	}{
		{desc: "[year]-[month]-[day]", want: "2021-01-03"},
		{desc: "[day padding:space]|[day padding:none]", want: " 3|3"},
		{desc: "[month repr:long] [month repr:short] [month padding:none]", want: "January Jan 1"},
		{desc: "[ordinal] [ordinal padding:space] [ordinal padding:none]", want: "003   3 3"},
		{desc: "[weekday] [weekday repr:short]", want: "Sunday Sun"},
		{desc: "[weekday repr:sunday] [weekday repr:sunday one_indexed:false]", want: "1 0"},
		{desc: "[weekday repr:monday] [weekday repr:monday one_indexed:false]", want: "7 6"},
		{desc: "[week_number] [week_number repr:sunday] [week_number repr:monday]", want: "53 01 00"},
		{desc: "[year base:iso_week] [year repr:last_two] [year sign:mandatory]", want: "2020 21 +2021"},
		{desc: "[hour]:[minute]:[second]", want: "13:05:09"},
		{desc: "[hour repr:12] [hour repr:12 padding:none] [period] [period case:lower]", want: "01 1 PM pm"},
		{desc: "[subsecond] [subsecond digits:1] [subsecond digits:3] [subsecond digits:9]", want: "12 1 120 120000000"},
		{desc: "[offset_hour]:[offset_minute]:[offset_second]", want: "-05:30:00"},
		{desc: "[offset_hour sign:mandatory padding:none]", want: "-5"},
		{desc: "[[[hour]]", want: "[13]"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			s, err := String(sunday, description.MustCompile(tc.desc)...)
			require.NoError(t, err)
			require.Equal(t, tc.want, s)
		})
	}
}

func TestString_Edges(t *testing.T) {
	testCases := []struct {
		name  string
		value Value
		desc  string
		want  string
	}{
		{
			name:  "negative year",
			value: mustDate(t, -44, time.March, 15),
			desc:  "[year] [year repr:last_two] [year padding:none]",
			want:  "-0044 44 -44",
		},
		{
			name:  "midnight on a 12 hour clock",
			value: calendar.Midnight,
			desc:  "[hour repr:12] [period]",
			want:  "12 AM",
		},
		{
			name:  "noon on a 12 hour clock",
			value: mustTime(t, 12, 0, 0, 0),
			desc:  "[hour repr:12] [period]",
			want:  "12 PM",
		},
		{
			name:  "whole second",
			value: calendar.Midnight,
			desc:  "[subsecond]",
			want:  "0",
		},
		{
			name:  "positive offset",
			value: mustOffset(t, 1, 0, 0),
			desc:  "[offset_hour]:[offset_minute] [offset_hour sign:mandatory]",
			want:  "01:00 +01",
		},
		{
			name:  "negative offset under an hour",
			value: mustOffset(t, 0, -30, 0),
			desc:  "[offset_hour]:[offset_minute]",
			want:  "-00:30",
		},
		{
			name:  "empty description",
			value: mustTime(t, 7, 8, 9, 0),
			desc:  "",
			want:  "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := String(tc.value, description.MustCompile(tc.desc)...)
			require.NoError(t, err)
			require.Equal(t, tc.want, s)
		})
	}
}

func TestString_RFC3339(t *testing.T) {
	testCases := []struct {
		name  string
		value Value
		want  string
	}{
		{
			name:  "negative offset with fraction",
			value: offsetDateTime(t, 2021, time.January, 3, 13, 5, 9, 120_000_000, -5, -30, 0),
			want:  "2021-01-03T13:05:09.12-05:30",
		},
		{
			name:  "utc",
			value: offsetDateTime(t, 1985, time.April, 12, 23, 20, 50, 0, 0, 0, 0),
			want:  "1985-04-12T23:20:50Z",
		},
		{
			name:  "positive offset",
			value: offsetDateTime(t, 1, time.January, 1, 0, 0, 0, 1, 14, 0, 0),
			want:  "0001-01-01T00:00:00.000000001+14:00",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := String(tc.value, description.RFC3339)
			require.NoError(t, err)
			require.Equal(t, tc.want, s)
		})
	}
}

type failingWriter struct {
	err error
}

func (w failingWriter) Write(b []byte) (int, error) {
	return 0, w.err
}

func TestFormat(t *testing.T) {
	odt := offsetDateTime(t, 2021, time.January, 3, 13, 5, 9, 0, 0, 0, 0)

	t.Run("will write the formatted value once", func(t *testing.T) {
		t.Run("if every component can be formatted", func(t *testing.T) {
			var buf bytes.Buffer
			n, err := Format(&buf, odt, description.MustCompile("[day]/[month]/[year] [hour]:[minute]")...)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, 16, n) {
				return
			}
			if !assert.Equal(t, "03/01/2021 13:05", buf.String()) {
				return
			}
		})
	})

	t.Run("will return the io variant of FormatError", func(t *testing.T) {
		t.Run("if the writer fails", func(t *testing.T) {
			writeErr := errors.New("disk full")

			_, err := Format(failingWriter{err: writeErr}, odt, description.Day{})
			if !assert.ErrorIs(t, err, writeErr) {
				return
			}

			var fe timeerr.FormatError
			if !assert.ErrorAs(t, err, &fe) {
				return
			}
			ioErr, err := fe.UnwrapIO()
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, writeErr, ioErr) {
				return
			}
		})
	})

	t.Run("will return ErrInsufficientTypeInformation without writing", func(t *testing.T) {
		t.Run("if a date is formatted with a time component", func(t *testing.T) {
			var buf bytes.Buffer
			n, err := Format(&buf, odt.Date(), description.MustCompile("[year] [hour]")...)

			var fe timeerr.FormatError
			if !assert.ErrorAs(t, err, &fe) {
				return
			}
			if !assert.True(t, fe.IsInsufficientTypeInformation()) {
				return
			}
			if !assert.Equal(t, 0, n) {
				return
			}
			if !assert.Equal(t, 0, buf.Len()) {
				return
			}
		})

		t.Run("if a date time is formatted with an offset nested in a compound", func(t *testing.T) {
			items := []description.Item{
				description.Compound{description.Hour{}, description.Compound{description.OffsetHour{}}},
			}

			var buf bytes.Buffer
			_, err := Format(&buf, odt.DateTime, items...)
			if !assert.Equal(t, timeerr.ErrInsufficientTypeInformation, err) {
				return
			}
			if !assert.Equal(t, 0, buf.Len()) {
				return
			}
		})

		t.Run("if a date time is formatted as RFC3339", func(t *testing.T) {
			_, err := String(odt.DateTime, description.RFC3339)
			if !assert.Equal(t, timeerr.ErrInsufficientTypeInformation, err) {
				return
			}
		})
	})

	t.Run("will return an invalid component FormatError", func(t *testing.T) {
		t.Run("if RFC3339 is given a negative year", func(t *testing.T) {
			_, err := String(offsetDateTime(t, -1, time.January, 1, 0, 0, 0, 0, 0, 0, 0), description.RFC3339)

			var fe timeerr.FormatError
			if !assert.ErrorAs(t, err, &fe) {
				return
			}
			name, ok := fe.InvalidComponent()
			if !assert.True(t, ok) {
				return
			}
			if !assert.Equal(t, "year", name) {
				return
			}
		})

		t.Run("if RFC3339 is given an offset with seconds", func(t *testing.T) {
			_, err := String(offsetDateTime(t, 2021, time.January, 1, 0, 0, 0, 0, 1, 0, 30), description.RFC3339)

			var fe timeerr.FormatError
			if !assert.ErrorAs(t, err, &fe) {
				return
			}
			name, ok := fe.InvalidComponent()
			if !assert.True(t, ok) {
				return
			}
			if !assert.Equal(t, "offset_second", name) {
				return
			}
		})
	})
}

func TestAppend(t *testing.T) {
	t.Run("will leave dst unchanged", func(t *testing.T) {
		t.Run("if formatting fails", func(t *testing.T) {
			dst := []byte("prefix:")
			out, err := Append(dst, calendar.Midnight, description.Day{})
			if !assert.Error(t, err) {
				return
			}
			if !assert.Equal(t, "prefix:", string(out)) {
				return
			}
		})
	})
}

func mustDate(t *testing.T, year int, month time.Month, day int) calendar.Date {
	t.Helper()
	d, err := calendar.FromCalendarDate(year, month, day)
	require.NoError(t, err)
	return d
}

func mustTime(t *testing.T, hour, minute, second, nano int) calendar.Time {
	t.Helper()
	clock, err := calendar.FromHMSNano(hour, minute, second, nano)
	require.NoError(t, err)
	return clock
}

func mustOffset(t *testing.T, hours, minutes, seconds int) calendar.Offset {
	t.Helper()
	o, err := calendar.OffsetFromHMS(hours, minutes, seconds)
	require.NoError(t, err)
	return o
}
