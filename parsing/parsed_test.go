// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package parsing

import (
	"testing"
	"time"

	"github.com/z5labs/timefmt/timeerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsed_GettersSetters(t *testing.T) {
	testCases := []struct {
		name string
		set  func(*Parsed)
		get  func(*Parsed) (any, bool)
		want any
	}{
		{
			name: "year",
			set:  func(p *Parsed) { p.SetYear(5) },
			get:  func(p *Parsed) (any, bool) { return p.Year() },
			want: 5,
		},
		{
			name: "year last two",
			set:  func(p *Parsed) { p.SetYearLastTwo(5) },
			get:  func(p *Parsed) (any, bool) { return p.YearLastTwo() },
			want: 5,
		},
		{
			name: "iso year",
			set:  func(p *Parsed) { p.SetISOYear(5) },
			get:  func(p *Parsed) (any, bool) { return p.ISOYear() },
			want: 5,
		},
		{
			name: "iso year last two",
			set:  func(p *Parsed) { p.SetISOYearLastTwo(5) },
			get:  func(p *Parsed) (any, bool) { return p.ISOYearLastTwo() },
			want: 5,
		},
		{
			name: "month",
			set:  func(p *Parsed) { p.SetMonth(time.May) },
			get:  func(p *Parsed) (any, bool) { return p.Month() },
			want: time.May,
		},
		{
			name: "sunday week number",
			set:  func(p *Parsed) { p.SetSundayWeekNumber(5) },
			get:  func(p *Parsed) (any, bool) { return p.SundayWeekNumber() },
			want: 5,
		},
		{
			name: "monday week number",
			set:  func(p *Parsed) { p.SetMondayWeekNumber(5) },
			get:  func(p *Parsed) (any, bool) { return p.MondayWeekNumber() },
			want: 5,
		},
		{
			name: "iso week number",
			set:  func(p *Parsed) { p.SetISOWeekNumber(5) },
			get:  func(p *Parsed) (any, bool) { return p.ISOWeekNumber() },
			want: 5,
		},
		{
			name: "weekday",
			set:  func(p *Parsed) { p.SetWeekday(time.Monday) },
			get:  func(p *Parsed) (any, bool) { return p.Weekday() },
			want: time.Monday,
		},
		{
			name: "ordinal",
			set:  func(p *Parsed) { p.SetOrdinal(5) },
			get:  func(p *Parsed) (any, bool) { return p.Ordinal() },
			want: 5,
		},
		{
			name: "day",
			set:  func(p *Parsed) { p.SetDay(5) },
			get:  func(p *Parsed) (any, bool) { return p.Day() },
			want: 5,
		},
		{
			name: "hour 24",
			set:  func(p *Parsed) { p.SetHour24(5) },
			get:  func(p *Parsed) (any, bool) { return p.Hour24() },
			want: 5,
		},
		{
			name: "hour 12",
			set:  func(p *Parsed) { p.SetHour12(5) },
			get:  func(p *Parsed) (any, bool) { return p.Hour12() },
			want: 5,
		},
		{
			name: "hour 12 is pm",
			set:  func(p *Parsed) { p.SetHour12IsPM(true) },
			get:  func(p *Parsed) (any, bool) { return p.Hour12IsPM() },
			want: true,
		},
		{
			name: "minute",
			set:  func(p *Parsed) { p.SetMinute(5) },
			get:  func(p *Parsed) (any, bool) { return p.Minute() },
			want: 5,
		},
		{
			name: "second",
			set:  func(p *Parsed) { p.SetSecond(5) },
			get:  func(p *Parsed) (any, bool) { return p.Second() },
			want: 5,
		},
		{
			name: "subsecond",
			set:  func(p *Parsed) { p.SetSubsecond(5) },
			get:  func(p *Parsed) (any, bool) { return p.Subsecond() },
			want: 5,
		},
		{
			name: "offset hour",
			set:  func(p *Parsed) { p.SetOffsetHour(5) },
			get:  func(p *Parsed) (any, bool) { return p.OffsetHour() },
			want: 5,
		},
		{
			name: "offset minute",
			set:  func(p *Parsed) { p.SetOffsetMinute(5) },
			get:  func(p *Parsed) (any, bool) { return p.OffsetMinute() },
			want: 5,
		},
		{
			name: "offset second",
			set:  func(p *Parsed) { p.SetOffsetSecond(5) },
			get:  func(p *Parsed) (any, bool) { return p.OffsetSecond() },
			want: 5,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var p Parsed
			_, ok := tc.get(&p)
			require.False(t, ok)

			tc.set(&p)
			v, ok := tc.get(&p)
			require.True(t, ok)
			require.Equal(t, tc.want, v)
		})
	}
}

func TestParsed_LastWriteWins(t *testing.T) {
	t.Run("will keep the last value", func(t *testing.T) {
		t.Run("if a setter is called twice", func(t *testing.T) {
			var p Parsed
			p.SetDay(1)
			p.SetDay(2)

			day, ok := p.Day()
			if !assert.True(t, ok) {
				return
			}
			if !assert.Equal(t, 2, day) {
				return
			}
		})

		t.Run("if an option is applied twice", func(t *testing.T) {
			p, err := Build(WithMonth(time.March), WithMonth(time.April))
			if !assert.Nil(t, err) {
				return
			}

			month, ok := p.Month()
			if !assert.True(t, ok) {
				return
			}
			if !assert.Equal(t, time.April, month) {
				return
			}
		})
	})
}

func TestBuild(t *testing.T) {
	t.Run("will set every field", func(t *testing.T) {
		t.Run("if every option is valid", func(t *testing.T) {
			p, err := Build(
				WithYear(5),
				WithYearLastTwo(5),
				WithISOYear(5),
				WithISOYearLastTwo(5),
				WithMonth(time.May),
				WithSundayWeekNumber(5),
				WithMondayWeekNumber(5),
				WithISOWeekNumber(5),
				WithWeekday(time.Monday),
				WithOrdinal(5),
				WithDay(5),
				WithHour24(5),
				WithHour12(5),
				WithHour12IsPM(true),
				WithMinute(5),
				WithSecond(5),
				WithSubsecond(5),
				WithOffsetHour(5),
				WithOffsetMinute(5),
				WithOffsetSecond(5),
			)
			if !assert.Nil(t, err) {
				return
			}

			ints := []func() (int, bool){
				p.Year, p.YearLastTwo, p.ISOYear, p.ISOYearLastTwo,
				p.SundayWeekNumber, p.MondayWeekNumber, p.ISOWeekNumber,
				p.Ordinal, p.Day, p.Hour24, p.Hour12, p.Minute, p.Second,
				p.Subsecond, p.OffsetHour, p.OffsetMinute, p.OffsetSecond,
			}
			for _, get := range ints {
				v, ok := get()
				if !assert.True(t, ok) {
					return
				}
				if !assert.Equal(t, 5, v) {
					return
				}
			}

			month, _ := p.Month()
			if !assert.Equal(t, time.May, month) {
				return
			}
			weekday, _ := p.Weekday()
			if !assert.Equal(t, time.Monday, weekday) {
				return
			}
			pm, _ := p.Hour12IsPM()
			if !assert.True(t, pm) {
				return
			}
		})
	})

	t.Run("will stop at the first invalid option", func(t *testing.T) {
		t.Run("if a value cannot be represented by its field", func(t *testing.T) {
			applied := false
			p, err := Build(
				WithYear(2021),
				WithDay(0),
				func(*Parsed) error {
					applied = true
					return nil
				},
			)
			if !assert.Nil(t, p) {
				return
			}
			if !assert.False(t, applied) {
				return
			}

			var cr timeerr.ComponentRangeError
			if !assert.ErrorAs(t, err, &cr) {
				return
			}
			if !assert.Equal(t, "day", cr.Name) {
				return
			}
			if !assert.Equal(t, int64(0), cr.Value) {
				return
			}
		})

		t.Run("if the month is 13", func(t *testing.T) {
			_, err := Build(WithMonth(13))

			var cr timeerr.ComponentRangeError
			if !assert.ErrorAs(t, err, &cr) {
				return
			}
			if !assert.Equal(t, "month", cr.Name) {
				return
			}
		})
	})
}
