// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package calendar

import (
	"strconv"
	"testing"
	"time"

	"github.com/z5labs/timefmt/timeerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeksInYear(t *testing.T) {
	testCases := []struct {
		year  int
		weeks int
	}{
		{year: 2015, weeks: 53},
		{year: 2020, weeks: 53},
		{year: 2021, weeks: 52},
		{year: 2026, weeks: 53},
	}

	for _, tc := range testCases {
		t.Run(strconv.Itoa(tc.year), func(t *testing.T) {
			require.Equal(t, tc.weeks, WeeksInYear(tc.year))
		})
	}
}

func TestFromISOWeekDate(t *testing.T) {
	testCases := []struct {
		name    string
		year    int
		week    int
		weekday time.Weekday
		want    Date
	}{
		{
			name:    "first week starting in the previous year",
			year:    2019,
			week:    1,
			weekday: time.Monday,
			want:    Date{year: 2018, month: time.December, day: 31},
		},
		{
			name:    "last week ending in the next year",
			year:    2021,
			week:    52,
			weekday: time.Saturday,
			want:    Date{year: 2022, month: time.January, day: 1},
		},
		{
			name:    "mid year",
			year:    2021,
			week:    34,
			weekday: time.Friday,
			want:    Date{year: 2021, month: time.August, day: 27},
		},
		{
			name:    "sunday ends the week",
			year:    2021,
			week:    1,
			weekday: time.Sunday,
			want:    Date{year: 2021, month: time.January, day: 10},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := FromISOWeekDate(tc.year, tc.week, tc.weekday)
			require.NoError(t, err)
			require.Equal(t, tc.want, d)

			year, week := d.ISOWeek()
			require.Equal(t, tc.year, year)
			require.Equal(t, tc.week, week)
			require.Equal(t, tc.weekday, d.Weekday())
		})
	}

	t.Run("will return a ComponentRangeError", func(t *testing.T) {
		t.Run("if the week is past the last week of the year", func(t *testing.T) {
			_, err := FromISOWeekDate(2021, 53, time.Monday)

			var cr timeerr.ComponentRangeError
			if !assert.ErrorAs(t, err, &cr) {
				return
			}
			if !assert.Equal(t, "week number", cr.Name) {
				return
			}
			if !assert.Equal(t, int64(52), cr.Maximum) {
				return
			}
		})
	})
}

func TestFromOrdinalDate(t *testing.T) {
	t.Run("will return a date", func(t *testing.T) {
		t.Run("if the ordinal is within the year", func(t *testing.T) {
			d, err := FromOrdinalDate(2021, 60)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, Date{year: 2021, month: time.March, day: 1}, d) {
				return
			}
			if !assert.Equal(t, 60, d.Ordinal()) {
				return
			}
		})
	})

	t.Run("will return a ComponentRangeError", func(t *testing.T) {
		t.Run("if the ordinal is past the end of a leap year", func(t *testing.T) {
			_, err := FromOrdinalDate(0, 367)

			var cr timeerr.ComponentRangeError
			if !assert.ErrorAs(t, err, &cr) {
				return
			}
			if !assert.Equal(t, "ordinal", cr.Name) {
				return
			}
			if !assert.Equal(t, int64(366), cr.Maximum) {
				return
			}
			if !assert.Equal(t, int64(367), cr.Value) {
				return
			}
			if !assert.True(t, cr.Conditional) {
				return
			}
		})

		t.Run("if the year is out of range", func(t *testing.T) {
			_, err := FromOrdinalDate(10000, 1)

			var cr timeerr.ComponentRangeError
			if !assert.ErrorAs(t, err, &cr) {
				return
			}
			if !assert.Equal(t, "year", cr.Name) {
				return
			}
		})
	})
}

func TestFromCalendarDate(t *testing.T) {
	t.Run("will return a ComponentRangeError", func(t *testing.T) {
		t.Run("if the day does not exist in a non-leap february", func(t *testing.T) {
			_, err := FromCalendarDate(2021, time.February, 29)

			var cr timeerr.ComponentRangeError
			if !assert.ErrorAs(t, err, &cr) {
				return
			}
			if !assert.Equal(t, "day must be in the range 1..=28, given values of other parameters", cr.Error()) {
				return
			}
		})

		t.Run("if the month is 13", func(t *testing.T) {
			_, err := FromCalendarDate(2021, 13, 1)

			var cr timeerr.ComponentRangeError
			if !assert.ErrorAs(t, err, &cr) {
				return
			}
			if !assert.Equal(t, "month", cr.Name) {
				return
			}
			if !assert.False(t, cr.Conditional) {
				return
			}
		})
	})
}

func TestDate_Weeks(t *testing.T) {
	testCases := []struct {
		name   string
		date   Date
		sunday int
		monday int
	}{
		{
			name:   "friday before the first sunday",
			date:   Date{year: 2021, month: time.January, day: 1},
			sunday: 0,
			monday: 0,
		},
		{
			name:   "first sunday",
			date:   Date{year: 2021, month: time.January, day: 3},
			sunday: 1,
			monday: 0,
		},
		{
			name:   "first monday",
			date:   Date{year: 2021, month: time.January, day: 4},
			sunday: 1,
			monday: 1,
		},
		{
			name:   "year starting on sunday",
			date:   Date{year: 2023, month: time.January, day: 1},
			sunday: 1,
			monday: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.sunday, tc.date.SundayBasedWeek())
			require.Equal(t, tc.monday, tc.date.MondayBasedWeek())
		})
	}
}

func TestOffsetFromHMS(t *testing.T) {
	t.Run("will take the sign of the hour", func(t *testing.T) {
		t.Run("if the hour is negative", func(t *testing.T) {
			o, err := OffsetFromHMS(-1, 30, 0)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, -30, o.Minutes()) {
				return
			}
			if !assert.Equal(t, "-01:30", o.String()) {
				return
			}
			if !assert.Equal(t, -5400, o.WholeSeconds()) {
				return
			}
		})
	})

	t.Run("will take the sign of the minute", func(t *testing.T) {
		t.Run("if the hour is zero", func(t *testing.T) {
			o, err := OffsetFromHMS(0, -30, 15)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.True(t, o.IsNegative()) {
				return
			}
			if !assert.Equal(t, "-00:30:15", o.String()) {
				return
			}
		})
	})

	t.Run("will return a ComponentRangeError", func(t *testing.T) {
		t.Run("if the hour is 24", func(t *testing.T) {
			_, err := OffsetFromHMS(24, 0, 0)

			var cr timeerr.ComponentRangeError
			if !assert.ErrorAs(t, err, &cr) {
				return
			}
			if !assert.Equal(t, "offset hour", cr.Name) {
				return
			}
		})
	})
}

func TestFromStd(t *testing.T) {
	t.Run("will convert a standard library time", func(t *testing.T) {
		t.Run("if its year is in range", func(t *testing.T) {
			std := time.Date(2021, time.March, 4, 5, 6, 7, 8, time.FixedZone("", 5400))

			odt, err := FromStd(std)
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, "2021-03-04 05:06:07.000000008 +01:30", odt.String()) {
				return
			}
			if !assert.True(t, std.Equal(odt.Std())) {
				return
			}
		})
	})

	t.Run("will return a ConversionRangeError", func(t *testing.T) {
		t.Run("if its year is out of range", func(t *testing.T) {
			_, err := FromStd(time.Date(10000, time.January, 1, 0, 0, 0, 0, time.UTC))

			var cre timeerr.ConversionRangeError
			if !assert.ErrorAs(t, err, &cre) {
				return
			}
		})
	})
}

func TestDateTime_In(t *testing.T) {
	dt := NewDateTime(Date{year: 2021, month: time.July, day: 1}, Time{hour: 12})

	t.Run("will attach the offset of the location", func(t *testing.T) {
		t.Run("if the location is a fixed zone", func(t *testing.T) {
			odt, err := dt.In(time.FixedZone("", -4*3600))
			if !assert.Nil(t, err) {
				return
			}
			if !assert.Equal(t, -4, odt.Offset().Hours()) {
				return
			}
		})
	})

	t.Run("will return an IndeterminateOffsetError", func(t *testing.T) {
		t.Run("if no location is given", func(t *testing.T) {
			_, err := dt.In(nil)

			var ioe timeerr.IndeterminateOffsetError
			if !assert.ErrorAs(t, err, &ioe) {
				return
			}
		})
	})
}
