package calendar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-go/meridian/calendar"
)

func TestIsLeapYear(t *testing.T) {
	testcases := map[int]bool{
		2000:  true,
		1900:  false,
		2004:  true,
		2005:  false,
		0:     true,
		-4:    true,
		-100:  false,
		-400:  true,
		2100:  false,
		2400:  true,
	}
	for year, leap := range testcases {
		assert.Equal(t, leap, calendar.IsLeapYear(year), "year %d", year)
	}
}

func TestDaysInYear(t *testing.T) {
	assert.Equal(t, 366, calendar.DaysInYear(2020))
	assert.Equal(t, 365, calendar.DaysInYear(2021))
	assert.Equal(t, 366, calendar.DaysInYear(0))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, calendar.DaysInMonth(2, 2020))
	assert.Equal(t, 28, calendar.DaysInMonth(2, 2021))
	assert.Equal(t, 31, calendar.DaysInMonth(1, 2021))
	assert.Equal(t, 30, calendar.DaysInMonth(4, 2021))
	assert.Equal(t, 31, calendar.DaysInMonth(12, 2021))
}

func TestOrdinalCalendarRoundTrip(t *testing.T) {
	for year := -400; year <= 2400; year++ {
		days := calendar.DaysInYear(year)
		for ordinal := 1; ordinal <= days; ordinal++ {
			month, day := calendar.MonthDayFromOrdinal(year, ordinal)
			back := calendar.OrdinalFromCalendar(year, month, day)
			if back != ordinal {
				t.Fatalf("year %d ordinal %d: got month %d day %d, back %d",
					year, ordinal, month, day, back)
			}
		}
	}
}

func TestJulianDayRoundTrip(t *testing.T) {
	for year := -400; year <= 2400; year++ {
		days := calendar.DaysInYear(year)
		for ordinal := 1; ordinal <= days; ordinal++ {
			jd := calendar.JulianDayFromOrdinalDate(year, ordinal)
			y, o := calendar.OrdinalDateFromJulianDay(jd)
			if y != year || o != ordinal {
				t.Fatalf("year %d ordinal %d: jd %d resolved to year %d ordinal %d",
					year, ordinal, jd, y, o)
			}
		}
	}
}

func TestJulianDayKnownValues(t *testing.T) {
	// Julian day 0 is -4713-11-24 in the proleptic Gregorian calendar.
	y, o := calendar.OrdinalDateFromJulianDay(0)
	assert.Equal(t, -4713, y)
	month, day := calendar.MonthDayFromOrdinal(y, o)
	assert.Equal(t, 11, month)
	assert.Equal(t, 24, day)

	// 2000-01-01 is Julian day 2451545.
	assert.Equal(t, 2_451_545, calendar.JulianDayFromOrdinalDate(2000, 1))

	// 2000-12-31, the last day of a leap year ending a century cycle.
	assert.Equal(t, 2_451_910, calendar.JulianDayFromOrdinalDate(2000, 366))
	y, o = calendar.OrdinalDateFromJulianDay(2_451_910)
	assert.Equal(t, 2000, y)
	assert.Equal(t, 366, o)
}

func TestJulianDaySequential(t *testing.T) {
	// Consecutive days have consecutive Julian day numbers across year
	// boundaries.
	prev := calendar.JulianDayFromOrdinalDate(1999, 365)
	for _, tc := range []struct{ year, ordinal int }{
		{2000, 1}, {2000, 2},
	} {
		jd := calendar.JulianDayFromOrdinalDate(tc.year, tc.ordinal)
		assert.Equal(t, prev+1, jd)
		prev = jd
	}
}

func TestWeekday(t *testing.T) {
	// 2000-01-01 was a Saturday.
	assert.Equal(t, calendar.Saturday, calendar.WeekdayFromOrdinalDate(2000, 1))
	// 2021-01-01 was a Friday.
	assert.Equal(t, calendar.Friday, calendar.WeekdayFromOrdinalDate(2021, 1))
	// 1970-01-01 was a Thursday.
	assert.Equal(t, calendar.Thursday, calendar.WeekdayFromOrdinalDate(1970, 1))
	// Year 0, day 1 (0000-01-01) was a Saturday.
	assert.Equal(t, calendar.Saturday, calendar.WeekdayFromOrdinalDate(0, 1))
}

func TestWeeksInYear(t *testing.T) {
	// 53-week years: January 1 is a Thursday, or a Wednesday in a leap year.
	assert.Equal(t, 53, calendar.WeeksInYear(2015))
	assert.Equal(t, 53, calendar.WeeksInYear(2020))
	assert.Equal(t, 52, calendar.WeeksInYear(2021))
	assert.Equal(t, 52, calendar.WeeksInYear(2019))
}

func TestISOWeekDateCarry(t *testing.T) {
	// 2021-01-01 belongs to ISO week 53 of 2020.
	isoYear, week, weekday := calendar.ISOWeekDateFromOrdinalDate(2021, 1)
	assert.Equal(t, 2020, isoYear)
	assert.Equal(t, 53, week)
	assert.Equal(t, calendar.Friday, weekday)

	// 2019-12-30 belongs to ISO week 1 of 2020.
	isoYear, week, weekday = calendar.ISOWeekDateFromOrdinalDate(2019, 364)
	assert.Equal(t, 2020, isoYear)
	assert.Equal(t, 1, week)
	assert.Equal(t, calendar.Monday, weekday)
}

func TestOrdinalDateFromISOWeekDate(t *testing.T) {
	// The Thursday of 2020-W53 is the last day of 2020.
	year, ordinal := calendar.OrdinalDateFromISOWeekDate(2020, 53, calendar.Thursday)
	assert.Equal(t, 2020, year)
	assert.Equal(t, 366, ordinal)

	// The Friday of the same week carries into the next calendar year.
	year, ordinal = calendar.OrdinalDateFromISOWeekDate(2020, 53, calendar.Friday)
	assert.Equal(t, 2021, year)
	assert.Equal(t, 1, ordinal)

	// And week 1 of 2020 reaches back into 2019.
	year, ordinal = calendar.OrdinalDateFromISOWeekDate(2020, 1, calendar.Monday)
	assert.Equal(t, 2019, year)
	assert.Equal(t, 364, ordinal)
}

func TestISOWeekDateRoundTrip(t *testing.T) {
	for year := 1990; year <= 2030; year++ {
		days := calendar.DaysInYear(year)
		for ordinal := 1; ordinal <= days; ordinal++ {
			isoYear, week, weekday := calendar.ISOWeekDateFromOrdinalDate(year, ordinal)
			require.LessOrEqual(t, week, calendar.WeeksInYear(isoYear))
			y, o := calendar.OrdinalDateFromISOWeekDate(isoYear, week, weekday)
			if y != year || o != ordinal {
				t.Fatalf("year %d ordinal %d: iso (%d, %d, %d) resolved to year %d ordinal %d",
					year, ordinal, isoYear, week, weekday, y, o)
			}
		}
	}
}
