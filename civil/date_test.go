package civil_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-go/meridian/civil"
)

func TestDateFromCalendar(t *testing.T) {
	d, err := civil.DateFromCalendar(2021, civil.March, 14)
	require.NoError(t, err)
	year, month, day := d.CalendarDate()
	assert.Equal(t, 2021, year)
	assert.Equal(t, civil.March, month)
	assert.Equal(t, 14, day)
	assert.Equal(t, 31+28+14, d.Ordinal())

	// Leap day exists in 2020 but not in 2021.
	_, err = civil.DateFromCalendar(2020, civil.February, 29)
	assert.NoError(t, err)
	_, err = civil.DateFromCalendar(2021, civil.February, 29)
	require.Error(t, err)
	assert.Equal(t, "day must be in the range 1..=28, got 29, given the values of other components", err.Error())

	_, err = civil.DateFromCalendar(2021, civil.Month(13), 1)
	require.Error(t, err)
	assert.Equal(t, "month must be in the range 1..=12, got 13", err.Error())

	_, err = civil.DateFromCalendar(civil.MaxYear+1, civil.January, 1)
	require.Error(t, err)
	assert.Equal(t,
		fmt.Sprintf("year must be in the range %d..=%d, got %d", civil.MinYear, civil.MaxYear, civil.MaxYear+1),
		err.Error())
}

func TestDateFromOrdinal(t *testing.T) {
	d, err := civil.DateFromOrdinal(2020, 366)
	require.NoError(t, err)
	assert.Equal(t, civil.December, d.Month())
	assert.Equal(t, 31, d.Day())

	_, err = civil.DateFromOrdinal(2021, 366)
	require.Error(t, err)
	assert.Equal(t, "ordinal must be in the range 1..=365, got 366, given the values of other components", err.Error())

	_, err = civil.DateFromOrdinal(2021, 0)
	assert.Error(t, err)
}

func TestDateFromISOWeek(t *testing.T) {
	// The Friday of 2020-W53 is 2021-01-01.
	d, err := civil.DateFromISOWeek(2020, 53, civil.Friday)
	require.NoError(t, err)
	assert.Equal(t, civil.MustDateFromCalendar(2021, civil.January, 1), d)

	// 2021 has 52 weeks.
	_, err = civil.DateFromISOWeek(2021, 53, civil.Monday)
	require.Error(t, err)
	assert.Equal(t, "week must be in the range 1..=52, got 53, given the values of other components", err.Error())

	_, err = civil.DateFromISOWeek(2021, 1, civil.Weekday(0))
	assert.Error(t, err)
}

func TestDateISOWeekDate(t *testing.T) {
	isoYear, week, weekday := civil.MustDateFromCalendar(2021, civil.January, 1).ISOWeekDate()
	assert.Equal(t, 2020, isoYear)
	assert.Equal(t, 53, week)
	assert.Equal(t, civil.Friday, weekday)

	isoYear, week, weekday = civil.MustDateFromCalendar(2019, civil.December, 30).ISOWeekDate()
	assert.Equal(t, 2020, isoYear)
	assert.Equal(t, 1, week)
	assert.Equal(t, civil.Monday, weekday)
}

func TestDateJulianDay(t *testing.T) {
	d := civil.MustDateFromCalendar(2000, civil.January, 1)
	assert.Equal(t, 2_451_545, d.JulianDay())
	assert.Equal(t, civil.Saturday, d.Weekday())

	back, err := civil.DateFromJulianDay(2_451_545)
	require.NoError(t, err)
	assert.Equal(t, d, back)
}

func TestDateWeekNumbers(t *testing.T) {
	// 2023-01-01 was a Sunday, so it opens Sunday-based week 1 while still
	// sitting in Monday-based week 0.
	d := civil.MustDateFromCalendar(2023, civil.January, 1)
	assert.Equal(t, civil.Sunday, d.Weekday())
	assert.Equal(t, 1, d.SundayBasedWeek())
	assert.Equal(t, 0, d.MondayBasedWeek())

	// 2021-01-01 was a Friday; both week counts start at 0.
	d = civil.MustDateFromCalendar(2021, civil.January, 1)
	assert.Equal(t, 0, d.SundayBasedWeek())
	assert.Equal(t, 0, d.MondayBasedWeek())
}

func TestDateNextPreviousDay(t *testing.T) {
	d := civil.MustDateFromCalendar(2020, civil.December, 31)
	next, ok := d.NextDay()
	require.True(t, ok)
	assert.Equal(t, civil.MustDateFromCalendar(2021, civil.January, 1), next)

	prev, ok := next.PreviousDay()
	require.True(t, ok)
	assert.Equal(t, d, prev)

	_, ok = civil.MaxDate.NextDay()
	assert.False(t, ok)
	_, ok = civil.MinDate.PreviousDay()
	assert.False(t, ok)
}

func TestDateAddDays(t *testing.T) {
	d := civil.MustDateFromCalendar(2020, civil.February, 28)

	got, err := d.AddDays(2)
	require.NoError(t, err)
	assert.Equal(t, civil.MustDateFromCalendar(2020, civil.March, 1), got)

	// Four years, crossing one leap day.
	got, err = d.AddDays(4*365 + 1)
	require.NoError(t, err)
	assert.Equal(t, civil.MustDateFromCalendar(2024, civil.February, 28), got)

	got, err = d.AddDays(-59)
	require.NoError(t, err)
	assert.Equal(t, civil.MustDateFromCalendar(2019, civil.December, 31), got)

	_, err = civil.MaxDate.AddDays(1)
	assert.Error(t, err)
}

func TestDateSubAndCompare(t *testing.T) {
	a := civil.MustDateFromCalendar(2021, civil.January, 1)
	b := civil.MustDateFromCalendar(2020, civil.January, 1)
	assert.Equal(t, 366, a.Sub(b))
	assert.Equal(t, -366, b.Sub(a))
	assert.Equal(t, 1, a.Compare(b))
	assert.Equal(t, -1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))

	// Ordering holds across the year-zero boundary.
	neg := civil.MustDateFromCalendar(-1, civil.December, 31)
	zero := civil.MustDateFromCalendar(0, civil.January, 1)
	assert.Equal(t, -1, neg.Compare(zero))
	assert.Equal(t, 1, zero.Sub(neg))
}

func TestDateNegativeYears(t *testing.T) {
	d := civil.MustDateFromCalendar(-4, civil.February, 29)
	year, ordinal := d.OrdinalDate()
	assert.Equal(t, -4, year)
	assert.Equal(t, 60, ordinal)

	back, err := civil.DateFromJulianDay(d.JulianDay())
	require.NoError(t, err)
	assert.Equal(t, d, back)
}
