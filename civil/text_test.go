package civil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-go/meridian/civil"
)

func TestDateString(t *testing.T) {
	assert.Equal(t, "2021-03-04", civil.MustDateFromCalendar(2021, civil.March, 4).String())
	assert.Equal(t, "0099-12-31", civil.MustDateFromCalendar(99, civil.December, 31).String())
	assert.Equal(t, "-0044-03-15", civil.MustDateFromCalendar(-44, civil.March, 15).String())
}

func TestTimeString(t *testing.T) {
	assert.Equal(t, "00:00:00", civil.Midnight.String())
	assert.Equal(t, "23:59:59", civil.MustTimeFromHMSNano(23, 59, 59, 0).String())
	// Trailing zeros of the sub-second part are trimmed.
	assert.Equal(t, "12:00:00.5", civil.MustTimeFromHMSNano(12, 0, 0, 500_000_000).String())
	assert.Equal(t, "12:00:00.000000001", civil.MustTimeFromHMSNano(12, 0, 0, 1).String())
}

func TestOffsetString(t *testing.T) {
	assert.Equal(t, "+00:00", civil.UTC.String())
	assert.Equal(t, "+05:30", civil.MustOffsetFromHMS(5, 30, 0).String())
	assert.Equal(t, "-08:00", civil.MustOffsetFromHMS(-8, 0, 0).String())
	assert.Equal(t, "-00:30", civil.MustOffsetFromHMS(0, -30, 0).String())
	assert.Equal(t, "+01:02:03", civil.MustOffsetFromHMS(1, 2, 3).String())
}

func TestDateUnmarshalText(t *testing.T) {
	var d civil.Date
	require.NoError(t, d.UnmarshalText([]byte("2021-03-04")))
	assert.Equal(t, civil.MustDateFromCalendar(2021, civil.March, 4), d)

	require.NoError(t, d.UnmarshalText([]byte("-0044-03-15")))
	assert.Equal(t, civil.MustDateFromCalendar(-44, civil.March, 15), d)

	assert.Error(t, d.UnmarshalText([]byte("2021-3-4")))
	assert.Error(t, d.UnmarshalText([]byte("2021-02-29")))
	assert.Error(t, d.UnmarshalText([]byte("2021-03-04x")))
}

func TestTimeUnmarshalText(t *testing.T) {
	var v civil.Time
	require.NoError(t, v.UnmarshalText([]byte("12:00:00.5")))
	assert.Equal(t, civil.MustTimeFromHMSNano(12, 0, 0, 500_000_000), v)

	require.NoError(t, v.UnmarshalText([]byte("23:59:59")))
	assert.Equal(t, civil.MustTimeFromHMSNano(23, 59, 59, 0), v)

	assert.Error(t, v.UnmarshalText([]byte("24:00:00")))
	assert.Error(t, v.UnmarshalText([]byte("12:00:00.")))
}

func TestOffsetUnmarshalText(t *testing.T) {
	var o civil.UtcOffset
	require.NoError(t, o.UnmarshalText([]byte("Z")))
	assert.True(t, o.IsUTC())

	require.NoError(t, o.UnmarshalText([]byte("-00:30")))
	assert.Equal(t, civil.MustOffsetFromHMS(0, -30, 0), o)

	require.NoError(t, o.UnmarshalText([]byte("+01:02:03")))
	assert.Equal(t, civil.MustOffsetFromHMS(1, 2, 3), o)

	assert.Error(t, o.UnmarshalText([]byte("01:00")))
}

func TestDateTimeText(t *testing.T) {
	dt := mustDateTime(t, 2021, civil.January, 2, 3, 4, 5)
	assert.Equal(t, "2021-01-02T03:04:05", dt.String())

	var back civil.DateTime
	require.NoError(t, back.UnmarshalText([]byte("2021-01-02T03:04:05")))
	assert.Equal(t, dt, back)

	// A lowercase separator and a space are both accepted on input.
	require.NoError(t, back.UnmarshalText([]byte("2021-01-02t03:04:05")))
	assert.Equal(t, dt, back)
	require.NoError(t, back.UnmarshalText([]byte("2021-01-02 03:04:05")))
	assert.Equal(t, dt, back)
}

func TestOffsetDateTimeText(t *testing.T) {
	odt := mustDateTime(t, 2021, civil.January, 2, 3, 4, 5).WithOffset(civil.MustOffsetFromHMS(1, 30, 0))
	assert.Equal(t, "2021-01-02T03:04:05+01:30", odt.String())

	var back civil.OffsetDateTime
	require.NoError(t, back.UnmarshalText([]byte("2021-01-02T03:04:05+01:30")))
	assert.Equal(t, odt, back)

	require.NoError(t, back.UnmarshalText([]byte("2021-01-02T03:04:05Z")))
	assert.True(t, back.Offset().IsUTC())

	assert.Error(t, back.UnmarshalText([]byte("2021-01-02T03:04:05")))
}

func TestWeekdayAndMonthNames(t *testing.T) {
	assert.Equal(t, "Monday", civil.Monday.String())
	assert.Equal(t, "Sunday", civil.Sunday.String())
	assert.Equal(t, "Weekday(0)", civil.Weekday(0).String())

	assert.Equal(t, "January", civil.January.String())
	assert.Equal(t, "December", civil.December.String())
	assert.Equal(t, "Month(13)", civil.Month(13).String())

	assert.Equal(t, civil.Monday, civil.Sunday.Next())
	assert.Equal(t, civil.Sunday, civil.Monday.Previous())
	assert.Equal(t, civil.January, civil.December.Next())
	assert.Equal(t, civil.December, civil.January.Previous())
}
