package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-go/meridian/civil"
	"github.com/meridian-go/meridian/layout"
)

func TestFormatRFC3339(t *testing.T) {
	dt := civil.NewDateTime(
		civil.MustDateFromCalendar(2021, civil.January, 2),
		civil.MustTimeFromHMSNano(3, 4, 5, 123_456_789),
	)
	out, err := layout.FormatRFC3339(civil.NewOffsetDateTime(dt, civil.MustOffsetFromHMS(1, 2, 0)))
	require.NoError(t, err)
	assert.Equal(t, "2021-01-02T03:04:05.123456789+01:02", out)

	// A zero offset is written as Z, and trailing subsecond zeros are trimmed.
	dt = civil.NewDateTime(
		civil.MustDateFromCalendar(2021, civil.January, 2),
		civil.MustTimeFromHMSNano(3, 4, 5, 500_000_000),
	)
	out, err = layout.FormatRFC3339(civil.NewOffsetDateTime(dt, civil.UTC))
	require.NoError(t, err)
	assert.Equal(t, "2021-01-02T03:04:05.5Z", out)

	out, err = layout.FormatRFC3339(odt(2021, civil.January, 2, 3, 4, 5, civil.MustOffsetFromHMS(-5, 0, 0)))
	require.NoError(t, err)
	assert.Equal(t, "2021-01-02T03:04:05-05:00", out)
}

func TestFormatRFC3339Unrepresentable(t *testing.T) {
	var ferr *layout.FormatError

	_, err := layout.FormatRFC3339(odt(-1, civil.January, 1, 0, 0, 0, civil.UTC))
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "year", ferr.Component)
	assert.Equal(t, "the [year] component cannot represent the value being formatted", err.Error())

	_, err = layout.FormatRFC3339(odt(2021, civil.January, 1, 0, 0, 0, civil.MustOffsetFromHMS(1, 2, 3)))
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "offset_second", ferr.Component)
}

func TestParseRFC3339(t *testing.T) {
	v, err := layout.ParseRFC3339("2021-01-02T03:04:05.123456789+01:02")
	require.NoError(t, err)
	assert.Equal(t, "2021-01-02T03:04:05.123456789+01:02", v.String())

	// The round trip is bit for bit.
	out, err := layout.FormatRFC3339(v)
	require.NoError(t, err)
	assert.Equal(t, "2021-01-02T03:04:05.123456789+01:02", out)

	v, err = layout.ParseRFC3339("2021-01-02T03:04:05Z")
	require.NoError(t, err)
	assert.True(t, v.Offset().IsUTC())
	assert.Equal(t, 0, v.Time().Nanosecond())

	// Lowercase separators and a space in place of the T are tolerated.
	v, err = layout.ParseRFC3339("2021-01-02t03:04:05z")
	require.NoError(t, err)
	assert.True(t, v.Offset().IsUTC())
	_, err = layout.ParseRFC3339("2021-01-02 03:04:05Z")
	assert.NoError(t, err)
}

func TestParseRFC3339Errors(t *testing.T) {
	var perr *layout.ParseError

	_, err := layout.ParseRFC3339("2021-01-02T03:04:05")
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "offset_hour", perr.Component)

	_, err = layout.ParseRFC3339("2021-01-02T03:04:05Zx")
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, layout.UnexpectedTrailingInput, perr.Kind)

	_, err = layout.ParseRFC3339("21-01-02T03:04:05Z")
	assert.Error(t, err)

	// Pattern-valid but calendar-invalid.
	_, err = layout.ParseRFC3339("2021-02-29T00:00:00Z")
	var crerr *civil.ComponentRange
	assert.ErrorAs(t, err, &crerr)
}

func TestFormatRFC2822(t *testing.T) {
	out, err := layout.FormatRFC2822(odt(2021, civil.January, 2, 3, 4, 5, civil.MustOffsetFromHMS(1, 2, 0)))
	require.NoError(t, err)
	assert.Equal(t, "Sat, 02 Jan 2021 03:04:05 +0102", out)

	out, err = layout.FormatRFC2822(odt(2021, civil.January, 2, 3, 4, 5, civil.MustOffsetFromHMS(-5, 0, 0)))
	require.NoError(t, err)
	assert.Equal(t, "Sat, 02 Jan 2021 03:04:05 -0500", out)

	var ferr *layout.FormatError
	_, err = layout.FormatRFC2822(odt(1899, civil.December, 31, 0, 0, 0, civil.UTC))
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "year", ferr.Component)
}

func TestParseRFC2822(t *testing.T) {
	want := odt(2021, civil.January, 2, 3, 4, 5, civil.MustOffsetFromHMS(1, 2, 0))

	v, err := layout.ParseRFC2822("Sat, 02 Jan 2021 03:04:05 +0102")
	require.NoError(t, err)
	assert.Equal(t, want, v)

	// The day-of-week is optional, the day may be a single digit, and the
	// seconds may be omitted.
	v, err = layout.ParseRFC2822("2 Jan 2021 03:04 +0102")
	require.NoError(t, err)
	assert.Equal(t, 0, v.Time().Second())
	assert.Equal(t, v.Date(), want.Date())
}

func TestParseRFC2822ObsoleteSyntax(t *testing.T) {
	// Folding whitespace and comments may appear between tokens.
	v, err := layout.ParseRFC2822("Sat,\r\n 02 Jan (the (nested) year of the ox) 2021 03:04:05 GMT")
	require.NoError(t, err)
	assert.True(t, v.Offset().IsUTC())
	assert.Equal(t, "2021-01-02", v.Date().String())

	// Two-digit years: below 50 means 2000s, otherwise 1900s; three digits
	// always add 1900.
	v, err = layout.ParseRFC2822("2 Jan 21 03:04 GMT")
	require.NoError(t, err)
	assert.Equal(t, 2021, v.Date().Year())
	v, err = layout.ParseRFC2822("2 Jan 99 03:04 GMT")
	require.NoError(t, err)
	assert.Equal(t, 1999, v.Date().Year())
	v, err = layout.ParseRFC2822("2 Jan 121 03:04 GMT")
	require.NoError(t, err)
	assert.Equal(t, 2021, v.Date().Year())
}

func TestParseRFC2822Zones(t *testing.T) {
	testcases := map[string]int{
		"UT":   0,
		"GMT":  0,
		"EST":  -5 * 3600,
		"EDT":  -4 * 3600,
		"CST":  -6 * 3600,
		"PDT":  -7 * 3600,
		"Z":    0, // single-letter military zones carry no information
		"QQQQ": 0, // and so do unknown names
	}
	for zone, seconds := range testcases {
		v, err := layout.ParseRFC2822("2 Jan 2021 03:04 " + zone)
		require.NoError(t, err, "zone %q", zone)
		assert.Equal(t, seconds, v.Offset().WholeSeconds(), "zone %q", zone)
	}

	_, err := layout.ParseRFC2822("2 Jan 2021 03:04")
	assert.Error(t, err)
}
