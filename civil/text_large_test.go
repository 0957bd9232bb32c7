//go:build largedates

package civil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-go/meridian/civil"
)

func TestExtendedYearTextRoundTrip(t *testing.T) {
	for _, s := range []string{
		"+10000-01-02",
		"-10000-12-31",
		"+999999-01-01",
		"-999999-01-01",
	} {
		var d civil.Date
		require.NoError(t, d.UnmarshalText([]byte(s)), s)
		assert.Equal(t, s, d.String())
	}

	var dt civil.OffsetDateTime
	require.NoError(t, dt.UnmarshalText([]byte("+10000-01-02T03:04:05Z")))
	assert.Equal(t, "+10000-01-02T03:04:05+00:00", dt.String())
	assert.Equal(t, 10000, dt.Date().Year())

	// Five-digit years still need the explicit sign.
	var d civil.Date
	assert.Error(t, d.UnmarshalText([]byte("10000-01-02")))
}
