package civil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-go/meridian/civil"
)

func TestOffsetFromHMS(t *testing.T) {
	o, err := civil.OffsetFromHMS(5, 30, 0)
	require.NoError(t, err)
	assert.Equal(t, 5*3600+30*60, o.WholeSeconds())

	o, err = civil.OffsetFromHMS(-5, -30, 0)
	require.NoError(t, err)
	hours, minutes, seconds := o.HMS()
	assert.Equal(t, -5, hours)
	assert.Equal(t, -30, minutes)
	assert.Equal(t, 0, seconds)
	assert.True(t, o.IsNegative())

	_, err = civil.OffsetFromHMS(24, 0, 0)
	require.Error(t, err)
	assert.Equal(t, "hours must be in the range -23..=23, got 24", err.Error())

	// Components must not disagree in sign.
	_, err = civil.OffsetFromHMS(5, -30, 0)
	assert.Error(t, err)
	_, err = civil.OffsetFromHMS(0, 30, -1)
	assert.Error(t, err)

	// A zero hour with signed smaller parts is fine.
	o, err = civil.OffsetFromHMS(0, -30, 0)
	require.NoError(t, err)
	assert.Equal(t, -1800, o.WholeSeconds())
}

func TestOffsetFromSeconds(t *testing.T) {
	o, err := civil.OffsetFromSeconds(-1800)
	require.NoError(t, err)
	assert.Equal(t, 0, o.WholeHours())
	assert.Equal(t, -30, o.MinutesPastHour())
	assert.Equal(t, 0, o.SecondsPastMinute())

	_, err = civil.OffsetFromSeconds(24 * 3600)
	assert.Error(t, err)
}

func TestOffsetPredicates(t *testing.T) {
	assert.True(t, civil.UTC.IsUTC())
	assert.False(t, civil.UTC.IsNegative())
	assert.False(t, civil.UTC.IsPositive())

	east := civil.MustOffsetFromHMS(1, 0, 0)
	assert.True(t, east.IsPositive())
	assert.Equal(t, east, east.Neg().Neg())
	assert.Equal(t, -3600, east.Neg().WholeSeconds())

	assert.Equal(t, -1, east.Neg().Compare(civil.UTC))
	assert.Equal(t, 1, east.Compare(civil.UTC))
	assert.Equal(t, 0, east.Compare(east))
}
