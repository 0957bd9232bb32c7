package civil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-go/meridian/civil"
)

func TestTimeFromHMS(t *testing.T) {
	v, err := civil.TimeFromHMS(23, 59, 59)
	require.NoError(t, err)
	hour, minute, second := v.HMS()
	assert.Equal(t, 23, hour)
	assert.Equal(t, 59, minute)
	assert.Equal(t, 59, second)

	_, err = civil.TimeFromHMS(24, 0, 0)
	require.Error(t, err)
	assert.Equal(t, "hour must be in the range 0..=23, got 24", err.Error())

	_, err = civil.TimeFromHMS(0, 60, 0)
	assert.Error(t, err)
	_, err = civil.TimeFromHMS(0, 0, 60)
	assert.Error(t, err)
}

func TestTimeSubsecondConstructors(t *testing.T) {
	v, err := civil.TimeFromHMSMilli(1, 2, 3, 456)
	require.NoError(t, err)
	assert.Equal(t, 456, v.Millisecond())
	assert.Equal(t, 456_000, v.Microsecond())
	assert.Equal(t, 456_000_000, v.Nanosecond())

	v, err = civil.TimeFromHMSMicro(1, 2, 3, 456_789)
	require.NoError(t, err)
	assert.Equal(t, 456, v.Millisecond())
	assert.Equal(t, 456_789_000, v.Nanosecond())

	_, err = civil.TimeFromHMSMilli(1, 2, 3, 1000)
	assert.Error(t, err)
	_, err = civil.TimeFromHMSNano(1, 2, 3, 1_000_000_000)
	assert.Error(t, err)
}

func TestTimeAddDuration(t *testing.T) {
	v := civil.MustTimeFromHMSNano(23, 0, 0, 0)

	got, days := v.AddDuration(civil.DurationHours(2))
	assert.Equal(t, civil.MustTimeFromHMSNano(1, 0, 0, 0), got)
	assert.Equal(t, 1, days)

	back, days := got.SubDuration(civil.DurationHours(2))
	assert.Equal(t, v, back)
	assert.Equal(t, -1, days)

	// Nanosecond borrow across the second boundary.
	v = civil.MustTimeFromHMSNano(0, 0, 0, 100)
	got, days = v.SubDuration(civil.DurationNanoseconds(200))
	assert.Equal(t, civil.MustTimeFromHMSNano(23, 59, 59, 999_999_900), got)
	assert.Equal(t, -1, days)

	// A multi-day duration carries all its whole days.
	got, days = civil.Midnight.AddDuration(civil.DurationHours(49))
	assert.Equal(t, civil.MustTimeFromHMSNano(1, 0, 0, 0), got)
	assert.Equal(t, 2, days)
}

func TestTimeSub(t *testing.T) {
	a := civil.MustTimeFromHMSNano(12, 0, 0, 500)
	b := civil.MustTimeFromHMSNano(11, 59, 59, 0)
	d := a.Sub(b)
	assert.Equal(t, int64(1), d.WholeSeconds())
	assert.Equal(t, int32(500), d.SubsecNanoseconds())

	d = b.Sub(a)
	assert.True(t, d.IsNegative())
	assert.Equal(t, int64(-1), d.WholeSeconds())
	assert.Equal(t, int32(-500), d.SubsecNanoseconds())
}

func TestTimeCompare(t *testing.T) {
	a := civil.MustTimeFromHMSNano(1, 2, 3, 4)
	b := civil.MustTimeFromHMSNano(1, 2, 3, 5)
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, civil.Midnight.Compare(a))
}
