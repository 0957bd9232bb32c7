package civil

// A Time is a wall-clock time of day with nanosecond precision. It has no
// notion of a date or a UTC offset; combine it with a Date (and optionally a
// UtcOffset) to get one. The zero value is midnight.
//
// Leap seconds are not representable: the second is always in 0..59.
type Time struct {
	hour       uint8
	minute     uint8
	second     uint8
	nanosecond uint32
}

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour

	nanosPerSecond = 1_000_000_000
)

// Midnight is 00:00:00.0, the zero Time.
var Midnight = Time{}

// TimeFromHMS returns the time with the given hour, minute, and second.
func TimeFromHMS(hour, minute, second int) (Time, error) {
	return TimeFromHMSNano(hour, minute, second, 0)
}

// TimeFromHMSMilli is TimeFromHMS with an additional millisecond component.
func TimeFromHMSMilli(hour, minute, second, millisecond int) (Time, error) {
	if millisecond < 0 || millisecond > 999 {
		return Time{}, componentRange("millisecond", 0, 999, int64(millisecond), false)
	}
	return TimeFromHMSNano(hour, minute, second, millisecond*1_000_000)
}

// TimeFromHMSMicro is TimeFromHMS with an additional microsecond component.
func TimeFromHMSMicro(hour, minute, second, microsecond int) (Time, error) {
	if microsecond < 0 || microsecond > 999_999 {
		return Time{}, componentRange("microsecond", 0, 999_999, int64(microsecond), false)
	}
	return TimeFromHMSNano(hour, minute, second, microsecond*1_000)
}

// TimeFromHMSNano is TimeFromHMS with an additional nanosecond component.
func TimeFromHMSNano(hour, minute, second, nanosecond int) (Time, error) {
	switch {
	case hour < 0 || hour > 23:
		return Time{}, componentRange("hour", 0, 23, int64(hour), false)
	case minute < 0 || minute > 59:
		return Time{}, componentRange("minute", 0, 59, int64(minute), false)
	case second < 0 || second > 59:
		return Time{}, componentRange("second", 0, 59, int64(second), false)
	case nanosecond < 0 || nanosecond > nanosPerSecond-1:
		return Time{}, componentRange("nanosecond", 0, nanosPerSecond-1, int64(nanosecond), false)
	}
	return timeFromHMSNanoUnchecked(hour, minute, second, nanosecond), nil
}

// MustTimeFromHMSNano is like TimeFromHMSNano but panics if any component is
// out of range. It is intended for time literals known to be valid.
func MustTimeFromHMSNano(hour, minute, second, nanosecond int) Time {
	t, err := TimeFromHMSNano(hour, minute, second, nanosecond)
	if err != nil {
		panic(err)
	}
	return t
}

// timeFromHMSNanoUnchecked skips validation. The components must already be
// in range; feeding it anything else produces a Time that breaks the
// package's invariants.
func timeFromHMSNanoUnchecked(hour, minute, second, nanosecond int) Time {
	return Time{
		hour:       uint8(hour),
		minute:     uint8(minute),
		second:     uint8(second),
		nanosecond: uint32(nanosecond),
	}
}

// Hour returns the hour in 0..23.
func (t Time) Hour() int { return int(t.hour) }

// Minute returns the minute in 0..59.
func (t Time) Minute() int { return int(t.minute) }

// Second returns the second in 0..59.
func (t Time) Second() int { return int(t.second) }

// Millisecond returns the sub-second part in milliseconds.
func (t Time) Millisecond() int { return int(t.nanosecond / 1_000_000) }

// Microsecond returns the sub-second part in microseconds.
func (t Time) Microsecond() int { return int(t.nanosecond / 1_000) }

// Nanosecond returns the sub-second part in nanoseconds.
func (t Time) Nanosecond() int { return int(t.nanosecond) }

// HMS returns the hour, minute, and second.
func (t Time) HMS() (hour, minute, second int) {
	return int(t.hour), int(t.minute), int(t.second)
}

// secondsSinceMidnight returns the whole seconds elapsed since 00:00:00.
func (t Time) secondsSinceMidnight() int {
	return int(t.hour)*secondsPerHour + int(t.minute)*secondsPerMinute + int(t.second)
}

// AddDuration adds d to the time, wrapping within the 24-hour cycle, and
// returns the wrapped time along with the number of whole days crossed.
// Adding two hours to 23:00 yields 01:00 with a carry of +1; subtracting it
// again yields 23:00 with a carry of -1. Composite datetime arithmetic
// applies the carry to the paired Date.
func (t Time) AddDuration(d Duration) (Time, int) {
	seconds := int64(t.secondsSinceMidnight()) + d.WholeSeconds()
	nanos := int64(t.nanosecond) + int64(d.SubsecNanoseconds())

	seconds += floorDiv64(nanos, nanosPerSecond)
	nanos = floorMod64(nanos, nanosPerSecond)

	days := floorDiv64(seconds, secondsPerDay)
	seconds = floorMod64(seconds, secondsPerDay)

	return timeFromHMSNanoUnchecked(
		int(seconds/secondsPerHour),
		int(seconds/secondsPerMinute)%60,
		int(seconds%60),
		int(nanos),
	), int(days)
}

// SubDuration subtracts d from the time; the returned carry is zero or
// negative for positive d.
func (t Time) SubDuration(d Duration) (Time, int) {
	return t.AddDuration(d.Neg())
}

// Sub returns the wall-clock difference t-other, which is always in the open
// interval (-24h, 24h). It carries no day information; use DateTime
// subtraction for elapsed time across days.
func (t Time) Sub(other Time) Duration {
	return NewDuration(
		int64(t.secondsSinceMidnight()-other.secondsSinceMidnight()),
		int64(t.nanosecond)-int64(other.nanosecond),
	)
}

// Compare returns -1, 0, or 1 according to whether t is before, equal to, or
// after other.
func (t Time) Compare(other Time) int {
	a := int64(t.secondsSinceMidnight())*nanosPerSecond + int64(t.nanosecond)
	b := int64(other.secondsSinceMidnight())*nanosPerSecond + int64(other.nanosecond)
	return cmpInt64(a, b)
}

func floorDiv64(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod64(a, b int64) int64 {
	m := a % b
	if m != 0 && (a < 0) != (b < 0) {
		m += b
	}
	return m
}
