package civil

// A Duration is a signed span of time, kept as whole seconds plus a
// sub-second nanosecond part. Unlike time.Duration it is not bounded at
// roughly ±292 years; the seconds count is a full int64.
//
// The two parts always agree in sign (or the nanosecond part is zero), so a
// negative duration has non-positive values in both fields.
type Duration struct {
	seconds     int64
	nanoseconds int32
}

// NewDuration returns the duration of seconds and nanoseconds combined. The
// arguments may disagree in sign or carry more than a second's worth of
// nanoseconds; the result is normalized.
func NewDuration(seconds int64, nanoseconds int64) Duration {
	seconds += nanoseconds / nanosPerSecond
	nanoseconds %= nanosPerSecond
	if seconds > 0 && nanoseconds < 0 {
		seconds--
		nanoseconds += nanosPerSecond
	} else if seconds < 0 && nanoseconds > 0 {
		seconds++
		nanoseconds -= nanosPerSecond
	}
	return Duration{seconds: seconds, nanoseconds: int32(nanoseconds)}
}

// Convenience constructors for durations of a single unit.

// DurationSeconds returns a duration of n whole seconds.
func DurationSeconds(n int64) Duration { return Duration{seconds: n} }

// DurationMinutes returns a duration of n whole minutes.
func DurationMinutes(n int64) Duration { return Duration{seconds: n * 60} }

// DurationHours returns a duration of n whole hours.
func DurationHours(n int64) Duration { return Duration{seconds: n * secondsPerHour} }

// DurationDays returns a duration of n whole days.
func DurationDays(n int64) Duration { return Duration{seconds: n * secondsPerDay} }

// DurationNanoseconds returns a duration of n nanoseconds.
func DurationNanoseconds(n int64) Duration { return NewDuration(0, n) }

// WholeSeconds returns the whole-second part of the duration, truncated
// toward zero.
func (d Duration) WholeSeconds() int64 { return d.seconds }

// SubsecNanoseconds returns the sub-second part of the duration in
// nanoseconds. It agrees in sign with WholeSeconds.
func (d Duration) SubsecNanoseconds() int32 { return d.nanoseconds }

// WholeMinutes returns the number of whole minutes, truncated toward zero.
func (d Duration) WholeMinutes() int64 { return d.seconds / 60 }

// WholeHours returns the number of whole hours, truncated toward zero.
func (d Duration) WholeHours() int64 { return d.seconds / secondsPerHour }

// WholeDays returns the number of whole days, truncated toward zero.
func (d Duration) WholeDays() int64 { return d.seconds / secondsPerDay }

// IsZero reports whether the duration is exactly zero.
func (d Duration) IsZero() bool { return d.seconds == 0 && d.nanoseconds == 0 }

// IsNegative reports whether the duration is strictly negative.
func (d Duration) IsNegative() bool { return d.seconds < 0 || d.nanoseconds < 0 }

// IsPositive reports whether the duration is strictly positive.
func (d Duration) IsPositive() bool { return d.seconds > 0 || d.nanoseconds > 0 }

// Neg returns the duration with its sign flipped.
func (d Duration) Neg() Duration {
	return Duration{seconds: -d.seconds, nanoseconds: -d.nanoseconds}
}

// Abs returns the magnitude of the duration.
func (d Duration) Abs() Duration {
	if d.IsNegative() {
		return d.Neg()
	}
	return d
}

// Add returns d+other.
func (d Duration) Add(other Duration) Duration {
	return NewDuration(d.seconds+other.seconds, int64(d.nanoseconds)+int64(other.nanoseconds))
}

// Sub returns d-other.
func (d Duration) Sub(other Duration) Duration {
	return d.Add(other.Neg())
}

// Compare returns -1, 0, or 1 according to whether d is shorter than, equal
// to, or longer than other.
func (d Duration) Compare(other Duration) int {
	switch {
	case d.seconds != other.seconds:
		return cmpInt64(d.seconds, other.seconds)
	default:
		return cmpInt64(int64(d.nanoseconds), int64(other.nanoseconds))
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
