package civil

// A UtcOffset is a fixed offset from UTC, in the range ±23:59:59. It carries
// no time-zone identity and no daylight-saving rules; it is only the signed
// distance from UTC. The zero value is UTC itself.
//
// The offset is stored as a total signed second count, which makes the
// "hours, minutes, and seconds all share one sign" invariant hold by
// construction; the per-component views are derived.
type UtcOffset struct {
	seconds int32
}

// UTC is the zero offset.
var UTC = UtcOffset{}

const maxOffsetSeconds = 24*secondsPerHour - 1

// OffsetFromHMS returns the offset of the given hours, minutes, and seconds
// east of UTC. All three components must be zero or share the same sign, and
// the hour magnitude must be below 24.
func OffsetFromHMS(hours, minutes, seconds int) (UtcOffset, error) {
	switch {
	case hours < -23 || hours > 23:
		return UtcOffset{}, componentRange("hours", -23, 23, int64(hours), false)
	case minutes < -59 || minutes > 59:
		return UtcOffset{}, componentRange("minutes", -59, 59, int64(minutes), false)
	case seconds < -59 || seconds > 59:
		return UtcOffset{}, componentRange("seconds", -59, 59, int64(seconds), false)
	case signsConflict(hours, minutes), signsConflict(hours, seconds), signsConflict(minutes, seconds):
		return UtcOffset{}, componentRange("minutes", -59, 59, int64(minutes), true)
	}
	return UtcOffset{seconds: int32(hours*secondsPerHour + minutes*secondsPerMinute + seconds)}, nil
}

// OffsetFromSeconds returns the offset of the given total seconds east of
// UTC.
func OffsetFromSeconds(seconds int) (UtcOffset, error) {
	if seconds < -maxOffsetSeconds || seconds > maxOffsetSeconds {
		return UtcOffset{}, componentRange("seconds", -maxOffsetSeconds, maxOffsetSeconds, int64(seconds), false)
	}
	return UtcOffset{seconds: int32(seconds)}, nil
}

// MustOffsetFromHMS is like OffsetFromHMS but panics on invalid input. It is
// intended for offset literals known to be valid.
func MustOffsetFromHMS(hours, minutes, seconds int) UtcOffset {
	o, err := OffsetFromHMS(hours, minutes, seconds)
	if err != nil {
		panic(err)
	}
	return o
}

func signsConflict(a, b int) bool {
	return (a > 0 && b < 0) || (a < 0 && b > 0)
}

// WholeHours returns the whole-hour part of the offset, truncated toward
// zero.
func (o UtcOffset) WholeHours() int { return int(o.seconds) / secondsPerHour }

// MinutesPastHour returns the minute part of the offset, in -59..59. It
// agrees in sign with WholeHours.
func (o UtcOffset) MinutesPastHour() int { return int(o.seconds) / secondsPerMinute % 60 }

// SecondsPastMinute returns the second part of the offset, in -59..59. It
// agrees in sign with WholeHours and MinutesPastHour.
func (o UtcOffset) SecondsPastMinute() int { return int(o.seconds) % 60 }

// HMS returns the hour, minute, and second parts of the offset, all sharing
// one sign.
func (o UtcOffset) HMS() (hours, minutes, seconds int) {
	return o.WholeHours(), o.MinutesPastHour(), o.SecondsPastMinute()
}

// WholeSeconds returns the offset as a total signed second count.
func (o UtcOffset) WholeSeconds() int { return int(o.seconds) }

// IsUTC reports whether the offset is zero.
func (o UtcOffset) IsUTC() bool { return o.seconds == 0 }

// IsNegative reports whether the offset is west of UTC.
func (o UtcOffset) IsNegative() bool { return o.seconds < 0 }

// IsPositive reports whether the offset is east of UTC.
func (o UtcOffset) IsPositive() bool { return o.seconds > 0 }

// Neg returns the offset with its sign flipped.
func (o UtcOffset) Neg() UtcOffset { return UtcOffset{seconds: -o.seconds} }

// Compare returns -1, 0, or 1 according to whether o is west of, equal to,
// or east of other.
func (o UtcOffset) Compare(other UtcOffset) int {
	return cmpInt64(int64(o.seconds), int64(other.seconds))
}
