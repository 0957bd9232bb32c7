package civil

// unixEpochJulianDay is the Julian day number of 1970-01-01.
const unixEpochJulianDay = 2_440_588

// A DateTime is a Date and a Time with no UTC offset attached; it describes a
// wall-clock reading somewhere, not an instant. Attach a UtcOffset with
// WithOffset to pin it to an instant.
type DateTime struct {
	date Date
	time Time
}

// NewDateTime combines a date and a time of day.
func NewDateTime(d Date, t Time) DateTime {
	return DateTime{date: d, time: t}
}

// Date returns the date part.
func (dt DateTime) Date() Date { return dt.date }

// Time returns the time-of-day part.
func (dt DateTime) Time() Time { return dt.time }

// AddDuration adds d, carrying whole days from the time part into the date
// part. The result must stay within the representable date range.
func (dt DateTime) AddDuration(d Duration) (DateTime, error) {
	t, days := dt.time.AddDuration(d)
	date, err := dt.date.AddDays(days)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: date, time: t}, nil
}

// SubDuration subtracts d; see AddDuration.
func (dt DateTime) SubDuration(d Duration) (DateTime, error) {
	return dt.AddDuration(d.Neg())
}

// Sub returns the elapsed time dt-other, counting whole days between the
// date parts plus the wall-clock difference of the time parts.
func (dt DateTime) Sub(other DateTime) Duration {
	days := dt.date.Sub(other.date)
	return DurationDays(int64(days)).Add(dt.time.Sub(other.time))
}

// Compare orders lexicographically by date, then time.
func (dt DateTime) Compare(other DateTime) int {
	if c := dt.date.Compare(other.date); c != 0 {
		return c
	}
	return dt.time.Compare(other.time)
}

// WithOffset declares that the wall-clock reading was taken at the given UTC
// offset, producing the corresponding instant. No arithmetic happens: the
// date and time are kept as they are.
func (dt DateTime) WithOffset(o UtcOffset) OffsetDateTime {
	return OffsetDateTime{dt: dt, offset: o}
}

// An OffsetDateTime is a DateTime pinned to an instant by a fixed UTC
// offset.
type OffsetDateTime struct {
	dt     DateTime
	offset UtcOffset
}

// NewOffsetDateTime combines a naive datetime and an offset.
func NewOffsetDateTime(dt DateTime, o UtcOffset) OffsetDateTime {
	return OffsetDateTime{dt: dt, offset: o}
}

// UnixEpoch is 1970-01-01 00:00:00 UTC.
var UnixEpoch = OffsetDateTime{
	dt: DateTime{date: dateFromOrdinalUnchecked(1970, 1)},
}

// DateTime returns the wall-clock part, without the offset.
func (o OffsetDateTime) DateTime() DateTime { return o.dt }

// Date returns the date part.
func (o OffsetDateTime) Date() Date { return o.dt.date }

// Time returns the time-of-day part.
func (o OffsetDateTime) Time() Time { return o.dt.time }

// Offset returns the UTC offset.
func (o OffsetDateTime) Offset() UtcOffset { return o.offset }

// UnixTimestamp returns the number of seconds since the Unix epoch,
// disregarding the sub-second part.
func (o OffsetDateTime) UnixTimestamp() int64 {
	days := int64(o.dt.date.JulianDay() - unixEpochJulianDay)
	return days*secondsPerDay +
		int64(o.dt.time.secondsSinceMidnight()) -
		int64(o.offset.WholeSeconds())
}

// UnixTimestampNanos returns the number of nanoseconds since the Unix epoch.
// It overflows for instants more than roughly 292 years from the epoch; use
// UnixTimestamp together with Time().Nanosecond() for the full range.
func (o OffsetDateTime) UnixTimestampNanos() int64 {
	return o.UnixTimestamp()*nanosPerSecond + int64(o.dt.time.Nanosecond())
}

// FromUnixTimestamp returns the instant the given number of seconds after
// the Unix epoch, expressed in UTC.
func FromUnixTimestamp(seconds int64) (OffsetDateTime, error) {
	days := floorDiv64(seconds, secondsPerDay)
	rem := int(floorMod64(seconds, secondsPerDay))

	date, err := DateFromJulianDay(unixEpochJulianDay + int(days))
	if err != nil {
		return OffsetDateTime{}, err
	}
	t := timeFromHMSNanoUnchecked(rem/secondsPerHour, rem/secondsPerMinute%60, rem%60, 0)
	return OffsetDateTime{dt: DateTime{date: date, time: t}}, nil
}

// FromUnixTimestampNanos is FromUnixTimestamp with nanosecond precision.
func FromUnixTimestampNanos(nanos int64) (OffsetDateTime, error) {
	o, err := FromUnixTimestamp(floorDiv64(nanos, nanosPerSecond))
	if err != nil {
		return OffsetDateTime{}, err
	}
	o.dt.time.nanosecond = uint32(floorMod64(nanos, nanosPerSecond))
	return o, nil
}

// ToOffset rebases the value to another UTC offset, preserving the instant.
// The wall-clock reading changes accordingly; the result must stay within
// the representable date range.
func (o OffsetDateTime) ToOffset(target UtcOffset) (OffsetDateTime, error) {
	shift := DurationSeconds(int64(target.WholeSeconds() - o.offset.WholeSeconds()))
	dt, err := o.dt.AddDuration(shift)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{dt: dt, offset: target}, nil
}

// AddDuration advances the instant by d. The offset is kept.
func (o OffsetDateTime) AddDuration(d Duration) (OffsetDateTime, error) {
	dt, err := o.dt.AddDuration(d)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{dt: dt, offset: o.offset}, nil
}

// SubDuration rewinds the instant by d. The offset is kept.
func (o OffsetDateTime) SubDuration(d Duration) (OffsetDateTime, error) {
	return o.AddDuration(d.Neg())
}

// Sub returns the elapsed time between the two instants, taking both offsets
// into account.
func (o OffsetDateTime) Sub(other OffsetDateTime) Duration {
	return NewDuration(
		o.UnixTimestamp()-other.UnixTimestamp(),
		int64(o.dt.time.Nanosecond())-int64(other.dt.time.Nanosecond()),
	)
}

// Compare orders by instant: two values with different offsets but the same
// position on the UTC timeline compare equal.
func (o OffsetDateTime) Compare(other OffsetDateTime) int {
	if c := cmpInt64(o.UnixTimestamp(), other.UnixTimestamp()); c != 0 {
		return c
	}
	return cmpInt64(int64(o.dt.time.Nanosecond()), int64(other.dt.time.Nanosecond()))
}
