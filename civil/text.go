package civil

import (
	"strconv"

	"github.com/pkg/errors"
)

// Textual representations follow the RFC 3339 profile: dates are
// "2006-01-02", times are "15:04:05" with the sub-second part appended only
// when non-zero, offsets are "+07:00" (with a seconds part only when
// non-zero), and the composites join the pieces with "T". These forms are
// what String, MarshalText, and UnmarshalText use; the layout package
// provides everything configurable.

func appendPadInt(b []byte, v, width int) []byte {
	for limit := pow10(width - 1); v < limit && limit > 1; limit /= 10 {
		b = append(b, '0')
	}
	return strconv.AppendInt(b, int64(v), 10)
}

func pow10(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

func appendYear(b []byte, year int) []byte {
	if year < 0 {
		b = append(b, '-')
		year = -year
	} else if year > 9999 {
		b = append(b, '+')
	}
	return appendPadInt(b, year, 4)
}

func (d Date) appendText(b []byte) []byte {
	year, month, day := d.CalendarDate()
	b = appendYear(b, year)
	b = append(b, '-')
	b = appendPadInt(b, int(month), 2)
	b = append(b, '-')
	return appendPadInt(b, day, 2)
}

func (t Time) appendText(b []byte) []byte {
	b = appendPadInt(b, t.Hour(), 2)
	b = append(b, ':')
	b = appendPadInt(b, t.Minute(), 2)
	b = append(b, ':')
	b = appendPadInt(b, t.Second(), 2)
	if nanos := t.Nanosecond(); nanos != 0 {
		b = append(b, '.')
		b = appendPadInt(b, nanos, 9)
		for b[len(b)-1] == '0' {
			b = b[:len(b)-1]
		}
	}
	return b
}

func (o UtcOffset) appendText(b []byte) []byte {
	hours, minutes, seconds := o.HMS()
	if o.IsNegative() {
		b = append(b, '-')
		hours, minutes, seconds = -hours, -minutes, -seconds
	} else {
		b = append(b, '+')
	}
	b = appendPadInt(b, hours, 2)
	b = append(b, ':')
	b = appendPadInt(b, minutes, 2)
	if seconds != 0 {
		b = append(b, ':')
		b = appendPadInt(b, seconds, 2)
	}
	return b
}

// String returns the date in the form "2006-01-02".
func (d Date) String() string { return string(d.appendText(nil)) }

// String returns the time in the form "15:04:05" or "15:04:05.999999999".
func (t Time) String() string { return string(t.appendText(nil)) }

// String returns the offset in the form "+07:00" or "+07:00:30".
func (o UtcOffset) String() string { return string(o.appendText(nil)) }

// String returns the datetime in the form "2006-01-02T15:04:05".
func (dt DateTime) String() string {
	b := dt.date.appendText(nil)
	b = append(b, 'T')
	return string(dt.time.appendText(b))
}

// String returns the value in the form "2006-01-02T15:04:05+07:00".
func (o OffsetDateTime) String() string {
	b := o.dt.date.appendText(nil)
	b = append(b, 'T')
	b = o.dt.time.appendText(b)
	return string(o.offset.appendText(b))
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) { return d.appendText(nil), nil }

// MarshalText implements encoding.TextMarshaler.
func (t Time) MarshalText() ([]byte, error) { return t.appendText(nil), nil }

// MarshalText implements encoding.TextMarshaler.
func (o UtcOffset) MarshalText() ([]byte, error) { return o.appendText(nil), nil }

// MarshalText implements encoding.TextMarshaler.
func (dt DateTime) MarshalText() ([]byte, error) { return []byte(dt.String()), nil }

// MarshalText implements encoding.TextMarshaler.
func (o OffsetDateTime) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// textCursor is a minimal scanner for the fixed-width forms above.
type textCursor struct {
	s   string
	pos int
}

func (c *textCursor) failed() error {
	return errors.Errorf("malformed text at byte %d of %q", c.pos, c.s)
}

func (c *textCursor) done() bool { return c.pos >= len(c.s) }

func (c *textCursor) byte(want byte) bool {
	if c.pos < len(c.s) && c.s[c.pos] == want {
		c.pos++
		return true
	}
	return false
}

// fixedInt reads exactly width decimal digits.
func (c *textCursor) fixedInt(width int) (int, bool) {
	if c.pos+width > len(c.s) {
		return 0, false
	}
	v := 0
	for i := 0; i < width; i++ {
		ch := c.s[c.pos+i]
		if ch < '0' || ch > '9' {
			return 0, false
		}
		v = v*10 + int(ch-'0')
	}
	c.pos += width
	return v, true
}

// rangedInt reads between min and max decimal digits, greedily.
func (c *textCursor) rangedInt(min, max int) (int, bool) {
	v, n := 0, 0
	for n < max && c.pos < len(c.s) {
		ch := c.s[c.pos]
		if ch < '0' || ch > '9' {
			break
		}
		v = v*10 + int(ch-'0')
		c.pos++
		n++
	}
	return v, n >= min
}

func (c *textCursor) date() (Date, error) {
	neg := c.byte('-')
	explicit := neg
	if !neg {
		explicit = c.byte('+')
	}
	// Years beyond four digits are always written with an explicit sign, so
	// an explicit sign on input admits the extra digits too.
	maxDigits := 4
	if explicit {
		maxDigits = 6
	}
	year, ok := c.rangedInt(4, maxDigits)
	if !ok {
		return Date{}, c.failed()
	}
	if neg {
		year = -year
	}
	if !c.byte('-') {
		return Date{}, c.failed()
	}
	month, ok := c.fixedInt(2)
	if !ok || !c.byte('-') {
		return Date{}, c.failed()
	}
	day, ok := c.fixedInt(2)
	if !ok {
		return Date{}, c.failed()
	}
	return DateFromCalendar(year, Month(month), day)
}

func (c *textCursor) time() (Time, error) {
	hour, ok := c.fixedInt(2)
	if !ok || !c.byte(':') {
		return Time{}, c.failed()
	}
	minute, ok := c.fixedInt(2)
	if !ok || !c.byte(':') {
		return Time{}, c.failed()
	}
	second, ok := c.fixedInt(2)
	if !ok {
		return Time{}, c.failed()
	}
	nanos := 0
	if c.byte('.') {
		digits := 0
		for c.pos < len(c.s) && digits < 9 {
			ch := c.s[c.pos]
			if ch < '0' || ch > '9' {
				break
			}
			nanos = nanos*10 + int(ch-'0')
			digits++
			c.pos++
		}
		if digits == 0 {
			return Time{}, c.failed()
		}
		for ; digits < 9; digits++ {
			nanos *= 10
		}
	}
	return TimeFromHMSNano(hour, minute, second, nanos)
}

func (c *textCursor) offset() (UtcOffset, error) {
	var neg bool
	switch {
	case c.byte('+'):
	case c.byte('-'):
		neg = true
	case c.byte('Z'), c.byte('z'):
		return UTC, nil
	default:
		return UtcOffset{}, c.failed()
	}
	hours, ok := c.fixedInt(2)
	if !ok || !c.byte(':') {
		return UtcOffset{}, c.failed()
	}
	minutes, ok := c.fixedInt(2)
	if !ok {
		return UtcOffset{}, c.failed()
	}
	seconds := 0
	if c.byte(':') {
		if seconds, ok = c.fixedInt(2); !ok {
			return UtcOffset{}, c.failed()
		}
	}
	if neg {
		hours, minutes, seconds = -hours, -minutes, -seconds
	}
	return OffsetFromHMS(hours, minutes, seconds)
}

// UnmarshalText implements encoding.TextUnmarshaler; it expects the form
// produced by MarshalText.
func (d *Date) UnmarshalText(text []byte) error {
	c := &textCursor{s: string(text)}
	v, err := c.date()
	if err == nil && !c.done() {
		err = c.failed()
	}
	if err != nil {
		return errors.Wrap(err, "civil: unmarshaling date")
	}
	*d = v
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler; it expects the form
// produced by MarshalText.
func (t *Time) UnmarshalText(text []byte) error {
	c := &textCursor{s: string(text)}
	v, err := c.time()
	if err == nil && !c.done() {
		err = c.failed()
	}
	if err != nil {
		return errors.Wrap(err, "civil: unmarshaling time")
	}
	*t = v
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler; it expects the form
// produced by MarshalText.
func (o *UtcOffset) UnmarshalText(text []byte) error {
	c := &textCursor{s: string(text)}
	v, err := c.offset()
	if err == nil && !c.done() {
		err = c.failed()
	}
	if err != nil {
		return errors.Wrap(err, "civil: unmarshaling offset")
	}
	*o = v
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler; it expects the form
// produced by MarshalText.
func (dt *DateTime) UnmarshalText(text []byte) error {
	c := &textCursor{s: string(text)}
	date, err := c.date()
	if err == nil && !c.byte('T') && !c.byte('t') && !c.byte(' ') {
		err = c.failed()
	}
	var t Time
	if err == nil {
		t, err = c.time()
	}
	if err == nil && !c.done() {
		err = c.failed()
	}
	if err != nil {
		return errors.Wrap(err, "civil: unmarshaling datetime")
	}
	*dt = DateTime{date: date, time: t}
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler; it expects the form
// produced by MarshalText.
func (o *OffsetDateTime) UnmarshalText(text []byte) error {
	c := &textCursor{s: string(text)}
	date, err := c.date()
	if err == nil && !c.byte('T') && !c.byte('t') && !c.byte(' ') {
		err = c.failed()
	}
	var t Time
	if err == nil {
		t, err = c.time()
	}
	var off UtcOffset
	if err == nil {
		off, err = c.offset()
	}
	if err == nil && !c.done() {
		err = c.failed()
	}
	if err != nil {
		return errors.Wrap(err, "civil: unmarshaling offset datetime")
	}
	*o = OffsetDateTime{dt: DateTime{date: date, time: t}, offset: off}
	return nil
}
