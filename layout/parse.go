package layout

import (
	"math"

	"github.com/meridian-go/meridian/civil"
)

// Parse matches the input against the layout and returns the accumulated
// fields. The whole input must be consumed; use an [end trailing_input:discard]
// component to allow trailing text. The returned error is a *ParseError, or
// an AlternativesError when every branch of a [first ...] group failed.
func (l *Layout) Parse(input string) (*Parsed, error) {
	cur := &cursor{input: input}
	p := new(Parsed)
	if err := parseItems(cur, l.items, p); err != nil {
		return nil, err
	}
	if !cur.done() {
		return nil, &ParseError{Kind: UnexpectedTrailingInput, Index: cur.pos}
	}
	return p, nil
}

// ParseDate parses the input and resolves it into a date.
func (l *Layout) ParseDate(input string) (civil.Date, error) {
	p, err := l.Parse(input)
	if err != nil {
		return civil.Date{}, err
	}
	return p.Date()
}

// ParseTime parses the input and resolves it into a time of day.
func (l *Layout) ParseTime(input string) (civil.Time, error) {
	p, err := l.Parse(input)
	if err != nil {
		return civil.Time{}, err
	}
	return p.Time()
}

// ParseOffset parses the input and resolves it into a UTC offset.
func (l *Layout) ParseOffset(input string) (civil.UtcOffset, error) {
	p, err := l.Parse(input)
	if err != nil {
		return civil.UtcOffset{}, err
	}
	return p.Offset()
}

// ParseDateTime parses the input and resolves it into a naive datetime.
func (l *Layout) ParseDateTime(input string) (civil.DateTime, error) {
	p, err := l.Parse(input)
	if err != nil {
		return civil.DateTime{}, err
	}
	return p.DateTime()
}

// ParseOffsetDateTime parses the input and resolves it into an offset
// datetime.
func (l *Layout) ParseOffsetDateTime(input string) (civil.OffsetDateTime, error) {
	p, err := l.Parse(input)
	if err != nil {
		return civil.OffsetDateTime{}, err
	}
	return p.OffsetDateTime()
}

type cursor struct {
	input string
	pos   int
}

func (c *cursor) done() bool { return c.pos >= len(c.input) }

func (c *cursor) peek() (byte, bool) {
	if c.done() {
		return 0, false
	}
	return c.input[c.pos], true
}

func (c *cursor) accept(want byte) bool {
	if b, ok := c.peek(); ok && b == want {
		c.pos++
		return true
	}
	return false
}

// digits consumes between min and max decimal digits, greedily, and returns
// the value.
func (c *cursor) digits(min, max int) (int64, bool) {
	var v int64
	n := 0
	for n < max {
		b, ok := c.peek()
		if !ok || b < '0' || b > '9' {
			break
		}
		d := int64(b - '0')
		if v > (math.MaxInt64-d)/10 {
			return 0, false
		}
		v = v*10 + d
		c.pos++
		n++
	}
	return v, n >= min
}

// padded consumes a number written with up to width digits, tolerating any
// padding style: leading spaces are skipped, and fewer than width digits are
// accepted as long as there is at least one.
func (c *cursor) padded(width int) (int, bool) {
	spaces := 0
	for spaces < width-1 && c.accept(' ') {
		spaces++
	}
	v, ok := c.digits(1, width-spaces)
	return int(v), ok
}

// prefix consumes the candidate string if the input starts with it,
// optionally ignoring ASCII case.
func (c *cursor) prefix(want string, caseSensitive bool) bool {
	if len(c.input)-c.pos < len(want) {
		return false
	}
	have := c.input[c.pos : c.pos+len(want)]
	if caseSensitive {
		if have != want {
			return false
		}
	} else if !asciiEqualFold(have, want) {
		return false
	}
	c.pos += len(want)
	return true
}

func asciiEqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if a[i]|0x20 != b[i]|0x20 {
			return false
		}
	}
	return true
}

// sign consumes a leading '+' or '-'. explicit reports whether a sign
// character was present; ok is false when the sign is required but absent.
func (c *cursor) sign(mandatory bool) (negative, explicit, ok bool) {
	switch {
	case c.accept('-'):
		return true, true, true
	case c.accept('+'):
		return false, true, true
	}
	return false, false, !mandatory
}

func parseItems(cur *cursor, items []item, p *Parsed) error {
	for _, it := range items {
		switch it := it.(type) {
		case litItem:
			if !cur.prefix(string(it.text), true) {
				return &ParseError{Kind: InvalidLiteral, Index: cur.pos}
			}
		case compItem:
			if err := parseComponent(cur, it.component, p); err != nil {
				return err
			}
		case optionalItem:
			// The whole group either matches or is absent; a failed attempt
			// must not leave partial cursor movement or field writes behind.
			savedCur, savedParsed := *cur, *p
			if err := parseItems(cur, it.items, p); err != nil {
				*cur, *p = savedCur, savedParsed
			}
		case firstItem:
			if err := parseFirst(cur, it, p); err != nil {
				return err
			}
		}
	}
	return nil
}

func parseFirst(cur *cursor, it firstItem, p *Parsed) error {
	var attempts AlternativesError
	for _, group := range it.groups {
		savedCur, savedParsed := *cur, *p
		err := parseItems(cur, group, p)
		if err == nil {
			return nil
		}
		*cur, *p = savedCur, savedParsed
		attempts = append(attempts, err)
	}
	return attempts
}

func parseComponent(cur *cursor, c component, p *Parsed) error {
	start := cur.pos
	fail := func() error {
		return &ParseError{Kind: InvalidComponent, Component: c.name, Index: start}
	}

	switch c.kind {
	case compDay:
		v, ok := cur.padded(2)
		if !ok || v < 1 || v > 31 {
			return fail()
		}
		p.day.set(v)

	case compMonth:
		switch c.monthRepr {
		case monthLong, monthShort:
			month, ok := scanMonthName(cur, c.monthRepr == monthShort, c.caseSensitive)
			if !ok {
				return fail()
			}
			p.month.set(int(month))
		default:
			v, ok := cur.padded(2)
			if !ok || v < 1 || v > 12 {
				return fail()
			}
			p.month.set(v)
		}

	case compOrdinal:
		v, ok := cur.padded(3)
		if !ok || v < 1 || v > 366 {
			return fail()
		}
		p.ordinal.set(v)

	case compWeekday:
		wd, ok := scanWeekday(cur, c)
		if !ok {
			return fail()
		}
		p.weekday.set(int(wd))

	case compWeekNumber:
		v, ok := cur.padded(2)
		if !ok || v > 53 {
			return fail()
		}
		switch c.weekRepr {
		case weekSunday:
			p.sundayWeek.set(v)
		case weekMonday:
			p.mondayWeek.set(v)
		default:
			if v < 1 {
				return fail()
			}
			p.isoWeek.set(v)
		}

	case compYear:
		return parseYear(cur, c, p, fail)

	case compHour:
		v, ok := cur.padded(2)
		if !ok {
			return fail()
		}
		if c.hour12 {
			if v < 1 || v > 12 {
				return fail()
			}
			p.hour12.set(v)
		} else {
			if v > 23 {
				return fail()
			}
			p.hour24.set(v)
		}

	case compMinute:
		v, ok := cur.padded(2)
		if !ok || v > 59 {
			return fail()
		}
		p.minute.set(v)

	case compSecond:
		v, ok := cur.padded(2)
		if !ok || v > 59 {
			return fail()
		}
		p.second.set(v)

	case compPeriod:
		pm, ok := scanPeriod(cur, c)
		if !ok {
			return fail()
		}
		if pm {
			p.hour12IsPM.set(1)
		} else {
			p.hour12IsPM.set(0)
		}

	case compSubsecond:
		min, max := c.digits, c.digits
		if c.digits == 0 {
			min, max = 1, 9
		}
		beforeDigits := cur.pos
		v, ok := cur.digits(min, max)
		if !ok {
			return fail()
		}
		for n := cur.pos - beforeDigits; n < 9; n++ {
			v *= 10
		}
		p.nanosecond.set(int(v))

	case compOffsetHour:
		negative, _, ok := cur.sign(c.signMandatory)
		if !ok {
			return fail()
		}
		v, ok := cur.padded(2)
		if !ok || v > 23 {
			return fail()
		}
		p.offsetHour.set(v)
		p.offsetNegative = negative

	case compOffsetMinute:
		v, ok := cur.padded(2)
		if !ok || v > 59 {
			return fail()
		}
		p.offsetMinute.set(v)

	case compOffsetSecond:
		v, ok := cur.padded(2)
		if !ok || v > 59 {
			return fail()
		}
		p.offsetSecond.set(v)

	case compUnixTimestamp:
		negative, _, ok := cur.sign(c.signMandatory)
		if !ok {
			return fail()
		}
		v, ok := cur.digits(1, 19)
		if !ok {
			return fail()
		}
		if negative {
			v = -v
		}
		seconds, nanos := splitTimestamp(v, c.precision)
		p.setUnixTimestamp(seconds, nanos)

	case compIgnore:
		if len(cur.input)-cur.pos < c.count {
			return fail()
		}
		cur.pos += c.count

	case compEnd:
		if c.discardTrailing {
			cur.pos = len(cur.input)
		} else if !cur.done() {
			return &ParseError{Kind: UnexpectedTrailingInput, Index: cur.pos}
		}
	}
	return nil
}

func parseYear(cur *cursor, c component, p *Parsed, fail func() error) error {
	if c.yearRepr == yearLastTwo {
		v, ok := cur.padded(2)
		if !ok {
			return fail()
		}
		if c.yearBaseISO {
			p.isoYearLastTwo.set(v)
		} else {
			p.yearLastTwo.set(v)
		}
		return nil
	}

	negative, explicit, ok := cur.sign(c.signMandatory)
	if !ok {
		return fail()
	}
	// Without an explicit sign the value is confined to its natural width,
	// so adjacent numeric components stay unambiguous; a sign unlocks the
	// extended range's extra digits.
	width := 4
	if c.yearRepr == yearCentury {
		width = 2
	}
	max := width
	if c.yearExtended && explicit {
		max = width + 2
	}
	spaces := 0
	for spaces < width-1 && cur.accept(' ') {
		spaces++
	}
	v64, ok := cur.digits(1, max-spaces)
	if !ok {
		return fail()
	}
	v := int(v64)
	if negative {
		v = -v
	}
	switch {
	case c.yearRepr == yearCentury && c.yearBaseISO:
		p.isoYearCentury.set(v)
	case c.yearRepr == yearCentury:
		p.yearCentury.set(v)
	case c.yearBaseISO:
		p.isoYear.set(v)
	default:
		p.year.set(v)
	}
	return nil
}

// splitTimestamp decomposes a signed timestamp at the given precision into
// whole seconds and a non-negative nanosecond remainder.
func splitTimestamp(v int64, precision timestampPrecision) (seconds int64, nanos int) {
	var perSecond int64
	switch precision {
	case precisionMillisecond:
		perSecond = 1_000
	case precisionMicrosecond:
		perSecond = 1_000_000
	case precisionNanosecond:
		perSecond = 1_000_000_000
	default:
		return v, 0
	}
	seconds = v / perSecond
	rem := v % perSecond
	if rem < 0 {
		seconds--
		rem += perSecond
	}
	return seconds, int(rem * (1_000_000_000 / perSecond))
}

func scanMonthName(cur *cursor, short, caseSensitive bool) (civil.Month, bool) {
	for m := civil.January; m <= civil.December; m++ {
		name := m.String()
		if short {
			name = name[:3]
		}
		if cur.prefix(name, caseSensitive) {
			return m, true
		}
	}
	return 0, false
}

func scanWeekday(cur *cursor, c component) (civil.Weekday, bool) {
	switch c.weekdayRepr {
	case weekdaySunday, weekdayMonday:
		v, ok := cur.digits(1, 1)
		if !ok {
			return 0, false
		}
		n := int(v)
		if c.oneIndexed {
			n--
		}
		if n < 0 || n > 6 {
			return 0, false
		}
		// n is now days from the convention's week start.
		if c.weekdayRepr == weekdaySunday {
			if n == 0 {
				return civil.Sunday, true
			}
			return civil.Weekday(n), true
		}
		return civil.Weekday(n + 1), true
	}
	for wd := civil.Monday; wd <= civil.Sunday; wd++ {
		name := wd.String()
		if c.weekdayRepr == weekdayShort {
			name = name[:3]
		}
		if cur.prefix(name, c.caseSensitive) {
			return wd, true
		}
	}
	return 0, false
}

func scanPeriod(cur *cursor, c component) (pm, ok bool) {
	am, pmStr := "AM", "PM"
	if !c.uppercase {
		am, pmStr = "am", "pm"
	}
	switch {
	case cur.prefix(am, c.caseSensitive):
		return false, true
	case cur.prefix(pmStr, c.caseSensitive):
		return true, true
	}
	return false, false
}
