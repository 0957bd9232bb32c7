package layout

import (
	"github.com/meridian-go/meridian/civil"
)

// The well-known formats are implemented as dedicated functions rather than
// compiled layouts: both have context-dependent pieces (RFC 3339's "Z" versus
// a numeric offset, RFC 2822's folding whitespace and obsolete zone names)
// that a fixed instruction sequence cannot express when writing.

// FormatRFC3339 renders the value as an RFC 3339 timestamp, e.g.
// "2021-01-02T03:04:05.123456789+01:02". A zero offset is written as "Z". The
// profile cannot express years outside 0..9999 or offsets with a seconds
// part; those fail with a *FormatError.
func FormatRFC3339(odt civil.OffsetDateTime) (string, error) {
	b, err := AppendRFC3339(nil, odt)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// AppendRFC3339 appends the RFC 3339 form of the value to b.
func AppendRFC3339(b []byte, odt civil.OffsetDateTime) ([]byte, error) {
	year, month, day := odt.Date().CalendarDate()
	if year < 0 || year > 9999 {
		return nil, unrepresentable("year")
	}
	offset := odt.Offset()
	if offset.SecondsPastMinute() != 0 {
		return nil, unrepresentable("offset_second")
	}

	b = appendPadded(b, year, 4, padZero)
	b = append(b, '-')
	b = appendPadded(b, int(month), 2, padZero)
	b = append(b, '-')
	b = appendPadded(b, day, 2, padZero)
	b = append(b, 'T')

	t := odt.Time()
	b = appendPadded(b, t.Hour(), 2, padZero)
	b = append(b, ':')
	b = appendPadded(b, t.Minute(), 2, padZero)
	b = append(b, ':')
	b = appendPadded(b, t.Second(), 2, padZero)
	if nanos := t.Nanosecond(); nanos != 0 {
		b = append(b, '.')
		b = appendSubsecond(b, 0, nanos)
	}

	if offset.IsUTC() {
		return append(b, 'Z'), nil
	}
	b = appendSign(b, offset.IsNegative(), true)
	b = appendPadded(b, abs(offset.WholeHours()), 2, padZero)
	b = append(b, ':')
	return appendPadded(b, abs(offset.MinutesPastHour()), 2, padZero), nil
}

// ParseRFC3339 parses an RFC 3339 timestamp. The date/time separator and the
// "Z" suffix are matched case-insensitively, and a space is tolerated in
// place of the "T".
func ParseRFC3339(input string) (civil.OffsetDateTime, error) {
	cur := &cursor{input: input}
	fail := func(component string) (civil.OffsetDateTime, error) {
		return civil.OffsetDateTime{}, &ParseError{
			Kind: InvalidComponent, Component: component, Index: cur.pos,
		}
	}

	year, ok := cur.digits(4, 4)
	if !ok || !cur.accept('-') {
		return fail("year")
	}
	month, ok := cur.digits(2, 2)
	if !ok || !cur.accept('-') {
		return fail("month")
	}
	day, ok := cur.digits(2, 2)
	if !ok {
		return fail("day")
	}
	if !cur.accept('T') && !cur.accept('t') && !cur.accept(' ') {
		return civil.OffsetDateTime{}, &ParseError{Kind: InvalidLiteral, Index: cur.pos}
	}
	hour, ok := cur.digits(2, 2)
	if !ok || !cur.accept(':') {
		return fail("hour")
	}
	minute, ok := cur.digits(2, 2)
	if !ok || !cur.accept(':') {
		return fail("minute")
	}
	second, ok := cur.digits(2, 2)
	if !ok {
		return fail("second")
	}
	nanos := 0
	if cur.accept('.') {
		before := cur.pos
		v, ok := cur.digits(1, 9)
		if !ok {
			return fail("subsecond")
		}
		for n := cur.pos - before; n < 9; n++ {
			v *= 10
		}
		nanos = int(v)
	}

	var offset civil.UtcOffset
	if !cur.accept('Z') && !cur.accept('z') {
		negative, explicit, _ := cur.sign(true)
		if !explicit {
			return fail("offset_hour")
		}
		oh, ok := cur.digits(2, 2)
		if !ok || !cur.accept(':') {
			return fail("offset_hour")
		}
		om, ok := cur.digits(2, 2)
		if !ok {
			return fail("offset_minute")
		}
		seconds := int(oh)*3600 + int(om)*60
		if negative {
			seconds = -seconds
		}
		var err error
		if offset, err = civil.OffsetFromSeconds(seconds); err != nil {
			return civil.OffsetDateTime{}, err
		}
	}
	if !cur.done() {
		return civil.OffsetDateTime{}, &ParseError{Kind: UnexpectedTrailingInput, Index: cur.pos}
	}

	d, err := civil.DateFromCalendar(int(year), civil.Month(month), int(day))
	if err != nil {
		return civil.OffsetDateTime{}, err
	}
	t, err := civil.TimeFromHMSNano(int(hour), int(minute), int(second), nanos)
	if err != nil {
		return civil.OffsetDateTime{}, err
	}
	return civil.NewOffsetDateTime(civil.NewDateTime(d, t), offset), nil
}

// FormatRFC2822 renders the value as an RFC 2822 date-time, e.g.
// "Sat, 02 Jan 2021 03:04:05 +0102". The format cannot express years before
// 1900 or after 9999, or offsets with a seconds part.
func FormatRFC2822(odt civil.OffsetDateTime) (string, error) {
	year, month, day := odt.Date().CalendarDate()
	if year < 1900 || year > 9999 {
		return "", unrepresentable("year")
	}
	offset := odt.Offset()
	if offset.SecondsPastMinute() != 0 {
		return "", unrepresentable("offset_second")
	}

	b := make([]byte, 0, 31)
	b = append(b, odt.Date().Weekday().String()[:3]...)
	b = append(b, ", "...)
	b = appendPadded(b, day, 2, padZero)
	b = append(b, ' ')
	b = append(b, month.String()[:3]...)
	b = append(b, ' ')
	b = appendPadded(b, year, 4, padZero)
	b = append(b, ' ')
	t := odt.Time()
	b = appendPadded(b, t.Hour(), 2, padZero)
	b = append(b, ':')
	b = appendPadded(b, t.Minute(), 2, padZero)
	b = append(b, ':')
	b = appendPadded(b, t.Second(), 2, padZero)
	b = append(b, ' ')
	b = appendSign(b, offset.IsNegative(), true)
	b = appendPadded(b, abs(offset.WholeHours()), 2, padZero)
	b = appendPadded(b, abs(offset.MinutesPastHour()), 2, padZero)
	return string(b), nil
}

// ParseRFC2822 parses an RFC 2822 date-time, including the obsolete syntax
// that remains in the wild: folding whitespace and comments between tokens,
// two- and three-digit years, and alphabetic zone names.
func ParseRFC2822(input string) (civil.OffsetDateTime, error) {
	cur := &cursor{input: input}
	fail := func(component string) (civil.OffsetDateTime, error) {
		return civil.OffsetDateTime{}, &ParseError{
			Kind: InvalidComponent, Component: component, Index: cur.pos,
		}
	}

	skipCFWS(cur)
	// The leading day-of-week is optional and, when present, carries no
	// information the date does not.
	for wd := civil.Monday; wd <= civil.Sunday; wd++ {
		if cur.prefix(wd.String()[:3], false) {
			cur.accept(',')
			break
		}
	}
	skipCFWS(cur)

	day, ok := cur.digits(1, 2)
	if !ok {
		return fail("day")
	}
	skipCFWS(cur)
	month, ok := scanMonthName(cur, true, false)
	if !ok {
		return fail("month")
	}
	skipCFWS(cur)
	yearStart := cur.pos
	year, ok := cur.digits(2, 4)
	if !ok {
		return fail("year")
	}
	switch cur.pos - yearStart {
	case 2:
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
	case 3:
		year += 1900
	}
	skipCFWS(cur)

	hour, ok := cur.digits(2, 2)
	if !ok {
		return fail("hour")
	}
	skipCFWS(cur)
	if !cur.accept(':') {
		return fail("minute")
	}
	skipCFWS(cur)
	minute, ok := cur.digits(2, 2)
	if !ok {
		return fail("minute")
	}
	var second int64
	skipCFWS(cur)
	if cur.accept(':') {
		skipCFWS(cur)
		if second, ok = cur.digits(2, 2); !ok {
			return fail("second")
		}
		skipCFWS(cur)
	}

	offsetSeconds, ok := scanRFC2822Zone(cur)
	if !ok {
		return fail("offset_hour")
	}
	skipCFWS(cur)
	if !cur.done() {
		return civil.OffsetDateTime{}, &ParseError{Kind: UnexpectedTrailingInput, Index: cur.pos}
	}

	d, err := civil.DateFromCalendar(int(year), month, int(day))
	if err != nil {
		return civil.OffsetDateTime{}, err
	}
	t, err := civil.TimeFromHMS(int(hour), int(minute), int(second))
	if err != nil {
		return civil.OffsetDateTime{}, err
	}
	offset, err := civil.OffsetFromSeconds(offsetSeconds)
	if err != nil {
		return civil.OffsetDateTime{}, err
	}
	return civil.NewOffsetDateTime(civil.NewDateTime(d, t), offset), nil
}

// skipCFWS consumes folding whitespace and (possibly nested) comments.
func skipCFWS(cur *cursor) {
	for {
		b, ok := cur.peek()
		if !ok {
			return
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			cur.pos++
		case '(':
			depth := 0
			for !cur.done() {
				switch cur.input[cur.pos] {
				case '(':
					depth++
				case ')':
					depth--
				case '\\':
					// A quoted pair escapes the next byte.
					cur.pos++
				}
				cur.pos++
				if depth == 0 {
					break
				}
			}
		default:
			return
		}
	}
}

// The obsolete named zones of RFC 2822 section 4.3. The single-letter
// military zones parse as +0000, as the RFC instructs.
var rfc2822Zones = map[string]int{
	"UT": 0, "GMT": 0,
	"EST": -5 * 3600, "EDT": -4 * 3600,
	"CST": -6 * 3600, "CDT": -5 * 3600,
	"MST": -7 * 3600, "MDT": -6 * 3600,
	"PST": -8 * 3600, "PDT": -7 * 3600,
}

func scanRFC2822Zone(cur *cursor) (seconds int, ok bool) {
	negative, explicit, _ := cur.sign(false)
	if explicit {
		hm, ok := cur.digits(4, 4)
		if !ok {
			return 0, false
		}
		seconds = int(hm/100)*3600 + int(hm%100)*60
		if negative {
			seconds = -seconds
		}
		return seconds, true
	}

	start := cur.pos
	for !cur.done() && isAlpha(cur.input[cur.pos]) {
		cur.pos++
	}
	name := cur.input[start:cur.pos]
	switch len(name) {
	case 0:
		return 0, false
	case 1:
		return 0, true
	}
	for known, offset := range rfc2822Zones {
		if asciiEqualFold(name, known) {
			return offset, true
		}
	}
	// Unrecognized multi-letter names also mean "no usable offset
	// information" and read as UTC.
	return 0, true
}

func isAlpha(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}
