package layout

import (
	"io"

	"github.com/pkg/errors"

	"github.com/meridian-go/meridian/civil"
)

// Values carries whichever entities are available for a format or parse call.
// A nil field means the value does not provide that entity; a component that
// needs it fails with a *FormatError naming the component.
type Values struct {
	Date   *civil.Date
	Time   *civil.Time
	Offset *civil.UtcOffset
}

// DateValues wraps a bare date.
func DateValues(d civil.Date) Values { return Values{Date: &d} }

// TimeValues wraps a bare time of day.
func TimeValues(t civil.Time) Values { return Values{Time: &t} }

// OffsetValues wraps a bare UTC offset.
func OffsetValues(o civil.UtcOffset) Values { return Values{Offset: &o} }

// DateTimeValues wraps a naive datetime.
func DateTimeValues(dt civil.DateTime) Values {
	d, t := dt.Date(), dt.Time()
	return Values{Date: &d, Time: &t}
}

// OffsetDateTimeValues wraps an offset datetime.
func OffsetDateTimeValues(odt civil.OffsetDateTime) Values {
	d, t, o := odt.Date(), odt.Time(), odt.Offset()
	return Values{Date: &d, Time: &t, Offset: &o}
}

// Format renders the values according to the layout.
func (l *Layout) Format(v Values) (string, error) {
	b, err := l.AppendFormat(nil, v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// AppendFormat appends the formatted values to b and returns the extended
// slice.
func (l *Layout) AppendFormat(b []byte, v Values) ([]byte, error) {
	return appendItems(b, l.items, v)
}

// WriteFormat writes the formatted values to w and returns the number of
// bytes written. Each instruction is written as it is produced, so a sink
// error can leave a prefix of the output behind.
func (l *Layout) WriteFormat(w io.Writer, v Values) (int, error) {
	var scratch [48]byte
	total := 0
	for _, it := range l.items {
		b, err := appendItem(scratch[:0], it, v)
		if err != nil {
			return total, err
		}
		n, err := w.Write(b)
		total += n
		if err != nil {
			return total, errors.Wrap(err, "writing formatted value")
		}
	}
	return total, nil
}

// FormatDate renders a bare date.
func (l *Layout) FormatDate(d civil.Date) (string, error) {
	return l.Format(DateValues(d))
}

// FormatTime renders a bare time of day.
func (l *Layout) FormatTime(t civil.Time) (string, error) {
	return l.Format(TimeValues(t))
}

// FormatDateTime renders a naive datetime.
func (l *Layout) FormatDateTime(dt civil.DateTime) (string, error) {
	return l.Format(DateTimeValues(dt))
}

// FormatOffsetDateTime renders an offset datetime.
func (l *Layout) FormatOffsetDateTime(odt civil.OffsetDateTime) (string, error) {
	return l.Format(OffsetDateTimeValues(odt))
}

func appendItems(b []byte, items []item, v Values) ([]byte, error) {
	var err error
	for _, it := range items {
		if b, err = appendItem(b, it, v); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func appendItem(b []byte, it item, v Values) ([]byte, error) {
	switch it := it.(type) {
	case litItem:
		return append(b, it.text...), nil
	case compItem:
		return appendComponent(b, it.component, v)
	case optionalItem:
		// Formatting always writes the optional content; optionality only
		// matters when parsing.
		return appendItems(b, it.items, v)
	case firstItem:
		// When writing there is nothing to choose between: the first
		// alternative is the canonical one.
		if len(it.groups) == 0 {
			return b, nil
		}
		return appendItems(b, it.groups[0], v)
	}
	return b, nil
}

func appendComponent(b []byte, c component, v Values) ([]byte, error) {
	switch c.kind {
	case compDay:
		if v.Date == nil {
			return nil, insufficient(c.name)
		}
		return appendPadded(b, v.Date.Day(), 2, c.padding), nil

	case compMonth:
		if v.Date == nil {
			return nil, insufficient(c.name)
		}
		month := v.Date.Month()
		switch c.monthRepr {
		case monthLong:
			return append(b, month.String()...), nil
		case monthShort:
			return append(b, month.String()[:3]...), nil
		default:
			return appendPadded(b, int(month), 2, c.padding), nil
		}

	case compOrdinal:
		if v.Date == nil {
			return nil, insufficient(c.name)
		}
		return appendPadded(b, v.Date.Ordinal(), 3, c.padding), nil

	case compWeekday:
		if v.Date == nil {
			return nil, insufficient(c.name)
		}
		wd := v.Date.Weekday()
		switch c.weekdayRepr {
		case weekdayShort:
			return append(b, wd.String()[:3]...), nil
		case weekdaySunday:
			if c.oneIndexed {
				return appendPadded(b, wd.NumberFromSunday(), 1, padNone), nil
			}
			return appendPadded(b, wd.NumberDaysFromSunday(), 1, padNone), nil
		case weekdayMonday:
			if c.oneIndexed {
				return appendPadded(b, wd.NumberFromMonday(), 1, padNone), nil
			}
			return appendPadded(b, wd.NumberDaysFromMonday(), 1, padNone), nil
		default:
			return append(b, wd.String()...), nil
		}

	case compWeekNumber:
		if v.Date == nil {
			return nil, insufficient(c.name)
		}
		var week int
		switch c.weekRepr {
		case weekSunday:
			week = v.Date.SundayBasedWeek()
		case weekMonday:
			week = v.Date.MondayBasedWeek()
		default:
			_, week = v.Date.ISOWeek()
		}
		return appendPadded(b, week, 2, c.padding), nil

	case compYear:
		if v.Date == nil {
			return nil, insufficient(c.name)
		}
		return appendYearComponent(b, c, *v.Date)

	case compHour:
		if v.Time == nil {
			return nil, insufficient(c.name)
		}
		h := v.Time.Hour()
		if c.hour12 {
			h %= 12
			if h == 0 {
				h = 12
			}
		}
		return appendPadded(b, h, 2, c.padding), nil

	case compMinute:
		if v.Time == nil {
			return nil, insufficient(c.name)
		}
		return appendPadded(b, v.Time.Minute(), 2, c.padding), nil

	case compSecond:
		if v.Time == nil {
			return nil, insufficient(c.name)
		}
		return appendPadded(b, v.Time.Second(), 2, c.padding), nil

	case compPeriod:
		if v.Time == nil {
			return nil, insufficient(c.name)
		}
		period := "AM"
		if v.Time.Hour() >= 12 {
			period = "PM"
		}
		if !c.uppercase {
			period = string([]byte{period[0] | 0x20, period[1] | 0x20})
		}
		return append(b, period...), nil

	case compSubsecond:
		if v.Time == nil {
			return nil, insufficient(c.name)
		}
		return appendSubsecond(b, c.digits, v.Time.Nanosecond()), nil

	case compOffsetHour:
		if v.Offset == nil {
			return nil, insufficient(c.name)
		}
		// The sign reflects the whole offset, not just the hour part, so
		// that -00:30 still prints a minus.
		b = appendSign(b, v.Offset.IsNegative(), c.signMandatory)
		return appendPadded(b, abs(v.Offset.WholeHours()), 2, c.padding), nil

	case compOffsetMinute:
		if v.Offset == nil {
			return nil, insufficient(c.name)
		}
		return appendPadded(b, abs(v.Offset.MinutesPastHour()), 2, c.padding), nil

	case compOffsetSecond:
		if v.Offset == nil {
			return nil, insufficient(c.name)
		}
		return appendPadded(b, abs(v.Offset.SecondsPastMinute()), 2, c.padding), nil

	case compUnixTimestamp:
		if v.Date == nil || v.Time == nil || v.Offset == nil {
			return nil, insufficient(c.name)
		}
		odt := civil.NewOffsetDateTime(v.Date.WithTime(*v.Time), *v.Offset)
		var ts int64
		switch c.precision {
		case precisionMillisecond:
			ts = odt.UnixTimestampNanos() / 1_000_000
		case precisionMicrosecond:
			ts = odt.UnixTimestampNanos() / 1_000
		case precisionNanosecond:
			ts = odt.UnixTimestampNanos()
		default:
			ts = odt.UnixTimestamp()
		}
		b = appendSign(b, ts < 0, c.signMandatory)
		if ts < 0 {
			ts = -ts
		}
		return appendPadded64(b, ts, 1, padNone), nil

	case compIgnore, compEnd:
		// Parse-only instructions.
		return b, nil
	}
	return b, nil
}

func appendYearComponent(b []byte, c component, d civil.Date) ([]byte, error) {
	year := d.Year()
	if c.yearBaseISO {
		year, _ = d.ISOWeek()
	}
	if c.yearRepr == yearLastTwo {
		return appendPadded(b, abs(year%100), 2, c.padding), nil
	}
	if !c.yearExtended && (year < -9999 || year > 9999) {
		return nil, unrepresentable(c.name)
	}
	// Years of five or more digits are unambiguous only with an explicit
	// sign.
	b = appendSign(b, year < 0, c.signMandatory || year >= 10_000)
	year = abs(year)
	if c.yearRepr == yearCentury {
		return appendPadded(b, year/100, 2, c.padding), nil
	}
	return appendPadded(b, year, 4, c.padding), nil
}

func appendSign(b []byte, negative, mandatory bool) []byte {
	switch {
	case negative:
		return append(b, '-')
	case mandatory:
		return append(b, '+')
	}
	return b
}

// appendSubsecond writes the fractional second. A fixed digit count scales
// the nanosecond value down; "one or more" writes the shortest run that
// round-trips, with at least one digit.
func appendSubsecond(b []byte, digits, nanos int) []byte {
	if digits == 0 {
		digits = 9
		for digits > 1 && nanos%10 == 0 {
			nanos /= 10
			digits--
		}
		return appendPadded(b, nanos, digits, padZero)
	}
	for i := 9; i > digits; i-- {
		nanos /= 10
	}
	return appendPadded(b, nanos, digits, padZero)
}

func appendPadded(b []byte, v, width int, pad padding) []byte {
	return appendPadded64(b, int64(v), width, pad)
}

func appendPadded64(b []byte, v int64, width int, pad padding) []byte {
	var digits [20]byte
	n := 0
	for {
		digits[n] = byte('0' + v%10)
		v /= 10
		n++
		if v == 0 {
			break
		}
	}
	for i := n; i < width; i++ {
		switch pad {
		case padZero:
			b = append(b, '0')
		case padSpace:
			b = append(b, ' ')
		}
	}
	for i := n - 1; i >= 0; i-- {
		b = append(b, digits[i])
	}
	return b
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
