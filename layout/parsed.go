package layout

import (
	"github.com/meridian-go/meridian/civil"
)

type optInt struct {
	v  int
	ok bool
}

func (o *optInt) set(v int) { o.v, o.ok = v, true }

// A Parsed is the intermediate accumulator a parse fills in: one optional
// slot per value a component can produce. The resolution methods inspect
// which slots are present and build a concrete entity, cross-validating the
// combination. A slot written twice keeps the later value; conflicts between
// different slots (say an ordinal that contradicts month and day) are not
// detected, the resolution simply uses whichever combination it finds first.
//
// A Parsed is a per-parse scratch value. Reuse across parses or goroutines is
// not supported; every Parse call returns a fresh one.
type Parsed struct {
	year           optInt
	yearCentury    optInt
	yearLastTwo    optInt
	isoYear        optInt
	isoYearCentury optInt
	isoYearLastTwo optInt
	month          optInt
	sundayWeek     optInt
	mondayWeek     optInt
	isoWeek        optInt
	weekday        optInt // civil.Weekday
	ordinal        optInt
	day            optInt
	hour24         optInt
	hour12         optInt
	hour12IsPM     optInt // 0 or 1
	minute         optInt
	second         optInt
	nanosecond     optInt
	offsetHour     optInt // magnitude; the sign lives in offsetNegative
	offsetMinute   optInt
	offsetSecond   optInt
	offsetNegative bool
	unixSeconds    optInt
	unixSeconds64  int64
	unixNanos      int
}

// Year returns the parsed calendar year, if one was recorded.
func (p *Parsed) Year() (int, bool) { return p.year.v, p.year.ok }

// Month returns the parsed month, if one was recorded.
func (p *Parsed) Month() (civil.Month, bool) {
	return civil.Month(p.month.v), p.month.ok
}

// Day returns the parsed day of month, if one was recorded.
func (p *Parsed) Day() (int, bool) { return p.day.v, p.day.ok }

// Weekday returns the parsed weekday, if one was recorded.
func (p *Parsed) Weekday() (civil.Weekday, bool) {
	return civil.Weekday(p.weekday.v), p.weekday.ok
}

// Ordinal returns the parsed day of year, if one was recorded.
func (p *Parsed) Ordinal() (int, bool) { return p.ordinal.v, p.ordinal.ok }

func (p *Parsed) setUnixTimestamp(seconds int64, nanos int) {
	p.unixSeconds.set(0)
	p.unixSeconds64 = seconds
	p.unixNanos = nanos
}

// fullYear merges a century slot and a last-two slot into a year, when both
// halves were parsed separately.
func fullYear(century, lastTwo optInt) (int, bool) {
	if !century.ok || !lastTwo.ok {
		return 0, false
	}
	if century.v < 0 {
		return century.v*100 - lastTwo.v, true
	}
	return century.v*100 + lastTwo.v, true
}

func (p *Parsed) calendarYear() (int, bool) {
	if p.year.ok {
		return p.year.v, true
	}
	return fullYear(p.yearCentury, p.yearLastTwo)
}

func (p *Parsed) isoWeekYear() (int, bool) {
	if p.isoYear.ok {
		return p.isoYear.v, true
	}
	return fullYear(p.isoYearCentury, p.isoYearLastTwo)
}

// Date resolves the accumulated fields into a date. The combinations tried,
// in order: calendar (year, month, day); ordinal (year, ordinal); ISO week
// (iso year, iso week, weekday); then the Sunday- and Monday-based week
// combinations (year, week, weekday). Failing all of them returns
// ErrInsufficientInformation; a matching combination that is out of range
// returns the *civil.ComponentRange from the constructor.
func (p *Parsed) Date() (civil.Date, error) {
	year, hasYear := p.calendarYear()
	isoYear, hasISOYear := p.isoWeekYear()
	switch {
	case hasYear && p.month.ok && p.day.ok:
		return civil.DateFromCalendar(year, civil.Month(p.month.v), p.day.v)
	case hasYear && p.ordinal.ok:
		return civil.DateFromOrdinal(year, p.ordinal.v)
	case hasISOYear && p.isoWeek.ok && p.weekday.ok:
		return civil.DateFromISOWeek(isoYear, p.isoWeek.v, civil.Weekday(p.weekday.v))
	case hasYear && p.sundayWeek.ok && p.weekday.ok:
		return dateFromWeekBased(year, p.sundayWeek.v, civil.Weekday(p.weekday.v),
			civil.Weekday.NumberDaysFromSunday)
	case hasYear && p.mondayWeek.ok && p.weekday.ok:
		return dateFromWeekBased(year, p.mondayWeek.v, civil.Weekday(p.weekday.v),
			civil.Weekday.NumberDaysFromMonday)
	}
	return civil.Date{}, ErrInsufficientInformation
}

// dateFromWeekBased turns (year, week, weekday) into an ordinal date for the
// Sunday- and Monday-based week conventions, where week 0 holds the days
// before the year's first week-start day. daysInto maps a weekday to its
// distance from the convention's week start.
func dateFromWeekBased(year, week int, wd civil.Weekday, daysInto func(civil.Weekday) int) (civil.Date, error) {
	jan1, err := civil.DateFromOrdinal(year, 1)
	if err != nil {
		return civil.Date{}, err
	}
	firstStart := 1 + (7-daysInto(jan1.Weekday()))%7
	return civil.DateFromOrdinal(year, 7*(week-1)+firstStart+daysInto(wd))
}

// Time resolves the accumulated fields into a time of day. An hour (24-hour,
// or 12-hour with an AM/PM period) and a minute are required; the second and
// sub-second parts default to zero.
func (p *Parsed) Time() (civil.Time, error) {
	var hour int
	switch {
	case p.hour24.ok:
		hour = p.hour24.v
	case p.hour12.ok && p.hour12IsPM.ok:
		hour = p.hour12.v % 12
		if p.hour12IsPM.v == 1 {
			hour += 12
		}
	default:
		return civil.Time{}, ErrInsufficientInformation
	}
	if !p.minute.ok {
		return civil.Time{}, ErrInsufficientInformation
	}
	return civil.TimeFromHMSNano(hour, p.minute.v, p.second.v, p.nanosecond.v)
}

// Offset resolves the accumulated fields into a UTC offset. The hour is
// required; minute and second default to zero. The recorded sign applies to
// the whole offset, so "-00:30" resolves to a negative half-hour offset.
func (p *Parsed) Offset() (civil.UtcOffset, error) {
	if !p.offsetHour.ok {
		return civil.UtcOffset{}, ErrInsufficientInformation
	}
	seconds := p.offsetHour.v*3600 + p.offsetMinute.v*60 + p.offsetSecond.v
	if p.offsetNegative {
		seconds = -seconds
	}
	return civil.OffsetFromSeconds(seconds)
}

// DateTime resolves the accumulated fields into a naive datetime.
func (p *Parsed) DateTime() (civil.DateTime, error) {
	d, err := p.Date()
	if err != nil {
		return civil.DateTime{}, err
	}
	t, err := p.Time()
	if err != nil {
		return civil.DateTime{}, err
	}
	return civil.NewDateTime(d, t), nil
}

// OffsetDateTime resolves the accumulated fields into an offset datetime. A
// parsed Unix timestamp takes precedence over the per-component fields and
// yields a UTC value.
func (p *Parsed) OffsetDateTime() (civil.OffsetDateTime, error) {
	if p.unixSeconds.ok {
		odt, err := civil.FromUnixTimestamp(p.unixSeconds64)
		if err != nil {
			return civil.OffsetDateTime{}, err
		}
		if p.unixNanos == 0 {
			return odt, nil
		}
		return odt.AddDuration(civil.DurationNanoseconds(int64(p.unixNanos)))
	}
	dt, err := p.DateTime()
	if err != nil {
		return civil.OffsetDateTime{}, err
	}
	o, err := p.Offset()
	if err != nil {
		return civil.OffsetDateTime{}, err
	}
	return civil.NewOffsetDateTime(dt, o), nil
}
