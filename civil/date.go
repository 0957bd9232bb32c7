package civil

import (
	"github.com/meridian-go/meridian/calendar"
)

// A Date is a day in the proleptic Gregorian calendar, in the years MinYear
// through MaxYear. It is a compact immutable value; canonically it stores the
// year and the day of year, and the other views (calendar date, ISO week
// date, Julian day number) are computed on demand.
//
// The zero Date is January 1 of year 0.
type Date struct {
	// year*512 + ordinal. The ordinal occupies fewer than 9 bits, so the
	// packing is order-preserving and floor division recovers the parts for
	// negative years too.
	v int32
}

// MinDate and MaxDate are the bounds of the representable range.
var (
	MinDate = dateFromOrdinalUnchecked(MinYear, 1)
	MaxDate = dateFromOrdinalUnchecked(MaxYear, 365)
)

// dateFromOrdinalUnchecked skips validation. The year and ordinal must
// already be in range; feeding it anything else produces a Date that breaks
// the package's invariants.
func dateFromOrdinalUnchecked(year, ordinal int) Date {
	return Date{v: int32(year)*512 + int32(ordinal)}
}

func checkYear(year int) error {
	if year < MinYear || year > MaxYear {
		return componentRange("year", MinYear, MaxYear, int64(year), false)
	}
	return nil
}

// DateFromCalendar returns the date with the given year, month, and day.
func DateFromCalendar(year int, month Month, day int) (Date, error) {
	if err := checkYear(year); err != nil {
		return Date{}, err
	}
	if month < January || month > December {
		return Date{}, componentRange("month", 1, 12, int64(month), false)
	}
	if days := calendar.DaysInMonth(int(month), year); day < 1 || day > days {
		return Date{}, componentRange("day", 1, int64(days), int64(day), true)
	}
	return dateFromOrdinalUnchecked(year, calendar.OrdinalFromCalendar(year, int(month), day)), nil
}

// DateFromOrdinal returns the date with the given year and day of year.
func DateFromOrdinal(year, ordinal int) (Date, error) {
	if err := checkYear(year); err != nil {
		return Date{}, err
	}
	if days := calendar.DaysInYear(year); ordinal < 1 || ordinal > days {
		return Date{}, componentRange("ordinal", 1, int64(days), int64(ordinal), true)
	}
	return dateFromOrdinalUnchecked(year, ordinal), nil
}

// DateFromISOWeek returns the date with the given ISO week-date components.
// The calendar year of the result can differ from the ISO year by one: week
// 53 of an ISO year may reach into January of the next calendar year, and
// week 1 may begin in December of the previous one.
func DateFromISOWeek(isoYear, week int, weekday Weekday) (Date, error) {
	if err := checkYear(isoYear); err != nil {
		return Date{}, err
	}
	if weeks := calendar.WeeksInYear(isoYear); week < 1 || week > weeks {
		return Date{}, componentRange("week", 1, int64(weeks), int64(week), true)
	}
	if weekday < Monday || weekday > Sunday {
		return Date{}, componentRange("weekday", 1, 7, int64(weekday), false)
	}
	year, ordinal := calendar.OrdinalDateFromISOWeekDate(isoYear, week, weekday.NumberFromMonday())
	if err := checkYear(year); err != nil {
		// The week straddles the edge of the representable range.
		return Date{}, err
	}
	return dateFromOrdinalUnchecked(year, ordinal), nil
}

// DateFromJulianDay returns the date with the given Julian day number.
// Julian day 0 is November 24, -4713.
func DateFromJulianDay(jd int) (Date, error) {
	year, ordinal := calendar.OrdinalDateFromJulianDay(jd)
	if err := checkYear(year); err != nil {
		return Date{}, err
	}
	return dateFromOrdinalUnchecked(year, ordinal), nil
}

// MustDateFromCalendar is like DateFromCalendar but panics on invalid input.
// It is intended for date literals known to be valid.
func MustDateFromCalendar(year int, month Month, day int) Date {
	d, err := DateFromCalendar(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// Year returns the calendar year.
func (d Date) Year() int {
	y := int(d.v) / 512
	if int(d.v)%512 < 0 {
		y--
	}
	return y
}

// Ordinal returns the day of year, in 1..365 for non-leap years and 1..366
// for leap years.
func (d Date) Ordinal() int {
	return int(d.v) - d.Year()*512
}

// OrdinalDate returns the year and the day of year.
func (d Date) OrdinalDate() (year, ordinal int) {
	year = d.Year()
	return year, int(d.v) - year*512
}

// CalendarDate returns the year, month, and day.
func (d Date) CalendarDate() (int, Month, int) {
	year, ordinal := d.OrdinalDate()
	month, day := calendar.MonthDayFromOrdinal(year, ordinal)
	return year, Month(month), day
}

// Month returns the month of the year.
func (d Date) Month() Month {
	_, month, _ := d.CalendarDate()
	return month
}

// Day returns the day of the month.
func (d Date) Day() int {
	_, _, day := d.CalendarDate()
	return day
}

// MonthDay returns the month and the day of the month.
func (d Date) MonthDay() (Month, int) {
	_, month, day := d.CalendarDate()
	return month, day
}

// ISOWeekDate returns the ISO year, the ISO week (1..53), and the weekday.
// The ISO year can differ from the calendar year by one near year
// boundaries.
func (d Date) ISOWeekDate() (isoYear, week int, weekday Weekday) {
	year, ordinal := d.OrdinalDate()
	isoYear, week, wd := calendar.ISOWeekDateFromOrdinalDate(year, ordinal)
	return isoYear, week, weekdayFromISONumber(wd)
}

// ISOWeek returns the ISO year and week.
func (d Date) ISOWeek() (isoYear, week int) {
	isoYear, week, _ = d.ISOWeekDate()
	return isoYear, week
}

// Weekday returns the day of the week.
func (d Date) Weekday() Weekday {
	year, ordinal := d.OrdinalDate()
	return weekdayFromISONumber(calendar.WeekdayFromOrdinalDate(year, ordinal))
}

// SundayBasedWeek returns the week number counting from the first Sunday of
// the year; days before it are week 0.
func (d Date) SundayBasedWeek() int {
	return (d.Ordinal() - d.Weekday().NumberDaysFromSunday() + 6) / 7
}

// MondayBasedWeek returns the week number counting from the first Monday of
// the year; days before it are week 0.
func (d Date) MondayBasedWeek() int {
	return (d.Ordinal() - d.Weekday().NumberDaysFromMonday() + 6) / 7
}

// JulianDay returns the Julian day number.
func (d Date) JulianDay() int {
	year, ordinal := d.OrdinalDate()
	return calendar.JulianDayFromOrdinalDate(year, ordinal)
}

// NextDay returns the following date. The second return value is false if d
// is MaxDate.
func (d Date) NextDay() (Date, bool) {
	year, ordinal := d.OrdinalDate()
	if ordinal == calendar.DaysInYear(year) {
		if year == MaxYear {
			return Date{}, false
		}
		return dateFromOrdinalUnchecked(year+1, 1), true
	}
	return dateFromOrdinalUnchecked(year, ordinal+1), true
}

// PreviousDay returns the preceding date. The second return value is false
// if d is MinDate.
func (d Date) PreviousDay() (Date, bool) {
	year, ordinal := d.OrdinalDate()
	if ordinal == 1 {
		if year == MinYear {
			return Date{}, false
		}
		return dateFromOrdinalUnchecked(year-1, calendar.DaysInYear(year-1)), true
	}
	return dateFromOrdinalUnchecked(year, ordinal-1), true
}

// AddDays returns the date the given number of days after d (before, for
// negative counts). The count may cross any number of year boundaries; the
// result must stay within the representable range.
func (d Date) AddDays(days int) (Date, error) {
	if days == 0 {
		return d, nil
	}
	return DateFromJulianDay(d.JulianDay() + days)
}

// AddDuration adds the whole-day part of the duration to the date. Sub-day
// parts are ignored; use DateTime arithmetic to keep them.
func (d Date) AddDuration(dur Duration) (Date, error) {
	return d.AddDays(int(dur.WholeDays()))
}

// Sub returns the number of days from other to d; it is positive when d is
// later.
func (d Date) Sub(other Date) int {
	return d.JulianDay() - other.JulianDay()
}

// Compare returns -1, 0, or 1 according to whether d is before, equal to, or
// after other.
func (d Date) Compare(other Date) int {
	return cmpInt64(int64(d.v), int64(other.v))
}

// Midnight returns the DateTime at 00:00:00 on d.
func (d Date) Midnight() DateTime {
	return DateTime{date: d}
}

// WithTime returns the DateTime combining d and t.
func (d Date) WithTime(t Time) DateTime {
	return DateTime{date: d, time: t}
}

// WithHMS returns the DateTime at the given wall-clock time on d.
func (d Date) WithHMS(hour, minute, second int) (DateTime, error) {
	t, err := TimeFromHMS(hour, minute, second)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{date: d, time: t}, nil
}
