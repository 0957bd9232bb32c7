// Package calendar implements the integer arithmetic that underlies the civil
// package: leap-year rules, month lengths, and the conversions between the
// four views of a day (calendar date, ordinal date, ISO week date, and Julian
// day number).
//
// Years use astronomical numbering throughout: year 0 exists (and is a leap
// year), and the year before it is -1. All functions here are pure; none of
// them allocate, and none of them validate their inputs beyond what is
// documented. Range checking is the caller's job (see civil).
package calendar

// Weekday numbers are ISO: 1 is Monday, 7 is Sunday.
const (
	Monday = 1 + iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// daysBefore[m] counts the number of days in a non-leap year before month m+1
// begins, so daysBefore[12] is 365.
var daysBefore = [13]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian
// calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in the given month (1..12) of the
// given year.
func DaysInMonth(month, year int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysBefore[month] - daysBefore[month-1]
}

// WeeksInYear returns the number of weeks in the ISO year: 53 exactly when
// January 1 falls on a Thursday, or on a Wednesday of a leap year, and 52
// otherwise.
func WeeksInYear(year int) int {
	jan1 := WeekdayFromJulianDay(JulianDayFromOrdinalDate(year, 1))
	if jan1 == Thursday || (IsLeapYear(year) && jan1 == Wednesday) {
		return 53
	}
	return 52
}

// OrdinalFromCalendar converts a calendar date to its day of year (1..366).
// The month and day must already be valid for the year.
func OrdinalFromCalendar(year, month, day int) int {
	ordinal := daysBefore[month-1] + day
	if month > 2 && IsLeapYear(year) {
		ordinal++
	}
	return ordinal
}

// MonthDayFromOrdinal converts a day of year (1..DaysInYear) back into a
// month and day of month.
func MonthDayFromOrdinal(year, ordinal int) (month, day int) {
	day = ordinal - 1 // zero-based for the estimate below
	if IsLeapYear(year) {
		switch {
		case day > 31+29-1:
			// After leap day; pretend it wasn't there.
			day--
		case day == 31+29-1:
			return 2, 29
		}
	}

	// Estimate the month on the assumption that every month has 31 days.
	// The estimate may be too low by at most one month.
	month = day / 31
	end := daysBefore[month+1]
	var begin int
	if day >= end {
		month++
		begin = end
	} else {
		begin = daysBefore[month]
	}
	return month + 1, day - begin + 1
}

// JulianDayFromOrdinalDate returns the Julian day number of the given ordinal
// date. Julian day 0 is November 24, -4713 in the proleptic Gregorian
// calendar.
func JulianDayFromOrdinalDate(year, ordinal int) int {
	y := year - 1
	return ordinal + 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) + 1_721_425
}

// OrdinalDateFromJulianDay inverts JulianDayFromOrdinalDate. The conversion
// is exact closed-form arithmetic over the 400/100/4-year Gregorian cycles.
func OrdinalDateFromJulianDay(jd int) (year, ordinal int) {
	const (
		daysPer400Years = 146_097
		daysPer100Years = 36_524
		daysPer4Years   = 1_461
	)

	// Days since 0001-01-01, which is Julian day 1721426.
	d := jd - 1_721_426

	n400 := floorDiv(d, daysPer400Years)
	d -= n400 * daysPer400Years

	// The last century of a 400-year cycle has an extra leap day, so on the
	// final day the quotient comes out as 4; clamp it back to 3. The same
	// applies to the last year of a 4-year cycle below.
	n100 := d / daysPer100Years
	if n100 == 4 {
		n100 = 3
	}
	d -= n100 * daysPer100Years

	n4 := d / daysPer4Years
	d -= n4 * daysPer4Years

	n1 := d / 365
	if n1 == 4 {
		n1 = 3
	}
	d -= n1 * 365

	return 400*n400 + 100*n100 + 4*n4 + n1 + 1, d + 1
}

// WeekdayFromJulianDay returns the ISO weekday number (1 is Monday) of the
// given Julian day.
func WeekdayFromJulianDay(jd int) int {
	return floorMod(jd, 7) + 1
}

// WeekdayFromOrdinalDate returns the ISO weekday number of the given ordinal
// date.
func WeekdayFromOrdinalDate(year, ordinal int) int {
	return WeekdayFromJulianDay(JulianDayFromOrdinalDate(year, ordinal))
}

// ISOWeekDateFromOrdinalDate converts an ordinal date into its ISO week date:
// the ISO year, the week (1..53), and the weekday (1 is Monday). The ISO year
// can differ from the calendar year by one in either direction: the first
// days of January may belong to the last week of the previous ISO year, and
// the last days of December may belong to week 1 of the next.
func ISOWeekDateFromOrdinalDate(year, ordinal int) (isoYear, week, weekday int) {
	weekday = WeekdayFromOrdinalDate(year, ordinal)
	week = (ordinal - weekday + 10) / 7
	switch {
	case week < 1:
		return year - 1, WeeksInYear(year - 1), weekday
	case week > WeeksInYear(year):
		return year + 1, 1, weekday
	}
	return year, week, weekday
}

// OrdinalDateFromISOWeekDate inverts ISOWeekDateFromOrdinalDate. The week
// must be valid for the ISO year (1..WeeksInYear); the resulting calendar
// year may be isoYear-1 or isoYear+1 when the week straddles a year boundary.
func OrdinalDateFromISOWeekDate(isoYear, week, weekday int) (year, ordinal int) {
	// Week 1 is anchored on January 4.
	jan4 := WeekdayFromOrdinalDate(isoYear, 4)
	year, ordinal = isoYear, week*7+weekday-(jan4+3)

	if ordinal < 1 {
		year--
		ordinal += DaysInYear(year)
	} else if days := DaysInYear(year); ordinal > days {
		year++
		ordinal -= days
	}
	return year, ordinal
}

// floorDiv returns the quotient of a/b rounded toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod returns a-floorDiv(a,b)*b, which is always in [0, b) for b > 0.
func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((a < 0) != (b < 0)) {
		m += b
	}
	return m
}
