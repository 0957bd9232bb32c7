package civil

import "fmt"

// A Weekday is a day of the week. The constants use ISO numbering: Monday is
// 1 and Sunday is 7. Use the NumberFrom and NumberDaysFrom accessors rather
// than relying on the underlying values.
type Weekday int

const (
	Monday Weekday = 1 + iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// String returns the English name of the weekday, or "Weekday(n)" if d is not
// a valid weekday.
func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d-1]
}

// NumberFromMonday returns the ISO weekday number: Monday is 1, Sunday is 7.
func (d Weekday) NumberFromMonday() int { return int(d) }

// NumberFromSunday returns the weekday number with Sunday as 1 and Saturday
// as 7.
func (d Weekday) NumberFromSunday() int { return int(d)%7 + 1 }

// NumberDaysFromMonday returns the number of days from Monday: Monday is 0,
// Sunday is 6.
func (d Weekday) NumberDaysFromMonday() int { return int(d) - 1 }

// NumberDaysFromSunday returns the number of days from Sunday: Sunday is 0,
// Saturday is 6.
func (d Weekday) NumberDaysFromSunday() int { return int(d) % 7 }

// Next returns the day after d, wrapping from Sunday to Monday.
func (d Weekday) Next() Weekday {
	if d == Sunday {
		return Monday
	}
	return d + 1
}

// Previous returns the day before d, wrapping from Monday to Sunday.
func (d Weekday) Previous() Weekday {
	if d == Monday {
		return Sunday
	}
	return d - 1
}

// weekdayFromISONumber converts an ISO weekday number (1 is Monday) to a
// Weekday. The number must already be in 1..7.
func weekdayFromISONumber(n int) Weekday { return Weekday(n) }
