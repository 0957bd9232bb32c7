package civil

import "fmt"

// A Month is a month of the year, January being 1 and December being 12.
type Month int

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [12]string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// MonthFromNumber returns the month with the given number (1..12).
func MonthFromNumber(n int) (Month, error) {
	if n < 1 || n > 12 {
		return 0, componentRange("month", 1, 12, int64(n), false)
	}
	return Month(n), nil
}

// String returns the English name of the month, or "Month(n)" if m is not a
// valid month.
func (m Month) String() string {
	if m < January || m > December {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m-1]
}

// Next returns the month after m, wrapping from December to January.
func (m Month) Next() Month {
	if m == December {
		return January
	}
	return m + 1
}

// Previous returns the month before m, wrapping from January to December.
func (m Month) Previous() Month {
	if m == January {
		return December
	}
	return m - 1
}
