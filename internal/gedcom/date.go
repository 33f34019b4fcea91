package gedcom

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatDate renders a date as a GEDCOM exact date, e.g. "05 MAR 1950".
func FormatDate(t time.Time) string {
	return strings.ToUpper(t.Format("02 Jan 2006"))
}

var monthsByAbbrev = map[string]time.Month{
	"JAN": time.January, "FEB": time.February, "MAR": time.March,
	"APR": time.April, "MAY": time.May, "JUN": time.June,
	"JUL": time.July, "AUG": time.August, "SEP": time.September,
	"OCT": time.October, "NOV": time.November, "DEC": time.December,
}

// ParseDate parses a GEDCOM exact date ("DD MON YYYY") back into a UTC date.
func ParseDate(s string) (time.Time, error) {
	parts := strings.Fields(s)
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("invalid date %q: expected DD MON YYYY", s)
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("invalid date %q: bad day", s)
	}
	month, ok := monthsByAbbrev[strings.ToUpper(parts[1])]
	if !ok {
		return time.Time{}, fmt.Errorf("invalid date %q: bad month", s)
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil || year < 0 {
		return time.Time{}, fmt.Errorf("invalid date %q: bad year", s)
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}
