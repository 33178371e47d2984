package cashflow

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const readDateFormat = "2006-1-2" // Permissive read date format (allows single-digit month/day).

// DateFormat is the format used to represent dates as strings in ISO-8601 format.
const DateFormat = "2006-01-02" // write date format

// Date represents a date with day-level granularity. It is the canonical
// temporal value stored in the ledger; display strings are derived from it,
// never the other way around.
type Date struct {
	y int        // year
	m time.Month // month
	d int        // day
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// DateOf truncates an instant to its calendar date.
func DateOf(t time.Time) Date { return NewDate(t.Date()) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in ISO-8601.
func (d Date) String() string { return d.time().Format(DateFormat) }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool {
	return d.y == 0 && d.m == 0 && d.d == 0
}

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Format returns a textual representation of the date value formatted
// according to the layout defined by the argument.
//
//	See the documentation for [time.Time.Format].
func (d Date) Format(format string) string { return d.time().Format(format) }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(i int) Date { return NewDate(d.y, d.m, d.d+i) }

// AddMonth returns a new Date with the given number of months added.
func (d Date) AddMonth(i int) Date { return NewDate(d.y, d.m+time.Month(i), d.d) }

// MonthLabel returns the "Jan 2006" style label used to stamp EMI payments.
func (d Date) MonthLabel() string { return d.Format("Jan 2006") }

// ShortMonthLabel returns the "Jan 06" style label used by monthly snapshots.
func (d Date) ShortMonthLabel() string { return d.Format("Jan 06") }

// ParseDate parses a Date from a string. It is lenient: besides ISO-8601 it
// accepts slash- or dot-separated day/month orderings that older backups may
// contain. Parsed values become canonical [Date] values, the original string
// is never kept.
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)

	on, err := time.Parse(readDateFormat, str)
	if err == nil {
		return NewDate(on.Date()), nil
	}
	// full timestamps occur in histories exported by old builds
	if on, err := time.Parse(time.RFC3339, str); err == nil {
		return NewDate(on.Date()), nil
	}

	// DD/MM/YYYY or MM/DD/YYYY with /, . or - separators.
	parts := strings.FieldsFunc(str, func(r rune) bool { return r == '/' || r == '.' || r == '-' })
	if len(parts) == 3 {
		p0, err0 := strconv.Atoi(parts[0])
		p1, err1 := strconv.Atoi(parts[1])
		p2, err2 := strconv.Atoi(parts[2])
		if err0 == nil && err1 == nil && err2 == nil {
			if p0 > 12 {
				// first field cannot be a month, read as DD/MM/YYYY
				return NewDate(p2, time.Month(p1), p0), nil
			}
			return NewDate(p2, time.Month(p0), p1), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q want format %q", str, DateFormat)
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON implements the json specific way to unmarshall a date from a json string.
func (j *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	if str == "" {
		*j = Date{}
		return nil
	}
	on, err := ParseDate(str)
	if err != nil {
		return fmt.Errorf("invalid date %q in data file: %w", str, err)
	}
	*j = on
	return nil
}

// MarshalJSON writes the date as an ISO-8601 string. The zero value is
// written as "" so that an unset date survives a round trip.
func (j Date) MarshalJSON() ([]byte, error) {
	if j.IsZero() {
		return json.Marshal("")
	}
	str := j.String()
	return json.Marshal(&str)
}

// check that a Date pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)
