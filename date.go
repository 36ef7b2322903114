package aptdb

import (
	"fmt"

	"github.com/vashv1lass/BAaP-labs/err_def"
)

// Date is a calendar date as entered by the operator.  The zero value
// is not a valid date.
type Date struct {
	Day   int32
	Month int32
	Year  int32
}

// Years before the Gregorian reform use the Julian leap rule.
const gregorianReformYear = 1582

func isLeapYear(year int32) bool {
	if year < gregorianReformYear {
		return year%4 == 0
	}
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

func daysInMonth(month, year int32) int32 {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// IsValid reports whether d denotes a real calendar date.
func (d Date) IsValid() bool {
	if d.Year < 1 || d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day >= 1 && d.Day <= daysInMonth(d.Month, d.Year)
}

// Compare orders two dates chronologically, returning -1, 0, or 1.
func (d Date) Compare(other Date) int {
	pairs := [][2]int32{
		{d.Year, other.Year},
		{d.Month, other.Month},
		{d.Day, other.Day},
	}
	for _, pair := range pairs {
		if pair[0] < pair[1] {
			return -1
		}
		if pair[0] > pair[1] {
			return 1
		}
	}
	return 0
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

func (d Date) String() string {
	return fmt.Sprintf("%02d.%02d.%04d", d.Day, d.Month, d.Year)
}

// ParseDate reads a date in D.M.YYYY form, e.g. "7.11.2023".
func ParseDate(s string) (Date, error) {
	var d Date
	n, err := fmt.Sscanf(s, "%d.%d.%d", &d.Day, &d.Month, &d.Year)
	if err != nil || n != 3 {
		return Date{}, fmt.Errorf("%w: malformed date %q", err_def.ErrInvalidArgument, s)
	}
	if !d.IsValid() {
		return Date{}, fmt.Errorf("%w: no such calendar date %q", err_def.ErrInvalidArgument, s)
	}
	return d, nil
}
