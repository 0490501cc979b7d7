// Package dates models publication dates of varying precision and fully
// specified access dates, and renders both in APA and IEEE citation styles.
package dates

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrOutOfRangeYear is returned for years outside [MinYear, MaxYear].
	ErrOutOfRangeYear = errors.New("year out of range")
	// ErrInvalidMonth is returned for months outside January..December.
	ErrInvalidMonth = errors.New("invalid month")
	// ErrInvalidDayForMonth is returned when a day does not exist in the
	// given month and year.
	ErrInvalidDayForMonth = errors.New("invalid day for month")
)

// Year bounds accepted by the constructors.
const (
	MinYear = 0
	MaxYear = 9999
)

// ieeeMonths holds the IEEE month abbreviations; May carries no period.
var ieeeMonths = [...]string{
	"Jan.", "Feb.", "Mar.", "Apr.", "May", "Jun.",
	"Jul.", "Aug.", "Sep.", "Oct.", "Nov.", "Dec.",
}

func abbrevMonth(m time.Month) string { return ieeeMonths[m-1] }

func checkYear(year int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("%w: %d", ErrOutOfRangeYear, year)
	}
	return nil
}

func checkMonth(m time.Month) error {
	if m < time.January || m > time.December {
		return fmt.Errorf("%w: %d", ErrInvalidMonth, int(m))
	}
	return nil
}

func checkDay(year int, m time.Month, day int) error {
	if day < 1 || day > daysIn(year, m) {
		return fmt.Errorf("%w: day %d of %s %d", ErrInvalidDayForMonth, day, m, year)
	}
	return nil
}

// daysIn returns the number of days in month m of year y under the Gregorian
// calendar.
func daysIn(year int, m time.Month) int {
	switch m {
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if isLeap(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// PublishDate is an immutable publication date at one of three precisions:
// year, year+month, or year+month+day.
type PublishDate struct {
	year  int
	month time.Month // 0 when absent
	day   int        // 0 when absent
}

// Year returns a year-precision date.
func Year(year int) (PublishDate, error) {
	if err := checkYear(year); err != nil {
		return PublishDate{}, err
	}
	return PublishDate{year: year}, nil
}

// YearMonth returns a month-precision date.
func YearMonth(year int, month time.Month) (PublishDate, error) {
	if err := checkYear(year); err != nil {
		return PublishDate{}, err
	}
	if err := checkMonth(month); err != nil {
		return PublishDate{}, err
	}
	return PublishDate{year: year, month: month}, nil
}

// YearMonthDay returns a day-precision date. The day must exist in the given
// month and year (Feb 29 only in leap years, Apr 31 never).
func YearMonthDay(year int, month time.Month, day int) (PublishDate, error) {
	if err := checkYear(year); err != nil {
		return PublishDate{}, err
	}
	if err := checkMonth(month); err != nil {
		return PublishDate{}, err
	}
	if err := checkDay(year, month, day); err != nil {
		return PublishDate{}, err
	}
	return PublishDate{year: year, month: month, day: day}, nil
}

// Year returns the year component.
func (d PublishDate) Year() int { return d.year }

// Month returns the month component; ok is false at year precision.
func (d PublishDate) Month() (time.Month, bool) { return d.month, d.month != 0 }

// Day returns the day component; ok is false unless day precision.
func (d PublishDate) Day() (int, bool) { return d.day, d.day != 0 }

// Compare orders by year, then month, then day. A date with no month sorts
// older than any date of the same year with one; likewise for days.
func (d PublishDate) Compare(o PublishDate) int {
	if d.year != o.year {
		if d.year < o.year {
			return -1
		}
		return 1
	}
	if d.month != o.month {
		if d.month < o.month {
			return -1
		}
		return 1
	}
	if d.day != o.day {
		if d.day < o.day {
			return -1
		}
		return 1
	}
	return 0
}

// IEEE renders "2023", "Feb., 2023", or "Feb. 1, 2023".
func (d PublishDate) IEEE() string {
	switch {
	case d.month == 0:
		return strconv.Itoa(d.year)
	case d.day == 0:
		return fmt.Sprintf("%s, %d", abbrevMonth(d.month), d.year)
	default:
		return fmt.Sprintf("%s %d, %d", abbrevMonth(d.month), d.day, d.year)
	}
}

// APA renders "2023", "2023, February", or "2023, February 1".
func (d PublishDate) APA() string {
	switch {
	case d.month == 0:
		return strconv.Itoa(d.year)
	case d.day == 0:
		return fmt.Sprintf("%d, %s", d.year, d.month)
	default:
		return fmt.Sprintf("%d, %s %d", d.year, d.month, d.day)
	}
}

// AccessDate is the fully specified day a source was last retrieved.
type AccessDate struct {
	t time.Time
}

// NewAccessDate wraps t, normalized to UTC.
func NewAccessDate(t time.Time) AccessDate { return AccessDate{t: t.UTC()} }

// AccessedOn builds an AccessDate from calendar components, validated the
// same way as PublishDate.
func AccessedOn(year int, month time.Month, day int) (AccessDate, error) {
	if err := checkYear(year); err != nil {
		return AccessDate{}, err
	}
	if err := checkMonth(month); err != nil {
		return AccessDate{}, err
	}
	if err := checkDay(year, month, day); err != nil {
		return AccessDate{}, err
	}
	return AccessDate{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}, nil
}

// Today returns the current UTC day.
func Today() AccessDate { return AccessDate{t: time.Now().UTC()} }

// Time returns the underlying instant.
func (a AccessDate) Time() time.Time { return a.t }

// Compare orders access dates by instant.
func (a AccessDate) Compare(o AccessDate) int { return a.t.Compare(o.t) }

// IEEE renders "Apr. 16, 2014".
func (a AccessDate) IEEE() string {
	return fmt.Sprintf("%s %d, %d", abbrevMonth(a.t.Month()), a.t.Day(), a.t.Year())
}

// APA renders "April 16, 2014".
func (a AccessDate) APA() string {
	return fmt.Sprintf("%s %d, %d", a.t.Month(), a.t.Day(), a.t.Year())
}

// ISO renders "2014-04-16", the storage form.
func (a AccessDate) ISO() string { return a.t.Format("2006-01-02") }

// ParseISO parses a stored YYYY-MM-DD access date.
func ParseISO(s string) (AccessDate, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return AccessDate{}, fmt.Errorf("parse access date %q: %w", s, err)
	}
	return AccessDate{t: t}, nil
}
