package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

// Date is a civil calendar date with day-of-month, month and year components.
// Values are immutable: operations return new Dates.
type Date struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// NewDate validates the components and returns a Date. Month must be 1-12,
// day 1-31 and year after 1900, matching the input-layer contract; finer
// per-month day validation is intentionally not performed.
func NewDate(day, month, year int) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	if day < 1 || day > 31 {
		return Date{}, fmt.Errorf("day must be between 1 and 31, got %d", day)
	}
	if year <= 1900 {
		return Date{}, fmt.Errorf("year must be after 1900, got %d", year)
	}
	return Date{Day: day, Month: month, Year: year}, nil
}

// Parse reads a DD-MM-YYYY or DD/MM/YYYY string into a Date.
func Parse(s string) (Date, error) {
	sep := "-"
	if strings.Contains(s, "/") {
		sep = "/"
	}
	parts := strings.Split(strings.TrimSpace(s), sep)
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("date must be in DD%sMM%sYYYY format, got %q", sep, sep, s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("date component %q is not a number", p)
		}
		nums[i] = n
	}
	return NewDate(nums[0], nums[1], nums[2])
}

// dayNumber converts a date to a linear day count (days since 1970-01-01)
// using the civil-calendar algorithm, so day arithmetic is independent of
// time zones and daylight saving. Handles leap years and month rollovers.
func dayNumber(d Date) int64 {
	y := int64(d.Year)
	m := int64(d.Month)
	if m <= 2 {
		y--
	}
	era := y / 400
	if y < 0 {
		era = (y - 399) / 400
	}
	yoe := y - era*400
	var mShift int64
	if m > 2 {
		mShift = m - 3
	} else {
		mShift = m + 9
	}
	doy := (153*mShift+2)/5 + int64(d.Day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// DaysBetween returns the signed number of whole days in (a - b).
func DaysBetween(a, b Date) int64 {
	return dayNumber(a) - dayNumber(b)
}

// AddOneYear returns the date one calendar year later, leaving day and month
// untouched. A February 29 input mechanically becomes 29/02 of the next year
// even when that year is not a leap year; the result is not validated and
// day arithmetic treats it as the start of March.
func AddOneYear(d Date) Date {
	return Date{Day: d.Day, Month: d.Month, Year: d.Year + 1}
}

// String renders the date as zero-padded DD/MM/YYYY.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%d", d.Day, d.Month, d.Year)
}

// IsLeapYear reports whether the given year is a leap year in the Gregorian
// calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
