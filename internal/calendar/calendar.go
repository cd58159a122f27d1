/*
Package calendar converts proleptic Gregorian dates into proleptic Julian dates and formats
years for display.

Years are astronomical throughout the package (year 0 exists and precedes year 1). Display
strings use historical numbering, where 1 BCE is immediately followed by 1 CE.
*/
package calendar

import (
	"fmt"
	"strconv"
	"time"
)

// Julian conversion is defined for astronomical years in [MinYear, MaxYear).
const (
	MinYear = -7501
	MaxYear = 41000
)

// Date is a calendar date with an astronomical year.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// FromTime returns the Gregorian calendar date of t in UTC.
func FromTime(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{Year: y, Month: m, Day: d}
}

// String renders the date as D/M/Y using the historical display year, e.g. "15/3/44BCE".
func (d Date) String() string {
	return fmt.Sprintf("%d/%d/%s", d.Day, int(d.Month), DisplayYear(HistoricalYear(d.Year)))
}

// HistoricalYear maps an astronomical year onto historical numbering: year 0 becomes -1
// (1 BCE), year -1 becomes -2, and positive years are unchanged.
func HistoricalYear(astronomical int) int {
	if astronomical <= 0 {
		return astronomical - 1
	}
	return astronomical
}

// AstronomicalYear is the inverse of HistoricalYear for BCE years given as a magnitude:
// 1 BCE is year 0, 44 BCE is year -43.
func AstronomicalYear(bce int) int {
	if bce < 0 {
		bce = -bce
	}
	return 1 - bce
}

// DisplayYear formats a historical year, writing negative years as "{abs}BCE".
func DisplayYear(historical int) string {
	if historical < 0 {
		return strconv.Itoa(-historical) + "BCE"
	}
	return strconv.Itoa(historical)
}

// Supported reports whether Julian conversion is defined for the astronomical year.
func Supported(year int) bool {
	return year >= MinYear && year < MaxYear
}

// IsLeap reports whether the astronomical year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days of the month in the proleptic Gregorian calendar.
func DaysIn(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
