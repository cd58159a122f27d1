package period

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"timeaxis/internal/calendar"
)

// ParseDateText reads a date written the way the axis labels it: "D/M/Y", "M/Y" or "Y".
//
// The last three slash-separated tokens are, right to left, year, month and day. Empty month and
// day tokens default to 1; an empty year token, like empty text, means the current year of now.
// Each token is read up to its first non-digit, so "44BCE" is the year 44. A "B" anywhere in the
// text, or a minus sign on the year, marks a BCE year, which is converted to astronomical
// numbering: "44BCE" and "-44" are both year -43.
func ParseDateText(text string, now time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), nil
	}

	tokens := strings.Split(trimmed, "/")
	if len(tokens) > 3 {
		tokens = tokens[len(tokens)-3:]
	}
	for len(tokens) < 3 {
		tokens = append([]string{""}, tokens...)
	}

	year := now.Year()
	bce := strings.ContainsAny(trimmed, "Bb")
	if tok := strings.TrimSpace(tokens[2]); tok != "" {
		n, err := leadingInt(tok)
		if err != nil {
			return time.Time{}, &ParseError{Input: text, Reason: "year: " + err.Error()}
		}
		year = n
		if bce || n < 0 {
			year = calendar.AstronomicalYear(n)
		}
	}

	month, err := field(tokens[1], 1, 12)
	if err != nil {
		return time.Time{}, &ParseError{Input: text, Reason: "month: " + err.Error()}
	}
	day, err := field(tokens[0], 1, calendar.DaysIn(year, time.Month(month)))
	if err != nil {
		return time.Time{}, &ParseError{Input: text, Reason: "day: " + err.Error()}
	}

	if year == 0 {
		return yearZero(time.Month(month), day), nil
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// yearZero builds a date in astronomical year 0 by counting days back from 1 January of year 1,
// so no calendar constructor is handed a literal year 0. Year 0 is a leap year.
func yearZero(month time.Month, day int) time.Time {
	offset := day - 1
	for m := time.January; m < month; m++ {
		offset += calendar.DaysIn(0, m)
	}
	first := time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 0, offset-366)
}

// field parses an optional month or day token, defaulting to 1 when empty.
func field(tok string, lo, hi int) (int, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return 1, nil
	}
	n, err := leadingInt(tok)
	if err != nil {
		return 0, err
	}
	if n < lo || n > hi {
		return 0, fmt.Errorf("%d out of range %d..%d", n, lo, hi)
	}
	return n, nil
}

// leadingInt reads an optionally signed integer prefix of tok, ignoring whatever follows it.
func leadingInt(tok string) (int, error) {
	end := 0
	if end < len(tok) && (tok[end] == '-' || tok[end] == '+') {
		end++
	}
	digits := end
	for end < len(tok) && tok[end] >= '0' && tok[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, fmt.Errorf("%q is not a number", tok)
	}
	n, err := strconv.Atoi(tok[:end])
	if err != nil {
		return 0, fmt.Errorf("%q is out of range", tok)
	}
	return n, nil
}
