package dateutil

import (
	"errors"
	"strconv"
	"time"

	"github.com/tartampluch/go-lifeclock/internal/config"
)

// Sentinel errors distinguishing the two ways a date string can be wrong.
// Callers map these to their own user-facing messages.
var (
	// ErrMalformed means the text does not have the YYYY-MM-DD shape at all.
	ErrMalformed = errors.New("malformed date, expected YYYY-MM-DD")

	// ErrCalendar means the shape is right but the date does not exist
	// (Feb 30, month 13, Apr 31, Feb 29 outside leap years).
	ErrCalendar = errors.New("impossible calendar date")
)

// Format renders t as a zero-padded YYYY-MM-DD string using its local
// calendar fields. No time zone conversion is applied.
func Format(t time.Time) string {
	return t.Format(config.DateFormatFullDash)
}

// Parse converts a strict YYYY-MM-DD string into a midnight instant in loc.
// The shape check is exact: four digits, hyphen, two digits, hyphen, two
// digits. Anything else returns ErrMalformed; a well-shaped but impossible
// date returns ErrCalendar.
func Parse(text string, loc *time.Location) (time.Time, error) {
	if !wellShaped(text) {
		return time.Time{}, ErrMalformed
	}

	year, _ := strconv.Atoi(text[0:4])
	month, _ := strconv.Atoi(text[5:7])
	day, _ := strconv.Atoi(text[8:10])

	if !ValidDate(year, month, day) {
		return time.Time{}, ErrCalendar
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc), nil
}

// ValidDate reports whether (year, month, day) names a real calendar date.
// It builds the date and reads the fields back: time.Date normalizes
// overflow (Feb 30 becomes Mar 1/2), so the round-trip succeeds only for
// dates that actually exist, leap-year Feb 29 included.
func ValidDate(year, month, day int) bool {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}

// wellShaped checks the exact 4-2-2 digit layout.
func wellShaped(text string) bool {
	if len(text) != 10 || text[4] != '-' || text[7] != '-' {
		return false
	}
	for i, r := range text {
		if i == 4 || i == 7 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
