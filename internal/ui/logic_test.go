package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-lifeclock/internal/engine"
)

func TestFormatSince(t *testing.T) {
	got := formatSince(engine.Components{
		Years: 26, Months: 5, Days: 14, Hours: 10, Minutes: 30, Seconds: 45,
	})
	assert.Equal(t, "Age: 26y 5m 14d  10:30:45", got)
}

func TestFormatSince_PadsClockFields(t *testing.T) {
	got := formatSince(engine.Components{Years: 1, Hours: 2, Minutes: 3, Seconds: 4})
	assert.Contains(t, got, "02:03:04")
}

func TestFormatNext(t *testing.T) {
	got := formatNext(engine.NextBirthday{
		Countdown: engine.Countdown{Months: 6, Days: 16, Hours: 13, Minutes: 29, Seconds: 15},
		Date:      time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.Equal(t, "Next birthday 2027-01-01 in 6m 16d 13:29:15", got)
}

func TestFormatTotals(t *testing.T) {
	got := formatTotals(engine.Totals{Months: 317, Days: 9662, Hours: 231874, Seconds: 834749445})
	assert.Equal(t, "Totals: 317 months / 9662 days / 231874 hours / 834749445 seconds", got)
}
