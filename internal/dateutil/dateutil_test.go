package dateutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-lifeclock/internal/dateutil"
)

func TestParse_Valid(t *testing.T) {
	got, err := dateutil.Parse("1990-03-15", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestParse_Malformed(t *testing.T) {
	tests := []string{
		"",
		"1990-3-15",
		"15-03-1990",
		"1990/03/15",
		"1990-03-15T00:00:00",
		"199O-03-15", // letter O, not zero
		"1990-03-1",
		" 1990-03-15",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			_, err := dateutil.Parse(text, time.UTC)
			assert.ErrorIs(t, err, dateutil.ErrMalformed)
		})
	}
}

func TestParse_ImpossibleDates(t *testing.T) {
	// Right shape, nonexistent dates. These must fail calendar validation.
	tests := []string{
		"2000-02-30",
		"2000-13-01",
		"2024-04-31",
		"2023-02-29", // not a leap year
		"2000-00-10",
		"2000-01-00",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			_, err := dateutil.Parse(text, time.UTC)
			assert.ErrorIs(t, err, dateutil.ErrCalendar)
		})
	}
}

func TestParse_LeapDay(t *testing.T) {
	// Feb 29 round-trips only on real leap years.
	got, err := dateutil.Parse("2024-02-29", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)

	_, err = dateutil.Parse("2100-02-29", time.UTC) // century rule
	assert.ErrorIs(t, err, dateutil.ErrCalendar)
}

func TestFormat_ZeroPadding(t *testing.T) {
	d := time.Date(2026, 1, 5, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "2026-01-05", dateutil.Format(d))
}

// TestRoundTrip checks parse(format(d)) == d for a spread of valid dates.
func TestRoundTrip(t *testing.T) {
	dates := []time.Time{
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		time.Date(1999, 12, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC),
	}

	for _, d := range dates {
		got, err := dateutil.Parse(dateutil.Format(d), time.UTC)
		require.NoError(t, err)
		assert.True(t, got.Equal(d), "round-trip mismatch for %s", d)
	}
}

func TestValidDate(t *testing.T) {
	assert.True(t, dateutil.ValidDate(2024, 2, 29))
	assert.True(t, dateutil.ValidDate(2023, 12, 31))
	assert.False(t, dateutil.ValidDate(2023, 2, 29))
	assert.False(t, dateutil.ValidDate(2024, 4, 31))
	assert.False(t, dateutil.ValidDate(2024, 13, 1))
}
