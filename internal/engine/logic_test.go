package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestDaysInMonthBefore verifies the month-length helper the day borrow
// depends on, including February in both year kinds and the January case
// that reaches back into the previous year.
func TestDaysInMonthBefore(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want int
	}{
		{"before March, non-leap", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), 28},
		{"before March, leap", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), 29},
		{"before January is last December", time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), 31},
		{"before July", time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), 30},
		{"before August", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, daysInMonthBefore(tt.in))
		})
	}
}

func TestElapsedMonths(t *testing.T) {
	birth := time.Date(2000, 5, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ref  time.Time
		want int64
	}{
		{"same day counts the month", time.Date(2000, 6, 20, 0, 0, 0, 0, time.UTC), 1},
		{"day before threshold", time.Date(2000, 6, 19, 23, 59, 59, 0, time.UTC), 0},
		{"across a year boundary", time.Date(2001, 1, 20, 0, 0, 0, 0, time.UTC), 8},
		{"many years", time.Date(2026, 5, 19, 0, 0, 0, 0, time.UTC), 311},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, elapsedMonths(birth, tt.ref))
		})
	}
}
