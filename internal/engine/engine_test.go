package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-lifeclock/internal/engine"
)

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

func date(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}

// -----------------------------------------------------------------------------
// Since-birth components
// -----------------------------------------------------------------------------

func TestCompute_SinceBirthComponents(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		ref   time.Time
		want  engine.Components
	}{
		{
			name:  "plain subtraction, no borrows",
			birth: date(2000, 1, 1, 0, 0, 0),
			ref:   date(2026, 6, 15, 10, 30, 45),
			want:  engine.Components{Years: 26, Months: 5, Days: 14, Hours: 10, Minutes: 30, Seconds: 45},
		},
		{
			name:  "day borrow uses month before reference month",
			birth: date(2000, 5, 20, 0, 0, 0),
			ref:   date(2026, 6, 10, 0, 0, 0),
			// June reference: borrow adds May's 31 days.
			want: engine.Components{Years: 26, Months: 0, Days: 21},
		},
		{
			name:  "month borrow",
			birth: date(2000, 9, 15, 0, 0, 0),
			ref:   date(2026, 2, 24, 0, 0, 0),
			want:  engine.Components{Years: 25, Months: 5, Days: 9},
		},
		{
			name:  "full time-of-day cascade",
			birth: date(2000, 1, 1, 23, 59, 59),
			ref:   date(2000, 1, 2, 0, 0, 0),
			want:  engine.Components{Seconds: 1},
		},
		{
			name:  "day borrow across March uses February length",
			birth: date(2000, 1, 30, 0, 0, 0),
			ref:   date(2026, 3, 10, 0, 0, 0),
			// Month before March 2026 has 28 days: 10-30+28 = 8.
			want: engine.Components{Years: 26, Months: 1, Days: 8},
		},
		{
			name:  "zero duration",
			birth: date(2000, 6, 1, 12, 0, 0),
			ref:   date(2000, 6, 1, 12, 0, 0),
			want:  engine.Components{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := engine.Compute(tt.birth, tt.ref)
			assert.Equal(t, tt.want, res.SinceBirth.Components)
		})
	}
}

func TestCompute_ComponentBounds(t *testing.T) {
	// Every since-birth component stays non-negative and within modulus
	// across a spread of awkward pairs.
	births := []time.Time{
		date(1999, 12, 31, 23, 59, 59),
		date(2000, 2, 29, 6, 30, 0),
		date(1970, 1, 1, 0, 0, 0),
		date(2023, 8, 31, 18, 45, 12),
	}
	refs := []time.Time{
		date(2024, 3, 1, 0, 0, 0),
		date(2026, 2, 28, 23, 59, 59),
		date(2026, 7, 4, 12, 1, 2),
	}

	for _, b := range births {
		for _, r := range refs {
			if r.Before(b) {
				continue
			}
			c := engine.Compute(b, r).SinceBirth.Components
			assert.GreaterOrEqual(t, c.Years, 0)
			assert.True(t, c.Months >= 0 && c.Months < 12, "months out of range for %s/%s: %+v", b, r, c)
			assert.GreaterOrEqual(t, c.Days, 0)
			assert.True(t, c.Hours >= 0 && c.Hours < 24)
			assert.True(t, c.Minutes >= 0 && c.Minutes < 60)
			assert.True(t, c.Seconds >= 0 && c.Seconds < 60)
		}
	}
}

// -----------------------------------------------------------------------------
// Since-birth totals
// -----------------------------------------------------------------------------

func TestCompute_Totals_ExactOneDay(t *testing.T) {
	res := engine.Compute(date(2025, 1, 1, 0, 0, 0), date(2025, 1, 2, 0, 0, 0))

	tot := res.SinceBirth.Totals
	assert.Equal(t, int64(1), tot.Days)
	assert.Equal(t, int64(24), tot.Hours)
	assert.Equal(t, int64(1440), tot.Minutes)
	assert.Equal(t, int64(86400), tot.Seconds)
	assert.Equal(t, int64(0), tot.Months)
	assert.Equal(t, int64(0), tot.Years)
}

func TestCompute_Totals_MonthThreshold(t *testing.T) {
	birth := date(2000, 5, 20, 0, 0, 0)

	// Day-of-month not yet reached: one month short.
	res := engine.Compute(birth, date(2000, 7, 19, 0, 0, 0))
	assert.Equal(t, int64(1), res.SinceBirth.Totals.Months)

	// Threshold day reached.
	res = engine.Compute(birth, date(2000, 7, 20, 0, 0, 0))
	assert.Equal(t, int64(2), res.SinceBirth.Totals.Months)
}

func TestCompute_Totals_Ordering(t *testing.T) {
	// totalSeconds >= totalMinutes >= ... >= totalYears for any gap, and
	// totalYears always equals the years component.
	pairs := []struct{ birth, ref time.Time }{
		{date(2000, 1, 1, 0, 0, 0), date(2026, 6, 15, 10, 30, 45)},
		{date(2025, 12, 31, 23, 0, 0), date(2026, 1, 1, 1, 0, 0)},
		{date(1990, 3, 15, 8, 0, 0), date(1990, 3, 15, 8, 0, 30)},
		{date(1960, 2, 29, 0, 0, 0), date(2026, 2, 28, 12, 0, 0)},
	}

	for _, p := range pairs {
		res := engine.Compute(p.birth, p.ref)
		tot := res.SinceBirth.Totals
		assert.GreaterOrEqual(t, tot.Seconds, tot.Minutes)
		assert.GreaterOrEqual(t, tot.Minutes, tot.Hours)
		assert.GreaterOrEqual(t, tot.Hours, tot.Days)
		assert.GreaterOrEqual(t, tot.Days, tot.Months)
		assert.GreaterOrEqual(t, tot.Months, tot.Years)
		assert.Equal(t, int64(res.SinceBirth.Components.Years), tot.Years)
	}
}

// -----------------------------------------------------------------------------
// Birthday branch
// -----------------------------------------------------------------------------

func TestCompute_BirthdayToday(t *testing.T) {
	// Time of day must not matter for the detection.
	res := engine.Compute(date(1990, 6, 15, 14, 30, 0), date(2026, 6, 15, 8, 0, 0))

	assert.True(t, res.IsBirthday)
	assert.Equal(t, 36, res.TurningAge)
	assert.Nil(t, res.Next, "birthday and countdown are mutually exclusive")
}

func TestCompute_BranchExclusivity(t *testing.T) {
	// Exactly one branch is populated, never both, never neither.
	onBirthday := engine.Compute(date(1990, 6, 15, 0, 0, 0), date(2026, 6, 15, 23, 59, 59))
	require.True(t, onBirthday.IsBirthday)
	assert.Nil(t, onBirthday.Next)

	offBirthday := engine.Compute(date(1990, 6, 15, 0, 0, 0), date(2026, 6, 16, 0, 0, 0))
	require.False(t, offBirthday.IsBirthday)
	require.NotNil(t, offBirthday.Next)
	assert.False(t, offBirthday.Next.Date.IsZero())
}

// -----------------------------------------------------------------------------
// Until next birthday
// -----------------------------------------------------------------------------

func TestCompute_NextBirthdayDate(t *testing.T) {
	tests := []struct {
		name  string
		birth time.Time
		ref   time.Time
		want  time.Time
	}{
		{
			name:  "already passed this year, rolls over",
			birth: date(1990, 1, 10, 0, 0, 0),
			ref:   date(2026, 2, 24, 0, 0, 0),
			want:  date(2027, 1, 10, 0, 0, 0),
		},
		{
			name:  "still ahead this year",
			birth: date(1990, 3, 15, 0, 0, 0),
			ref:   date(2026, 2, 24, 0, 0, 0),
			want:  date(2026, 3, 15, 0, 0, 0),
		},
		{
			name:  "day after the birthday rolls over",
			birth: date(1990, 2, 24, 0, 0, 0),
			ref:   date(2026, 2, 25, 0, 0, 0),
			want:  date(2027, 2, 24, 0, 0, 0),
		},
		{
			name:  "leapling in a non-leap year lands on Mar 1",
			birth: date(2000, 2, 29, 0, 0, 0),
			ref:   date(2026, 6, 15, 0, 0, 0),
			want:  date(2027, 3, 1, 0, 0, 0),
		},
		{
			name:  "leapling in a leap year keeps Feb 29",
			birth: date(2000, 2, 29, 0, 0, 0),
			ref:   date(2024, 1, 15, 0, 0, 0),
			want:  date(2024, 2, 29, 0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := engine.Compute(tt.birth, tt.ref)
			require.NotNil(t, res.Next)
			assert.Equal(t, tt.want, res.Next.Date)
		})
	}
}

func TestCompute_CountdownComponents(t *testing.T) {
	// birth Mar 15, reference Feb 24 10:30:45: the gap is 18 days and the
	// remainder of the reference day.
	res := engine.Compute(date(1990, 3, 15, 0, 0, 0), date(2026, 2, 24, 10, 30, 45))
	require.NotNil(t, res.Next)

	assert.Equal(t, engine.Countdown{Months: 0, Days: 18, Hours: 13, Minutes: 29, Seconds: 15}, res.Next.Countdown)

	tot := res.Next.Totals
	assert.Equal(t, int64(18), tot.Days)
	assert.Equal(t, int64(445), tot.Hours)
	assert.Equal(t, int64(26729), tot.Minutes)
	assert.Equal(t, int64(1603755), tot.Seconds)
	assert.Equal(t, int64(0), tot.Months)
}

func TestCompute_CountdownAcrossYearEnd(t *testing.T) {
	// Birthday already passed: the month field goes negative before the
	// final +12 clamp.
	res := engine.Compute(date(1990, 1, 10, 0, 0, 0), date(2026, 2, 24, 10, 30, 45))
	require.NotNil(t, res.Next)

	assert.Equal(t, engine.Countdown{Months: 10, Days: 16, Hours: 13, Minutes: 29, Seconds: 15}, res.Next.Countdown)
	assert.Equal(t, int64(10), res.Next.Totals.Months)
}

func TestCompute_NextBirthdayIsNearFuture(t *testing.T) {
	// The next birthday is strictly after the reference date and at most
	// 366 days ahead.
	pairs := []struct{ birth, ref time.Time }{
		{date(1990, 1, 10, 0, 0, 0), date(2026, 2, 24, 10, 30, 45)},
		{date(2000, 2, 29, 0, 0, 0), date(2026, 3, 1, 0, 0, 1)},
		{date(1985, 12, 31, 0, 0, 0), date(2026, 1, 1, 0, 0, 0)},
		{date(1985, 7, 4, 0, 0, 0), date(2026, 7, 3, 23, 59, 59)},
	}

	for _, p := range pairs {
		res := engine.Compute(p.birth, p.ref)
		require.NotNil(t, res.Next, "pair %s/%s", p.birth, p.ref)
		assert.True(t, res.Next.Date.After(p.ref))
		assert.LessOrEqual(t, res.Next.Totals.Days, int64(366))
	}
}

func TestCompute_CountdownBounds(t *testing.T) {
	refs := []time.Time{
		date(2026, 1, 1, 0, 0, 1),
		date(2026, 2, 28, 23, 59, 59),
		date(2026, 12, 31, 12, 0, 0),
	}
	births := []time.Time{
		date(1990, 1, 31, 0, 0, 0),
		date(1990, 3, 1, 0, 0, 0),
		date(1990, 12, 30, 0, 0, 0),
	}

	for _, b := range births {
		for _, r := range refs {
			res := engine.Compute(b, r)
			if res.Next == nil {
				continue
			}
			c := res.Next.Countdown
			assert.True(t, c.Months >= 0 && c.Months < 12, "months out of range for %s/%s: %+v", b, r, c)
			assert.GreaterOrEqual(t, c.Days, 0)
			assert.True(t, c.Hours >= 0 && c.Hours < 24)
			assert.True(t, c.Minutes >= 0 && c.Minutes < 60)
			assert.True(t, c.Seconds >= 0 && c.Seconds < 60)
		}
	}
}
