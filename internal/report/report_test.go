package report_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-lifeclock/internal/engine"
	"github.com/tartampluch/go-lifeclock/internal/report"
)

func renderFor(t *testing.T, lang string, birth, ref time.Time) string {
	t.Helper()

	r, err := report.NewRenderer(lang)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, engine.Compute(birth, ref)))
	return buf.String()
}

func TestRender_RegularDay(t *testing.T) {
	out := renderFor(t, "en",
		time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 24, 10, 30, 45, 0, time.UTC))

	assert.Contains(t, out, "AGE REPORT")
	assert.Contains(t, out, "Born: 1990-03-15")
	assert.Contains(t, out, "Time since birth")
	assert.Contains(t, out, "Time until next birthday")
	assert.Contains(t, out, "Next birthday on: 2026-03-15")
	assert.NotContains(t, out, "HAPPY BIRTHDAY", "celebratory header only on the birthday")
}

func TestRender_GroupedThousands(t *testing.T) {
	// Exactly one day: totalSeconds is 86400 and must be grouped.
	out := renderFor(t, "en",
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))

	assert.Contains(t, out, "86,400")
	assert.Contains(t, out, "1,440")
}

func TestRender_BirthdayVariant(t *testing.T) {
	out := renderFor(t, "en",
		time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC))

	assert.Contains(t, out, "HAPPY BIRTHDAY!")
	assert.Contains(t, out, "Turning 36 today!")
	// The countdown section is omitted and the illustration appended.
	assert.NotContains(t, out, "Time until next birthday")
	assert.Contains(t, out, "i i i i i")
}

func TestRender_French(t *testing.T) {
	out := renderFor(t, "fr",
		time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 24, 10, 30, 45, 0, time.UTC))

	assert.Contains(t, out, "RAPPORT D'AGE")
	assert.Contains(t, out, "Annees")
	assert.NotContains(t, out, "AGE REPORT")
}

func TestRender_UnknownLanguageFallsBack(t *testing.T) {
	out := renderFor(t, "xx",
		time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 24, 10, 30, 45, 0, time.UTC))

	assert.Contains(t, out, "AGE REPORT")
}

func TestRender_BarWidths(t *testing.T) {
	out := renderFor(t, "en",
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 15, 10, 30, 45, 0, time.UTC))

	maxRun := 0
	for _, line := range strings.Split(out, "\n") {
		run := strings.Count(line, "#")
		if run > maxRun {
			maxRun = run
		}
		// Every charted line carries at least one column.
		if strings.Contains(line, "  #") {
			assert.GreaterOrEqual(t, run, 1)
		}
	}
	// The group maximum fills the full fixed width.
	assert.Equal(t, 36, maxRun)
}
