package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/tartampluch/go-lifeclock/internal/config"
	"github.com/tartampluch/go-lifeclock/internal/dateutil"
	"github.com/tartampluch/go-lifeclock/internal/engine"
	"golang.org/x/text/message"
)

// Translation keys used by the renderer. Values live in locales/*.json.
const (
	tkeyTitle         = "report_title"
	tkeyBirthdayTitle = "report_birthday_title"
	tkeyBorn          = "lbl_born"
	tkeyCalculated    = "lbl_calculated"
	tkeySince         = "sec_since"
	tkeyUntil         = "sec_until"
	tkeyComponents    = "lbl_components"
	tkeyTotals        = "lbl_totals"
	tkeyNextDate      = "lbl_next_date"
	tkeyTurning       = "msg_turning"
	tkeyYears         = "unit_years"
	tkeyMonths        = "unit_months"
	tkeyDays          = "unit_days"
	tkeyHours         = "unit_hours"
	tkeyMinutes       = "unit_minutes"
	tkeySeconds       = "unit_seconds"
)

const ruleWidth = 64

// cake is the fixed illustration appended to the celebratory variant.
const cake = `
        i i i i i
       |=|=|=|=|=|
      {~ * ~ * ~ *}
    __{* ~ * ~ * ~}__
   |                 |
   '-----------------'
`

// Renderer produces the plain-text report for one language. It is safe for
// concurrent use once constructed.
type Renderer struct {
	loc     *Localizer
	printer *message.Printer
}

// NewRenderer builds a renderer for lang, loading the embedded locales.
func NewRenderer(lang string) (*Renderer, error) {
	loc, err := NewLocalizer(lang)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		loc:     loc,
		printer: message.NewPrinter(loc.Tag()),
	}, nil
}

// row is one labelled value inside a bar chart group.
type row struct {
	key   string
	value int64
}

// Render writes the full report for res. On a birthday the header is
// replaced by the celebratory variant, the countdown section is omitted and
// the illustration is appended.
func (r *Renderer) Render(w io.Writer, res engine.Result) error {
	var b strings.Builder

	rule := strings.Repeat("=", ruleWidth)
	b.WriteString(rule + "\n")
	if res.IsBirthday {
		b.WriteString("  " + r.loc.Get(tkeyBirthdayTitle) + "\n")
		b.WriteString("  " + r.loc.GetData(tkeyTurning, map[string]interface{}{"Age": res.TurningAge}) + "\n")
	} else {
		b.WriteString("  " + r.loc.Get(tkeyTitle) + "\n")
	}
	fmt.Fprintf(&b, "  %s: %s\n", r.loc.Get(tkeyBorn), dateutil.Format(res.Birthday))
	fmt.Fprintf(&b, "  %s: %s\n", r.loc.Get(tkeyCalculated), res.CalculatedAt.Format(config.DateFormatStamp))
	b.WriteString(rule + "\n\n")

	b.WriteString(r.loc.Get(tkeySince) + "\n\n")
	r.writeGroup(&b, r.loc.Get(tkeyComponents), sinceComponentRows(res.SinceBirth.Components))
	r.writeGroup(&b, r.loc.Get(tkeyTotals), sinceTotalRows(res.SinceBirth.Totals))

	if res.IsBirthday {
		b.WriteString(cake)
	} else {
		b.WriteString(r.loc.Get(tkeyUntil) + "\n")
		fmt.Fprintf(&b, "%s: %s\n\n", r.loc.Get(tkeyNextDate), dateutil.Format(res.Next.Date))
		r.writeGroup(&b, r.loc.Get(tkeyComponents), countdownComponentRows(res.Next.Countdown))
		r.writeGroup(&b, r.loc.Get(tkeyTotals), countdownTotalRows(res.Next.Totals))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// writeGroup renders one labelled group of rows with a shared bar scale.
func (r *Renderer) writeGroup(b *strings.Builder, title string, rows []row) {
	var max int64
	for _, rw := range rows {
		if rw.value > max {
			max = rw.value
		}
	}

	b.WriteString("  " + title + "\n")
	for _, rw := range rows {
		label := r.loc.Get(rw.key)
		num := r.printer.Sprintf("%d", rw.value)
		fmt.Fprintf(b, "    %-10s %18s  %s\n", label, num, bar(rw.value, max))
	}
	b.WriteString("\n")
}

// bar scales value against the group maximum into ReportBarWidth columns,
// never fewer than one.
func bar(value, max int64) string {
	n := 1
	if max > 0 {
		n = int(math.Round(float64(value) / float64(max) * config.ReportBarWidth))
		if n < 1 {
			n = 1
		}
	}
	return strings.Repeat(config.ReportBarRune, n)
}

func sinceComponentRows(c engine.Components) []row {
	return []row{
		{tkeyYears, int64(c.Years)},
		{tkeyMonths, int64(c.Months)},
		{tkeyDays, int64(c.Days)},
		{tkeyHours, int64(c.Hours)},
		{tkeyMinutes, int64(c.Minutes)},
		{tkeySeconds, int64(c.Seconds)},
	}
}

func sinceTotalRows(t engine.Totals) []row {
	return []row{
		{tkeyYears, t.Years},
		{tkeyMonths, t.Months},
		{tkeyDays, t.Days},
		{tkeyHours, t.Hours},
		{tkeyMinutes, t.Minutes},
		{tkeySeconds, t.Seconds},
	}
}

func countdownComponentRows(c engine.Countdown) []row {
	return []row{
		{tkeyMonths, int64(c.Months)},
		{tkeyDays, int64(c.Days)},
		{tkeyHours, int64(c.Hours)},
		{tkeyMinutes, int64(c.Minutes)},
		{tkeySeconds, int64(c.Seconds)},
	}
}

func countdownTotalRows(t engine.CountdownTotals) []row {
	return []row{
		{tkeyMonths, t.Months},
		{tkeyDays, t.Days},
		{tkeyHours, t.Hours},
		{tkeyMinutes, t.Minutes},
		{tkeySeconds, t.Seconds},
	}
}
