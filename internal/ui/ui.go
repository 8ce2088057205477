// Package ui is the desktop watch window: type a birth date and watch the
// breakdown tick once per second.
package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-lifeclock/internal/config"
	"github.com/tartampluch/go-lifeclock/internal/dateutil"
	"github.com/tartampluch/go-lifeclock/internal/engine"
)

// WatchApp encapsulates the window state and the ticking session.
type WatchApp struct {
	App     fyne.App
	Window  fyne.Window
	Clock   engine.Clock // Injected clock for testability
	Session *Session
	Ctx     context.Context

	entry  *DateEntry
	toggle *widget.Button
	status *widget.Label

	banner *widget.Label
	since  *widget.Label
	totals *widget.Label
	next   *widget.Label
}

// NewWatchApp constructs the application and wires dependencies.
func NewWatchApp(a fyne.App, ctx context.Context) *WatchApp {
	clock := engine.RealClock{}
	return &WatchApp{
		App:     a,
		Clock:   clock,
		Session: NewSession(clock),
		Ctx:     ctx,
	}
}

// Run builds the window and enters the UI loop. Blocks until the window
// closes.
func (w *WatchApp) Run() {
	w.Window = w.App.NewWindow(config.AppName)

	w.entry = NewDateEntry()
	w.entry.SetPlaceHolder(config.DateFormatFullDash)

	w.status = widget.NewLabel("")
	w.banner = widget.NewLabel("")
	w.since = widget.NewLabel("")
	w.totals = widget.NewLabel("")
	w.next = widget.NewLabel("")

	w.toggle = widget.NewButton("Start", w.onToggle)
	w.entry.OnSubmitted = func(string) { w.onToggle() }

	w.Window.SetContent(container.NewVBox(
		widget.NewLabel("Birth date"),
		w.entry,
		w.toggle,
		w.status,
		widget.NewSeparator(),
		w.banner,
		w.since,
		w.totals,
		w.next,
	))
	w.Window.Resize(fyne.NewSize(420, 360))

	w.Window.SetCloseIntercept(func() {
		w.Session.Stop()
		w.Window.Close()
	})

	w.Window.ShowAndRun()
}

// onToggle starts the ticking session from the entry value, or resets an
// active one.
func (w *WatchApp) onToggle() {
	if w.Session.Active() {
		w.Session.Stop()
		w.toggle.SetText("Start")
		w.entry.Enable()
		w.status.SetText("")
		return
	}

	birth, err := dateutil.Parse(w.entry.Text, w.Clock.Now().Location())
	if err != nil {
		w.status.SetText(config.MsgInputShape)
		return
	}
	if birth.After(w.Clock.Now()) {
		w.status.SetText(config.MsgInputFuture)
		return
	}

	w.status.SetText("")
	w.entry.Disable()
	w.toggle.SetText("Reset")

	w.Session.Start(w.Ctx, birth, func(res engine.Result) {
		fyne.Do(func() { w.apply(res) })
	})
}

// apply pushes one engine result into the labels. Must run on the UI thread.
func (w *WatchApp) apply(res engine.Result) {
	w.since.SetText(formatSince(res.SinceBirth.Components))
	w.totals.SetText(formatTotals(res.SinceBirth.Totals))

	if res.IsBirthday {
		w.banner.SetText(fmt.Sprintf("Happy birthday! Turning %d today.", res.TurningAge))
		w.next.SetText("")
		return
	}
	w.banner.SetText("")
	w.next.SetText(formatNext(*res.Next))
}

func formatSince(c engine.Components) string {
	return fmt.Sprintf("Age: %dy %dm %dd  %02d:%02d:%02d",
		c.Years, c.Months, c.Days, c.Hours, c.Minutes, c.Seconds)
}

func formatTotals(t engine.Totals) string {
	return fmt.Sprintf("Totals: %d months / %d days / %d hours / %d seconds",
		t.Months, t.Days, t.Hours, t.Seconds)
}

func formatNext(n engine.NextBirthday) string {
	return fmt.Sprintf("Next birthday %s in %dm %dd %02d:%02d:%02d",
		n.Date.Format(config.DateFormatFullDash),
		n.Countdown.Months, n.Countdown.Days,
		n.Countdown.Hours, n.Countdown.Minutes, n.Countdown.Seconds)
}
