package feed

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-lifeclock/internal/config"
)

// Build renders an iCalendar feed of birthday events for the previous,
// current and next year relative to now, skipping years before the person
// was born. Clients subscribing to the feed keep surrounding years visible
// without an immediate re-sync.
func Build(birth, now time.Time) ([]byte, error) {
	cal := ical.NewCalendar()

	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	// Events are anchored to local calendar dates; only the DTSTAMP is UTC.
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	uidBase := eventUID(birth)
	loc := now.Location()
	currentYear := now.Year()

	for _, y := range []int{currentYear - 1, currentYear, currentYear + 1} {
		if y < birth.Year() {
			continue
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, y, config.ICalDomain))

		age := y - birth.Year()
		summary := fmt.Sprintf("Birthday (turning %d)", age)
		if age == 0 {
			summary = "Birthday (birth)"
		}
		event.Props.SetText(config.PropSummary, summary)

		// Feb 29 normalizes to Mar 1 outside leap years, matching the
		// engine's next-occurrence behavior.
		eventDate := time.Date(y, birth.Month(), birth.Day(), 0, 0, 0, 0, loc)
		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(eventDate)
		event.Props.Set(dtStartProp)

		event.Props.Set(dtStampProp)
		cal.Children = append(cal.Children, event.Component)
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), nil
}

// eventUID derives a deterministic identifier from the birth date so feed
// refreshes never duplicate events.
func eventUID(birth time.Time) string {
	input := fmt.Sprintf(config.FormatHashInput,
		config.ICalDomain, birth.Format(time.RFC3339), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}
