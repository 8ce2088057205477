package contacts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-lifeclock/internal/config"
)

// Contact is one person extracted from a vCard source, reduced to what the
// age calculations need.
type Contact struct {
	// Name is the display name (Formatted Name or Structured Name).
	Name string

	// BirthDate is the parsed BDAY value at midnight local time.
	BirthDate time.Time

	// YearKnown indicates whether the vCard carried a year or just --MM-DD.
	// Ages are meaningless when false.
	YearKnown bool
}

// Source describes where the vCard stream comes from.
type Source struct {
	Mode string // config.SourceModeLocal or config.SourceModeWeb
	Path string // Absolute path to the .vcf file
	URL  string // CardDAV or WebDAV URL
	User string // HTTP Basic Auth username
	Pass string // HTTP Basic Auth password
}

// Loader reads and decodes contacts from a configured source.
type Loader struct {
	Fetcher Fetcher // Required for web mode only.
}

// Load opens the source and decodes every card with a parseable birthday.
// Malformed cards are skipped, not fatal: one bad entry must not sink a
// whole address book.
func (l *Loader) Load(ctx context.Context, src Source) ([]Contact, error) {
	reader, err := l.open(ctx, src)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
	}
	defer func() { _ = reader.Close() }()

	log := slog.With(
		config.LogKeyComponent, config.CompContacts,
		config.LogKeyMode, src.Mode,
	)

	decoder := vcard.NewDecoder(reader)
	var out []Contact

	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Warn(config.MsgSkippedCard, config.LogKeyError, err)
			continue
		}

		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		birthDate, yearKnown, err := parseBDAY(bday.Value)
		if err != nil {
			log.Debug(config.MsgSkippedDate, config.LogKeyDOB, bday.Value)
			continue
		}

		// Name strategy: FN (Formatted) > N (Structured) > fallback.
		name := "Unknown"
		if fn := card.Get(config.VCardFN); fn != nil {
			name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil {
			name = n.Value
		}

		out = append(out, Contact{
			Name:      name,
			BirthDate: birthDate,
			YearKnown: yearKnown,
		})
	}

	log.Info(config.MsgContactsLoaded, config.LogKeyCount, len(out))
	return out, nil
}

// open selects the data stream for the configured source mode.
func (l *Loader) open(ctx context.Context, src Source) (io.ReadCloser, error) {
	switch src.Mode {
	case config.SourceModeLocal:
		if src.Path == "" {
			return nil, errors.New(config.ErrLocalPathEmpty)
		}
		return os.Open(src.Path)
	case config.SourceModeWeb:
		if src.URL == "" {
			return nil, errors.New(config.ErrWebURLEmpty)
		}
		if l.Fetcher == nil {
			return nil, errors.New(config.ErrFetcherMissing)
		}
		return l.Fetcher.Fetch(ctx, src.URL, src.User, src.Pass)
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrModeUnsupport, src.Mode)
	}
}

// parseBDAY handles the vCard date formats seen in the wild, including the
// truncated year-less forms.
func parseBDAY(value string) (time.Time, bool, error) {
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return t, true, nil
		}
	}

	// Truncated dates (year unknown). Anchored to a leap year so --02-29
	// survives the parse.
	formatsWithoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range formatsWithoutYear {
		if t, err := time.Parse(f, value); err == nil {
			safeDate := time.Date(config.DefaultLeapYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return safeDate, false, nil
		}
	}

	return time.Time{}, false, errors.New(config.ErrDateParse)
}
