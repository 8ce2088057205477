package main

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-lifeclock/internal/config"
	"github.com/tartampluch/go-lifeclock/internal/contacts"
	"github.com/tartampluch/go-lifeclock/internal/engine"
	"github.com/zalando/go-keyring"
)

var (
	contactsVCF  string
	contactsURL  string
	contactsUser string
)

var contactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Summarize upcoming birthdays from a vCard address book",
	Args:  cobra.NoArgs,
	RunE:  runContacts,
}

func init() {
	contactsCmd.Flags().StringVar(&contactsVCF, config.FlagVCF, "", config.FlagDescVCF)
	contactsCmd.Flags().StringVar(&contactsURL, config.FlagURL, "", config.FlagDescURL)
	contactsCmd.Flags().StringVar(&contactsUser, config.FlagUser, "", config.FlagDescUser)
	contactsCmd.MarkFlagsMutuallyExclusive(config.FlagVCF, config.FlagURL)
}

func runContacts(cmd *cobra.Command, args []string) error {
	src, err := contactsSource()
	if err != nil {
		return err
	}

	loader := &contacts.Loader{Fetcher: contacts.NewHTTPFetcher()}
	list, err := loader.Load(cmd.Context(), src)
	if err != nil {
		return err
	}

	clock := engine.RealClock{}
	now := clock.Now()

	type line struct {
		contact contacts.Contact
		result  engine.Result
	}

	lines := make([]line, 0, len(list))
	for _, c := range list {
		lines = append(lines, line{contact: c, result: engine.Compute(c.BirthDate, now)})
	}

	// Soonest birthday first; today's at the top.
	sort.Slice(lines, func(i, j int) bool {
		li, lj := lines[i].result, lines[j].result
		if li.IsBirthday != lj.IsBirthday {
			return li.IsBirthday
		}
		if li.IsBirthday {
			return lines[i].contact.Name < lines[j].contact.Name
		}
		return li.Next.Totals.Seconds < lj.Next.Totals.Seconds
	})

	for _, l := range lines {
		printContactLine(l.contact, l.result)
	}
	return nil
}

func printContactLine(c contacts.Contact, res engine.Result) {
	date := c.BirthDate.Format(config.DateFormatFullDash)

	if res.IsBirthday {
		fmt.Printf(config.FormatContactToday, c.Name, date, res.TurningAge)
		return
	}

	cd := res.Next.Countdown
	if !c.YearKnown {
		fmt.Printf(config.FormatContactNoYear, c.Name, date,
			cd.Months, cd.Days, cd.Hours, cd.Minutes, cd.Seconds)
		return
	}

	// Years since birth plus one: the age being turned next.
	turning := res.SinceBirth.Components.Years + 1
	fmt.Printf(config.FormatContactLine, c.Name, date, turning,
		cd.Months, cd.Days, cd.Hours, cd.Minutes, cd.Seconds)
}

// contactsSource maps the flags onto a loader source, pulling the web
// password from the system keyring when a username is given.
func contactsSource() (contacts.Source, error) {
	switch {
	case contactsVCF != "":
		return contacts.Source{
			Mode: config.SourceModeLocal,
			Path: contactsVCF,
		}, nil

	case contactsURL != "":
		src := contacts.Source{
			Mode: config.SourceModeWeb,
			URL:  contactsURL,
			User: contactsUser,
		}
		if contactsUser != "" {
			if pass, err := keyring.Get(config.KeyringService, contactsUser); err == nil {
				src.Pass = pass
			} else {
				slog.Debug(config.MsgPassFail,
					config.LogKeyComponent, config.CompMain,
					config.LogKeyUser, contactsUser,
					config.LogKeyError, err,
				)
			}
		}
		return src, nil

	default:
		return contacts.Source{}, errors.New(config.ErrSourceRequired)
	}
}
