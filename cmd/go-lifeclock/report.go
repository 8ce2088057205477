package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-lifeclock/internal/config"
	"github.com/tartampluch/go-lifeclock/internal/dateutil"
	"github.com/tartampluch/go-lifeclock/internal/engine"
	"github.com/tartampluch/go-lifeclock/internal/report"
)

var (
	reportBirthday string
	reportLang     string
	reportOut      string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the age breakdown report for a birth date",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportBirthday, config.FlagBirthday, "", config.FlagDescBirthday)
	reportCmd.Flags().StringVar(&reportLang, config.FlagLang, config.DefaultLanguage, config.FlagDescLang)
	reportCmd.Flags().StringVar(&reportOut, config.FlagOut, "", config.FlagDescOut)
	_ = reportCmd.MarkFlagRequired(config.FlagBirthday)
}

func runReport(cmd *cobra.Command, args []string) error {
	clock := engine.RealClock{}

	birth, err := parseBirthFlag(reportBirthday, clock)
	if err != nil {
		return err
	}

	renderer, err := report.NewRenderer(reportLang)
	if err != nil {
		return err
	}

	res := engine.Compute(birth, clock.Now())

	var buf bytes.Buffer
	if err := renderer.Render(&buf, res); err != nil {
		return fmt.Errorf("%s: %w", config.ErrRenderReport, err)
	}

	if reportOut == "" {
		_, err = os.Stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(reportOut, buf.Bytes(), config.FilePermShared); err != nil {
		return fmt.Errorf("%s: %w", config.ErrOutWrite, err)
	}
	return nil
}

// parseBirthFlag applies the same validation taxonomy as the HTTP boundary.
func parseBirthFlag(raw string, clock engine.Clock) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New(config.MsgInputMissing)
	}

	birth, err := dateutil.Parse(raw, time.Local)
	switch {
	case err == nil:
	case errors.Is(err, dateutil.ErrCalendar):
		return time.Time{}, errors.New(config.MsgInputCalendar)
	default:
		return time.Time{}, errors.New(config.MsgInputShape)
	}

	if birth.After(clock.Now()) {
		return time.Time{}, errors.New(config.MsgInputFuture)
	}
	return birth, nil
}
