package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-lifeclock/internal/config"
)

var (
	flagDebug   bool
	flagVersion bool

	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "go-lifeclock",
	Short: "Birthday clocks: age breakdowns, countdowns, reports and feeds",
	Long: `go-lifeclock computes how long someone has been alive and how long is
left until their next birthday, as a JSON API, a plain-text report, an
iCalendar feed, or a live desktop display.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logCloser = setupLogging(flagDebug)
		logStartupInfo()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagVersion {
			printVersion()
			return nil
		}
		return cmd.Help()
	},
}

// Execute sets up the signal-aware root context and runs the CLI.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	defer func() {
		if logCloser != nil {
			_ = logCloser.Close() // Best effort close
		}
	}()

	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, config.FlagDebug, false, config.FlagDescDebug)
	rootCmd.Flags().BoolVar(&flagVersion, config.FlagVersion, false, config.FlagDescVersion)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(contactsCmd)
	rootCmd.AddCommand(watchCmd)
}

// printVersion outputs the build information to stdout.
func printVersion() {
	fmt.Printf(config.MsgVersionOutput,
		config.AppName,
		config.Version,
		runtime.GOOS,
		runtime.GOARCH,
	)
}
