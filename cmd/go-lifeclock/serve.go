package main

import (
	"github.com/spf13/cobra"
	"github.com/tartampluch/go-lifeclock/internal/config"
	"github.com/tartampluch/go-lifeclock/internal/server"
)

var (
	serveConf string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server (API, report, calendar feed, browser page)",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConf, config.FlagConf, "", config.FlagDescConf)
	serveCmd.Flags().StringVar(&servePort, config.FlagPort, "", config.FlagDescPort)
}

func runServe(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings(serveConf)
	if err != nil {
		return err
	}
	if servePort != "" {
		settings.Port = servePort
	}

	srv, err := server.New(settings, nil)
	if err != nil {
		return err
	}

	return srv.Start(cmd.Context())
}
