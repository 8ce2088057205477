package main

import (
	"log/slog"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"github.com/tartampluch/go-lifeclock/internal/config"
	"github.com/tartampluch/go-lifeclock/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Open the desktop window with a live ticking breakdown",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	a := app.NewWithID(config.AppID)
	gui := ui.NewWatchApp(a, cmd.Context())

	// Lifecycle bridge: a signal on the root context closes the window.
	go func() {
		<-cmd.Context().Done()
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompMain)
		gui.Session.Stop()
		a.Quit()
	}()

	gui.Run()
	return nil
}
