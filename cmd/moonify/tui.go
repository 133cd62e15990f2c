package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chrissnell/moonify/internal/log"
	"github.com/chrissnell/moonify/internal/timeline"
	"github.com/chrissnell/moonify/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Scrub through the day in the terminal (default)",
	RunE:  runTUI,
}

func runTUI(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd, filepath.Join(os.TempDir(), "moonify.log"))
	if err != nil {
		return err
	}
	defer log.Sync()

	start, err := a.start(cmd)
	if err != nil {
		return err
	}

	bridge := tui.NewBridge()
	w := timeline.NewWindow(start, timeline.ConfigFrom(a.cfg.Timeline),
		timeline.WithLogger(a.logger),
		timeline.WithListener(bridge.Push),
	)
	log.Infof("timeline window %s opened at %s", w.ID(), start)

	return tui.Run(tui.NewModel(w, a.composer, bridge, a.lat(), a.lon(), a.logger))
}
