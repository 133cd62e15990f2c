package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/chrissnell/moonify/internal/log"
	"github.com/chrissnell/moonify/internal/mapper"
	"github.com/chrissnell/moonify/internal/scene"
)

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Print one render frame for the selected instant",
	RunE:  runFrame,
}

func init() {
	f := frameCmd.Flags()
	f.Float64("strip-width", 1440, "timeline strip width in pixels")
	f.Float64("strip-height", 48, "timeline strip height in pixels")
	f.Float64("panel-width", 480, "now panel width in pixels")
	f.Float64("panel-height", 320, "now panel height in pixels")
	f.Float64("offset", 0, "timeline pan offset in minutes")
	f.String("format", "json", "output format: json or msgpack")
}

func runFrame(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd, "")
	if err != nil {
		return err
	}
	defer log.Sync()

	start, err := a.start(cmd)
	if err != nil {
		return err
	}

	fl := cmd.Flags()
	sw, _ := fl.GetFloat64("strip-width")
	sh, _ := fl.GetFloat64("strip-height")
	pw, _ := fl.GetFloat64("panel-width")
	ph, _ := fl.GetFloat64("panel-height")
	offset, _ := fl.GetFloat64("offset")
	format, _ := fl.GetString("format")

	f, err := a.composer.Compose(scene.Request{
		Instant: start,
		Offset:  offset,
		Lat:     a.lat(),
		Lon:     a.lon(),
		Strip:   mapper.Viewport{Width: sw, Height: sh},
		Panel:   mapper.Viewport{Width: pw, Height: ph},
	})
	if err != nil {
		return err
	}
	return scene.Encode(os.Stdout, f, format)
}
