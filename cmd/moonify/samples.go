package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/chrissnell/moonify/internal/log"
	"github.com/chrissnell/moonify/pkg/responseformat"
)

var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "Print the day's altitude/azimuth samples",
	RunE:  runSamples,
}

func init() {
	samplesCmd.Flags().String("format", "json", "output format: json or msgpack")
}

func runSamples(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd, "")
	if err != nil {
		return err
	}
	defer log.Sync()

	start, err := a.start(cmd)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")
	fm, err := responseformat.ParseFormat(format)
	if err != nil {
		return err
	}

	samples, err := a.cache.Get(start.Day(), a.lat(), a.lon())
	if err != nil {
		return err
	}
	return (&responseformat.Formatter{Indent: true}).Write(os.Stdout, samples, fm)
}
