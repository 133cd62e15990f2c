package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chrissnell/moonify/internal/log"
	"github.com/chrissnell/moonify/internal/riseset"
	"github.com/chrissnell/moonify/internal/sampler"
)

var risesetCmd = &cobra.Command{
	Use:   "riseset",
	Short: "Print rise, set and the highest point for the day",
	RunE:  runRiseSet,
}

func runRiseSet(cmd *cobra.Command, _ []string) error {
	a, err := setup(cmd, "")
	if err != nil {
		return err
	}
	defer log.Sync()

	start, err := a.start(cmd)
	if err != nil {
		return err
	}
	day := start.Day()

	res, _, source, err := a.composer.Resolve(day, a.lat(), a.lon())
	if err != nil {
		return err
	}
	if a.cfg.Sampling.UseDirectRiseSet && source != "direct" {
		log.Warnf("direct rise/set search unavailable for %s, showing %s crossings", day, source)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Moon on %s at %.4f, %.4f (%s, %s)\n", day, a.lat(), a.lon(), a.loc, source)
	printCrossing(cmd, "Rise", res.Rise, day)
	printCrossing(cmd, "Set", res.Set, day)
	fmt.Fprintf(out, "  Highest: %s at %.1f°\n", day.At(res.Extremum.MinuteOfDay).Format("15:04"), res.Extremum.AltitudeDeg)

	bands := riseset.Bands(res)
	if len(bands) == 0 {
		fmt.Fprintln(out, "  Above horizon: never")
	}
	for _, b := range bands {
		fmt.Fprintf(out, "  Above horizon: %s – %s\n", day.At(b.Start).Format("15:04"), day.At(b.End).Format("15:04"))
	}
	return nil
}

func printCrossing(cmd *cobra.Command, name string, c *riseset.Crossing, day sampler.Day) {
	if c == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-5s    none\n", name+":")
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  %-5s    %s  %s (%.0f°)\n", name+":",
		day.At(c.MinuteOfDay).Format("15:04:05"), riseset.Compass(c.AzimuthDeg), c.AzimuthDeg)
}
