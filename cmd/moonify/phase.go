package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chrissnell/moonify/pkg/lunar"
)

var phaseCmd = &cobra.Command{
	Use:   "phase",
	Short: "Print the Moon's phase at an instant",
	RunE:  runPhase,
}

func init() {
	phaseCmd.Flags().String("at", "", "UTC time to calculate phase for (RFC3339 format, e.g., 2024-01-15T12:00:00Z)")
}

func runPhase(cmd *cobra.Command, _ []string) error {
	timeStr, _ := cmd.Flags().GetString("at")

	var t time.Time
	if timeStr == "" {
		t = time.Now().UTC()
	} else {
		var err error
		t, err = time.Parse(time.RFC3339, timeStr)
		if err != nil {
			return fmt.Errorf("parse --at: %w", err)
		}
	}

	phase := lunar.PhaseAt(t)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Moon Phase for %s\n", t.Format(time.RFC3339))
	fmt.Fprintf(out, "  Phase:        %.1f%% (%.4f)\n", phase.Fraction*100, phase.Fraction)
	fmt.Fprintf(out, "  Phase Name:   %s\n", phase.Name)
	fmt.Fprintf(out, "  Illumination: %.1f%%\n", phase.Illumination*100)
	fmt.Fprintf(out, "  Age:          %.1f days\n", phase.AgeDays)
	fmt.Fprintf(out, "  Elongation:   %.1f°\n", phase.Elongation)
	fmt.Fprintf(out, "  Lit:          %.0f%% from the %s\n", phase.LitFraction()*100, phase.LitFrom())
	if phase.Waxing {
		fmt.Fprintf(out, "  Direction:    Waxing\n")
	} else {
		fmt.Fprintf(out, "  Direction:    Waning\n")
	}
	return nil
}
