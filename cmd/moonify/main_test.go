package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/chrissnell/moonify/pkg/config"
)

func TestPhaseCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"phase", "--at", "2023-01-21T20:53:00Z"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("phase: %v", err)
	}
	got := out.String()
	for _, want := range []string{"Moon Phase for 2023-01-21T20:53:00Z", "Phase Name:   New Moon", "Direction:"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestPhaseCommandBadTime(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"phase", "--at", "yesterday"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected parse error")
	}
}

func startCmd(date, tod string) *cobra.Command {
	c := &cobra.Command{}
	c.Flags().String("date", date, "")
	c.Flags().String("time", tod, "")
	return c
}

func TestStart(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	a := &app{cfg: config.Defaults(), loc: ny}

	got, err := a.start(startCmd("2024-03-05", "21:30"))
	if err != nil {
		t.Fatal(err)
	}
	if got.Day().String() != "2024-03-05" || got.MinuteOfDay() != 21*60+30 || got.Second() != 0 {
		t.Errorf("start = %s", got)
	}
	if got.Time().Location() != ny {
		t.Errorf("location = %v, want %v", got.Time().Location(), ny)
	}

	if _, err := a.start(startCmd("03/05/2024", "")); err == nil {
		t.Error("expected --date parse error")
	}
	if _, err := a.start(startCmd("", "9pm")); err == nil {
		t.Error("expected --time parse error")
	}
}
