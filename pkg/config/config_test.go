package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "moonify.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestYAMLProviderMissingFileUsesDefaults(t *testing.T) {
	p := NewYAMLProvider(filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := p.LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Sampling.StepMinutes != 5 {
		t.Errorf("StepMinutes = %d, expected 5", cfg.Sampling.StepMinutes)
	}
	if cfg.Timeline.JumpDuration != 180*time.Millisecond {
		t.Errorf("JumpDuration = %v, expected 180ms", cfg.Timeline.JumpDuration)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestYAMLProviderOverlaysFile(t *testing.T) {
	path := writeConfig(t, `
location:
  latitude: 47.6
  longitude: -122.3
  timezone: America/Los_Angeles
sampling:
  step-minutes: 10
  use-direct-rise-set: false
timeline:
  jump-duration: 250ms
appearance:
  clip-tolerance-deg: 0
  palette:
    high: "#FFFFFF"
logging:
  file: /tmp/moonify.log
`)

	cfg, err := NewYAMLProvider(path).LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Location.Latitude != 47.6 || cfg.Location.Longitude != -122.3 {
		t.Errorf("Location = %+v", cfg.Location)
	}
	if cfg.Sampling.StepMinutes != 10 {
		t.Errorf("StepMinutes = %d, expected 10", cfg.Sampling.StepMinutes)
	}
	if cfg.Sampling.UseDirectRiseSet {
		t.Error("UseDirectRiseSet should be false")
	}
	if cfg.Sampling.CacheSize != 16 {
		t.Errorf("CacheSize = %d, expected default 16", cfg.Sampling.CacheSize)
	}
	if cfg.Timeline.JumpDuration != 250*time.Millisecond {
		t.Errorf("JumpDuration = %v, expected 250ms", cfg.Timeline.JumpDuration)
	}
	if cfg.Appearance.ClipToleranceDeg != 0 {
		t.Errorf("ClipToleranceDeg = %v, expected explicit 0", cfg.Appearance.ClipToleranceDeg)
	}
	if cfg.Appearance.Palette.High != "#FFFFFF" || cfg.Appearance.Palette.Low != "#F6D365" {
		t.Errorf("Palette = %+v", cfg.Appearance.Palette)
	}
	if cfg.Logging.File != "/tmp/moonify.log" {
		t.Errorf("Logging.File = %q", cfg.Logging.File)
	}
}

func TestYAMLProviderBadDuration(t *testing.T) {
	path := writeConfig(t, "timeline:\n  frame-interval: soon\n")
	if _, err := NewYAMLProvider(path).LoadConfig(); err == nil {
		t.Fatal("expected an error for an unparsable duration")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigData)
	}{
		{"latitude", func(c *ConfigData) { c.Location.Latitude = 91 }},
		{"longitude", func(c *ConfigData) { c.Location.Longitude = -200 }},
		{"timezone", func(c *ConfigData) { c.Location.Timezone = "Mars/Olympus_Mons" }},
		{"step", func(c *ConfigData) { c.Sampling.StepMinutes = 0 }},
		{"frame interval", func(c *ConfigData) { c.Timeline.FrameInterval = 0 }},
		{"fraction", func(c *ConfigData) { c.Appearance.ShrinkFraction = 1.5 }},
		{"span", func(c *ConfigData) { c.Appearance.DefaultSpanDeg = 0 }},
		{"palette", func(c *ConfigData) { c.Appearance.Palette.Mid = "ivory" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestValidateReportsFirstBadFraction(t *testing.T) {
	cfg := Defaults()
	cfg.Appearance.HorizonInsetFraction = 2
	cfg.Appearance.ShrinkFraction = -1
	cfg.Appearance.BaseDiameterFraction = 3

	for i := 0; i < 20; i++ {
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), "base_diameter_fraction") {
			t.Fatalf("run %d: Validate() = %v, expected base_diameter_fraction", i, err)
		}
	}
}

func TestLoadAppliesOverrides(t *testing.T) {
	path := writeConfig(t, "location:\n  latitude: 10\n  longitude: 20\n")

	v := viper.New()
	v.Set(KeyLatitude, 51.5)
	v.Set(KeyTimezone, "UTC")

	cfg, err := Load(NewYAMLProvider(path), v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Location.Latitude != 51.5 {
		t.Errorf("Latitude = %v, expected override 51.5", cfg.Location.Latitude)
	}
	if cfg.Location.Longitude != 20 {
		t.Errorf("Longitude = %v, expected file value 20", cfg.Location.Longitude)
	}

	loc, err := cfg.TimeLocation()
	if err != nil || loc != time.UTC {
		t.Errorf("TimeLocation() = %v, %v; expected UTC", loc, err)
	}
}
