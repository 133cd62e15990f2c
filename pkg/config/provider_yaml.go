package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the configuration from the YAML file on top of Defaults.
// A missing file yields the defaults.
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	config := Defaults()

	cfgFile, err := os.ReadFile(y.filename)
	if errors.Is(err, fs.ErrNotExist) {
		y.config = config
		return config, nil
	}
	if err != nil {
		return nil, err
	}

	var yamlConfig ConfigYAML
	if err := yaml.Unmarshal(cfgFile, &yamlConfig); err != nil {
		return nil, err
	}

	if err := yamlConfig.apply(config); err != nil {
		return nil, err
	}

	y.config = config
	return config, nil
}

// GetLocation returns the observer location
func (y *YAMLProvider) GetLocation() (*LocationData, error) {
	if y.config == nil {
		if _, err := y.LoadConfig(); err != nil {
			return nil, err
		}
	}
	return &y.config.Location, nil
}

// IsReadOnly returns true since YAML files are read-only through this interface
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML provider
func (y *YAMLProvider) Close() error {
	return nil
}

// YAML-specific structs. Pointers distinguish "absent" from zero so that
// absent keys keep their defaults.
type ConfigYAML struct {
	Location   *LocationYAML   `yaml:"location,omitempty"`
	Sampling   *SamplingYAML   `yaml:"sampling,omitempty"`
	Timeline   *TimelineYAML   `yaml:"timeline,omitempty"`
	Appearance *AppearanceYAML `yaml:"appearance,omitempty"`
	Logging    *LoggingYAML    `yaml:"logging,omitempty"`
}

type LocationYAML struct {
	Latitude  *float64 `yaml:"latitude,omitempty"`
	Longitude *float64 `yaml:"longitude,omitempty"`
	Timezone  string   `yaml:"timezone,omitempty"`
}

type SamplingYAML struct {
	StepMinutes      int   `yaml:"step-minutes,omitempty"`
	CacheSize        int   `yaml:"cache-size,omitempty"`
	UseDirectRiseSet *bool `yaml:"use-direct-rise-set,omitempty"`
}

type TimelineYAML struct {
	StepMinutes      int    `yaml:"step-minutes,omitempty"`
	ShiftStepMinutes int    `yaml:"shift-step-minutes,omitempty"`
	JumpMinutes      int    `yaml:"jump-minutes,omitempty"`
	JumpDuration     string `yaml:"jump-duration,omitempty"`
	FrameInterval    string `yaml:"frame-interval,omitempty"`
}

type AppearanceYAML struct {
	BaseDiameterFraction *float64    `yaml:"base-diameter-fraction,omitempty"`
	MinDiameterFraction  *float64    `yaml:"min-diameter-fraction,omitempty"`
	ShrinkFraction       *float64    `yaml:"shrink-fraction,omitempty"`
	HorizonInsetFraction *float64    `yaml:"horizon-inset-fraction,omitempty"`
	ClipToleranceDeg     *float64    `yaml:"clip-tolerance-deg,omitempty"`
	DefaultSpanDeg       *float64    `yaml:"default-span-deg,omitempty"`
	Palette              PaletteData `yaml:"palette,omitempty"`
}

type LoggingYAML struct {
	Debug bool   `yaml:"debug,omitempty"`
	File  string `yaml:"file,omitempty"`
}

func (c ConfigYAML) apply(config *ConfigData) error {
	if l := c.Location; l != nil {
		setFloat(&config.Location.Latitude, l.Latitude)
		setFloat(&config.Location.Longitude, l.Longitude)
		if l.Timezone != "" {
			config.Location.Timezone = l.Timezone
		}
	}

	if s := c.Sampling; s != nil {
		setInt(&config.Sampling.StepMinutes, s.StepMinutes)
		setInt(&config.Sampling.CacheSize, s.CacheSize)
		if s.UseDirectRiseSet != nil {
			config.Sampling.UseDirectRiseSet = *s.UseDirectRiseSet
		}
	}

	if t := c.Timeline; t != nil {
		setInt(&config.Timeline.StepMinutes, t.StepMinutes)
		setInt(&config.Timeline.ShiftStepMinutes, t.ShiftStepMinutes)
		setInt(&config.Timeline.JumpMinutes, t.JumpMinutes)
		if err := setDuration(&config.Timeline.JumpDuration, t.JumpDuration); err != nil {
			return fmt.Errorf("timeline.jump-duration: %w", err)
		}
		if err := setDuration(&config.Timeline.FrameInterval, t.FrameInterval); err != nil {
			return fmt.Errorf("timeline.frame-interval: %w", err)
		}
	}

	if a := c.Appearance; a != nil {
		setFloat(&config.Appearance.BaseDiameterFraction, a.BaseDiameterFraction)
		setFloat(&config.Appearance.MinDiameterFraction, a.MinDiameterFraction)
		setFloat(&config.Appearance.ShrinkFraction, a.ShrinkFraction)
		setFloat(&config.Appearance.HorizonInsetFraction, a.HorizonInsetFraction)
		setFloat(&config.Appearance.ClipToleranceDeg, a.ClipToleranceDeg)
		setFloat(&config.Appearance.DefaultSpanDeg, a.DefaultSpanDeg)
		if a.Palette.Low != "" {
			config.Appearance.Palette.Low = a.Palette.Low
		}
		if a.Palette.Mid != "" {
			config.Appearance.Palette.Mid = a.Palette.Mid
		}
		if a.Palette.High != "" {
			config.Appearance.Palette.High = a.Palette.High
		}
	}

	if l := c.Logging; l != nil {
		config.Logging.Debug = l.Debug
		config.Logging.File = l.File
	}

	return nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func setDuration(dst *time.Duration, s string) error {
	if s == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}
