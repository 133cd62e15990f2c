package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get specific configuration sections
	GetLocation() (*LocationData, error)

	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Location   LocationData   `json:"location"`
	Sampling   SamplingData   `json:"sampling"`
	Timeline   TimelineData   `json:"timeline"`
	Appearance AppearanceData `json:"appearance"`
	Logging    LoggingData    `json:"logging"`
}

// LocationData is the observer. Longitude is east positive.
type LocationData struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone,omitempty"`
}

// SamplingData configures the day-wide altitude sampler.
type SamplingData struct {
	StepMinutes      int  `json:"step_minutes"`
	CacheSize        int  `json:"cache_size"`
	UseDirectRiseSet bool `json:"use_direct_rise_set"`
}

// TimelineData configures the timeline window controls.
type TimelineData struct {
	StepMinutes      int           `json:"step_minutes"`
	ShiftStepMinutes int           `json:"shift_step_minutes"`
	JumpMinutes      int           `json:"jump_minutes"`
	JumpDuration     time.Duration `json:"jump_duration"`
	FrameInterval    time.Duration `json:"frame_interval"`
}

// AppearanceData configures body geometry and colour.
type AppearanceData struct {
	BaseDiameterFraction float64     `json:"base_diameter_fraction"`
	MinDiameterFraction  float64     `json:"min_diameter_fraction"`
	ShrinkFraction       float64     `json:"shrink_fraction"`
	HorizonInsetFraction float64     `json:"horizon_inset_fraction"`
	ClipToleranceDeg     float64     `json:"clip_tolerance_deg"`
	DefaultSpanDeg       float64     `json:"default_span_deg"`
	Palette              PaletteData `json:"palette"`
}

// PaletteData holds the low/mid/high altitude anchor colours as hex strings.
type PaletteData struct {
	Low  string `json:"low"`
	Mid  string `json:"mid"`
	High string `json:"high"`
}

// LoggingData configures internal/log.
type LoggingData struct {
	Debug bool   `json:"debug"`
	File  string `json:"file,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() *ConfigData {
	return &ConfigData{
		Location: LocationData{Timezone: "Local"},
		Sampling: SamplingData{
			StepMinutes:      5,
			CacheSize:        16,
			UseDirectRiseSet: true,
		},
		Timeline: TimelineData{
			StepMinutes:      5,
			ShiftStepMinutes: 30,
			JumpMinutes:      180,
			JumpDuration:     180 * time.Millisecond,
			FrameInterval:    16 * time.Millisecond,
		},
		Appearance: AppearanceData{
			BaseDiameterFraction: 0.33,
			MinDiameterFraction:  0.08,
			ShrinkFraction:       0.25,
			HorizonInsetFraction: 0.1,
			ClipToleranceDeg:     2,
			DefaultSpanDeg:       60,
			Palette: PaletteData{
				Low:  "#F6D365",
				Mid:  "#FFFDF3",
				High: "#FFFAFA",
			},
		},
	}
}

// TimeLocation resolves the configured timezone. Empty and "Local" mean the
// host's local zone.
func (c *ConfigData) TimeLocation() (*time.Location, error) {
	switch c.Location.Timezone {
	case "", "Local":
		return time.Local, nil
	default:
		return time.LoadLocation(c.Location.Timezone)
	}
}

// Validate checks ranges and parses the palette.
func (c *ConfigData) Validate() error {
	lat, lon := c.Location.Latitude, c.Location.Longitude
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %v outside [-90, 90]", ErrInvalid, lat)
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return fmt.Errorf("%w: longitude %v outside [-180, 180]", ErrInvalid, lon)
	}
	if _, err := c.TimeLocation(); err != nil {
		return fmt.Errorf("%w: timezone %q: %v", ErrInvalid, c.Location.Timezone, err)
	}

	if c.Sampling.StepMinutes <= 0 || c.Sampling.StepMinutes > 1440 {
		return fmt.Errorf("%w: sampling step %d minutes", ErrInvalid, c.Sampling.StepMinutes)
	}
	if c.Timeline.StepMinutes <= 0 || c.Timeline.ShiftStepMinutes <= 0 || c.Timeline.JumpMinutes <= 0 {
		return fmt.Errorf("%w: timeline steps must be positive", ErrInvalid)
	}
	if c.Timeline.JumpDuration <= 0 || c.Timeline.FrameInterval <= 0 {
		return fmt.Errorf("%w: jump duration and frame interval must be positive", ErrInvalid)
	}

	a := c.Appearance
	fractions := []struct {
		name string
		v    float64
	}{
		{"base_diameter_fraction", a.BaseDiameterFraction},
		{"min_diameter_fraction", a.MinDiameterFraction},
		{"shrink_fraction", a.ShrinkFraction},
		{"horizon_inset_fraction", a.HorizonInsetFraction},
	}
	for _, f := range fractions {
		if f.v < 0 || f.v > 1 {
			return fmt.Errorf("%w: %s %v outside [0, 1]", ErrInvalid, f.name, f.v)
		}
	}
	if a.ClipToleranceDeg < 0 {
		return fmt.Errorf("%w: clip tolerance %v is negative", ErrInvalid, a.ClipToleranceDeg)
	}
	if a.DefaultSpanDeg <= 0 || a.DefaultSpanDeg > 90 {
		return fmt.Errorf("%w: default span %v outside (0, 90]", ErrInvalid, a.DefaultSpanDeg)
	}

	for _, hex := range []string{a.Palette.Low, a.Palette.Mid, a.Palette.High} {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("%w: palette colour %q: %v", ErrInvalid, hex, err)
		}
	}

	return nil
}
