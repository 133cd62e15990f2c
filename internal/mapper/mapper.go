// Package mapper converts minutes and altitudes into pixel geometry for the
// timeline strip and the "now" panel.
package mapper

import (
	"math"

	"github.com/chrissnell/moonify/pkg/config"
)

const minutesPerDay = 1440.0

// Viewport is the measured size of a rendering surface. Before layout both
// fields are zero; the mapper then returns collapsed geometry.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Empty reports whether nothing can be drawn into v.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

func (v Viewport) clamped() Viewport {
	return Viewport{Width: math.Max(0, v.Width), Height: math.Max(0, v.Height)}
}

// Config holds the body geometry fractions.
type Config struct {
	// BaseFraction of the smaller viewport side is the diameter at the horizon.
	BaseFraction float64
	// MinFraction of the smaller side is the floor for the diameter.
	MinFraction float64
	// ShrinkFraction is how much of the base diameter is lost at maximum altitude.
	ShrinkFraction float64
	// HorizonInset is the share of the height kept below the horizon line.
	HorizonInset float64
}

// DefaultConfig matches config.Defaults.
func DefaultConfig() Config {
	return Config{BaseFraction: 0.33, MinFraction: 0.08, ShrinkFraction: 0.25, HorizonInset: 0.1}
}

// ConfigFrom reads the geometry fractions out of the appearance section.
func ConfigFrom(a config.AppearanceData) Config {
	return Config{
		BaseFraction:   a.BaseDiameterFraction,
		MinFraction:    a.MinDiameterFraction,
		ShrinkFraction: a.ShrinkFraction,
		HorizonInset:   a.HorizonInsetFraction,
	}
}

// Mapper is immutable; use WithViewport after a resize.
type Mapper struct {
	cfg Config
	vp  Viewport
}

// New returns a Mapper for vp. Negative dimensions are treated as zero.
func New(cfg Config, vp Viewport) *Mapper {
	return &Mapper{cfg: cfg, vp: vp.clamped()}
}

// WithViewport returns a copy bound to a new viewport.
func (m *Mapper) WithViewport(vp Viewport) *Mapper {
	return New(m.cfg, vp)
}

func (m *Mapper) Viewport() Viewport { return m.vp }

func (m *Mapper) Config() Config { return m.cfg }

// Reduce folds any minute value, including unbounded pan offsets, into
// [0, 1440).
func Reduce(minute float64) float64 {
	r := math.Mod(minute, minutesPerDay)
	if r < 0 {
		r += minutesPerDay
	}
	// -tiny + 1440 rounds to 1440 in float64.
	if r >= minutesPerDay {
		r = 0
	}
	return r
}

// Wraps reports whether the offset rotates the scale away from midnight, in
// which case periodic elements need a second copy.
func Wraps(offset float64) bool {
	return Reduce(offset) != 0
}

// MinuteToX places minute on the timeline strip after applying the pan
// offset. The result is in [0, width).
func (m *Mapper) MinuteToX(minute, offset float64) float64 {
	return Reduce(minute+offset) * m.vp.Width / minutesPerDay
}

// XToMinute is the inverse of MinuteToX.
func (m *Mapper) XToMinute(x, offset float64) float64 {
	if m.vp.Width <= 0 {
		return Reduce(-offset)
	}
	return Reduce(x*minutesPerDay/m.vp.Width - offset)
}

// SpanWidth is the pixel width of a span of minutes.
func (m *Mapper) SpanWidth(minutes float64) float64 {
	return minutes * m.vp.Width / minutesPerDay
}

// Copies returns the x positions an element at x must be drawn at. With a
// wrapped offset there are two, exactly one width apart, so content leaving
// the right edge re-enters on the left.
func (m *Mapper) Copies(x, offset float64) []float64 {
	if !Wraps(offset) {
		return []float64{x}
	}
	return []float64{x, x - m.vp.Width}
}

// HorizonY is the y of the horizon line on the now panel.
func (m *Mapper) HorizonY() float64 {
	return m.vp.Height * (1 - m.cfg.HorizonInset)
}

// AltitudeToY maps 0° to the horizon and maxAltitude to the top of the panel
// less half the body's diameter there. Negative altitudes fall below the
// horizon.
func (m *Mapper) AltitudeToY(altitude, maxAltitude float64) float64 {
	if m.vp.Empty() {
		return 0
	}
	horizon := m.HorizonY()
	if maxAltitude <= 0 {
		return horizon
	}
	top := m.AltitudeToDiameter(maxAltitude, maxAltitude) / 2
	return horizon - altitude/maxAltitude*(horizon-top)
}

// AltitudeToDiameter shrinks the body linearly by ShrinkFraction as altitude
// approaches maxAltitude, never below MinFraction of the smaller side.
func (m *Mapper) AltitudeToDiameter(altitude, maxAltitude float64) float64 {
	side := math.Min(m.vp.Width, m.vp.Height)
	if side <= 0 {
		return 0
	}

	frac := 0.0
	if maxAltitude > 0 {
		frac = math.Max(0, math.Min(1, altitude/maxAltitude))
	}
	d := m.cfg.BaseFraction * side * (1 - m.cfg.ShrinkFraction*frac)
	return math.Max(d, m.cfg.MinFraction*side)
}

// MinDiameter is the diameter floor for the current viewport.
func (m *Mapper) MinDiameter() float64 {
	return m.cfg.MinFraction * math.Min(m.vp.Width, m.vp.Height)
}
