package appearance

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/chrissnell/moonify/internal/mapper"
	"github.com/chrissnell/moonify/pkg/config"
)

// Visibility is the tri-state rendering decision near the horizon.
type Visibility int

const (
	Hidden Visibility = iota
	Clipped
	Visible
)

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Clipped:
		return "clipped"
	default:
		return "hidden"
	}
}

func (v Visibility) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Config is the colour and clipping part of the appearance section.
type Config struct {
	Palette          Palette
	ClipToleranceDeg float64
	DefaultSpanDeg   float64
}

func DefaultConfig() Config {
	return Config{Palette: DefaultPalette(), ClipToleranceDeg: 2, DefaultSpanDeg: 60}
}

func ConfigFrom(a config.AppearanceData) (Config, error) {
	p, err := ParsePalette(a.Palette)
	if err != nil {
		return Config{}, err
	}
	return Config{Palette: p, ClipToleranceDeg: a.ClipToleranceDeg, DefaultSpanDeg: a.DefaultSpanDeg}, nil
}

// State is the body's appearance for one frame on the now panel.
type State struct {
	Visibility  Visibility     `json:"visibility"`
	AltitudeDeg float64        `json:"altitude"`
	Fraction    float64        `json:"fraction"`
	Color       colorful.Color `json:"-"`
	X           float64        `json:"x"`
	Y           float64        `json:"y"`
	Diameter    float64        `json:"diameter"`
	HorizonY    float64        `json:"horizonY"`

	// ClipFraction is the share of the disc hidden below the horizon line.
	// Set only while Clipped.
	ClipFraction *float64 `json:"clipFraction,omitempty"`
}

// Hex is the body colour as #rrggbb.
func (s State) Hex() string { return s.Color.Hex() }

// Evaluate places and colours the body at altitude on m's panel. The body is
// Visible at or above the horizon, Clipped down to ClipToleranceDeg below it,
// and Hidden beyond that.
func Evaluate(altitude, maxAltitude float64, m *mapper.Mapper, cfg Config) State {
	if maxAltitude <= 0 {
		maxAltitude = cfg.DefaultSpanDeg
	}

	frac := 0.0
	if maxAltitude > 0 {
		frac = clamp01(altitude / maxAltitude)
	}

	st := State{
		AltitudeDeg: altitude,
		Fraction:    frac,
		Color:       cfg.Palette.ColorFor(frac),
		X:           m.Viewport().Width / 2,
		Y:           m.AltitudeToY(altitude, maxAltitude),
		Diameter:    m.AltitudeToDiameter(altitude, maxAltitude),
		HorizonY:    m.HorizonY(),
	}

	switch {
	case altitude >= 0:
		st.Visibility = Visible
	case altitude >= -cfg.ClipToleranceDeg:
		st.Visibility = Clipped
		clip := clipFraction(st.Y, st.Diameter, st.HorizonY)
		st.ClipFraction = &clip
	default:
		st.Visibility = Hidden
	}
	return st
}

// clipFraction is how much of a disc centred at y lies below horizonY.
func clipFraction(y, diameter, horizonY float64) float64 {
	if diameter <= 0 {
		return 0
	}
	return clamp01((y + diameter/2 - horizonY) / diameter)
}
