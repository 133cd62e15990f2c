// Package appearance derives the body's colour, size and horizon clipping
// from its altitude, and the sky gradient behind it.
package appearance

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/chrissnell/moonify/pkg/config"
)

// Palette holds the anchor colours for low, mid and high altitude.
type Palette struct {
	Low  colorful.Color
	Mid  colorful.Color
	High colorful.Color
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func DefaultPalette() Palette {
	return Palette{
		Low:  mustHex("#F6D365"),
		Mid:  mustHex("#FFFDF3"),
		High: mustHex("#FFFAFA"),
	}
}

// ParsePalette reads hex anchors from configuration.
func ParsePalette(p config.PaletteData) (Palette, error) {
	var out Palette
	for _, f := range []struct {
		hex string
		dst *colorful.Color
	}{
		{p.Low, &out.Low},
		{p.Mid, &out.Mid},
		{p.High, &out.High},
	} {
		c, err := colorful.Hex(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("parse palette colour %q: %w", f.hex, err)
		}
		*f.dst = c
	}
	return out, nil
}

// ColorFor interpolates in HSL between Low and Mid over [0, 0.5] and Mid and
// High over [0.5, 1]. Fractions outside [0, 1] are clamped, and the anchors
// come back unchanged at 0, 0.5 and 1.
func (p Palette) ColorFor(fraction float64) colorful.Color {
	f := clamp01(fraction)
	if f <= 0.5 {
		return lerpHsl(p.Low, p.Mid, f*2)
	}
	return lerpHsl(p.Mid, p.High, (f-0.5)*2)
}

func lerpHsl(a, b colorful.Color, t float64) colorful.Color {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}

	h1, s1, l1 := a.Hsl()
	h2, s2, l2 := b.Hsl()

	// shortest way round the hue circle
	dh := h2 - h1
	if dh > 180 {
		dh -= 360
	} else if dh < -180 {
		dh += 360
	}
	h := math.Mod(h1+t*dh+360, 360)

	return colorful.Hsl(h, s1+t*(s2-s1), l1+t*(l2-l1)).Clamped()
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
