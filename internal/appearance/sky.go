package appearance

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/chrissnell/moonify/internal/sampler"
	"github.com/chrissnell/moonify/pkg/solar"
)

// Sky colours, top to bottom per period.
var (
	navy00        = mustHex("#04050f")
	navy10        = mustHex("#0B1020")
	dawnLavender  = mustHex("#b8a1ff")
	dawnRose      = mustHex("#ffc0cb")
	noonBlue      = mustHex("#7ec8e3")
	sunsetCrimson = mustHex("#e63946")
	sunsetOrange  = mustHex("#ff8c42")
)

// Gradient is a two-stop vertical sky gradient.
type Gradient struct {
	Period string         `json:"period"`
	Top    colorful.Color `json:"-"`
	Bottom colorful.Color `json:"-"`
}

func (g Gradient) TopHex() string { return g.Top.Hex() }
func (g Gradient) BottomHex() string { return g.Bottom.Hex() }

// At blends top to bottom; t=0 is the top of the sky.
func (g Gradient) At(t float64) colorful.Color {
	return g.Top.BlendRgb(g.Bottom, clamp01(t)).Clamped()
}

// SkyGradient picks the backdrop for a minute of the day. With sun times the
// periods are pre-dawn, morning, afternoon and evening around the real
// sunrise, solar noon and sunset; without them (polar day or night) the day
// is cut into quarters.
func SkyGradient(minute int, sun solar.Times) Gradient {
	rise, set := 360, 1080
	if sun.OK {
		rise, set = sun.Sunrise, sun.Sunset
	}

	m := sampler.MinuteOfDay(minute)
	dayLen := sampler.MinuteOfDay(set - rise)
	sinceRise := sampler.MinuteOfDay(m - rise)
	sinceSet := sampler.MinuteOfDay(m - set)

	switch {
	case sinceRise < dayLen/2:
		return Gradient{Period: "morning", Top: dawnRose, Bottom: noonBlue}
	case sinceRise < dayLen:
		return Gradient{Period: "afternoon", Top: sunsetCrimson, Bottom: sunsetOrange}
	case sinceSet < (sampler.MinutesPerDay-dayLen)/2:
		return Gradient{Period: "evening", Top: navy10, Bottom: navy00}
	default:
		return Gradient{Period: "pre-dawn", Top: navy00, Bottom: dawnLavender}
	}
}
