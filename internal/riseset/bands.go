package riseset

import (
	"math"

	"github.com/chrissnell/moonify/internal/sampler"
)

// Range is the half-open minute interval [Start, End) on the 24h scale.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Minutes is the length of the range.
func (r Range) Minutes() int { return r.End - r.Start }

// Bands returns the portions of the day the body is above the horizon. A
// set before the rise splits the band at midnight. A missing rise or set
// leaves that side open to the edge of the day.
func Bands(r Result) []Range {
	switch {
	case r.Rise != nil && r.Set != nil:
		rise, set := r.Rise.MinuteOfDay, r.Set.MinuteOfDay
		if rise < set {
			return []Range{{Start: rise, End: set}}
		}
		var out []Range
		if rise < sampler.MinutesPerDay {
			out = append(out, Range{Start: rise, End: sampler.MinutesPerDay})
		}
		if set > 0 {
			out = append(out, Range{Start: 0, End: set})
		}
		return out
	case r.Rise != nil:
		return []Range{{Start: r.Rise.MinuteOfDay, End: sampler.MinutesPerDay}}
	case r.Set != nil:
		return []Range{{Start: 0, End: r.Set.MinuteOfDay}}
	case r.AlwaysUp:
		return []Range{{Start: 0, End: sampler.MinutesPerDay}}
	default:
		return nil
	}
}

var compassPoints = [...]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// Compass names an azimuth on the 16-point rose.
func Compass(azimuthDeg float64) string {
	az := math.Mod(azimuthDeg, 360)
	if az < 0 {
		az += 360
	}
	return compassPoints[int(math.Round(az/22.5))%16]
}
