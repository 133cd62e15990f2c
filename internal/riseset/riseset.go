// Package riseset finds horizon crossings and the altitude extremum in a
// day's samples, and turns them into highlight bands on the 24h timeline.
package riseset

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/chrissnell/moonify/internal/ephemeris"
	"github.com/chrissnell/moonify/internal/sampler"
)

// Kind tells rises from sets.
type Kind int

const (
	Rise Kind = iota
	Set
)

func (k Kind) String() string {
	if k == Rise {
		return "rise"
	}
	return "set"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Crossing is a horizon crossing at a minute of the day.
type Crossing struct {
	MinuteOfDay int     `json:"minute"`
	AzimuthDeg  float64 `json:"azimuth"`
	Kind        Kind    `json:"kind"`
}

// Extremum is the highest sample of the day.
type Extremum struct {
	MinuteOfDay int     `json:"minute"`
	AltitudeDeg float64 `json:"altitude"`
}

// Result is the outcome of Resolve. Rise and Set are nil when the body does
// not rise or set that day.
type Result struct {
	Rise      *Crossing
	Set       *Crossing
	Extremum  Extremum
	AlwaysUp  bool
	Crossings []Crossing
}

// ScaleMaxDeg is the altitude that maps to the top of the vertical layout:
// the day's maximum, or defaultSpan when the body never clears the horizon.
func (r Result) ScaleMaxDeg(defaultSpan float64) float64 {
	if r.Extremum.AltitudeDeg > 0 {
		return r.Extremum.AltitudeDeg
	}
	return defaultSpan
}

// Resolve walks samples once. Altitude exactly 0 counts as up.
//
// Rise is the first negative→non-negative transition. Set is the first
// non-negative→negative transition after the rise; when there is none (the
// body set early in the day and rose late) it is the first set of the day.
// Crossing minutes are interpolated linearly between the bracketing samples
// and rounded.
func Resolve(samples []sampler.Sample) Result {
	var res Result
	if len(samples) == 0 {
		return res
	}

	var firstSet *Crossing
	for i := 1; i < len(samples); i++ {
		prev, cur := samples[i-1], samples[i]

		switch {
		case prev.AltitudeDeg < 0 && cur.AltitudeDeg >= 0:
			c := crossingBetween(prev, cur, Rise)
			res.Crossings = append(res.Crossings, c)
			if res.Rise == nil {
				res.Rise = &c
			}
		case prev.AltitudeDeg >= 0 && cur.AltitudeDeg < 0:
			c := crossingBetween(prev, cur, Set)
			res.Crossings = append(res.Crossings, c)
			if firstSet == nil {
				firstSet = &c
			}
			if res.Rise != nil && res.Set == nil {
				res.Set = &c
			}
		}
	}
	if res.Set == nil {
		res.Set = firstSet
	}

	alts := make([]float64, len(samples))
	for i, s := range samples {
		alts[i] = s.AltitudeDeg
	}
	top := floats.MaxIdx(alts)
	res.Extremum = Extremum{MinuteOfDay: samples[top].MinuteOfDay, AltitudeDeg: alts[top]}

	res.AlwaysUp = len(res.Crossings) == 0 && samples[0].AltitudeDeg >= 0

	return res
}

func crossingBetween(a, b sampler.Sample, kind Kind) Crossing {
	frac := 0.0
	if d := a.AltitudeDeg - b.AltitudeDeg; d != 0 {
		frac = a.AltitudeDeg / d
	}
	frac = math.Max(0, math.Min(1, frac))

	span := float64(b.MinuteOfDay - a.MinuteOfDay)
	return Crossing{
		MinuteOfDay: a.MinuteOfDay + int(math.Round(frac*span)),
		AzimuthDeg:  lerpAzimuth(a.AzimuthDeg, b.AzimuthDeg, frac),
		Kind:        kind,
	}
}

// lerpAzimuth interpolates along the shorter arc.
func lerpAzimuth(a, b, t float64) float64 {
	delta := math.Mod(b-a+540, 360) - 180
	az := math.Mod(a+t*delta, 360)
	if az < 0 {
		az += 360
	}
	return az
}

// FromTimes builds a Result from rise/set times reported directly by a
// source. Times outside day are dropped. Azimuths and the extremum still come
// from samples.
func FromTimes(rs ephemeris.RiseSet, day sampler.Day, samples []sampler.Sample) Result {
	res := Resolve(samples)
	res.Rise = crossingAt(rs.Rise, day, samples, Rise)
	res.Set = crossingAt(rs.Set, day, samples, Set)

	if res.Rise != nil || res.Set != nil {
		res.AlwaysUp = false
	}
	return res
}

func crossingAt(t *time.Time, day sampler.Day, samples []sampler.Sample, kind Kind) *Crossing {
	if t == nil {
		return nil
	}
	local := t.In(day.Start().Location())
	if !sampler.DayOf(local).Equal(day) {
		return nil
	}

	minute := local.Hour()*60 + local.Minute()
	return &Crossing{
		MinuteOfDay: minute,
		AzimuthDeg:  azimuthAt(samples, minute),
		Kind:        kind,
	}
}

func azimuthAt(samples []sampler.Sample, minute int) float64 {
	if len(samples) == 0 {
		return 0
	}
	for i := 1; i < len(samples); i++ {
		a, b := samples[i-1], samples[i]
		if minute >= a.MinuteOfDay && minute <= b.MinuteOfDay {
			t := float64(minute-a.MinuteOfDay) / float64(b.MinuteOfDay-a.MinuteOfDay)
			return lerpAzimuth(a.AzimuthDeg, b.AzimuthDeg, t)
		}
	}
	return samples[len(samples)-1].AzimuthDeg
}
