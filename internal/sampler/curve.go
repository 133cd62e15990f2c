package sampler

import (
	"errors"

	"gonum.org/v1/gonum/interp"
)

// Curve is a continuous altitude trajectory through a day's samples.
type Curve struct {
	pl interp.PiecewiseLinear
}

// NewCurve fits a piecewise linear curve through samples, which must hold at
// least two entries in minute order.
func NewCurve(samples []Sample) (*Curve, error) {
	if len(samples) < 2 {
		return nil, errors.New("curve needs at least two samples")
	}

	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = float64(s.MinuteOfDay)
		ys[i] = s.AltitudeDeg
	}

	c := &Curve{}
	if err := c.pl.Fit(xs, ys); err != nil {
		return nil, err
	}
	return c, nil
}

// AltitudeAt interpolates the altitude at a fractional minute of the day.
// Minutes past the last sample hold the last value.
func (c *Curve) AltitudeAt(minute float64) float64 {
	return c.pl.Predict(minute)
}
