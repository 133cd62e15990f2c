// Package sampler discretizes a calendar day into fixed-step altitude and
// azimuth samples of a position source.
package sampler

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/chrissnell/moonify/internal/ephemeris"
	"github.com/chrissnell/moonify/internal/log"
)

// DefaultStep is the sampling interval in minutes.
const DefaultStep = 5

// Sample is the body's position at one minute of a day, in degrees.
type Sample struct {
	MinuteOfDay int     `json:"minute"`
	AltitudeDeg float64 `json:"altitude"`
	AzimuthDeg  float64 `json:"azimuth"`
}

// Sampler evaluates a Source across [0, 1440) at a fixed step.
type Sampler struct {
	src    ephemeris.Source
	step   int
	logger *zap.SugaredLogger
}

// New creates a Sampler. A step outside (0, 1440] falls back to DefaultStep.
func New(src ephemeris.Source, step int, logger *zap.SugaredLogger) *Sampler {
	if step <= 0 || step > MinutesPerDay {
		step = DefaultStep
	}
	return &Sampler{src: src, step: step, logger: log.OrNop(logger)}
}

// Step is the sampling interval in minutes.
func (s *Sampler) Step() int { return s.step }

// Source is the underlying position source.
func (s *Sampler) Source() ephemeris.Source { return s.src }

// Sample returns samples at minutes 0, step, 2*step, ... below 1440, ordered
// by minute. The result depends only on the inputs and the source.
func (s *Sampler) Sample(day Day, lat, lon float64) ([]Sample, error) {
	samples := make([]Sample, 0, (MinutesPerDay+s.step-1)/s.step)

	for m := 0; m < MinutesPerDay; m += s.step {
		obs, err := ephemeris.Observe(s.src, day.At(m), lat, lon)
		if err != nil {
			return nil, fmt.Errorf("sampling %s minute %d: %w", day, m, err)
		}
		samples = append(samples, Sample{
			MinuteOfDay: m,
			AltitudeDeg: obs.AltitudeDeg,
			AzimuthDeg:  obs.AzimuthDeg,
		})
	}

	s.logger.Debugw("sampled day", "day", day.String(), "lat", lat, "lon", lon, "samples", len(samples))
	return samples, nil
}
