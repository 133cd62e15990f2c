package ephemeris

import (
	"time"

	"github.com/chrissnell/moonify/pkg/lunar"
)

// Lunar is the Moon as a Source, backed by pkg/lunar.
type Lunar struct{}

// PositionAt implements Source.
func (Lunar) PositionAt(t time.Time, lat, lon float64) (Position, error) {
	p, err := lunar.PositionAt(t, lat, lon)
	if err != nil {
		return Position{}, err
	}
	return Position{
		AltitudeRad:  p.Altitude,
		AzimuthRad:   p.Azimuth,
		Illumination: lunar.PhaseAt(t).Illumination,
	}, nil
}

// RiseSetTimes implements RiseSetter.
func (Lunar) RiseSetTimes(day time.Time, lat, lon float64) (RiseSet, error) {
	rs, err := lunar.RiseSetForDate(day, lat, lon)
	if err != nil {
		return RiseSet{}, err
	}

	var out RiseSet
	if rs.OKRise {
		rise := rs.Rise
		out.Rise = &rise
	}
	if rs.OKSet {
		set := rs.Set
		out.Set = &set
	}
	return out, nil
}
