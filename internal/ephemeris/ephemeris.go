// Package ephemeris is the boundary between a celestial position source and
// the timeline engine. Sources speak radians; everything past Observe speaks
// degrees.
package ephemeris

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrUnsupported is returned by sources that cannot answer a direct
	// rise/set query.
	ErrUnsupported = errors.New("operation not supported by position source")
)

// Position is what a Source reports for one instant. Angles are radians,
// azimuth measured from North through East.
type Position struct {
	AltitudeRad  float64
	AzimuthRad   float64
	Illumination float64
}

// RiseSet holds the times a Source reports for a calendar day. Nil means the
// event does not happen that day.
type RiseSet struct {
	Rise *time.Time
	Set  *time.Time
}

// Source computes the body's position for an observer (degrees, east
// positive). Implementations must be side-effect free.
type Source interface {
	PositionAt(t time.Time, lat, lon float64) (Position, error)
}

// RiseSetter is implemented by sources that can answer rise/set directly.
// day is any instant on the wanted calendar day; its location defines the day.
type RiseSetter interface {
	RiseSetTimes(day time.Time, lat, lon float64) (RiseSet, error)
}

// SourceError is the typed failure for any Source call. Callers use
// errors.As to decide to skip drawing the body for a frame.
type SourceError struct {
	Op   string
	Time time.Time
	Lat  float64
	Lon  float64
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s at %s (%.4f, %.4f): %v", e.Op, e.Time.Format(time.RFC3339), e.Lat, e.Lon, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// Observation is a Position converted to degrees.
type Observation struct {
	Time         time.Time
	AltitudeDeg  float64
	AzimuthDeg   float64 // [0, 360)
	Illumination float64
}

// Observe queries src and converts the result to degrees. It is the only
// place radians are turned into degrees.
func Observe(src Source, t time.Time, lat, lon float64) (Observation, error) {
	p, err := src.PositionAt(t, lat, lon)
	if err != nil {
		return Observation{}, &SourceError{Op: "position", Time: t, Lat: lat, Lon: lon, Err: err}
	}

	return Observation{
		Time:         t,
		AltitudeDeg:  Degrees(p.AltitudeRad),
		AzimuthDeg:   normalize360(Degrees(p.AzimuthRad)),
		Illumination: p.Illumination,
	}, nil
}

// DirectRiseSet asks src for rise/set when it implements RiseSetter.
// Sources that do not report ErrUnsupported.
func DirectRiseSet(src Source, day time.Time, lat, lon float64) (RiseSet, error) {
	rs, ok := src.(RiseSetter)
	if !ok {
		return RiseSet{}, ErrUnsupported
	}
	out, err := rs.RiseSetTimes(day, lat, lon)
	if err != nil {
		if errors.Is(err, ErrUnsupported) {
			return RiseSet{}, err
		}
		return RiseSet{}, &SourceError{Op: "rise/set", Time: day, Lat: lat, Lon: lon, Err: err}
	}
	return out, nil
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func normalize360(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	return d
}
