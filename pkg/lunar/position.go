package lunar

import (
	"errors"
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/coord"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/unit"
)

// earthRadiusKm is the equatorial radius used for the horizontal parallax.
const earthRadiusKm = 6378.14

var (
	// ErrInvalidLatitude is returned for latitudes outside [-90, 90] or NaN.
	ErrInvalidLatitude = errors.New("latitude must be within [-90, 90] degrees")

	// ErrInvalidLongitude is returned for longitudes outside [-180, 180] or NaN.
	ErrInvalidLongitude = errors.New("longitude must be within [-180, 180] degrees")
)

// Position is the Moon's topocentric horizontal position. Angles are radians;
// azimuth is measured from North through East in [0, 2π).
type Position struct {
	Altitude   float64
	Azimuth    float64
	DistanceKm float64
}

// ValidateObserver checks the observer coordinates (degrees, east positive).
func ValidateObserver(latDeg, lonDeg float64) error {
	if math.IsNaN(latDeg) || latDeg < -90 || latDeg > 90 {
		return ErrInvalidLatitude
	}
	if math.IsNaN(lonDeg) || lonDeg < -180 || lonDeg > 180 {
		return ErrInvalidLongitude
	}
	return nil
}

// PositionAt returns the Moon's position for an observer at latDeg/lonDeg
// (degrees, east positive) at t. The altitude is corrected for lunar
// parallax, which is close to a degree near the horizon.
func PositionAt(t time.Time, latDeg, lonDeg float64) (Position, error) {
	if err := ValidateObserver(latDeg, lonDeg); err != nil {
		return Position{}, err
	}

	// ΔT (about a minute) is below the resolution the timeline cares about,
	// so JD stands in for JDE.
	jd := julian.TimeToJD(t.UTC())

	λ, β, Δ := moonposition.Position(jd)
	sε, cε := nutation.MeanObliquity(jd).Sincos()
	α, δ := coord.EclToEq(λ, β, sε, cε)

	// Meeus measures geographic longitude positively westward and azimuth
	// from the South.
	φ := unit.AngleFromDeg(latDeg)
	ψ := unit.AngleFromDeg(-lonDeg)
	A, h := coord.EqToHz(α, δ, φ, ψ, sidereal.Mean(jd))

	alt := h.Rad()
	alt -= math.Asin(earthRadiusKm / Δ * math.Cos(alt))

	return Position{
		Altitude:   alt,
		Azimuth:    normalizeRadians(A.Rad() + math.Pi),
		DistanceKm: Δ,
	}, nil
}

// AltitudeDeg is a convenience for solvers that only need altitude.
func AltitudeDeg(t time.Time, latDeg, lonDeg float64) (float64, error) {
	p, err := PositionAt(t, latDeg, lonDeg)
	if err != nil {
		return 0, err
	}
	return p.Altitude * 180 / math.Pi, nil
}

func normalizeRadians(angle float64) float64 {
	twoPi := 2 * math.Pi
	angle = math.Mod(angle, twoPi)
	if angle < 0 {
		angle += twoPi
	}
	return angle
}
