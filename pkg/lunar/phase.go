// Package lunar computes the Moon's apparent position for an observer, its
// illuminated fraction and phase, and its rise/set times for a calendar day.
//
// Positions come from the Meeus lunar theory (soniakeys/meeus). Phase uses the
// truncated ecliptic longitudes of the Sun and Moon and is typically within
// ~1% illumination.
package lunar

import (
	"math"
	"time"
)

// SynodicMonth is the average length of the lunar cycle in days
const SynodicMonth = 29.530588853

// Phase describes the Moon's illumination at an instant.
type Phase struct {
	Fraction     float64 // Phase fraction [0,1): 0=new, 0.5=full
	Elongation   float64 // Sun→Moon ecliptic angle in degrees [0,360)
	Illumination float64 // Illuminated fraction [0,1]
	AgeDays      float64 // Days since new moon [0,SynodicMonth)
	Waxing       bool
	Name         string
}

// LitFraction is the share of the disc width that is lit, as drawn by a flat
// two-colour disc: 0 at new moon, 1 at full.
func (p Phase) LitFraction() float64 {
	if p.Fraction <= 0.5 {
		return p.Fraction * 2
	}
	return (1 - p.Fraction) * 2
}

// LitFrom reports which side of the disc the light comes from as seen from
// the northern hemisphere.
func (p Phase) LitFrom() string {
	if p.Fraction <= 0.5 {
		return "right"
	}
	return "left"
}

// PhaseAt computes the Moon's phase at t.
func PhaseAt(t time.Time) Phase {
	T := julianCenturies(jdFromTime(t))

	elongation := normalizeAngle(moonEclipticLongitude(T) - sunEclipticLongitude(T))
	fraction := elongation / 360.0
	illumination := (1 - math.Cos(degToRad(elongation))) / 2
	waxing := elongation < 180

	return Phase{
		Fraction:     fraction,
		Elongation:   elongation,
		Illumination: illumination,
		AgeDays:      fraction * SynodicMonth,
		Waxing:       waxing,
		Name:         phaseName(illumination, waxing),
	}
}

func phaseName(illumination float64, waxing bool) string {
	switch {
	case illumination < 0.01:
		return "New Moon"
	case illumination > 0.99:
		return "Full Moon"
	case illumination >= 0.49 && illumination <= 0.51:
		if waxing {
			return "First Quarter"
		}
		return "Third Quarter"
	case illumination < 0.50:
		if waxing {
			return "Waxing Crescent"
		}
		return "Waning Crescent"
	default:
		if waxing {
			return "Waxing Gibbous"
		}
		return "Waning Gibbous"
	}
}

func jdFromTime(t time.Time) float64 {
	return 2440587.5 + float64(t.Unix())/86400.0
}

func julianCenturies(jd float64) float64 {
	return (jd - 2451545.0) / 36525.0
}

// normalizeAngle wraps an angle to [0, 360)
func normalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// sunEclipticLongitude is the Sun's apparent longitude in degrees for T
// Julian centuries since J2000 (mean longitude plus equation of centre).
func sunEclipticLongitude(T float64) float64 {
	L0 := 280.46646 + 36000.76983*T + 0.0003032*T*T
	M := degToRad(normalizeAngle(357.52911 + 35999.05029*T - 0.0001537*T*T))

	C := (1.914602-0.004817*T-0.000014*T*T)*math.Sin(M) +
		(0.019993-0.000101*T)*math.Sin(2*M) +
		0.000289*math.Sin(3*M)

	return normalizeAngle(L0 + C)
}

// moonEclipticLongitude keeps the five largest periodic terms of Meeus
// Table 47.A.
func moonEclipticLongitude(T float64) float64 {
	L := 218.3164477 +
		481267.88123421*T -
		0.0015786*T*T +
		T*T*T/538841 -
		T*T*T*T/65194000

	D := degToRad(normalizeAngle(297.8501921 +
		445267.1114034*T -
		0.0018819*T*T +
		T*T*T/545868 -
		T*T*T*T/113065000))

	Mp := degToRad(normalizeAngle(134.9633964 +
		477198.8675055*T +
		0.0087414*T*T +
		T*T*T/69699 -
		T*T*T*T/14712000))

	return normalizeAngle(L +
		6.289*math.Sin(Mp) +
		1.274*math.Sin(2*D-Mp) +
		0.658*math.Sin(2*D) +
		0.214*math.Sin(2*Mp) +
		0.110*math.Sin(D))
}
