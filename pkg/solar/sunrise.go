// Package solar provides approximate sunrise and sunset times, expressed as
// minutes from midnight, for tinting the sky behind the Moon.
package solar

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// Times holds sunrise and sunset as minutes from local midnight [0, 1440).
// OK is false during polar day or polar night.
type Times struct {
	Sunrise int
	Sunset  int
	OK      bool
}

// CalculateSunriseSunset returns sunrise and sunset as minutes from midnight UTC
// for the given date at the specified latitude and longitude (degrees, east
// positive). Returns (-1, -1) for polar day or polar night.
func CalculateSunriseSunset(date time.Time, latitude, longitude float64) (sunriseMinutes, sunsetMinutes int) {
	// Solar declination (ASCE approximation)
	doy := float64(date.YearDay())
	innerAngle := degToRad(356.6 + 0.9856*doy)
	outerAngle := degToRad(278.97 + 0.9856*doy + 1.9165*math.Sin(innerAngle))
	declination := math.Asin(0.39785 * math.Sin(outerAngle))

	// cos(H) = -tan(lat) * tan(declination) at the horizon
	cosH := -math.Tan(degToRad(latitude)) * math.Tan(declination)
	if cosH < -1.0 || cosH > 1.0 {
		return -1, -1
	}

	hourAngleMinutes := radToDeg(math.Acos(cosH)) / 15.0 * 60.0

	y, m, d := date.Date()
	noon := time.Date(y, m, d, 12, 0, 0, 0, time.UTC)

	// 4 minutes of time per degree of longitude
	solarNoonUTC := 720.0 - longitude*4.0 - equationOfTime(noon)

	sunrise := math.Mod(solarNoonUTC-hourAngleMinutes+1440, 1440)
	sunset := math.Mod(solarNoonUTC+hourAngleMinutes+1440, 1440)

	return int(math.Round(sunrise)) % 1440, int(math.Round(sunset)) % 1440
}

// LocalTimes converts CalculateSunriseSunset into minutes from midnight in
// date's location.
func LocalTimes(date time.Time, latitude, longitude float64) Times {
	riseUTC, setUTC := CalculateSunriseSunset(date, latitude, longitude)
	if riseUTC < 0 || setUTC < 0 {
		return Times{Sunrise: -1, Sunset: -1}
	}

	_, offset := date.Zone()
	shift := offset / 60

	return Times{
		Sunrise: ((riseUTC+shift)%1440 + 1440) % 1440,
		Sunset:  ((setUTC+shift)%1440 + 1440) % 1440,
		OK:      true,
	}
}

// equationOfTime is apparent minus mean solar time, in minutes.
func equationOfTime(t time.Time) float64 {
	T := (julian.TimeToJD(t) - 2451545.0) / 36525.0

	L0 := fixAngle(280.46646 + T*(36000.76983+T*0.0003032))
	M := fixAngle(357.52911 + T*(35999.05029-T*0.0001537))
	e := 0.016708634 - T*(0.000042037+T*0.0000001267)
	eps0 := 23 + (26+(21.448-T*(46.815+T*(0.00059-T*0.001813)))/60)/60

	y := math.Tan(degToRad(eps0)/2) * math.Tan(degToRad(eps0)/2)
	return radToDeg(y*math.Sin(degToRad(2*L0))-
		2*e*math.Sin(degToRad(M))+
		4*e*y*math.Sin(degToRad(M))*math.Cos(degToRad(2*L0))-
		0.5*y*y*math.Sin(degToRad(4*L0))-
		1.25*e*e*math.Sin(degToRad(2*M))) * 4
}

func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }
func radToDeg(rad float64) float64 { return rad * 180.0 / math.Pi }
func fixAngle(a float64) float64   { return a - 360.0*math.Floor(a/360.0) }
