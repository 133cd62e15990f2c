package lunar

import (
	"time"
)

const (
	riseSetScanStep  = 10 * time.Minute
	riseSetTolerance = 30 * time.Second
)

// RiseSet holds the Moon's rise and set on one local calendar day. A zero
// time with the matching ok flag false means no such event that day.
type RiseSet struct {
	Rise   time.Time
	Set    time.Time
	OKRise bool
	OKSet  bool
}

// RiseSetForDate scans the local calendar day containing date (in date's
// location) for horizon crossings of the Moon's centre and refines each one
// by bisection.
//
// Rise is the first upward crossing of the day. Set is the first downward
// crossing after the rise, or the first downward crossing of the day when the
// Moon sets before it rises.
func RiseSetForDate(date time.Time, latDeg, lonDeg float64) (RiseSet, error) {
	if err := ValidateObserver(latDeg, lonDeg); err != nil {
		return RiseSet{}, err
	}

	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	end := time.Date(y, m, d+1, 0, 0, 0, 0, date.Location())

	alt := func(t time.Time) float64 {
		a, _ := AltitudeDeg(t, latDeg, lonDeg)
		return a
	}

	var (
		rs       RiseSet
		firstSet time.Time
		haveSet  bool
	)

	prevT := start
	prevAlt := alt(prevT)
	for prevT.Before(end) {
		t := prevT.Add(riseSetScanStep)
		if t.After(end) {
			t = end
		}
		a := alt(t)

		switch {
		case prevAlt < 0 && a >= 0 && !rs.OKRise:
			rs.Rise = bisect(alt, prevT, t, true)
			rs.OKRise = true
		case prevAlt >= 0 && a < 0:
			at := bisect(alt, prevT, t, false)
			if !haveSet {
				firstSet, haveSet = at, true
			}
			if rs.OKRise && !rs.OKSet {
				rs.Set, rs.OKSet = at, true
			}
		}

		prevT, prevAlt = t, a
	}

	if !rs.OKSet && haveSet {
		rs.Set, rs.OKSet = firstSet, true
	}

	return rs, nil
}

// bisect narrows a bracketed crossing of zero down to riseSetTolerance.
func bisect(alt func(time.Time) float64, a, b time.Time, rising bool) time.Time {
	altA := alt(a)
	for b.Sub(a) > riseSetTolerance {
		mid := a.Add(b.Sub(a) / 2)
		altM := alt(mid)

		crossed := altA < 0 && altM >= 0
		if !rising {
			crossed = altA >= 0 && altM < 0
		}

		if crossed {
			b = mid
		} else {
			a = mid
			altA = altM
		}
	}
	return a.Add(b.Sub(a) / 2).Truncate(time.Second)
}
