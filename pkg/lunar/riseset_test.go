package lunar

import (
	"errors"
	"testing"
	"time"
)

func TestRiseSetForDateCrossesHorizon(t *testing.T) {
	lat, lon := 40.7128, -74.0060
	ny := time.FixedZone("EST", -5*3600)
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, ny)

	alt := func(ts time.Time) float64 {
		a, err := AltitudeDeg(ts, lat, lon)
		if err != nil {
			t.Fatalf("AltitudeDeg: %v", err)
		}
		return a
	}

	rises, sets := 0, 0
	for d := 0; d < 30; d++ {
		date := start.AddDate(0, 0, d)
		rs, err := RiseSetForDate(date, lat, lon)
		if err != nil {
			t.Fatalf("%s: %v", date.Format("2006-01-02"), err)
		}

		y, m, dd := date.Date()
		if rs.OKRise {
			rises++
			if ry, rm, rd := rs.Rise.Date(); ry != y || rm != m || rd != dd {
				t.Errorf("%s: rise %s outside the day", date.Format("2006-01-02"), rs.Rise)
			}
			if alt(rs.Rise.Add(-2*time.Minute)) >= 0 || alt(rs.Rise.Add(2*time.Minute)) < 0 {
				t.Errorf("%s: altitude does not turn positive at rise %s", date.Format("2006-01-02"), rs.Rise)
			}
		}
		if rs.OKSet {
			sets++
			if alt(rs.Set.Add(-2*time.Minute)) < 0 || alt(rs.Set.Add(2*time.Minute)) >= 0 {
				t.Errorf("%s: altitude does not turn negative at set %s", date.Format("2006-01-02"), rs.Set)
			}
		}
	}

	// The Moon skips roughly one rise and one set per lunation.
	if rises < 27 || sets < 27 {
		t.Errorf("rises = %d, sets = %d over 30 days", rises, sets)
	}
}

func TestRiseSetForDateRejectsBadObserver(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		want     error
	}{
		{"latitude too high", 95, 0, ErrInvalidLatitude},
		{"latitude too low", -95, 0, ErrInvalidLatitude},
		{"longitude too high", 0, 181, ErrInvalidLongitude},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RiseSetForDate(time.Now(), tt.lat, tt.lon)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, expected %v", err, tt.want)
			}
		})
	}
}
