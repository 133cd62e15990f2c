package lunar

import (
	"math"
	"testing"
	"time"
)

func TestPhaseAt(t *testing.T) {
	tests := []struct {
		name              string
		time              time.Time
		expectedPhaseName string
		illuminationRange [2]float64 // min, max
		waxing            bool
	}{
		{
			// Known new moon: Jan 21, 2023 20:53 UTC
			name:              "New Moon Jan 2023",
			time:              time.Date(2023, 1, 21, 20, 53, 0, 0, time.UTC),
			expectedPhaseName: "New Moon",
			illuminationRange: [2]float64{0.0, 0.05},
			waxing:            true,
		},
		{
			// Known full moon: Feb 5, 2023 18:29 UTC
			name:              "Full Moon Feb 2023",
			time:              time.Date(2023, 2, 5, 18, 29, 0, 0, time.UTC),
			expectedPhaseName: "Full Moon",
			illuminationRange: [2]float64{0.95, 1.0},
			waxing:            false,
		},
		{
			// Known first quarter: Jan 28, 2023 15:19 UTC
			name:              "First Quarter Jan 2023",
			time:              time.Date(2023, 1, 28, 15, 19, 0, 0, time.UTC),
			expectedPhaseName: "First Quarter",
			illuminationRange: [2]float64{0.45, 0.55},
			waxing:            true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PhaseAt(tt.time)

			if result.Name != tt.expectedPhaseName {
				t.Errorf("Name = %q, expected %q", result.Name, tt.expectedPhaseName)
			}
			if result.Illumination < tt.illuminationRange[0] || result.Illumination > tt.illuminationRange[1] {
				t.Errorf("Illumination = %.3f, expected in range [%.2f, %.2f]",
					result.Illumination, tt.illuminationRange[0], tt.illuminationRange[1])
			}
			if result.Waxing != tt.waxing {
				t.Errorf("Waxing = %v, expected %v", result.Waxing, tt.waxing)
			}
		})
	}
}

func TestPhaseRanges(t *testing.T) {
	for year := 2020; year <= 2025; year++ {
		for month := 1; month <= 12; month++ {
			ts := time.Date(year, time.Month(month), 15, 12, 0, 0, 0, time.UTC)
			p := PhaseAt(ts)

			if p.Illumination < 0 || p.Illumination > 1 {
				t.Errorf("Illumination %.3f out of range for %v", p.Illumination, ts)
			}
			if p.Fraction < 0 || p.Fraction >= 1 {
				t.Errorf("Fraction %.3f out of range for %v", p.Fraction, ts)
			}
			if p.AgeDays < 0 || p.AgeDays >= SynodicMonth {
				t.Errorf("AgeDays %.3f out of range for %v", p.AgeDays, ts)
			}
			if lit := p.LitFraction(); lit < 0 || lit > 1 {
				t.Errorf("LitFraction %.3f out of range for %v", lit, ts)
			}
		}
	}
}

func TestLitFraction(t *testing.T) {
	tests := []struct {
		fraction float64
		lit      float64
		from     string
	}{
		{0, 0, "right"},
		{0.25, 0.5, "right"},
		{0.5, 1, "right"},
		{0.75, 0.5, "left"},
	}

	for _, tt := range tests {
		p := Phase{Fraction: tt.fraction}
		if got := p.LitFraction(); math.Abs(got-tt.lit) > 1e-12 {
			t.Errorf("LitFraction(%.2f) = %.3f, expected %.3f", tt.fraction, got, tt.lit)
		}
		if got := p.LitFrom(); got != tt.from {
			t.Errorf("LitFrom(%.2f) = %q, expected %q", tt.fraction, got, tt.from)
		}
	}
}
