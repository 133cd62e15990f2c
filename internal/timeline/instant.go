package timeline

import (
	"time"

	"github.com/chrissnell/moonify/internal/sampler"
)

// Instant is a wall-clock moment. Calendar day, minute of day and second are
// always derived from the underlying time, so arithmetic across midnight
// lands on the right day.
type Instant struct {
	t time.Time
}

func NewInstant(t time.Time) Instant {
	return Instant{t: t}
}

// InstantAt builds an Instant on day. Minute and second are clamped into
// range.
func InstantAt(day sampler.Day, minute, second int) Instant {
	return Instant{t: day.At(ClampMinute(minute)).Add(time.Duration(clamp(second, 0, 59)) * time.Second)}
}

// ClampMinute forces m into [0, 1440).
func ClampMinute(m int) int {
	return clamp(m, 0, sampler.MinutesPerDay-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (i Instant) Time() time.Time { return i.t }

func (i Instant) Day() sampler.Day { return sampler.DayOf(i.t) }

func (i Instant) MinuteOfDay() int { return i.t.Hour()*60 + i.t.Minute() }

func (i Instant) Second() int { return i.t.Second() }

// FractionalMinute is the minute of day including seconds, for placing the
// cursor between whole minutes during animations.
func (i Instant) FractionalMinute() float64 {
	return float64(i.MinuteOfDay()) + (float64(i.t.Second())+float64(i.t.Nanosecond())/1e9)/60
}

func (i Instant) Add(d time.Duration) Instant { return Instant{t: i.t.Add(d)} }

// AddMinutes accepts fractional minutes.
func (i Instant) AddMinutes(m float64) Instant {
	return i.Add(time.Duration(m * float64(time.Minute)))
}

// TruncateMinute drops seconds and below.
func (i Instant) TruncateMinute() Instant {
	y, mo, d := i.t.Date()
	return Instant{t: time.Date(y, mo, d, i.t.Hour(), i.t.Minute(), 0, 0, i.t.Location())}
}

// WithMinute moves to minute on the same day, keeping the second.
func (i Instant) WithMinute(minute int) Instant {
	return InstantAt(i.Day(), minute, i.Second())
}

// WithDay moves to day, keeping minute and second.
func (i Instant) WithDay(day sampler.Day) Instant {
	return InstantAt(day, i.MinuteOfDay(), i.Second())
}

func (i Instant) Equal(o Instant) bool { return i.t.Equal(o.t) }

func (i Instant) String() string { return i.t.Format("2006-01-02 15:04:05") }
