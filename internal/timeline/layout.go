package timeline

import (
	"fmt"

	"github.com/chrissnell/moonify/internal/mapper"
	"github.com/chrissnell/moonify/internal/riseset"
	"github.com/chrissnell/moonify/internal/sampler"
)

// Tick is an hour mark on the strip. Hour 24 closes the scale and has no
// label.
type Tick struct {
	Hour    int       `json:"hour"`
	Label   string    `json:"label,omitempty"`
	Percent float64   `json:"percent"`
	X       []float64 `json:"x"`
}

// Band is a stretch of the strip where the body is above the horizon.
type Band struct {
	Range        riseset.Range `json:"range"`
	StartPercent float64       `json:"startPercent"`
	WidthPercent float64       `json:"widthPercent"`
	X            []float64     `json:"x"`
	Width        float64       `json:"width"`
}

// Marker is a rise or set marker with its clock label.
type Marker struct {
	Kind        riseset.Kind `json:"kind"`
	MinuteOfDay int          `json:"minute"`
	Label       string       `json:"label"`
	Direction   string       `json:"direction"`
	AzimuthDeg  float64      `json:"azimuth"`
	Percent     float64      `json:"percent"`
	X           []float64    `json:"x"`
}

// Layout is everything periodic on the strip. Each X slice holds one entry,
// or two exactly one width apart when the offset wraps the scale.
type Layout struct {
	Ticks []Tick  `json:"ticks"`
	Bands []Band  `json:"bands"`
	Rise  *Marker `json:"rise,omitempty"`
	Set   *Marker `json:"set,omitempty"`
	Wraps bool    `json:"wraps"`
}

func percentOf(minute, offset float64) float64 {
	return mapper.Reduce(minute+offset) / sampler.MinutesPerDay * 100
}

// BuildLayout places ticks, highlight bands and rise/set markers for day.
func BuildLayout(res riseset.Result, day sampler.Day, offset float64, m *mapper.Mapper) Layout {
	l := Layout{Wraps: mapper.Wraps(offset)}
	width := m.Viewport().Width

	for h := 0; h <= 24; h++ {
		t := Tick{Hour: h}
		x := m.MinuteToX(float64(h*60), offset)
		t.Percent = percentOf(float64(h*60), offset)
		if h == 24 {
			x = m.MinuteToX(0, offset) + width
			t.Percent += 100
		} else {
			t.Label = fmt.Sprintf("%02d:00", h)
		}
		t.X = m.Copies(x, offset)
		l.Ticks = append(l.Ticks, t)
	}

	for _, r := range riseset.Bands(res) {
		start := float64(r.Start)
		l.Bands = append(l.Bands, Band{
			Range:        r,
			StartPercent: percentOf(start, offset),
			WidthPercent: float64(r.Minutes()) / sampler.MinutesPerDay * 100,
			X:            m.Copies(m.MinuteToX(start, offset), offset),
			Width:        m.SpanWidth(float64(r.Minutes())),
		})
	}

	l.Rise = marker(res.Rise, day, offset, m)
	l.Set = marker(res.Set, day, offset, m)
	return l
}

func marker(c *riseset.Crossing, day sampler.Day, offset float64, m *mapper.Mapper) *Marker {
	if c == nil {
		return nil
	}
	minute := float64(c.MinuteOfDay)
	return &Marker{
		Kind:        c.Kind,
		MinuteOfDay: c.MinuteOfDay,
		Label:       day.At(c.MinuteOfDay).Format("15:04:05"),
		Direction:   riseset.Compass(c.AzimuthDeg),
		AzimuthDeg:  c.AzimuthDeg,
		Percent:     percentOf(minute, offset),
		X:           m.Copies(m.MinuteToX(minute, offset), offset),
	}
}

// CursorX places the selected instant on the strip, seconds included.
func CursorX(i Instant, offset float64, m *mapper.Mapper) []float64 {
	return m.Copies(m.MinuteToX(i.FractionalMinute(), offset), offset)
}
