// Package scene composes a complete render frame for a selected instant:
// the body's position and appearance on the now panel, and the timeline
// strip's ticks, bands, markers and trajectory.
package scene

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/chrissnell/moonify/internal/appearance"
	"github.com/chrissnell/moonify/internal/ephemeris"
	"github.com/chrissnell/moonify/internal/log"
	"github.com/chrissnell/moonify/internal/mapper"
	"github.com/chrissnell/moonify/internal/riseset"
	"github.com/chrissnell/moonify/internal/sampler"
	"github.com/chrissnell/moonify/internal/timeline"
	"github.com/chrissnell/moonify/pkg/config"
	"github.com/chrissnell/moonify/pkg/lunar"
	"github.com/chrissnell/moonify/pkg/solar"
)

// Config gathers the geometry and appearance settings.
type Config struct {
	Mapper           mapper.Config
	Appearance       appearance.Config
	UseDirectRiseSet bool
}

func DefaultConfig() Config {
	return Config{
		Mapper:           mapper.DefaultConfig(),
		Appearance:       appearance.DefaultConfig(),
		UseDirectRiseSet: true,
	}
}

func ConfigFrom(cfg *config.ConfigData) (Config, error) {
	app, err := appearance.ConfigFrom(cfg.Appearance)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Mapper:           mapper.ConfigFrom(cfg.Appearance),
		Appearance:       app,
		UseDirectRiseSet: cfg.Sampling.UseDirectRiseSet,
	}, nil
}

// Request is one frame's input.
type Request struct {
	Instant timeline.Instant
	Offset  float64
	Lat     float64
	Lon     float64

	// Strip is the timeline strip, Panel the now panel.
	Strip mapper.Viewport
	Panel mapper.Viewport
}

type resolvedKey struct {
	day      string
	lat, lon float64
}

type resolved struct {
	key    resolvedKey
	result riseset.Result
	source string
}

// Composer turns Requests into Frames. Safe for concurrent use.
type Composer struct {
	src    ephemeris.Source
	cache  *sampler.Cache
	cfg    Config
	logger *zap.SugaredLogger
	phase  func(time.Time) lunar.Phase

	mu   sync.Mutex
	last *resolved
}

type Option func(*Composer)

// WithPhaseFunc replaces lunar.PhaseAt.
func WithPhaseFunc(fn func(time.Time) lunar.Phase) Option {
	return func(c *Composer) { c.phase = fn }
}

func NewComposer(src ephemeris.Source, cache *sampler.Cache, cfg Config, logger *zap.SugaredLogger, opts ...Option) *Composer {
	c := &Composer{
		src:    src,
		cache:  cache,
		cfg:    cfg,
		logger: log.OrNop(logger),
		phase:  lunar.PhaseAt,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Resolve returns the rise/set result for day, remembering the last one.
// With direct rise/set enabled the source is asked first and the sampled
// crossings are the fallback.
func (c *Composer) Resolve(day sampler.Day, lat, lon float64) (riseset.Result, []sampler.Sample, string, error) {
	samples, err := c.cache.Get(day, lat, lon)
	if err != nil {
		return riseset.Result{}, nil, "", fmt.Errorf("sample %s: %w", day, err)
	}

	key := resolvedKey{day: day.String() + " " + day.Start().Location().String(), lat: lat, lon: lon}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last != nil && c.last.key == key {
		return c.last.result, samples, c.last.source, nil
	}

	res, source := riseset.Resolve(samples), "sampled"
	if c.cfg.UseDirectRiseSet {
		rs, err := ephemeris.DirectRiseSet(c.src, day.Start(), lat, lon)
		if err != nil {
			c.logger.Debugw("direct rise/set unavailable, using samples", "day", day.String(), "error", err)
		} else {
			res, source = riseset.FromTimes(rs, day, samples), "direct"
		}
	}

	c.last = &resolved{key: key, result: res, source: source}
	return res, samples, source, nil
}

// Compose builds the frame for req. Source failures come back wrapped so
// errors.As finds the *ephemeris.SourceError; callers skip drawing the body.
func (c *Composer) Compose(req Request) (Frame, error) {
	day := req.Instant.Day()
	t := req.Instant.Time()

	res, samples, source, err := c.Resolve(day, req.Lat, req.Lon)
	if err != nil {
		c.logger.Warnw("position source failed", "day", day.String(), "error", err)
		return Frame{}, err
	}

	obs, err := ephemeris.Observe(c.src, t, req.Lat, req.Lon)
	if err != nil {
		c.logger.Warnw("position source failed", "time", t, "error", err)
		return Frame{}, fmt.Errorf("observe: %w", err)
	}

	maxAlt := res.ScaleMaxDeg(c.cfg.Appearance.DefaultSpanDeg)
	panel := mapper.New(c.cfg.Mapper, req.Panel)
	strip := mapper.New(c.cfg.Mapper, req.Strip)

	app := appearance.Evaluate(obs.AltitudeDeg, maxAlt, panel, c.cfg.Appearance)
	layout := timeline.BuildLayout(res, day, req.Offset, strip)
	ph := c.phase(t)

	f := Frame{
		Time:      t,
		Day:       day.String(),
		Minute:    req.Instant.MinuteOfDay(),
		Second:    req.Instant.Second(),
		Latitude:  req.Lat,
		Longitude: req.Lon,

		BodyVisible:  app.Visibility != appearance.Hidden,
		Visibility:   app.Visibility.String(),
		BodyX:        app.X,
		BodyY:        app.Y,
		BodyDiameter: app.Diameter,
		BodyColor:    app.Hex(),
		ClipFraction: app.ClipFraction,
		HorizonY:     app.HorizonY,
		AltitudeDeg:  obs.AltitudeDeg,
		AzimuthDeg:   obs.AzimuthDeg,
		Direction:    riseset.Compass(obs.AzimuthDeg),
		Phase: Phase{
			Illumination: obs.Illumination,
			Fraction:     ph.Fraction,
			Name:         ph.Name,
			Waxing:       ph.Waxing,
			LitFraction:  ph.LitFraction(),
			LitFrom:      ph.LitFrom(),
		},

		RiseMarker:     layout.Rise,
		SetMarker:      layout.Set,
		HourTicks:      layout.Ticks,
		HighlightBands: layout.Bands,
		Wraps:          layout.Wraps,
		Offset:         req.Offset,
		CursorX:        timeline.CursorX(req.Instant, req.Offset, strip),

		Trajectory:     trajectory(samples, req.Offset, maxAlt, strip.WithViewport(mapper.Viewport{Width: req.Strip.Width, Height: req.Panel.Height})),
		Extremum:       res.Extremum,
		MaxAltitudeDeg: maxAlt,
		RiseSetSource:  source,
	}

	sky := appearance.SkyGradient(f.Minute, solar.LocalTimes(day.Start(), req.Lat, req.Lon))
	f.Sky = Sky{Period: sky.Period, Top: sky.TopHex(), Bottom: sky.BottomHex()}

	return f, nil
}

func trajectory(samples []sampler.Sample, offset, maxAlt float64, m *mapper.Mapper) []Point {
	pts := make([]Point, len(samples))
	for i, s := range samples {
		pts[i] = Point{
			Minute: s.MinuteOfDay,
			X:      m.MinuteToX(float64(s.MinuteOfDay), offset),
			Y:      m.AltitudeToY(s.AltitudeDeg, maxAlt),
		}
	}
	return pts
}
