// Package timeline owns the selected instant and pan offset of the 24h strip,
// animates discrete jumps, coalesces continuous scrub and pan input into one
// commit per frame, and lays out ticks, bands and markers.
package timeline

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chrissnell/moonify/internal/log"
	"github.com/chrissnell/moonify/internal/mapper"
	"github.com/chrissnell/moonify/internal/sampler"
	"github.com/chrissnell/moonify/pkg/config"
)

// Config controls step sizes and animation timing.
type Config struct {
	StepMinutes      int
	ShiftStepMinutes int
	JumpMinutes      int
	JumpDuration     time.Duration
	FrameInterval    time.Duration
}

func DefaultConfig() Config {
	return ConfigFrom(config.Defaults().Timeline)
}

func ConfigFrom(t config.TimelineData) Config {
	return Config{
		StepMinutes:      t.StepMinutes,
		ShiftStepMinutes: t.ShiftStepMinutes,
		JumpMinutes:      t.JumpMinutes,
		JumpDuration:     t.JumpDuration,
		FrameInterval:    t.FrameInterval,
	}
}

// State is a snapshot handed to the listener.
type State struct {
	Instant Instant
	Offset  float64
	Jumping bool
}

// Listener receives every change, including each animation tick. It runs
// with the window's notification lock held and must not call mutating
// Window methods.
type Listener func(State)

type Option func(*Window)

func WithClock(c Clock) Option {
	return func(w *Window) { w.clock = c }
}

func WithLogger(l *zap.SugaredLogger) Option {
	return func(w *Window) { w.logger = log.OrNop(l) }
}

func WithListener(fn Listener) Option {
	return func(w *Window) { w.listener = fn }
}

type jumpAnim struct {
	origin Instant // where the jump is measured from
	from   Instant // where the animation started
	target Instant
	began  time.Time
	timer  Stopper
}

type pendingScrub struct {
	minute int
	timer  Stopper
}

type pendingPan struct {
	delta float64
	timer Stopper
}

// Window is the timeline's only mutable state. All mutation goes through
// update, which serializes writers and delivers snapshots in order.
type Window struct {
	id       uuid.UUID
	cfg      Config
	clock    Clock
	logger   *zap.SugaredLogger
	listener Listener

	notifyMu sync.Mutex

	mu      sync.Mutex
	current Instant
	offset  float64
	jump    *jumpAnim
	scrub   *pendingScrub
	pan     *pendingPan
	closed  bool
}

func NewWindow(start Instant, cfg Config, opts ...Option) *Window {
	w := &Window{
		id:      uuid.New(),
		cfg:     cfg,
		clock:   RealClock(),
		logger:  zap.NewNop().Sugar(),
		current: start,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.cfg.FrameInterval <= 0 {
		w.cfg.FrameInterval = 16 * time.Millisecond
	}
	return w
}

func (w *Window) ID() uuid.UUID { return w.id }

func (w *Window) Config() Config { return w.cfg }

func (w *Window) Current() Instant {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Offset is the unbounded pan offset in minutes.
func (w *Window) Offset() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.offset
}

func (w *Window) Jumping() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.jump != nil
}

func (w *Window) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stateLocked()
}

func (w *Window) stateLocked() State {
	return State{Instant: w.current, Offset: w.offset, Jumping: w.jump != nil}
}

// update runs fn under the state lock and, when fn reports a change, hands
// the resulting snapshot to the listener before any later update can.
func (w *Window) update(fn func() bool) {
	w.notifyMu.Lock()
	defer w.notifyMu.Unlock()

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	changed := fn()
	st := w.stateLocked()
	w.mu.Unlock()

	if changed && w.listener != nil {
		w.listener(st)
	}
}

// Set moves to an absolute instant.
func (w *Window) Set(i Instant) {
	w.update(func() bool {
		w.cancelJumpLocked("set")
		w.dropScrubLocked()
		w.current = i
		return true
	})
}

// SetMinute moves within the current day. Out-of-range minutes are clamped.
func (w *Window) SetMinute(minute int) {
	w.update(func() bool {
		w.cancelJumpLocked("set")
		w.dropScrubLocked()
		w.current = w.current.WithMinute(minute)
		return true
	})
}

// SetDay keeps the time of day and changes the calendar day.
func (w *Window) SetDay(day sampler.Day) {
	w.update(func() bool {
		w.cancelJumpLocked("set day")
		w.current = w.current.WithDay(day)
		return true
	})
}

// Today moves to the clock's current day plus days, in the window's
// location, keeping the time of day.
func (w *Window) Today(days int) {
	w.update(func() bool {
		w.cancelJumpLocked("set day")
		now := w.clock.Now().In(w.current.Time().Location())
		w.current = w.current.WithDay(sampler.DayOf(now).AddDays(days))
		return true
	})
}

// Step moves by whole minutes, crossing midnight into neighbouring days.
func (w *Window) Step(minutes int) {
	w.update(func() bool {
		w.cancelJumpLocked("step")
		w.dropScrubLocked()
		w.current = w.current.AddMinutes(float64(minutes))
		return true
	})
}

// Jump animates a move of minutes over the configured duration, emitting
// every frame and finishing on a whole minute. A jump issued while another is
// running replaces it and is measured from the replaced jump's origin.
func (w *Window) Jump(minutes int) {
	w.update(func() bool {
		origin := w.current
		if w.jump != nil {
			origin = w.jump.origin
		}
		w.cancelJumpLocked("superseded")
		w.dropScrubLocked()

		a := &jumpAnim{
			origin: origin,
			from:   w.current,
			target: origin.AddMinutes(float64(minutes)),
			began:  w.clock.Now(),
		}
		w.jump = a
		a.timer = w.clock.AfterFunc(w.cfg.FrameInterval, func() { w.tick(a) })

		w.logger.Debugw("jump started", "window", w.id.String(), "minutes", minutes, "target", a.target.String())
		return false
	})
}

func (w *Window) JumpForward() { w.Jump(w.cfg.JumpMinutes) }

func (w *Window) JumpBack() { w.Jump(-w.cfg.JumpMinutes) }

func (w *Window) tick(a *jumpAnim) {
	w.update(func() bool {
		if w.jump != a {
			return false
		}

		p := 1.0
		if w.cfg.JumpDuration > 0 {
			p = float64(w.clock.Now().Sub(a.began)) / float64(w.cfg.JumpDuration)
		}
		if p >= 1 {
			w.current = a.target.TruncateMinute()
			w.jump = nil
			w.logger.Debugw("jump complete", "window", w.id.String(), "instant", w.current.String())
			return true
		}

		span := a.target.Time().Sub(a.from.Time())
		w.current = a.from.Add(time.Duration(float64(span) * easeOut(p)))
		a.timer = w.clock.AfterFunc(w.cfg.FrameInterval, func() { w.tick(a) })
		return true
	})
}

// easeOut is a quadratic deceleration over [0, 1].
func easeOut(p float64) float64 {
	return 1 - (1-p)*(1-p)
}

// CancelJump stops an in-flight jump where it is. Safe to call at any time.
func (w *Window) CancelJump() {
	w.update(func() bool {
		return w.cancelJumpLocked("cancelled")
	})
}

func (w *Window) cancelJumpLocked(reason string) bool {
	if w.jump == nil {
		return false
	}
	w.jump.timer.Stop()
	w.jump = nil
	w.logger.Debugw("jump cancelled", "window", w.id.String(), "reason", reason)
	return true
}

// Scrub records a raw slider minute. Values arriving within one frame
// replace each other; only the last is committed.
func (w *Window) Scrub(minute int) {
	w.update(func() bool {
		if w.scrub != nil {
			w.scrub.minute = minute
			return false
		}
		p := &pendingScrub{minute: minute}
		w.scrub = p
		p.timer = w.clock.AfterFunc(w.cfg.FrameInterval, func() { w.commitScrub(p) })
		return false
	})
}

func (w *Window) commitScrub(p *pendingScrub) {
	w.update(func() bool {
		if w.scrub != p {
			return false
		}
		w.scrub = nil
		w.cancelJumpLocked("scrub")
		w.current = w.current.WithMinute(p.minute)
		w.logger.Debugw("scrub committed", "window", w.id.String(), "minute", ClampMinute(p.minute))
		return true
	})
}

func (w *Window) dropScrubLocked() {
	if w.scrub != nil {
		w.scrub.timer.Stop()
		w.scrub = nil
	}
}

// Pan accumulates a horizontal drag in minutes. Deltas within one frame are
// summed and committed together.
func (w *Window) Pan(deltaMinutes float64) {
	w.update(func() bool {
		if w.pan != nil {
			w.pan.delta += deltaMinutes
			return false
		}
		p := &pendingPan{delta: deltaMinutes}
		w.pan = p
		p.timer = w.clock.AfterFunc(w.cfg.FrameInterval, func() { w.commitPan(p) })
		return false
	})
}

func (w *Window) commitPan(p *pendingPan) {
	w.update(func() bool {
		if w.pan != p {
			return false
		}
		w.pan = nil
		w.offset += p.delta
		return p.delta != 0
	})
}

// CenterOn adjusts the offset by the smallest amount that puts minute in the
// middle of the strip.
func (w *Window) CenterOn(minute float64) {
	w.update(func() bool {
		shift := mapper.Reduce(720-minute-w.offset+720) - 720
		if shift == 0 {
			return false
		}
		w.offset += shift
		return true
	})
}

// Close cancels all timers. Later calls to any mutator are ignored.
func (w *Window) Close() {
	w.notifyMu.Lock()
	defer w.notifyMu.Unlock()
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	w.cancelJumpLocked("closed")
	w.dropScrubLocked()
	if w.pan != nil {
		w.pan.timer.Stop()
		w.pan = nil
	}
	w.closed = true
}
