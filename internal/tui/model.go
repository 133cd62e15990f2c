package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/chrissnell/moonify/internal/ephemeris"
	"github.com/chrissnell/moonify/internal/log"
	"github.com/chrissnell/moonify/internal/mapper"
	"github.com/chrissnell/moonify/internal/scene"
	"github.com/chrissnell/moonify/internal/timeline"
)

// panMinutes is how far one pan key or wheel notch moves the strip.
const panMinutes = 30

// rows outside the now panel: title, strip, markers, labels, status, help
const chromeRows = 6

// Model renders one timeline window.
type Model struct {
	Window   *timeline.Window
	Composer *scene.Composer
	Bridge   *Bridge
	Keys     KeyMap
	Lat      float64
	Lon      float64

	Width  int
	Height int

	Frame    scene.Frame
	HasFrame bool
	Err      error

	logger *zap.SugaredLogger
}

func NewModel(w *timeline.Window, c *scene.Composer, b *Bridge, lat, lon float64, logger *zap.SugaredLogger) Model {
	return Model{
		Window:   w,
		Composer: c,
		Bridge:   b,
		Keys:     DefaultKeyMap(),
		Lat:      lat,
		Lon:      lon,
		logger:   log.OrNop(logger),
	}
}

// Init starts listening for window updates.
func (m Model) Init() tea.Cmd {
	return m.waitForWindow()
}

func (m Model) waitForWindow() tea.Cmd {
	if m.Bridge == nil {
		return nil
	}
	return func() tea.Msg { return m.Bridge.wait() }
}

func (m Model) panelRows() int {
	rows := m.Height - chromeRows
	if rows < 3 {
		rows = 3
	}
	return rows
}

// stripRow is the screen row of the highlight band.
func (m Model) stripRow() int { return 1 + m.panelRows() }

func (m Model) request(s timeline.State) scene.Request {
	return scene.Request{
		Instant: s.Instant,
		Offset:  s.Offset,
		Lat:     m.Lat,
		Lon:     m.Lon,
		Strip:   mapper.Viewport{Width: float64(m.Width), Height: 1},
		Panel:   mapper.Viewport{Width: float64(m.Width), Height: float64(m.panelRows())},
	}
}

func (m Model) recompose(s timeline.State) Model {
	f, err := m.Composer.Compose(m.request(s))
	if err != nil {
		var se *ephemeris.SourceError
		if errors.As(err, &se) {
			m.logger.Warnw("dropping body for this frame", "error", err)
		}
		m.Err = err
		m.HasFrame = false
		return m
	}
	m.Frame, m.HasFrame, m.Err = f, true, nil
	return m
}

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m.recompose(m.Window.State()), nil

	case MsgWindow:
		return m.recompose(msg.State), m.waitForWindow()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		m.Window.Close()
		return m, tea.Quit
	case key.Matches(msg, m.Keys.PanLeft):
		m.Window.Pan(panMinutes)
	case key.Matches(msg, m.Keys.PanRight):
		m.Window.Pan(-panMinutes)
	case key.Matches(msg, m.Keys.Center):
		m.Window.CenterOn(m.Window.Current().FractionalMinute())
	default:
		if !m.Window.HandleKeyWith(m.Keys.TimelineKeys(), msg.String()) {
			return m, nil
		}
	}
	return m.recompose(m.Window.State()), nil
}

// handleMouse scrubs on a press or drag over the strip rows and pans on the
// wheel.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.Window.Pan(panMinutes)
		return m
	case tea.MouseButtonWheelDown:
		m.Window.Pan(-panMinutes)
		return m
	}

	if msg.Button != tea.MouseButtonLeft || msg.Action == tea.MouseActionRelease {
		return m
	}
	if msg.Y < m.stripRow() || msg.Y > m.stripRow()+2 {
		return m
	}

	strip := mapper.New(mapper.DefaultConfig(), mapper.Viewport{Width: float64(m.Width), Height: 1})
	minute := strip.XToMinute(float64(msg.X)+0.5, m.Window.Offset())
	m.Window.Scrub(int(minute))
	return m
}
