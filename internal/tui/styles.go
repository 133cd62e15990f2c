package tui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorIvory     = lipgloss.Color("#FFFFF0") // marker and cursor text
	colorNavy      = lipgloss.Color("#0B1020") // unlit side of the disc
	colorHighlight = lipgloss.Color("#fffae5") // above-horizon band
	colorGrid      = lipgloss.Color("#5A5A50") // hour ticks
	colorText      = lipgloss.Color("#F1F5F9")
	colorMuted     = lipgloss.Color("#B6C2CF")
	colorDanger    = lipgloss.Color("#e63946")
)

// Glyphs drawn on the now panel and the strip.
const (
	glyphNew     = "○"
	glyphWaxing  = "◐"
	glyphWaning  = "◑"
	glyphFull    = "●"
	glyphClipped = "◠"
	glyphHorizon = "─"
	glyphBand    = "▀"
	glyphTick    = "┴"
	glyphCursor  = "▲"
	glyphRise    = "↑"
	glyphSet     = "↓"
)

var (
	styleTitle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBand = lipgloss.NewStyle().
			Foreground(colorHighlight)

	styleTick = lipgloss.NewStyle().
			Foreground(colorGrid)

	styleMarker = lipgloss.NewStyle().
			Foreground(colorIvory).
			Bold(true)

	styleError = lipgloss.NewStyle().
			Foreground(colorDanger)
)
