package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/chrissnell/moonify/internal/scene"
)

// View renders the title, now panel, strip and footer.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return "measuring terminal…"
	}

	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteByte('\n')
	b.WriteString(m.renderPanel())
	b.WriteString(m.renderStrip())
	b.WriteString(m.renderStatus())
	b.WriteByte('\n')
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderTitle() string {
	cur := m.Window.Current()
	title := fmt.Sprintf("moonify  %s  %.4f, %.4f", cur.String(), m.Lat, m.Lon)
	if m.Window.Jumping() {
		title += "  »"
	}
	return styleTitle.Render(title)
}

func bodyGlyph(p scene.Phase) string {
	switch {
	case p.LitFraction < 0.15:
		return glyphNew
	case p.LitFraction > 0.85:
		return glyphFull
	case p.Waxing:
		return glyphWaxing
	default:
		return glyphWaning
	}
}

// skyRows blends the frame's sky gradient over n rows.
func skyRows(sky scene.Sky, n int) []lipgloss.Style {
	top, err1 := colorful.Hex(sky.Top)
	bottom, err2 := colorful.Hex(sky.Bottom)
	styles := make([]lipgloss.Style, n)
	for i := range styles {
		if err1 != nil || err2 != nil {
			styles[i] = lipgloss.NewStyle()
			continue
		}
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		c := top.BlendRgb(bottom, t).Clamped()
		styles[i] = lipgloss.NewStyle().Background(lipgloss.Color(c.Hex()))
	}
	return styles
}

func (m Model) renderPanel() string {
	rows := m.panelRows()
	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, m.Width)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}

	var bg []lipgloss.Style
	if m.HasFrame {
		bg = skyRows(m.Frame.Sky, rows)
		f := m.Frame

		horizon := clampInt(int(f.HorizonY), 0, rows-1)
		for c := range grid[horizon] {
			grid[horizon][c] = styleMuted.Render(glyphHorizon)
		}

		if f.BodyVisible {
			col := clampInt(int(f.BodyX), 0, m.Width-1)
			body := lipgloss.NewStyle().Foreground(lipgloss.Color(f.BodyColor)).Background(colorNavy)
			if f.ClipFraction != nil {
				grid[horizon][col] = body.Render(glyphClipped)
			} else {
				row := clampInt(int(math.Round(f.BodyY)), 0, horizon)
				grid[row][col] = body.Render(bodyGlyph(f.Phase))
			}
		}
	}

	var b strings.Builder
	for r, cells := range grid {
		line := strings.Join(cells, "")
		if bg != nil {
			line = bg[r].Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func (m Model) renderStrip() string {
	band := make([]string, m.Width)
	marks := make([]string, m.Width)
	labels := []rune(strings.Repeat(" ", m.Width))
	for c := 0; c < m.Width; c++ {
		band[c] = " "
		marks[c] = " "
	}

	if m.HasFrame {
		f := m.Frame
		for _, bd := range f.HighlightBands {
			for _, x := range bd.X {
				for c := int(math.Ceil(x - 0.5)); float64(c)+0.5 < x+bd.Width; c++ {
					if c >= 0 && c < m.Width {
						band[c] = styleBand.Render(glyphBand)
					}
				}
			}
		}
		for _, t := range f.HourTicks {
			for _, x := range t.X {
				c := int(math.Round(x))
				if c < 0 || c >= m.Width {
					continue
				}
				if marks[c] == " " {
					marks[c] = styleTick.Render(glyphTick)
				}
				if t.Label != "" && t.Hour%3 == 0 && c+2 <= m.Width {
					copy(labels[c:], []rune(t.Label[:2]))
				}
			}
		}
		if f.RiseMarker != nil {
			placeMarker(marks, f.RiseMarker.X, glyphRise)
		}
		if f.SetMarker != nil {
			placeMarker(marks, f.SetMarker.X, glyphSet)
		}
		placeMarker(marks, f.CursorX, glyphCursor)
	}

	return strings.Join(band, "") + "\n" + strings.Join(marks, "") + "\n" + styleMuted.Render(string(labels)) + "\n"
}

func placeMarker(marks []string, xs []float64, glyph string) {
	for _, x := range xs {
		c := int(math.Round(x))
		if c >= 0 && c < len(marks) {
			marks[c] = styleMarker.Render(glyph)
		}
	}
}

func (m Model) renderStatus() string {
	if m.Err != nil {
		return styleError.Render("position unavailable: " + m.Err.Error())
	}
	if !m.HasFrame {
		return ""
	}

	f := m.Frame
	parts := []string{
		fmt.Sprintf("alt %.1f°", f.AltitudeDeg),
		fmt.Sprintf("az %.0f° %s", f.AzimuthDeg, f.Direction),
		fmt.Sprintf("%s %.0f%%", f.Phase.Name, f.Phase.Illumination*100),
	}
	if f.RiseMarker != nil {
		parts = append(parts, fmt.Sprintf("rise %s %s", f.RiseMarker.Label, f.RiseMarker.Direction))
	}
	if f.SetMarker != nil {
		parts = append(parts, fmt.Sprintf("set %s %s", f.SetMarker.Label, f.SetMarker.Direction))
	}
	return styleMuted.Render(strings.Join(parts, " · "))
}

func (m Model) renderHelp() string {
	var parts []string
	for _, k := range m.Keys.ShortHelp() {
		h := k.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return styleMuted.Render(strings.Join(parts, "  "))
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
