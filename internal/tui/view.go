package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/termrain/termrain/internal/render"
	"github.com/termrain/termrain/internal/theme"
)

// View implements tea.Model. The rain renders from the draft parameters, so
// overlay edits preview live before they are committed.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}

	params := m.field.Params()
	styles := newZoneStyles(params.Colors)

	var b strings.Builder
	b.WriteString(m.renderRain(styles))
	if m.showSettings {
		return m.overlayPanel(params)
	}
	b.WriteString("\n")
	b.WriteString(m.statusLine(params))
	return b.String()
}

type zoneStyles struct {
	head   lipgloss.Style
	bright lipgloss.Style
	trail  lipgloss.Style
	dim    lipgloss.Style
}

func newZoneStyles(c theme.Colors) zoneStyles {
	return zoneStyles{
		head:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.HexRGB(c.Head))).Bold(true),
		bright: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.HexRGB(c.BrightTrail))),
		trail:  lipgloss.NewStyle().Foreground(lipgloss.Color(theme.HexRGB(c.Trail))),
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.HexRGB(c.Dim))),
	}
}

func (m *Model) renderRain(styles zoneStyles) string {
	width, height := m.field.Size()
	rows := make([]string, 0, height)
	for y := 0; y < height; y++ {
		var row strings.Builder
		// Runs of the same zone share one style call; styling every cell
		// individually floods the terminal with escape sequences.
		runZone := render.ZoneEmpty
		var run []rune
		flush := func() {
			if len(run) == 0 {
				return
			}
			text := string(run)
			switch runZone {
			case render.ZoneHead:
				row.WriteString(styles.head.Render(text))
			case render.ZoneBrightTrail:
				row.WriteString(styles.bright.Render(text))
			case render.ZoneTrail:
				row.WriteString(styles.trail.Render(text))
			case render.ZoneDim:
				row.WriteString(styles.dim.Render(text))
			default:
				row.WriteString(text)
			}
			run = run[:0]
		}
		for x := 0; x < width; x++ {
			cell := m.field.Cell(x, y)
			glyph := cell.Glyph
			if cell.Zone == render.ZoneEmpty {
				glyph = ' '
			}
			if cell.Zone != runZone {
				flush()
				runZone = cell.Zone
			}
			run = append(run, glyph)
		}
		flush()
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

// statusLine renders the bottom bar: a transient status message when one is
// pending, otherwise the short help (always, when hints are on).
func (m *Model) statusLine(params render.Params) string {
	if m.status != "" {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.HexRGB(params.Colors.UIAccent)))
		if m.statusIsErr {
			style = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		}
		return style.Render(m.status)
	}
	if !params.AlwaysShowHints && !m.showSettings {
		return ""
	}
	return m.help.View(m.keys)
}

// overlayPanel draws the settings panel centered in the window. The rain
// keeps stepping underneath; it just is not drawn while the panel is open.
func (m *Model) overlayPanel(params render.Params) string {
	accent := lipgloss.Color(theme.HexRGB(params.Colors.UIAccent))

	titleStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)
	selectedStyle := lipgloss.NewStyle().
		Foreground(accent).
		Background(lipgloss.Color(theme.HexRGB(params.Colors.UISelection)))
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Background(lipgloss.Color(theme.HexRGB(params.Colors.UIOverlayBg))).
		Padding(0, 1)

	title := "Settings"
	if m.editor.Dirty() {
		title += " *"
	}

	draft := m.editor.Draft()
	lines := []string{titleStyle.Render(title), ""}

	// Keep the selected row visible when the list is taller than the panel.
	maxRows := m.height - 8
	if maxRows < 5 {
		maxRows = 5
	}
	start := 0
	if m.cursor >= maxRows {
		start = m.cursor - maxRows + 1
	}
	end := start + maxRows
	if end > len(m.controls) {
		end = len(m.controls)
	}
	for i := start; i < end; i++ {
		row := controlRow(m.controls[i], draft, i == m.cursor)
		if i == m.cursor {
			row = selectedStyle.Render(row)
		}
		lines = append(lines, row)
	}

	lines = append(lines, "", m.help.View(m.keys))
	if m.status != "" {
		lines = append(lines, m.statusLine(params))
	}

	panel := panelStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel,
		lipgloss.WithWhitespaceChars(" "))
}
