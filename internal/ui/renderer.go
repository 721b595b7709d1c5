package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/go-bombs/internal/config"
	"github.com/amalg/go-bombs/internal/terrain"
)

// Each cell is rendered 2 characters wide for a square-ish appearance.
const cellWidth = 2

// styles holds the lipgloss styles built from the configured theme.
type styles struct {
	empty  lipgloss.Style
	wall   lipgloss.Style
	bomb   lipgloss.Style
	flame  lipgloss.Style
	marker lipgloss.Style
	cursor lipgloss.Style
	status lipgloss.Style
	title  lipgloss.Style
}

func newStyles(theme config.Theme) styles {
	bg := lipgloss.Color(theme.Empty)
	return styles{
		empty: lipgloss.NewStyle().
			Background(bg).
			Foreground(bg),
		wall: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.Wall)).
			Foreground(lipgloss.Color(theme.Wall)),
		bomb: lipgloss.NewStyle().
			Background(bg).
			Foreground(lipgloss.Color(theme.Bomb)).
			Bold(true),
		flame: lipgloss.NewStyle().
			Background(bg).
			Foreground(lipgloss.Color(theme.Flame)).
			Bold(true),
		marker: lipgloss.NewStyle().
			Background(bg).
			Foreground(lipgloss.Color(theme.Marker)),
		cursor: lipgloss.NewStyle().
			Background(lipgloss.Color(theme.Cursor)).
			Foreground(lipgloss.Color(theme.Empty)).
			Bold(true),
		status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")),
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Flame)).
			Bold(true),
	}
}

// renderTerrain converts the terrain into a styled string, highlighting
// the cursor cell.
func renderTerrain(t *terrain.Terrain, cursor terrain.Position, st styles) string {
	var b strings.Builder
	row := make([]string, 0, t.Width())
	y := 0

	flush := func() {
		b.WriteString(strings.Join(row, ""))
		b.WriteByte('\n')
		row = row[:0]
	}

	for pos, tok := range t.All() {
		if pos.Y != y {
			flush()
			y = pos.Y
		}
		row = append(row, renderCell(tok, pos == cursor, st))
	}
	flush()
	return strings.TrimRight(b.String(), "\n")
}

func renderCell(tok terrain.Token, underCursor bool, st styles) string {
	content := cellContent(tok)
	if underCursor {
		return st.cursor.Render(content)
	}

	switch {
	case tok == terrain.Wall:
		return st.wall.Render(content)
	case tok == terrain.Bomb:
		return st.bomb.Render(content)
	case tok.IsFlame():
		return st.flame.Render(content)
	case tok == terrain.Empty:
		return st.empty.Render(content)
	default:
		// Start, goal, water, path marks and anything else from a file.
		return st.marker.Render(content)
	}
}

func cellContent(tok terrain.Token) string {
	switch tok {
	case terrain.Wall:
		return "██"
	case terrain.Empty:
		return "  "
	default:
		return tok.String() + " "
	}
}
