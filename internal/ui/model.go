// Package ui is the interactive terrain sandbox: move a cursor (or
// click), drop bombs and walls, and set off detonations.
package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/amalg/go-bombs/internal/config"
	"github.com/amalg/go-bombs/internal/game"
	"github.com/amalg/go-bombs/internal/terrain"
)

// flameOutMsg clears lingering flames. The sequence number ties it to the
// detonation that scheduled it, so a stale timer never wipes fresh flames.
type flameOutMsg struct{ seq int }

// Model is the Bubbletea model for the sandbox.
type Model struct {
	terrain  *terrain.Terrain
	cfg      config.Config
	st       styles
	keys     KeyMap
	help     help.Model
	cursor   terrain.Position
	savePath string
	status   string
	flameSeq int
	quitting bool
}

// NewModel creates a sandbox over the given terrain. savePath is where
// the Save binding writes the current state.
func NewModel(t *terrain.Terrain, savePath string, cfg config.Config) Model {
	return Model{
		terrain:  t,
		cfg:      cfg,
		st:       newStyles(cfg.Theme),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		savePath: savePath,
		status:   "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			pos := terrain.Position{X: msg.X / cellWidth, Y: msg.Y}
			if m.terrain.IsValid(pos) {
				m.cursor = pos
				return m, m.detonate(pos)
			}
		}
		return m, nil

	case flameOutMsg:
		if msg.seq == m.flameSeq {
			m.clearFlames()
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(terrain.DirUp)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(terrain.DirDown)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(terrain.DirLeft)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(terrain.DirRight)

	case key.Matches(msg, m.keys.Detonate):
		return m, m.detonate(m.cursor)

	case key.Matches(msg, m.keys.PlaceBomb):
		m.setCell(m.cursor, terrain.Bomb)
	case key.Matches(msg, m.keys.PlaceWall):
		m.setCell(m.cursor, terrain.Wall)
	case key.Matches(msg, m.keys.Erase):
		m.setCell(m.cursor, terrain.Empty)

	case key.Matches(msg, m.keys.ClearFlames):
		m.clearFlames()
		m.status = "flames cleared"

	case key.Matches(msg, m.keys.Save):
		if err := terrain.Save(m.terrain, m.savePath); err != nil {
			m.status = err.Error()
		} else {
			m.status = "saved " + m.savePath
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m *Model) moveCursor(d terrain.Direction) {
	next, err := m.cursor.Step(d)
	if err != nil || !m.terrain.IsValid(next) {
		return
	}
	m.cursor = next
}

// detonate clears any previous flames, runs the detonation engine at pos
// and commits its change-set. When the configured linger is non-zero a
// timer is returned to burn the flames out.
func (m *Model) detonate(pos terrain.Position) tea.Cmd {
	m.clearFlames()

	changes := game.Detonate(pos, m.terrain)
	if len(changes) == 0 {
		m.status = fmt.Sprintf("nothing to detonate at %v", pos)
		return nil
	}
	if err := m.terrain.Apply(changes); err != nil {
		m.status = err.Error()
		return nil
	}
	m.status = fmt.Sprintf("boom at %v — %d cells changed", pos, len(changes))

	linger := m.cfg.FlameLinger()
	if linger <= 0 {
		return nil
	}
	m.flameSeq++
	seq := m.flameSeq
	return tea.Tick(linger, func(time.Time) tea.Msg {
		return flameOutMsg{seq: seq}
	})
}

func (m *Model) setCell(pos terrain.Position, tok terrain.Token) {
	m.clearFlames()
	if err := m.terrain.Apply(map[terrain.Position]terrain.Token{pos: tok}); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("placed %q at %v", tok.String(), pos)
}

// clearFlames removes every flame shape from the terrain in one batch.
func (m *Model) clearFlames() {
	changes := make(map[terrain.Position]terrain.Token)
	for pos, tok := range m.terrain.All() {
		if tok.IsFlame() {
			changes[pos] = terrain.Empty
		}
	}
	if len(changes) > 0 {
		_ = m.terrain.Apply(changes)
	}
}

func (m Model) View() string {
	if m.quitting {
		return "Goodbye! 💥\n"
	}

	board := renderTerrain(m.terrain, m.cursor, m.st)
	status := m.st.status.Render(fmt.Sprintf("cursor %v · %s", m.cursor, m.status))
	return board + "\n" + status + "\n" + m.help.View(m.keys) + "\n"
}
