package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/clock"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
)

// lines taken by everything but the board
const chromeHeight = 4

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type Model struct {
	session       *session.Session
	log           logrus.FieldLogger
	KeyMap        KeyMap
	row, col      int
	top, left     int // first visible cell
	width, height int // terminal size, 0 until known
}

func New(s *session.Session, log logrus.FieldLogger) Model {
	return Model{session: s, log: log, KeyMap: Keys}
}

// Run blocks until the player quits or ctx is done.
func Run(ctx context.Context, s *session.Session, log logrus.FieldLogger) error {
	p := tea.NewProgram(New(s, log), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Cursor() (row, col int) {
	return m.row, m.col
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, tick()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.scroll()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	height, length := m.session.Game().Dimensions()

	switch {
	case key.Matches(msg, m.KeyMap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.KeyMap.Up):
		m.row = max(0, m.row-1)
	case key.Matches(msg, m.KeyMap.Down):
		m.row = min(height-1, m.row+1)
	case key.Matches(msg, m.KeyMap.Left):
		m.col = max(0, m.col-1)
	case key.Matches(msg, m.KeyMap.Right):
		m.col = min(length-1, m.col+1)

	case key.Matches(msg, m.KeyMap.Reveal):
		m.session.Reveal(m.row, m.col)
	case key.Matches(msg, m.KeyMap.Flag):
		m.session.Flag(m.row, m.col)
	case key.Matches(msg, m.KeyMap.NewGame):
		m.session.NewGame()

	case key.Matches(msg, m.KeyMap.Beginner):
		m.changePreset(mines.Beginner)
	case key.Matches(msg, m.KeyMap.Intermediate):
		m.changePreset(mines.Intermediate)
	case key.Matches(msg, m.KeyMap.Expert):
		m.changePreset(mines.Expert)
	}

	m.scroll()
	return m, nil
}

func (m *Model) changePreset(p mines.Preset) {
	if err := m.session.ChangePreset(p); err != nil {
		m.log.WithError(err).Error("unable to change preset")
		return
	}
	m.row, m.col, m.top, m.left = 0, 0, 0, 0
}

func (m Model) visible() (rows, cols int) {
	rows, cols = m.session.Game().Dimensions()
	if m.height > 0 {
		rows = min(rows, max(1, m.height-chromeHeight))
	}
	if m.width > 0 {
		cols = min(cols, max(1, m.width/2))
	}
	return
}

// scroll moves the visible window so that the cursor stays on screen.
func (m *Model) scroll() {
	rows, cols := m.visible()
	switch {
	case m.row < m.top:
		m.top = m.row
	case m.row >= m.top+rows:
		m.top = m.row - rows + 1
	}
	switch {
	case m.col < m.left:
		m.left = m.col
	case m.col >= m.left+cols:
		m.left = m.col - cols + 1
	}
}

func (m Model) View() string {
	var b strings.Builder

	game := m.session.Game()
	header := fmt.Sprintf("%s  %s", m.session.Message(), clock.Format(m.session.Elapsed()))
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n\n")

	rows, cols := m.visible()
	for row := m.top; row < m.top+rows; row++ {
		for col := m.left; col < m.left+cols; col++ {
			style := tileStyle(game.Tile(row, col))
			if row == m.row && col == m.col {
				style = style.Reverse(true)
			}
			b.WriteString(style.Render(tileText(game.Tile(row, col))))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := make([]string, 0, len(m.KeyMap.help()))
	for _, k := range m.KeyMap.help() {
		h := k.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString(helpStyle.Render(strings.Join(help, " • ")))
	return b.String()
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	unknownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	flagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	mineStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	countColors = [...]lipgloss.Color{
		"", "33", "34", "160", "19", "88", "37", "0", "244",
	}
)

func tileStyle(t mines.Tile) lipgloss.Style {
	switch t {
	case mines.Unknown:
		return unknownStyle
	case mines.Empty:
		return emptyStyle
	case mines.Flagged:
		return flagStyle
	case mines.Mine:
		return mineStyle
	}
	n, _ := t.Count()
	return lipgloss.NewStyle().Foreground(countColors[n]).Bold(true)
}

func tileText(t mines.Tile) string {
	switch t {
	case mines.Unknown:
		return "■ "
	case mines.Empty:
		return "· "
	default:
		return t.String() + " "
	}
}
