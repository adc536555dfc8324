package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"minesweeper/board"
)

// keyMap binds the terminal controls
type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Open  key.Binding
	Flag  key.Binding
	New   key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "move up")),
	Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "move down")),
	Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("left/h", "move left")),
	Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("right/l", "move right")),
	Open:  key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "open")),
	Flag:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "flag")),
	New:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new board")),
	Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

var (
	styleMessage = lipgloss.NewStyle().Bold(true)
	styleInfo    = lipgloss.NewStyle().Faint(true)
	styleHidden  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleFlag    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	styleMine    = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")).Bold(true)
	styleCursor  = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("220")).Bold(true)
	styleVictory = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

// numberStyles colors opened counts the classic way; counts without an
// entry render unstyled.
var numberStyles = map[int]lipgloss.Style{
	1: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	2: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	3: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	4: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	5: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
}

// model is the bubbletea state for one terminal session
type model struct {
	board   *board.Board
	columns int
	rows    int
	density float64
	seed    int64

	cursor  board.Coord
	keys    keyMap
	message string
	won     bool

	width  int
	height int
}

func newModel(columns, rows int, density float64, seed int64) (model, error) {
	b, err := board.New(columns, rows, density, board.NewRand(seed))
	if err != nil {
		return model{}, err
	}

	logrus.WithFields(logrus.Fields{
		"columns": columns,
		"rows":    rows,
		"mines":   b.MineCount(),
		"seed":    seed,
	}).Info("board ready")

	return model{
		board:   b,
		columns: columns,
		rows:    rows,
		density: density,
		seed:    seed,
		keys:    keys,
		message: b.OutcomeMessage(board.OutcomeNone),
	}, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.New):
			m.reset()

		case key.Matches(msg, m.keys.Up):
			m.cursor.Y = (m.cursor.Y - 1 + m.rows) % m.rows

		case key.Matches(msg, m.keys.Down):
			m.cursor.Y = (m.cursor.Y + 1) % m.rows

		case key.Matches(msg, m.keys.Left):
			m.cursor.X = (m.cursor.X - 1 + m.columns) % m.columns

		case key.Matches(msg, m.keys.Right):
			m.cursor.X = (m.cursor.X + 1) % m.columns

		case key.Matches(msg, m.keys.Open):
			m.openCursor()

		case key.Matches(msg, m.keys.Flag):
			m.toggleFlag()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// reset deals a fresh board and clears the session state around it
func (m *model) reset() {
	b, err := board.New(m.columns, m.rows, m.density, board.NewRand(m.seed))
	if err != nil {
		// Can't happen for a config that built the first board.
		logrus.WithError(err).Error("reset failed")
		return
	}
	m.board = b
	m.won = false
	m.cursor = board.Coord{}
	m.message = b.OutcomeMessage(board.OutcomeNone)
	logrus.WithField("mines", b.MineCount()).Info("new board dealt")
}

// openCursor opens the cell under the cursor. A won board ignores it.
func (m *model) openCursor() {
	if m.won {
		return
	}
	outcome, err := m.board.Open(m.cursor)
	if err != nil {
		logrus.WithError(err).WithField("cell", m.cursor).Error("open failed")
		return
	}
	if outcome == board.OutcomeWin {
		m.won = true
	}
	logrus.WithFields(logrus.Fields{
		"cell":    m.cursor,
		"outcome": outcome,
	}).Debug("opened")
	m.message = m.board.OutcomeMessage(outcome)
}

// toggleFlag flips the flag under the cursor. Opened cells take no flags,
// which also keeps the forced flag on a revealed mine in place.
func (m *model) toggleFlag() {
	if m.won || m.board.IsOpened(m.cursor) {
		return
	}
	var err error
	if m.board.IsFlagged(m.cursor) {
		err = m.board.Unflag(m.cursor)
	} else {
		err = m.board.Flag(m.cursor)
	}
	if err != nil {
		logrus.WithError(err).WithField("cell", m.cursor).Error("flag failed")
		return
	}
	m.message = m.board.OutcomeMessage(board.OutcomeNone)
}

func (m model) View() string {
	var grid strings.Builder
	for y := range m.rows {
		if y > 0 {
			grid.WriteByte('\n')
		}
		for x := range m.columns {
			grid.WriteString(m.renderCell(board.Coord{X: x, Y: y}))
		}
	}

	counters := fmt.Sprintf("mines %d  flags %d  safe left %d  deaths %d",
		m.board.MineCount(), m.board.FlagCount(), m.board.Remaining(), m.board.Deaths())

	view := lipgloss.JoinVertical(lipgloss.Left,
		styleMessage.Render(m.message),
		"",
		grid.String(),
		"",
		styleInfo.Render(counters),
		styleInfo.Render("arrows/hjkl move | space open | f flag | n new | q quit"),
	)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// renderCell returns the two-column face of one cell
func (m model) renderCell(xy board.Coord) string {
	face := "."
	style := styleHidden

	switch {
	case m.board.IsOpened(xy):
		content, err := m.board.MinesNear(xy)
		switch {
		case err != nil:
			// Unreachable for an opened cell.
		case content.Mine:
			face, style = "*", styleMine
		case content.Count > 0:
			face = strconv.Itoa(content.Count)
			style = numberStyles[content.Count]
		default:
			face = " "
		}

	case m.board.IsFlagged(xy):
		face, style = "F", styleFlag
		if m.won {
			style = styleVictory
		}

	case m.won:
		// The unopened frontier turns green once the board is cleared.
		style = styleVictory
	}

	if xy == m.cursor && !m.won {
		style = styleCursor
	}
	return style.Render(face) + " "
}
