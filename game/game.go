package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"minesweeper/board"
)

var log = logrus.StandardLogger()

// Game represents one minesweeper session: the current board plus the
// presentation state around it
type Game struct {
	config   Config
	board    *board.Board
	renderer *Renderer

	// won latches once the last safe cell is opened; clicks stop reaching
	// the board until the next restart
	won bool

	// message is the status line shown on the panel and as window title
	message string

	// round counts boards played this session, restarts included
	round int
}

// NewGame creates a new game instance with a fresh board
func NewGame(config Config) (*Game, error) {
	b, err := board.New(config.Columns, config.Rows, config.MineDensity, board.NewRand(config.Seed))
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	game := &Game{
		config:   config,
		board:    b,
		renderer: NewRenderer(config),
		round:    1,
	}
	game.setMessage(b.OutcomeMessage(board.OutcomeNone))

	log.WithFields(logrus.Fields{
		"columns": config.Columns,
		"rows":    config.Rows,
		"mines":   b.MineCount(),
		"seed":    config.Seed,
	}).Info("board ready")

	return game, nil
}

// Board exposes the underlying board, mostly for tests
func (g *Game) Board() *board.Board {
	return g.board
}

// restart throws away the current board and deals a fresh one. The debug
// state is global and survives on purpose.
func (g *Game) restart() {
	b, err := board.New(g.config.Columns, g.config.Rows, g.config.MineDensity, board.NewRand(g.config.Seed))
	if err != nil {
		// Can't happen for a config that built the first board.
		log.WithError(err).Error("restart failed")
		return
	}
	g.board = b
	g.won = false
	g.round++
	g.setMessage(b.OutcomeMessage(board.OutcomeNone))

	log.WithFields(logrus.Fields{
		"round": g.round,
		"mines": b.MineCount(),
	}).Info("new board dealt")
}

// setMessage updates the status line and mirrors it into the window title
func (g *Game) setMessage(message string) {
	g.message = message
	ebiten.SetWindowTitle("Minesweeper - " + message)
}

// handleOutcome reacts to the result of an open: logging, win latching,
// and the status message
func (g *Game) handleOutcome(outcome board.Outcome) {
	switch outcome {
	case board.OutcomeLoss:
		log.WithFields(logrus.Fields{
			"deaths":    g.board.Deaths(),
			"remaining": g.board.Remaining(),
		}).Info("stepped on a mine")
	case board.OutcomeWin:
		g.won = true
		log.WithFields(logrus.Fields{
			"deaths": g.board.Deaths(),
			"round":  g.round,
		}).Info("board cleared")
	}
	g.setMessage(g.board.OutcomeMessage(outcome))
}

// Update handles one tick of input
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.restart()
	}

	// Handle debug key presses (F1 toggles grid display)
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		debugState := GetDebugState()
		debugState.ShowGrid = !debugState.ShowGrid
	}

	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.openAt(mx, my)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.toggleFlagAt(mx, my)
	}

	return nil
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.board, g.won, g.message)
	if GetDebugState().ShowGrid {
		g.renderer.RenderDebug(screen, g.board, g.round)
	}
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth(), g.config.ScreenHeight()
}
