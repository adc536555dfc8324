package game

import (
	"github.com/sirupsen/logrus"

	"minesweeper/board"
)

// openAt opens the cell under the given pixel position. Clicks on the
// panel or padding do nothing; a won board ignores clicks entirely.
func (g *Game) openAt(mx, my int) {
	if g.won {
		return
	}
	xy, ok := g.config.CellAt(mx, my)
	if !ok {
		return
	}
	outcome, err := g.board.Open(xy)
	if err != nil {
		log.WithError(err).WithField("cell", xy).Error("open failed")
		return
	}
	log.WithFields(logrus.Fields{
		"cell":    xy,
		"outcome": outcome,
	}).Debug("opened")
	g.handleOutcome(outcome)
}

// toggleFlagAt flags or unflags the cell under the given pixel position
func (g *Game) toggleFlagAt(mx, my int) {
	if g.won {
		return
	}
	xy, ok := g.config.CellAt(mx, my)
	if !ok {
		return
	}
	if err := toggleFlag(g.board, xy); err != nil {
		log.WithError(err).WithField("cell", xy).Error("flag failed")
		return
	}
	g.setMessage(g.board.OutcomeMessage(board.OutcomeNone))
}

// toggleFlag flips the flag on an unopened cell. Opened cells take no
// flags, which also keeps the forced flag on a revealed mine in place.
func toggleFlag(b *board.Board, xy board.Coord) error {
	if b.IsOpened(xy) {
		return nil
	}
	if b.IsFlagged(xy) {
		return b.Unflag(xy)
	}
	return b.Flag(xy)
}
