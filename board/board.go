// Package board implements the minesweeper board model: grid topology,
// hidden mine placement, and the open/flag state machine. It draws nothing
// and reads no input; frontends own presentation and react to the Outcome
// values returned by Open.
package board

import (
	"fmt"
	"slices"
	"strings"
)

// Coord identifies a cell by column and row, zero-based from the top left.
type Coord struct {
	X, Y int
}

// String formats the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Content is what an opened cell revealed. Mine marks a stepped-on mine;
// otherwise Count holds the number of mines among the cell's neighbors.
type Content struct {
	Mine  bool
	Count int
}

// Outcome reports the game-level effect of opening a cell.
type Outcome int

const (
	// OutcomeNone means play simply continues.
	OutcomeNone Outcome = iota

	// OutcomeLoss means the opened cell was a mine. The board stays
	// playable; the player may keep opening cells and can still win.
	OutcomeLoss

	// OutcomeWin means the opened cell was the last safe cell. Reported
	// exactly once per board.
	OutcomeWin
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeLoss:
		return "loss"
	case OutcomeWin:
		return "win"
	default:
		return "none"
	}
}

// Board holds the full state of one minesweeper game. The mine layout is
// fixed at construction and hidden from the player-facing queries until
// opened; AllMines is the explicit exception for end-of-game reveals.
type Board struct {
	columns int
	rows    int

	// neighbors maps each cell to its in-bounds neighbors (8 in the
	// interior, fewer at edges and corners). Built once at construction.
	neighbors map[Coord][]Coord

	// mines is the hidden layout.
	mines map[Coord]struct{}

	// opened records what each opened cell revealed.
	opened map[Coord]Content

	// flagged holds player flags plus the forced flags on opened mines.
	flagged map[Coord]struct{}

	// remaining counts safe cells still unopened. Zero means the board
	// is won.
	remaining int
}

// Columns returns the board width in cells.
func (b *Board) Columns() int { return b.columns }

// Rows returns the board height in cells.
func (b *Board) Rows() int { return b.rows }

// Remaining returns the number of safe cells not yet opened. The game is
// won when it reaches zero.
func (b *Board) Remaining() int { return b.remaining }

// MineCount returns the number of mines on the board.
func (b *Board) MineCount() int { return len(b.mines) }

// FlagCount returns the number of flagged cells, forced flags included.
func (b *Board) FlagCount() int { return len(b.flagged) }

// Deaths returns how many mines have been opened so far.
func (b *Board) Deaths() int {
	deaths := 0
	for xy := range b.mines {
		if _, ok := b.opened[xy]; ok {
			deaths++
		}
	}
	return deaths
}

// Contains reports whether xy lies on the board.
func (b *Board) Contains(xy Coord) bool {
	return xy.X >= 0 && xy.X < b.columns && xy.Y >= 0 && xy.Y < b.rows
}

// IsOpened reports whether the cell at xy has been opened.
func (b *Board) IsOpened(xy Coord) bool {
	_, ok := b.opened[xy]
	return ok
}

// IsFlagged reports whether the cell at xy carries a flag.
func (b *Board) IsFlagged(xy Coord) bool {
	_, ok := b.flagged[xy]
	return ok
}

// Neighbors returns the in-bounds neighbors of xy. The slice is shared
// board state; callers must not modify it.
func (b *Board) Neighbors(xy Coord) ([]Coord, error) {
	if !b.Contains(xy) {
		return nil, fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, xy, b.columns, b.rows)
	}
	return b.neighbors[xy], nil
}

// Open reveals the cell at xy and reports the consequence.
//
// Opening an already-opened cell changes nothing and returns OutcomeNone.
// Opening a mine records it as revealed, flags it so it stays marked on the
// board, and returns OutcomeLoss; play continues. Opening a safe cell stores
// its neighbor mine count, removes any flag, and returns OutcomeWin if it
// was the last safe cell, OutcomeNone otherwise.
func (b *Board) Open(xy Coord) (Outcome, error) {
	if !b.Contains(xy) {
		return OutcomeNone, fmt.Errorf("%w: open %v on %dx%d board", ErrOutOfBounds, xy, b.columns, b.rows)
	}
	if _, ok := b.opened[xy]; ok {
		return OutcomeNone, nil
	}

	if _, mined := b.mines[xy]; mined {
		b.opened[xy] = Content{Mine: true}
		b.flagged[xy] = struct{}{}
		return OutcomeLoss, nil
	}

	count := 0
	for _, n := range b.neighbors[xy] {
		if _, mined := b.mines[n]; mined {
			count++
		}
	}
	b.opened[xy] = Content{Count: count}
	delete(b.flagged, xy)

	b.remaining--
	if b.remaining == 0 {
		return OutcomeWin, nil
	}
	return OutcomeNone, nil
}

// Flag marks the cell at xy with a flag. Flagging a flagged cell is a
// no-op. The model allows flagging any cell, opened ones included; whether
// that makes sense to offer is a frontend decision.
func (b *Board) Flag(xy Coord) error {
	if !b.Contains(xy) {
		return fmt.Errorf("%w: flag %v on %dx%d board", ErrOutOfBounds, xy, b.columns, b.rows)
	}
	b.flagged[xy] = struct{}{}
	return nil
}

// Unflag removes the flag from the cell at xy. Unflagging an unflagged
// cell is a no-op.
func (b *Board) Unflag(xy Coord) error {
	if !b.Contains(xy) {
		return fmt.Errorf("%w: unflag %v on %dx%d board", ErrOutOfBounds, xy, b.columns, b.rows)
	}
	delete(b.flagged, xy)
	return nil
}

// MinesNear returns what the opened cell at xy revealed. Unopened cells
// have no content to report; asking for one returns ErrNotOpened.
func (b *Board) MinesNear(xy Coord) (Content, error) {
	if !b.Contains(xy) {
		return Content{}, fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, xy, b.columns, b.rows)
	}
	content, ok := b.opened[xy]
	if !ok {
		return Content{}, fmt.Errorf("%w: %v", ErrNotOpened, xy)
	}
	return content, nil
}

// OutcomeMessage returns the status line for an outcome: the open-count
// progress for OutcomeNone, the death notice for OutcomeLoss, and the
// victory line for OutcomeWin, which mentions the death count when the
// player did not make it through unscathed.
func (b *Board) OutcomeMessage(outcome Outcome) string {
	switch outcome {
	case OutcomeLoss:
		return "YOU DIED; game is *not* over!"
	case OutcomeWin:
		if deaths := b.Deaths(); deaths > 0 {
			return fmt.Sprintf("You won, after dying only %d times.", deaths)
		}
		return "You are ALIVE AND VICTORIOUS :-)"
	default:
		return fmt.Sprintf("%d non-mines left to open", b.remaining)
	}
}

// AllMines returns every mine coordinate in row-major order. Frontends use
// it to reveal the layout once the game is decided; during play it is up to
// them not to peek.
func (b *Board) AllMines() []Coord {
	mines := make([]Coord, 0, len(b.mines))
	for xy := range b.mines {
		mines = append(mines, xy)
	}
	slices.SortFunc(mines, func(p, q Coord) int {
		if p.Y != q.Y {
			return p.Y - q.Y
		}
		return p.X - q.X
	})
	return mines
}

// String renders the player's view of the board, one character per cell:
// '-' for hidden cells, 'F' for flags, '*' for revealed mines, and digits
// '0' through '8' for opened counts. Rows are separated by newlines.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.columns + 1) * b.rows)
	for y := range b.rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range b.columns {
			xy := Coord{x, y}
			content, opened := b.opened[xy]
			switch {
			case opened && content.Mine:
				sb.WriteByte('*')
			case opened:
				sb.WriteByte('0' + byte(content.Count))
			case b.IsFlagged(xy):
				sb.WriteByte('F')
			default:
				sb.WriteByte('-')
			}
		}
	}
	return sb.String()
}
