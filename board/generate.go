package board

import (
	"fmt"
	"math/rand/v2"
)

// New creates a columns-by-rows board and scatters mines over it at the
// given density. The mine count is floor(density * cells); density must be
// at least 0 and below 1 so at least one safe cell exists. A nil rng falls
// back to an unseeded source; pass a seeded one for reproducible layouts.
func New(columns, rows int, density float64, rng *rand.Rand) (*Board, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: board size %dx%d", ErrInvalidConfig, columns, rows)
	}
	if density < 0 || density >= 1 {
		return nil, fmt.Errorf("%w: mine density %v not in [0, 1)", ErrInvalidConfig, density)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	b := newEmpty(columns, rows)

	// Draw random cells until the target number of distinct mines is
	// placed. Duplicates are simply drawn again.
	target := int(density * float64(columns*rows))
	for len(b.mines) < target {
		xy := Coord{rng.IntN(columns), rng.IntN(rows)}
		b.mines[xy] = struct{}{}
	}
	b.remaining = columns*rows - len(b.mines)
	return b, nil
}

// NewWithMines creates a board with an explicit mine layout. Duplicate
// coordinates collapse into one mine. Unlike New it accepts any in-bounds
// layout, a fully mined board included.
func NewWithMines(columns, rows int, mines []Coord) (*Board, error) {
	if columns <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: board size %dx%d", ErrInvalidConfig, columns, rows)
	}
	b := newEmpty(columns, rows)
	for _, xy := range mines {
		if !b.Contains(xy) {
			return nil, fmt.Errorf("%w: mine %v on %dx%d board", ErrOutOfBounds, xy, columns, rows)
		}
		b.mines[xy] = struct{}{}
	}
	b.remaining = columns*rows - len(b.mines)
	return b, nil
}

// NewRand returns a source for New. A zero seed gives a different layout
// every game; any other value pins the layout for replays and debugging.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

// newEmpty builds a mineless board and precomputes the neighbor table.
func newEmpty(columns, rows int) *Board {
	b := &Board{
		columns:   columns,
		rows:      rows,
		neighbors: make(map[Coord][]Coord, columns*rows),
		mines:     make(map[Coord]struct{}),
		opened:    make(map[Coord]Content),
		flagged:   make(map[Coord]struct{}),
	}
	for y := range rows {
		for x := range columns {
			neighbors := make([]Coord, 0, 8)
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					n := Coord{x + dx, y + dy}
					if b.Contains(n) {
						neighbors = append(neighbors, n)
					}
				}
			}
			b.neighbors[Coord{x, y}] = neighbors
		}
	}
	return b
}
