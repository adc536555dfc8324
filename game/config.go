package game

import "minesweeper/board"

// Config holds board and window configuration
type Config struct {
	// Columns is the board width in cells
	Columns int

	// Rows is the board height in cells
	Rows int

	// MineDensity is the fraction of cells that hold a mine, in [0, 1)
	MineDensity float64

	// Seed picks the mine layout; zero means a random layout per game
	Seed int64

	// CellSize is the edge length of one cell in pixels
	CellSize int

	// PanelHeight is the height of the status panel above the board in pixels
	PanelHeight int

	// Padding is the margin around the board in pixels
	Padding int
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Columns:     16,
		Rows:        16,
		MineDensity: 0.2,
		Seed:        0,
		CellSize:    24,
		PanelHeight: 56,
		Padding:     12,
	}
}

// ScreenWidth returns the window width in pixels
func (c Config) ScreenWidth() int {
	return c.Columns*c.CellSize + c.Padding*2
}

// ScreenHeight returns the window height in pixels
func (c Config) ScreenHeight() int {
	return c.PanelHeight + c.Rows*c.CellSize + c.Padding*2
}

// BoardOrigin returns the pixel position of the board's top-left corner
func (c Config) BoardOrigin() (int, int) {
	return c.Padding, c.PanelHeight + c.Padding
}

// CellOrigin returns the pixel position of the cell's top-left corner
func (c Config) CellOrigin(xy board.Coord) (int, int) {
	bx, by := c.BoardOrigin()
	return bx + xy.X*c.CellSize, by + xy.Y*c.CellSize
}

// CellCenter returns the pixel position of the cell's midpoint
func (c Config) CellCenter(xy board.Coord) (float32, float32) {
	px, py := c.CellOrigin(xy)
	return float32(px) + float32(c.CellSize)/2, float32(py) + float32(c.CellSize)/2
}

// CellAt maps a pixel position to the cell under it. The second return is
// false for positions on the panel, in the padding, or outside the window.
func (c Config) CellAt(mx, my int) (board.Coord, bool) {
	bx, by := c.BoardOrigin()
	if mx < bx || my < by {
		return board.Coord{}, false
	}
	xy := board.Coord{X: (mx - bx) / c.CellSize, Y: (my - by) / c.CellSize}
	if xy.X >= c.Columns || xy.Y >= c.Rows {
		return board.Coord{}, false
	}
	return xy, true
}
