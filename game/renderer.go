package game

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"minesweeper/board"
)

var (
	colorBackground = color.RGBA{192, 192, 192, 255}
	colorLight      = color.RGBA{255, 255, 255, 255}
	colorDark       = color.RGBA{128, 128, 128, 255}
	colorOpened     = color.RGBA{255, 255, 255, 255}
	colorGrid       = color.RGBA{155, 155, 155, 255}
	colorFlagBG     = color.RGBA{255, 255, 0, 255}
	colorMineBG     = color.RGBA{210, 40, 40, 255}
	colorVictory    = color.RGBA{0, 128, 0, 255}
	colorText       = color.RGBA{15, 15, 15, 255}
	colorDebug      = color.RGBA{32, 128, 255, 255}
)

// numberColors is the classic per-count palette: blue, dark green, red,
// dark blue, dark red. Counts above five fall back to black.
var numberColors = map[int]color.RGBA{
	1: {0, 0, 255, 255},
	2: {0, 100, 0, 255},
	3: {255, 0, 0, 255},
	4: {0, 0, 139, 255},
	5: {139, 0, 0, 255},
}

// numberColor returns the text color for an opened cell's count
func numberColor(count int) color.RGBA {
	if clr, ok := numberColors[count]; ok {
		return clr
	}
	return color.RGBA{0, 0, 0, 255}
}

// Renderer draws the board and the status panel
type Renderer struct {
	config Config
	face   font.Face
}

// NewRenderer creates a new renderer
func NewRenderer(config Config) *Renderer {
	return &Renderer{
		config: config,
		face:   basicfont.Face7x13,
	}
}

// Render draws the full frame: status panel, board frame, and every cell
func (r *Renderer) Render(screen *ebiten.Image, b *board.Board, won bool, message string) {
	screen.Fill(colorBackground)

	width := r.config.ScreenWidth()

	// Status panel with the message and the counters line.
	drawRaisedRect(screen, r.config.Padding-2, 8, width-(r.config.Padding-2)*2, r.config.PanelHeight-14, colorBackground)
	text.Draw(screen, message, r.face, r.config.Padding+6, 26, colorText)
	counters := fmt.Sprintf("mines %d   flags %d   safe left %d   deaths %d",
		b.MineCount(), b.FlagCount(), b.Remaining(), b.Deaths())
	text.Draw(screen, counters, r.face, r.config.Padding+6, 44, colorDark)

	// Board well.
	bx, by := r.config.BoardOrigin()
	bw := b.Columns() * r.config.CellSize
	bh := b.Rows() * r.config.CellSize
	drawSunkenRect(screen, bx-2, by-2, bw+4, bh+4, colorBackground)

	for y := range b.Rows() {
		for x := range b.Columns() {
			r.drawCell(screen, b, board.Coord{X: x, Y: y}, won)
		}
	}
}

// drawCell draws one cell in its current state
func (r *Renderer) drawCell(screen *ebiten.Image, b *board.Board, xy board.Coord, won bool) {
	px, py := r.config.CellOrigin(xy)
	size := r.config.CellSize

	if b.IsOpened(xy) {
		content, err := b.MinesNear(xy)
		if err != nil {
			return
		}

		if content.Mine {
			// A stepped-on mine stays on show for the rest of the game.
			fillRect(screen, px, py, size, size, colorMineBG)
			strokeRect(screen, px, py, size, size, colorGrid)
			cx, cy := r.config.CellCenter(xy)
			vector.DrawFilledCircle(screen, cx, cy, float32(size)/4, color.RGBA{0, 0, 0, 255}, false)
			return
		}

		fillRect(screen, px, py, size, size, colorOpened)
		strokeRect(screen, px, py, size, size, colorGrid)
		if content.Count > 0 {
			r.drawTextCentered(screen, fmt.Sprintf("%d", content.Count), px, py+size/2+5, size, numberColor(content.Count))
		}
		return
	}

	// Unopened. After a win the whole frontier turns green; during play a
	// flag sits on a yellow cell.
	face := colorBackground
	switch {
	case won:
		face = colorVictory
	case b.IsFlagged(xy):
		face = colorFlagBG
	}
	drawRaisedRect(screen, px, py, size, size, face)

	if b.IsFlagged(xy) {
		r.drawFlag(screen, px, py, won)
	}
}

// drawFlag draws a small flag: pole, base, and cloth. The cloth is black
// during play and white once the board is won.
func (r *Renderer) drawFlag(screen *ebiten.Image, px, py int, won bool) {
	size := r.config.CellSize
	cloth := color.RGBA{15, 15, 15, 255}
	if won {
		cloth = color.RGBA{255, 255, 255, 255}
	}

	poleX := px + size/2
	poleTop := py + size/4
	poleLen := size / 2
	fillRect(screen, poleX, poleTop, 2, poleLen, colorDark)
	fillRect(screen, px+size/4, poleTop+poleLen-2, size/2, 2, colorDark)
	fillRect(screen, poleX-size/4, poleTop, size/4, size/4, cloth)
}

// RenderDebug overlays the cell grid, the board coordinates, the mine
// layout, and a state line for development
func (r *Renderer) RenderDebug(screen *ebiten.Image, b *board.Board, round int) {
	for y := range b.Rows() {
		for x := range b.Columns() {
			px, py := r.config.CellOrigin(board.Coord{X: x, Y: y})
			strokeRect(screen, px, py, r.config.CellSize, r.config.CellSize, colorDebug)
		}
	}

	// Column indices above the board, row indices beside it.
	bx, by := r.config.BoardOrigin()
	for x := range b.Columns() {
		px, _ := r.config.CellOrigin(board.Coord{X: x})
		ebitenutil.DebugPrintAt(screen, strconv.Itoa(x), px+2, by-16)
	}
	for y := range b.Rows() {
		_, py := r.config.CellOrigin(board.Coord{Y: y})
		ebitenutil.DebugPrintAt(screen, strconv.Itoa(y), bx-12, py+4)
	}

	// Mine markers reveal the hidden layout.
	for _, xy := range b.AllMines() {
		cx, cy := r.config.CellCenter(xy)
		vector.DrawFilledCircle(screen, cx, cy, float32(r.config.CellSize)/6, colorDebug, false)
	}

	state := fmt.Sprintf("round %d  safe left %d  flags %d  deaths %d", round, b.Remaining(), b.FlagCount(), b.Deaths())
	if xy, ok := r.config.CellAt(ebiten.CursorPosition()); ok {
		state += "  cursor " + xy.String()
	}
	ebitenutil.DebugPrintAt(screen, state, r.config.Padding, r.config.ScreenHeight()-18)
}

// drawTextCentered draws s horizontally centered in a box of width w with
// its baseline at y
func (r *Renderer) drawTextCentered(screen *ebiten.Image, s string, x, y, w int, clr color.Color) {
	bounds := text.BoundString(r.face, s)
	text.Draw(screen, s, r.face, x+(w-bounds.Dx())/2, y, clr)
}

// drawRaisedRect fills a rectangle and bevels it so it appears raised
func drawRaisedRect(screen *ebiten.Image, x, y, w, h int, face color.Color) {
	fillRect(screen, x, y, w, h, face)
	vector.StrokeLine(screen, float32(x), float32(y), float32(x+w), float32(y), 2, colorLight, false)
	vector.StrokeLine(screen, float32(x), float32(y), float32(x), float32(y+h), 2, colorLight, false)
	vector.StrokeLine(screen, float32(x+w), float32(y), float32(x+w), float32(y+h), 2, colorDark, false)
	vector.StrokeLine(screen, float32(x), float32(y+h), float32(x+w), float32(y+h), 2, colorDark, false)
}

// drawSunkenRect fills a rectangle and bevels it so it appears recessed
func drawSunkenRect(screen *ebiten.Image, x, y, w, h int, face color.Color) {
	fillRect(screen, x, y, w, h, face)
	vector.StrokeLine(screen, float32(x), float32(y), float32(x+w), float32(y), 2, colorDark, false)
	vector.StrokeLine(screen, float32(x), float32(y), float32(x), float32(y+h), 2, colorDark, false)
	vector.StrokeLine(screen, float32(x+w), float32(y), float32(x+w), float32(y+h), 2, colorLight, false)
	vector.StrokeLine(screen, float32(x), float32(y+h), float32(x+w), float32(y+h), 2, colorLight, false)
}

func fillRect(screen *ebiten.Image, x, y, w, h int, clr color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func strokeRect(screen *ebiten.Image, x, y, w, h int, clr color.Color) {
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, clr, false)
}
