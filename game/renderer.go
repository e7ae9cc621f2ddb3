package game

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"

	"github.com/dimaq12/minesweeper/models"
)

type sprite struct {
	view    models.CellView
	covered bool
	flagged bool
}

// Renderer draws the board into a terminal. Each terminal cell counts as one
// pixel of board space.
type Renderer struct {
	boardView *tview.Box
	status    *tview.TextView
	layout    *tview.Flex

	next    models.Handle
	tiles   map[models.Handle]*sprite
	covers  map[models.Handle]models.Handle
	byCoord map[models.Coordinate]models.Handle

	numbers [9]tcell.Style
	cover   tcell.Style
	flag    tcell.Style
	bomb    tcell.Style
	banner  tcell.Style
}

func NewRenderer() *Renderer {
	r := &Renderer{
		boardView: tview.NewBox(),
		status:    tview.NewTextView(),
		cover:     tcell.StyleDefault.Background(tcell.ColorGray).Foreground(tcell.ColorWhite),
		flag:      tcell.StyleDefault.Background(tcell.ColorGray).Foreground(tcell.ColorRed).Bold(true),
		bomb:      tcell.StyleDefault.Background(tcell.ColorRed).Foreground(tcell.ColorBlack).Bold(true),
		banner:    tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorYellow).Bold(true),
	}
	r.numbers = numberPalette()
	r.boardView.SetBorder(true).SetTitle(" minesweeper ")
	r.status.SetTextAlign(tview.AlignCenter)
	r.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(r.boardView, 0, 1, true).
		AddItem(r.status, 1, 0, false)
	r.Clear()
	return r
}

// numberPalette ramps adjacency counts from cool blue to hot red.
func numberPalette() [9]tcell.Style {
	var styles [9]tcell.Style
	from := colorful.Hsv(210, 0.7, 1)
	to := colorful.Hsv(0, 0.9, 1)
	styles[0] = tcell.StyleDefault.Background(tcell.ColorBlack)
	for n := 1; n <= 8; n++ {
		c := from.BlendHcl(to, float64(n-1)/7).Clamped()
		red, green, blue := c.RGB255()
		fg := tcell.NewRGBColor(int32(red), int32(green), int32(blue))
		styles[n] = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(fg).Bold(true)
	}
	return styles
}

func (r *Renderer) Root() tview.Primitive {
	return r.layout
}

func (r *Renderer) BoardView() *tview.Box {
	return r.boardView
}

func (r *Renderer) SetStatus(text string) {
	r.status.SetText(text)
}

func (r *Renderer) Clear() {
	r.tiles = make(map[models.Handle]*sprite)
	r.covers = make(map[models.Handle]models.Handle)
	r.byCoord = make(map[models.Coordinate]models.Handle)
}

func (r *Renderer) SpawnTile(view models.CellView) (models.Handle, models.Handle) {
	r.next++
	tile := r.next
	r.next++
	cover := r.next
	r.tiles[tile] = &sprite{view: view, covered: view.Top != models.Uncovered, flagged: view.Top == models.Flag}
	r.covers[cover] = tile
	r.byCoord[view.Coord] = tile
	return tile, cover
}

func (r *Renderer) Layout(tile models.Handle, view models.CellView) {
	if s, ok := r.tiles[tile]; ok {
		s.view = view
	}
}

func (r *Renderer) Reveal(tile models.Handle) {
	if s, ok := r.tiles[tile]; ok {
		s.covered = false
		s.flagged = false
	}
}

func (r *Renderer) SetFlag(cover models.Handle, flagged bool) {
	if s, ok := r.tiles[r.covers[cover]]; ok {
		s.flagged = flagged
	}
}

// DrawBoard paints the board into the rectangle at (x, y) of size w x h.
// Every terminal cell is mapped back to a tile with the same cursor mapping
// used for clicks, so what is drawn is exactly what can be hit. The glyph of
// a tile goes into its cell nearest to the tile center.
func (r *Renderer) DrawBoard(screen tcell.Screen, board *models.Board, x, y, w, h int, selected *models.Coordinate) {
	if board == nil {
		return
	}
	type anchor struct {
		col, row int
		dist     float32
		style    tcell.Style
	}
	anchors := make(map[models.Coordinate]anchor)
	viewport := models.Vec2{X: float32(w), Y: float32(h)}

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			cursor := cellCenter(col, row)
			c, ok := board.CursorPosition(viewport, cursor)
			if !ok {
				continue
			}
			s, ok := r.tiles[r.byCoord[c]]
			if !ok {
				continue
			}
			center := board.ScreenCenter(viewport, c)
			if !insideTile(cursor, center, s.view.Size) {
				continue
			}
			style := r.style(s)
			if selected != nil && *selected == c {
				style = style.Reverse(true)
			}
			screen.SetContent(x+col, y+row, ' ', nil, style)

			dist := float32(math.Abs(float64(cursor.X-center.X)) + math.Abs(float64(cursor.Y-center.Y)))
			if a, ok := anchors[c]; !ok || dist < a.dist {
				anchors[c] = anchor{col: col, row: row, dist: dist, style: style}
			}
		}
	}

	for c, a := range anchors {
		screen.SetContent(x+a.col, y+a.row, r.glyph(r.tiles[r.byCoord[c]]), nil, a.style)
	}
}

// cellCenter is the board-space point sampled for a terminal cell. Clicks
// and drawing both use it so they agree on which tile a cell belongs to.
func cellCenter(col, row int) models.Vec2 {
	return models.Vec2{X: float32(col) + 0.5, Y: float32(row) + 0.5}
}

// insideTile drops the padding ring around the drawn part of a tile.
func insideTile(cursor, center models.Vec2, size float32) bool {
	dx := cursor.X - center.X
	dy := cursor.Y - center.Y
	half := size / 2
	return dx >= -half && dx <= half && dy >= -half && dy <= half
}

func (r *Renderer) glyph(s *sprite) rune {
	switch {
	case s.covered && s.flagged:
		return 'F'
	case s.covered:
		return '.'
	case s.view.Face == models.BombFace:
		return 'M'
	case s.view.Face == models.Count0:
		return ' '
	}
	return rune('0' + int(s.view.Face-models.Count0))
}

func (r *Renderer) style(s *sprite) tcell.Style {
	switch {
	case s.covered && s.flagged:
		return r.flag
	case s.covered:
		return r.cover
	case s.view.Face == models.BombFace:
		return r.bomb
	}
	return r.numbers[s.view.Face-models.Count0]
}

// DrawBanner writes text centered on row y of the w wide area at x.
func (r *Renderer) DrawBanner(screen tcell.Screen, text string, x, y, w int) {
	text = runewidth.Truncate(text, w, "…")
	pos := x + (w-runewidth.StringWidth(text))/2
	for _, ch := range text {
		screen.SetContent(pos, y, ch, nil, r.banner)
		pos += runewidth.RuneWidth(ch)
	}
}
