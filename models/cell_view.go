package models

// Variant names the image a cell shows.
type Variant uint8

// Count0 through Count8 are consecutive so that Count0+n is the face of a
// cell with n adjacent bombs.
const (
	Count0 Variant = iota
	Count1
	Count2
	Count3
	Count4
	Count5
	Count6
	Count7
	Count8
	BombFace
	Cover
	Flag
	Uncovered
)

// CellView is what the presentation layer needs to draw one cell.
type CellView struct {
	Coord Coordinate
	// Center is the board-local center of the tile, rows growing upward.
	Center Vec2
	// Size is the drawn edge length, tile size minus padding.
	Size float32
	Face Variant
	// Top is Cover, Flag or Uncovered.
	Top Variant
}

// FaceOf returns the face variant of c on m.
func FaceOf(m *TileMap, c Coordinate) Variant {
	if m.At(c).IsBomb() {
		return BombFace
	}
	return Count0 + Variant(m.BombCountAt(c))
}

// View builds the presentation state of c on the board.
func (b *Board) View(c Coordinate, padding float32) CellView {
	top := Uncovered
	if b.IsCovered(c) {
		top = Cover
		if b.IsFlagged(c) {
			top = Flag
		}
	}
	half := b.TileSize / 2
	return CellView{
		Coord:  c,
		Center: Vec2{X: float32(c.X)*b.TileSize + half, Y: float32(c.Y)*b.TileSize + half},
		Size:   b.TileSize - padding,
		Face:   FaceOf(b.TileMap, c),
		Top:    top,
	}
}
