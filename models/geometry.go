package models

import "math"

// Vec2 is a point or size in screen space.
type Vec2 struct {
	X float32
	Y float32
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(f float32) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Bounds2 is the screen rectangle occupied by the board.
type Bounds2 struct {
	Origin Vec2
	Size   Vec2
}

// Contains reports whether p lies inside the rectangle. The far edges are
// excluded so that every accepted point maps to an existing tile.
func (b Bounds2) Contains(p Vec2) bool {
	return p.X >= b.Origin.X &&
		p.Y >= b.Origin.Y &&
		p.X < b.Origin.X+b.Size.X &&
		p.Y < b.Origin.Y+b.Size.Y
}

// AdaptiveTileSize picks the largest tile that fits cols x rows tiles into
// the viewport on both axes, clamped to [min, max].
func AdaptiveTileSize(viewport Vec2, min, max float32, cols, rows uint16) float32 {
	size := float32(math.Min(
		float64(viewport.X/float32(cols)),
		float64(viewport.Y/float32(rows)),
	))
	if size < min {
		return min
	}
	if size > max {
		return max
	}
	return size
}

type positionKind uint8

const (
	positionCentered positionKind = iota
	positionCustom
)

// BoardPosition decides where the board's origin sits on screen.
type BoardPosition struct {
	kind  positionKind
	point Vec2
}

// Centered places the board in the middle of the viewport, shifted by offset.
func Centered(offset Vec2) BoardPosition {
	return BoardPosition{kind: positionCentered, point: offset}
}

// CustomPosition pins the board origin to p.
func CustomPosition(p Vec2) BoardPosition {
	return BoardPosition{kind: positionCustom, point: p}
}

// Anchor returns the board origin for a board of the given pixel size.
func (p BoardPosition) Anchor(boardSize Vec2) Vec2 {
	if p.kind == positionCustom {
		return p.point
	}
	return boardSize.Scale(-0.5).Add(p.point)
}

// ScreenToTile maps a cursor position to the tile under it. The cursor is
// measured from the viewport corner while the board lives in a space centered
// on the viewport, so half the viewport is subtracted first. Rows are counted
// from the opposite vertical edge to the cursor, hence the flip.
func ScreenToTile(cursor, viewport Vec2, bounds Bounds2, tileSize float32, mapHeight uint16) (Coordinate, bool) {
	p := cursor.Sub(viewport.Scale(0.5))
	if tileSize <= 0 || !bounds.Contains(p) {
		return Coordinate{}, false
	}
	local := p.Sub(bounds.Origin)
	col := int(math.Floor(float64(local.X / tileSize)))
	row := int(math.Floor(float64(local.Y / tileSize)))
	if col > math.MaxUint16 || row >= int(mapHeight) {
		return Coordinate{}, false
	}
	return Coordinate{X: uint16(col), Y: mapHeight - uint16(row) - 1}, true
}

// TileToScreen is the inverse of ScreenToTile: it returns the cursor position
// of the center of tile c.
func TileToScreen(c Coordinate, viewport Vec2, bounds Bounds2, tileSize float32, mapHeight uint16) Vec2 {
	local := Vec2{
		X: float32(c.X)*tileSize + tileSize/2,
		Y: float32(mapHeight-c.Y-1)*tileSize + tileSize/2,
	}
	return local.Add(bounds.Origin).Add(viewport.Scale(0.5))
}
