package models

import (
	"errors"
	"fmt"
)

var ErrInvalidTileSize = errors.New("invalid tile size")

// TileSize is either a fixed size or one adapted to the viewport between a
// minimum and a maximum.
type TileSize struct {
	Fixed float32
	Min   float32
	Max   float32
}

func FixedSize(v float32) TileSize {
	return TileSize{Fixed: v}
}

func AdaptiveSize(min, max float32) TileSize {
	return TileSize{Min: min, Max: max}
}

func (t TileSize) IsFixed() bool {
	return t.Fixed > 0
}

// Resolve returns the tile size for a cols x rows board in the viewport.
func (t TileSize) Resolve(viewport Vec2, cols, rows uint16) float32 {
	if t.IsFixed() {
		return t.Fixed
	}
	return AdaptiveTileSize(viewport, t.Min, t.Max, cols, rows)
}

func (t TileSize) validate() error {
	switch {
	case t.Fixed < 0:
		return fmt.Errorf("%w: fixed size %v", ErrInvalidTileSize, t.Fixed)
	case t.IsFixed():
		return nil
	case t.Min <= 0 || t.Min > t.Max:
		return fmt.Errorf("%w: adaptive bounds [%v, %v]", ErrInvalidTileSize, t.Min, t.Max)
	}
	return nil
}

// BoardOptions configures the board built at the start of every game.
type BoardOptions struct {
	MapWidth  uint16
	MapHeight uint16
	BombCount uint16
	Position  BoardPosition
	TileSize  TileSize
	// TilePadding is removed from the drawn tile size only; hit testing uses
	// the full tile.
	TilePadding float32
	// SafeStart is accepted for compatibility. Bomb placement ignores it.
	SafeStart bool
}

func DefaultBoardOptions() BoardOptions {
	return BoardOptions{
		MapWidth:  15,
		MapHeight: 15,
		BombCount: 30,
		Position:  Centered(Vec2{}),
		TileSize:  AdaptiveSize(10, 50),
	}
}

// Validate rejects options that cannot produce a board.
func (o BoardOptions) Validate() error {
	if o.MapWidth == 0 || o.MapHeight == 0 {
		return fmt.Errorf("%w: got %dx%d", ErrEmptyMap, o.MapWidth, o.MapHeight)
	}
	if cells := int(o.MapWidth) * int(o.MapHeight); int(o.BombCount) > cells {
		return fmt.Errorf("%w: %d bombs on %d cells", ErrTooManyBombs, o.BombCount, cells)
	}
	if err := o.TileSize.validate(); err != nil {
		return err
	}
	if o.TilePadding < 0 {
		return fmt.Errorf("%w: negative padding %v", ErrInvalidTileSize, o.TilePadding)
	}
	if o.TileSize.IsFixed() && o.TilePadding >= o.TileSize.Fixed {
		return fmt.Errorf("%w: padding %v leaves nothing of tile %v", ErrInvalidTileSize, o.TilePadding, o.TileSize.Fixed)
	}
	return nil
}

// Layout computes tile size and screen bounds of a cols x rows board.
func (o BoardOptions) Layout(viewport Vec2, cols, rows uint16) (float32, Bounds2) {
	tileSize := o.TileSize.Resolve(viewport, cols, rows)
	size := Vec2{X: float32(cols) * tileSize, Y: float32(rows) * tileSize}
	return tileSize, Bounds2{Origin: o.Position.Anchor(size), Size: size}
}
