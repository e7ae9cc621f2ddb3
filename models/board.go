package models

import (
	"fmt"
	"sort"
)

// Handle identifies something owned by the presentation layer. The board
// stores and returns handles but never looks inside them.
type Handle uint64

// FlagEntry is the flag state of one cell together with the handles of its
// tile and its cover.
type FlagEntry struct {
	Tile    Handle
	Cover   Handle
	Flagged bool
}

// Board is the live state of one game.
type Board struct {
	TileMap  *TileMap
	Bounds   Bounds2
	TileSize float32
	// FlagCount is the number of flag entries set to true. Callers keep it in
	// step with the results of TryToggleFlag and ClearFlag.
	FlagCount uint16

	covered map[Coordinate]Handle
	flagged map[Coordinate]FlagEntry
}

func NewBoard(tileMap *TileMap, bounds Bounds2, tileSize float32) *Board {
	return &Board{
		TileMap:  tileMap,
		Bounds:   bounds,
		TileSize: tileSize,
		covered:  make(map[Coordinate]Handle, tileMap.Len()),
		flagged:  make(map[Coordinate]FlagEntry, tileMap.Len()),
	}
}

// Place registers the handles of cell c. Every cell is placed exactly once
// while the board is built; it starts covered and unflagged.
func (b *Board) Place(c Coordinate, tile, cover Handle) {
	if !b.TileMap.Contains(c) {
		panic(fmt.Sprintf("board: placing %s outside the map", c))
	}
	b.covered[c] = tile
	b.flagged[c] = FlagEntry{Tile: tile, Cover: cover}
}

// TryUncover removes c from the covered set and returns its tile handle. The
// second result is false when c was already uncovered.
func (b *Board) TryUncover(c Coordinate) (Handle, bool) {
	h, ok := b.covered[c]
	if ok {
		delete(b.covered, c)
	}
	return h, ok
}

// TryToggleFlag flips the flag of c and returns the updated entry. It does
// not touch FlagCount.
func (b *Board) TryToggleFlag(c Coordinate) (FlagEntry, bool) {
	e, ok := b.flagged[c]
	if !ok {
		return FlagEntry{}, false
	}
	e.Flagged = !e.Flagged
	b.flagged[c] = e
	return e, true
}

// ClearFlag lowers the flag of c and reports whether one was set.
func (b *Board) ClearFlag(c Coordinate) bool {
	e, ok := b.flagged[c]
	if !ok || !e.Flagged {
		return false
	}
	e.Flagged = false
	b.flagged[c] = e
	return true
}

func (b *Board) IsCovered(c Coordinate) bool {
	_, ok := b.covered[c]
	return ok
}

func (b *Board) IsFlagged(c Coordinate) bool {
	return b.flagged[c].Flagged
}

// Entry returns the flag entry of c.
func (b *Board) Entry(c Coordinate) (FlagEntry, bool) {
	e, ok := b.flagged[c]
	return e, ok
}

func (b *Board) CoveredCount() int {
	return len(b.covered)
}

// Covered lists the covered coordinates in row order.
func (b *Board) Covered() []Coordinate {
	out := make([]Coordinate, 0, len(b.covered))
	for c := range b.covered {
		out = append(out, c)
	}
	sortCoordinates(out)
	return out
}

// Flagged lists the flagged coordinates in row order.
func (b *Board) Flagged() []Coordinate {
	out := make([]Coordinate, 0, b.FlagCount)
	for c, e := range b.flagged {
		if e.Flagged {
			out = append(out, c)
		}
	}
	sortCoordinates(out)
	return out
}

// CursorPosition returns the tile under the cursor, if any.
func (b *Board) CursorPosition(viewport, cursor Vec2) (Coordinate, bool) {
	c, ok := ScreenToTile(cursor, viewport, b.Bounds, b.TileSize, b.TileMap.Height())
	if !ok || !b.TileMap.Contains(c) {
		return Coordinate{}, false
	}
	return c, true
}

// ScreenCenter returns the cursor position at the center of tile c.
func (b *Board) ScreenCenter(viewport Vec2, c Coordinate) Vec2 {
	return TileToScreen(c, viewport, b.Bounds, b.TileSize, b.TileMap.Height())
}

// Relayout replaces the tile size and bounds after the viewport changed.
func (b *Board) Relayout(tileSize float32, bounds Bounds2) {
	b.TileSize = tileSize
	b.Bounds = bounds
}

func sortCoordinates(cs []Coordinate) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].Less(cs[j]) })
}
