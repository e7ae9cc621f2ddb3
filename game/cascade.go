package game

import "github.com/dimaq12/minesweeper/models"

// Reveal describes one tile uncovered during a cascade.
type Reveal struct {
	Coord models.Coordinate
	Tile  models.Handle
	Cover models.Handle
	Count uint8
	Bomb  bool
	// Unflagged is set when the tile carried a flag that was removed.
	Unflagged bool
}

// CascadeResult is everything one uncover request changed.
type CascadeResult struct {
	Revealed []Reveal
	Lost     bool
}

// Cascade uncovers start and keeps uncovering breadth first across every
// region of cells with no adjacent bomb. A coordinate that is already
// uncovered is skipped, so each cell is revealed at most once and the
// worklist drains in at most one pass over the board.
func Cascade(b *models.Board, start models.Coordinate) CascadeResult {
	var res CascadeResult
	queue := []models.Coordinate{start}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		tile, ok := b.TryUncover(c)
		if !ok {
			continue
		}

		r := Reveal{Coord: c, Tile: tile}
		if e, ok := b.Entry(c); ok {
			r.Cover = e.Cover
		}
		if b.ClearFlag(c) {
			b.FlagCount--
			r.Unflagged = true
		}

		if b.TileMap.At(c).IsBomb() {
			r.Bomb = true
			res.Lost = true
			res.Revealed = append(res.Revealed, r)
			continue
		}

		r.Count = b.TileMap.BombCountAt(c)
		res.Revealed = append(res.Revealed, r)
		if r.Count != 0 {
			continue
		}
		for _, n := range b.TileMap.Neighbors(c) {
			if b.IsCovered(n) {
				queue = append(queue, n)
			}
		}
	}

	return res
}
