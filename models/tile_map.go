package models

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

var (
	ErrEmptyMap     = errors.New("map must have at least one row and one column")
	ErrTooManyBombs = errors.New("bomb count exceeds cell count")
)

// neighborOffsets lists the eight surrounding cells, bottom row first.
var neighborOffsets = [8]Offset{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

var orthogonalOffsets = [4]Offset{
	{0, -1},
	{-1, 0}, {1, 0},
	{0, 1},
}

// TileMap is the grid of bombs and empty cells for one game. Tiles are
// stored row by row, so the tile at (x, y) lives at index y*width + x.
type TileMap struct {
	width     uint16
	height    uint16
	bombCount uint16
	tiles     []Tile
}

// NewTileMap builds a width x height map and spreads bombCount bombs over it
// uniformly at random. A nil r seeds a fresh generator from the clock.
func NewTileMap(width, height, bombCount uint16, r *rand.Rand) (*TileMap, error) {
	m, err := emptyTileMap(width, height)
	if err != nil {
		return nil, err
	}
	if int(bombCount) > len(m.tiles) {
		return nil, fmt.Errorf("%w: %d bombs on %dx%d", ErrTooManyBombs, bombCount, width, height)
	}
	if r == nil {
		r = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	m.spreadBombs(bombCount, r)
	return m, nil
}

// NewTileMapFromLayout builds a map from text rows, where '*' marks a bomb
// and any other rune an empty cell. rows[0] is y = 0.
func NewTileMapFromLayout(rows ...string) (*TileMap, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyMap
	}
	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("ragged layout: row widths %d and %d", width, len(row))
		}
	}
	m, err := emptyTileMap(uint16(width), uint16(len(rows)))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		for x := 0; x < width; x++ {
			if row[x] == '*' {
				m.tiles[y*width+x] = Bomb
				m.bombCount++
			}
		}
	}
	return m, nil
}

func emptyTileMap(width, height uint16) (*TileMap, error) {
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyMap, width, height)
	}
	return &TileMap{
		width:  width,
		height: height,
		tiles:  make([]Tile, int(width)*int(height)),
	}, nil
}

// spreadBombs shuffles every cell index with Fisher-Yates and turns the
// first count of them into bombs.
func (m *TileMap) spreadBombs(count uint16, r *rand.Rand) {
	indices := make([]int, len(m.tiles))
	for i := range indices {
		indices[i] = i
	}
	for i := len(indices) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		indices[i], indices[j] = indices[j], indices[i]
	}
	for _, idx := range indices[:count] {
		m.tiles[idx] = Bomb
	}
	m.bombCount = count
}

func (m *TileMap) Width() uint16 { return m.width }
func (m *TileMap) Height() uint16 { return m.height }
func (m *TileMap) BombCount() uint16 { return m.bombCount }

// Len is the number of cells on the map.
func (m *TileMap) Len() int { return len(m.tiles) }

func (m *TileMap) Contains(c Coordinate) bool {
	return c.X < m.width && c.Y < m.height
}

// At returns the tile at c. Callers validate coordinates first; an out of
// range coordinate is a bug and panics.
func (m *TileMap) At(c Coordinate) Tile {
	if !m.Contains(c) {
		panic(fmt.Sprintf("tile map: coordinate %s outside %dx%d map", c, m.width, m.height))
	}
	return m.tiles[int(c.Y)*int(m.width)+int(c.X)]
}

// AtIndex returns the tile stored at a flat index.
func (m *TileMap) AtIndex(i int) Tile {
	return m.tiles[i]
}

// CoordinateAt converts a flat index back into a coordinate.
func (m *TileMap) CoordinateAt(i int) Coordinate {
	if i < 0 || i >= len(m.tiles) {
		panic(fmt.Sprintf("tile map: index %d outside map of %d cells", i, len(m.tiles)))
	}
	return Coordinate{X: uint16(i % int(m.width)), Y: uint16(i / int(m.width))}
}

// Neighbors returns the up to eight cells around c, clipped to the map.
func (m *TileMap) Neighbors(c Coordinate) []Coordinate {
	return m.collect(c, neighborOffsets[:])
}

// OrthogonalNeighbors returns the up to four cells sharing an edge with c.
func (m *TileMap) OrthogonalNeighbors(c Coordinate) []Coordinate {
	return m.collect(c, orthogonalOffsets[:])
}

func (m *TileMap) collect(c Coordinate, offsets []Offset) []Coordinate {
	out := make([]Coordinate, 0, len(offsets))
	for _, o := range offsets {
		if n, ok := c.Translate(o, m.width, m.height); ok {
			out = append(out, n)
		}
	}
	return out
}

// BombCountAt is the number of bombs among the neighbors of c.
func (m *TileMap) BombCountAt(c Coordinate) uint8 {
	var count uint8
	for _, n := range m.Neighbors(c) {
		if m.At(n).IsBomb() {
			count++
		}
	}
	return count
}

// String draws the map inside a frame: '*' for bombs, a blank for cells with
// no adjacent bomb and the adjacency count otherwise.
func (m *TileMap) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Map (%d;%d) with %d bombs:\n", m.width, m.height, m.bombCount)
	border := "|" + strings.Repeat("-", int(m.width)) + "|\n"
	sb.WriteString(border)
	for i, t := range m.tiles {
		if i%int(m.width) == 0 {
			sb.WriteByte('|')
		}
		switch {
		case t.IsBomb():
			sb.WriteByte('*')
		default:
			if n := m.BombCountAt(m.CoordinateAt(i)); n > 0 {
				sb.WriteByte('0' + n)
			} else {
				sb.WriteByte(' ')
			}
		}
		if i%int(m.width) == int(m.width)-1 {
			sb.WriteString("|\n")
		}
	}
	sb.WriteString(strings.TrimSuffix(border, "\n"))
	return sb.String()
}
