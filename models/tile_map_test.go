package models

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func countBombs(m *TileMap) int {
	n := 0
	for i := 0; i < m.Len(); i++ {
		if m.AtIndex(i).IsBomb() {
			n++
		}
	}
	return n
}

func TestNewTileMapPlacesExactBombCount(t *testing.T) {
	cases := []struct {
		width, height, bombs uint16
	}{
		{1, 1, 0},
		{1, 1, 1},
		{3, 3, 1},
		{15, 15, 30},
		{20, 10, 199},
		{8, 8, 64},
	}
	for i, tc := range cases {
		for seed := uint64(0); seed < 5; seed++ {
			m, err := NewTileMap(tc.width, tc.height, tc.bombs, rand.New(rand.NewPCG(seed, uint64(i))))
			if err != nil {
				t.Fatalf("%dx%d/%d: unexpected error %v", tc.width, tc.height, tc.bombs, err)
			}
			if got := countBombs(m); got != int(tc.bombs) {
				t.Fatalf("%dx%d/%d seed %d: expected %d bombs, got %d", tc.width, tc.height, tc.bombs, seed, tc.bombs, got)
			}
			if m.BombCount() != tc.bombs {
				t.Fatalf("BombCount() = %d, want %d", m.BombCount(), tc.bombs)
			}
			if m.Len() != int(tc.width)*int(tc.height) {
				t.Fatalf("Len() = %d, want %d", m.Len(), int(tc.width)*int(tc.height))
			}
		}
	}
}

func TestNewTileMapNilRand(t *testing.T) {
	m, err := NewTileMap(10, 10, 10, nil)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got := countBombs(m); got != 10 {
		t.Fatalf("expected 10 bombs, got %d", got)
	}
}

func TestNewTileMapRejectsTooManyBombs(t *testing.T) {
	_, err := NewTileMap(2, 2, 5, nil)
	if !errors.Is(err, ErrTooManyBombs) {
		t.Fatalf("expected ErrTooManyBombs, got %v", err)
	}
}

func TestNewTileMapRejectsEmptyMap(t *testing.T) {
	if _, err := NewTileMap(0, 4, 0, nil); !errors.Is(err, ErrEmptyMap) {
		t.Fatalf("expected ErrEmptyMap, got %v", err)
	}
	if _, err := NewTileMapFromLayout(); !errors.Is(err, ErrEmptyMap) {
		t.Fatalf("expected ErrEmptyMap for empty layout, got %v", err)
	}
}

func TestNewTileMapFromLayout(t *testing.T) {
	m, err := NewTileMapFromLayout(
		"*..",
		".*.",
	)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if m.Width() != 3 || m.Height() != 2 || m.BombCount() != 2 {
		t.Fatalf("unexpected map %dx%d with %d bombs", m.Width(), m.Height(), m.BombCount())
	}
	if !m.At(Coordinate{0, 0}).IsBomb() || !m.At(Coordinate{1, 1}).IsBomb() {
		t.Fatal("bombs not where the layout put them")
	}
	if m.At(Coordinate{2, 1}).IsBomb() {
		t.Fatal("(2;1) should be empty")
	}
	if _, err := NewTileMapFromLayout("..", "..."); err == nil {
		t.Fatal("expected error for ragged layout")
	}
}

func TestNeighborsClippedToMap(t *testing.T) {
	m, _ := NewTileMapFromLayout("....", "....", "....", "....")
	cases := []struct {
		c    Coordinate
		want int
	}{
		{Coordinate{0, 0}, 3},
		{Coordinate{3, 3}, 3},
		{Coordinate{0, 3}, 3},
		{Coordinate{1, 0}, 5},
		{Coordinate{3, 2}, 5},
		{Coordinate{1, 1}, 8},
		{Coordinate{2, 2}, 8},
	}
	for _, tc := range cases {
		got := m.Neighbors(tc.c)
		if len(got) != tc.want {
			t.Fatalf("Neighbors(%s): expected %d, got %d (%v)", tc.c, tc.want, len(got), got)
		}
		for _, n := range got {
			if !m.Contains(n) {
				t.Fatalf("Neighbors(%s) returned %s outside the map", tc.c, n)
			}
			if n == tc.c {
				t.Fatalf("Neighbors(%s) contains the cell itself", tc.c)
			}
		}
	}
}

func TestOrthogonalNeighbors(t *testing.T) {
	m, _ := NewTileMapFromLayout("...", "...", "...")
	if got := m.OrthogonalNeighbors(Coordinate{0, 0}); len(got) != 2 {
		t.Fatalf("corner: expected 2, got %v", got)
	}
	if got := m.OrthogonalNeighbors(Coordinate{1, 0}); len(got) != 3 {
		t.Fatalf("edge: expected 3, got %v", got)
	}
	got := m.OrthogonalNeighbors(Coordinate{1, 1})
	if len(got) != 4 {
		t.Fatalf("center: expected 4, got %v", got)
	}
	for _, n := range got {
		if n.X != 1 && n.Y != 1 {
			t.Fatalf("%s is not orthogonal to (1;1)", n)
		}
	}
}

func TestBombCountAt(t *testing.T) {
	m, _ := NewTileMapFromLayout(
		"*..",
		".*.",
		"...",
	)
	cases := map[Coordinate]uint8{
		{1, 0}: 2,
		{0, 1}: 2,
		{2, 0}: 1,
		{2, 2}: 1,
		{0, 2}: 1,
		{1, 1}: 1,
		{2, 1}: 1,
	}
	for c, want := range cases {
		if got := m.BombCountAt(c); got != want {
			t.Fatalf("BombCountAt(%s) = %d, want %d", c, got, want)
		}
	}
}

func TestBombCountAtMatchesNeighborScan(t *testing.T) {
	m, err := NewTileMap(12, 9, 40, rand.New(rand.NewPCG(7, 11)))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < m.Len(); i++ {
		c := m.CoordinateAt(i)
		want := 0
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				x, y := int(c.X)+dx, int(c.Y)+dy
				if (dx == 0 && dy == 0) || x < 0 || y < 0 || x >= 12 || y >= 9 {
					continue
				}
				if m.At(Coordinate{uint16(x), uint16(y)}).IsBomb() {
					want++
				}
			}
		}
		if got := m.BombCountAt(c); int(got) != want {
			t.Fatalf("BombCountAt(%s) = %d, want %d", c, got, want)
		}
	}
}

func TestAtPanicsOutOfBounds(t *testing.T) {
	m, _ := NewTileMapFromLayout("..", "..")
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out of bounds coordinate")
		}
	}()
	m.At(Coordinate{2, 0})
}

func TestCoordinateAtRoundTrip(t *testing.T) {
	m, _ := NewTileMapFromLayout("....", "....", "....")
	for i := 0; i < m.Len(); i++ {
		c := m.CoordinateAt(i)
		if int(c.Y)*4+int(c.X) != i {
			t.Fatalf("CoordinateAt(%d) = %s", i, c)
		}
	}
}

func TestTileMapString(t *testing.T) {
	m, _ := NewTileMapFromLayout("*.", "..")
	want := "Map (2;2) with 1 bombs:\n|--|\n|*1|\n|11|\n|--|"
	if got := m.String(); got != want {
		t.Fatalf("unexpected rendering:\n%s\nwant:\n%s", got, want)
	}
}

func TestCoordinateTranslate(t *testing.T) {
	c := Coordinate{0, 0}
	if _, ok := c.Translate(Offset{-1, 0}, 3, 3); ok {
		t.Fatal("moving left of column 0 must be rejected")
	}
	if _, ok := (Coordinate{2, 2}).Translate(Offset{1, 1}, 3, 3); ok {
		t.Fatal("moving past the far corner must be rejected")
	}
	got, ok := (Coordinate{1, 1}).Translate(Offset{1, -1}, 3, 3)
	if !ok || got != (Coordinate{2, 0}) {
		t.Fatalf("expected (2;0), got %s ok=%v", got, ok)
	}
}
