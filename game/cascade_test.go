package game

import (
	"math/rand/v2"
	"testing"

	"github.com/dimaq12/minesweeper/models"
)

func newBoard(t *testing.T, rows ...string) *models.Board {
	t.Helper()
	m, err := models.NewTileMapFromLayout(rows...)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	return placeAll(m)
}

func placeAll(m *models.TileMap) *models.Board {
	tileSize, bounds := models.DefaultBoardOptions().Layout(models.Vec2{X: 800, Y: 600}, m.Width(), m.Height())
	b := models.NewBoard(m, bounds, tileSize)
	for i := 0; i < m.Len(); i++ {
		b.Place(m.CoordinateAt(i), models.Handle(2*i+1), models.Handle(2*i+2))
	}
	return b
}

func flag(b *models.Board, c models.Coordinate) {
	if e, ok := b.TryToggleFlag(c); ok && e.Flagged {
		b.FlagCount++
	}
}

func TestCascadeRevealsWholeEmptyBoard(t *testing.T) {
	b := newBoard(t, "..", "..")
	res := Cascade(b, models.Coordinate{X: 0, Y: 0})
	if res.Lost {
		t.Fatal("no bombs, no loss")
	}
	if len(res.Revealed) != 4 {
		t.Fatalf("expected 4 reveals, got %d", len(res.Revealed))
	}
	if b.CoveredCount() != 0 {
		t.Fatalf("expected nothing covered, got %d", b.CoveredCount())
	}
	if res.Revealed[0].Coord != (models.Coordinate{X: 0, Y: 0}) {
		t.Fatalf("the requested tile comes first, got %s", res.Revealed[0].Coord)
	}
}

func TestCascadeStopsOnNumberedTile(t *testing.T) {
	b := newBoard(t, "...", ".*.", "...")
	res := Cascade(b, models.Coordinate{X: 0, Y: 0})
	if len(res.Revealed) != 1 || res.Revealed[0].Count != 1 {
		t.Fatalf("expected a single tile with count 1, got %+v", res.Revealed)
	}
	if b.CoveredCount() != 8 {
		t.Fatalf("expected 8 covered, got %d", b.CoveredCount())
	}
}

func TestCascadeOnBombSignalsLoss(t *testing.T) {
	b := newBoard(t, "*..", "...", "...")
	res := Cascade(b, models.Coordinate{X: 0, Y: 0})
	if !res.Lost {
		t.Fatal("uncovering a bomb must signal loss")
	}
	if len(res.Revealed) != 1 || !res.Revealed[0].Bomb {
		t.Fatalf("only the bomb is revealed, got %+v", res.Revealed)
	}
}

func TestCascadeIsIdempotent(t *testing.T) {
	b := newBoard(t, "...", "...", "..*")
	first := Cascade(b, models.Coordinate{X: 0, Y: 0})
	covered := b.CoveredCount()
	second := Cascade(b, models.Coordinate{X: 0, Y: 0})
	if len(second.Revealed) != 0 || second.Lost {
		t.Fatalf("second cascade must be a no-op, got %+v", second)
	}
	if b.CoveredCount() != covered {
		t.Fatal("covered set changed on the second cascade")
	}
	if len(first.Revealed) != 8 {
		t.Fatalf("expected every non-bomb tile revealed, got %d", len(first.Revealed))
	}
}

func TestCascadeClearsFlags(t *testing.T) {
	b := newBoard(t, "*..", "...", "...")
	target := models.Coordinate{X: 2, Y: 2}
	flag(b, target)

	res := Cascade(b, target)
	if b.FlagCount != 0 || b.IsFlagged(target) {
		t.Fatalf("flag survived the reveal: count %d", b.FlagCount)
	}
	if !res.Revealed[0].Unflagged {
		t.Fatal("reveal must report the removed flag")
	}
	if len(res.Revealed) != 8 || res.Lost {
		t.Fatalf("expected 8 safe reveals, got %d lost=%v", len(res.Revealed), res.Lost)
	}
}

func TestCascadeVisitsEachCellOnce(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		m, err := models.NewTileMap(16, 12, 20, rand.New(rand.NewPCG(seed, 3)))
		if err != nil {
			t.Fatal(err)
		}
		for i := 0; i < m.Len(); i += 7 {
			b := placeAll(m)
			start := m.CoordinateAt(i)
			res := Cascade(b, start)

			seen := make(map[models.Coordinate]bool)
			for _, r := range res.Revealed {
				if seen[r.Coord] {
					t.Fatalf("seed %d start %s: %s revealed twice", seed, start, r.Coord)
				}
				seen[r.Coord] = true
			}
			if len(res.Revealed)+b.CoveredCount() != m.Len() {
				t.Fatalf("seed %d start %s: %d revealed + %d covered != %d cells",
					seed, start, len(res.Revealed), b.CoveredCount(), m.Len())
			}
			if res.Lost != m.At(start).IsBomb() {
				t.Fatalf("seed %d start %s: lost=%v", seed, start, res.Lost)
			}
		}
	}
}
