package game

import "github.com/dimaq12/minesweeper/models"

// Presenter draws the board. It owns every handle it returns.
type Presenter interface {
	// Clear drops everything spawned for the previous board.
	Clear()
	// SpawnTile creates the tile and its cover and returns their handles.
	SpawnTile(view models.CellView) (tile, cover models.Handle)
	// Layout moves and resizes a tile after the tile size changed.
	Layout(tile models.Handle, view models.CellView)
	// Reveal removes the cover from a tile.
	Reveal(tile models.Handle)
	// SetFlag swaps the cover image between the plain cover and the flag.
	SetFlag(cover models.Handle, flagged bool)
}

// Observer receives game signals.
type Observer interface {
	BoardRebuilt(width, height, bombs uint16)
	TileRevealed(c models.Coordinate, count uint8, bomb bool)
	FlagToggled(c models.Coordinate, flagged bool)
	GameWon()
	GameLost()
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnRebuilt func(width, height, bombs uint16)
	OnReveal  func(c models.Coordinate, count uint8, bomb bool)
	OnFlag    func(c models.Coordinate, flagged bool)
	OnWon     func()
	OnLost    func()
}

func (f ObserverFuncs) BoardRebuilt(width, height, bombs uint16) {
	if f.OnRebuilt != nil {
		f.OnRebuilt(width, height, bombs)
	}
}

func (f ObserverFuncs) TileRevealed(c models.Coordinate, count uint8, bomb bool) {
	if f.OnReveal != nil {
		f.OnReveal(c, count, bomb)
	}
}

func (f ObserverFuncs) FlagToggled(c models.Coordinate, flagged bool) {
	if f.OnFlag != nil {
		f.OnFlag(c, flagged)
	}
}

func (f ObserverFuncs) GameWon() {
	if f.OnWon != nil {
		f.OnWon()
	}
}

func (f ObserverFuncs) GameLost() {
	if f.OnLost != nil {
		f.OnLost()
	}
}

// MultiObserver forwards every signal to each observer in order.
type MultiObserver []Observer

func (m MultiObserver) BoardRebuilt(width, height, bombs uint16) {
	for _, o := range m {
		o.BoardRebuilt(width, height, bombs)
	}
}

func (m MultiObserver) TileRevealed(c models.Coordinate, count uint8, bomb bool) {
	for _, o := range m {
		o.TileRevealed(c, count, bomb)
	}
}

func (m MultiObserver) FlagToggled(c models.Coordinate, flagged bool) {
	for _, o := range m {
		o.FlagToggled(c, flagged)
	}
}

func (m MultiObserver) GameWon() {
	for _, o := range m {
		o.GameWon()
	}
}

func (m MultiObserver) GameLost() {
	for _, o := range m {
		o.GameLost()
	}
}

// HostState tells the service whether the surrounding application lets the
// game run.
type HostState interface {
	Active() bool
	Paused() bool
}

// AlwaysActive is a HostState that never pauses.
type AlwaysActive struct{}

func (AlwaysActive) Active() bool { return true }
func (AlwaysActive) Paused() bool { return false }
