package models

// Tile is the content of a single cell. It never changes once the map is
// generated.
type Tile uint8

const (
	Empty Tile = iota
	Bomb
)

func (t Tile) IsBomb() bool {
	return t == Bomb
}

func (t Tile) String() string {
	if t == Bomb {
		return "bomb"
	}
	return "empty"
}
