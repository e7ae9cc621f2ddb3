package models

import "fmt"

// Coordinate is a tile position on the board. X grows to the right and Y
// grows with the row index of the tile map.
type Coordinate struct {
	X uint16
	Y uint16
}

// Offset is a signed step from a coordinate.
type Offset struct {
	DX int8
	DY int8
}

// Translate applies o to c and reports whether the result lies inside a
// width x height grid. Results that would fall off either edge are rejected
// instead of wrapping around.
func (c Coordinate) Translate(o Offset, width, height uint16) (Coordinate, bool) {
	x := int(c.X) + int(o.DX)
	y := int(c.Y) + int(o.DY)
	if x < 0 || y < 0 || x >= int(width) || y >= int(height) {
		return Coordinate{}, false
	}
	return Coordinate{X: uint16(x), Y: uint16(y)}, true
}

// Less orders coordinates row by row.
func (c Coordinate) Less(o Coordinate) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d;%d)", c.X, c.Y)
}
