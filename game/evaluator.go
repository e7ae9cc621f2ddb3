package game

import "github.com/dimaq12/minesweeper/models"

// Outcome is the state of a game after a turn.
type Outcome uint8

const (
	Ongoing Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "ongoing"
}

// IsWon reports whether the board is won. Nothing is scanned unless the
// number of flags equals the number of bombs. From there either every flag
// sitting on a bomb or every covered tile being a bomb is enough.
func IsWon(b *models.Board) bool {
	if b.FlagCount != b.TileMap.BombCount() {
		return false
	}
	return allFlagsCorrect(b) || onlyBombsCovered(b)
}

func allFlagsCorrect(b *models.Board) bool {
	for _, c := range b.Flagged() {
		if !b.TileMap.At(c).IsBomb() {
			return false
		}
	}
	return true
}

func onlyBombsCovered(b *models.Board) bool {
	for _, c := range b.Covered() {
		if !b.TileMap.At(c).IsBomb() {
			return false
		}
	}
	return true
}

// Evaluate folds the loss signal of a turn's cascades and the win rule into
// one outcome. A loss takes precedence.
func Evaluate(b *models.Board, lost bool) Outcome {
	if lost {
		return Lost
	}
	if IsWon(b) {
		return Won
	}
	return Ongoing
}
