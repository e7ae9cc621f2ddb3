package game

import "errors"

// Phase is the lifecycle stage of the board.
type Phase uint8

const (
	// PhaseNewGame waits for a board to be built.
	PhaseNewGame Phase = iota
	// PhaseRunning accepts input until the next reset.
	PhaseRunning
)

func (p Phase) String() string {
	if p == PhaseRunning {
		return "running"
	}
	return "new-game"
}

var ErrNotNewGame = errors.New("board already built for this game")

// PhaseMachine tracks the two phase lifecycle. The zero value starts in
// PhaseNewGame.
type PhaseMachine struct {
	phase  Phase
	builds int
}

func (m *PhaseMachine) Current() Phase {
	return m.phase
}

// Builds counts how many boards have been started.
func (m *PhaseMachine) Builds() int {
	return m.builds
}

// CanBuild reports whether a board may be constructed now.
func (m *PhaseMachine) CanBuild() bool {
	return m.phase == PhaseNewGame
}

// AcceptsInput reports whether uncover and flag requests are processed.
func (m *PhaseMachine) AcceptsInput() bool {
	return m.phase == PhaseRunning
}

// Start moves from PhaseNewGame to PhaseRunning once a board is built.
func (m *PhaseMachine) Start() error {
	if m.phase != PhaseNewGame {
		return ErrNotNewGame
	}
	m.phase = PhaseRunning
	m.builds++
	return nil
}

// Reset returns to PhaseNewGame from any phase.
func (m *PhaseMachine) Reset() {
	m.phase = PhaseNewGame
}
