package game

import (
	"errors"
	"testing"
)

func TestPhaseMachine(t *testing.T) {
	var m PhaseMachine
	if m.Current() != PhaseNewGame || !m.CanBuild() || m.AcceptsInput() {
		t.Fatalf("zero value must be a new game, got %s", m.Current())
	}
	if err := m.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if m.Current() != PhaseRunning || m.CanBuild() || !m.AcceptsInput() {
		t.Fatalf("expected running, got %s", m.Current())
	}
	if err := m.Start(); !errors.Is(err, ErrNotNewGame) {
		t.Fatalf("second start: expected ErrNotNewGame, got %v", err)
	}
	m.Reset()
	if m.Current() != PhaseNewGame {
		t.Fatalf("reset must return to a new game, got %s", m.Current())
	}
	m.Reset()
	if err := m.Start(); err != nil {
		t.Fatalf("start after reset: %v", err)
	}
	if m.Builds() != 2 {
		t.Fatalf("expected 2 builds, got %d", m.Builds())
	}
}
