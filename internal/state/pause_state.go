// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-neon-defense/internal/render"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игру и рисует предыдущий экран под затемнением.
type PauseState struct {
	sm            *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prev *GameState) *PauseState {
	return &PauseState{sm: sm, previousState: prev}
}

func (s *PauseState) Enter() {
	if !s.sm.Game.IsPaused() {
		s.sm.Game.TogglePause()
	}
	s.previousState.pauseButton.SetPaused(true)
}

func (s *PauseState) Update(deltaTime float64) {
	unpause := inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		unpause = unpause || s.previousState.pauseButton.IsClicked(float32(x), float32(y))
	}
	if unpause {
		s.previousState.pauseButton.TogglePause()
		s.sm.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	render.DrawOverlay(screen, "PAUSED", "Press P to resume")
}

func (s *PauseState) Exit() {
	if s.sm.Game.IsPaused() {
		s.sm.Game.TogglePause()
	}
}
