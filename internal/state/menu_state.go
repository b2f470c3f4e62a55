// internal/state/menu_state.go
package state

import (
	"fmt"

	"go-neon-defense/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — стартовый экран поверх уже сгенерированной карты.
type MenuState struct {
	sm *StateMachine
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{sm: sm}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if m.sm.Game.StartGame() {
			m.sm.SetState(NewGameState(m.sm))
		}
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.sm.drawWorld(screen)
	view := m.sm.Game.MapView()
	render.DrawOverlay(screen, "NEON DEFENSE",
		fmt.Sprintf("Map: %s  (seed %d)", view.Name, view.Seed),
		"Press SPACE to start",
	)
}

func (m *MenuState) Exit() {}
