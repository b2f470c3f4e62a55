// internal/state/state.go
package state

import (
	"go-neon-defense/internal/app"
	"go-neon-defense/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// State — интерфейс для всех экранов
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine — структура для управления экранами. Игра и рендер
// общие для всех экранов.
type StateMachine struct {
	current  State
	Game     *app.Game
	Renderer *render.Renderer
	Logger   zerolog.Logger
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(game *app.Game, logger zerolog.Logger) *StateMachine {
	return &StateMachine{
		Game:     game,
		Renderer: render.NewRenderer(game.Defs),
		Logger:   logger,
	}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current — активный экран.
func (sm *StateMachine) Current() State { return sm.current }

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// drawWorld рисует карту и сущности по свежему снимку.
func (sm *StateMachine) drawWorld(screen *ebiten.Image) app.Snapshot {
	snap := sm.Game.Snapshot()
	sm.Renderer.Draw(screen, snap, sm.Game.MapView(), snap.GameTime)
	return snap
}
