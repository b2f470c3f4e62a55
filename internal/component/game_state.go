// internal/component/game_state.go
package component

// GameState — состояние игры верхнего уровня.
type GameState string

const (
	StateMenu     GameState = "menu"
	StatePlaying  GameState = "playing"
	StateGameOver GameState = "gameover"
)

// Valid — известно ли состояние.
func (s GameState) Valid() bool {
	switch s {
	case StateMenu, StatePlaying, StateGameOver:
		return true
	}
	return false
}
