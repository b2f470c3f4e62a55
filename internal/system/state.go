// internal/system/state.go
package system

import (
	"go-neon-defense/internal/component"
	"go-neon-defense/internal/event"

	"github.com/rs/zerolog"
)

var transitions = map[component.GameState][]component.GameState{
	component.StateMenu:     {component.StatePlaying},
	component.StatePlaying:  {component.StateGameOver, component.StateMenu},
	component.StateGameOver: {component.StatePlaying, component.StateMenu},
}

// StateSystem хранит состояние игры и проверяет переходы.
// Недопустимый переход отклоняется, прежнее состояние сохраняется.
type StateSystem struct {
	current         component.GameState
	eventDispatcher *event.Dispatcher
	logger          zerolog.Logger
}

func NewStateSystem(eventDispatcher *event.Dispatcher, logger zerolog.Logger) *StateSystem {
	return &StateSystem{
		current:         component.StateMenu,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (s *StateSystem) Current() component.GameState {
	return s.current
}

// CanTransition — разрешён ли переход из текущего состояния.
func (s *StateSystem) CanTransition(to component.GameState) bool {
	for _, allowed := range transitions[s.current] {
		if allowed == to {
			return true
		}
	}
	return false
}

// SetState переключает состояние и сообщает об этом слушателям.
func (s *StateSystem) SetState(to component.GameState) bool {
	if !to.Valid() || !s.CanTransition(to) {
		s.logger.Warn().
			Str("from", string(s.current)).
			Str("to", string(to)).
			Msg("invalid state transition rejected")
		return false
	}
	from := s.current
	s.current = to
	s.logger.Debug().Str("from", string(from)).Str("to", string(to)).Msg("state changed")
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.StateChanged,
		Data: event.StatePayload{From: string(from), To: string(to)},
	})
	return true
}

func (s *StateSystem) IsPlaying() bool {
	return s.current == component.StatePlaying
}
