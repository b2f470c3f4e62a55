// internal/system/trap.go
package system

import (
	"go-neon-defense/internal/component"
	"go-neon-defense/internal/defs"
	"go-neon-defense/internal/entity"
	"go-neon-defense/internal/event"
	"go-neon-defense/internal/types"
)

// TrapSystem обрабатывает срабатывание ловушек на пути
type TrapSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewTrapSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *TrapSystem {
	return &TrapSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// NewTrap создаёт ловушку по описанию.
func NewTrap(id types.EntityID, def defs.TrapDefinition, pos component.Position) *component.Trap {
	return &component.Trap{
		ID:           id,
		Kind:         def.ID,
		Position:     pos,
		Damage:       def.Damage,
		Uses:         def.Uses,
		MaxUses:      def.Uses,
		Radius:       def.Radius,
		Effect:       def.Effect,
		Duration:     def.Duration,
		CooldownTime: def.Cooldown,
		Alive:        true,
		HitEnemies:   make(map[types.EntityID]struct{}),
	}
}

func (s *TrapSystem) Update(deltaTime, speedMultiplier float64) {
	scaled := deltaTime * speedMultiplier
	for _, t := range s.ecs.Traps {
		if !t.Alive {
			continue
		}
		if t.Cooldown > 0 {
			t.Cooldown -= scaled
			if t.Cooldown <= 0 {
				clear(t.HitEnemies)
			}
			continue
		}
		s.tryTrigger(t)
	}
}

// tryTrigger — не более одного срабатывания за окно перезарядки.
func (s *TrapSystem) tryTrigger(t *component.Trap) {
	for _, e := range s.ecs.Enemies {
		if !e.Targetable() {
			continue
		}
		if _, hit := t.HitEnemies[e.ID]; hit {
			continue
		}
		if t.DistanceTo(e.Position) > t.Radius {
			continue
		}
		t.HitEnemies[e.ID] = struct{}{}

		switch t.Effect {
		case defs.EffectExplode:
			for _, other := range s.ecs.Enemies {
				if other.Targetable() && t.DistanceTo(other.Position) <= t.Radius {
					ApplyDamage(other, float64(t.Damage), defs.DamageFire)
				}
			}
			t.Uses = 0
			t.Alive = false
			s.dispatch(t, e)
			return
		case defs.EffectPoison:
			ApplyPoison(e, t.Damage, t.Duration)
		case defs.EffectIce:
			ApplySlow(e, t.Duration)
		}

		t.Uses--
		t.Cooldown = t.CooldownTime
		if t.Uses <= 0 {
			t.Alive = false
		}
		s.dispatch(t, e)
		return
	}
}

func (s *TrapSystem) dispatch(t *component.Trap, e *component.Enemy) {
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.TrapTriggered,
		Data: event.EntityPayload{ID: t.ID, Kind: string(t.Kind), X: e.X, Y: e.Y},
	})
}
