// internal/system/aura.go
package system

import (
	"math"

	"go-neon-defense/internal/component"
	"go-neon-defense/internal/config"
	"go-neon-defense/internal/event"
)

// tickHealAura — лекарь раз в секунду восстанавливает здоровье соседям.
func (s *EnemySystem) tickHealAura(healer *component.Enemy, scaled, levelScale float64) {
	healer.HealCooldown -= scaled
	if healer.HealCooldown > 0 {
		return
	}
	healer.HealCooldown = config.HealInterval

	amount := int(math.Floor(healer.HealRate * levelScale))
	if amount <= 0 {
		return
	}
	for _, other := range s.ecs.Enemies {
		if other == healer || !other.Alive || other.HP >= other.MaxHP {
			continue
		}
		if healer.DistanceTo(other.Position) > healer.HealRadius {
			continue
		}
		other.HP = min(other.MaxHP, other.HP+amount)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyHealed,
			Data: event.EntityPayload{ID: other.ID, Kind: string(other.Kind), X: other.X, Y: other.Y},
		})
	}
}
