// internal/system/projectile.go
package system

import (
	"go-neon-defense/internal/component"
	"go-neon-defense/internal/config"
	"go-neon-defense/internal/entity"
	"go-neon-defense/internal/event"
	"go-neon-defense/internal/types"
	"go-neon-defense/internal/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
	}
}

// Fire выпускает снаряд по цели или кольцо, если башня бьёт по площади.
func (s *ProjectileSystem) Fire(t *component.Tower, target *component.Enemy) {
	if t.AOE {
		s.ecs.AddRing(&component.Ring{
			ID:         s.ecs.NewEntity(),
			Position:   t.Position,
			MaxRadius:  t.AOERadius,
			Speed:      config.RingSpeed,
			Damage:     t.Damage,
			DamageType: t.DamageType,
			Slow:       t.AOESlow,
			Source:     t.Kind,
			Hit:        make(map[types.EntityID]struct{}),
			Alive:      true,
		})
		return
	}
	s.ecs.AddProjectile(&component.Projectile{
		ID:         s.ecs.NewEntity(),
		Position:   t.Position,
		TargetID:   target.ID,
		TargetX:    target.X,
		TargetY:    target.Y,
		Speed:      config.ProjectileSpeed,
		Damage:     t.Damage,
		DamageType: t.DamageType,
		Source:     t.Kind,
		Alive:      true,
	})
}

// slowedBonus — замедленные враги получают от башен полуторный урон.
func slowedBonus(e *component.Enemy) float64 {
	if e.Slow.Active {
		return config.SlowedDamageBonus
	}
	return 1
}

func (s *ProjectileSystem) Update(deltaTime, speedMultiplier float64) {
	scaled := deltaTime * speedMultiplier

	for _, p := range s.ecs.Projectiles {
		if !p.Alive {
			continue
		}
		target := s.ecs.Enemy(p.TargetID)
		if target != nil && target.Targetable() {
			p.TargetX, p.TargetY = target.X, target.Y
		}

		p.X, p.Y, _ = utils.MoveTowards(p.X, p.Y, p.TargetX, p.TargetY, p.Speed*scaled)
		if utils.Distance(p.X, p.Y, p.TargetX, p.TargetY) < config.ProjectileHitRadius {
			// Цель могла погибнуть в полёте, тогда снаряд просто гаснет
			if target != nil && target.Targetable() {
				dealt := ApplyDamage(target, float64(p.Damage)*slowedBonus(target), p.DamageType)
				s.eventDispatcher.Dispatch(event.Event{
					Type: event.ProjectileHit,
					Data: event.RewardPayload{ID: target.ID, Score: dealt},
				})
			}
			p.Alive = false
			continue
		}
		if p.X < -50 || p.X > config.ScreenWidth+50 || p.Y < -50 || p.Y > config.ScreenHeight+50 {
			p.Alive = false
		}
	}

	for _, r := range s.ecs.Rings {
		if !r.Alive {
			continue
		}
		r.Radius += r.Speed * scaled
		for _, e := range s.ecs.Enemies {
			if !e.Targetable() {
				continue
			}
			if _, done := r.Hit[e.ID]; done {
				continue
			}
			d := r.DistanceTo(e.Position)
			if d > r.Radius+config.RingBand || d < r.Radius-config.RingBand {
				continue
			}
			ApplyDamage(e, float64(r.Damage)*slowedBonus(e), r.DamageType)
			if r.Slow {
				ApplySlow(e, config.RingSlowDuration)
			}
			r.Hit[e.ID] = struct{}{}
		}
		if r.Radius >= r.MaxRadius {
			r.Alive = false
		}
	}

	s.ecs.RemoveDeadShots()
}
