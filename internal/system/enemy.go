// internal/system/enemy.go
package system

import (
	"math"

	"go-neon-defense/internal/component"
	"go-neon-defense/internal/config"
	"go-neon-defense/internal/defs"
	"go-neon-defense/internal/entity"
	"go-neon-defense/internal/event"
	"go-neon-defense/internal/interfaces"
	"go-neon-defense/internal/types"
	"go-neon-defense/pkg/pathcurve"
)

// EnemySystem ведёт врагов по их конечному автомату: эффекты,
// лечение, проверка конца пути, блокировка и движение.
type EnemySystem struct {
	ecs             *entity.ECS
	path            interfaces.PathContext
	eventDispatcher *event.Dispatcher
}

func NewEnemySystem(ecs *entity.ECS, path interfaces.PathContext, eventDispatcher *event.Dispatcher) *EnemySystem {
	return &EnemySystem{ecs: ecs, path: path, eventDispatcher: eventDispatcher}
}

// NewEnemy создаёт врага в начале пути с учётом номера волны и сложности уровня.
func NewEnemy(id types.EntityID, def defs.EnemyDefinition, wave int, levelScale float64, curve *pathcurve.Curve) *component.Enemy {
	if levelScale <= 0 {
		levelScale = 1
	}
	hpScale := (1 + float64(wave)*config.EnemyHPPerWave) * levelScale
	speedScale := 1 + (levelScale-1)*config.EnemySpeedPerLevel
	goldScale := math.Max(1, levelScale*config.EnemyGoldPerLevel)

	hp := int(math.Floor(float64(def.HP) * hpScale))
	x, y := curve.PositionAtProgress(0)

	e := &component.Enemy{
		ID:         id,
		Kind:       def.ID,
		Position:   component.Position{X: x, Y: y},
		HP:         hp,
		MaxHP:      hp,
		Speed:      def.Speed * speedScale,
		BaseSpeed:  def.Speed * speedScale,
		Gold:       int(math.Floor(float64(def.Gold) * goldScale)),
		Wave:       wave,
		Resist:     def.Resist,
		HealRadius: def.HealRadius,
		HealRate:   def.HealRate,
		Stealthed:  def.Stealth,
		Alive:      true,
	}
	e.StealthAlpha = 1
	if def.Stealth {
		e.StealthAlpha = config.StealthAlpha
	}
	return e
}

func (s *EnemySystem) Update(deltaTime, speedMultiplier float64) {
	curve := s.path.Curve()
	if curve == nil {
		return
	}
	scaled := deltaTime * speedMultiplier
	levelScale := 1.0
	if s.ecs.Wave != nil && s.ecs.Wave.LevelScale > 0 {
		levelScale = s.ecs.Wave.LevelScale
	}

	for _, e := range s.ecs.Enemies {
		if !e.Alive {
			continue
		}

		tickSlow(e, scaled)
		if tickPoison(e, scaled) {
			continue // умер от яда
		}
		if e.HealRate > 0 {
			s.tickHealAura(e, scaled, levelScale)
		}

		// Конец пути: жизнь списывается при учёте в конце тика
		if e.Progress >= 1 {
			e.Alive = false
			e.ReachedEnd = true
			continue
		}

		if e.IsBlocked() {
			continue
		}
		advance(e, curve, deltaTime, speedMultiplier)
	}
}
