// internal/system/combat.go
package system

import (
	"math"

	"go-neon-defense/internal/component"
	"go-neon-defense/internal/defs"
	"go-neon-defense/internal/entity"
	"go-neon-defense/internal/event"
	"go-neon-defense/internal/types"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs              *entity.ECS
	projectileSystem *ProjectileSystem
	eventDispatcher  *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, projectileSystem *ProjectileSystem, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:              ecs,
		projectileSystem: projectileSystem,
		eventDispatcher:  eventDispatcher,
	}
}

// NewTower создаёт башню первого уровня.
func NewTower(id types.EntityID, def defs.TowerDefinition, pos component.Position) *component.Tower {
	t := &component.Tower{
		ID:         id,
		Kind:       def.ID,
		Position:   pos,
		DamageType: def.DamageType,
		AOE:        def.AOE,
		AOESlow:    def.AOESlow,
		Invested:   def.Cost(),
	}
	ApplyTier(t, def, 1)
	return t
}

// ApplyTier заменяет характеристики башни значениями из таблицы уровня.
func ApplyTier(t *component.Tower, def defs.TowerDefinition, tier int) bool {
	stats, ok := def.Tier(tier)
	if !ok {
		return false
	}
	t.Tier = tier
	t.Damage = stats.Damage
	t.Range = stats.Range
	t.FireRate = stats.FireRate
	t.AOERadius = stats.AOERadius
	if stats.Sentinel != nil {
		var rally *component.Position
		if t.Sentinel != nil {
			rally = t.Sentinel.Rally
		}
		t.Sentinel = &component.SentinelRoster{
			MaxUnits:    stats.Sentinel.Units,
			HP:          stats.Sentinel.HP,
			Damage:      stats.Sentinel.DPS,
			Reduction:   stats.Sentinel.Reduction,
			RespawnTime: stats.Sentinel.RespawnTime,
			Rally:       rally,
		}
	}
	return true
}

// UpgradeCost — цена следующего уровня, false если уровень максимальный.
func UpgradeCost(t *component.Tower, def defs.TowerDefinition) (int, bool) {
	if t.Tier >= defs.MaxTier {
		return 0, false
	}
	stats, ok := def.Tier(t.Tier + 1)
	if !ok {
		return 0, false
	}
	return stats.Cost, true
}

// FindTarget — ближайший живой враг в радиусе. При равенстве
// побеждает первый в порядке обхода.
func FindTarget(t *component.Tower, enemies []*component.Enemy) *component.Enemy {
	var closest *component.Enemy
	closestDist := math.Inf(1)
	for _, e := range enemies {
		if !e.Targetable() {
			continue
		}
		d := t.DistanceTo(e.Position)
		if d <= t.Range && d < closestDist {
			closest = e
			closestDist = d
		}
	}
	return closest
}

func (s *CombatSystem) Update(deltaTime, speedMultiplier float64) {
	for _, t := range s.ecs.Towers {
		if t.IsSentinel() {
			continue // башня стражей не стреляет
		}
		t.Cooldown -= deltaTime * speedMultiplier

		target := FindTarget(t, s.ecs.Enemies)
		if target == nil {
			t.TargetID = types.NoEntity
			continue
		}
		t.TargetID = target.ID
		if t.Cooldown > 0 {
			continue
		}

		t.Angle = math.Atan2(target.Y-t.Y, target.X-t.X)
		s.projectileSystem.Fire(t, target)
		t.Cooldown = 1 / t.FireRate

		s.eventDispatcher.Dispatch(event.Event{
			Type: event.TowerFired,
			Data: event.EntityPayload{ID: t.ID, Kind: string(t.Kind), X: t.X, Y: t.Y},
		})
	}
}
