// internal/component/enemy.go
package component

import (
	"go-neon-defense/internal/defs"
	"go-neon-defense/internal/types"
)

// Enemy представляет вражескую сущность.
// Позиция всегда выводится из Progress, кроме случая, когда враг стоит.
type Enemy struct {
	ID   types.EntityID
	Kind defs.EnemyKind
	Position

	HP, MaxHP int
	Progress  float64 // 0..1 вдоль пути
	Speed     float64
	BaseSpeed float64
	Gold      int
	Wave      int // индекс волны, в которой враг появился
	Resist    defs.Resistances

	Slow   SlowEffect
	Poison PoisonEffect

	HealRadius   float64
	HealRate     float64
	HealCooldown float64

	Stealthed    bool
	StealthAlpha float64

	Alive      bool
	ReachedEnd bool
	Settled    bool // награда или потеря жизни уже учтены

	// Два взаимоисключающих блока движения.
	BlockedByBarricade bool
	BlockedBySentinel  bool

	StructureTarget      types.EntityID // баррикада или стена, которую враг атакует
	StructureAttackTimer float64
}

// IsBlocked — стоит ли враг на месте в этом тике.
func (e *Enemy) IsBlocked() bool {
	return e.BlockedByBarricade || e.BlockedBySentinel
}

// Targetable — можно ли атаковать врага.
func (e *Enemy) Targetable() bool {
	return e.Alive && !e.ReachedEnd
}
