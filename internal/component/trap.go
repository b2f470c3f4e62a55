// internal/component/trap.go
package component

import (
	"go-neon-defense/internal/defs"
	"go-neon-defense/internal/types"
)

// Trap — ловушка на пути врагов.
type Trap struct {
	ID   types.EntityID
	Kind defs.TrapKind
	Position

	Damage       int
	Uses         int
	MaxUses      int
	Radius       float64
	Effect       defs.TrapEffect
	Duration     float64
	Cooldown     float64
	CooldownTime float64
	Alive        bool

	// Враги, задетые в текущем окне срабатывания.
	HitEnemies map[types.EntityID]struct{}
}
