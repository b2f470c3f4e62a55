// internal/component/projectile.go
package component

import (
	"go-neon-defense/internal/defs"
	"go-neon-defense/internal/types"
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	ID types.EntityID
	Position
	TargetID   types.EntityID
	TargetX    float64 // последняя известная позиция цели
	TargetY    float64
	Speed      float64
	Damage     int
	DamageType defs.DamageType
	Source     defs.TowerKind // для цвета при отрисовке
	Alive      bool
}

// Ring — расширяющееся кольцо урона башни по площади.
// Каждый враг получает урон не более одного раза.
type Ring struct {
	ID types.EntityID
	Position
	Radius     float64
	MaxRadius  float64
	Speed      float64
	Damage     int
	DamageType defs.DamageType
	Slow       bool
	Source     defs.TowerKind
	Hit        map[types.EntityID]struct{}
	Alive      bool
}
