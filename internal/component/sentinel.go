// internal/component/sentinel.go
package component

import "go-neon-defense/internal/types"

// Sentinel — боец ближнего боя, принадлежащий башне стражей.
type Sentinel struct {
	ID      types.EntityID
	TowerID types.EntityID
	Index   int // номер в отряде, задаёт смещение от точки сбора
	Position
	Target Position // куда идти, когда не в бою

	HP, MaxHP float64
	Damage    float64 // в секунду
	Reduction float64
	Speed     float64

	Alive        bool
	RespawnTimer float64
	RespawnTime  float64
	AtRally      bool

	EngagedID   types.EntityID // не более одного врага
	DamageCarry float64        // дробный остаток урона между тиками
}
