// internal/system/damage.go
package system

import (
	"math"

	"go-neon-defense/internal/component"
	"go-neon-defense/internal/defs"
)

// ResolveDamage переводит базовый урон в итоговый с учётом сопротивлений:
// max(1, floor(base × multiplier)).
func ResolveDamage(base float64, damageType defs.DamageType, resist defs.Resistances) int {
	applied := int(math.Floor(base * resist.Multiplier(damageType)))
	if applied < 1 {
		applied = 1 // Минимальный урон 1
	}
	return applied
}

// ApplyDamage наносит урон врагу и возвращает фактически нанесённый.
// Повторный вызов на мёртвом враге ничего не делает и возвращает 0.
func ApplyDamage(e *component.Enemy, base float64, damageType defs.DamageType) int {
	if e == nil || !e.Alive {
		return 0
	}
	applied := ResolveDamage(base, damageType, e.Resist)
	e.HP -= applied
	if e.HP <= 0 {
		e.HP = 0
		e.Alive = false
	}
	return applied
}
