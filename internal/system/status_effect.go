// internal/system/status_effect.go
package system

import (
	"go-neon-defense/internal/component"
	"go-neon-defense/internal/config"
	"go-neon-defense/internal/defs"
)

// ApplySlow замедляет врага на duration секунд. Повторное замедление
// продлевает таймер, но не складывается.
func ApplySlow(e *component.Enemy, duration float64) {
	e.Slow.Active = true
	e.Slow.Timer = duration
}

// ApplyPoison отравляет врага. Таймер тика не сбрасывается,
// поэтому первое отравление срабатывает в ближайшем тике.
func ApplyPoison(e *component.Enemy, damage int, duration float64) {
	e.Poison.Active = true
	e.Poison.Damage = damage
	e.Poison.Timer = duration
}

// tickSlow — скорость от базовой, пока эффект активен.
func tickSlow(e *component.Enemy, scaled float64) {
	if !e.Slow.Active {
		return
	}
	e.Speed = e.BaseSpeed * config.SlowFactor
	e.Slow.Timer -= scaled
	if e.Slow.Timer <= 0 {
		e.Slow = component.SlowEffect{}
		e.Speed = e.BaseSpeed
	}
}

// tickPoison наносит урон ядом каждые PoisonTickInterval секунд.
// Возвращает true, если враг погиб.
func tickPoison(e *component.Enemy, scaled float64) bool {
	if !e.Poison.Active {
		return false
	}
	e.Poison.TickTimer -= scaled
	if e.Poison.TickTimer <= 0 {
		// Яд — чистый урон, сопротивления на него не действуют
		ApplyDamage(e, float64(e.Poison.Damage), defs.DamageDirect)
		e.Poison.TickTimer = config.PoisonTickInterval
	}
	e.Poison.Timer -= scaled
	if e.Poison.Timer <= 0 {
		e.Poison = component.PoisonEffect{}
	}
	return !e.Alive
}
