// internal/system/movement.go
package system

import (
	"math"

	"go-neon-defense/internal/component"
	"go-neon-defense/internal/config"
	"go-neon-defense/pkg/pathcurve"
)

// advance продвигает врага по пути. Скорость задана в единицах за 1/60 с,
// поэтому шаг нормализуется к частоте тиков.
func advance(e *component.Enemy, curve *pathcurve.Curve, deltaTime, speedMultiplier float64) {
	total := curve.TotalLength()
	if total <= 0 {
		e.Progress = 1
		return
	}
	inc := e.Speed * speedMultiplier * config.TickNormalizer * deltaTime / total
	e.Progress = math.Min(1, e.Progress+inc)
	e.X, e.Y = curve.PositionAtProgress(e.Progress)
}
