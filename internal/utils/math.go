// internal/utils/math.go
package utils

import "math"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Clamp зажимает v в [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Distance — евклидово расстояние.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// MoveTowards сдвигает точку к цели не более чем на step.
// Второй результат — достигнута ли цель.
func MoveTowards(x, y, tx, ty, step float64) (float64, float64, bool) {
	d := Distance(x, y, tx, ty)
	if d <= step || d == 0 {
		return tx, ty, true
	}
	return x + (tx-x)/d*step, y + (ty-y)/d*step, false
}
