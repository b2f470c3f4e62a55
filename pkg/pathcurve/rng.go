// pkg/pathcurve/rng.go
package pathcurve

// mulberry32 — маленький детерминированный генератор для карт.
// Одинаковый сид всегда даёт одинаковую карту.
type mulberry32 struct {
	state uint32
}

func newMulberry32(seed uint32) *mulberry32 {
	return &mulberry32{state: seed}
}

// Float64 возвращает число в [0, 1).
func (r *mulberry32) Float64() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// Range возвращает число в [min, max).
func (r *mulberry32) Range(min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// Int возвращает целое в [min, max].
func (r *mulberry32) Int(min, max int) int {
	return int(r.Range(float64(min), float64(max+1)))
}
