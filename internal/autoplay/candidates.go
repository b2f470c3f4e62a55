// internal/autoplay/candidates.go
package autoplay

import (
	"math"

	"go-neon-defense/pkg/pathcurve"
)

// Candidates — точки по обе стороны пути, от входа к выходу.
// Башни у начала пути успевают выстрелить больше раз.
func Candidates(c *pathcurve.Curve) []pathcurve.Point {
	if c == nil {
		return nil
	}
	var out []pathcurve.Point
	for i := 1; i < samples; i++ {
		p := float64(i) / samples
		x, y := c.PositionAtProgress(p)
		nx, ny := c.PositionAtProgress(math.Min(1, p+0.01))
		dx, dy := nx-x, ny-y
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		// нормаль к направлению движения
		ox, oy := -dy/l*sideOffset, dx/l*sideOffset
		out = append(out,
			pathcurve.Point{X: x + ox, Y: y + oy},
			pathcurve.Point{X: x - ox, Y: y - oy},
		)
	}
	return out
}
