// internal/render/shapes.go
package render

import "math"

type point struct{ x, y float64 }

// polygon — вершины правильного многоугольника.
func polygon(cx, cy, radius float64, sides int, rotation float64) []point {
	if sides < 3 {
		sides = 3
	}
	pts := make([]point, sides)
	for i := range pts {
		a := rotation + 2*math.Pi*float64(i)/float64(sides)
		pts[i] = point{cx + radius*math.Cos(a), cy + radius*math.Sin(a)}
	}
	return pts
}

// shapePoints — контур врага по имени формы из определений.
func shapePoints(shape string, cx, cy, size, t float64) []point {
	switch shape {
	case "diamond":
		return polygon(cx, cy, size, 4, 0)
	case "hexagon":
		return polygon(cx, cy, size, 6, t*0.5)
	case "shield":
		return polygon(cx, cy, size, 5, -math.Pi/2)
	case "cross":
		w := size / 3
		return []point{
			{cx - w, cy - size}, {cx + w, cy - size}, {cx + w, cy - w},
			{cx + size, cy - w}, {cx + size, cy + w}, {cx + w, cy + w},
			{cx + w, cy + size}, {cx - w, cy + size}, {cx - w, cy + w},
			{cx - size, cy + w}, {cx - size, cy - w}, {cx - w, cy - w},
		}
	}
	return polygon(cx, cy, size, 16, 0)
}
