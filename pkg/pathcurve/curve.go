// pkg/pathcurve/curve.go
package pathcurve

import (
	"errors"
	"math"
	"sort"
	"sync"
)

// ErrTooFewPoints — кривая должна состоять хотя бы из двух точек.
var ErrTooFewPoints = errors.New("pathcurve: at least two control points required")

// Point — точка на плоскости в пикселях карты.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dist возвращает евклидово расстояние между двумя точками.
func Dist(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// Curve — неизменяемая ломаная с параметризацией по длине дуги.
// Новая карта всегда создаёт новую Curve, поэтому все кэши живут
// и умирают вместе с экземпляром.
type Curve struct {
	points     []Point
	segLengths []float64
	cumulative []float64 // cumulative[i] — пройденное расстояние в начале сегмента i
	total      float64

	blockedMu   sync.Mutex
	blockedGrid Grid
	blocked     *CellSet
}

// New строит кривую по контрольным точкам. Точки копируются.
func New(points []Point) (*Curve, error) {
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}
	pts := make([]Point, len(points))
	copy(pts, points)

	c := &Curve{
		points:     pts,
		segLengths: make([]float64, len(pts)-1),
		cumulative: make([]float64, len(pts)-1),
	}
	for i := 0; i < len(pts)-1; i++ {
		l := Dist(pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y)
		c.cumulative[i] = c.total
		c.segLengths[i] = l
		c.total += l
	}
	return c, nil
}

// MustNew — как New, но паникует на некорректных данных. Для тестов и констант.
func MustNew(points []Point) *Curve {
	c, err := New(points)
	if err != nil {
		panic(err)
	}
	return c
}

// Points возвращает копию контрольных точек.
func (c *Curve) Points() []Point {
	out := make([]Point, len(c.points))
	copy(out, c.points)
	return out
}

// Start — первая контрольная точка.
func (c *Curve) Start() Point { return c.points[0] }

// End — последняя контрольная точка.
func (c *Curve) End() Point { return c.points[len(c.points)-1] }

// TotalLength — суммарная длина всех сегментов.
func (c *Curve) TotalLength() float64 { return c.total }

// PositionAtProgress переводит прогресс t∈[0,1] в координаты на ломаной.
// t зажимается в [0,1]; концы возвращаются точно.
func (c *Curve) PositionAtProgress(t float64) (float64, float64) {
	if t <= 0 || math.IsNaN(t) {
		return c.points[0].X, c.points[0].Y
	}
	if t >= 1 {
		end := c.End()
		return end.X, end.Y
	}

	target := t * c.total
	// первый сегмент, конец которого не раньше target
	i := sort.Search(len(c.segLengths), func(i int) bool {
		return c.cumulative[i]+c.segLengths[i] >= target
	})
	if i >= len(c.segLengths) {
		end := c.End()
		return end.X, end.Y
	}

	p1, p2 := c.points[i], c.points[i+1]
	seg := c.segLengths[i]
	if seg == 0 {
		return p1.X, p1.Y
	}
	k := (target - c.cumulative[i]) / seg
	return p1.X + (p2.X-p1.X)*k, p1.Y + (p2.Y-p1.Y)*k
}

// NearestSample ищет ближайшую к (x, y) точку среди выборки кривой
// с шагом step по прогрессу. Возвращает точку и её прогресс.
func (c *Curve) NearestSample(x, y, step float64) (Point, float64) {
	if step <= 0 {
		step = 0.02
	}
	best := c.points[0]
	bestT := 0.0
	bestDist := math.Inf(1)
	for t := 0.0; t <= 1.0+1e-9; t += step {
		px, py := c.PositionAtProgress(t)
		if d := Dist(x, y, px, py); d < bestDist {
			bestDist = d
			best = Point{X: px, Y: py}
			bestT = math.Min(t, 1)
		}
	}
	return best, bestT
}

// BlockedCells растеризует ломаную в множество клеток сетки g:
// отмечается каждая клетка, через которую проходит хотя бы один сегмент.
// Результат кэшируется для последней запрошенной сетки.
func (c *Curve) BlockedCells(g Grid) *CellSet {
	c.blockedMu.Lock()
	defer c.blockedMu.Unlock()

	if c.blocked != nil && c.blockedGrid == g {
		return c.blocked
	}

	set := NewCellSet(g)
	for i := 0; i < len(c.points)-1; i++ {
		traceSegment(set, g, c.points[i], c.points[i+1])
	}

	c.blockedGrid = g
	c.blocked = set
	return set
}

// cornerEps — допуск, при котором пересечение считается проходом через угол клетки.
const cornerEps = 1e-9

// traceSegment обходит клетки отрезка a→b по границам сетки (Amanatides–Woo).
// При проходе через угол добавляются обе соседние клетки.
func traceSegment(set *CellSet, g Grid, a, b Point) {
	cell := g.CellAt(a.X, a.Y)
	end := g.CellAt(b.X, b.Y)
	set.Add(cell)

	dx, dy := b.X-a.X, b.Y-a.Y
	stepX, tMaxX, tDeltaX := axisStep(a.X, dx, cell.Col, g.CellSize)
	stepY, tMaxY, tDeltaY := axisStep(a.Y, dy, cell.Row, g.CellSize)

	for cell != end && math.Min(tMaxX, tMaxY) <= 1+cornerEps {
		switch {
		case math.Abs(tMaxX-tMaxY) < cornerEps:
			set.Add(Cell{Col: cell.Col + stepX, Row: cell.Row})
			set.Add(Cell{Col: cell.Col, Row: cell.Row + stepY})
			cell.Col += stepX
			cell.Row += stepY
			tMaxX += tDeltaX
			tMaxY += tDeltaY
		case tMaxX < tMaxY:
			cell.Col += stepX
			tMaxX += tDeltaX
		default:
			cell.Row += stepY
			tMaxY += tDeltaY
		}
		set.Add(cell)
	}
	set.Add(end)
}

// axisStep — направление шага, параметр t первой границы и шаг t между границами по одной оси.
func axisStep(origin, delta float64, index int, size float64) (int, float64, float64) {
	switch {
	case delta > 0:
		next := float64(index+1) * size
		return 1, (next - origin) / delta, size / delta
	case delta < 0:
		next := float64(index) * size
		return -1, (next - origin) / delta, -size / delta
	default:
		return 0, math.Inf(1), math.Inf(1)
	}
}
