// pkg/pathcurve/generator.go
package pathcurve

import "math"

// WaterZone — круглая водная область.
type WaterZone struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// Map — результат генерации: путь врагов и вода вокруг него.
type Map struct {
	Seed     uint32
	Template string
	Name     string
	Curve    *Curve
	Water    []WaterZone
}

// IsWater — попадает ли точка в одну из водных зон.
func (m *Map) IsWater(x, y float64) bool {
	for _, z := range m.Water {
		if Dist(x, y, z.X, z.Y) <= z.Radius {
			return true
		}
	}
	return false
}

// IsWaterCell проверяет центр клетки.
func (m *Map) IsWaterCell(g Grid, c Cell) bool {
	x, y := g.Center(c)
	return m.IsWater(x, y)
}

// HasWater — есть ли на карте вода.
func (m *Map) HasWater() bool { return len(m.Water) > 0 }

// Generator — источник карт. Любая детерминированная по сиду
// реализация взаимозаменяема.
type Generator interface {
	Generate(seed uint32) *Map
}

// Bounds задаёт прямоугольник, в который зажимаются внутренние точки пути.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// TemplateGenerator выбирает шаблон по сиду, заполняет его случайными
// смещениями и сглаживает ломаную.
type TemplateGenerator struct {
	Templates []Template
	Bounds    Bounds
}

// NewTemplateGenerator — генератор со встроенным набором шаблонов.
func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{
		Templates: DefaultTemplates(),
		Bounds:    Bounds{MinX: 40, MaxX: 760, MinY: 40, MaxY: 570},
	}
}

// Generate строит карту для сида.
func (g *TemplateGenerator) Generate(seed uint32) *Map {
	rng := newMulberry32(seed)
	tpl := g.Templates[rng.Int(0, len(g.Templates)-1)]

	pts, water := tpl.Build(rng.Range)

	// крайние точки остаются за экраном, внутренние — в рамке
	for i := 1; i < len(pts)-1; i++ {
		pts[i].X = math.Max(g.Bounds.MinX, math.Min(g.Bounds.MaxX, pts[i].X))
		pts[i].Y = math.Max(g.Bounds.MinY, math.Min(g.Bounds.MaxY, pts[i].Y))
	}

	return &Map{
		Seed:     seed,
		Template: tpl.ID,
		Name:     tpl.Name,
		Curve:    MustNew(Subdivide(pts)),
		Water:    water,
	}
}

// Subdivide срезает углы ломаной: каждый внутренний сегмент
// заменяется точками на 1/4 и 3/4 его длины. Концы сохраняются.
func Subdivide(pts []Point) []Point {
	if len(pts) < 3 {
		return pts
	}
	out := make([]Point, 0, len(pts)*2)
	out = append(out, pts[0])
	for i := 0; i < len(pts)-1; i++ {
		p0, p1 := pts[i], pts[i+1]
		if i > 0 {
			out = append(out, Point{X: p0.X*0.75 + p1.X*0.25, Y: p0.Y*0.75 + p1.Y*0.25})
		}
		out = append(out, Point{X: p0.X*0.25 + p1.X*0.75, Y: p0.Y*0.25 + p1.Y*0.75})
	}
	return append(out, pts[len(pts)-1])
}

// StaticGenerator всегда отдаёт одну и ту же карту. Удобен в тестах
// и для ручных уровней.
type StaticGenerator struct {
	Points []Point
	Water  []WaterZone
}

// Generate возвращает карту из фиксированных точек.
func (s StaticGenerator) Generate(seed uint32) *Map {
	return &Map{
		Seed:     seed,
		Template: "static",
		Name:     "Static",
		Curve:    MustNew(s.Points),
		Water:    append([]WaterZone(nil), s.Water...),
	}
}
