package pathcurve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateGenerator_Deterministic(t *testing.T) {
	gen := NewTemplateGenerator()
	a := gen.Generate(7919)
	b := gen.Generate(7919)

	assert.Equal(t, a.Template, b.Template)
	assert.Equal(t, a.Curve.Points(), b.Curve.Points())
	assert.Equal(t, a.Water, b.Water)
}

func TestTemplateGenerator_ClampsInteriorPoints(t *testing.T) {
	gen := NewTemplateGenerator()
	for seed := uint32(1); seed < 200; seed++ {
		m := gen.Generate(seed)
		pts := m.Curve.Points()
		require.GreaterOrEqual(t, len(pts), 2)
		// после сглаживания внутренние точки — выпуклые комбинации зажатых
		for i := 2; i < len(pts)-2; i++ {
			assert.GreaterOrEqual(t, pts[i].X, 40.0-1e-9)
			assert.LessOrEqual(t, pts[i].X, 760.0+1e-9)
			assert.GreaterOrEqual(t, pts[i].Y, 40.0-1e-9)
			assert.LessOrEqual(t, pts[i].Y, 570.0+1e-9)
		}
		assert.Greater(t, m.Curve.TotalLength(), 0.0)
	}
}

func TestTemplateGenerator_CoversSeveralTemplates(t *testing.T) {
	gen := NewTemplateGenerator()
	seen := map[string]bool{}
	water := false
	for seed := uint32(1); seed < 500; seed++ {
		m := gen.Generate(seed)
		seen[m.Template] = true
		if m.HasWater() {
			water = true
		}
	}
	assert.Greater(t, len(seen), 5)
	assert.True(t, water)
}

func TestSubdivide_KeepsEndpoints(t *testing.T) {
	in := []Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}}
	out := Subdivide(in)

	require.Len(t, out, 5)
	assert.Equal(t, in[0], out[0])
	assert.Equal(t, in[2], out[len(out)-1])
	assert.Equal(t, Point{X: 75, Y: 0}, out[1])
	assert.Equal(t, Point{X: 100, Y: 25}, out[2])
}

func TestMap_IsWater(t *testing.T) {
	m := &Map{Water: []WaterZone{{X: 100, Y: 100, Radius: 50}}}
	assert.True(t, m.IsWater(100, 100))
	assert.True(t, m.IsWater(150, 100))
	assert.False(t, m.IsWater(151, 100))

	g := NewGrid(800, 600, 10)
	assert.True(t, m.IsWaterCell(g, Cell{Col: 10, Row: 10}))
	assert.False(t, m.IsWaterCell(g, Cell{Col: 0, Row: 0}))
}

func TestMulberry32_Range(t *testing.T) {
	r := newMulberry32(42)
	for i := 0; i < 10000; i++ {
		v := r.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
	for i := 0; i < 1000; i++ {
		n := r.Int(0, 10)
		assert.GreaterOrEqual(t, n, 0)
		assert.LessOrEqual(t, n, 10)
	}
}

func TestStaticGenerator(t *testing.T) {
	gen := StaticGenerator{Points: []Point{{X: 0, Y: 0}, {X: 10, Y: 0}}}
	m := gen.Generate(3)
	assert.Equal(t, uint32(3), m.Seed)
	assert.Equal(t, 10.0, m.Curve.TotalLength())
	assert.False(t, m.HasWater())
}
