package pathcurve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lShape() *Curve {
	return MustNew([]Point{{X: 0, Y: 0}, {X: 30, Y: 40}, {X: 30, Y: 100}, {X: 130, Y: 100}})
}

func TestNew_RejectsTooFewPoints(t *testing.T) {
	_, err := New([]Point{{X: 1, Y: 1}})
	require.ErrorIs(t, err, ErrTooFewPoints)

	_, err = New(nil)
	require.ErrorIs(t, err, ErrTooFewPoints)
}

func TestCurve_TotalLength(t *testing.T) {
	c := lShape()
	// 50 + 60 + 100
	assert.InDelta(t, 210.0, c.TotalLength(), 1e-9)
}

func TestCurve_PositionAtProgress_Endpoints(t *testing.T) {
	c := lShape()

	x, y := c.PositionAtProgress(0)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)

	x, y = c.PositionAtProgress(1)
	assert.Equal(t, 130.0, x)
	assert.Equal(t, 100.0, y)

	// за пределами диапазона — зажимается
	x, y = c.PositionAtProgress(-3)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
	x, y = c.PositionAtProgress(7)
	assert.Equal(t, 130.0, x)
	assert.Equal(t, 100.0, y)
}

func TestCurve_PositionAtProgress_Interpolates(t *testing.T) {
	c := lShape()

	// 25 / 210 — середина первого сегмента
	x, y := c.PositionAtProgress(25.0 / 210.0)
	assert.InDelta(t, 15.0, x, 1e-9)
	assert.InDelta(t, 20.0, y, 1e-9)

	// ровно на стыке сегментов
	x, y = c.PositionAtProgress(50.0 / 210.0)
	assert.InDelta(t, 30.0, x, 1e-9)
	assert.InDelta(t, 40.0, y, 1e-9)

	x, y = c.PositionAtProgress(160.0 / 210.0)
	assert.InDelta(t, 80.0, x, 1e-9)
	assert.InDelta(t, 100.0, y, 1e-9)
}

func TestCurve_PositionAtProgress_Continuous(t *testing.T) {
	c := lShape()
	const eps = 1e-6
	for i := 0; i < 1000; i++ {
		p := float64(i) / 1000
		x1, y1 := c.PositionAtProgress(p)
		x2, y2 := c.PositionAtProgress(p + eps)
		// шаг по прогрессу eps не может сдвинуть точку дальше eps*length
		assert.LessOrEqual(t, Dist(x1, y1, x2, y2), eps*c.TotalLength()+1e-9)
	}
}

func TestCurve_PositionAtProgress_MonotonicDistance(t *testing.T) {
	c := MustNew([]Point{{X: 0, Y: 0}, {X: 1000, Y: 0}})
	prev := -1.0
	for i := 0; i <= 100; i++ {
		x, _ := c.PositionAtProgress(float64(i) / 100)
		assert.Greater(t, x, prev)
		prev = x
	}
}

func TestCurve_ZeroLengthSegment(t *testing.T) {
	c := MustNew([]Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}})
	assert.InDelta(t, 20.0, c.TotalLength(), 1e-9)
	x, y := c.PositionAtProgress(0.5)
	assert.InDelta(t, 10.0, x, 1e-9)
	assert.InDelta(t, 0.0, y, 1e-9)
	assert.False(t, math.IsNaN(x))
}

func TestCurve_PointsAreCopied(t *testing.T) {
	src := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	c := MustNew(src)
	src[1].X = 999
	assert.Equal(t, 10.0, c.End().X)

	pts := c.Points()
	pts[0].X = 42
	assert.Equal(t, 0.0, c.Start().X)
}

func TestCurve_NearestSample(t *testing.T) {
	c := MustNew([]Point{{X: 0, Y: 100}, {X: 1000, Y: 100}})
	p, progress := c.NearestSample(505, 10, 0.02)
	assert.InDelta(t, 500.0, p.X, 1e-6)
	assert.InDelta(t, 100.0, p.Y, 1e-6)
	assert.InDelta(t, 0.5, progress, 1e-6)
}

func TestCurve_BlockedCells_NoGaps(t *testing.T) {
	// длинный диагональный сегмент при мелкой сетке
	c := MustNew([]Point{{X: 5, Y: 5}, {X: 395, Y: 295}})
	g := NewGrid(800, 600, 10)
	blocked := c.BlockedCells(g)

	for i := 0; i <= 10000; i++ {
		x, y := c.PositionAtProgress(float64(i) / 10000)
		require.True(t, blocked.Has(g.CellAt(x, y)), "gap at %.2f,%.2f", x, y)
	}
}

func TestCurve_BlockedCells_DiagonalThroughCorners(t *testing.T) {
	c := MustNew([]Point{{X: 0, Y: 0}, {X: 30, Y: 30}})
	g := NewGrid(800, 600, 10)
	blocked := c.BlockedCells(g)

	for i := 0; i <= 3; i++ {
		assert.True(t, blocked.Has(Cell{Col: i, Row: i}))
	}
	// соседи по углу тоже заняты
	assert.True(t, blocked.Has(Cell{Col: 1, Row: 0}))
	assert.True(t, blocked.Has(Cell{Col: 0, Row: 1}))
	assert.False(t, blocked.Has(Cell{Col: 2, Row: 0}))
}

func TestCurve_BlockedCells_LeftwardSegment(t *testing.T) {
	c := MustNew([]Point{{X: 395, Y: 5}, {X: 5, Y: 295}})
	g := NewGrid(800, 600, 10)
	blocked := c.BlockedCells(g)

	for i := 0; i <= 10000; i++ {
		x, y := c.PositionAtProgress(float64(i) / 10000)
		require.True(t, blocked.Has(g.CellAt(x, y)), "gap at %.2f,%.2f", x, y)
	}
}

func TestCurve_BlockedCells_GeneratedMaps(t *testing.T) {
	gen := NewTemplateGenerator()
	g := NewGrid(800, 600, 10)
	for seed := uint32(1); seed <= 50; seed++ {
		c := gen.Generate(seed).Curve
		blocked := c.BlockedCells(g)
		for i := 0; i <= 2000; i++ {
			x, y := c.PositionAtProgress(float64(i) / 2000)
			cell := g.CellAt(x, y)
			if !g.Contains(cell) {
				continue
			}
			require.True(t, blocked.Has(cell), "seed %d gap at %.2f,%.2f", seed, x, y)
		}
	}
}

func TestCurve_BlockedCells_DropsOffMapAndMemoizes(t *testing.T) {
	c := MustNew([]Point{{X: -20, Y: 55}, {X: 100, Y: 55}})
	g := NewGrid(800, 600, 10)

	blocked := c.BlockedCells(g)
	for _, cell := range blocked.Cells() {
		assert.True(t, g.Contains(cell))
		assert.Equal(t, 5, cell.Row)
	}
	assert.Equal(t, 11, blocked.Len()) // колонки 0..10

	assert.Same(t, blocked, c.BlockedCells(g))
	other := c.BlockedCells(NewGrid(800, 600, 20))
	assert.NotSame(t, blocked, other)
}
