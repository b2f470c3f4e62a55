// pkg/pathcurve/grid.go
package pathcurve

import "math"

// Cell — координаты клетки сетки.
type Cell struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Grid описывает дискретизацию карты на квадратные клетки.
type Grid struct {
	CellSize float64
	Cols     int
	Rows     int
}

// NewGrid — сетка, покрывающая область width×height клетками cellSize.
func NewGrid(width, height, cellSize float64) Grid {
	return Grid{
		CellSize: cellSize,
		Cols:     int(math.Ceil(width / cellSize)),
		Rows:     int(math.Ceil(height / cellSize)),
	}
}

// CellAt — клетка, в которую попадает точка.
func (g Grid) CellAt(x, y float64) Cell {
	return Cell{Col: int(math.Floor(x / g.CellSize)), Row: int(math.Floor(y / g.CellSize))}
}

// Center — центр клетки в пикселях.
func (g Grid) Center(c Cell) (float64, float64) {
	return float64(c.Col)*g.CellSize + g.CellSize/2, float64(c.Row)*g.CellSize + g.CellSize/2
}

// Snap привязывает точку к центру её клетки.
func (g Grid) Snap(x, y float64) (float64, float64) {
	return g.Center(g.CellAt(x, y))
}

// Contains — лежит ли клетка внутри сетки.
func (g Grid) Contains(c Cell) bool {
	return c.Col >= 0 && c.Row >= 0 && c.Col < g.Cols && c.Row < g.Rows
}

func (g Grid) key(c Cell) int {
	return c.Row*g.Cols + c.Col
}

// CellSet — плотное булево множество клеток (row*cols+col).
// Клетки вне сетки не хранятся.
type CellSet struct {
	grid  Grid
	cells []bool
	count int
}

// NewCellSet создаёт пустое множество для сетки g.
func NewCellSet(g Grid) *CellSet {
	n := g.Cols * g.Rows
	if n < 0 {
		n = 0
	}
	return &CellSet{grid: g, cells: make([]bool, n)}
}

// Add добавляет клетку; клетки за пределами сетки игнорируются.
func (s *CellSet) Add(c Cell) {
	if !s.grid.Contains(c) {
		return
	}
	k := s.grid.key(c)
	if !s.cells[k] {
		s.cells[k] = true
		s.count++
	}
}

// Remove убирает клетку из множества.
func (s *CellSet) Remove(c Cell) {
	if !s.grid.Contains(c) {
		return
	}
	k := s.grid.key(c)
	if s.cells[k] {
		s.cells[k] = false
		s.count--
	}
}

// Has — содержит ли множество клетку.
func (s *CellSet) Has(c Cell) bool {
	if s == nil || !s.grid.Contains(c) {
		return false
	}
	return s.cells[s.grid.key(c)]
}

// Len — число клеток в множестве.
func (s *CellSet) Len() int { return s.count }

// Grid — сетка, в которой построено множество.
func (s *CellSet) Grid() Grid { return s.grid }

// Cells перечисляет клетки в порядке строк.
func (s *CellSet) Cells() []Cell {
	out := make([]Cell, 0, s.count)
	for k, ok := range s.cells {
		if ok {
			out = append(out, Cell{Col: k % s.grid.Cols, Row: k / s.grid.Cols})
		}
	}
	return out
}
