package system

import (
	"go-neon-defense/internal/component"
	"go-neon-defense/internal/config"
	"go-neon-defense/internal/defs"
	"go-neon-defense/internal/entity"
	"go-neon-defense/internal/event"
	"go-neon-defense/pkg/pathcurve"
)

const dt = config.FixedTimeStep

// testWorld — карта с фиксированным путём для тестов систем.
type testWorld struct {
	m    *pathcurve.Map
	grid pathcurve.Grid
}

func newTestWorld(water []pathcurve.WaterZone, points ...pathcurve.Point) *testWorld {
	return &testWorld{
		m:    pathcurve.StaticGenerator{Points: points, Water: water}.Generate(1),
		grid: pathcurve.NewGrid(config.ScreenWidth, config.ScreenHeight, config.GridSize),
	}
}

// straightWorld — горизонтальный путь длиной 800 по центрам клеток ряда 30.
func straightWorld() *testWorld {
	return newTestWorld(nil, pathcurve.Point{X: 0, Y: 305}, pathcurve.Point{X: 800, Y: 305})
}

func (w *testWorld) Curve() *pathcurve.Curve          { return w.m.Curve }
func (w *testWorld) Map() *pathcurve.Map              { return w.m }
func (w *testWorld) Grid() pathcurve.Grid             { return w.grid }
func (w *testWorld) BlockedCells() *pathcurve.CellSet { return w.m.Curve.BlockedCells(w.grid) }

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newDispatcher() (*event.Dispatcher, *recorder) {
	d := event.NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r)
	return d, r
}

// addEnemy создаёт врага по описанию и ставит его в ближайшую к (x, y)
// точку пути.
func addEnemy(ecs *entity.ECS, w *testWorld, kind defs.EnemyKind, x, y float64) *component.Enemy {
	def, _ := defs.DefaultLibrary().Enemy(kind)
	e := NewEnemy(ecs.NewEntity(), def, 0, 1, w.Curve())
	_, e.Progress = w.Curve().NearestSample(x, y, 0.0005)
	e.X, e.Y = x, y
	ecs.AddEnemy(e)
	return e
}

func addTower(ecs *entity.ECS, kind defs.TowerKind, x, y float64) *component.Tower {
	def, _ := defs.DefaultLibrary().Tower(kind)
	t := NewTower(ecs.NewEntity(), def, component.Position{X: x, Y: y})
	ecs.AddTower(t)
	return t
}

func run(ticks int, updates ...func(deltaTime, speedMultiplier float64)) {
	for i := 0; i < ticks; i++ {
		for _, u := range updates {
			u(dt, 1)
		}
	}
}
