package system

import (
	"testing"

	"go-neon-defense/internal/config"
	"go-neon-defense/internal/defs"
	"go-neon-defense/internal/entity"
	"go-neon-defense/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnemy_Scaling(t *testing.T) {
	w := straightWorld()
	def, ok := defs.DefaultLibrary().Enemy(defs.EnemyBasic)
	require.True(t, ok)

	e := NewEnemy(1, def, 5, 1, w.Curve())
	assert.Equal(t, 60, e.HP)
	assert.Equal(t, 60, e.MaxHP)
	assert.Equal(t, 2.0, e.Speed)
	assert.Equal(t, 10, e.Gold)
	assert.Equal(t, 0.0, e.Progress)
	assert.Equal(t, 0.0, e.X)
	assert.Equal(t, 305.0, e.Y)

	e = NewEnemy(2, def, 0, 2, w.Curve())
	assert.Equal(t, 60, e.HP)
	assert.InDelta(t, 2.3, e.Speed, 1e-9)
	assert.Equal(t, e.Speed, e.BaseSpeed)
	assert.Equal(t, 16, e.Gold)

	// Нулевой множитель трактуется как первый уровень
	e = NewEnemy(3, def, 0, 0, w.Curve())
	assert.Equal(t, 30, e.HP)
}

func TestNewEnemy_Stealth(t *testing.T) {
	w := straightWorld()
	def, _ := defs.DefaultLibrary().Enemy(defs.EnemyStealth)
	e := NewEnemy(1, def, 0, 1, w.Curve())
	assert.True(t, e.Stealthed)
	assert.Equal(t, config.StealthAlpha, e.StealthAlpha)
	assert.True(t, e.Targetable())
}

func TestEnemySystem_MovesAlongPath(t *testing.T) {
	w := straightWorld()
	ecs := entity.NewECS()
	sys := NewEnemySystem(ecs, w, event.NewDispatcher())
	e := addEnemy(ecs, w, defs.EnemyBasic, 0, 305)

	run(60, sys.Update)

	// 2 единицы за 1/60 с, то есть 120 пикселей в секунду
	assert.InDelta(t, 0.15, e.Progress, 1e-9)
	assert.InDelta(t, 120, e.X, 1e-6)
	assert.InDelta(t, 305, e.Y, 1e-9)
}

func TestEnemySystem_SpeedMultiplier(t *testing.T) {
	w := straightWorld()
	ecs := entity.NewECS()
	sys := NewEnemySystem(ecs, w, event.NewDispatcher())
	e := addEnemy(ecs, w, defs.EnemyBasic, 0, 305)

	for i := 0; i < 20; i++ {
		sys.Update(dt, 3)
	}
	assert.InDelta(t, 0.15, e.Progress, 1e-9)
}

func TestEnemySystem_SlowHalvesSpeed(t *testing.T) {
	w := straightWorld()
	ecs := entity.NewECS()
	sys := NewEnemySystem(ecs, w, event.NewDispatcher())
	e := addEnemy(ecs, w, defs.EnemyBasic, 0, 305)

	ApplySlow(e, 1)
	sys.Update(dt, 1)
	assert.Equal(t, 1.0, e.Speed)
	assert.InDelta(t, 0.00125, e.Progress, 1e-12)

	run(70, sys.Update)
	assert.False(t, e.Slow.Active)
	assert.Equal(t, 2.0, e.Speed)
}

func TestEnemySystem_PoisonIgnoresResistance(t *testing.T) {
	w := straightWorld()
	ecs := entity.NewECS()
	sys := NewEnemySystem(ecs, w, event.NewDispatcher())
	tank := addEnemy(ecs, w, defs.EnemyTank, 0, 305)

	ApplyPoison(tank, 5, 3)
	sys.Update(dt, 1)
	assert.Equal(t, 95, tank.HP, "first tick lands at once with no fire or kinetic scaling")

	run(200, sys.Update)
	assert.False(t, tank.Poison.Active)
	assert.Contains(t, []int{65, 70}, tank.HP)
}

func TestEnemySystem_PoisonKills(t *testing.T) {
	w := straightWorld()
	ecs := entity.NewECS()
	sys := NewEnemySystem(ecs, w, event.NewDispatcher())
	e := addEnemy(ecs, w, defs.EnemySwarm, 0, 305)
	e.HP = 4

	ApplyPoison(e, 5, 3)
	start := e.Progress
	sys.Update(dt, 1)
	assert.False(t, e.Alive)
	assert.False(t, e.ReachedEnd)
	assert.Equal(t, start, e.Progress)
}

func TestEnemySystem_HealAura(t *testing.T) {
	w := straightWorld()
	ecs := entity.NewECS()
	disp, rec := newDispatcher()
	sys := NewEnemySystem(ecs, w, disp)

	healer := addEnemy(ecs, w, defs.EnemyHealer, 100, 305)
	near := addEnemy(ecs, w, defs.EnemyBasic, 120, 305)
	far := addEnemy(ecs, w, defs.EnemyBasic, 300, 305)
	healer.HP = 20
	near.HP = 10
	far.HP = 10

	sys.Update(dt, 1)
	assert.Equal(t, 15, near.HP)
	assert.Equal(t, 10, far.HP)
	assert.Equal(t, 20, healer.HP, "healer never heals itself")
	assert.Equal(t, 1, rec.count(event.EnemyHealed))

	// Следующее лечение через секунду
	run(30, sys.Update)
	assert.Equal(t, 15, near.HP)
	run(40, sys.Update)
	assert.Equal(t, 20, near.HP)
}

func TestEnemySystem_HealCapsAtMax(t *testing.T) {
	w := straightWorld()
	ecs := entity.NewECS()
	sys := NewEnemySystem(ecs, w, event.NewDispatcher())
	addEnemy(ecs, w, defs.EnemyHealer, 100, 305)
	near := addEnemy(ecs, w, defs.EnemyBasic, 110, 305)
	near.HP = near.MaxHP - 2

	sys.Update(dt, 1)
	assert.Equal(t, near.MaxHP, near.HP)
}

func TestEnemySystem_ReachesEnd(t *testing.T) {
	w := straightWorld()
	ecs := entity.NewECS()
	sys := NewEnemySystem(ecs, w, event.NewDispatcher())
	e := addEnemy(ecs, w, defs.EnemyBasic, 800, 305)
	e.Progress = 1

	sys.Update(dt, 1)
	assert.False(t, e.Alive)
	assert.True(t, e.ReachedEnd)
	assert.False(t, e.Targetable())
}

func TestEnemySystem_BlockedHoldsPosition(t *testing.T) {
	w := straightWorld()
	ecs := entity.NewECS()
	sys := NewEnemySystem(ecs, w, event.NewDispatcher())
	e := addEnemy(ecs, w, defs.EnemyBasic, 200, 305)
	e.BlockedBySentinel = true
	start := e.Progress
	ApplyPoison(e, 5, 3)

	run(30, sys.Update)
	assert.Equal(t, start, e.Progress)
	assert.Equal(t, 200.0, e.X)
	assert.Less(t, e.HP, e.MaxHP, "status effects keep ticking while blocked")

	e.BlockedBySentinel = false
	sys.Update(dt, 1)
	assert.Greater(t, e.Progress, start)
}
