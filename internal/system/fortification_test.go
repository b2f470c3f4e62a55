package system

import (
	"testing"

	"go-neon-defense/internal/config"
	"go-neon-defense/internal/defs"
	"go-neon-defense/internal/entity"
	"go-neon-defense/internal/event"
	"go-neon-defense/internal/types"
	"go-neon-defense/pkg/pathcurve"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFortification(w *testWorld) (*entity.ECS, *FortificationSystem, *recorder) {
	ecs := entity.NewECS()
	disp, rec := newDispatcher()
	return ecs, NewFortificationSystem(ecs, defs.DefaultLibrary(), w, disp), rec
}

// pathCell — клетка ряда 30, по которому идёт прямой путь.
func pathCell(col int) pathcurve.Cell { return pathcurve.Cell{Col: col, Row: 30} }

func TestFortificationSystem_Stock(t *testing.T) {
	_, sys, _ := newFortification(straightWorld())
	assert.Equal(t, 0, sys.Stock())

	sys.OnWaveStart()
	assert.Equal(t, config.BarricadesPerWave, sys.Stock())
	sys.OnWaveStart()
	sys.OnWaveStart()
	assert.Equal(t, config.MaxBarricadeStock, sys.Stock())

	sys.OnLevelStart()
	assert.Equal(t, config.BarricadesPerWave, sys.Stock())
}

func TestFortificationSystem_ValidateBarricade(t *testing.T) {
	_, sys, _ := newFortification(straightWorld())

	assert.ErrorIs(t, sys.ValidateBarricade(pathCell(20), false), ErrNotInWave)
	assert.ErrorIs(t, sys.ValidateBarricade(pathCell(20), true), ErrNoStock)

	sys.OnWaveStart()
	assert.ErrorIs(t, sys.ValidateBarricade(pathcurve.Cell{Col: -1, Row: 30}, true), ErrOffGrid)
	assert.ErrorIs(t, sys.ValidateBarricade(pathcurve.Cell{Col: 20, Row: 10}, true), ErrOffPath)
	assert.NoError(t, sys.ValidateBarricade(pathCell(20), true))

	_, err := sys.PlaceBarricade(pathCell(20), true)
	require.NoError(t, err)
	assert.ErrorIs(t, sys.ValidateBarricade(pathCell(20), true), ErrOccupied)
}

func TestFortificationSystem_PlaceBarricadeSpendsStock(t *testing.T) {
	ecs, sys, rec := newFortification(straightWorld())
	sys.OnWaveStart()

	for i := 0; i < config.BarricadesPerWave; i++ {
		st, err := sys.PlaceBarricade(pathCell(10+i), true)
		require.NoError(t, err)
		assert.Equal(t, 30, st.HP)
		assert.Equal(t, defs.StructureBarricade, st.Kind)
	}
	_, err := sys.PlaceBarricade(pathCell(30), true)
	assert.ErrorIs(t, err, ErrNoStock)
	assert.Equal(t, 0, sys.Stock())
	assert.Len(t, ecs.Structures, config.BarricadesPerWave)
	assert.Equal(t, config.BarricadesPerWave, rec.count(event.BarricadePlaced))

	st := sys.StructureAt(pathCell(10))
	require.NotNil(t, st)
	assert.Equal(t, 105.0, st.X)
	assert.Equal(t, 305.0, st.Y)
}

func TestFortificationSystem_BarricadeBreaks(t *testing.T) {
	w := straightWorld()
	ecs, sys, rec := newFortification(w)
	sys.OnWaveStart()

	st, err := sys.PlaceBarricade(pathCell(20), true)
	require.NoError(t, err)
	e := addEnemy(ecs, w, defs.EnemyBasic, 195, 305)

	for i := 0; i < 600 && rec.count(event.StructureHit) < 3; i++ {
		sys.Update(dt, 1)
		assert.True(t, e.BlockedByBarricade)
	}
	assert.Equal(t, 15, st.HP)
	assert.Equal(t, st.ID, e.StructureTarget)

	for i := 0; i < 600 && rec.count(event.StructureHit) < 6; i++ {
		sys.Update(dt, 1)
	}
	assert.Equal(t, 0, st.HP)
	assert.Equal(t, 1, rec.count(event.StructureDestroyed))
	assert.Empty(t, ecs.Structures)
	assert.False(t, e.BlockedByBarricade)
	assert.Equal(t, types.NoEntity, e.StructureTarget)
	assert.Nil(t, sys.StructureAt(pathCell(20)))
}

func TestFortificationSystem_HitCadence(t *testing.T) {
	w := straightWorld()
	ecs, sys, rec := newFortification(w)
	sys.OnWaveStart()
	_, err := sys.PlaceBarricade(pathCell(20), true)
	require.NoError(t, err)
	addEnemy(ecs, w, defs.EnemyBasic, 195, 305)

	// Удар каждые полсекунды
	run(29, sys.Update)
	assert.Equal(t, 0, rec.count(event.StructureHit))
	run(2, sys.Update)
	assert.Equal(t, 1, rec.count(event.StructureHit))
}

func TestFortificationSystem_FarEnemyIgnoresBarricade(t *testing.T) {
	w := straightWorld()
	ecs, sys, _ := newFortification(w)
	sys.OnWaveStart()
	_, err := sys.PlaceBarricade(pathCell(20), true)
	require.NoError(t, err)
	e := addEnemy(ecs, w, defs.EnemyBasic, 150, 305)

	run(10, sys.Update)
	assert.False(t, e.BlockedByBarricade)
	assert.Equal(t, types.NoEntity, e.StructureTarget)
}

func TestFortificationSystem_SentinelBlockedSkipsBarricade(t *testing.T) {
	w := straightWorld()
	ecs, sys, _ := newFortification(w)
	sys.OnWaveStart()
	_, err := sys.PlaceBarricade(pathCell(20), true)
	require.NoError(t, err)
	e := addEnemy(ecs, w, defs.EnemyBasic, 195, 305)
	e.BlockedBySentinel = true

	run(60, sys.Update)
	assert.False(t, e.BlockedByBarricade, "blocks never overlap")
	assert.Equal(t, types.NoEntity, e.StructureTarget)
}

func TestFortificationSystem_ValidateWall(t *testing.T) {
	w := newTestWorld(
		[]pathcurve.WaterZone{{X: 400, Y: 100, Radius: 30}},
		pathcurve.Point{X: 0, Y: 305}, pathcurve.Point{X: 800, Y: 305},
	)
	_, sys, rec := newFortification(w)

	assert.ErrorIs(t, sys.ValidateWall(pathCell(20)), ErrOnPath)
	assert.ErrorIs(t, sys.ValidateWall(pathcurve.Cell{Col: 40, Row: 10}), ErrWater)
	assert.ErrorIs(t, sys.ValidateWall(pathcurve.Cell{Col: 200, Row: 10}), ErrOffGrid)

	st, err := sys.PlaceWall(pathcurve.Cell{Col: 20, Row: 31})
	require.NoError(t, err)
	assert.Equal(t, 100, st.HP)
	assert.ErrorIs(t, sys.ValidateWall(pathcurve.Cell{Col: 20, Row: 31}), ErrOccupied)
	assert.Equal(t, 1, rec.count(event.WallPlaced))
}

func TestFortificationSystem_WallStopsOnlyHeavy(t *testing.T) {
	w := straightWorld()
	ecs, sys, rec := newFortification(w)
	wall, err := sys.PlaceWall(pathcurve.Cell{Col: 20, Row: 31})
	require.NoError(t, err)

	basic := addEnemy(ecs, w, defs.EnemyBasic, 200, 305)
	tank := addEnemy(ecs, w, defs.EnemyTank, 205, 305)

	run(61, sys.Update)
	assert.False(t, basic.BlockedByBarricade)
	assert.True(t, tank.BlockedByBarricade)
	assert.Equal(t, wall.ID, tank.StructureTarget)
	assert.Equal(t, 1, rec.count(event.StructureHit))
	assert.Equal(t, 92, wall.HP)
}

func TestFortificationSystem_OnLevelStartReleases(t *testing.T) {
	w := straightWorld()
	ecs, sys, _ := newFortification(w)
	sys.OnWaveStart()
	_, err := sys.PlaceBarricade(pathCell(20), true)
	require.NoError(t, err)
	e := addEnemy(ecs, w, defs.EnemyBasic, 195, 305)
	sys.Update(dt, 1)
	require.True(t, e.BlockedByBarricade)

	sys.OnLevelStart()
	assert.Empty(t, ecs.Structures)
	assert.False(t, e.BlockedByBarricade)
	assert.Equal(t, types.NoEntity, e.StructureTarget)
}
