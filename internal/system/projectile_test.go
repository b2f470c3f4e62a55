package system

import (
	"testing"

	"go-neon-defense/internal/defs"
	"go-neon-defense/internal/entity"
	"go-neon-defense/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectileSystem_Hit(t *testing.T) {
	w := straightWorld()
	ecs := entity.NewECS()
	disp, rec := newDispatcher()
	sys := NewProjectileSystem(ecs, disp)

	tw := addTower(ecs, defs.TowerBlaster, 200, 250)
	e := addEnemy(ecs, w, defs.EnemyBasic, 200, 305)

	sys.Fire(tw, e)
	require.Len(t, ecs.Projectiles, 1)

	run(10, sys.Update)
	assert.Equal(t, 20, e.HP)
	assert.Empty(t, ecs.Projectiles)
	require.Equal(t, 1, rec.count(event.ProjectileHit))
	assert.Equal(t, event.RewardPayload{ID: e.ID, Score: 10}, rec.events[0].Data)
}

func TestProjectileSystem_SlowedBonus(t *testing.T) {
	w := straightWorld()
	ecs := entity.NewECS()
	sys := NewProjectileSystem(ecs, event.NewDispatcher())

	tw := addTower(ecs, defs.TowerBlaster, 200, 250)
	e := addEnemy(ecs, w, defs.EnemyBasic, 200, 305)
	ApplySlow(e, 10)

	sys.Fire(tw, e)
	run(10, sys.Update)
	assert.Equal(t, 15, e.HP)
}

func TestProjectileSystem_BonusBeforeResistance(t *testing.T) {
	w := straightWorld()
	ecs := entity.NewECS()
	sys := NewProjectileSystem(ecs, event.NewDispatcher())

	tw := addTower(ecs, defs.TowerBlaster, 200, 250)
	tank := addEnemy(ecs, w, defs.EnemyTank, 200, 305)
	ApplySlow(tank, 10)

	sys.Fire(tw, tank)
	run(10, sys.Update)
	// 10 × 1.5 × 0.5
	assert.Equal(t, 93, tank.HP)
}

func TestProjectileSystem_FollowsTarget(t *testing.T) {
	w := straightWorld()
	ecs := entity.NewECS()
	sys := NewProjectileSystem(ecs, event.NewDispatcher())

	tw := addTower(ecs, defs.TowerSniper, 100, 100)
	e := addEnemy(ecs, w, defs.EnemyBasic, 100, 305)
	sys.Fire(tw, e)

	sys.Update(dt, 1)
	e.X = 160
	run(40, sys.Update)
	assert.Equal(t, 0, e.HP)
	assert.False(t, e.Alive)
}

func TestProjectileSystem_DeadTargetFizzles(t *testing.T) {
	w := straightWorld()
	ecs := entity.NewECS()
	disp, rec := newDispatcher()
	sys := NewProjectileSystem(ecs, disp)

	tw := addTower(ecs, defs.TowerBlaster, 200, 250)
	e := addEnemy(ecs, w, defs.EnemyBasic, 200, 305)
	other := addEnemy(ecs, w, defs.EnemyBasic, 200, 305)
	sys.Fire(tw, e)
	e.Alive = false

	run(20, sys.Update)
	assert.Empty(t, ecs.Projectiles)
	assert.Equal(t, 0, rec.count(event.ProjectileHit))
	assert.Equal(t, other.MaxHP, other.HP, "damage never jumps to another enemy")
}

func TestProjectileSystem_RingHitsEachEnemyOnce(t *testing.T) {
	w := straightWorld()
	ecs := entity.NewECS()
	sys := NewProjectileSystem(ecs, event.NewDispatcher())

	tw := addTower(ecs, defs.TowerAOE, 100, 305)
	near := addEnemy(ecs, w, defs.EnemyBasic, 130, 305)
	mid := addEnemy(ecs, w, defs.EnemyBasic, 150, 305)
	far := addEnemy(ecs, w, defs.EnemyBasic, 300, 305)

	sys.Fire(tw, near)
	require.Len(t, ecs.Rings, 1)
	assert.Empty(t, ecs.Projectiles)

	run(40, sys.Update)
	assert.Empty(t, ecs.Rings)

	assert.Equal(t, 15, near.HP)
	assert.Equal(t, 15, mid.HP)
	assert.Equal(t, far.MaxHP, far.HP)
	assert.True(t, near.Slow.Active)
	assert.True(t, mid.Slow.Active)
	assert.False(t, far.Slow.Active)
}

func TestProjectileSystem_RingUsesResistance(t *testing.T) {
	w := straightWorld()
	ecs := entity.NewECS()
	sys := NewProjectileSystem(ecs, event.NewDispatcher())

	tw := addTower(ecs, defs.TowerAOE, 100, 305)
	shield := addEnemy(ecs, w, defs.EnemyShield, 120, 305)

	sys.Fire(tw, shield)
	run(40, sys.Update)
	assert.Equal(t, 60-7, shield.HP)
}
