package system

import (
	"testing"

	"go-neon-defense/internal/component"
	"go-neon-defense/internal/defs"
	"go-neon-defense/internal/entity"
	"go-neon-defense/internal/event"
	"go-neon-defense/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTower_FirstTier(t *testing.T) {
	def, _ := defs.DefaultLibrary().Tower(defs.TowerBlaster)
	tw := NewTower(1, def, component.Position{X: 100, Y: 100})

	assert.Equal(t, 1, tw.Tier)
	assert.Equal(t, 10, tw.Damage)
	assert.Equal(t, 100.0, tw.Range)
	assert.Equal(t, 2.0, tw.FireRate)
	assert.Equal(t, 50, tw.Invested)
	assert.Equal(t, 25, tw.SellValue())
	assert.False(t, tw.IsSentinel())
}

func TestApplyTier_ReplacesStats(t *testing.T) {
	def, _ := defs.DefaultLibrary().Tower(defs.TowerSniper)
	tw := NewTower(1, def, component.Position{})

	cost, ok := UpgradeCost(tw, def)
	require.True(t, ok)
	assert.Equal(t, 120, cost)

	require.True(t, ApplyTier(tw, def, 2))
	assert.Equal(t, 90, tw.Damage)
	assert.Equal(t, 230.0, tw.Range)
	assert.Equal(t, 0.4, tw.FireRate)

	require.True(t, ApplyTier(tw, def, 3))
	_, ok = UpgradeCost(tw, def)
	assert.False(t, ok, "tier 3 is the last")
	assert.False(t, ApplyTier(tw, def, 4))
	assert.Equal(t, 3, tw.Tier)
}

func TestApplyTier_SentinelKeepsRally(t *testing.T) {
	def, _ := defs.DefaultLibrary().Tower(defs.TowerSentinel)
	tw := NewTower(1, def, component.Position{})
	require.True(t, tw.IsSentinel())
	assert.Equal(t, 2, tw.Sentinel.MaxUnits)

	tw.Sentinel.Rally = &component.Position{X: 10, Y: 20}
	ApplyTier(tw, def, 2)
	assert.Equal(t, 3, tw.Sentinel.MaxUnits)
	assert.Equal(t, 0.2, tw.Sentinel.Reduction)
	require.NotNil(t, tw.Sentinel.Rally)
	assert.Equal(t, 10.0, tw.Sentinel.Rally.X)
}

func TestFindTarget(t *testing.T) {
	w := straightWorld()
	ecs := entity.NewECS()
	tw := addTower(ecs, defs.TowerBlaster, 200, 250)

	far := addEnemy(ecs, w, defs.EnemyBasic, 400, 305)
	a := addEnemy(ecs, w, defs.EnemyBasic, 180, 305)
	b := addEnemy(ecs, w, defs.EnemyBasic, 220, 305)

	got := FindTarget(tw, ecs.Enemies)
	assert.Same(t, a, got, "equal distance goes to the first in order")

	a.Alive = false
	assert.Same(t, b, FindTarget(tw, ecs.Enemies))

	b.ReachedEnd = true
	assert.Nil(t, FindTarget(tw, ecs.Enemies))
	assert.True(t, far.Alive)
}

func TestCombatSystem_FiresAtFireRate(t *testing.T) {
	w := straightWorld()
	ecs := entity.NewECS()
	disp, rec := newDispatcher()
	shots := NewProjectileSystem(ecs, disp)
	combat := NewCombatSystem(ecs, shots, disp)

	addTower(ecs, defs.TowerBlaster, 200, 250)
	dummy := addEnemy(ecs, w, defs.EnemyBasic, 200, 305)
	dummy.HP, dummy.MaxHP = 10000, 10000

	run(180, combat.Update, shots.Update)

	assert.Equal(t, 6, rec.count(event.TowerFired))
	assert.Equal(t, 10000-6*10, dummy.HP)
}

func TestCombatSystem_KillsWithinFiveHits(t *testing.T) {
	w := straightWorld()
	ecs := entity.NewECS()
	disp, rec := newDispatcher()
	shots := NewProjectileSystem(ecs, disp)
	combat := NewCombatSystem(ecs, shots, disp)

	tw := addTower(ecs, defs.TowerBlaster, 200, 250)
	e := addEnemy(ecs, w, defs.EnemyBasic, 200, 305)
	e.HP, e.MaxHP = 50, 50

	run(180, combat.Update, shots.Update)

	assert.False(t, e.Alive)
	assert.Equal(t, 5, rec.count(event.ProjectileHit))
	assert.Equal(t, 5, rec.count(event.TowerFired), "no target, no shot")
	assert.Equal(t, types.NoEntity, tw.TargetID)
}

func TestCombatSystem_SentinelTowerDoesNotFire(t *testing.T) {
	w := straightWorld()
	ecs := entity.NewECS()
	disp, rec := newDispatcher()
	shots := NewProjectileSystem(ecs, disp)
	combat := NewCombatSystem(ecs, shots, disp)

	addTower(ecs, defs.TowerSentinel, 200, 280)
	addEnemy(ecs, w, defs.EnemyBasic, 200, 305)

	run(120, combat.Update)
	assert.Equal(t, 0, rec.count(event.TowerFired))
	assert.Empty(t, ecs.Projectiles)
}

func TestCombatSystem_UpgradeKeepsCooldown(t *testing.T) {
	w := straightWorld()
	ecs := entity.NewECS()
	disp, _ := newDispatcher()
	shots := NewProjectileSystem(ecs, disp)
	combat := NewCombatSystem(ecs, shots, disp)

	def, _ := defs.DefaultLibrary().Tower(defs.TowerBlaster)
	tw := addTower(ecs, defs.TowerBlaster, 200, 250)
	addEnemy(ecs, w, defs.EnemyBasic, 200, 305)

	combat.Update(dt, 1)
	cooldown := tw.Cooldown
	ApplyTier(tw, def, 2)
	assert.Equal(t, cooldown, tw.Cooldown)
	assert.Equal(t, 18, tw.Damage)
}
