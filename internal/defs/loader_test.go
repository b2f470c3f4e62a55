package defs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLibrary_IsComplete(t *testing.T) {
	lib := DefaultLibrary()
	for _, k := range EnemyKinds {
		def, ok := lib.Enemy(k)
		require.True(t, ok, k)
		assert.Greater(t, def.HP, 0)
		assert.Greater(t, def.StructureDamage, 0)
	}
	for _, k := range TowerKinds {
		def, ok := lib.Tower(k)
		require.True(t, ok, k)
		assert.Greater(t, def.Cost(), 0)
	}
	for _, k := range TrapKinds {
		_, ok := lib.Trap(k)
		assert.True(t, ok, k)
	}
	assert.True(t, lib.Towers[TowerSentinel].IsSentinel())
	assert.False(t, lib.Towers[TowerBlaster].IsSentinel())
}

func TestDefaultLibrary_ReturnsIndependentCopies(t *testing.T) {
	a := DefaultLibrary()
	b := DefaultLibrary()
	a.Enemies[EnemyBasic] = EnemyDefinition{ID: EnemyBasic, HP: 1}
	assert.Equal(t, 30, b.Enemies[EnemyBasic].HP)
}

func TestTowerDefinition_Tier(t *testing.T) {
	def := DefaultLibrary().Towers[TowerBlaster]
	tier, ok := def.Tier(2)
	require.True(t, ok)
	assert.Equal(t, 18, tier.Damage)

	_, ok = def.Tier(0)
	assert.False(t, ok)
	_, ok = def.Tier(4)
	assert.False(t, ok)
}

func TestResistances_Multiplier(t *testing.T) {
	r := Resistances{DamageFire: 0.5}
	assert.Equal(t, 0.5, r.Multiplier(DamageFire))
	assert.Equal(t, 1.0, r.Multiplier(DamagePierce))
	assert.Equal(t, 1.0, Resistances(nil).Multiplier(DamageKinetic))
}

func TestLoadLibrary_OverridesById(t *testing.T) {
	src := `{"enemies":[{"id":"basic","hp":45,"speed":2,"gold":12,"sentinel_dps":3,"structure_damage":5}]}`
	lib, err := LoadLibrary(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, 45, lib.Enemies[EnemyBasic].HP)
	assert.Equal(t, 12, lib.Enemies[EnemyBasic].Gold)
	// остальные таблицы не тронуты
	assert.Equal(t, 100, lib.Enemies[EnemyTank].HP)
	assert.Equal(t, 50, lib.Towers[TowerBlaster].Cost())
}

func TestLoadLibrary_Errors(t *testing.T) {
	_, err := LoadLibrary(strings.NewReader("{not json"))
	assert.Error(t, err)

	_, err = LoadLibrary(strings.NewReader(`{"towers":[{"damage_type":"fire"}]}`))
	assert.Error(t, err)

	_, err = LoadLibraryFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadLibraryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "balance.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"traps":[{"id":"mine","cost":10,"damage":99,"uses":1,"radius":30,"effect":"explode","cooldown":0.5}]}`), 0o644))

	lib, err := LoadLibraryFile(path)
	require.NoError(t, err)
	assert.Equal(t, 99, lib.Traps[TrapMine].Damage)
}
