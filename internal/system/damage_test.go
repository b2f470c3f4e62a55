package system

import (
	"math"
	"testing"

	"go-neon-defense/internal/component"
	"go-neon-defense/internal/defs"

	"github.com/stretchr/testify/assert"
)

func TestResolveDamage(t *testing.T) {
	tests := []struct {
		name   string
		base   float64
		typ    defs.DamageType
		resist defs.Resistances
		want   int
	}{
		{"no table", 10, defs.DamageKinetic, nil, 10},
		{"absent type", 10, defs.DamagePierce, defs.Resistances{defs.DamageFire: 0.5}, 10},
		{"halved", 100, defs.DamageFire, defs.Resistances{defs.DamageFire: 0.5}, 50},
		{"weakness", 10, defs.DamageFire, defs.Resistances{defs.DamageFire: 2}, 20},
		{"floored", 15, defs.DamageKinetic, defs.Resistances{defs.DamageKinetic: 0.7}, 10},
		{"minimum one", 1, defs.DamagePierce, defs.Resistances{defs.DamagePierce: 0.3}, 1},
		{"direct ignores table", 5, defs.DamageDirect, defs.Resistances{defs.DamageKinetic: 0.1}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveDamage(tt.base, tt.typ, tt.resist))
		})
	}
}

func TestResolveDamage_NeverBelowOne(t *testing.T) {
	mults := []float64{0.3, 0.5, 0.7, 1, 1.5, 2}
	for base := 1; base <= 200; base++ {
		for _, m := range mults {
			got := ResolveDamage(float64(base), defs.DamageFire, defs.Resistances{defs.DamageFire: m})
			want := max(1, int(math.Floor(float64(base)*m)))
			assert.GreaterOrEqual(t, got, 1)
			assert.Equal(t, want, got, "base=%d mult=%v", base, m)
		}
	}
}

func TestApplyDamage_DeathIsIdempotent(t *testing.T) {
	e := &component.Enemy{HP: 3, MaxHP: 3, Alive: true}

	assert.Equal(t, 5, ApplyDamage(e, 5, defs.DamageKinetic))
	assert.Equal(t, 0, e.HP)
	assert.False(t, e.Alive)

	assert.Equal(t, 0, ApplyDamage(e, 5, defs.DamageKinetic))
	assert.Equal(t, 0, e.HP)
	assert.Equal(t, 0, ApplyDamage(nil, 5, defs.DamageKinetic))
}
