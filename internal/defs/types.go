// internal/defs/types.go
package defs

import "image/color"

// DamageType is the tag that selects which resistance multiplier applies.
type DamageType string

const (
	DamageKinetic DamageType = "kinetic"
	DamagePierce  DamageType = "pierce"
	DamageFire    DamageType = "fire"
	DamageMelee   DamageType = "melee"
	// DamageDirect is never listed in a resistance table, so it always hits at 1.0.
	DamageDirect DamageType = "direct"
)

// Resistances maps a damage type to an incoming damage multiplier.
// Only deviations from 1.0 are stored.
type Resistances map[DamageType]float64

// Multiplier returns the multiplier for a damage type, 1.0 if absent.
func (r Resistances) Multiplier(t DamageType) float64 {
	if m, ok := r[t]; ok {
		return m
	}
	return 1.0
}

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color color.RGBA `json:"color"`
	Size  float64    `json:"size"`
	Shape string     `json:"shape"`
}

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 255}
}
