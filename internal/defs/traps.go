// internal/defs/traps.go
package defs

// TrapKind is the closed set of path traps.
type TrapKind string

const (
	TrapMine   TrapKind = "mine"
	TrapPoison TrapKind = "poison"
	TrapIce    TrapKind = "ice"
)

// TrapKinds lists every trap type in a stable order.
var TrapKinds = []TrapKind{TrapMine, TrapPoison, TrapIce}

// TrapEffect selects what happens when a trap triggers.
type TrapEffect string

const (
	EffectExplode TrapEffect = "explode"
	EffectPoison  TrapEffect = "poison"
	EffectIce     TrapEffect = "ice"
)

// TrapDefinition holds all the static data for a trap type.
type TrapDefinition struct {
	ID       TrapKind   `json:"id"`
	Cost     int        `json:"cost"`
	Damage   int        `json:"damage"`
	Uses     int        `json:"uses"`
	Radius   float64    `json:"radius"`
	Effect   TrapEffect `json:"effect"`
	Duration float64    `json:"duration,omitempty"` // Seconds the applied status lasts
	Cooldown float64    `json:"cooldown"`           // Seconds between triggers
	Visuals  Visuals    `json:"visuals"`
}

func defaultTraps() map[TrapKind]TrapDefinition {
	return map[TrapKind]TrapDefinition{
		TrapMine: {
			ID: TrapMine, Cost: 30, Damage: 80, Uses: 1, Radius: 30,
			Effect: EffectExplode, Cooldown: 0.5,
			Visuals: Visuals{Color: rgb(0xff3333), Size: 8},
		},
		TrapPoison: {
			ID: TrapPoison, Cost: 40, Damage: 5, Uses: 8, Radius: 25,
			Effect: EffectPoison, Duration: 3, Cooldown: 0.5,
			Visuals: Visuals{Color: rgb(0x44ff44), Size: 7},
		},
		TrapIce: {
			ID: TrapIce, Cost: 25, Damage: 0, Uses: 5, Radius: 35,
			Effect: EffectIce, Duration: 3, Cooldown: 0.5,
			Visuals: Visuals{Color: rgb(0x88ddff), Size: 7},
		},
	}
}
