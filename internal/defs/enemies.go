// internal/defs/enemies.go
package defs

// EnemyKind is the closed set of enemy types.
type EnemyKind string

const (
	EnemyBasic   EnemyKind = "basic"
	EnemyFast    EnemyKind = "fast"
	EnemyTank    EnemyKind = "tank"
	EnemyShield  EnemyKind = "shield"
	EnemySwarm   EnemyKind = "swarm"
	EnemyHealer  EnemyKind = "healer"
	EnemyStealth EnemyKind = "stealth"
	EnemyBoss    EnemyKind = "boss"
)

// EnemyKinds lists every enemy type in a stable order.
var EnemyKinds = []EnemyKind{
	EnemyBasic, EnemyFast, EnemyTank, EnemyShield,
	EnemySwarm, EnemyHealer, EnemyStealth, EnemyBoss,
}

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID     EnemyKind   `json:"id"`
	HP     int         `json:"hp"`
	Speed  float64     `json:"speed"` // path units per 1/60 s
	Gold   int         `json:"gold"`
	Resist Resistances `json:"resist,omitempty"`

	HealRadius float64 `json:"heal_radius,omitempty"`
	HealRate   float64 `json:"heal_rate,omitempty"`
	Stealth    bool    `json:"stealth,omitempty"`

	// SentinelDPS is the damage per second dealt to an engaged sentinel.
	SentinelDPS float64 `json:"sentinel_dps"`
	// StructureDamage is dealt to a barricade or wall on every attack.
	StructureDamage int `json:"structure_damage"`
	// Heavy enemies are the only ones that attack walls.
	Heavy bool `json:"heavy,omitempty"`

	Visuals Visuals `json:"visuals"`
}

func defaultEnemies() map[EnemyKind]EnemyDefinition {
	return map[EnemyKind]EnemyDefinition{
		EnemyBasic: {
			ID: EnemyBasic, HP: 30, Speed: 2, Gold: 10,
			SentinelDPS: 3, StructureDamage: 5,
			Visuals: Visuals{Color: rgb(0xff0055), Size: 8, Shape: "circle"},
		},
		EnemyFast: {
			ID: EnemyFast, HP: 20, Speed: 3, Gold: 15,
			Resist:      Resistances{DamagePierce: 1.5},
			SentinelDPS: 2, StructureDamage: 5,
			Visuals: Visuals{Color: rgb(0xff3388), Size: 6, Shape: "diamond"},
		},
		EnemyTank: {
			ID: EnemyTank, HP: 100, Speed: 1, Gold: 30,
			Resist:      Resistances{DamageKinetic: 0.5, DamageFire: 1.5},
			SentinelDPS: 8, StructureDamage: 8, Heavy: true,
			Visuals: Visuals{Color: rgb(0xff4400), Size: 12, Shape: "hexagon"},
		},
		EnemyShield: {
			ID: EnemyShield, HP: 60, Speed: 1.8, Gold: 20,
			Resist:      Resistances{DamageFire: 0.5, DamagePierce: 2.0},
			SentinelDPS: 4, StructureDamage: 5,
			Visuals: Visuals{Color: rgb(0x4488ff), Size: 9, Shape: "shield"},
		},
		EnemySwarm: {
			ID: EnemySwarm, HP: 12, Speed: 2.5, Gold: 5,
			Resist:      Resistances{DamagePierce: 0.3, DamageFire: 2.0},
			SentinelDPS: 1, StructureDamage: 5,
			Visuals: Visuals{Color: rgb(0xffaa00), Size: 5, Shape: "circle"},
		},
		EnemyHealer: {
			ID: EnemyHealer, HP: 40, Speed: 1.5, Gold: 25,
			Resist:     Resistances{DamageKinetic: 1.5},
			HealRadius: 60, HealRate: 5,
			SentinelDPS: 2, StructureDamage: 5,
			Visuals: Visuals{Color: rgb(0x44ff88), Size: 8, Shape: "cross"},
		},
		EnemyStealth: {
			ID: EnemyStealth, HP: 35, Speed: 2.2, Gold: 20,
			Resist:      Resistances{DamageFire: 0.5, DamageKinetic: 0.7},
			Stealth:     true,
			SentinelDPS: 3, StructureDamage: 5,
			Visuals: Visuals{Color: rgb(0x8844aa), Size: 7, Shape: "diamond"},
		},
		EnemyBoss: {
			ID: EnemyBoss, HP: 500, Speed: 0.5, Gold: 100,
			Resist:      Resistances{DamageKinetic: 0.7, DamageFire: 0.7},
			SentinelDPS: 15, StructureDamage: 15, Heavy: true,
			Visuals: Visuals{Color: rgb(0xff0055), Size: 18, Shape: "hexagon"},
		},
	}
}
