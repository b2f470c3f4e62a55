// internal/defs/towers.go
package defs

// TowerKind defines the category of a tower.
type TowerKind string

const (
	TowerBlaster  TowerKind = "blaster"
	TowerSniper   TowerKind = "sniper"
	TowerAOE      TowerKind = "aoe"
	TowerBoat     TowerKind = "boat"
	TowerSentinel TowerKind = "sentinel"
)

// TowerKinds lists every tower type in a stable order.
var TowerKinds = []TowerKind{TowerBlaster, TowerSniper, TowerAOE, TowerBoat, TowerSentinel}

// MaxTier is the highest tier a tower can be upgraded to.
const MaxTier = 3

// TierStats replaces a tower's stats wholesale when it reaches that tier.
// For tier 1 Cost is the build price, for higher tiers the upgrade price.
type TierStats struct {
	Name      string  `json:"name"`
	Cost      int     `json:"cost"`
	Damage    int     `json:"damage"`
	Range     float64 `json:"range"`
	FireRate  float64 `json:"fire_rate"` // Shots per second
	AOERadius float64 `json:"aoe_radius,omitempty"`

	Sentinel *SentinelStats `json:"sentinel,omitempty"`
	Visuals  Visuals        `json:"visuals"`
}

// SentinelStats describes the melee units a sentinel tower keeps alive.
type SentinelStats struct {
	Units       int     `json:"units"`
	HP          float64 `json:"hp"`
	DPS         float64 `json:"dps"`
	Reduction   float64 `json:"reduction"` // Fraction of incoming damage ignored
	RespawnTime float64 `json:"respawn_time"`
}

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID         TowerKind  `json:"id"`
	DamageType DamageType `json:"damage_type"`
	// Land towers cannot stand in water, Water towers need it.
	Land    bool `json:"land"`
	Water   bool `json:"water"`
	AOE     bool `json:"aoe,omitempty"`
	AOESlow bool `json:"aoe_slow,omitempty"`

	Tiers [MaxTier]TierStats `json:"tiers"`
}

// Tier returns the stats for tier n (1-based).
func (d TowerDefinition) Tier(n int) (TierStats, bool) {
	if n < 1 || n > MaxTier {
		return TierStats{}, false
	}
	return d.Tiers[n-1], true
}

// Cost is the build price of the tower.
func (d TowerDefinition) Cost() int {
	return d.Tiers[0].Cost
}

// IsSentinel reports whether the tower spawns melee units instead of shooting.
func (d TowerDefinition) IsSentinel() bool {
	return d.Tiers[0].Sentinel != nil
}

func defaultTowers() map[TowerKind]TowerDefinition {
	return map[TowerKind]TowerDefinition{
		TowerBlaster: {
			ID: TowerBlaster, DamageType: DamageKinetic, Land: true,
			Tiers: [MaxTier]TierStats{
				{Name: "Blaster", Cost: 50, Damage: 10, Range: 100, FireRate: 2, Visuals: Visuals{Color: rgb(0x00f3ff), Shape: "triangle"}},
				{Name: "Blaster II", Cost: 60, Damage: 18, Range: 110, FireRate: 2.5, Visuals: Visuals{Color: rgb(0x33ffff), Shape: "triangle"}},
				{Name: "Blaster III", Cost: 100, Damage: 30, Range: 120, FireRate: 3.2, Visuals: Visuals{Color: rgb(0x66ffff), Shape: "triangle"}},
			},
		},
		TowerSniper: {
			ID: TowerSniper, DamageType: DamagePierce, Land: true,
			Tiers: [MaxTier]TierStats{
				{Name: "Sniper", Cost: 100, Damage: 50, Range: 200, FireRate: 0.3, Visuals: Visuals{Color: rgb(0xaa88ff), Shape: "diamond"}},
				{Name: "Sniper II", Cost: 120, Damage: 90, Range: 230, FireRate: 0.4, Visuals: Visuals{Color: rgb(0xbb99ff), Shape: "diamond"}},
				{Name: "Sniper III", Cost: 180, Damage: 150, Range: 260, FireRate: 0.5, Visuals: Visuals{Color: rgb(0xddbbff), Shape: "diamond"}},
			},
		},
		TowerAOE: {
			ID: TowerAOE, DamageType: DamageFire, Land: true, AOE: true, AOESlow: true,
			Tiers: [MaxTier]TierStats{
				{Name: "AOE", Cost: 150, Damage: 15, Range: 80, FireRate: 0.8, AOERadius: 60, Visuals: Visuals{Color: rgb(0xff8800), Shape: "hexagon"}},
				{Name: "AOE II", Cost: 120, Damage: 25, Range: 95, FireRate: 1.0, AOERadius: 75, Visuals: Visuals{Color: rgb(0xffaa33), Shape: "hexagon"}},
				{Name: "AOE III", Cost: 180, Damage: 40, Range: 110, FireRate: 1.2, AOERadius: 90, Visuals: Visuals{Color: rgb(0xffcc66), Shape: "hexagon"}},
			},
		},
		TowerBoat: {
			ID: TowerBoat, DamageType: DamageKinetic, Water: true,
			Tiers: [MaxTier]TierStats{
				{Name: "Boat", Cost: 75, Damage: 20, Range: 140, FireRate: 1.2, Visuals: Visuals{Color: rgb(0x0088ff), Shape: "boat"}},
				{Name: "Boat II", Cost: 80, Damage: 35, Range: 160, FireRate: 1.5, Visuals: Visuals{Color: rgb(0x33aaff), Shape: "boat"}},
				{Name: "Boat III", Cost: 130, Damage: 55, Range: 180, FireRate: 1.8, Visuals: Visuals{Color: rgb(0x66ccff), Shape: "boat"}},
			},
		},
		TowerSentinel: {
			ID: TowerSentinel, DamageType: DamageMelee, Land: true,
			Tiers: [MaxTier]TierStats{
				{Name: "Sentinel", Cost: 120, Range: 60,
					Sentinel: &SentinelStats{Units: 2, HP: 50, DPS: 8, Reduction: 0, RespawnTime: 8},
					Visuals:  Visuals{Color: rgb(0xffdd00), Shape: "shield"}},
				{Name: "Sentinel II", Cost: 100, Range: 70,
					Sentinel: &SentinelStats{Units: 3, HP: 80, DPS: 12, Reduction: 0.2, RespawnTime: 7},
					Visuals:  Visuals{Color: rgb(0xffe640), Shape: "shield"}},
				{Name: "Sentinel III", Cost: 160, Range: 80,
					Sentinel: &SentinelStats{Units: 3, HP: 120, DPS: 18, Reduction: 0.35, RespawnTime: 6},
					Visuals:  Visuals{Color: rgb(0xffee80), Shape: "shield"}},
			},
		},
	}
}
