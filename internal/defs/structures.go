// internal/defs/structures.go
package defs

// StructureKind distinguishes barricades from walls.
type StructureKind string

const (
	StructureBarricade StructureKind = "barricade"
	StructureWall      StructureKind = "wall"
)

// StructureDefinition holds the static data for a blocking structure.
type StructureDefinition struct {
	ID StructureKind `json:"id"`
	HP int           `json:"hp"`
	// Cost is paid in gold; barricades are paid from the per-wave stock instead.
	Cost int `json:"cost"`
	// AttackInterval is the cadence at which a locked enemy strikes it.
	AttackInterval float64 `json:"attack_interval"`
	// HeavyOnly limits attackers to heavy enemy types.
	HeavyOnly bool    `json:"heavy_only,omitempty"`
	Visuals   Visuals `json:"visuals"`
}

func defaultStructures() map[StructureKind]StructureDefinition {
	return map[StructureKind]StructureDefinition{
		StructureBarricade: {
			ID: StructureBarricade, HP: 30, AttackInterval: 0.5,
			Visuals: Visuals{Color: rgb(0xffaa00)},
		},
		StructureWall: {
			ID: StructureWall, HP: 100, Cost: 25, AttackInterval: 1.0, HeavyOnly: true,
			Visuals: Visuals{Color: rgb(0x888899)},
		},
	}
}
