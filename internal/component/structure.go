// internal/component/structure.go
package component

import (
	"go-neon-defense/internal/defs"
	"go-neon-defense/internal/types"
	"go-neon-defense/pkg/pathcurve"
)

// Structure — баррикада на пути или стена рядом с ним.
type Structure struct {
	ID   types.EntityID
	Kind defs.StructureKind
	Position
	Cell pathcurve.Cell

	HP, MaxHP int
}

// Destroyed — прочность исчерпана.
func (s *Structure) Destroyed() bool {
	return s.HP <= 0
}
