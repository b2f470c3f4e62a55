// component/tower.go
package component

import (
	"go-neon-defense/internal/defs"
	"go-neon-defense/internal/types"
	"go-neon-defense/pkg/pathcurve"
)

type Tower struct {
	ID   types.EntityID
	Kind defs.TowerKind
	Position
	Cell pathcurve.Cell // клетка, на которой стоит башня

	Tier       int
	Damage     int
	Range      float64
	FireRate   float64
	DamageType defs.DamageType
	AOE        bool
	AOESlow    bool
	AOERadius  float64

	Cooldown float64
	TargetID types.EntityID // слабая ссылка, только для поиска
	Angle    float64        // направление последнего выстрела

	Invested int  // всё золото, потраченное на башню
	Selected bool // выбрана в интерфейсе

	// Только для башни стражей.
	Sentinel *SentinelRoster
}

// SentinelRoster — параметры отряда башни стражей на текущем уровне.
type SentinelRoster struct {
	MaxUnits    int
	HP          float64
	Damage      float64
	Reduction   float64
	RespawnTime float64
	Rally       *Position // nil — ближайшая точка пути
}

// SellValue — половина вложенного золота.
func (t *Tower) SellValue() int {
	return t.Invested / 2
}

// IsSentinel — башня не стреляет, а держит отряд.
func (t *Tower) IsSentinel() bool {
	return t.Sentinel != nil
}
