// internal/app/tool.go
package app

import (
	"go-neon-defense/internal/defs"
)

// ToolKind — что ставит игрок следующим кликом.
type ToolKind int

const (
	ToolNone ToolKind = iota
	ToolTower
	ToolTrap
	ToolBarricade
	ToolWall
)

// Tool — выбранный инструмент строительства.
type Tool struct {
	Kind  ToolKind
	Tower defs.TowerKind
	Trap  defs.TrapKind
}

func TowerTool(kind defs.TowerKind) Tool { return Tool{Kind: ToolTower, Tower: kind} }

func TrapTool(kind defs.TrapKind) Tool { return Tool{Kind: ToolTrap, Trap: kind} }

// Label — короткая подпись для HUD.
func (t Tool) Label() string {
	switch t.Kind {
	case ToolTower:
		return string(t.Tower)
	case ToolTrap:
		return string(t.Trap) + " trap"
	case ToolBarricade:
		return "barricade"
	case ToolWall:
		return "wall"
	}
	return ""
}

// Use применяет инструмент в точке. Без инструмента клик выделяет
// башню под курсором или снимает выделение.
func (g *Game) Use(tool Tool, x, y float64) Result {
	switch tool.Kind {
	case ToolTower:
		return g.PlaceTower(tool.Tower, x, y)
	case ToolTrap:
		return g.PlaceTrap(tool.Trap, x, y)
	case ToolBarricade:
		return g.PlaceBarricade(x, y)
	case ToolWall:
		return g.PlaceWall(x, y)
	}
	t := g.TowerAt(x, y)
	if t == nil {
		g.SelectTower(0)
		return rejected(ReasonNotFound)
	}
	g.SelectTower(t.ID)
	return accepted(t.ID)
}
