// internal/app/tower_management.go
package app

import (
	"go-neon-defense/internal/component"
	"go-neon-defense/internal/config"
	"go-neon-defense/internal/defs"
	"go-neon-defense/internal/event"
	"go-neon-defense/internal/system"
	"go-neon-defense/internal/types"
	"go-neon-defense/pkg/pathcurve"
)

// selectRadius — насколько близко к башне нужно кликнуть.
const selectRadius = 14.0

// PlaceTower ставит башню в клетку под точкой (x, y).
func (g *Game) PlaceTower(kind defs.TowerKind, x, y float64) Result {
	if !g.StateSystem.IsPlaying() {
		return g.reject("place_tower", ReasonNotPlaying)
	}
	def, ok := g.Defs.Tower(kind)
	if !ok {
		return g.reject("place_tower", ReasonUnknownType)
	}
	if g.Gold < def.Cost() {
		return g.reject("place_tower", ReasonInsufficientFunds)
	}
	cell := g.grid.CellAt(x, y)
	sx, sy := g.grid.Center(cell)
	if reason := g.validateTowerSite(def, cell, sx, sy); reason != ReasonNone {
		return g.reject("place_tower", reason)
	}

	t := system.NewTower(g.ECS.NewEntity(), def, component.Position{X: sx, Y: sy})
	t.Cell = cell
	g.ECS.AddTower(t)
	g.Gold -= def.Cost()
	if t.IsSentinel() {
		g.SentinelSystem.RegisterTower(t)
	}

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.EntityPayload{ID: t.ID, Kind: string(t.Kind), X: t.X, Y: t.Y},
	})
	return accepted(t.ID)
}

// validateTowerSite — путь, границы, соседние башни, стены и местность.
func (g *Game) validateTowerSite(def defs.TowerDefinition, cell pathcurve.Cell, sx, sy float64) Reason {
	if sx < config.TowerBoundsMin || sx > config.TowerBoundsMaxX ||
		sy < config.TowerBoundsMin || sy > config.TowerBoundsMaxY {
		return ReasonOutOfBounds
	}
	if g.BlockedCells().Has(cell) {
		return ReasonOnPath
	}
	for _, other := range g.ECS.Towers {
		if other.DistanceTo(component.Position{X: sx, Y: sy}) < config.TowerMinSpacing {
			return ReasonOverlap
		}
	}
	if g.FortificationSystem.StructureAt(cell) != nil {
		return ReasonOverlap
	}
	if !g.terrainFits(def, sx, sy) {
		return ReasonWrongTerrain
	}
	return ReasonNone
}

// terrainFits — лодке нужна вода, наземным башням суша.
func (g *Game) terrainFits(def defs.TowerDefinition, x, y float64) bool {
	onWater := g.gameMap != nil && g.gameMap.IsWater(x, y)
	if def.Water && !onWater {
		return false
	}
	if def.Land && onWater {
		return false
	}
	return true
}

// SellTower возвращает половину вложенного золота.
func (g *Game) SellTower(id types.EntityID) Result {
	t := g.ECS.Tower(id)
	if t == nil {
		return g.reject("sell_tower", ReasonNotFound)
	}
	refund := t.SellValue()
	g.removeTower(t)
	g.Gold += refund
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerSold,
		Data: event.RewardPayload{ID: id, Gold: refund},
	})
	return accepted(id)
}

func (g *Game) removeTower(t *component.Tower) {
	if t.IsSentinel() {
		g.SentinelSystem.UnregisterTower(t.ID)
	}
	g.ECS.RemoveTower(t.ID)
}

// UpgradeTower поднимает уровень башни, если хватает золота.
func (g *Game) UpgradeTower(id types.EntityID) Result {
	t := g.ECS.Tower(id)
	if t == nil {
		return g.reject("upgrade_tower", ReasonNotFound)
	}
	def, ok := g.Defs.Tower(t.Kind)
	if !ok {
		return g.reject("upgrade_tower", ReasonUnknownType)
	}
	cost, ok := system.UpgradeCost(t, def)
	if !ok {
		return g.reject("upgrade_tower", ReasonMaxTier)
	}
	if g.Gold < cost {
		return g.reject("upgrade_tower", ReasonInsufficientFunds)
	}

	g.Gold -= cost
	t.Invested += cost
	system.ApplyTier(t, def, t.Tier+1)
	if t.IsSentinel() {
		g.SentinelSystem.OnTowerUpgrade(t)
	}
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerUpgraded,
		Data: event.EntityPayload{ID: t.ID, Kind: string(t.Kind), X: t.X, Y: t.Y},
	})
	return accepted(id)
}

// TowerAt — башня под точкой или nil.
func (g *Game) TowerAt(x, y float64) *component.Tower {
	p := component.Position{X: x, Y: y}
	for _, t := range g.ECS.Towers {
		if t.DistanceTo(p) < selectRadius {
			return t
		}
	}
	return nil
}

// SelectTower выделяет башню, снимая выделение с остальных.
func (g *Game) SelectTower(id types.EntityID) bool {
	target := g.ECS.Tower(id)
	for _, t := range g.ECS.Towers {
		t.Selected = false
	}
	if target == nil {
		return false
	}
	target.Selected = true
	return true
}

// Selected — выделенная башня или nil.
func (g *Game) Selected() *component.Tower {
	for _, t := range g.ECS.Towers {
		if t.Selected {
			return t
		}
	}
	return nil
}

// UpgradeSelected улучшает выделенную башню.
func (g *Game) UpgradeSelected() Result {
	t := g.Selected()
	if t == nil {
		return g.reject("upgrade_selected", ReasonNotFound)
	}
	return g.UpgradeTower(t.ID)
}

// SellSelected продаёт выделенную башню.
func (g *Game) SellSelected() Result {
	t := g.Selected()
	if t == nil {
		return g.reject("sell_selected", ReasonNotFound)
	}
	return g.SellTower(t.ID)
}

// SetRallyPoint переносит точку сбора отряда башни стражей.
func (g *Game) SetRallyPoint(id types.EntityID, x, y float64) Result {
	t := g.ECS.Tower(id)
	if t == nil {
		return g.reject("set_rally", ReasonNotFound)
	}
	if !t.IsSentinel() {
		return g.reject("set_rally", ReasonUnknownType)
	}
	g.SentinelSystem.SetRallyPoint(t, x, y)
	return accepted(id)
}

// PlaceTrap ставит ловушку на клетку пути.
func (g *Game) PlaceTrap(kind defs.TrapKind, x, y float64) Result {
	if !g.StateSystem.IsPlaying() {
		return g.reject("place_trap", ReasonNotPlaying)
	}
	def, ok := g.Defs.Trap(kind)
	if !ok {
		return g.reject("place_trap", ReasonUnknownType)
	}
	if g.Gold < def.Cost {
		return g.reject("place_trap", ReasonInsufficientFunds)
	}
	cell := g.grid.CellAt(x, y)
	if !g.BlockedCells().Has(cell) {
		return g.reject("place_trap", ReasonOffPath)
	}
	sx, sy := g.grid.Center(cell)
	pos := component.Position{X: sx, Y: sy}
	for _, other := range g.ECS.Traps {
		if other.Alive && other.DistanceTo(pos) < config.TrapMinSpacing {
			return g.reject("place_trap", ReasonOverlap)
		}
	}

	trap := system.NewTrap(g.ECS.NewEntity(), def, pos)
	g.ECS.AddTrap(trap)
	g.Gold -= def.Cost
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TrapPlaced,
		Data: event.EntityPayload{ID: trap.ID, Kind: string(trap.Kind), X: sx, Y: sy},
	})
	return accepted(trap.ID)
}

// PlaceBarricade ставит баррикаду из запаса. Только во время волны.
func (g *Game) PlaceBarricade(x, y float64) Result {
	if !g.StateSystem.IsPlaying() {
		return g.reject("place_barricade", ReasonNotPlaying)
	}
	st, err := g.FortificationSystem.PlaceBarricade(g.grid.CellAt(x, y), g.ECS.Wave.Active)
	if err != nil {
		return g.reject("place_barricade", reasonFor(err))
	}
	return accepted(st.ID)
}

// PlaceWall ставит стену рядом с путём за золото.
func (g *Game) PlaceWall(x, y float64) Result {
	if !g.StateSystem.IsPlaying() {
		return g.reject("place_wall", ReasonNotPlaying)
	}
	def, ok := g.Defs.Structure(defs.StructureWall)
	if !ok {
		return g.reject("place_wall", ReasonUnknownType)
	}
	if g.Gold < def.Cost {
		return g.reject("place_wall", ReasonInsufficientFunds)
	}
	cell := g.grid.CellAt(x, y)
	for _, t := range g.ECS.Towers {
		if t.Cell == cell {
			return g.reject("place_wall", ReasonOverlap)
		}
	}
	st, err := g.FortificationSystem.PlaceWall(cell)
	if err != nil {
		return g.reject("place_wall", reasonFor(err))
	}
	g.Gold -= def.Cost
	return accepted(st.ID)
}

// WallAt — стена в клетке под точкой или nil.
func (g *Game) WallAt(x, y float64) *component.Structure {
	st := g.FortificationSystem.StructureAt(g.grid.CellAt(x, y))
	if st == nil || st.Kind != defs.StructureWall {
		return nil
	}
	return st
}
