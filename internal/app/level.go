// internal/app/level.go
package app

import (
	"go-neon-defense/internal/component"
	"go-neon-defense/internal/config"
	"go-neon-defense/internal/event"
	"go-neon-defense/internal/types"
)

// beginLevelTransition замораживает симуляцию до подтверждения игрока.
func (g *Game) beginLevelTransition() {
	g.levelTransition = true
	g.levelStats = &LevelStats{
		Level:        g.Level,
		Score:        g.Score,
		Gold:         g.Gold,
		Towers:       len(g.ECS.Towers),
		WavesCleared: g.ECS.Wave.WavesInLevel,
		Kills:        g.stats.kills,
		Leaks:        g.stats.leaks,
	}
	g.logger.Info().
		Int("level", g.Level).
		Int("score", g.Score).
		Int("kills", g.stats.kills).
		Msg("level complete")
	g.dispatchLevel(event.LevelComplete)
}

// ConfirmLevelAdvance переходит на следующий уровень: новая карта,
// очищенный мир, башни остаются, если им нашлось место.
func (g *Game) ConfirmLevelAdvance() Result {
	if !g.levelTransition {
		return g.reject("advance_level", ReasonNoTransition)
	}
	g.levelTransition = false
	g.levelStats = nil
	g.stats.reset()

	g.Level++
	g.mapSeed = uint32(g.Level * config.LevelSeedFactor)
	g.gameMap = g.generator.Generate(g.mapSeed)

	refund, relocated := g.sellDisplacedTowers()
	g.Gold += refund

	for _, e := range g.ECS.Enemies {
		g.SentinelSystem.ReleaseEnemy(e.ID)
	}
	g.ECS.ClearEnemies()
	g.ECS.ClearShots()

	blocked := g.BlockedCells()
	g.ECS.RemoveTraps(func(t *component.Trap) bool {
		return !t.Alive || !blocked.Has(g.grid.CellAt(t.X, t.Y))
	})

	g.FortificationSystem.OnLevelStart()
	g.WaveSystem.ResetLevel(g.Level)

	// Отряды встают у новой ближайшей точки пути
	for _, t := range g.ECS.Towers {
		if t.IsSentinel() {
			t.Sentinel.Rally = nil
			g.SentinelSystem.RegisterTower(t)
		}
	}

	g.logger.Info().
		Int("level", g.Level).
		Uint32("seed", g.mapSeed).
		Str("map", g.gameMap.Name).
		Int("relocated", relocated).
		Int("refund", refund).
		Msg("level started")
	g.dispatchLevel(event.LevelStarted)
	return accepted(types.NoEntity)
}

// sellDisplacedTowers продаёт башни, чья клетка стала путём или
// сменила местность. Возврат — полная цена продажи.
func (g *Game) sellDisplacedTowers() (refund, count int) {
	blocked := g.BlockedCells()
	var displaced []*component.Tower
	for _, t := range g.ECS.Towers {
		def, ok := g.Defs.Tower(t.Kind)
		if !ok || blocked.Has(t.Cell) || !g.terrainFits(def, t.X, t.Y) {
			displaced = append(displaced, t)
		}
	}
	for _, t := range displaced {
		refund += t.SellValue()
		g.removeTower(t)
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.TowerSold,
			Data: event.RewardPayload{ID: t.ID, Gold: t.SellValue()},
		})
	}
	return refund, len(displaced)
}
