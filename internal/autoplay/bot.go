// internal/autoplay/bot.go
package autoplay

import (
	"math"

	"go-neon-defense/internal/app"
	"go-neon-defense/internal/component"
	"go-neon-defense/internal/defs"

	"github.com/rs/zerolog"
)

const (
	samples      = 25   // точек вдоль пути при поиске места
	sideOffset   = 30.0 // отступ башни от оси пути
	barricadeAt  = 0.8  // где ставить баррикады
	maxPerWave   = 2    // баррикад за волну
	upgradeFloor = 150  // золото, которое бот не тратит на улучшения
)

// buildOrder — какие башни бот строит по кругу.
var buildOrder = []defs.TowerKind{
	defs.TowerBlaster,
	defs.TowerBlaster,
	defs.TowerSniper,
	defs.TowerAOE,
	defs.TowerSentinel,
}

// Bot играет сам: строит, улучшает, запускает волны и переходит
// на следующий уровень. Работает через публичное API игры.
type Bot struct {
	logger     zerolog.Logger
	next       int
	barricades int
	waveIndex  int
}

func NewBot(logger zerolog.Logger) *Bot {
	return &Bot{logger: logger}
}

// Act делает ход перед очередным шагом симуляции. Возвращает false,
// когда играть больше нечего.
func (b *Bot) Act(g *app.Game) bool {
	switch g.State() {
	case component.StateGameOver:
		return false
	case component.StateMenu:
		return g.StartGame()
	}
	if g.InLevelTransition() {
		r := g.ConfirmLevelAdvance()
		b.logger.Info().Int("level", g.Level).Bool("ok", r.OK).Msg("bot advanced level")
		return true
	}

	w := g.ECS.Wave
	if w.Index != b.waveIndex {
		b.waveIndex = w.Index
		b.barricades = 0
	}

	if !w.Active {
		for b.build(g) {
		}
		b.upgrade(g)
		g.StartWave()
		return true
	}

	if b.barricades < maxPerWave && g.ECS.AliveEnemies() > 0 {
		if b.fortify(g) {
			b.barricades++
		}
	}
	return true
}

// build ставит следующую башню из очереди, если хватает золота.
func (b *Bot) build(g *app.Game) bool {
	kind := buildOrder[b.next%len(buildOrder)]
	def, ok := g.Defs.Tower(kind)
	if !ok || g.Gold < def.Cost() {
		return false
	}
	for _, p := range Candidates(g.Curve()) {
		if r := g.PlaceTower(kind, p.X, p.Y); r.OK {
			b.next++
			b.logger.Debug().Str("kind", string(kind)).Float64("x", p.X).Float64("y", p.Y).Msg("bot built tower")
			return true
		}
	}
	return false
}

// upgrade улучшает самую дешёвую в улучшении башню.
func (b *Bot) upgrade(g *app.Game) {
	for g.Gold > upgradeFloor {
		var best *component.Tower
		bestCost := math.MaxInt
		for _, s := range g.Snapshot().Towers {
			if s.UpgradeCost > 0 && s.UpgradeCost < bestCost {
				bestCost = s.UpgradeCost
				best = g.ECS.Tower(s.ID)
			}
		}
		if best == nil || g.Gold-bestCost < upgradeFloor {
			return
		}
		if !g.UpgradeTower(best.ID).OK {
			return
		}
	}
}

// fortify ставит баррикаду ближе к выходу.
func (b *Bot) fortify(g *app.Game) bool {
	c := g.Curve()
	if c == nil {
		return false
	}
	for p := barricadeAt; p < 1; p += 0.02 {
		x, y := c.PositionAtProgress(p)
		if g.PlaceBarricade(x, y).OK {
			return true
		}
	}
	return false
}
