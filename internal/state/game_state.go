// internal/state/game_state.go
package state

import (
	"fmt"

	"go-neon-defense/internal/app"
	"go-neon-defense/internal/component"
	"go-neon-defense/internal/config"
	"go-neon-defense/internal/defs"
	"go-neon-defense/internal/render"
	"go-neon-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const messageTime = 1.5 // секунд держится сообщение об отказе

// toolKeys — горячие клавиши инструментов строительства.
var toolKeys = map[ebiten.Key]app.Tool{
	ebiten.Key1: app.TowerTool(defs.TowerBlaster),
	ebiten.Key2: app.TowerTool(defs.TowerSniper),
	ebiten.Key3: app.TowerTool(defs.TowerAOE),
	ebiten.Key4: app.TowerTool(defs.TowerBoat),
	ebiten.Key5: app.TowerTool(defs.TowerSentinel),
	ebiten.KeyQ: app.TrapTool(defs.TrapMine),
	ebiten.KeyW: app.TrapTool(defs.TrapPoison),
	ebiten.KeyE: app.TrapTool(defs.TrapIce),
	ebiten.KeyB: {Kind: app.ToolBarricade},
	ebiten.KeyV: {Kind: app.ToolWall},
}

// GameState — экран игры: ввод, шаг симуляции, отрисовка.
type GameState struct {
	sm            *StateMachine
	tool          app.Tool
	message       string
	messageTimer  float64
	speedButton   *ui.SpeedButton
	pauseButton   *ui.PauseButton
	indicator     *ui.StateIndicator
	waveIndicator *ui.WaveIndicator
}

func NewGameState(sm *StateMachine) *GameState {
	return &GameState{
		sm:            sm,
		speedButton:   ui.NewSpeedButton(config.ScreenWidth-90, 40, 10),
		pauseButton:   ui.NewPauseButton(config.ScreenWidth-50, 40, 10, ui.IdleColor, ui.WaveColor),
		indicator:     ui.NewStateIndicator(config.ScreenWidth-20, 40, 12),
		waveIndicator: ui.NewWaveIndicator(config.ScreenWidth/2, 28),
	}
}

func (g *GameState) Enter() {
	g.speedButton.SetMultiplier(g.sm.Game.SpeedMultiplier)
}

func (g *GameState) Update(deltaTime float64) {
	game := g.sm.Game
	if g.messageTimer > 0 {
		g.messageTimer -= deltaTime
	}

	if game.State() == component.StateGameOver {
		g.updateGameOver()
		return
	}
	if game.InLevelTransition() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.report(game.ConfirmLevelAdvance())
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.handlePauseClick()
		return
	}
	g.handleKeys()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if !g.handleUIClick(float32(x), float32(y)) {
			g.report(game.Use(g.tool, float64(x), float64(y)))
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		g.handleRightClick(float64(x), float64(y))
	}

	game.Advance(deltaTime)
}

func (g *GameState) handleKeys() {
	game := g.sm.Game
	for key, tool := range toolKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.tool = tool
		}
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.tool = app.Tool{}
		game.SelectTower(0)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.startWave()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.report(game.SellSelected())
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		g.report(game.UpgradeSelected())
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		game.SetSpeed(g.speedButton.ToggleState())
	}
}

// handleUIClick возвращает true, если клик попал в кнопку.
func (g *GameState) handleUIClick(mx, my float32) bool {
	switch {
	case g.speedButton.IsClicked(mx, my):
		g.sm.Game.SetSpeed(g.speedButton.ToggleState())
	case g.pauseButton.IsClicked(mx, my):
		g.handlePauseClick()
	case g.indicator.IsClicked(mx, my):
		g.indicator.HandleClick()
		g.startWave()
	default:
		return false
	}
	return true
}

// handleRightClick переносит точку сбора стражей или сбрасывает инструмент.
func (g *GameState) handleRightClick(x, y float64) {
	game := g.sm.Game
	if t := game.Selected(); t != nil && t.IsSentinel() {
		g.report(game.SetRallyPoint(t.ID, x, y))
		return
	}
	g.tool = app.Tool{}
}

func (g *GameState) startWave() {
	g.report(g.sm.Game.StartWave())
}

func (g *GameState) handlePauseClick() {
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) updateGameOver() {
	game := g.sm.Game
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		game.Restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		game.RestartNewMap()
	case inpututil.IsKeyJustPressed(ebiten.KeyM), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		if game.BackToMenu() {
			g.sm.SetState(NewMenuState(g.sm))
		}
	}
}

func (g *GameState) report(r app.Result) {
	if r.OK || r.Reason == app.ReasonNone {
		return
	}
	if g.tool.Kind == app.ToolNone && r.Reason == app.ReasonNotFound {
		return
	}
	g.message = string(r.Reason)
	g.messageTimer = messageTime
	g.sm.Logger.Debug().Str("reason", g.message).Str("tool", g.tool.Label()).Msg("action rejected")
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snap := g.sm.drawWorld(screen)

	message := ""
	if g.messageTimer > 0 {
		message = g.message
	}
	render.DrawHUD(screen, snap, message)
	if label := g.tool.Label(); label != "" {
		render.DrawText(screen, "BUILD: "+label, config.ScreenWidth-6, config.ScreenHeight-18, config.TextLightColor, render.AlignEnd)
	}

	g.indicator.Draw(screen, ui.PhaseColor(snap.WaveActive, snap.LevelTransition))
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)
	g.waveIndicator.Draw(screen, snap.Wave+1, snap.WavesInLevel)

	switch {
	case snap.State == string(component.StateGameOver):
		render.DrawOverlay(screen, "GAME OVER",
			fmt.Sprintf("Level %d  Wave %d  Score %d", snap.Level, snap.Wave+1, snap.Score),
			"R restart   N new map   M menu")
	case snap.LevelTransition:
		render.DrawOverlay(screen, fmt.Sprintf("LEVEL %d COMPLETE", snap.Level), render.LevelSummary(snap.LevelStats)...)
	}
}

func (g *GameState) Exit() {}
