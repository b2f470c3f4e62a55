// cmd/game/main.go
package main

import (
	"flag"
	"os"
	"time"

	"go-neon-defense/internal/app"
	"go-neon-defense/internal/config"
	"go-neon-defense/internal/logging"
	"go-neon-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configDir := flag.String("config", ".", "directory with "+config.FileName)
	flag.Parse()

	bootLog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	settings, err := config.Load(*configDir)
	if err != nil {
		bootLog.Warn().Err(err).Msg("using default settings")
		settings = config.Defaults()
	}

	logger, err := logging.New(settings.LogLevel, settings.LogFormat, os.Stderr)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("logger")
	}

	opts, err := app.OptionsFromSettings(settings, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("game options")
	}
	game := app.NewGame(opts)

	sm := state.NewStateMachine(game, logging.Component(logger, "ui"))
	sm.SetState(state.NewMenuState(sm))

	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	scale := settings.Window.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(config.ScreenWidth*scale), int(config.ScreenHeight*scale))
	ebiten.SetWindowTitle(settings.Window.Title)
	if err := ebiten.RunGame(a); err != nil {
		logger.Fatal().Err(err).Msg("game loop")
	}
}
