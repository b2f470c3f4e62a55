// cmd/headless/main.go
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"go-neon-defense/internal/app"
	"go-neon-defense/internal/autoplay"
	"go-neon-defense/internal/config"
	"go-neon-defense/internal/feed"
	"go-neon-defense/internal/logging"

	"github.com/rs/zerolog"
)

func main() {
	configDir := flag.String("config", ".", "directory with "+config.FileName)
	maxLevel := flag.Int("levels", 3, "stop after clearing this many levels")
	realtime := flag.Bool("realtime", false, "advance with the wall clock instead of as fast as possible")
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
	bot := autoplay.NewBot(logging.Component(logger, "bot"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var publisher *feed.Publisher
	if settings.Feed.Enabled {
		server := feed.NewServer(logging.Component(logger, "feed"))
		publisher = feed.NewPublisher(server, settings.Feed.Interval)
		go func() {
			if err := server.ListenAndServe(ctx, settings.Feed.Address); err != nil {
				logger.Error().Err(err).Msg("feed stopped")
				stop()
			}
		}()
		// по сети смотрят в реальном времени
		*realtime = true
	}

	run(ctx, game, bot, publisher, *maxLevel, *realtime, logger)

	logger.Info().
		Int("level", game.Level).
		Int("wave", game.ECS.Wave.Index).
		Int("score", game.Score).
		Int("lives", game.Lives).
		Str("state", string(game.State())).
		Msg("headless run finished")
}

func run(ctx context.Context, game *app.Game, bot *autoplay.Bot, publisher *feed.Publisher, maxLevel int, realtime bool, logger zerolog.Logger) {
	start := time.Now()
	clock := start
	step := config.FixedTimeStep
	ticker := time.NewTicker(time.Duration(step * float64(time.Second)))
	defer ticker.Stop()

	for game.Level <= maxLevel {
		if !bot.Act(game) {
			return
		}

		if realtime {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				game.Advance(now.Sub(clock).Seconds())
				clock = now
			}
		} else {
			select {
			case <-ctx.Done():
				return
			default:
			}
			game.Step()
			clock = start.Add(time.Duration(game.ECS.GameTime * float64(time.Second)))
		}

		if publisher != nil {
			if _, err := publisher.Publish(game, clock); err != nil {
				logger.Warn().Err(err).Msg("publish frame")
			}
		}
	}
}
