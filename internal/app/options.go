// internal/app/options.go
package app

import (
	"fmt"

	"go-neon-defense/internal/config"
	"go-neon-defense/internal/defs"

	"github.com/rs/zerolog"
)

// OptionsFromSettings собирает параметры игры из настроек запуска.
// Файл баланса, если указан, накладывается на встроенные таблицы.
func OptionsFromSettings(s config.Settings, logger zerolog.Logger) (Options, error) {
	opts := Options{
		Seed:       s.Seed,
		RandomSeed: s.RandomSeed,
		StartLevel: s.StartLevel,
		Speed:      s.Speed,
		Logger:     logger,
	}
	if s.BalanceFile != "" {
		lib, err := defs.LoadLibraryFile(s.BalanceFile)
		if err != nil {
			return Options{}, fmt.Errorf("load balance: %w", err)
		}
		opts.Library = lib
	}
	return opts, nil
}
