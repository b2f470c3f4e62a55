// internal/config/settings.go
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// FileName — имя файла настроек в каталоге конфигурации.
const FileName = "neon_defense.cfg.json"

// FeedSettings — параметры вещания снимков по websocket.
type FeedSettings struct {
	Enabled  bool          `json:"enabled" mapstructure:"enabled"`
	Address  string        `json:"address" mapstructure:"address"`
	Interval time.Duration `json:"interval" mapstructure:"interval"`
}

// WindowSettings — параметры окна отладочного рендера.
type WindowSettings struct {
	Scale float64 `json:"scale" mapstructure:"scale"`
	Title string  `json:"title" mapstructure:"title"`
}

// Settings — настройки запуска, не влияющие на правила игры.
type Settings struct {
	LogLevel    string         `json:"logLevel" mapstructure:"logLevel"`
	LogFormat   string         `json:"logFormat" mapstructure:"logFormat"`
	Seed        uint32         `json:"seed" mapstructure:"seed"`
	RandomSeed  int64          `json:"randomSeed" mapstructure:"randomSeed"`
	Speed       float64        `json:"speed" mapstructure:"speed"`
	StartLevel  int            `json:"startLevel" mapstructure:"startLevel"`
	BalanceFile string         `json:"balanceFile" mapstructure:"balanceFile"`
	Feed        FeedSettings   `json:"feed" mapstructure:"feed"`
	Window      WindowSettings `json:"window" mapstructure:"window"`
}

func setDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logFormat", "console")
	viper.SetDefault("seed", 1)
	viper.SetDefault("randomSeed", 0)
	viper.SetDefault("speed", 1)
	viper.SetDefault("startLevel", StartLevel)
	viper.SetDefault("balanceFile", "")

	viper.SetDefault("feed.enabled", false)
	viper.SetDefault("feed.address", "localhost:8090")
	viper.SetDefault("feed.interval", "100ms")

	viper.SetDefault("window.scale", 1.0)
	viper.SetDefault("window.title", "Neon Defense")
}

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file.
func Load(configDir string) (Settings, error) {
	setDefaults()

	viper.SetConfigName(FileName)
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		return Settings{}, fmt.Errorf("error reading config file: %w", err)
	}
	return current()
}

// Defaults возвращает настройки по умолчанию без чтения файла.
func Defaults() Settings {
	setDefaults()
	s, err := current()
	if err != nil {
		// значения по умолчанию всегда декодируются
		panic(err)
	}
	return s
}

func current() (Settings, error) {
	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if s.Speed < MinSpeedMultiplier || s.Speed > MaxSpeedMultiplier {
		return Settings{}, fmt.Errorf("speed must be between %d and %d, got %v", MinSpeedMultiplier, MaxSpeedMultiplier, s.Speed)
	}
	if s.StartLevel < 1 {
		return Settings{}, fmt.Errorf("startLevel must be positive, got %d", s.StartLevel)
	}
	return s, nil
}
