// internal/system/wave.go
package system

import (
	"go-neon-defense/internal/component"
	"go-neon-defense/internal/config"
	"go-neon-defense/internal/defs"
	"go-neon-defense/internal/entity"
	"go-neon-defense/internal/event"
	"go-neon-defense/internal/interfaces"
	"go-neon-defense/internal/utils"

	"github.com/rs/zerolog"
)

type WaveSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	path            interfaces.PathContext
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	logger          zerolog.Logger
}

func NewWaveSystem(ecs *entity.ECS, lib *defs.Library, path interfaces.PathContext, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, logger zerolog.Logger) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		lib:             lib,
		path:            path,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

// BuildSpawnQueue разворачивает группы в очередь появления.
// Все не-боссы перемешиваются, боссы всегда идут в конце.
func BuildSpawnQueue(groups []defs.WaveGroup, wave int, rng *utils.PRNGService) []component.SpawnEntry {
	var others, bosses []component.SpawnEntry
	for _, g := range groups {
		for i := 0; i < g.Count; i++ {
			entry := component.SpawnEntry{Kind: g.Kind, Wave: wave}
			if g.Kind == defs.EnemyBoss {
				bosses = append(bosses, entry)
			} else {
				others = append(others, entry)
			}
		}
	}
	rng.Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })
	return append(others, bosses...)
}

// ResetLevel готовит планировщик к новому уровню.
func (s *WaveSystem) ResetLevel(level int) {
	*s.ecs.Wave = component.Wave{
		Index:         0,
		WavesInLevel:  defs.WavesPerLevel(level),
		Level:         level,
		LevelScale:    defs.LevelScale(level),
		SpawnInterval: config.SpawnInterval,
	}
}

// Composition — состав текущей волны.
func (s *WaveSystem) Composition() []defs.WaveGroup {
	w := s.ecs.Wave
	return defs.Composition(w.Index, w.WavesInLevel, w.LevelScale)
}

// StartWave дописывает состав текущей волны в очередь появления.
// Уже стоящие в очереди враги прошлой волны остаются на месте.
func (s *WaveSystem) StartWave() {
	w := s.ecs.Wave
	queue := BuildSpawnQueue(s.Composition(), w.Index, s.rng)
	if len(w.Queue) == 0 {
		w.SpawnTimer = 0
	}
	w.Queue = append(w.Queue, queue...)
	w.Active = true

	s.logger.Info().
		Int("level", w.Level).
		Int("wave", w.Index).
		Int("spawns", len(queue)).
		Int("queued", len(w.Queue)).
		Msg("wave started")
}

// Update выпускает по одному врагу каждые SpawnInterval секунд.
func (s *WaveSystem) Update(deltaTime, speedMultiplier float64) {
	w := s.ecs.Wave
	if !w.Active || len(w.Queue) == 0 {
		return
	}
	w.SpawnTimer -= deltaTime * speedMultiplier
	if w.SpawnTimer > 0 {
		return
	}
	entry := w.Queue[0]
	w.Queue = w.Queue[1:]
	s.spawnEnemy(entry)
	w.SpawnTimer = w.SpawnInterval
}

func (s *WaveSystem) spawnEnemy(entry component.SpawnEntry) {
	def, ok := s.lib.Enemy(entry.Kind)
	if !ok {
		s.logger.Error().Str("kind", string(entry.Kind)).Msg("enemy definition not found")
		return
	}
	curve := s.path.Curve()
	if curve == nil {
		return
	}
	e := NewEnemy(s.ecs.NewEntity(), def, entry.Wave, s.ecs.Wave.LevelScale, curve)
	s.ecs.AddEnemy(e)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EntityPayload{ID: e.ID, Kind: string(e.Kind), X: e.X, Y: e.Y},
	})
}

// Remaining — живые враги и ещё не выпущенные.
func (s *WaveSystem) Remaining() (alive, unspawned int) {
	return s.ecs.AliveEnemies(), len(s.ecs.Wave.Queue)
}

// IsWaveComplete — волна активна, очередь пуста и все враги мертвы.
func (s *WaveSystem) IsWaveComplete() bool {
	w := s.ecs.Wave
	return w.Active && len(w.Queue) == 0 && s.ecs.AliveEnemies() == 0
}

// IsLastWave — текущая волна последняя на уровне.
func (s *WaveSystem) IsLastWave() bool {
	w := s.ecs.Wave
	return w.Index >= w.WavesInLevel-1
}

// PreviewText — состав текущей волны текстом.
func (s *WaveSystem) PreviewText() string {
	return defs.PreviewText(s.Composition())
}
