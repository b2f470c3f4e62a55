// internal/app/game.go
package app

import (
	"go-neon-defense/internal/component"
	"go-neon-defense/internal/config"
	"go-neon-defense/internal/defs"
	"go-neon-defense/internal/entity"
	"go-neon-defense/internal/event"
	"go-neon-defense/internal/logging"
	"go-neon-defense/internal/system"
	"go-neon-defense/internal/types"
	"go-neon-defense/internal/utils"
	"go-neon-defense/pkg/pathcurve"

	"github.com/rs/zerolog"
)

// Options — параметры создания игры.
type Options struct {
	Seed       uint32 // сид карты первого уровня, 0 — случайный
	RandomSeed int64  // сид перемешивания волн, 0 — от времени
	StartLevel int
	Speed      float64 // множитель скорости на старте забега
	Generator  pathcurve.Generator
	Library    *defs.Library
	Logger     zerolog.Logger
}

// LevelStats — итоги пройденного уровня для экрана перехода.
type LevelStats struct {
	Level        int `json:"level"`
	Score        int `json:"score"`
	Gold         int `json:"gold"`
	Towers       int `json:"towers"`
	WavesCleared int `json:"wavesCleared"`
	Kills        int `json:"kills"`
	Leaks        int `json:"leaks"`
}

// Game владеет миром симуляции и задаёт порядок систем в тике.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Defs            *defs.Library

	EnemySystem         *system.EnemySystem
	WaveSystem          *system.WaveSystem
	CombatSystem        *system.CombatSystem
	ProjectileSystem    *system.ProjectileSystem
	TrapSystem          *system.TrapSystem
	FortificationSystem *system.FortificationSystem
	SentinelSystem      *system.SentinelSystem
	StateSystem         *system.StateSystem

	Gold            int
	Lives           int
	Score           int
	Level           int
	SpeedMultiplier float64

	logger     zerolog.Logger
	generator  pathcurve.Generator
	startLevel int
	startSpeed float64
	mapSeed    uint32
	gameMap    *pathcurve.Map
	grid       pathcurve.Grid

	accumulator     float64
	paused          bool
	levelTransition bool
	levelStats      *LevelStats
	stats           *statsListener
}

// NewGame создаёт игру в состоянии меню с уже сгенерированной картой.
func NewGame(opts Options) *Game {
	if opts.Generator == nil {
		opts.Generator = pathcurve.NewTemplateGenerator()
	}
	if opts.Library == nil {
		opts.Library = defs.DefaultLibrary()
	}
	if opts.StartLevel < 1 {
		opts.StartLevel = config.StartLevel
	}
	if opts.Speed < config.MinSpeedMultiplier || opts.Speed > config.MaxSpeedMultiplier {
		opts.Speed = config.MinSpeedMultiplier
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.RandomSeed)

	seed := opts.Seed
	if seed == 0 {
		seed = rng.Uint32()
	}

	g := &Game{
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Defs:            opts.Library,
		SpeedMultiplier: 1,
		logger:          logging.Component(opts.Logger, "game"),
		generator:       opts.Generator,
		startLevel:      opts.StartLevel,
		startSpeed:      opts.Speed,
		mapSeed:         seed,
		grid:            pathcurve.NewGrid(config.ScreenWidth, config.ScreenHeight, config.GridSize),
	}

	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher)
	g.EnemySystem = system.NewEnemySystem(ecs, g, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, g.Defs, g, rng, eventDispatcher, logging.Component(opts.Logger, "wave"))
	g.CombatSystem = system.NewCombatSystem(ecs, g.ProjectileSystem, eventDispatcher)
	g.TrapSystem = system.NewTrapSystem(ecs, eventDispatcher)
	g.FortificationSystem = system.NewFortificationSystem(ecs, g.Defs, g, eventDispatcher)
	g.SentinelSystem = system.NewSentinelSystem(ecs, g.Defs, g, eventDispatcher)
	g.StateSystem = system.NewStateSystem(eventDispatcher, logging.Component(opts.Logger, "state"))

	g.stats = &statsListener{}
	eventDispatcher.Subscribe(event.EnemyKilled, g.stats)
	eventDispatcher.Subscribe(event.EnemyLeaked, g.stats)

	g.reset()
	return g
}

// --- Контекст карты для систем ---

func (g *Game) Curve() *pathcurve.Curve {
	if g.gameMap == nil {
		return nil
	}
	return g.gameMap.Curve
}

func (g *Game) Map() *pathcurve.Map { return g.gameMap }

func (g *Game) Grid() pathcurve.Grid { return g.grid }

func (g *Game) BlockedCells() *pathcurve.CellSet {
	if c := g.Curve(); c != nil {
		return c.BlockedCells(g.grid)
	}
	return pathcurve.NewCellSet(g.grid)
}

// --- Состояние ---

func (g *Game) State() component.GameState { return g.StateSystem.Current() }

func (g *Game) IsPaused() bool { return g.paused }

// InLevelTransition — уровень пройден, ждём подтверждения.
func (g *Game) InLevelTransition() bool { return g.levelTransition }

// LevelStats — итоги уровня или nil вне перехода.
func (g *Game) LevelStats() *LevelStats { return g.levelStats }

// reset возвращает забег к началу на текущем сиде карты.
func (g *Game) reset() {
	g.ECS.Reset()
	g.Gold = config.StartingGold
	g.Lives = config.StartingLives
	g.Score = 0
	g.Level = g.startLevel
	g.SpeedMultiplier = g.startSpeed
	g.accumulator = 0
	g.paused = false
	g.levelTransition = false
	g.levelStats = nil
	g.stats.reset()

	g.gameMap = g.generator.Generate(g.mapSeed)
	g.WaveSystem.ResetLevel(g.Level)
	g.FortificationSystem.OnLevelStart()
}

// StartGame запускает забег из меню.
func (g *Game) StartGame() bool {
	if g.State() != component.StateMenu {
		return false
	}
	g.reset()
	if !g.StateSystem.SetState(component.StatePlaying) {
		return false
	}
	g.logger.Info().Uint32("seed", g.mapSeed).Str("map", g.gameMap.Name).Msg("game started")
	g.dispatchLevel(event.LevelStarted)
	return true
}

// Restart начинает заново на той же карте после поражения.
func (g *Game) Restart() bool {
	if g.State() != component.StateGameOver {
		return false
	}
	g.reset()
	g.StateSystem.SetState(component.StatePlaying)
	g.dispatchLevel(event.LevelStarted)
	return true
}

// RestartNewMap начинает заново на новой случайной карте.
func (g *Game) RestartNewMap() bool {
	if g.State() != component.StateGameOver {
		return false
	}
	g.mapSeed = g.Rng.Uint32()
	return g.Restart()
}

// BackToMenu сбрасывает забег и готовит новую карту для меню.
func (g *Game) BackToMenu() bool {
	if !g.StateSystem.CanTransition(component.StateMenu) {
		return false
	}
	g.mapSeed = g.Rng.Uint32()
	g.reset()
	return g.StateSystem.SetState(component.StateMenu)
}

// SetSpeed выбирает множитель скорости 1×, 2× или 3×.
func (g *Game) SetSpeed(multiplier float64) bool {
	if multiplier < config.MinSpeedMultiplier || multiplier > config.MaxSpeedMultiplier {
		return false
	}
	g.SpeedMultiplier = multiplier
	return true
}

func (g *Game) TogglePause() bool {
	g.paused = !g.paused
	return g.paused
}

// --- Тик ---

// Advance принимает реальное время кадра и прогоняет столько
// фиксированных шагов, сколько накопилось. Возвращает число шагов.
func (g *Game) Advance(wallDelta float64) int {
	if wallDelta < 0 {
		wallDelta = 0
	}
	if wallDelta > config.MaxDeltaTime {
		wallDelta = config.MaxDeltaTime
	}
	g.accumulator += wallDelta

	steps := 0
	for g.accumulator >= config.FixedTimeStep && steps < config.MaxStepsPerFeed {
		g.Step()
		g.accumulator -= config.FixedTimeStep
		steps++
	}
	if steps == config.MaxStepsPerFeed {
		g.accumulator = 0
	}
	return steps
}

// Step — ровно один фиксированный шаг симуляции.
func (g *Game) Step() {
	g.Update(config.FixedTimeStep)
}

// Update выполняет один тик. Порядок важен: флаги блокировки,
// выставленные укреплениями и стражами, действуют на движение
// врагов уже в следующем тике.
func (g *Game) Update(deltaTime float64) {
	if !g.StateSystem.IsPlaying() || g.paused || g.levelTransition {
		return
	}
	speed := g.SpeedMultiplier
	g.ECS.GameTime += deltaTime * speed

	g.WaveSystem.Update(deltaTime, speed)
	g.EnemySystem.Update(deltaTime, speed)
	g.CombatSystem.Update(deltaTime, speed)
	g.ProjectileSystem.Update(deltaTime, speed)
	g.TrapSystem.Update(deltaTime, speed)
	g.FortificationSystem.Update(deltaTime, speed)
	g.SentinelSystem.Update(deltaTime, speed)

	g.reconcile()
}

// reconcile подводит итоги тика: награды, потерянные жизни,
// удаление мёртвых и завершение волны.
func (g *Game) reconcile() {
	gameOver := false
	for _, e := range g.ECS.Enemies {
		if e.Alive || e.Settled {
			continue
		}
		e.Settled = true
		if e.ReachedEnd {
			g.Lives--
			g.EventDispatcher.Dispatch(event.Event{
				Type: event.EnemyLeaked,
				Data: event.EntityPayload{ID: e.ID, Kind: string(e.Kind), X: e.X, Y: e.Y},
			})
			if g.Lives <= 0 {
				g.Lives = 0
				gameOver = true
			}
			continue
		}
		g.Gold += e.Gold
		g.Score += e.Gold
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.EnemyKilled,
			Data: event.RewardPayload{ID: e.ID, Gold: e.Gold, Score: e.Gold},
		})
	}

	for _, e := range g.ECS.RemoveEnemies(func(e *component.Enemy) bool { return !e.Alive }) {
		g.SentinelSystem.ReleaseEnemy(e.ID)
	}
	g.ECS.RemoveDeadTraps()

	if gameOver {
		g.StateSystem.SetState(component.StateGameOver)
		g.logger.Info().Int("level", g.Level).Int("wave", g.ECS.Wave.Index).Int("score", g.Score).Msg("game over")
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.GameOver,
			Data: event.WavePayload{Level: g.Level, Wave: g.ECS.Wave.Index},
		})
		return
	}

	if g.WaveSystem.IsWaveComplete() {
		g.completeWave()
	}
}

func (g *Game) completeWave() {
	w := g.ECS.Wave
	bonus := config.WaveClearBonus + w.Index*config.WaveClearPerWave
	g.Gold += bonus
	g.Score += bonus
	last := g.WaveSystem.IsLastWave()

	g.logger.Info().Int("level", g.Level).Int("wave", w.Index).Int("bonus", bonus).Msg("wave cleared")
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.WaveEnded,
		Data: event.WavePayload{Level: g.Level, Wave: w.Index, Bonus: bonus},
	})

	w.Index++
	w.Active = false
	if last {
		g.beginLevelTransition()
	}
}

// StartWave запускает следующую волну. Если текущая ещё идёт, новая
// встаёт в очередь следом, а игрок получает бонус за риск.
func (g *Game) StartWave() Result {
	if !g.StateSystem.IsPlaying() {
		return g.reject("start_wave", ReasonNotPlaying)
	}
	if g.levelTransition {
		return g.reject("start_wave", ReasonInTransition)
	}

	w := g.ECS.Wave
	if w.Active {
		// Последнюю волну уровня нужно пройти честно
		if g.WaveSystem.IsLastWave() {
			return g.reject("start_wave", ReasonLastWave)
		}
		alive, unspawned := g.WaveSystem.Remaining()
		bonus := config.EarlyWaveBonus * (alive + unspawned)
		g.Gold += bonus
		g.Score += bonus
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.EarlyWaveBonus,
			Data: event.WavePayload{Level: g.Level, Wave: w.Index, Bonus: bonus},
		})
		w.Index++
	}

	g.WaveSystem.StartWave()
	g.FortificationSystem.OnWaveStart()
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WavePayload{Level: g.Level, Wave: w.Index},
	})
	return accepted(types.NoEntity)
}

// WavePreview — состав волны, которая начнётся следующей.
func (g *Game) WavePreview() string {
	return g.WaveSystem.PreviewText()
}

func (g *Game) dispatchLevel(t event.EventType) {
	g.EventDispatcher.Dispatch(event.Event{
		Type: t,
		Data: event.WavePayload{Level: g.Level},
	})
}

func (g *Game) reject(op string, reason Reason) Result {
	g.logger.Debug().Str("op", op).Str("reason", string(reason)).Msg("request rejected")
	return rejected(reason)
}
