// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	GridSize     = 10.0 // сторона клетки сетки в пикселях

	FixedTimeStep   = 1.0 / 60.0 // шаг симуляции, секунды
	TickNormalizer  = 60.0       // скорость врагов задана в единицах за 1/60 с
	MaxDeltaTime    = 0.25       // больше этого за один кадр не накапливаем
	MaxStepsPerFeed = 30         // защита от спирали при долгой паузе

	StartingGold  = 200
	StartingLives = 20
	StartLevel    = 1

	SpawnInterval      = 0.6 // секунд между появлениями врагов
	EarlyWaveBonus     = 5   // золото за каждого оставшегося врага при досрочной волне
	WaveClearBonus     = 50
	WaveClearPerWave   = 10
	LevelSeedFactor    = 7919
	MinSpeedMultiplier = 1
	MaxSpeedMultiplier = 3

	// Враги
	SlowFactor         = 0.5
	PoisonTickInterval = 0.5
	HealInterval       = 1.0
	StealthAlpha       = 0.3
	EnemyHPPerWave     = 0.2
	EnemySpeedPerLevel = 0.15
	EnemyGoldPerLevel  = 0.8

	// Башни
	TowerMinSpacing   = 28.0
	TowerBoundsMin    = 20.0
	TowerBoundsMaxX   = ScreenWidth - 20.0
	TowerBoundsMaxY   = ScreenHeight - 20.0
	TrapMinSpacing    = 16.0
	SlowedDamageBonus = 1.5

	ProjectileSpeed     = 600.0 // pixels per second
	ProjectileHitRadius = 10.0
	ProjectileRadius    = 3.0
	RingSpeed           = 120.0
	RingBand            = 15.0
	RingSlowDuration    = 2.0

	// Укрепления
	BarricadesPerWave   = 5
	MaxBarricadeStock   = 10
	StructureEngageDist = GridSize * 2
	StructureLeaveDist  = GridSize * 3

	// Стражи
	SentinelSpeed        = 80.0
	SentinelArriveDist   = 3.0
	SentinelEngageRadius = 25.0
	SentinelLerp         = 5.0
	SentinelRallyOffset  = 8.0
	SentinelRallyStep    = 0.02
)

var (
	BackgroundColor = color.RGBA{10, 10, 26, 255}
	PathColor       = color.RGBA{0, 243, 255, 60}
	PathEdgeColor   = color.RGBA{0, 243, 255, 140}
	WaterColor      = color.RGBA{0, 80, 180, 50}
	EntryColor      = color.RGBA{0, 255, 102, 255}
	ExitColor       = color.RGBA{255, 0, 85, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	HPBarBack       = color.RGBA{60, 0, 20, 255}
	HPBarFront      = color.RGBA{0, 255, 102, 255}
	SentinelColor   = color.RGBA{255, 221, 0, 255}
	SelectionColor  = color.RGBA{255, 255, 255, 90}
	SlowTint        = color.RGBA{136, 221, 255, 255}
	PoisonTint      = color.RGBA{68, 255, 68, 255}
)
