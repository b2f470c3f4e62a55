// internal/event/types.go
package event

const (
	EnemySpawned       EventType = "EnemySpawned"
	EnemyKilled        EventType = "EnemyKilled"  // Враг уничтожен, награда выдана
	EnemyLeaked        EventType = "EnemyLeaked"  // Враг дошёл до конца пути
	EnemyHealed        EventType = "EnemyHealed"
	TowerPlaced        EventType = "TowerPlaced"  // Башня построена
	TowerSold          EventType = "TowerSold"
	TowerUpgraded      EventType = "TowerUpgraded"
	TowerFired         EventType = "TowerFired"
	ProjectileHit      EventType = "ProjectileHit"
	TrapPlaced         EventType = "TrapPlaced"
	TrapTriggered      EventType = "TrapTriggered"
	BarricadePlaced    EventType = "BarricadePlaced"
	WallPlaced         EventType = "WallPlaced"
	StructureHit       EventType = "StructureHit"
	StructureDestroyed EventType = "StructureDestroyed"
	SentinelEngaged    EventType = "SentinelEngaged"
	SentinelDied       EventType = "SentinelDied"
	SentinelRespawned  EventType = "SentinelRespawned"
	WaveStarted        EventType = "WaveStarted"
	EarlyWaveBonus     EventType = "EarlyWaveBonus"
	WaveEnded          EventType = "WaveEnded"      // Волна закончилась
	LevelComplete      EventType = "LevelComplete"
	LevelStarted       EventType = "LevelStarted"
	GameOver           EventType = "GameOver"
	StateChanged       EventType = "StateChanged"
)
