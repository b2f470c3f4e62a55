// internal/component/wave.go
package component

import "go-neon-defense/internal/defs"

// SpawnEntry — один враг в очереди появления.
type SpawnEntry struct {
	Kind defs.EnemyKind
	Wave int
}

// Wave — состояние планировщика волн текущего уровня.
type Wave struct {
	Index         int // текущая волна внутри уровня, с нуля
	WavesInLevel  int
	Level         int
	LevelScale    float64
	Queue         []SpawnEntry
	SpawnTimer    float64
	SpawnInterval float64
	Active        bool
}
