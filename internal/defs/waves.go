// internal/defs/waves.go
package defs

import (
	"fmt"
	"math"
	"strings"
)

// WaveGroup — сколько врагов одного типа входит в волну.
type WaveGroup struct {
	Kind  EnemyKind `json:"kind"`
	Count int       `json:"count"`
}

// groupRule открывает тип врага, когда прогресс уровня достигает Threshold.
// Базовое количество: Base + PerProgress*progress.
type groupRule struct {
	Kind        EnemyKind
	Threshold   float64
	Base        float64
	PerProgress float64
}

// Порядок групп в волне совпадает с порядком правил.
var groupRules = []groupRule{
	{Kind: EnemyBasic, Threshold: 0, Base: 8, PerProgress: 12},
	{Kind: EnemyFast, Threshold: 0.1, Base: 2, PerProgress: 8},
	{Kind: EnemySwarm, Threshold: 0.15, Base: 4, PerProgress: 10},
	{Kind: EnemyTank, Threshold: 0.25, Base: 1, PerProgress: 6},
	{Kind: EnemyShield, Threshold: 0.35, Base: 1, PerProgress: 5},
	{Kind: EnemyHealer, Threshold: 0.5, Base: 1, PerProgress: 3},
	{Kind: EnemyStealth, Threshold: 0.6, Base: 1, PerProgress: 4},
}

const (
	bossThreshold   = 0.95
	maxWavesInLevel = 20
	wavesPerLevel   = 5
)

// WavesPerLevel — 5, 10, 15, 20, 20, ...
func WavesPerLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return min(wavesPerLevel*level, maxWavesInLevel)
}

// LevelScale — множитель сложности уровня.
func LevelScale(level int) float64 {
	if level < 1 {
		level = 1
	}
	return 1 + float64(level-1)*0.5
}

// WaveProgress — положение волны внутри уровня, от 0 до 1.
func WaveProgress(waveIndex, wavesInLevel int) float64 {
	if wavesInLevel <= 1 {
		return 1
	}
	p := float64(waveIndex) / float64(wavesInLevel-1)
	return math.Max(0, math.Min(1, p))
}

// Composition строит состав волны waveIndex (с нуля) для уровня
// из wavesInLevel волн. Группы с нулевой численностью не включаются.
func Composition(waveIndex, wavesInLevel int, levelScale float64) []WaveGroup {
	p := WaveProgress(waveIndex, wavesInLevel)

	groups := make([]WaveGroup, 0, len(groupRules)+1)
	for _, rule := range groupRules {
		if p < rule.Threshold {
			continue
		}
		base := math.Floor(rule.Base + rule.PerProgress*p)
		count := int(math.Floor(base * levelScale))
		if count > 0 {
			groups = append(groups, WaveGroup{Kind: rule.Kind, Count: count})
		}
	}
	if p >= bossThreshold {
		groups = append(groups, WaveGroup{Kind: EnemyBoss, Count: max(1, int(math.Floor(levelScale)))})
	}
	return groups
}

// PreviewText — "11 basic + 4 fast + 1 boss".
func PreviewText(groups []WaveGroup) string {
	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		parts = append(parts, fmt.Sprintf("%d %s", g.Count, g.Kind))
	}
	return strings.Join(parts, " + ")
}
