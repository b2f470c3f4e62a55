// internal/app/snapshot.go
package app

import (
	"go-neon-defense/internal/system"
	"go-neon-defense/internal/types"
	"go-neon-defense/pkg/pathcurve"
)

// EnemyView — то, что рендеру нужно знать о враге.
type EnemyView struct {
	ID           types.EntityID `json:"id"`
	Kind         string         `json:"kind"`
	X            float64        `json:"x"`
	Y            float64        `json:"y"`
	HP           int            `json:"hp"`
	MaxHP        int            `json:"maxHp"`
	Progress     float64        `json:"progress"`
	Slowed       bool           `json:"slowed,omitempty"`
	Poisoned     bool           `json:"poisoned,omitempty"`
	StealthAlpha float64        `json:"alpha"`
	Blocked      bool           `json:"blocked,omitempty"`
}

// TowerView — башня; UpgradeCost равен 0 на максимальном уровне.
type TowerView struct {
	ID          types.EntityID   `json:"id"`
	Kind        string           `json:"kind"`
	X           float64          `json:"x"`
	Y           float64          `json:"y"`
	Tier        int              `json:"tier"`
	Range       float64          `json:"range"`
	Angle       float64          `json:"angle"`
	Selected    bool             `json:"selected,omitempty"`
	SellValue   int              `json:"sellValue"`
	UpgradeCost int              `json:"upgradeCost"`
	Rally       *pathcurve.Point `json:"rally,omitempty"`
}

type TrapView struct {
	ID      types.EntityID `json:"id"`
	Kind    string         `json:"kind"`
	X       float64        `json:"x"`
	Y       float64        `json:"y"`
	Radius  float64        `json:"radius"`
	Uses    int            `json:"uses"`
	MaxUses int            `json:"maxUses"`
}

type StructureView struct {
	ID    types.EntityID `json:"id"`
	Kind  string         `json:"kind"`
	X     float64        `json:"x"`
	Y     float64        `json:"y"`
	HP    int            `json:"hp"`
	MaxHP int            `json:"maxHp"`
}

type SentinelView struct {
	ID           types.EntityID `json:"id"`
	TowerID      types.EntityID `json:"towerId"`
	X            float64        `json:"x"`
	Y            float64        `json:"y"`
	HP           float64        `json:"hp"`
	MaxHP        float64        `json:"maxHp"`
	Alive        bool           `json:"alive"`
	Engaged      bool           `json:"engaged,omitempty"`
	RespawnTimer float64        `json:"respawn,omitempty"`
}

type ShotView struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Source string  `json:"source"`
}

type RingView struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
	Source string  `json:"source"`
}

// Snapshot — копия публичного состояния на момент вызова.
// Изменение снимка не влияет на игру.
type Snapshot struct {
	State           string  `json:"state"`
	Level           int     `json:"level"`
	Wave            int     `json:"wave"`
	WavesInLevel    int     `json:"wavesInLevel"`
	WaveActive      bool    `json:"waveActive"`
	Preview         string  `json:"preview"`
	Gold            int     `json:"gold"`
	Lives           int     `json:"lives"`
	Score           int     `json:"score"`
	Speed           float64 `json:"speed"`
	Paused          bool    `json:"paused"`
	BarricadeStock  int     `json:"barricadeStock"`
	LevelTransition bool    `json:"levelTransition"`
	GameTime        float64 `json:"gameTime"`

	LevelStats *LevelStats `json:"levelStats,omitempty"`

	Enemies     []EnemyView     `json:"enemies"`
	Towers      []TowerView     `json:"towers"`
	Traps       []TrapView      `json:"traps"`
	Structures  []StructureView `json:"structures"`
	Sentinels   []SentinelView  `json:"sentinels"`
	Projectiles []ShotView      `json:"projectiles"`
	Rings       []RingView      `json:"rings"`
}

// MapView — неизменная часть кадра, меняется только со сменой уровня.
type MapView struct {
	Seed     uint32                `json:"seed"`
	Name     string                `json:"name"`
	Template string                `json:"template"`
	Path     []pathcurve.Point     `json:"path"`
	Water    []pathcurve.WaterZone `json:"water"`
	Width    int                   `json:"width"`
	Height   int                   `json:"height"`
}

// Snapshot собирает снимок для рендера и вещания.
func (g *Game) Snapshot() Snapshot {
	w := g.ECS.Wave
	s := Snapshot{
		State:           string(g.State()),
		Level:           g.Level,
		Wave:            w.Index,
		WavesInLevel:    w.WavesInLevel,
		WaveActive:      w.Active,
		Preview:         g.WavePreview(),
		Gold:            g.Gold,
		Lives:           g.Lives,
		Score:           g.Score,
		Speed:           g.SpeedMultiplier,
		Paused:          g.paused,
		BarricadeStock:  g.FortificationSystem.Stock(),
		LevelTransition: g.levelTransition,
		GameTime:        g.ECS.GameTime,

		Enemies:     make([]EnemyView, 0, len(g.ECS.Enemies)),
		Towers:      make([]TowerView, 0, len(g.ECS.Towers)),
		Traps:       make([]TrapView, 0, len(g.ECS.Traps)),
		Structures:  make([]StructureView, 0, len(g.ECS.Structures)),
		Sentinels:   make([]SentinelView, 0, len(g.ECS.Sentinels)),
		Projectiles: make([]ShotView, 0, len(g.ECS.Projectiles)),
		Rings:       make([]RingView, 0, len(g.ECS.Rings)),
	}
	if g.levelStats != nil {
		stats := *g.levelStats
		s.LevelStats = &stats
	}

	for _, e := range g.ECS.Enemies {
		if !e.Alive {
			continue
		}
		s.Enemies = append(s.Enemies, EnemyView{
			ID: e.ID, Kind: string(e.Kind), X: e.X, Y: e.Y,
			HP: e.HP, MaxHP: e.MaxHP, Progress: e.Progress,
			Slowed: e.Slow.Active, Poisoned: e.Poison.Active,
			StealthAlpha: e.StealthAlpha, Blocked: e.IsBlocked(),
		})
	}
	for _, t := range g.ECS.Towers {
		v := TowerView{
			ID: t.ID, Kind: string(t.Kind), X: t.X, Y: t.Y,
			Tier: t.Tier, Range: t.Range, Angle: t.Angle,
			Selected: t.Selected, SellValue: t.SellValue(),
		}
		if def, ok := g.Defs.Tower(t.Kind); ok {
			if cost, ok := system.UpgradeCost(t, def); ok {
				v.UpgradeCost = cost
			}
		}
		if t.IsSentinel() {
			r := g.SentinelSystem.DefaultRally(t)
			if t.Sentinel.Rally != nil {
				r = *t.Sentinel.Rally
			}
			v.Rally = &pathcurve.Point{X: r.X, Y: r.Y}
		}
		s.Towers = append(s.Towers, v)
	}
	for _, t := range g.ECS.Traps {
		s.Traps = append(s.Traps, TrapView{
			ID: t.ID, Kind: string(t.Kind), X: t.X, Y: t.Y,
			Radius: t.Radius, Uses: t.Uses, MaxUses: t.MaxUses,
		})
	}
	for _, st := range g.ECS.Structures {
		s.Structures = append(s.Structures, StructureView{
			ID: st.ID, Kind: string(st.Kind), X: st.X, Y: st.Y, HP: st.HP, MaxHP: st.MaxHP,
		})
	}
	for _, u := range g.ECS.Sentinels {
		s.Sentinels = append(s.Sentinels, SentinelView{
			ID: u.ID, TowerID: u.TowerID, X: u.X, Y: u.Y,
			HP: u.HP, MaxHP: u.MaxHP, Alive: u.Alive,
			Engaged: u.EngagedID != types.NoEntity, RespawnTimer: u.RespawnTimer,
		})
	}
	for _, p := range g.ECS.Projectiles {
		s.Projectiles = append(s.Projectiles, ShotView{X: p.X, Y: p.Y, Source: string(p.Source)})
	}
	for _, r := range g.ECS.Rings {
		s.Rings = append(s.Rings, RingView{X: r.X, Y: r.Y, Radius: r.Radius, Source: string(r.Source)})
	}
	return s
}

// MapView — геометрия текущей карты.
func (g *Game) MapView() MapView {
	v := MapView{Width: g.grid.Cols * int(g.grid.CellSize), Height: g.grid.Rows * int(g.grid.CellSize)}
	if g.gameMap == nil {
		return v
	}
	v.Seed = g.gameMap.Seed
	v.Name = g.gameMap.Name
	v.Template = g.gameMap.Template
	v.Water = append([]pathcurve.WaterZone(nil), g.gameMap.Water...)
	if g.gameMap.Curve != nil {
		v.Path = g.gameMap.Curve.Points()
	}
	return v
}
