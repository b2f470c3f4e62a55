// internal/system/sentinel.go
package system

import (
	"math"

	"go-neon-defense/internal/component"
	"go-neon-defense/internal/config"
	"go-neon-defense/internal/defs"
	"go-neon-defense/internal/entity"
	"go-neon-defense/internal/event"
	"go-neon-defense/internal/interfaces"
	"go-neon-defense/internal/types"
	"go-neon-defense/internal/utils"
)

// defaultSentinelDPS — урон по стражу от врага без описания.
const defaultSentinelDPS = 3.0

// SentinelSystem управляет отрядами башен стражей: возрождение,
// путь к точке сбора, захват врага и обмен уроном.
//
// Захват всегда парный: враг с BlockedBySentinel удерживается ровно
// одним стражем, у которого EngagedID указывает на этого врага.
type SentinelSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	path            interfaces.PathContext
	eventDispatcher *event.Dispatcher
}

func NewSentinelSystem(ecs *entity.ECS, lib *defs.Library, path interfaces.PathContext, eventDispatcher *event.Dispatcher) *SentinelSystem {
	return &SentinelSystem{
		ecs:             ecs,
		lib:             lib,
		path:            path,
		eventDispatcher: eventDispatcher,
	}
}

// DefaultRally — ближайшая к башне точка пути.
func (s *SentinelSystem) DefaultRally(t *component.Tower) component.Position {
	curve := s.path.Curve()
	if curve == nil {
		return component.Position{X: t.X, Y: t.Y + 30}
	}
	p, _ := curve.NearestSample(t.X, t.Y, config.SentinelRallyStep)
	return component.Position{X: p.X, Y: p.Y}
}

func (s *SentinelSystem) rally(t *component.Tower) component.Position {
	if t.Sentinel != nil && t.Sentinel.Rally != nil {
		return *t.Sentinel.Rally
	}
	return s.DefaultRally(t)
}

// slot — точка стража index на окружности вокруг точки сбора.
func slot(rally component.Position, index, count int) component.Position {
	if count <= 0 {
		count = 1
	}
	angle := float64(index) / float64(count) * 2 * math.Pi
	return component.Position{
		X: rally.X + math.Cos(angle)*config.SentinelRallyOffset,
		Y: rally.Y + math.Sin(angle)*config.SentinelRallyOffset,
	}
}

func (s *SentinelSystem) spawn(t *component.Tower, index int) *component.Sentinel {
	r := t.Sentinel
	return &component.Sentinel{
		ID:          s.ecs.NewEntity(),
		TowerID:     t.ID,
		Index:       index,
		Position:    t.Position,
		Target:      slot(s.rally(t), index, r.MaxUnits),
		HP:          r.HP,
		MaxHP:       r.HP,
		Damage:      r.Damage,
		Reduction:   r.Reduction,
		Speed:       config.SentinelSpeed,
		Alive:       true,
		RespawnTime: r.RespawnTime,
	}
}

// RegisterTower выставляет полный отряд башни, заменяя прежний.
func (s *SentinelSystem) RegisterTower(t *component.Tower) {
	if !t.IsSentinel() {
		return
	}
	s.UnregisterTower(t.ID)
	for i := 0; i < t.Sentinel.MaxUnits; i++ {
		s.ecs.AddSentinel(s.spawn(t, i))
	}
}

// UnregisterTower убирает отряд и отпускает удерживаемых врагов.
func (s *SentinelSystem) UnregisterTower(towerID types.EntityID) {
	for _, u := range s.ecs.SentinelsOf(towerID) {
		s.disengage(u)
	}
	s.ecs.RemoveSentinels(func(u *component.Sentinel) bool { return u.TowerID == towerID })
}

// OnTowerUpgrade переносит новые параметры на отряд. Живые стражи
// лечатся, недостающие появляются у башни.
func (s *SentinelSystem) OnTowerUpgrade(t *component.Tower) {
	if !t.IsSentinel() {
		return
	}
	r := t.Sentinel
	units := s.ecs.SentinelsOf(t.ID)
	for _, u := range units {
		u.MaxHP = r.HP
		u.Damage = r.Damage
		u.Reduction = r.Reduction
		u.RespawnTime = r.RespawnTime
		if u.Alive {
			u.HP = u.MaxHP
		}
	}
	for i := len(units); i < r.MaxUnits; i++ {
		s.ecs.AddSentinel(s.spawn(t, i))
	}
}

// SetRallyPoint переносит точку сбора. Свободные стражи сразу
// идут к новой точке, занятые боем пойдут после него.
func (s *SentinelSystem) SetRallyPoint(t *component.Tower, x, y float64) {
	if !t.IsSentinel() {
		return
	}
	t.Sentinel.Rally = &component.Position{X: x, Y: y}
	s.retarget(t)
}

// ResetRallyPoint возвращает точку сбора к ближайшей точке пути.
func (s *SentinelSystem) ResetRallyPoint(t *component.Tower) {
	if !t.IsSentinel() {
		return
	}
	t.Sentinel.Rally = nil
	s.retarget(t)
}

func (s *SentinelSystem) retarget(t *component.Tower) {
	rally := s.rally(t)
	for _, u := range s.ecs.SentinelsOf(t.ID) {
		u.Target = slot(rally, u.Index, t.Sentinel.MaxUnits)
		if u.EngagedID == types.NoEntity {
			u.AtRally = false
		}
	}
}

// ReleaseEnemy снимает захват с врага, которого убрали из мира.
func (s *SentinelSystem) ReleaseEnemy(id types.EntityID) {
	for _, u := range s.ecs.Sentinels {
		if u.EngagedID == id {
			u.EngagedID = types.NoEntity
			u.DamageCarry = 0
		}
	}
}

func (s *SentinelSystem) disengage(u *component.Sentinel) {
	if e := s.ecs.Enemy(u.EngagedID); e != nil {
		e.BlockedBySentinel = false
	}
	u.EngagedID = types.NoEntity
	u.DamageCarry = 0
}

func (s *SentinelSystem) enemyDPS(e *component.Enemy) float64 {
	if def, ok := s.lib.Enemy(e.Kind); ok && def.SentinelDPS > 0 {
		return def.SentinelDPS
	}
	return defaultSentinelDPS
}

func (s *SentinelSystem) Update(deltaTime, speedMultiplier float64) {
	scaled := deltaTime * speedMultiplier

	for _, u := range s.ecs.Sentinels {
		if !u.Alive {
			s.tickRespawn(u, scaled)
			continue
		}

		if u.EngagedID != types.NoEntity {
			if e := s.ecs.Enemy(u.EngagedID); e == nil || !e.Targetable() {
				s.disengage(u)
			}
		}

		if u.EngagedID == types.NoEntity {
			s.walk(u, scaled)
			s.scan(u)
		}

		if u.EngagedID != types.NoEntity {
			s.fight(u, scaled)
		}
	}
}

func (s *SentinelSystem) tickRespawn(u *component.Sentinel, scaled float64) {
	u.RespawnTimer -= scaled
	if u.RespawnTimer > 0 {
		return
	}
	t := s.ecs.Tower(u.TowerID)
	if t == nil || !t.IsSentinel() {
		return
	}
	u.Alive = true
	u.HP = u.MaxHP
	u.Position = t.Position
	u.EngagedID = types.NoEntity
	u.DamageCarry = 0
	u.AtRally = false
	u.Target = slot(s.rally(t), u.Index, t.Sentinel.MaxUnits)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.SentinelRespawned,
		Data: event.EntityPayload{ID: u.ID, Kind: "sentinel", X: u.X, Y: u.Y},
	})
}

func (s *SentinelSystem) walk(u *component.Sentinel, scaled float64) {
	if u.DistanceTo(u.Target) <= config.SentinelArriveDist {
		u.AtRally = true
		return
	}
	u.X, u.Y, _ = utils.MoveTowards(u.X, u.Y, u.Target.X, u.Target.Y, u.Speed*scaled)
	u.AtRally = false
}

// scan ищет ближайшего свободного врага в радиусе захвата.
func (s *SentinelSystem) scan(u *component.Sentinel) {
	var closest *component.Enemy
	closestDist := config.SentinelEngageRadius
	for _, e := range s.ecs.Enemies {
		if !e.Targetable() || e.IsBlocked() {
			continue
		}
		if d := u.DistanceTo(e.Position); d < closestDist {
			closest = e
			closestDist = d
		}
	}
	if closest == nil {
		return
	}
	u.EngagedID = closest.ID
	u.DamageCarry = 0
	closest.BlockedBySentinel = true
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.SentinelEngaged,
		Data: event.EntityPayload{ID: closest.ID, Kind: string(closest.Kind), X: closest.X, Y: closest.Y},
	})
}

// fight — обмен уроном в секунду. Урон стража копится в DamageCarry
// и списывается целыми единицами, минуя бонус за замедление.
func (s *SentinelSystem) fight(u *component.Sentinel, scaled float64) {
	e := s.ecs.Enemy(u.EngagedID)
	if e == nil {
		u.EngagedID = types.NoEntity
		return
	}

	u.DamageCarry += u.Damage * scaled
	if whole := math.Floor(u.DamageCarry); whole >= 1 {
		u.DamageCarry -= whole
		ApplyDamage(e, whole, defs.DamageMelee)
	}
	if !e.Alive {
		s.disengage(u)
		return
	}

	u.HP -= s.enemyDPS(e) * (1 - u.Reduction) * scaled
	if u.HP <= 0 {
		u.HP = 0
		u.Alive = false
		u.RespawnTimer = u.RespawnTime
		s.disengage(u)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.SentinelDied,
			Data: event.EntityPayload{ID: u.ID, Kind: "sentinel", X: u.X, Y: u.Y},
		})
		return
	}

	k := math.Min(1, config.SentinelLerp*scaled)
	u.X = utils.Lerp(u.X, e.X, k)
	u.Y = utils.Lerp(u.Y, e.Y, k)
}
