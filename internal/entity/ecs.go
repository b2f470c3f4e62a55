// internal/entity/ecs.go
package entity

import (
	"go-neon-defense/internal/component"
	"go-neon-defense/internal/types"
)

// ECS — единственный владелец всех живых сущностей симуляции.
// Коллекции упорядочены по времени создания, поэтому обход стабилен.
type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Enemies     []*component.Enemy
	Towers      []*component.Tower
	Traps       []*component.Trap
	Structures  []*component.Structure
	Sentinels   []*component.Sentinel
	Projectiles []*component.Projectile
	Rings       []*component.Ring
	Wave        *component.Wave

	enemyIndex     map[types.EntityID]*component.Enemy
	towerIndex     map[types.EntityID]*component.Tower
	structureIndex map[types.EntityID]*component.Structure
}

func NewECS() *ECS {
	ecs := &ECS{NextID: 1}
	ecs.Reset()
	return ecs
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Reset очищает все коллекции и таймеры за один вызов.
// Счётчик ID не сбрасывается, чтобы старые ссылки не совпали с новыми.
func (ecs *ECS) Reset() {
	ecs.GameTime = 0
	ecs.Enemies = nil
	ecs.Towers = nil
	ecs.Traps = nil
	ecs.Structures = nil
	ecs.Sentinels = nil
	ecs.Projectiles = nil
	ecs.Rings = nil
	ecs.Wave = &component.Wave{}
	ecs.enemyIndex = make(map[types.EntityID]*component.Enemy)
	ecs.towerIndex = make(map[types.EntityID]*component.Tower)
	ecs.structureIndex = make(map[types.EntityID]*component.Structure)
}

// --- Враги ---

func (ecs *ECS) AddEnemy(e *component.Enemy) {
	ecs.Enemies = append(ecs.Enemies, e)
	ecs.enemyIndex[e.ID] = e
}

// Enemy возвращает врага по ID или nil, если его больше нет.
func (ecs *ECS) Enemy(id types.EntityID) *component.Enemy {
	if id == types.NoEntity {
		return nil
	}
	return ecs.enemyIndex[id]
}

// RemoveEnemies удаляет врагов, для которых remove вернул true,
// и возвращает удалённых.
func (ecs *ECS) RemoveEnemies(remove func(*component.Enemy) bool) []*component.Enemy {
	var removed []*component.Enemy
	kept := ecs.Enemies[:0]
	for _, e := range ecs.Enemies {
		if remove(e) {
			removed = append(removed, e)
			delete(ecs.enemyIndex, e.ID)
			continue
		}
		kept = append(kept, e)
	}
	clearTail(ecs.Enemies, len(kept))
	ecs.Enemies = kept
	return removed
}

// ClearEnemies убирает всех врагов.
func (ecs *ECS) ClearEnemies() {
	ecs.Enemies = nil
	ecs.enemyIndex = make(map[types.EntityID]*component.Enemy)
}

// AliveEnemies — число живых врагов.
func (ecs *ECS) AliveEnemies() int {
	n := 0
	for _, e := range ecs.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// --- Башни ---

func (ecs *ECS) AddTower(t *component.Tower) {
	ecs.Towers = append(ecs.Towers, t)
	ecs.towerIndex[t.ID] = t
}

func (ecs *ECS) Tower(id types.EntityID) *component.Tower {
	if id == types.NoEntity {
		return nil
	}
	return ecs.towerIndex[id]
}

func (ecs *ECS) RemoveTower(id types.EntityID) *component.Tower {
	t, ok := ecs.towerIndex[id]
	if !ok {
		return nil
	}
	delete(ecs.towerIndex, id)
	for i, other := range ecs.Towers {
		if other.ID == id {
			ecs.Towers = append(ecs.Towers[:i], ecs.Towers[i+1:]...)
			break
		}
	}
	return t
}

// --- Сооружения ---

func (ecs *ECS) AddStructure(s *component.Structure) {
	ecs.Structures = append(ecs.Structures, s)
	ecs.structureIndex[s.ID] = s
}

func (ecs *ECS) Structure(id types.EntityID) *component.Structure {
	if id == types.NoEntity {
		return nil
	}
	return ecs.structureIndex[id]
}

// RemoveDestroyedStructures убирает сооружения с нулевой прочностью.
func (ecs *ECS) RemoveDestroyedStructures() {
	kept := ecs.Structures[:0]
	for _, s := range ecs.Structures {
		if s.Destroyed() {
			delete(ecs.structureIndex, s.ID)
			continue
		}
		kept = append(kept, s)
	}
	clearTail(ecs.Structures, len(kept))
	ecs.Structures = kept
}

func (ecs *ECS) ClearStructures() {
	ecs.Structures = nil
	ecs.structureIndex = make(map[types.EntityID]*component.Structure)
}

// --- Ловушки, снаряды, кольца, стражи ---

func (ecs *ECS) AddTrap(t *component.Trap) {
	ecs.Traps = append(ecs.Traps, t)
}

func (ecs *ECS) AddSentinel(s *component.Sentinel) {
	ecs.Sentinels = append(ecs.Sentinels, s)
}

func (ecs *ECS) AddProjectile(p *component.Projectile) {
	ecs.Projectiles = append(ecs.Projectiles, p)
}

func (ecs *ECS) AddRing(r *component.Ring) {
	ecs.Rings = append(ecs.Rings, r)
}

// RemoveDeadTraps убирает израсходованные ловушки.
func (ecs *ECS) RemoveDeadTraps() {
	ecs.Traps = filter(ecs.Traps, func(t *component.Trap) bool { return t.Alive })
}

// RemoveDeadShots убирает долетевшие снаряды и погасшие кольца.
func (ecs *ECS) RemoveDeadShots() {
	ecs.Projectiles = filter(ecs.Projectiles, func(p *component.Projectile) bool { return p.Alive })
	ecs.Rings = filter(ecs.Rings, func(r *component.Ring) bool { return r.Alive })
}

// ClearShots убирает все снаряды и кольца.
func (ecs *ECS) ClearShots() {
	ecs.Projectiles = nil
	ecs.Rings = nil
}

// RemoveTraps удаляет ловушки, для которых remove вернул true.
func (ecs *ECS) RemoveTraps(remove func(*component.Trap) bool) {
	ecs.Traps = filter(ecs.Traps, func(t *component.Trap) bool { return !remove(t) })
}

// RemoveSentinels удаляет стражей, для которых remove вернул true.
func (ecs *ECS) RemoveSentinels(remove func(*component.Sentinel) bool) {
	ecs.Sentinels = filter(ecs.Sentinels, func(s *component.Sentinel) bool { return !remove(s) })
}

// SentinelsOf — отряд башни в порядке номеров.
func (ecs *ECS) SentinelsOf(towerID types.EntityID) []*component.Sentinel {
	var out []*component.Sentinel
	for _, s := range ecs.Sentinels {
		if s.TowerID == towerID {
			out = append(out, s)
		}
	}
	return out
}

func filter[T any](items []*T, keep func(*T) bool) []*T {
	kept := items[:0]
	for _, it := range items {
		if keep(it) {
			kept = append(kept, it)
		}
	}
	clearTail(items, len(kept))
	return kept
}

// clearTail обнуляет хвост после фильтрации на месте, чтобы не держать указатели.
func clearTail[T any](items []*T, from int) {
	for i := from; i < len(items); i++ {
		items[i] = nil
	}
}
