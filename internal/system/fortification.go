// internal/system/fortification.go
package system

import (
	"errors"

	"go-neon-defense/internal/component"
	"go-neon-defense/internal/config"
	"go-neon-defense/internal/defs"
	"go-neon-defense/internal/entity"
	"go-neon-defense/internal/event"
	"go-neon-defense/internal/interfaces"
	"go-neon-defense/internal/types"
	"go-neon-defense/pkg/pathcurve"
)

var (
	ErrNoStock   = errors.New("no barricades left this wave")
	ErrNotInWave = errors.New("barricades can only be placed during a wave")
	ErrOffPath   = errors.New("must be placed on the path")
	ErrOnPath    = errors.New("cannot be placed on the path")
	ErrWater     = errors.New("cannot be placed on water")
	ErrOccupied  = errors.New("cell is already occupied")
	ErrOffGrid   = errors.New("cell is outside the map")
)

// FortificationSystem — баррикады на пути, стены рядом с ним и
// ближний бой врагов с ними.
type FortificationSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	world           interfaces.MapContext
	eventDispatcher *event.Dispatcher

	stock int // баррикады, доступные до конца уровня
}

func NewFortificationSystem(ecs *entity.ECS, lib *defs.Library, world interfaces.MapContext, eventDispatcher *event.Dispatcher) *FortificationSystem {
	return &FortificationSystem{
		ecs:             ecs,
		lib:             lib,
		world:           world,
		eventDispatcher: eventDispatcher,
	}
}

// Stock — сколько баррикад ещё можно поставить.
func (s *FortificationSystem) Stock() int { return s.stock }

// OnWaveStart пополняет запас, неизрасходованное переходит дальше.
func (s *FortificationSystem) OnWaveStart() {
	s.stock = min(config.MaxBarricadeStock, s.stock+config.BarricadesPerWave)
}

// OnLevelStart сносит все сооружения и выдаёт стартовый запас.
func (s *FortificationSystem) OnLevelStart() {
	for _, e := range s.ecs.Enemies {
		releaseStructure(e)
	}
	s.ecs.ClearStructures()
	s.stock = config.BarricadesPerWave
}

// StructureAt — целое сооружение в клетке или nil.
func (s *FortificationSystem) StructureAt(c pathcurve.Cell) *component.Structure {
	for _, st := range s.ecs.Structures {
		if st.Cell == c && !st.Destroyed() {
			return st
		}
	}
	return nil
}

// ValidateBarricade проверяет клетку под баррикаду без изменения состояния.
func (s *FortificationSystem) ValidateBarricade(c pathcurve.Cell, waveActive bool) error {
	if !waveActive {
		return ErrNotInWave
	}
	if s.stock <= 0 {
		return ErrNoStock
	}
	if !s.world.Grid().Contains(c) {
		return ErrOffGrid
	}
	if !s.world.BlockedCells().Has(c) {
		return ErrOffPath
	}
	if s.StructureAt(c) != nil {
		return ErrOccupied
	}
	return nil
}

// PlaceBarricade ставит баррикаду из запаса волны.
func (s *FortificationSystem) PlaceBarricade(c pathcurve.Cell, waveActive bool) (*component.Structure, error) {
	if err := s.ValidateBarricade(c, waveActive); err != nil {
		return nil, err
	}
	st := s.build(defs.StructureBarricade, c)
	s.stock--
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.BarricadePlaced,
		Data: event.EntityPayload{ID: st.ID, Kind: string(st.Kind), X: st.X, Y: st.Y},
	})
	return st, nil
}

// ValidateWall — стена только вне пути, не на воде и в свободной клетке.
// Занятость башнями проверяет вызывающий.
func (s *FortificationSystem) ValidateWall(c pathcurve.Cell) error {
	if !s.world.Grid().Contains(c) {
		return ErrOffGrid
	}
	if s.world.BlockedCells().Has(c) {
		return ErrOnPath
	}
	if m := s.world.Map(); m != nil && m.IsWaterCell(s.world.Grid(), c) {
		return ErrWater
	}
	if s.StructureAt(c) != nil {
		return ErrOccupied
	}
	return nil
}

// PlaceWall ставит стену. Золото списывает вызывающий.
func (s *FortificationSystem) PlaceWall(c pathcurve.Cell) (*component.Structure, error) {
	if err := s.ValidateWall(c); err != nil {
		return nil, err
	}
	st := s.build(defs.StructureWall, c)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WallPlaced,
		Data: event.EntityPayload{ID: st.ID, Kind: string(st.Kind), X: st.X, Y: st.Y},
	})
	return st, nil
}

func (s *FortificationSystem) build(kind defs.StructureKind, c pathcurve.Cell) *component.Structure {
	def, _ := s.lib.Structure(kind)
	x, y := s.world.Grid().Center(c)
	st := &component.Structure{
		ID:       s.ecs.NewEntity(),
		Kind:     kind,
		Position: component.Position{X: x, Y: y},
		Cell:     c,
		HP:       def.HP,
		MaxHP:    def.HP,
	}
	s.ecs.AddStructure(st)
	return st
}

func releaseStructure(e *component.Enemy) {
	e.StructureTarget = types.NoEntity
	e.BlockedByBarricade = false
	e.StructureAttackTimer = 0
}

// canAttack — стены атакуют только тяжёлые враги.
func (s *FortificationSystem) canAttack(e *component.Enemy, st *component.Structure) bool {
	def, ok := s.lib.Structure(st.Kind)
	if !ok {
		return false
	}
	if !def.HeavyOnly {
		return true
	}
	enemyDef, ok := s.lib.Enemy(e.Kind)
	return ok && enemyDef.Heavy
}

func (s *FortificationSystem) Update(deltaTime, speedMultiplier float64) {
	scaled := deltaTime * speedMultiplier

	// Захват: свободный враг цепляется за первое сооружение рядом
	for _, e := range s.ecs.Enemies {
		if !e.Targetable() || e.BlockedBySentinel || e.StructureTarget != types.NoEntity {
			continue
		}
		for _, st := range s.ecs.Structures {
			if st.Destroyed() || !s.canAttack(e, st) {
				continue
			}
			if e.DistanceTo(st.Position) < config.StructureEngageDist {
				e.StructureTarget = st.ID
				e.StructureAttackTimer = 0
				break
			}
		}
	}

	// Атака
	for _, e := range s.ecs.Enemies {
		if e.StructureTarget == types.NoEntity {
			continue
		}
		if !e.Targetable() {
			releaseStructure(e)
			continue
		}
		st := s.ecs.Structure(e.StructureTarget)
		if st == nil || st.Destroyed() || e.DistanceTo(st.Position) > config.StructureLeaveDist {
			releaseStructure(e)
			continue
		}
		e.BlockedByBarricade = true

		def, _ := s.lib.Structure(st.Kind)
		e.StructureAttackTimer += scaled
		if e.StructureAttackTimer < def.AttackInterval {
			continue
		}
		e.StructureAttackTimer = 0
		s.hit(e, st)
	}

	s.ecs.RemoveDestroyedStructures()
}

func (s *FortificationSystem) hit(e *component.Enemy, st *component.Structure) {
	dmg := 5
	if def, ok := s.lib.Enemy(e.Kind); ok {
		dmg = def.StructureDamage
	}
	st.HP = max(0, st.HP-dmg)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.StructureHit,
		Data: event.EntityPayload{ID: st.ID, Kind: string(st.Kind), X: st.X, Y: st.Y},
	})
	if !st.Destroyed() {
		return
	}
	// Все, кто бил это сооружение, идут дальше
	for _, other := range s.ecs.Enemies {
		if other.StructureTarget == st.ID {
			releaseStructure(other)
		}
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.StructureDestroyed,
		Data: event.EntityPayload{ID: st.ID, Kind: string(st.Kind), X: st.X, Y: st.Y},
	})
}
