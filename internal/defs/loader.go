// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Library holds every static definition table used by one simulation.
type Library struct {
	Enemies    map[EnemyKind]EnemyDefinition
	Towers     map[TowerKind]TowerDefinition
	Traps      map[TrapKind]TrapDefinition
	Structures map[StructureKind]StructureDefinition
}

// DefaultLibrary returns a fresh copy of the built-in balance tables.
func DefaultLibrary() *Library {
	return &Library{
		Enemies:    defaultEnemies(),
		Towers:     defaultTowers(),
		Traps:      defaultTraps(),
		Structures: defaultStructures(),
	}
}

// Enemy looks up an enemy definition.
func (l *Library) Enemy(kind EnemyKind) (EnemyDefinition, bool) {
	d, ok := l.Enemies[kind]
	return d, ok
}

// Tower looks up a tower definition.
func (l *Library) Tower(kind TowerKind) (TowerDefinition, bool) {
	d, ok := l.Towers[kind]
	return d, ok
}

// Trap looks up a trap definition.
func (l *Library) Trap(kind TrapKind) (TrapDefinition, bool) {
	d, ok := l.Traps[kind]
	return d, ok
}

// Structure looks up a structure definition.
func (l *Library) Structure(kind StructureKind) (StructureDefinition, bool) {
	d, ok := l.Structures[kind]
	return d, ok
}

// overrides is the on-disk shape of a balance file. Every entry replaces
// the built-in definition with the same id.
type overrides struct {
	Enemies    []EnemyDefinition     `json:"enemies"`
	Towers     []TowerDefinition     `json:"towers"`
	Traps      []TrapDefinition      `json:"traps"`
	Structures []StructureDefinition `json:"structures"`
}

// LoadLibrary reads balance overrides on top of the built-in tables.
func LoadLibrary(r io.Reader) (*Library, error) {
	var o overrides
	if err := json.NewDecoder(r).Decode(&o); err != nil {
		return nil, fmt.Errorf("failed to unmarshal balance overrides: %w", err)
	}

	lib := DefaultLibrary()
	for _, def := range o.Enemies {
		if def.ID == "" {
			return nil, fmt.Errorf("enemy override without id")
		}
		lib.Enemies[def.ID] = def
	}
	for _, def := range o.Towers {
		if def.ID == "" {
			return nil, fmt.Errorf("tower override without id")
		}
		lib.Towers[def.ID] = def
	}
	for _, def := range o.Traps {
		if def.ID == "" {
			return nil, fmt.Errorf("trap override without id")
		}
		lib.Traps[def.ID] = def
	}
	for _, def := range o.Structures {
		if def.ID == "" {
			return nil, fmt.Errorf("structure override without id")
		}
		lib.Structures[def.ID] = def
	}
	return lib, nil
}

// LoadLibraryFile reads balance overrides from a JSON file.
func LoadLibraryFile(path string) (*Library, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance file: %w", err)
	}
	defer file.Close()
	return LoadLibrary(file)
}
