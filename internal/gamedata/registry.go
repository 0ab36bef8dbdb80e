package gamedata

import (
	"errors"
	"fmt"

	"github.com/samdwyer/monsterbattle/internal/combat"
)

var (
	// ErrUnknownMonster is returned when a monster id is not in the registry.
	ErrUnknownMonster = errors.New("unknown monster")
	// ErrEmptyData is returned when a data file contains no entries.
	ErrEmptyData = errors.New("no entries loaded")
)

// MoveRegistry holds loaded move definitions keyed by id.
type MoveRegistry struct {
	moves map[int]*MoveDef
	all   []MoveDef
}

// NewMoveRegistry creates a registry from loaded move definitions.
func NewMoveRegistry(moves []MoveDef) *MoveRegistry {
	registry := &MoveRegistry{
		moves: make(map[int]*MoveDef, len(moves)),
		all:   moves,
	}
	for i := range moves {
		registry.moves[moves[i].ID] = &moves[i]
	}
	return registry
}

// LoadMoveRegistry loads a registry from the embedded moves.json.
func LoadMoveRegistry() (*MoveRegistry, error) {
	moves, err := LoadMoves()
	if err != nil {
		return nil, err
	}
	if len(moves) == 0 {
		return nil, fmt.Errorf("moves.json: %w", ErrEmptyData)
	}
	return NewMoveRegistry(moves), nil
}

// MustLoadMoveRegistry loads a registry, panicking on error.
func MustLoadMoveRegistry() *MoveRegistry {
	registry, err := LoadMoveRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the move definition with the given id, or nil if not found.
func (r *MoveRegistry) GetByID(id int) *MoveDef {
	return r.moves[id]
}

// GetMove implements combat.MoveLookup.
func (r *MoveRegistry) GetMove(id int) (combat.Move, bool) {
	def := r.moves[id]
	if def == nil {
		return combat.Move{}, false
	}
	return def.ToMove(), true
}

// Count returns the number of moves in the registry.
func (r *MoveRegistry) Count() int {
	return len(r.all)
}

// MonsterRegistry holds loaded monster definitions.
type MonsterRegistry struct {
	monsters []MonsterDef
}

// NewMonsterRegistry creates a registry from loaded monster definitions.
func NewMonsterRegistry(monsters []MonsterDef) *MonsterRegistry {
	return &MonsterRegistry{monsters: monsters}
}

// LoadMonsterRegistry loads a registry from the embedded monsters.json.
func LoadMonsterRegistry() (*MonsterRegistry, error) {
	monsters, err := LoadMonsters()
	if err != nil {
		return nil, err
	}
	if len(monsters) == 0 {
		return nil, fmt.Errorf("monsters.json: %w", ErrEmptyData)
	}
	return NewMonsterRegistry(monsters), nil
}

// MustLoadMonsterRegistry loads a registry, panicking on error.
func MustLoadMonsterRegistry() *MonsterRegistry {
	registry, err := LoadMonsterRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the monster definition with the given id, or nil if not found.
func (r *MonsterRegistry) GetByID(id string) *MonsterDef {
	for i := range r.monsters {
		if r.monsters[i].ID == id {
			return &r.monsters[i]
		}
	}
	return nil
}

// Lookup is GetByID with an error for unknown ids.
func (r *MonsterRegistry) Lookup(id string) (*MonsterDef, error) {
	def := r.GetByID(id)
	if def == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMonster, id)
	}
	return def, nil
}

// All returns all monster definitions.
func (r *MonsterRegistry) All() []MonsterDef {
	return r.monsters
}

// Count returns the number of monster species in the registry.
func (r *MonsterRegistry) Count() int {
	return len(r.monsters)
}
