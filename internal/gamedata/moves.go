package gamedata

import "github.com/samdwyer/monsterbattle/internal/combat"

// MoveDef defines a move loaded from JSON.
//
// JSON Schema:
//
//	{ "id": 1, "name": "Slash", "animationName": "SLASH" }
type MoveDef struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Animation string `json:"animationName"`
}

// ToMove converts the definition to the combat representation.
func (m *MoveDef) ToMove() combat.Move {
	return combat.Move{ID: m.ID, Name: m.Name, Animation: m.Animation}
}

// MovesFile represents the structure of moves.json.
type MovesFile struct {
	Moves []MoveDef `json:"moves"`
}

// LoadMoves loads move definitions from the embedded moves.json file.
func LoadMoves() ([]MoveDef, error) {
	file, err := Load[MovesFile]("moves.json")
	if err != nil {
		return nil, err
	}
	return file.Moves, nil
}
