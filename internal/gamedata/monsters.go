package gamedata

import "github.com/gdamore/tcell/v2"

// MonsterDef defines a monster species loaded from JSON.
type MonsterDef struct {
	ID     string `json:"id"`     // Unique identifier (e.g., "carnodusk")
	Name   string `json:"name"`   // Display name (e.g., "Carnodusk")
	Asset  string `json:"asset"`  // Visual asset key
	Glyph  string `json:"glyph"`  // Single character for rendering
	Color  string `json:"color"`  // Hex color code (e.g., "#E4434A")
	HP     int    `json:"hp"`     // Maximum hit points
	Attack int    `json:"attack"` // Flat damage per attack
	Level  int    `json:"level"`  // Display level
	Moves  []int  `json:"moves"`  // Move ids, in slot order
}

// GlyphRune returns the glyph as a rune for rendering.
func (m *MonsterDef) GlyphRune() rune {
	if len(m.Glyph) == 0 {
		return '?'
	}
	return []rune(m.Glyph)[0]
}

// TCellColor returns the color as a tcell.Color.
func (m *MonsterDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(m.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// MonstersFile represents the structure of monsters.json.
type MonstersFile struct {
	Monsters []MonsterDef `json:"monsters"`
}

// LoadMonsters loads monster definitions from the embedded monsters.json file.
func LoadMonsters() ([]MonsterDef, error) {
	file, err := Load[MonstersFile]("monsters.json")
	if err != nil {
		return nil, err
	}
	return file.Monsters, nil
}
