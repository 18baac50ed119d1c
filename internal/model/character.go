package model

import (
	"fmt"
	"strings"
)

// Character is a single roster entry
type Character struct {
	Name       string   `json:"name"`
	Profession string   `json:"profession"`
	Level      int      `json:"level"`
	HP         int      `json:"hp"`
	Equipment  []string `json:"equipment"`
}

// NewCharacter creates a character. Nil equipment and a single empty item
// both normalize to an empty slice; all three are written as an empty field.
func NewCharacter(name, profession string, level, hp int, equipment []string) *Character {
	if equipment == nil || (len(equipment) == 1 && equipment[0] == "") {
		equipment = []string{}
	}
	return &Character{
		Name:       name,
		Profession: profession,
		Level:      level,
		HP:         hp,
		Equipment:  equipment,
	}
}

// MatchesName reports whether name identifies this character (case-insensitive)
func (c *Character) MatchesName(name string) bool {
	return strings.EqualFold(c.Name, name)
}

// LevelUp increments the character's level by one
func (c *Character) LevelUp() {
	c.Level++
}

// String renders the character for display
func (c *Character) String() string {
	equipment := "none"
	if len(c.Equipment) > 0 {
		equipment = strings.Join(c.Equipment, ", ")
	}
	return fmt.Sprintf("%s the %s (Level %d, %d HP) - Equipment: %s",
		c.Name, c.Profession, c.Level, c.HP, equipment)
}
