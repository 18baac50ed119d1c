package storage

import (
	"strings"

	"github.com/mcoot/charroster/internal/codec"
	"github.com/mcoot/charroster/internal/model"
)

// DecodeLines turns raw roster lines into characters.
// A header on the first line and blank lines are skipped; any other line that
// fails to decode aborts with a *LineError.
func DecodeLines(lines []string) ([]*model.Character, error) {
	characters := make([]*model.Character, 0, len(lines))
	for i, line := range lines {
		if i == 0 && codec.IsHeader(line) {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := codec.Parse(line)
		if err != nil {
			return nil, &LineError{Line: i + 1, Text: line, Err: err}
		}
		characters = append(characters, c)
	}
	return characters, nil
}

// EncodeLines formats characters as roster lines, without a header
func EncodeLines(characters []*model.Character) []string {
	lines := make([]string, 0, len(characters))
	for _, c := range characters {
		lines = append(lines, codec.Format(c))
	}
	return lines
}

// FirstByName returns the first character matching name case-insensitively
func FirstByName(characters []*model.Character, name string) (*model.Character, error) {
	for _, c := range characters {
		if c.MatchesName(name) {
			return c, nil
		}
	}
	return nil, model.ErrCharacterNotFound
}

// FilterByProfession returns characters with exactly the given profession.
// The result is never nil.
func FilterByProfession(characters []*model.Character, profession string) []*model.Character {
	matches := []*model.Character{}
	for _, c := range characters {
		if c.Profession == profession {
			matches = append(matches, c)
		}
	}
	return matches
}
