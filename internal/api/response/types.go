package response

import "github.com/mcoot/charroster/internal/model"

// Character represents a character in API responses
type Character struct {
	Name       string   `json:"name"`
	Profession string   `json:"profession"`
	Level      int      `json:"level"`
	HP         int      `json:"hp"`
	Equipment  []string `json:"equipment"`
}

// CharacterFromModel converts a model.Character to a response Character
func CharacterFromModel(c *model.Character) Character {
	equipment := c.Equipment
	if equipment == nil {
		equipment = []string{}
	}
	return Character{
		Name:       c.Name,
		Profession: c.Profession,
		Level:      c.Level,
		HP:         c.HP,
		Equipment:  equipment,
	}
}

// CharacterListResponse is the response for roster listings
type CharacterListResponse struct {
	Characters []Character `json:"characters"`
}

// CharacterListFromModels converts characters to a list response
func CharacterListFromModels(characters []*model.Character) CharacterListResponse {
	resp := CharacterListResponse{Characters: make([]Character, 0, len(characters))}
	for _, c := range characters {
		resp.Characters = append(resp.Characters, CharacterFromModel(c))
	}
	return resp
}
