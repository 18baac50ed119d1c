package request

// CreateCharacterRequest is the request body for adding a character
type CreateCharacterRequest struct {
	Name       string   `json:"name"`
	Profession string   `json:"profession"`
	Level      *int     `json:"level,omitempty"`
	HP         int      `json:"hp"`
	Equipment  []string `json:"equipment"`
}
