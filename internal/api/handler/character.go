package handler

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/mcoot/charroster/internal/api/request"
	"github.com/mcoot/charroster/internal/api/response"
	"github.com/mcoot/charroster/internal/model"
	"github.com/mcoot/charroster/internal/services/roster"
)

// CharacterHandler handles roster endpoints
type CharacterHandler struct {
	rosterService roster.ServiceInterface
}

// NewCharacterHandler creates a new character handler
func NewCharacterHandler(rosterService roster.ServiceInterface) *CharacterHandler {
	return &CharacterHandler{
		rosterService: rosterService,
	}
}

// List handles GET /api/v1/characters[?profession=...]
func (h *CharacterHandler) List(w http.ResponseWriter, r *http.Request) {
	var characters []*model.Character
	var err error

	if profession := r.URL.Query().Get("profession"); profession != "" {
		characters, err = h.rosterService.FindByProfession(r.Context(), profession)
	} else {
		characters, err = h.rosterService.List(r.Context())
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CharacterListFromModels(characters))
}

// Get handles GET /api/v1/characters/{name}
func (h *CharacterHandler) Get(w http.ResponseWriter, r *http.Request) {
	name, err := characterName(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	c, err := h.rosterService.Find(r.Context(), name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CharacterFromModel(c))
}

// Create handles POST /api/v1/characters
func (h *CharacterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCharacterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}
	if req.Profession == "" {
		WriteError(w, NewInvalidRequestError("profession is required"))
		return
	}

	level := 1
	if req.Level != nil {
		level = *req.Level
	}

	c, err := h.rosterService.Add(r.Context(), model.NewCharacter(req.Name, req.Profession, level, req.HP, req.Equipment))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CharacterFromModel(c))
}

// LevelUp handles POST /api/v1/characters/{name}/level-up
func (h *CharacterHandler) LevelUp(w http.ResponseWriter, r *http.Request) {
	name, err := characterName(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	c, err := h.rosterService.LevelUp(r.Context(), name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CharacterFromModel(c))
}

// characterName returns the unescaped {name} route variable. The router
// matches on the encoded path so that names may contain "/".
func characterName(r *http.Request) (string, error) {
	name, err := url.PathUnescape(mux.Vars(r)["name"])
	if err != nil {
		return "", NewInvalidRequestError("invalid character name in path")
	}
	return name, nil
}
