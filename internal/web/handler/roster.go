package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/mcoot/charroster/internal/model"
	"github.com/mcoot/charroster/internal/services/roster"
	"github.com/mcoot/charroster/internal/web/templates/layout"
	"github.com/mcoot/charroster/internal/web/templates/pages"
)

// RosterHandler serves the read-only roster pages
type RosterHandler struct {
	rosterService roster.ServiceInterface
	logger        *slog.Logger
}

// NewRosterHandler creates a new RosterHandler
func NewRosterHandler(rosterService roster.ServiceInterface, logger *slog.Logger) *RosterHandler {
	return &RosterHandler{
		rosterService: rosterService,
		logger:        logger,
	}
}

// Roster renders the roster, optionally filtered by ?profession=
func (h *RosterHandler) Roster(w http.ResponseWriter, r *http.Request) {
	profession := r.URL.Query().Get("profession")

	var characters []*model.Character
	var err error
	if profession != "" {
		characters, err = h.rosterService.FindByProfession(r.Context(), profession)
	} else {
		characters, err = h.rosterService.List(r.Context())
	}
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, pages.Roster(pages.RosterData{
		PageData:   layout.PageData{Title: "Roster"},
		Profession: profession,
		Characters: characters,
	}))
}

// Character renders a single character
func (h *RosterHandler) Character(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(mux.Vars(r)["name"])
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	c, err := h.rosterService.Find(r.Context(), name)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, pages.Character(pages.CharacterData{
		PageData:  layout.PageData{Title: c.Name},
		Character: c,
	}))
}

func (h *RosterHandler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "The roster could not be read."
	if errors.Is(err, model.ErrCharacterNotFound) {
		status = http.StatusNotFound
		message = "Character not found."
	} else {
		h.logger.Error("failed to load roster",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}

	h.render(w, r, status, pages.Error(pages.ErrorData{
		PageData: layout.PageData{Title: "Error"},
		Message:  message,
	}))
}

func (h *RosterHandler) render(w http.ResponseWriter, r *http.Request, status int, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := component.Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render page", slog.String("error", err.Error()))
	}
}
