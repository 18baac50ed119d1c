package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/charroster/internal/middleware"
	"github.com/mcoot/charroster/internal/services/roster"
	"github.com/mcoot/charroster/internal/web/handler"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger        *slog.Logger
	RosterService roster.ServiceInterface
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.UseEncodedPath()

	// Apply global middleware to all routes
	r.Use(middleware.Recovery(cfg.Logger, webPanicHandler))
	r.Use(middleware.Logging(cfg.Logger))

	rosterHandler := handler.NewRosterHandler(cfg.RosterService, cfg.Logger)

	r.HandleFunc("/", rosterHandler.Roster).Methods(http.MethodGet)
	r.HandleFunc("/characters/{name}", rosterHandler.Character).Methods(http.MethodGet)

	return r
}

func webPanicHandler(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
