package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/charroster/internal/api/apierr"
	"github.com/mcoot/charroster/internal/api/handler"
	"github.com/mcoot/charroster/internal/middleware"
	"github.com/mcoot/charroster/internal/services/roster"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	RosterService roster.ServiceInterface
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	// Match on the escaped path so an encoded "/" stays inside {name}
	r.UseEncodedPath()

	// Create handlers
	characterHandler := handler.NewCharacterHandler(cfg.RosterService)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger, apiPanicHandler))
	api.Use(middleware.Logging(cfg.Logger))

	// Character routes; names arrive URL-encoded
	api.HandleFunc("/characters", characterHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/characters", characterHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/characters/{name}", characterHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/characters/{name}/level-up", characterHandler.LevelUp).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func apiPanicHandler(w http.ResponseWriter, _ *http.Request) {
	apierr.WriteError(w, apierr.NewInternalError())
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
