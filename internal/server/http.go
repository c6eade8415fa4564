package server

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/api"
	"github.com/gokatarajesh/trivia-api/internal/config"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewHTTPServer wires the trivia routes plus health and metrics endpoints.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, handlers *api.Handlers, store Pinger) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           NewRouter(cfg.CORS, logger, handlers, store),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

// NewRouter builds the full handler chain. CORS and request logging wrap the
// router so that 404 and 405 answers carry the same headers as routed ones.
func NewRouter(cors config.CORS, logger zerolog.Logger, handlers *api.Handlers, store Pinger) http.Handler {
	logger = logger.With().Str("component", "http").Logger()

	router := mux.NewRouter()
	// router middleware skips unmatched requests, so these are instrumented directly
	router.NotFoundHandler = instrument(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httperrors.RespondNotFound(w, "")
	}))
	router.MethodNotAllowedHandler = instrument(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httperrors.RespondMethodNotAllowed(w)
	}))
	router.Use(instrument)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	router.HandleFunc("/v1/ping", func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			logger.Error().Err(err).Msg("dependency ping failed")
			http.Error(w, "upstream error", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pong":true}`))
	}).Methods(http.MethodGet)

	bind := func(h api.HandlerFunc) http.HandlerFunc { return api.Bind(h, logger) }

	router.HandleFunc("/categories", bind(handlers.ListCategories)).Methods(http.MethodGet)
	router.HandleFunc("/categories/{id:[0-9]+}", bind(handlers.GetCategory)).Methods(http.MethodGet)
	router.HandleFunc("/categories/{id:[0-9]+}/questions", bind(handlers.CategoryQuestions)).Methods(http.MethodGet)

	router.HandleFunc("/questions", bind(handlers.ListQuestions)).Methods(http.MethodGet)
	router.HandleFunc("/questions", bind(handlers.CreateQuestion)).Methods(http.MethodPost)
	router.HandleFunc("/questions/search", bind(handlers.SearchQuestions)).Methods(http.MethodPost)
	router.HandleFunc("/questions/{id:[0-9]+}", bind(handlers.DeleteQuestion)).Methods(http.MethodDelete)

	router.HandleFunc("/quizzes", bind(handlers.NextQuizQuestion)).Methods(http.MethodPost)

	return withCORS(cors, withRequestLogging(logger, router))
}
