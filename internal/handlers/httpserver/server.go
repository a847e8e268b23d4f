package httpserver

import (
	"errors"
	"net/http"
	"time"

	"github.com/KirkDiggler/pyramid/internal/common/clock"
	"github.com/KirkDiggler/pyramid/internal/services/game"
	"github.com/KirkDiggler/pyramid/internal/services/messaging"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/handlers"
	"github.com/rs/zerolog/log"
)

const defaultTokenTTL = 12 * time.Hour

// Config holds the configuration for the HTTP server
type Config struct {
	GameService      game.Service
	MessagingService messaging.Service
	Clock            clock.Clock

	// JWTSecret signs player tokens
	JWTSecret string

	// TokenTTL defaults to 12 hours
	TokenTTL time.Duration

	// ClientOrigin is the single origin allowed by CORS
	ClientOrigin string
}

// Server exposes rooms over HTTP and streams documents over websockets
type Server struct {
	r        *chi.Mux
	game     game.Service
	messages messaging.Service
	clock    clock.Clock
	secret   []byte
	tokenTTL time.Duration
	origin   string
}

// New constructs a Server and registers routes
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}
	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT secret cannot be empty")
	}

	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	s := &Server{
		r:        chi.NewRouter(),
		game:     cfg.GameService,
		messages: cfg.MessagingService,
		clock:    cfg.Clock,
		secret:   []byte(cfg.JWTSecret),
		tokenTTL: ttl,
		origin:   cfg.ClientOrigin,
	}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	s.r.Route("/rooms", func(r chi.Router) {
		r.Get("/", s.handleListRooms)
		r.Post("/", s.handleCreateRoom)

		r.Route("/{code}", func(r chi.Router) {
			r.Get("/", s.handleGetRoom)
			r.Post("/join", s.handleJoinRoom)
			r.Get("/events", s.handleGetEvents)
			r.Get("/leaderboard", s.handleGetLeaderboard)
			r.Get("/sips", s.handleGetSipHistory)
			r.Get("/ws", s.handleWS)

			r.Group(func(r chi.Router) {
				r.Use(s.requireAuth)
				r.Delete("/", s.handleCloseRoom)
				r.Post("/start", s.handleStart)
				r.Post("/draw", s.handleDraw)
				r.Post("/answer", s.handleAnswer)
				r.Post("/resolve-turn", s.handleResolveTurn)
				r.Post("/pyramid", s.handleInitializePyramid)
				r.Post("/reveal", s.handleReveal)
				r.Post("/allocate", s.handleAllocate)
				r.Post("/confirm", s.handleConfirm)
				r.Post("/respond", s.handleRespond)
				r.Post("/resolve-challenge", s.handleResolveChallenge)
			})
		})
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not_found", Message: r.URL.Path})
	})

	return s, nil
}

// Handler returns the router wrapped with CORS and access logging
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.r
	if s.origin != "" {
		h = handlers.CORS(
			handlers.AllowedOrigins([]string{s.origin}),
			handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
			handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
			handlers.AllowCredentials(),
		)(h)
	}
	return handlers.CombinedLoggingHandler(log.Logger, h)
}

// Router exposes the internal router for tests
func (s *Server) Router() chi.Router {
	return s.r
}
