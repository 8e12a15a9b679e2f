// Package server exposes the payroll assistant over HTTP and WebSocket.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/chainpay-labs/paybot/internal/assistant"
	"github.com/chainpay-labs/paybot/internal/store"
)

// Config holds server configuration.
type Config struct {
	Port        int
	CompanyName string
	AllowAll    bool // allow all CORS origins (dev mode)
}

// Server serves the paybot HTTP API.
type Server struct {
	cfg        Config
	store      *store.Store
	engine     *assistant.Engine
	router     chi.Router
	httpServer *http.Server

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

// sessionEntry pairs a conversation's in-memory state with a lock that
// serializes turns within the session.
type sessionEntry struct {
	mu   sync.Mutex
	sess *assistant.Session
}

// New creates a server with all dependencies.
func New(cfg Config, st *store.Store, engine *assistant.Engine) *Server {
	s := &Server{
		cfg:      cfg,
		store:    st,
		engine:   engine,
		sessions: make(map[string]*sessionEntry),
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	s.registerRoutes(r)

	return r
}

// session returns the in-memory conversation state for an ID, creating it on
// first use. Conversations that predate a restart resume with fresh context.
func (s *Server) session(id string) *sessionEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		sess := assistant.NewSession()
		sess.ID = id
		entry = &sessionEntry{sess: sess}
		s.sessions[id] = entry
	}
	return entry
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("paybot server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
