// Package server is the local fixture backend: it implements the same
// resource endpoints the production backend exposes, reading content from a
// YAML file, so the client can be exercised end-to-end during development.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/django-nerd/folio/internal/content"
)

// Config holds fixture server configuration.
type Config struct {
	Port        int
	ContentFile string
	Watch       bool // reload the content file on change
}

// Server serves fixture portfolio content over HTTP.
type Server struct {
	cfg        Config
	router     chi.Router
	httpServer *http.Server
	hub        *reloadHub

	mu   sync.RWMutex
	data *ContentFile
}

// New creates a fixture server with the given content.
func New(cfg Config, data *ContentFile) *Server {
	s := &Server{
		cfg:  cfg,
		data: data,
		hub:  newReloadHub(),
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/api/menu", s.handleItems(func(c *ContentFile) []content.Item { return c.Menu }))
	r.Get("/api/frontend/tech", s.handleItems(func(c *ContentFile) []content.Item { return c.Tech }))
	r.Get("/api/design/focus", s.handleItems(func(c *ContentFile) []content.Item { return c.Focus }))
	r.Get("/api/reviews", s.handleItems(func(c *ContentFile) []content.Item { return c.Reviews }))
	r.Get("/api/contact", s.handleItems(func(c *ContentFile) []content.Item { return c.Contacts }))
	r.Get("/api/projects", s.handleProjects)
	r.Get("/api/design/gallery", s.handleGallery)

	r.Get("/ws/reload", s.hub.handleSubscribe)

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

func (s *Server) snapshot() *ContentFile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data
}

// Replace swaps in freshly loaded content and notifies reload subscribers.
func (s *Server) Replace(data *ContentFile) {
	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
	s.hub.broadcast()
}

func (s *Server) handleItems(pick func(*ContentFile) []content.Item) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"items": orEmpty(pick(s.snapshot()))})
	}
}

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	tech := r.URL.Query().Get("tech")
	var out []content.Item
	for _, p := range s.snapshot().Projects {
		if tech == "" || p["tech"] == tech {
			out = append(out, p)
		}
	}
	writeJSON(w, map[string]any{"projects": orEmpty(out)})
}

func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	focus := r.URL.Query().Get("focus")
	var out []content.Item
	for _, g := range s.snapshot().Gallery {
		if focus == "" || g["focus"] == focus {
			out = append(out, g)
		}
	}
	writeJSON(w, map[string]any{"items": orEmpty(out)})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("server: encoding response: %v", err)
	}
}

func orEmpty(items []content.Item) []content.Item {
	if items == nil {
		return []content.Item{}
	}
	return items
}

// Start begins listening on the configured port, optionally watching the
// content file for changes. It blocks until the server stops.
func (s *Server) Start() error {
	if s.cfg.Watch && s.cfg.ContentFile != "" {
		stop, err := s.watchContent()
		if err != nil {
			return err
		}
		defer stop()
	}

	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("folio fixture server listening on %s (content=%s)", addr, s.cfg.ContentFile)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
