// Package server renders portfolio pages per request and serves the assets
// they reference.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/page"
	"github.com/ziadkadry99/folio/internal/site"
)

// ReloadPath is the live reload websocket route under the base path.
const ReloadPath = "ws/reload"

// Config holds server configuration.
type Config struct {
	Port      int
	BasePath  string // "/" or "/sub/"
	AssetsDir string
	AllowAll  bool // allow all CORS origins (dev mode)
	// Live enables the reload websocket and tells pages to connect to it.
	Live bool
}

// Server renders pages through an Assembler.
type Server struct {
	cfg        Config
	assembler  *page.Assembler
	hub        *Hub
	log        *zap.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. The assembler and its renderer are copied with the
// origin cleared; when cfg.Live is set the ReloadURL points at the reload
// route.
func New(cfg Config, a *page.Assembler, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.BasePath == "" {
		cfg.BasePath = "/"
	}
	asm := *a
	asm.Static = false
	// Pages served locally load their style, script and assets from this
	// server, never from the configured production origin.
	if a.Renderer != nil {
		r := *a.Renderer
		r.Base.Origin = ""
		asm.Renderer = &r
	}
	s := &Server{cfg: cfg, assembler: &asm, log: log}
	if cfg.Live {
		s.hub = NewHub(log)
		asm.ReloadURL = cfg.BasePath + ReloadPath
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Everything else lives under the base path.
	pages := chi.NewRouter()
	pages.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))
		r.Get("/", s.handlePage)
		r.Get("/{page}.html", s.handlePage)
		r.Get("/"+site.ContentFile, s.handleContent)
		r.Get("/"+site.StyleFile, serveText("text/css; charset=utf-8", []byte(site.StyleSheet)))
		r.Get("/"+site.ScriptFile, serveText("text/javascript; charset=utf-8", []byte(site.ClientScript)))
	})
	assetsPrefix := s.cfg.BasePath + site.AssetsDir + "/"
	pages.Handle("/"+site.AssetsDir+"/*", http.StripPrefix(assetsPrefix, http.FileServer(http.Dir(s.cfg.AssetsDir))))
	if s.hub != nil {
		pages.Get("/"+ReloadPath, s.hub.ServeWS)
	}

	if s.cfg.BasePath == "/" {
		r.Mount("/", pages)
	} else {
		r.Mount(strings.TrimSuffix(s.cfg.BasePath, "/"), pages)
	}
	return r
}

func serveText(contentType string, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-cache")
		w.Write(body)
	}
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	pg, err := s.assembler.Assemble(r.Context(), r.URL)
	if err != nil {
		s.log.Error("rendering page", zap.String("url", r.URL.String()), zap.Error(err))
		http.Error(w, "page could not be rendered", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	if err := pg.Render(w); err != nil {
		s.log.Warn("writing page", zap.Error(err))
	}
}

// handleContent serves the decoded content document as JSON.
func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if s.assembler.Source == nil {
		http.Error(w, `{"error":"no content source"}`, http.StatusNotFound)
		return
	}
	doc, err := s.assembler.Source.Load(r.Context())
	if err != nil {
		s.log.Warn("loading content", zap.Error(err))
		http.Error(w, `{"error":"content not available"}`, http.StatusBadGateway)
		return
	}
	json.NewEncoder(w).Encode(doc)
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Hub returns the live reload hub, or nil when live reload is off.
func (s *Server) Hub() *Hub { return s.hub }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.log.Info("folio server listening",
		zap.String("addr", addr),
		zap.String("url", fmt.Sprintf("http://localhost:%d%s", s.cfg.Port, s.cfg.BasePath)))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server and closes reload connections.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.hub != nil {
		s.hub.Close()
	}
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
