// Package api implements the normscope REST API: scoring a session into a
// report document and describing the reference tables.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"

	"github.com/normscope/normscope/internal/export"
	"github.com/normscope/normscope/pkg/report"
	"github.com/normscope/normscope/pkg/scoring"
)

// Options configures a Handler.
type Options struct {
	Engine      *scoring.Engine
	Sink        export.Sink // nil disables ?export=1
	Logger      *zap.Logger
	APIKey      string
	CORSOrigins []string
	// RateLimit is the per-IP request budget per second; 0 disables limiting.
	RateLimit int
	Assembler report.Assembler
}

// Handler is the top-level API handler.
type Handler struct {
	engine    *scoring.Engine
	sink      export.Sink
	log       *zap.Logger
	assembler report.Assembler
	opts      Options
}

// NewHandler creates a new API handler.
func NewHandler(opts Options) *Handler {
	engine := opts.Engine
	if engine == nil {
		engine = scoring.NewEngine(nil)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		engine:    engine,
		sink:      opts.Sink,
		log:       logger,
		assembler: opts.Assembler,
		opts:      opts,
	}
}

// Routes builds the router with middleware and all endpoints.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(RequestLogger(h.log))

	origins := h.opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-API-Key"},
		ExposedHeaders: []string{"Link"},
		MaxAge:         300,
	}))
	if h.opts.RateLimit > 0 {
		r.Use(httprate.LimitByIP(h.opts.RateLimit, time.Second))
	}

	r.Get("/healthz", h.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(APIKeyAuth(h.opts.APIKey, h.log))
		r.Post("/score", h.handleScore)
		r.Get("/norms", h.handleNorms)
		r.Get("/norms/{subtest}", h.handleSubtestNorms)
	})
	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, Code: code})
}
