// Package api exposes the arcade over HTTP: the game catalogue, score
// records, live sessions driven by a server-side clock, and deterministic
// headless simulation.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/kids-arcade/internal/scores"
	"github.com/vovakirdan/kids-arcade/internal/storage"
)

// Options configures a Server. Zero values pick defaults.
type Options struct {
	Book        *scores.Book
	Store       *storage.Store // optional round history
	Logger      *log.Logger
	Preset      string
	MaxSessions int
	// SessionTTL is how long a finished live session is kept before it is
	// swept.
	SessionTTL time.Duration
}

// Server handles HTTP requests.
type Server struct {
	book     *scores.Book
	store    *storage.Store
	logger   *log.Logger
	preset   string
	sessions *sessionTable
	started  time.Time
}

// NewServer creates a new API server.
func NewServer(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Book == nil {
		var kv scores.KV
		if opts.Store != nil {
			kv = opts.Store
		}
		opts.Book = scores.NewBook(kv, opts.Logger)
	}
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = 64
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 10 * time.Minute
	}
	return &Server{
		book:     opts.Book,
		store:    opts.Store,
		logger:   opts.Logger,
		preset:   opts.Preset,
		sessions: newSessionTable(opts.MaxSessions, opts.SessionTTL),
		started:  time.Now(),
	}
}

// Routes sets up the HTTP routes.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/games", s.handleListGames)

		r.Get("/scores", s.handleListScores)
		r.Get("/scores/{game}", s.handleGameScores)

		r.Post("/simulate", s.handleSimulate)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleCreateSession)
			r.Get("/{id}", s.handleGetSession)
			r.Post("/{id}/input", s.handleSessionInput)
			r.Delete("/{id}", s.handleDeleteSession)
		})
	})

	return r
}

// Close stops every live session clock.
func (s *Server) Close() {
	s.sessions.closeAll()
}

// requestLogger logs each request once it has been served.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// writeJSON writes a JSON response.
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("could not encode response", "error", err)
	}
}

// writeError writes an error response.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.writeJSON(w, status, ErrorResponse{
		Error:     message,
		RequestID: middleware.GetReqID(r.Context()),
	})
}

// decodeJSON reads a request body into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
