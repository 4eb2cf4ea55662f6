// Package api exposes identifier generation and lexicon inspection over HTTP.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/humanids/pkg/humanid"
	"github.com/dmitrymomot/humanids/pkg/logger"
	"github.com/dmitrymomot/humanids/pkg/requestid"
)

// MaxCount caps how many identifiers a single request may ask for.
const MaxCount = 100

type handler struct {
	gen      *humanid.Generator
	defaults humanid.Options
	log      *slog.Logger
}

// Option configures the router.
type Option func(*handler)

// WithGenerator sets the generator used by /v1/ids.
func WithGenerator(g *humanid.Generator) Option {
	return func(h *handler) {
		if g != nil {
			h.gen = g
		}
	}
}

// WithDefaults sets the options applied when a query parameter is absent.
func WithDefaults(opts humanid.Options) Option {
	return func(h *handler) { h.defaults = opts }
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *handler) {
		if l != nil {
			h.log = l
		}
	}
}

// NewRouter returns the HTTP routes:
//
//	GET /health/live
//	GET /v1/ids
//	GET /v1/lexicon
//	GET /v1/lexicon/{category}
func NewRouter(opts ...Option) http.Handler {
	h := &handler{
		gen:      humanid.New(),
		defaults: humanid.DefaultOptions(),
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) { writeError(w, ErrNotFound) })
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) { writeError(w, ErrMethodNotAllowed) })

	r.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ALIVE"))
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/ids", h.generateIDs)
		r.Get("/lexicon", h.listCategories)
		r.Get("/lexicon/{category}", h.getCategory)
	})

	return r
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.log.DebugContext(r.Context(), "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}
