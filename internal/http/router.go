package http

import (
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/gamescout-service/internal/http/handlers"
	"github.com/preston-bernstein/gamescout-service/internal/http/middleware"
	"github.com/preston-bernstein/gamescout-service/internal/http/requestutil"
	"github.com/preston-bernstein/gamescout-service/internal/metrics"
)

// gamePrefix is lowercased on its own; the id after it keeps its case.
const gamePrefix = "/api/game/"

// RouterOptions carries the cross-cutting pieces the router wraps around handlers.
type RouterOptions struct {
	Logger         *slog.Logger
	Metrics        *metrics.Recorder
	AllowedOrigins []string
}

// NewRouter registers the API and page routes on a chi mux.
func NewRouter(h *handlers.Handler, opts RouterOptions) nethttp.Handler {
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(canonicalPaths)
	r.Use(chimiddleware.StripSlashes)
	r.Use(middleware.Logging(opts.Logger, opts.Metrics))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestutil.HeaderRequestID},
		ExposedHeaders: []string{requestutil.HeaderRequestID},
		MaxAge:         300,
	}))

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Route("/api", func(r chi.Router) {
		r.Get("/search", h.Search)
		r.Get("/game/{id}", h.GameDetails)
		r.Get("/health", h.Health)
	})
	r.Get("/", h.Index)
	r.Get("/search", h.SearchPage)

	return r
}

// canonicalPaths makes routing case-insensitive by lowercasing the path before
// chi matches it.
func canonicalPaths(next nethttp.Handler) nethttp.Handler {
	return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		r.URL.Path = canonicalPath(r.URL.Path)
		if r.URL.RawPath != "" {
			r.URL.RawPath = canonicalPath(r.URL.RawPath)
		}
		next.ServeHTTP(w, r)
	})
}

func canonicalPath(p string) string {
	if len(p) >= len(gamePrefix) && strings.EqualFold(p[:len(gamePrefix)], gamePrefix) {
		return gamePrefix + p[len(gamePrefix):]
	}
	return strings.ToLower(p)
}
