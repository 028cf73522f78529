package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/gamescout-service/internal/app/search"
	"github.com/preston-bernstein/gamescout-service/internal/domain/games"
	"github.com/preston-bernstein/gamescout-service/internal/render"
)

// Error codes carried in the error body.
const (
	CodeInvalidArgument     = "InvalidArgument"
	CodeUpstreamUnavailable = "UpstreamUnavailable"
	CodeNotFound            = "NotFound"
	CodeMethodNotAllowed    = "MethodNotAllowed"
)

const (
	msgGameRequired     = `query parameter "game" is required`
	msgIDRequired       = "game id is required"
	msgSearchFailed     = "failed to search games"
	msgDetailsFailed    = "failed to fetch game details"
	msgNotFound         = "endpoint not found"
	msgMethodNotAllowed = "method not allowed"
	healthMessage       = "GameScout backend is running"
)

// Endpoints is listed in every 404 body.
var Endpoints = []string{
	"GET /api/search?game=<title>",
	"GET /api/game/{id}",
	"GET /api/health",
	"GET /",
	"GET /search?game=<title>",
}

type nowFunc func() time.Time

// Gateway is the query gateway the handlers depend on.
type Gateway interface {
	Search(ctx context.Context, title string) (games.ResponseEnvelope, error)
	GameByID(ctx context.Context, id string) (json.RawMessage, error)
}

var _ Gateway = (*search.Service)(nil)

// Handler wires HTTP routes to the query gateway.
type Handler struct {
	svc      Gateway
	renderer *render.Renderer
	logger   *slog.Logger
	now      nowFunc
}

// NewHandler constructs a Handler with defaults. A nil renderer uses the embedded templates.
func NewHandler(svc Gateway, renderer *render.Renderer, logger *slog.Logger) *Handler {
	if renderer == nil {
		renderer = render.Must()
	}
	return &Handler{
		svc:      svc,
		renderer: renderer,
		logger:   logger,
		now:      time.Now,
	}
}

// Health is a liveness probe. It checks no dependencies.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, games.ErrorResponse{Error: "shutting down"}, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, games.HealthResponse{
		Status:    "OK",
		Message:   healthMessage,
		Timestamp: h.now().UTC().Format(time.RFC3339),
	}, h.logger)
}

// Search proxies a title search to the gateway.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	env, err := h.svc.Search(r.Context(), r.URL.Query().Get("game"))
	if err != nil {
		h.fail(w, r, err, msgGameRequired, msgSearchFailed)
		return
	}
	writeJSON(w, http.StatusOK, env, h.logger)
}

// GameDetails returns the upstream payload for one game.
func (h *Handler) GameDetails(w http.ResponseWriter, r *http.Request) {
	id, err := url.PathUnescape(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, games.ErrorResponse{
			Error:  msgIDRequired,
			Code:   CodeInvalidArgument,
			Detail: err.Error(),
		}, h.logger)
		return
	}

	payload, err := h.svc.GameByID(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, msgIDRequired, msgDetailsFailed)
		return
	}
	writeJSON(w, http.StatusOK, games.DetailsEnvelope{Success: true, Details: payload}, h.logger)
}

// NotFound lists the available endpoints.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, games.ErrorResponse{
		Error:     msgNotFound,
		Code:      CodeNotFound,
		Available: Endpoints,
	}, h.logger)
}

func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, games.ErrorResponse{
		Error: msgMethodNotAllowed,
		Code:  CodeMethodNotAllowed,
	}, h.logger)
}

// fail maps gateway errors onto the error body. Upstream failures keep a fixed
// message; the cause only appears in detail.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, invalidMsg, upstreamMsg string) {
	if errors.Is(err, search.ErrInvalidArgument) {
		writeError(w, r, http.StatusBadRequest, games.ErrorResponse{
			Error: invalidMsg,
			Code:  CodeInvalidArgument,
		}, h.logger)
		return
	}
	writeError(w, r, http.StatusInternalServerError, games.ErrorResponse{
		Error:  upstreamMsg,
		Code:   CodeUpstreamUnavailable,
		Detail: err.Error(),
	}, h.logger)
}
