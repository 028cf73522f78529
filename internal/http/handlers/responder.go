package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/gamescout-service/internal/domain/games"
	"github.com/preston-bernstein/gamescout-service/internal/http/middleware"
	"github.com/preston-bernstein/gamescout-service/internal/http/requestutil"
	"github.com/preston-bernstein/gamescout-service/internal/logging"
	"github.com/preston-bernstein/gamescout-service/internal/render"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, body games.ErrorResponse, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.HeaderRequestID)
	}
	body.RequestID = reqID
	writeJSON(w, status, body, logger)
}

// writeHTML renders into a buffer first so a template failure still yields a clean 500.
func writeHTML(w http.ResponseWriter, status int, renderer *render.Renderer, page render.Page, logger *slog.Logger) {
	var buf bytes.Buffer
	if err := renderer.Render(&buf, page); err != nil {
		logging.Error(logger, "failed to render page", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logging.Warn(logger, "failed to write page", "err", err)
	}
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
