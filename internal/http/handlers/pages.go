package handlers

import (
	"errors"
	"net/http"

	"github.com/preston-bernstein/gamescout-service/internal/app/search"
	"github.com/preston-bernstein/gamescout-service/internal/render"
)

const (
	noticeTitleRequired = "Enter a game title to search."
	noticeSearchFailed  = "Could not load prices right now. Please try again."
)

// Index serves the empty search page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, http.StatusOK, h.renderer, render.Page{}, loggerFromContext(r, h.logger))
}

// SearchPage renders result cards for ?game=. It goes through the same gateway as
// the JSON API, so a blank title never reaches the upstream.
func (h *Handler) SearchPage(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	query := r.URL.Query().Get("game")

	env, err := h.svc.Search(r.Context(), query)
	switch {
	case errors.Is(err, search.ErrInvalidArgument):
		writeHTML(w, http.StatusBadRequest, h.renderer, render.Page{Notice: noticeTitleRequired}, logger)
	case err != nil:
		writeHTML(w, http.StatusInternalServerError, h.renderer, render.Page{Query: query, Error: noticeSearchFailed}, logger)
	default:
		writeHTML(w, http.StatusOK, h.renderer, render.ResultsPage(env), logger)
	}
}
