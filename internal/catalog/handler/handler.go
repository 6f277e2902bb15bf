// Package handler serves the sport catalog: the public listing and the
// judge-guarded administrative insert.
package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"sportreg/internal/catalog/store"
	dErrors "sportreg/pkg/domain-errors"
	"sportreg/pkg/platform/httputil"
	"sportreg/pkg/platform/sentinel"
	"sportreg/pkg/requestcontext"
)

// Handler serves catalog endpoints.
type Handler struct {
	store  store.Store
	logger *slog.Logger
}

// New constructs a catalog handler.
func New(st store.Store, logger *slog.Logger) *Handler {
	return &Handler{store: st, logger: logger}
}

// RegisterPublic mounts the unauthenticated sport listing.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Get("/sports", h.handleListSports)
}

// RegisterJudgeScoped mounts the administrative sport insert.
func (h *Handler) RegisterJudgeScoped(r chi.Router) {
	r.Post("/judge/sports", h.handleAddSport)
}

func (h *Handler) handleListSports(w http.ResponseWriter, r *http.Request) {
	sports, err := h.store.List(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "sport listing failed",
			"request_id", requestcontext.RequestID(r.Context()),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, sports)
}

type addSportRequest struct {
	Title string `json:"title"`
}

type addSportResponse struct {
	ID int64 `json:"id"`
}

func (h *Handler) handleAddSport(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.Decode[addSportRequest](w, r, h.logger)
	if !ok {
		return
	}
	title := strings.TrimSpace(req.Title)
	if title == "" || len(title) > 50 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "title is required"))
		return
	}

	id, err := h.store.Create(r.Context(), title)
	if errors.Is(err, sentinel.ErrConflict) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeConflict, "sport already exists"))
		return
	}
	if err != nil {
		h.logger.ErrorContext(r.Context(), "sport insert failed",
			"request_id", requestcontext.RequestID(r.Context()),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, addSportResponse{ID: id})
}
