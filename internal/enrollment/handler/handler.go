// Package handler wires the enrollment endpoints. Both routes sit behind
// the AuthGate: /join requires a participant token, /judge/registrations a
// judge token.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sportreg/internal/enrollment/models"
	"sportreg/pkg/platform/httputil"
	"sportreg/pkg/requestcontext"
)

// Service defines the enrollment operations the handler depends on.
type Service interface {
	Enroll(ctx context.Context, participantID, sportID int64) (int64, error)
	ListForJudge(ctx context.Context) ([]models.JudgeRow, error)
}

// Handler serves enrollment endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an enrollment handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterParticipantScoped mounts routes requiring a participant token.
func (h *Handler) RegisterParticipantScoped(r chi.Router) {
	r.Post("/join", h.handleJoin)
}

// RegisterJudgeScoped mounts routes requiring a judge token.
func (h *Handler) RegisterJudgeScoped(r chi.Router) {
	r.Get("/judge/registrations", h.handleListRegistrations)
}

type joinRequest struct {
	SportID int64 `json:"sport_id"`
}

type joinResponse struct {
	ID int64 `json:"id"`
}

func (h *Handler) handleJoin(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.Decode[joinRequest](w, r, h.logger)
	if !ok {
		return
	}

	participantID := requestcontext.PrincipalID(r.Context())
	id, err := h.service.Enroll(r.Context(), participantID, req.SportID)
	if err != nil {
		h.logger.WarnContext(r.Context(), "enrollment rejected",
			"request_id", requestcontext.RequestID(r.Context()),
			"participant_id", participantID,
			"sport_id", req.SportID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, joinResponse{ID: id})
}

func (h *Handler) handleListRegistrations(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.ListForJudge(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "registration listing failed",
			"request_id", requestcontext.RequestID(r.Context()),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, rows)
}
