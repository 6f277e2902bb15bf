// Package handler wires registration and login endpoints to the identity
// service. Registration and login are the only AuthGate-free endpoints; the
// profile deletion route runs behind the participant gate.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sportreg/pkg/platform/httputil"
	"sportreg/pkg/requestcontext"
)

// Service defines the identity operations the handler depends on.
type Service interface {
	RegisterParticipant(ctx context.Context, name, phone, secret string) (int64, error)
	LoginParticipant(ctx context.Context, phone, secret string) (string, error)
	RegisterJudge(ctx context.Context, name, username, secret string) (int64, error)
	LoginJudge(ctx context.Context, username, secret string) (string, error)
	DeleteParticipant(ctx context.Context, id int64) error
}

// Handler serves the identity endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an identity handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterPublic mounts the gate-free registration and login routes.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Post("/register", h.handleRegisterParticipant)
	r.Post("/login", h.handleLoginParticipant)
	r.Post("/judge/register", h.handleRegisterJudge)
	r.Post("/judge/login", h.handleLoginJudge)
}

// RegisterParticipantScoped mounts routes that require a participant token.
func (h *Handler) RegisterParticipantScoped(r chi.Router) {
	r.Delete("/me", h.handleDeleteMe)
}

type registerResponse struct {
	ID int64 `json:"id"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *Handler) handleRegisterParticipant(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.Decode[RegisterParticipantRequest](w, r, h.logger)
	if !ok {
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	id, err := h.service.RegisterParticipant(r.Context(), req.Name, req.Phone, req.Password)
	if err != nil {
		h.logger.WarnContext(r.Context(), "participant registration rejected",
			"request_id", requestcontext.RequestID(r.Context()),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, registerResponse{ID: id})
}

func (h *Handler) handleLoginParticipant(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.Decode[LoginParticipantRequest](w, r, h.logger)
	if !ok {
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	token, err := h.service.LoginParticipant(r.Context(), req.Phone, req.Password)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, loginResponse{Token: token})
}

func (h *Handler) handleRegisterJudge(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.Decode[RegisterJudgeRequest](w, r, h.logger)
	if !ok {
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	id, err := h.service.RegisterJudge(r.Context(), req.Name, req.Username, req.Password)
	if err != nil {
		h.logger.WarnContext(r.Context(), "judge registration rejected",
			"request_id", requestcontext.RequestID(r.Context()),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, registerResponse{ID: id})
}

func (h *Handler) handleLoginJudge(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.Decode[LoginJudgeRequest](w, r, h.logger)
	if !ok {
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	token, err := h.service.LoginJudge(r.Context(), req.Username, req.Password)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, loginResponse{Token: token})
}

func (h *Handler) handleDeleteMe(w http.ResponseWriter, r *http.Request) {
	id := requestcontext.PrincipalID(r.Context())
	if err := h.service.DeleteParticipant(r.Context(), id); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}
