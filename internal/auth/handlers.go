package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// HTTPHandlers provides the editor token endpoint.
type HTTPHandlers struct {
	authSvc *Service
	logger  zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for auth endpoints.
func NewHTTPHandlers(authSvc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		authSvc: authSvc,
		logger:  logger,
	}
}

// Register mounts the auth routes; nothing is mounted when the guard is off.
func (h *HTTPHandlers) Register(r chi.Router) {
	if h.authSvc == nil {
		return
	}
	r.Post("/auth/token", h.IssueToken)
}

// IssueToken handles POST /auth/token
func (h *HTTPHandlers) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}

	resp, err := h.authSvc.IssueToken(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			httperrors.RespondUnauthorized(w)
		case errors.Is(err, ErrGuardDisabled):
			httperrors.RespondNotFound(w)
		default:
			h.logger.Error().Err(err).Msg("issue token failed")
			httperrors.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Warn().Err(err).Msg("encode response failed")
	}
}
