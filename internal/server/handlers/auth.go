package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/postboard/postboard/internal/server/service"
	"github.com/postboard/postboard/pkg/api"
)

// AuthHandler handles signup and login requests
type AuthHandler struct {
	logger *slog.Logger
	auth   *service.Auth
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(logger *slog.Logger, auth *service.Auth) *AuthHandler {
	return &AuthHandler{
		logger: logger,
		auth:   auth,
	}
}

// Signup handles POST /signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode signup request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.auth.Signup(ctx, req.Username, req.Password)
	if err != nil {
		serviceError(h.logger, w, r, err)
		return
	}

	resp := api.SignupResponse{
		UserID:  user.ID,
		Message: "user registered successfully",
	}
	sendJSON(h.logger, w, resp, http.StatusCreated)
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	signed, expiresIn, err := h.auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		serviceError(h.logger, w, r, err)
		return
	}

	resp := api.TokenResponse{
		Token:     signed,
		ExpiresIn: expiresIn,
	}
	sendJSON(h.logger, w, resp, http.StatusOK)
}
