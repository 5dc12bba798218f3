// Package handlers implements the HTTP boundary. Each handler decodes the
// request, calls a service operation and maps its typed failure onto the
// status code taxonomy: 400 invalid input, 401 unauthenticated, 403
// forbidden, 404 not found, 409 conflict, 500 internal.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/postboard/postboard/internal/server/service"
	"github.com/postboard/postboard/internal/server/token"
	"github.com/postboard/postboard/pkg/api"
)

// sendJSON writes a JSON response
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError writes a JSON error response
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	sendJSON(logger, w, resp, statusCode)
}

// statusFor maps a service or token error to its HTTP status code.
// Every failure kind has exactly one code; nothing is swallowed.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, token.ErrMissingToken), errors.Is(err, token.ErrInvalidToken),
		errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, service.ErrUserNotFound), errors.Is(err, service.ErrPostNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrUsernameTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// serviceError logs and writes a failure from the service layer.
// Internal errors are logged at error level and masked from the caller.
func serviceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "internal error",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		sendError(logger, w, "internal server error", status)
		return
	}

	logger.WarnContext(r.Context(), "request failed",
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.Any("error", err))
	sendError(logger, w, err.Error(), status)
}
