package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/postboard/postboard/internal/clients/mail"
	"github.com/postboard/postboard/pkg/api"
)

// Renderer captures a full-page screenshot of a URL.
type Renderer interface {
	Capture(ctx context.Context, target string) ([]byte, error)
}

// Mailer forwards a contact-form submission to the email provider.
type Mailer interface {
	Send(ctx context.Context, msg mail.Message) error
}

// ExternalHandler proxies the two external collaborators: the headless
// screenshot renderer and the transactional email service.
type ExternalHandler struct {
	logger   *slog.Logger
	renderer Renderer
	mailer   Mailer
}

// NewExternalHandler creates a handler over the external service clients
func NewExternalHandler(logger *slog.Logger, renderer Renderer, mailer Mailer) *ExternalHandler {
	return &ExternalHandler{
		logger:   logger,
		renderer: renderer,
		mailer:   mailer,
	}
}

// Screenshot handles GET /screenshot/{url}.
// The path segment carries the URL-encoded target.
func (h *ExternalHandler) Screenshot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	target := r.PathValue("url")
	if target == "" {
		sendError(h.logger, w, "url is required", http.StatusBadRequest)
		return
	}

	image, err := h.renderer.Capture(ctx, target)
	if err != nil {
		h.logger.ErrorContext(ctx, "screenshot capture failed",
			slog.String("target", target),
			slog.Any("error", err))
		sendError(h.logger, w, "failed to capture screenshot", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(image); err != nil {
		h.logger.ErrorContext(ctx, "failed to write screenshot response", slog.Any("error", err))
	}
}

// SendEmail handles POST /send-email
func (h *ExternalHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.SendEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode email request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	err := h.mailer.Send(ctx, mail.Message{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to send email", slog.Any("error", err))
		sendJSON(h.logger, w, api.SendEmailResponse{Success: false}, http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.SendEmailResponse{Success: true}, http.StatusOK)
}
