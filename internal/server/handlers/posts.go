package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/postboard/postboard/internal/models"
	"github.com/postboard/postboard/internal/server/service"
	"github.com/postboard/postboard/internal/server/token"
	"github.com/postboard/postboard/pkg/api"
)

// PostsHandler handles post CRUD and reaction requests.
// Mutating operations verify the bearer token explicitly at the top of the
// handler; the verified identity is then passed down as a plain value.
type PostsHandler struct {
	logger *slog.Logger
	posts  *service.Posts
	tokens token.Config
}

// NewPostsHandler creates a new posts handler
func NewPostsHandler(logger *slog.Logger, posts *service.Posts, tokens token.Config) *PostsHandler {
	return &PostsHandler{
		logger: logger,
		posts:  posts,
		tokens: tokens,
	}
}

func toAPIPost(p *models.Post) api.Post {
	return api.Post{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Author:    p.Author,
		OwnerID:   p.OwnerID,
		Likes:     p.Likes,
		Dislikes:  p.Dislikes,
		CreatedAt: p.CreatedAt,
	}
}

// Create handles POST /posts
func (h *PostsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, err := token.FromRequest(h.tokens, r)
	if err != nil {
		serviceError(h.logger, w, r, err)
		return
	}

	var req api.PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode post request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	post, err := h.posts.Create(ctx, identity, req.Title, req.Content)
	if err != nil {
		serviceError(h.logger, w, r, err)
		return
	}

	sendJSON(h.logger, w, toAPIPost(post), http.StatusCreated)
}

// List handles GET /posts
func (h *PostsHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.List(r.Context())
	if err != nil {
		serviceError(h.logger, w, r, err)
		return
	}

	resp := make([]api.Post, 0, len(posts))
	for _, p := range posts {
		resp = append(resp, toAPIPost(p))
	}
	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Update handles PUT /posts/{id}
func (h *PostsHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, err := token.FromRequest(h.tokens, r)
	if err != nil {
		serviceError(h.logger, w, r, err)
		return
	}

	var req api.PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode post request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	post, err := h.posts.Update(ctx, identity, r.PathValue("id"), req.Title, req.Content)
	if err != nil {
		serviceError(h.logger, w, r, err)
		return
	}

	sendJSON(h.logger, w, toAPIPost(post), http.StatusOK)
}

// Delete handles DELETE /posts/{id}
func (h *PostsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, err := token.FromRequest(h.tokens, r)
	if err != nil {
		serviceError(h.logger, w, r, err)
		return
	}

	if err := h.posts.Delete(ctx, identity, r.PathValue("id")); err != nil {
		serviceError(h.logger, w, r, err)
		return
	}

	sendJSON(h.logger, w, api.DeleteResponse{Message: "post deleted"}, http.StatusOK)
}

// Like handles POST /posts/{id}/like. Unauthenticated.
func (h *PostsHandler) Like(w http.ResponseWriter, r *http.Request) {
	post, err := h.posts.Like(r.Context(), r.PathValue("id"))
	if err != nil {
		serviceError(h.logger, w, r, err)
		return
	}
	sendJSON(h.logger, w, toAPIPost(post), http.StatusOK)
}

// Dislike handles POST /posts/{id}/dislike. Unauthenticated.
func (h *PostsHandler) Dislike(w http.ResponseWriter, r *http.Request) {
	post, err := h.posts.Dislike(r.Context(), r.PathValue("id"))
	if err != nil {
		serviceError(h.logger, w, r, err)
		return
	}
	sendJSON(h.logger, w, toAPIPost(post), http.StatusOK)
}
