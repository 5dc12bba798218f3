package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/postboard/postboard/internal/models"
	"github.com/postboard/postboard/internal/server/storage"
	"github.com/postboard/postboard/internal/server/token"
)

// Posts handles post CRUD and reaction counters. Create, Update and Delete
// require a verified identity; Update and Delete additionally require the
// identity to own the post. List, Like and Dislike are public.
type Posts struct {
	logger *slog.Logger
	store  storage.PostStorage
}

// NewPosts creates a new Posts service.
func NewPosts(logger *slog.Logger, store storage.PostStorage) *Posts {
	return &Posts{
		logger: logger,
		store:  store,
	}
}

// authorizeOwner allows a mutation iff the identity owns the post.
// There are no other roles and no admin bypass.
func authorizeOwner(identity token.Identity, post *models.Post) error {
	if identity.UserID != post.OwnerID {
		return ErrNotOwner
	}
	return nil
}

// Create persists a new post owned by the given identity.
func (s *Posts) Create(ctx context.Context, identity token.Identity, title, content string) (*models.Post, error) {
	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: title and content are required", ErrInvalidInput)
	}

	post := &models.Post{
		ID:        uuid.New().String(),
		OwnerID:   identity.UserID,
		Title:     title,
		Content:   content,
		Author:    identity.Username,
		CreatedAt: time.Now(),
	}

	if err := s.store.CreatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.InfoContext(ctx, "post created",
		slog.String("post_id", post.ID),
		slog.String("owner_id", identity.UserID))

	return post, nil
}

// List returns every post with the owner username denormalized in.
// Public, unauthenticated, unpaginated.
func (s *Posts) List(ctx context.Context) ([]*models.Post, error) {
	posts, err := s.store.ListPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

// Update overwrites title and content of a post owned by the identity.
// Returns ErrPostNotFound if the post is absent and ErrNotOwner if the
// identity does not own it.
func (s *Posts) Update(ctx context.Context, identity token.Identity, postID, title, content string) (*models.Post, error) {
	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: title and content are required", ErrInvalidInput)
	}

	post, err := s.store.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, storage.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	if err := authorizeOwner(identity, post); err != nil {
		return nil, err
	}

	post.Title = title
	post.Content = content

	if err := s.store.UpdatePost(ctx, post); err != nil {
		if errors.Is(err, storage.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	s.logger.InfoContext(ctx, "post updated",
		slog.String("post_id", post.ID),
		slog.String("owner_id", identity.UserID))

	return post, nil
}

// Delete removes a post owned by the identity. Same guard sequence as Update.
func (s *Posts) Delete(ctx context.Context, identity token.Identity, postID string) error {
	post, err := s.store.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, storage.ErrPostNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("failed to get post: %w", err)
	}

	if err := authorizeOwner(identity, post); err != nil {
		return err
	}

	if err := s.store.DeletePost(ctx, postID); err != nil {
		if errors.Is(err, storage.ErrPostNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("failed to delete post: %w", err)
	}

	s.logger.InfoContext(ctx, "post deleted",
		slog.String("post_id", postID),
		slog.String("owner_id", identity.UserID))

	return nil
}

// Like increments the like counter by exactly 1. Unauthenticated; no voter
// identity is tracked, so repeated calls keep incrementing.
func (s *Posts) Like(ctx context.Context, postID string) (*models.Post, error) {
	return s.react(ctx, postID, s.store.IncrementLikes)
}

// Dislike increments the dislike counter by exactly 1.
func (s *Posts) Dislike(ctx context.Context, postID string) (*models.Post, error) {
	return s.react(ctx, postID, s.store.IncrementDislikes)
}

func (s *Posts) react(ctx context.Context, postID string, increment func(context.Context, string) error) (*models.Post, error) {
	if err := increment(ctx, postID); err != nil {
		if errors.Is(err, storage.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to increment counter: %w", err)
	}

	post, err := s.store.GetPost(ctx, postID)
	if err != nil {
		if errors.Is(err, storage.ErrPostNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}
