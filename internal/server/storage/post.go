package storage

import (
	"context"

	"github.com/postboard/postboard/internal/models"
)

// PostStorage defines the interface for post persistence.
type PostStorage interface {
	// CreatePost creates a new post in the storage.
	CreatePost(ctx context.Context, post *models.Post) error

	// GetPost retrieves a post by ID with the owner username denormalized
	// into Author. Returns ErrPostNotFound if the post doesn't exist.
	GetPost(ctx context.Context, postID string) (*models.Post, error)

	// ListPosts returns all posts with owner usernames, in store order.
	ListPosts(ctx context.Context) ([]*models.Post, error)

	// UpdatePost overwrites title and content of an existing post.
	// Returns ErrPostNotFound if the post doesn't exist.
	UpdatePost(ctx context.Context, post *models.Post) error

	// DeletePost removes a post by ID.
	// Returns ErrPostNotFound if the post doesn't exist.
	DeletePost(ctx context.Context, postID string) error

	// IncrementLikes atomically adds 1 to the like counter.
	// Returns ErrPostNotFound if the post doesn't exist.
	IncrementLikes(ctx context.Context, postID string) error

	// IncrementDislikes atomically adds 1 to the dislike counter.
	// Returns ErrPostNotFound if the post doesn't exist.
	IncrementDislikes(ctx context.Context, postID string) error
}
