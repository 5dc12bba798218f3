package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/postboard/postboard/internal/models"
	"github.com/postboard/postboard/internal/server/storage"
)

// CreatePost creates a new post in the storage
func (s *Storage) CreatePost(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (id, owner_id, title, content, likes, dislikes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		post.ID,
		post.OwnerID,
		post.Title,
		post.Content,
		post.Likes,
		post.Dislikes,
		post.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// GetPost retrieves a post by ID with the owner username joined in
func (s *Storage) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	query := `
		SELECT p.id, p.owner_id, p.title, p.content, u.username, p.likes, p.dislikes, p.created_at
		FROM posts p
		JOIN users u ON u.id = p.owner_id
		WHERE p.id = ?
	`

	post := &models.Post{}
	err := s.db.QueryRowContext(ctx, query, postID).Scan(
		&post.ID,
		&post.OwnerID,
		&post.Title,
		&post.Content,
		&post.Author,
		&post.Likes,
		&post.Dislikes,
		&post.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// ListPosts returns all posts with owner usernames.
// No ORDER BY: callers get store order, which is not a contract.
func (s *Storage) ListPosts(ctx context.Context) ([]*models.Post, error) {
	query := `
		SELECT p.id, p.owner_id, p.title, p.content, u.username, p.likes, p.dislikes, p.created_at
		FROM posts p
		JOIN users u ON u.id = p.owner_id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post := &models.Post{}
		if err := rows.Scan(
			&post.ID,
			&post.OwnerID,
			&post.Title,
			&post.Content,
			&post.Author,
			&post.Likes,
			&post.Dislikes,
			&post.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return posts, nil
}

// UpdatePost overwrites title and content of an existing post
func (s *Storage) UpdatePost(ctx context.Context, post *models.Post) error {
	query := `UPDATE posts SET title = ?, content = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, post.Title, post.Content, post.ID)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrPostNotFound
	}

	return nil
}

// DeletePost removes a post by ID
func (s *Storage) DeletePost(ctx context.Context, postID string) error {
	query := `DELETE FROM posts WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrPostNotFound
	}

	return nil
}

// IncrementLikes atomically adds 1 to the like counter.
// A single UPDATE so concurrent callers cannot lose increments.
func (s *Storage) IncrementLikes(ctx context.Context, postID string) error {
	return s.incrementCounter(ctx, `UPDATE posts SET likes = likes + 1 WHERE id = ?`, postID)
}

// IncrementDislikes atomically adds 1 to the dislike counter
func (s *Storage) IncrementDislikes(ctx context.Context, postID string) error {
	return s.incrementCounter(ctx, `UPDATE posts SET dislikes = dislikes + 1 WHERE id = ?`, postID)
}

func (s *Storage) incrementCounter(ctx context.Context, query, postID string) error {
	result, err := s.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("failed to increment counter: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrPostNotFound
	}

	return nil
}
