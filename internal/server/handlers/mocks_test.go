package handlers

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/postboard/postboard/internal/models"
	"github.com/postboard/postboard/internal/server/storage"
	"github.com/postboard/postboard/internal/server/token"
)

// mockUserStorage is an in-memory UserStorage for handler tests
type mockUserStorage struct {
	users map[string]*models.User // username -> User
}

func newMockUserStorage() *mockUserStorage {
	return &mockUserStorage{users: make(map[string]*models.User)}
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	if _, exists := m.users[user.Username]; exists {
		return storage.ErrUserAlreadyExists
	}
	m.users[user.Username] = user
	return nil
}

func (m *mockUserStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user, ok := m.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

// mockPostStorage is an in-memory PostStorage for handler tests
type mockPostStorage struct {
	posts map[string]*models.Post
	order []string
}

func newMockPostStorage() *mockPostStorage {
	return &mockPostStorage{posts: make(map[string]*models.Post)}
}

func (m *mockPostStorage) CreatePost(ctx context.Context, post *models.Post) error {
	copied := *post
	m.posts[post.ID] = &copied
	m.order = append(m.order, post.ID)
	return nil
}

func (m *mockPostStorage) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	post, ok := m.posts[postID]
	if !ok {
		return nil, storage.ErrPostNotFound
	}
	copied := *post
	return &copied, nil
}

func (m *mockPostStorage) ListPosts(ctx context.Context) ([]*models.Post, error) {
	result := make([]*models.Post, 0, len(m.order))
	for _, id := range m.order {
		copied := *m.posts[id]
		result = append(result, &copied)
	}
	return result, nil
}

func (m *mockPostStorage) UpdatePost(ctx context.Context, post *models.Post) error {
	stored, ok := m.posts[post.ID]
	if !ok {
		return storage.ErrPostNotFound
	}
	stored.Title = post.Title
	stored.Content = post.Content
	return nil
}

func (m *mockPostStorage) DeletePost(ctx context.Context, postID string) error {
	if _, ok := m.posts[postID]; !ok {
		return storage.ErrPostNotFound
	}
	delete(m.posts, postID)
	for i, id := range m.order {
		if id == postID {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *mockPostStorage) IncrementLikes(ctx context.Context, postID string) error {
	post, ok := m.posts[postID]
	if !ok {
		return storage.ErrPostNotFound
	}
	post.Likes++
	return nil
}

func (m *mockPostStorage) IncrementDislikes(ctx context.Context, postID string) error {
	post, ok := m.posts[postID]
	if !ok {
		return storage.ErrPostNotFound
	}
	post.Dislikes++
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testTokenConfig() token.Config {
	return token.Config{Secret: []byte("handler-test-secret"), TTL: time.Hour}
}
