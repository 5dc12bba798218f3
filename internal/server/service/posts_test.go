package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postboard/postboard/internal/server/token"
)

var (
	alice = token.Identity{UserID: "user-alice", Username: "alice"}
	bob   = token.Identity{UserID: "user-bob", Username: "bob"}
)

func TestPosts_Create(t *testing.T) {
	ctx := context.Background()
	posts := NewPosts(testLogger(), newMockPostStorage())

	post, err := posts.Create(ctx, alice, "hello", "first post")
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, alice.UserID, post.OwnerID)
	assert.Equal(t, "alice", post.Author)
	assert.Equal(t, int64(0), post.Likes)
	assert.Equal(t, int64(0), post.Dislikes)
}

func TestPosts_Create_InvalidInput(t *testing.T) {
	ctx := context.Background()
	posts := NewPosts(testLogger(), newMockPostStorage())

	_, err := posts.Create(ctx, alice, "", "content")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = posts.Create(ctx, alice, "title", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPosts_List(t *testing.T) {
	ctx := context.Background()
	store := newMockPostStorage()
	posts := NewPosts(testLogger(), store)

	listed, err := posts.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)

	first, err := posts.Create(ctx, alice, "one", "1")
	require.NoError(t, err)
	second, err := posts.Create(ctx, bob, "two", "2")
	require.NoError(t, err)

	listed, err = posts.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, first.ID, listed[0].ID)
	assert.Equal(t, second.ID, listed[1].ID)
}

func TestPosts_Update(t *testing.T) {
	ctx := context.Background()
	posts := NewPosts(testLogger(), newMockPostStorage())

	post, err := posts.Create(ctx, alice, "original", "body")
	require.NoError(t, err)

	updated, err := posts.Update(ctx, alice, post.ID, "edited", "new body")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Title)
	assert.Equal(t, "new body", updated.Content)
}

func TestPosts_Update_Guards(t *testing.T) {
	ctx := context.Background()
	posts := NewPosts(testLogger(), newMockPostStorage())

	post, err := posts.Create(ctx, alice, "title", "body")
	require.NoError(t, err)

	// Non-owner identity is forbidden
	_, err = posts.Update(ctx, bob, post.ID, "x", "y")
	assert.ErrorIs(t, err, ErrNotOwner)

	// Absent post is NotFound, checked before ownership
	_, err = posts.Update(ctx, bob, "no-such-post", "x", "y")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPosts_Delete(t *testing.T) {
	ctx := context.Background()
	posts := NewPosts(testLogger(), newMockPostStorage())

	post, err := posts.Create(ctx, alice, "title", "body")
	require.NoError(t, err)

	// bob cannot delete alice's post
	err = posts.Delete(ctx, bob, post.ID)
	assert.ErrorIs(t, err, ErrNotOwner)

	// alice can, and the post disappears from listings
	err = posts.Delete(ctx, alice, post.ID)
	require.NoError(t, err)

	listed, err := posts.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)

	err = posts.Delete(ctx, alice, post.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestPosts_Reactions(t *testing.T) {
	ctx := context.Background()
	posts := NewPosts(testLogger(), newMockPostStorage())

	post, err := posts.Create(ctx, alice, "title", "body")
	require.NoError(t, err)

	// Three sequential likes: counter goes to exactly 3.
	// No voter identity, so the same caller may repeat without limit.
	for i := 0; i < 3; i++ {
		p, err := posts.Like(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), p.Likes)
	}

	p, err := posts.Dislike(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.Likes)
	assert.Equal(t, int64(1), p.Dislikes)
}

func TestPosts_Reactions_NotFound(t *testing.T) {
	ctx := context.Background()
	posts := NewPosts(testLogger(), newMockPostStorage())

	_, err := posts.Like(ctx, "missing")
	assert.ErrorIs(t, err, ErrPostNotFound)

	_, err = posts.Dislike(ctx, "missing")
	assert.ErrorIs(t, err, ErrPostNotFound)
}
