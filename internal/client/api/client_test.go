package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postboard/postboard/pkg/api"
)

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/login", r.URL.Path)

		var req api.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)

		_ = json.NewEncoder(w).Encode(api.TokenResponse{Token: "signed-token", ExpiresIn: 3600})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	resp, err := c.Login(context.Background(), "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", resp.Token)
}

func TestClient_CreatePost_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer my-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.Post{ID: "p1", Title: "hello"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	c.SetToken("my-token")

	post, err := c.CreatePost(context.Background(), "hello", "world")
	require.NoError(t, err)
	assert.Equal(t, "p1", post.ID)
}

func TestClient_ErrorResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "Conflict", Message: "username already taken"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Signup(context.Background(), "alice", "pw1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username already taken")
}

func TestClient_ListPosts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Listing is public: no Authorization header without a token set
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]api.Post{{ID: "p1"}, {ID: "p2"}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	posts, err := c.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}
