package api

import "time"

// PostRequest is the body of POST /posts and PUT /posts/{id}
type PostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Post is a single post as returned by the API. Author is the owner's
// username, denormalized into every read.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	OwnerID   string    `json:"owner_id"`
	Likes     int64     `json:"likes"`
	Dislikes  int64     `json:"dislikes"`
	CreatedAt time.Time `json:"created_at"`
}

// DeleteResponse is returned after a successful post deletion.
type DeleteResponse struct {
	Message string `json:"message"`
}
