package service

import "errors"

// Service errors, mapped to HTTP status codes at the handler boundary.
var (
	// ErrInvalidInput indicates a missing or malformed request field (400)
	ErrInvalidInput = errors.New("invalid input")

	// ErrUsernameTaken indicates a signup with an existing username (409)
	ErrUsernameTaken = errors.New("username already taken")

	// ErrUserNotFound indicates a login for an unknown username (404)
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates a failed password comparison (401)
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrPostNotFound indicates a referenced post is absent (404)
	ErrPostNotFound = errors.New("post not found")

	// ErrNotOwner indicates a mutation attempt by a non-owner identity (403)
	ErrNotOwner = errors.New("not the post owner")
)
