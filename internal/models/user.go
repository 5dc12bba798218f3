package models

import "time"

// User represents a registered account.
// PasswordHash is the bcrypt hash of the password; the plaintext is never
// stored and the hash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
