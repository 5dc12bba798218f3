// Package token issues and verifies the bearer tokens that carry a caller's
// identity between login and subsequent requests. Verification is stateless:
// a token is valid iff its HMAC signature checks out against the process-wide
// secret and it has not expired.
package token

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingToken indicates that no bearer token was presented.
	ErrMissingToken = errors.New("missing bearer token")

	// ErrInvalidToken indicates a malformed, badly signed or expired token.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Identity is the verified caller identity embedded in a token.
// It is reconstructed per request and never persisted.
type Identity struct {
	UserID   string
	Username string
}

// Claims represents the JWT claims for this application.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Config contains the signing secret and token lifetime.
type Config struct {
	Secret []byte
	TTL    time.Duration
}

// Issue creates a signed token embedding the user's identity,
// expiring TTL from now. Returns the token and its lifetime in seconds.
func Issue(cfg Config, userID, username string) (string, int64, error) {
	now := time.Now()

	claims := Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "postboard",
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(cfg.Secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, int64(cfg.TTL.Seconds()), nil
}

// Verify validates a raw token and returns the embedded identity.
// Returns ErrMissingToken for an empty token and ErrInvalidToken for
// anything that fails to parse, verify or is expired.
func Verify(cfg Config, raw string) (Identity, error) {
	if raw == "" {
		return Identity{}, ErrMissingToken
	}

	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return cfg.Secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return Identity{}, ErrInvalidToken
	}

	return Identity{UserID: claims.UserID, Username: claims.Username}, nil
}

// FromRequest extracts the bearer token from the Authorization header and
// verifies it. Called explicitly at the top of each protected handler.
func FromRequest(cfg Config, r *http.Request) (Identity, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return Identity{}, ErrMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return Identity{}, fmt.Errorf("%w: malformed Authorization header", ErrInvalidToken)
	}

	return Verify(cfg, parts[1])
}
