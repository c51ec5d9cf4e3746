// Package session holds the server-side session state keyed by opaque
// tokens. The Redis-backed store is used in production; the in-memory
// store backs the test suites.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"github.com/rogerio-castellano/notes-api/internal/models"
)

// CookieName is the cookie that carries the signed session token.
const CookieName = "session_id"

// ErrSessionNotFound is returned for tokens with no live, non-expired
// session. Callers must not distinguish missing from expired.
var ErrSessionNotFound = errors.New("session not found")

// Store defines the interface for session state operations.
type Store interface {
	// Create issues a fresh session for the given user and returns it,
	// token included.
	Create(ctx context.Context, userID int) (models.Session, error)
	// Get resolves a token to its live session, or ErrSessionNotFound.
	Get(ctx context.Context, token string) (models.Session, error)
	// Delete destroys the session state. Deleting an absent token is
	// not an error; logout is idempotent.
	Delete(ctx context.Context, token string) error
}

// newToken returns 256 bits of randomness, hex encoded.
func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
