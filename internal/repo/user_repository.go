package repo

import (
	"context"
	"errors"

	"github.com/rogerio-castellano/notes-api/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByUsername(ctx context.Context, username string) (models.User, error)
}
