// Package auth implements registration, credential verification and
// session lifecycle.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/rogerio-castellano/notes-api/internal/models"
	"github.com/rogerio-castellano/notes-api/internal/repo"
	"github.com/rogerio-castellano/notes-api/internal/session"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUsernameTaken is returned when registering a username that
	// already exists.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords; callers must never distinguish the two.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// dummyHash is compared against when the username does not exist, so a
// failed login costs the same bcrypt work either way and response
// timing does not reveal whether the user exists.
var dummyHash = func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("no-such-user"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return h
}()

type Service struct {
	users    repo.UserRepository
	sessions session.Store
}

func NewService(users repo.UserRepository, sessions session.Store) *Service {
	return &Service{users: users, sessions: sessions}
}

// Register hashes the password and persists the new user. No session is
// created; the user logs in separately.
func (s *Service) Register(ctx context.Context, username, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = s.users.Create(ctx, models.User{
		Username:     username,
		PasswordHash: string(hashed),
	})
	if errors.Is(err, repo.ErrDuplicateUsername) {
		return ErrUsernameTaken
	}
	return err
}

// Login verifies the credentials and, on success, establishes a new
// server-side session bound to the user's id.
func (s *Service) Login(ctx context.Context, username, password string) (models.Session, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, repo.ErrUserNotFound) {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return models.Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.Session{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.Session{}, ErrInvalidCredentials
	}

	return s.sessions.Create(ctx, user.ID)
}

// Logout destroys the session state unconditionally. Unknown or empty
// tokens succeed silently.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}
