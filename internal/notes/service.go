// Package notes implements the note operations, scoped strictly to the
// authenticated owner.
package notes

import (
	"context"

	"github.com/rogerio-castellano/notes-api/internal/models"
	"github.com/rogerio-castellano/notes-api/internal/repo"
)

type Service struct {
	notes repo.NoteRepository
}

func NewService(notes repo.NoteRepository) *Service {
	return &Service{notes: notes}
}

// List returns the notes owned by userID. No notes is an empty slice,
// not an error.
func (s *Service) List(ctx context.Context, userID int) ([]models.Note, error) {
	return s.notes.GetByUserID(ctx, userID)
}

// Create persists a new note owned by userID. Content may be any
// string, including empty.
func (s *Service) Create(ctx context.Context, userID int, content string) (models.Note, error) {
	return s.notes.Create(ctx, models.Note{UserID: userID, Content: content})
}

// Update rewrites the note's content, matching on both note id and
// owner. A note that does not exist, or is not the caller's, is left
// untouched and no error is reported.
func (s *Service) Update(ctx context.Context, userID, noteID int, content string) error {
	return s.notes.Update(ctx, userID, noteID, content)
}

// Delete removes the note, with the same compound-match semantics as
// Update.
func (s *Service) Delete(ctx context.Context, userID, noteID int) error {
	return s.notes.Delete(ctx, userID, noteID)
}
