package repo

import (
	"context"

	"github.com/rogerio-castellano/notes-api/internal/models"
)

// NoteRepository defines the interface for note data operations. Every
// method that touches an existing note matches on both the note id and
// the owner id in a single statement: a request against someone else's
// note affects zero rows, which is not reported as an error.
type NoteRepository interface {
	Create(ctx context.Context, note models.Note) (models.Note, error)
	GetByUserID(ctx context.Context, userID int) ([]models.Note, error)
	Update(ctx context.Context, userID, noteID int, content string) error
	Delete(ctx context.Context, userID, noteID int) error
}
