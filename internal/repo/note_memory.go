package repo

import (
	"context"
	"sync"

	"github.com/rogerio-castellano/notes-api/internal/models"
)

// InMemoryNoteRepository is an in-memory implementation of NoteRepository.
type InMemoryNoteRepository struct {
	mu     sync.Mutex
	notes  []models.Note
	nextID int
}

// NewInMemoryNoteRepository creates a new instance of InMemoryNoteRepository.
func NewInMemoryNoteRepository() *InMemoryNoteRepository {
	return &InMemoryNoteRepository{
		notes:  []models.Note{},
		nextID: 1,
	}
}

// Create adds a new note to the repository.
func (r *InMemoryNoteRepository) Create(_ context.Context, note models.Note) (models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	note.ID = r.nextID
	r.nextID++
	r.notes = append(r.notes, note)
	return note, nil
}

// GetByUserID retrieves all notes owned by the given user.
func (r *InMemoryNoteRepository) GetByUserID(_ context.Context, userID int) ([]models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	owned := []models.Note{}
	for _, n := range r.notes {
		if n.UserID == userID {
			owned = append(owned, n)
		}
	}
	return owned, nil
}

// Update modifies the note matching both noteID and userID. A miss on
// either is a no-op, not an error.
func (r *InMemoryNoteRepository) Update(_ context.Context, userID, noteID int, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, n := range r.notes {
		if n.ID == noteID && n.UserID == userID {
			r.notes[i].Content = content
			return nil
		}
	}
	return nil
}

// Delete removes the note matching both noteID and userID, with the
// same no-op semantics as Update.
func (r *InMemoryNoteRepository) Delete(_ context.Context, userID, noteID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, n := range r.notes {
		if n.ID == noteID && n.UserID == userID {
			r.notes = append(r.notes[:i], r.notes[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *InMemoryNoteRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notes = []models.Note{}
	r.nextID = 1
}
