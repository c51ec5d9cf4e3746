package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/rogerio-castellano/notes-api/internal/models"
)

type PostgresNoteRepository struct {
	db *sql.DB
}

func NewPostgresNoteRepository(db *sql.DB) *PostgresNoteRepository {
	return &PostgresNoteRepository{db: db}
}

func (r *PostgresNoteRepository) Create(ctx context.Context, n models.Note) (models.Note, error) {
	query := `INSERT INTO notes (user_id, content) VALUES ($1, $2) RETURNING id`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, n.UserID, n.Content).Scan(&n.ID)
	return n, err
}

func (r *PostgresNoteRepository) GetByUserID(ctx context.Context, userID int) ([]models.Note, error) {
	query := `SELECT id, user_id, content FROM notes WHERE user_id = $1 ORDER BY id`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []models.Note{}
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Content); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// Update rewrites the content of the note matching both noteID and
// userID. Zero rows affected means the note does not exist or belongs
// to another user; either way there is nothing to do and no error.
func (r *PostgresNoteRepository) Update(ctx context.Context, userID, noteID int, content string) error {
	query := `UPDATE notes SET content = $1 WHERE id = $2 AND user_id = $3`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, content, noteID, userID)
	return err
}

// Delete removes the note matching both noteID and userID, with the
// same zero-rows semantics as Update.
func (r *PostgresNoteRepository) Delete(ctx context.Context, userID, noteID int) error {
	query := `DELETE FROM notes WHERE id = $1 AND user_id = $2`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, noteID, userID)
	return err
}
