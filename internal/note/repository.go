// Package note stores the learner's personal notes on sentence pairs.
package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/clozequiz/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/note/mock_repository.go -package=mock_note

// CardNote is an account's hint and explanation for a sentence pair.
type CardNote struct {
	AccountID   int64     `db:"account_id"`
	FromID      int64     `db:"from_id"`
	ToID        int64     `db:"to_id"`
	Hint        string    `db:"hint"`
	Explanation string    `db:"explanation"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// NoteRepository defines operations for managing card notes.
type NoteRepository interface {
	Find(ctx context.Context, accountID, fromID, toID int64) (*CardNote, error)
	Upsert(ctx context.Context, note *CardNote) error
}

// DBNoteRepository implements NoteRepository on SQL.
type DBNoteRepository struct {
	db *sqlx.DB
}

// NewDBNoteRepository creates a new DBNoteRepository.
func NewDBNoteRepository(db *sqlx.DB) *DBNoteRepository {
	return &DBNoteRepository{db: db}
}

// Find returns the note for a sentence pair, or nil if there is none.
func (r *DBNoteRepository) Find(ctx context.Context, accountID, fromID, toID int64) (*CardNote, error) {
	var n CardNote
	err := r.db.GetContext(ctx, &n,
		r.db.Rebind("SELECT * FROM card_notes WHERE account_id = ? AND from_id = ? AND to_id = ?"),
		accountID, fromID, toID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(card_note) > %w", err)
	}
	return &n, nil
}

// Upsert stores the note, replacing the previous one for the same sentence pair.
func (r *DBNoteRepository) Upsert(ctx context.Context, note *CardNote) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		var count int
		if err := tx.GetContext(ctx, &count,
			tx.Rebind("SELECT COUNT(*) FROM card_notes WHERE account_id = ? AND from_id = ? AND to_id = ?"),
			note.AccountID, note.FromID, note.ToID); err != nil {
			return fmt.Errorf("tx.GetContext(count card_notes) > %w", err)
		}

		if count > 0 {
			if _, err := tx.ExecContext(ctx,
				tx.Rebind("UPDATE card_notes SET hint = ?, explanation = ?, updated_at = CURRENT_TIMESTAMP WHERE account_id = ? AND from_id = ? AND to_id = ?"),
				note.Hint, note.Explanation, note.AccountID, note.FromID, note.ToID); err != nil {
				return fmt.Errorf("tx.ExecContext(update card_note) > %w", err)
			}
			return nil
		}

		if _, err := tx.ExecContext(ctx,
			tx.Rebind("INSERT INTO card_notes (account_id, from_id, to_id, hint, explanation) VALUES (?, ?, ?, ?, ?)"),
			note.AccountID, note.FromID, note.ToID, note.Hint, note.Explanation); err != nil {
			return fmt.Errorf("tx.ExecContext(insert card_note) > %w", err)
		}
		return nil
	})
}
