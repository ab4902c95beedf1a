package corpus

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/clozequiz/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/corpus/mock_repository.go -package=mock_corpus

// CardRow is a card ready to be inserted, with language codes resolved to IDs.
type CardRow struct {
	FromLang     int64
	ToLang       int64
	FromID       int64
	ToID         int64
	FromText     string
	OriginalText string
	Tokens       database.StringList
}

// CorpusRepository defines operations on languages and cards.
type CorpusRepository interface {
	ListLanguages(ctx context.Context) ([]Language, error)
	UpsertLanguages(ctx context.Context, languages []Language) error
	BatchCreateCards(ctx context.Context, cards []CardRow) error
	Draw(ctx context.Context, query DrawQuery) ([]DrawnCard, error)
}

// DBCorpusRepository implements CorpusRepository on SQL.
type DBCorpusRepository struct {
	db *sqlx.DB
}

// NewDBCorpusRepository creates a new DBCorpusRepository.
func NewDBCorpusRepository(db *sqlx.DB) *DBCorpusRepository {
	return &DBCorpusRepository{db: db}
}

// ListLanguages returns all languages ordered by name.
func (r *DBCorpusRepository) ListLanguages(ctx context.Context) ([]Language, error) {
	var languages []Language
	if err := r.db.SelectContext(ctx, &languages, "SELECT id, iso693_3, name FROM languages ORDER BY name"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(languages) > %w", err)
	}
	return languages, nil
}

// UpsertLanguages inserts unknown languages and renames known ones whose name changed.
func (r *DBCorpusRepository) UpsertLanguages(ctx context.Context, languages []Language) error {
	if len(languages) == 0 {
		return nil
	}

	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		var existing []Language
		if err := tx.SelectContext(ctx, &existing, "SELECT id, iso693_3, name FROM languages"); err != nil {
			return fmt.Errorf("tx.SelectContext(languages) > %w", err)
		}
		names := make(map[string]string, len(existing))
		for _, l := range existing {
			names[l.ISO693_3] = l.Name
		}

		var inserts []Language
		for _, l := range languages {
			name, ok := names[l.ISO693_3]
			if !ok {
				inserts = append(inserts, l)
				continue
			}
			if name == l.Name {
				continue
			}
			if _, err := tx.ExecContext(ctx,
				tx.Rebind("UPDATE languages SET name = ? WHERE iso693_3 = ?"),
				l.Name, l.ISO693_3); err != nil {
				return fmt.Errorf("update language %s: %w", l.ISO693_3, err)
			}
		}
		if len(inserts) == 0 {
			return nil
		}

		query := database.BuildMultiRowInsert("languages", []string{"iso693_3", "name"}, len(inserts))
		args := make([]any, 0, len(inserts)*2)
		for _, l := range inserts {
			args = append(args, l.ISO693_3, l.Name)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
			return fmt.Errorf("insert languages: %w", err)
		}
		return nil
	})
}

// BatchCreateCards inserts cards in a single transaction using a multi-row INSERT.
func (r *DBCorpusRepository) BatchCreateCards(ctx context.Context, cards []CardRow) error {
	if len(cards) == 0 {
		return nil
	}

	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		columns := []string{"from_lang", "to_lang", "from_id", "to_id", "from_txt", "original_txt", "to_tokens"}
		query := database.BuildMultiRowInsert("cards", columns, len(cards))

		args := make([]any, 0, len(cards)*len(columns))
		for _, c := range cards {
			args = append(args, c.FromLang, c.ToLang, c.FromID, c.ToID, c.FromText, c.OriginalText, c.Tokens)
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
			return fmt.Errorf("insert cards: %w", err)
		}
		return nil
	})
}

const drawQuery = `SELECT
	fl.name AS from_language,
	tl.name AS to_language,
	fl.iso693_3 AS from_language_code,
	tl.iso693_3 AS to_language_code,
	c.from_id,
	c.to_id,
	c.from_txt AS from_text,
	c.to_tokens,
	c.original_txt AS to_text,
	COALESCE(n.hint, '') AS hint,
	COALESCE(n.explanation, '') AS explanation
FROM cards c
	JOIN languages fl ON fl.id = c.from_lang
	JOIN languages tl ON tl.id = c.to_lang
	LEFT JOIN card_notes n ON n.from_id = c.from_id AND n.to_id = c.to_id AND n.account_id = ?
WHERE tl.iso693_3 = ?
	AND fl.iso693_3 IN (?)
	AND NOT EXISTS (SELECT 1 FROM issue_reports i WHERE i.account_id = ? AND i.from_id = c.from_id AND i.to_id = c.to_id)
ORDER BY c.from_id, c.to_id
LIMIT ?`

// Draw returns up to query.Limit cards for the language pair that the account
// has not reported, with the account's notes attached. Answered cards stay
// drawable.
func (r *DBCorpusRepository) Draw(ctx context.Context, query DrawQuery) ([]DrawnCard, error) {
	if len(query.SourceLangs) == 0 || query.Limit <= 0 {
		return nil, nil
	}

	q, args, err := sqlx.In(drawQuery,
		query.AccountID, query.TargetLang, query.SourceLangs, query.AccountID, query.Limit)
	if err != nil {
		return nil, fmt.Errorf("sqlx.In(draw cards) > %w", err)
	}
	var cards []DrawnCard
	if err := r.db.SelectContext(ctx, &cards, r.db.Rebind(q), args...); err != nil {
		return nil, fmt.Errorf("db.SelectContext(draw cards) > %w", err)
	}
	return cards, nil
}
