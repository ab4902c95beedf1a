package corpus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/clozequiz/internal/database"
)

const (
	// DefaultBatchSize is the number of cards inserted per transaction.
	DefaultBatchSize = 5000

	// maxPlaceholders is the lowest bound-parameter limit of the supported drivers (SQLite).
	maxPlaceholders = 32766
	cardColumns     = 7
)

// ImportResult counts the outcome of an import.
type ImportResult struct {
	Imported int
	Skipped  int
}

// Importer loads card records into a CorpusRepository.
type Importer struct {
	repo      CorpusRepository
	batchSize int
	logger    *slog.Logger
}

// NewImporter creates an Importer. A non-positive batchSize uses DefaultBatchSize.
func NewImporter(repo CorpusRepository, batchSize int, logger *slog.Logger) *Importer {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if batchSize*cardColumns > maxPlaceholders {
		batchSize = maxPlaceholders / cardColumns
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Importer{
		repo:      repo,
		batchSize: batchSize,
		logger:    logger,
	}
}

// Import inserts records in batches. Records whose languages are unknown are
// skipped with a warning; languages must be imported first.
func (i *Importer) Import(ctx context.Context, records []CardRecord) (ImportResult, error) {
	var result ImportResult

	languages, err := i.repo.ListLanguages(ctx)
	if err != nil {
		return result, fmt.Errorf("repo.ListLanguages() > %w", err)
	}
	ids := make(map[string]int64, len(languages))
	for _, l := range languages {
		ids[l.ISO693_3] = l.ID
	}

	batch := make([]CardRow, 0, i.batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := i.repo.BatchCreateCards(ctx, batch); err != nil {
			return fmt.Errorf("repo.BatchCreateCards() > %w", err)
		}
		result.Imported += len(batch)
		i.logger.Info("imported cards", "total", result.Imported)
		batch = batch[:0]
		return nil
	}

	for _, record := range records {
		fromLang, fromOK := ids[record.FromLang]
		toLang, toOK := ids[record.ToLang]
		if !fromOK || !toOK {
			i.logger.Warn("skipping card with unknown language",
				"from_id", record.FromID,
				"to_id", record.ToID,
				"from_lang", record.FromLang,
				"to_lang", record.ToLang,
			)
			result.Skipped++
			continue
		}

		batch = append(batch, CardRow{
			FromLang:     fromLang,
			ToLang:       toLang,
			FromID:       record.FromID,
			ToID:         record.ToID,
			FromText:     record.FromText,
			OriginalText: record.OriginalText,
			Tokens:       database.StringList(record.Tokens),
		})
		if len(batch) == i.batchSize {
			if err := flush(); err != nil {
				return result, err
			}
		}
	}
	if err := flush(); err != nil {
		return result, err
	}
	return result, nil
}
