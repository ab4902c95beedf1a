// Package learning stores what a learner did with a card: answers and issue reports.
package learning

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/clozequiz/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/learning/mock_repository.go -package=mock_learning

// AnswerLog is one graded card.
type AnswerLog struct {
	ID              int64               `db:"id"`
	AccountID       int64               `db:"account_id"`
	FromID          int64               `db:"from_id"`
	ToID            int64               `db:"to_id"`
	ExpectedAnswers database.StringList `db:"expected_answers"`
	GivenAnswers    database.StringList `db:"given_answers"`
	Correct         bool                `db:"correct"`
	Repetition      bool                `db:"repetition"`
	CreatedAt       time.Time           `db:"created_at"`
}

// IssueReport flags a card as defective for an account.
type IssueReport struct {
	ID          int64     `db:"id"`
	AccountID   int64     `db:"account_id"`
	FromID      int64     `db:"from_id"`
	ToID        int64     `db:"to_id"`
	IssueType   string    `db:"issue_type"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// LearningRepository defines operations for recording study activity.
type LearningRepository interface {
	CreateAnswerLog(ctx context.Context, log *AnswerLog) error
	CreateIssueReport(ctx context.Context, report *IssueReport) error
}

// DBLearningRepository implements LearningRepository on SQL.
type DBLearningRepository struct {
	db *sqlx.DB
}

// NewDBLearningRepository creates a new DBLearningRepository.
func NewDBLearningRepository(db *sqlx.DB) *DBLearningRepository {
	return &DBLearningRepository{db: db}
}

// CreateAnswerLog inserts an answer log and sets its ID.
func (r *DBLearningRepository) CreateAnswerLog(ctx context.Context, log *AnswerLog) error {
	id, err := database.InsertReturningID(ctx, r.db,
		`INSERT INTO answer_logs (account_id, from_id, to_id, expected_answers, given_answers, correct, repetition)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		log.AccountID, log.FromID, log.ToID, log.ExpectedAnswers, log.GivenAnswers, log.Correct, log.Repetition)
	if err != nil {
		return fmt.Errorf("insert answer_log: %w", err)
	}
	log.ID = id
	return nil
}

// CreateIssueReport inserts an issue report and sets its ID.
func (r *DBLearningRepository) CreateIssueReport(ctx context.Context, report *IssueReport) error {
	id, err := database.InsertReturningID(ctx, r.db,
		`INSERT INTO issue_reports (account_id, from_id, to_id, issue_type, description)
		VALUES (?, ?, ?, ?, ?)`,
		report.AccountID, report.FromID, report.ToID, report.IssueType, report.Description)
	if err != nil {
		return fmt.Errorf("insert issue_report: %w", err)
	}
	report.ID = id
	return nil
}
