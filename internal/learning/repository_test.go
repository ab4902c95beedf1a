package learning

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/clozequiz/internal/database"
)

func TestDBLearningRepository_CreateAnswerLog(t *testing.T) {
	tests := []struct {
		name      string
		driver    string
		log       *AnswerLog
		setupMock func(mock sqlmock.Sqlmock)
		wantID    int64
		wantErr   bool
	}{
		{
			name:   "inserts answers as JSON",
			driver: "mysql",
			log: &AnswerLog{
				AccountID:       1,
				FromID:          10,
				ToID:            20,
				ExpectedAnswers: database.StringList{"I", "the"},
				GivenAnswers:    database.StringList{"I", "teh"},
				Correct:         false,
				Repetition:      false,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO answer_logs \\(account_id, from_id, to_id, expected_answers, given_answers, correct, repetition\\)").
					WithArgs(int64(1), int64(10), int64(20), `["I","the"]`, `["I","teh"]`, false, false).
					WillReturnResult(sqlmock.NewResult(5, 1))
			},
			wantID: 5,
		},
		{
			name:   "postgres returns the id",
			driver: "postgres",
			log: &AnswerLog{
				AccountID:       2,
				FromID:          10,
				ToID:            20,
				ExpectedAnswers: database.StringList{"a"},
				GivenAnswers:    database.StringList{"a"},
				Correct:         true,
				Repetition:      true,
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO answer_logs .* VALUES \\(\\$1, \\$2, \\$3, \\$4, \\$5, \\$6, \\$7\\) RETURNING id").
					WithArgs(int64(2), int64(10), int64(20), `["a"]`, `["a"]`, true, true).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
			},
			wantID: 11,
		},
		{
			name:   "db error",
			driver: "mysql",
			log:    &AnswerLog{AccountID: 1, FromID: 10, ToID: 20},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO answer_logs").
					WillReturnError(fmt.Errorf("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewDBLearningRepository(sqlx.NewDb(db, tt.driver))
			tt.setupMock(mock)

			err = repo.CreateAnswerLog(context.Background(), tt.log)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "insert answer_log")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, tt.log.ID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDBLearningRepository_CreateIssueReport(t *testing.T) {
	tests := []struct {
		name      string
		report    *IssueReport
		setupMock func(mock sqlmock.Sqlmock)
		wantID    int64
		wantErr   bool
	}{
		{
			name: "inserts the report",
			report: &IssueReport{
				AccountID:   1,
				FromID:      10,
				ToID:        20,
				IssueType:   "WRONG",
				Description: "bad translation",
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO issue_reports \\(account_id, from_id, to_id, issue_type, description\\)").
					WithArgs(int64(1), int64(10), int64(20), "WRONG", "bad translation").
					WillReturnResult(sqlmock.NewResult(3, 1))
			},
			wantID: 3,
		},
		{
			name:   "db error",
			report: &IssueReport{AccountID: 1, FromID: 10, ToID: 20, IssueType: "OTHER"},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("INSERT INTO issue_reports").
					WillReturnError(fmt.Errorf("duplicate entry"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			repo := NewDBLearningRepository(sqlx.NewDb(db, "mysql"))
			tt.setupMock(mock)

			err = repo.CreateIssueReport(context.Background(), tt.report)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, tt.report.ID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
