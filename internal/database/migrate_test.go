package database

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	migrations := fstest.MapFS{
		"migrations/sqlite/0001_create_a.sql": {Data: []byte("CREATE TABLE a (id INTEGER)")},
		"migrations/sqlite/0002_create_b.sql": {Data: []byte("CREATE TABLE b (id INTEGER)")},
		"migrations/sqlite/README.md":         {Data: []byte("not a migration")},
		"migrations/mysql/0001_create_a.sql":  {Data: []byte("CREATE TABLE a (id INT)")},
	}

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		want      []string
		wantErr   string
	}{
		{
			name: "applies pending migrations in order",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery("SELECT version FROM schema_migrations").
					WillReturnRows(sqlmock.NewRows([]string{"version"}))
				for _, name := range []string{"0001_create_a.sql", "0002_create_b.sql"} {
					table := name[12:13]
					mock.ExpectBegin()
					mock.ExpectExec(regexp.QuoteMeta(fmt.Sprintf("CREATE TABLE %s (id INTEGER)", table))).
						WillReturnResult(sqlmock.NewResult(0, 0))
					mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schema_migrations (version) VALUES (?)")).
						WithArgs(name).
						WillReturnResult(sqlmock.NewResult(1, 1))
					mock.ExpectCommit()
				}
			},
			want: []string{"0001_create_a.sql", "0002_create_b.sql"},
		},
		{
			name: "skips applied migrations",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery("SELECT version FROM schema_migrations").
					WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("0001_create_a.sql"))
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE b (id INTEGER)")).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schema_migrations (version) VALUES (?)")).
					WithArgs("0002_create_b.sql").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
			want: []string{"0002_create_b.sql"},
		},
		{
			name: "nothing to apply",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery("SELECT version FROM schema_migrations").
					WillReturnRows(sqlmock.NewRows([]string{"version"}).
						AddRow("0001_create_a.sql").
						AddRow("0002_create_b.sql"))
			},
		},
		{
			name: "failed migration is rolled back",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery("SELECT version FROM schema_migrations").
					WillReturnRows(sqlmock.NewRows([]string{"version"}))
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE a (id INTEGER)")).
					WillReturnError(fmt.Errorf("syntax error"))
				mock.ExpectRollback()
			},
			wantErr: "execute migration 0001_create_a.sql: syntax error",
		},
		{
			name: "tracking table cannot be created",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnError(fmt.Errorf("read-only"))
			},
			wantErr: "create schema_migrations table: read-only",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			sqlxDB := sqlx.NewDb(db, "sqlite")
			tt.setupMock(mock)

			got, err := Migrate(context.Background(), sqlxDB, migrations)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMigrate_MissingDriverDirectory(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))

	_, err = Migrate(context.Background(), sqlx.NewDb(db, "postgres"), fstest.MapFS{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fs.ReadDir(migrations/postgres)")
}
