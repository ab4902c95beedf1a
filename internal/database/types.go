package database

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// StringList is a list of strings stored as a JSON array in a text column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("json.Marshal() > %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return fmt.Errorf("json.Unmarshal() > %w", err)
	}
	*l = list
	return nil
}

// InsertReturningID runs an INSERT written with ? placeholders and returns the
// generated id. PostgreSQL has no LastInsertId, so RETURNING is used there.
func InsertReturningID(ctx context.Context, db sqlx.ExtContext, query string, args ...any) (int64, error) {
	if db.DriverName() == DriverPostgres {
		var id int64
		if err := sqlx.GetContext(ctx, db, &id, db.Rebind(query+" RETURNING id"), args...); err != nil {
			return 0, fmt.Errorf("sqlx.GetContext() > %w", err)
		}
		return id, nil
	}

	result, err := db.ExecContext(ctx, db.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("db.ExecContext() > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("result.LastInsertId() > %w", err)
	}
	return id, nil
}
