package postgres

import (
	"context"

	"discord-slash-bot/internal/adapters/storage/postgres/db"

	"github.com/jackc/pgx/v5/pgconn"
)

var _ db.DBTX = (*MockDB)(nil)

// MockDB implements db.DBTX interface
type MockDB struct {
	ExecFunc func(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)

	statements []string
}

func (m *MockDB) Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error) {
	m.statements = append(m.statements, sql)
	if m.ExecFunc != nil {
		return m.ExecFunc(ctx, sql, arguments...)
	}
	return pgconn.CommandTag{}, nil
}
