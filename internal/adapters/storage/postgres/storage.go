package postgres

import (
	"context"
	"fmt"

	"discord-slash-bot/internal/adapters/storage/postgres/db"
	"discord-slash-bot/internal/core/domain"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UsageStore keeps the command usage log in PostgreSQL.
type UsageStore struct {
	pool *pgxpool.Pool
	q    *db.Queries
}

func NewUsageStore(ctx context.Context, connString string) (*UsageStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &UsageStore{
		pool: pool,
		q:    db.New(pool),
	}, nil
}

// Migrate creates the usage table if it does not exist yet.
func (s *UsageStore) Migrate(ctx context.Context) error {
	if err := s.q.CreateInvocationsTable(ctx); err != nil {
		return fmt.Errorf("create invocations table: %w", err)
	}
	return nil
}

func (s *UsageStore) RecordInvocation(ctx context.Context, inv domain.Invocation) error {
	err := s.q.InsertInvocation(ctx, db.InsertInvocationParams{
		ID:         pgtype.UUID{Bytes: inv.ID, Valid: true},
		Command:    inv.Command,
		UserID:     inv.UserID,
		GuildID:    pgtype.Text{String: inv.GuildID, Valid: inv.GuildID != ""},
		Outcome:    string(inv.Outcome),
		DurationMs: inv.Duration.Milliseconds(),
		InvokedAt:  pgtype.Timestamptz{Time: inv.At, Valid: true},
	})
	if err != nil {
		return fmt.Errorf("insert invocation: %w", err)
	}
	return nil
}

func (s *UsageStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
