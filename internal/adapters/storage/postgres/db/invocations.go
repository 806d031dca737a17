package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createInvocationsTable = `
CREATE TABLE IF NOT EXISTS command_invocations (
    id          UUID PRIMARY KEY,
    command     TEXT NOT NULL,
    user_id     TEXT NOT NULL,
    guild_id    TEXT,
    outcome     TEXT NOT NULL,
    duration_ms BIGINT NOT NULL,
    invoked_at  TIMESTAMPTZ NOT NULL
)
`

const createInvocationsIndex = `
CREATE INDEX IF NOT EXISTS command_invocations_command_idx ON command_invocations (command, invoked_at)
`

func (q *Queries) CreateInvocationsTable(ctx context.Context) error {
	if _, err := q.db.Exec(ctx, createInvocationsTable); err != nil {
		return err
	}
	_, err := q.db.Exec(ctx, createInvocationsIndex)
	return err
}

const insertInvocation = `
INSERT INTO command_invocations (id, command, user_id, guild_id, outcome, duration_ms, invoked_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

type InsertInvocationParams struct {
	ID         pgtype.UUID
	Command    string
	UserID     string
	GuildID    pgtype.Text
	Outcome    string
	DurationMs int64
	InvokedAt  pgtype.Timestamptz
}

func (q *Queries) InsertInvocation(ctx context.Context, arg InsertInvocationParams) error {
	_, err := q.db.Exec(ctx, insertInvocation,
		arg.ID,
		arg.Command,
		arg.UserID,
		arg.GuildID,
		arg.Outcome,
		arg.DurationMs,
		arg.InvokedAt,
	)
	return err
}
