package ports

import (
	"context"

	"discord-slash-bot/internal/core/domain"
)

type UsageRepository interface {
	RecordInvocation(ctx context.Context, inv domain.Invocation) error
	Close()
}
