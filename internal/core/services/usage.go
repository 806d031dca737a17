package services

import (
	"context"
	"time"

	"discord-slash-bot/internal/core/domain"
	"discord-slash-bot/internal/core/ports"

	"github.com/google/uuid"
)

type UsageService struct {
	repo  ports.UsageRepository
	now   func() time.Time
	newID func() uuid.UUID
}

func NewUsageService(repo ports.UsageRepository) *UsageService {
	return &UsageService{
		repo:  repo,
		now:   time.Now,
		newID: uuid.New,
	}
}

// Record stores one invocation stamped with a fresh id and the current time.
func (s *UsageService) Record(ctx context.Context, command, userID, guildID string, outcome domain.Outcome, took time.Duration) error {
	return s.repo.RecordInvocation(ctx, domain.Invocation{
		ID:       s.newID(),
		Command:  command,
		UserID:   userID,
		GuildID:  guildID,
		Outcome:  outcome,
		Duration: took,
		At:       s.now().UTC(),
	})
}
