package domain

import (
	"time"

	"github.com/google/uuid"
)

type Outcome string

const (
	OutcomeOK       Outcome = "ok"
	OutcomeError    Outcome = "error"
	OutcomeCooldown Outcome = "cooldown"
)

// Invocation is one slash command use as seen by the dispatcher.
type Invocation struct {
	ID       uuid.UUID
	Command  string
	UserID   string
	GuildID  string
	Outcome  Outcome
	Duration time.Duration
	At       time.Time
}
