package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"discord-slash-bot/internal/metrics"
)

// Cooldowns tracks, per command and user, when the user may invoke the
// command again. Entries expire lazily: an expired entry is treated as
// absent and replaced on the next accepted invocation. Sweep drops expired
// entries to bound memory.
type Cooldowns struct {
	mu      sync.Mutex
	entries map[string]map[string]time.Time
	now     func() time.Time
}

func NewCooldowns() *Cooldowns {
	return &Cooldowns{
		entries: make(map[string]map[string]time.Time),
		now:     time.Now,
	}
}

// Acquire accepts the invocation and starts a cooldown of length d, unless
// one is still running. It returns the expiry of the cooldown that now
// applies and whether the invocation was accepted.
func (c *Cooldowns) Acquire(command, userID string, d time.Duration) (time.Time, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	users, ok := c.entries[command]
	if !ok {
		users = make(map[string]time.Time)
		c.entries[command] = users
	}

	if expiresAt, ok := users[userID]; ok && now.Before(expiresAt) {
		return expiresAt, false
	}

	expiresAt := now.Add(d)
	users[userID] = expiresAt
	return expiresAt, true
}

// Sweep removes expired entries and returns how many were dropped.
func (c *Cooldowns) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for command, users := range c.entries {
		for userID, expiresAt := range users {
			if !now.Before(expiresAt) {
				delete(users, userID)
				removed++
			}
		}
		if len(users) == 0 {
			delete(c.entries, command)
		}
	}
	return removed
}

func (c *Cooldowns) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, users := range c.entries {
		n += len(users)
	}
	return n
}

// Run sweeps every interval until ctx is done.
func (c *Cooldowns) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := c.Sweep(); removed > 0 {
				slog.Debug("Expired cooldowns removed", "count", removed)
			}
			metrics.ActiveCooldowns.Set(float64(c.Len()))
		}
	}
}
