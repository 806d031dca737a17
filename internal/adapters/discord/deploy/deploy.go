// Package deploy publishes command schemas to Discord and removes them.
package deploy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"
)

// ErrNoMode is returned when neither a global nor a test target was chosen.
var ErrNoMode = errors.New("must specify --global or --test")

type Mode int

const (
	ModeGlobal Mode = iota + 1
	ModeTest
)

func (m Mode) String() string {
	switch m {
	case ModeGlobal:
		return "global"
	case ModeTest:
		return "test"
	default:
		return "unknown"
	}
}

// ParseMode picks the deployment target. Test wins when both are set.
func ParseMode(global, test bool) (Mode, error) {
	switch {
	case test:
		return ModeTest, nil
	case global:
		return ModeGlobal, nil
	default:
		return 0, ErrNoMode
	}
}

// GuildFor returns the guild to scope requests to, empty for global.
func (m Mode) GuildFor(guildID string) string {
	if m == ModeTest {
		return guildID
	}
	return ""
}

// CommandSession is the slice of *discordgo.Session used to manage
// application commands.
type CommandSession interface {
	ApplicationCommandBulkOverwrite(appID, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
	ApplicationCommandDelete(appID, guildID, cmdID string, options ...discordgo.RequestOption) error
}

// deleteInterval spaces out delete requests.
var deleteInterval = 500 * time.Millisecond

// Deploy replaces the full command set of the application, globally when
// guildID is empty or in that guild otherwise.
func Deploy(session CommandSession, appID, guildID string, cmds []*discordgo.ApplicationCommand) ([]*discordgo.ApplicationCommand, error) {
	slog.Info(fmt.Sprintf("Started refreshing %d application (/) commands.", len(cmds)))

	if cmds == nil {
		cmds = []*discordgo.ApplicationCommand{}
	}

	registered, err := session.ApplicationCommandBulkOverwrite(appID, guildID, cmds)
	if err != nil {
		return nil, fmt.Errorf("overwrite commands: %w", err)
	}

	if guildID == "" {
		slog.Info(fmt.Sprintf("Successfully reloaded %d global application (/) commands.", len(registered)))
	} else {
		slog.Info(fmt.Sprintf("Successfully reloaded %d guild application (/) commands for guild %s.", len(registered), guildID))
	}

	for _, cmd := range registered {
		slog.Debug("Registered command", "name", cmd.Name, "id", cmd.ID)
	}
	return registered, nil
}

// Unregister deletes each command id in turn. A failed delete is logged and
// does not stop the rest; all failures are returned joined.
func Unregister(ctx context.Context, session CommandSession, appID, guildID string, ids []string) error {
	scope := "global"
	if guildID != "" {
		scope = "guild"
	}

	limiter := rate.NewLimiter(rate.Every(deleteInterval), 1)

	var errs []error
	for _, id := range ids {
		if err := limiter.Wait(ctx); err != nil {
			errs = append(errs, err)
			break
		}

		if err := session.ApplicationCommandDelete(appID, guildID, id, discordgo.WithContext(ctx)); err != nil {
			slog.Error(fmt.Sprintf("Failed to delete %s command %s", scope, id), "error", err)
			errs = append(errs, fmt.Errorf("delete %s: %w", id, err))
			continue
		}
		slog.Info(fmt.Sprintf("Successfully deleted %s command: %s", scope, id))
	}

	return errors.Join(errs...)
}
