package handlers

import (
	"context"
	"fmt"
	"time"

	"discord-slash-bot/internal/adapters/discord/commands"
	"discord-slash-bot/internal/adapters/discord/formatting"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// pingDelay is a variable so tests do not wait.
var pingDelay = 2 * time.Second

func Ping(ctx context.Context, in *commands.Interaction) error {
	if err := in.Reply("Pong!"); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(pingDelay):
	}

	return in.FollowUp("Pong again!", false)
}

func Server(ctx context.Context, in *commands.Interaction) error {
	guildID := in.GuildID()
	if guildID == "" {
		return in.ReplyEphemeral(formatting.MsgGuildOnly)
	}

	// A plain guild fetch carries no member count; with_counts fills the
	// approximate one.
	guild, err := in.Session().GuildWithCounts(guildID)
	if err != nil {
		return fmt.Errorf("fetch guild %s: %w", guildID, err)
	}

	members := guild.ApproximateMemberCount
	if members == 0 {
		members = guild.MemberCount
	}

	p := message.NewPrinter(language.English)
	return in.Reply(formatting.MsgServerInfo(guild.Name, p.Sprintf("%d", members)))
}

func User(ctx context.Context, in *commands.Interaction) error {
	u := in.User()
	if u == nil {
		return fmt.Errorf("interaction has no user")
	}

	joined := formatting.MsgNoDate
	if m := in.Member(); m != nil && !m.JoinedAt.IsZero() {
		joined = m.JoinedAt.UTC().Format(time.RFC1123)
	}

	return in.Reply(formatting.MsgUserInfo(u.Username, joined))
}
