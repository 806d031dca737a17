package commands

import (
	"context"

	"discord-slash-bot/internal/adapters/discord/formatting"

	"github.com/bwmarrin/discordgo"
)

type Middleware func(Handler) Handler

func WithAdmin(next Handler) Handler {
	return func(ctx context.Context, in *Interaction) error {
		m := in.Member()
		if m == nil || m.Permissions&discordgo.PermissionAdministrator == 0 {
			return in.ReplyEphemeral(formatting.MsgAdminRequired)
		}
		return next(ctx, in)
	}
}

func WithGuildOnly(next Handler) Handler {
	return func(ctx context.Context, in *Interaction) error {
		if in.GuildID() == "" {
			return in.ReplyEphemeral(formatting.MsgGuildOnly)
		}
		return next(ctx, in)
	}
}

// Chain wraps h so that the first middleware runs outermost.
func Chain(h Handler, mws ...Middleware) Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
