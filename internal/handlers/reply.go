package handlers

import (
	"context"

	"discord-slash-bot/internal/adapters/discord/commands"
	"discord-slash-bot/internal/adapters/discord/formatting"
)

// NewReply builds a handler answering with args["content"]. Scaffolded
// commands start out with it.
func NewReply(args map[string]string) (commands.Handler, error) {
	content := args["content"]
	if content == "" {
		content = formatting.MsgEmptyCommand
	}

	return func(ctx context.Context, in *commands.Interaction) error {
		return in.Reply(content)
	}, nil
}
