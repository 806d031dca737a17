package handlers

import (
	"context"
	"fmt"
	"log/slog"

	"discord-slash-bot/internal/adapters/discord/commands"
	"discord-slash-bot/internal/adapters/discord/formatting"

	"github.com/bwmarrin/discordgo"
)

const msgNoMessage = "No message provided"

// Echo repeats the message option, either into the chosen text channel or
// as the deferred reply itself.
func Echo(ctx context.Context, in *commands.Interaction) error {
	content, ok := in.StringOption("message")
	if !ok || content == "" {
		content = msgNoMessage
	}
	ephemeral, _ := in.BoolOption("ephemeral")

	if att := in.AttachmentOption("attachment"); att != nil {
		content += "\n" + att.URL
	}

	if err := in.Defer(ephemeral); err != nil {
		return err
	}

	ch := in.ChannelOption("channel")
	if ch == nil || !isTextBased(ch.Type) {
		slog.Debug("No text channel provided, echoing in reply", "user", in.UserID())
		return in.EditReply(content)
	}

	slog.Debug("Sending echo to channel", "channel_id", ch.ID, "user", in.UserID())
	if _, err := in.Session().ChannelMessageSendComplex(ch.ID, &discordgo.MessageSend{Content: content}); err != nil {
		return fmt.Errorf("send to channel %s: %w", ch.ID, err)
	}

	name := ch.Name
	if name == "" {
		name = "<#" + ch.ID + ">"
	}
	return in.EditReply(formatting.MsgMessageSent(name))
}

func isTextBased(t discordgo.ChannelType) bool {
	switch t {
	case discordgo.ChannelTypeGuildText,
		discordgo.ChannelTypeDM,
		discordgo.ChannelTypeGroupDM,
		discordgo.ChannelTypeGuildNews,
		discordgo.ChannelTypeGuildNewsThread,
		discordgo.ChannelTypeGuildPublicThread,
		discordgo.ChannelTypeGuildPrivateThread,
		discordgo.ChannelTypeGuildVoice:
		return true
	}
	return false
}
