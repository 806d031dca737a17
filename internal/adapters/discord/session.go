package discord

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// Intents are the gateway intents the bot needs. Slash commands arrive as
// interactions, so only guild metadata is requested.
const Intents = discordgo.IntentsGuilds

func NewSession(token string) (*discordgo.Session, error) {
	discord, err := discordgo.New("Bot " + token)
	if err != nil {
		slog.Error("Failed to create discord session", "error", err)
		return nil, err
	}

	discord.Identify.Intents = Intents

	return discord, nil
}
