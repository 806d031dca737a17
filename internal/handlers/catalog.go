// Package handlers holds the compiled-in command handlers that command
// descriptors refer to by name.
package handlers

import (
	"log/slog"

	"discord-slash-bot/internal/adapters/discord/commands"

	"github.com/bwmarrin/discordgo"
)

// Catalog returns every built-in handler keyed by the name descriptors use
// in their "execute" and "autocomplete" fields.
func Catalog() commands.Catalog {
	return commands.Catalog{
		Handlers: map[string]commands.HandlerFactory{
			"ping":   static(Ping),
			"server": static(Server),
			"user":   static(User),
			"echo":   static(Echo),
			"guide":  static(Guide),
			"reply":  NewReply,
		},
		Autocompleters: map[string]commands.AutocompleteHandler{
			"guide": GuideAutocomplete,
		},
	}
}

func ReadyHandler(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Ready! Logged in as " + r.User.String())
}

func static(h commands.Handler) commands.HandlerFactory {
	return func(map[string]string) (commands.Handler, error) {
		return h, nil
	}
}
