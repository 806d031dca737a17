package handlers

import (
	"context"
	"strings"

	"discord-slash-bot/internal/adapters/discord/commands"
	"discord-slash-bot/internal/adapters/discord/formatting"

	"github.com/bwmarrin/discordgo"
)

const maxChoices = 25

var (
	guideTopics = []string{
		"Popular Topics: Threads",
		"Sharding: Getting started",
		"Library: Voice Connections",
		"Interactions: Replying to slash commands",
		"Popular Topics: Embed preview",
	}
	guideVersions = []string{"v9", "v11", "v12", "v13", "v14"}
)

func Guide(ctx context.Context, in *commands.Interaction) error {
	query, _ := in.StringOption("query")
	version, _ := in.StringOption("version")
	return in.Reply(formatting.MsgGuideQuery(query, version))
}

// GuideAutocomplete suggests topics or versions starting with what the user
// has typed so far.
func GuideAutocomplete(ctx context.Context, in *commands.Interaction) error {
	focused := in.FocusedOption()
	if focused == nil {
		return in.Suggest(nil)
	}

	var source []string
	switch focused.Name {
	case "query":
		source = guideTopics
	case "version":
		source = guideVersions
	}

	typed, _ := focused.Value.(string)
	return in.Suggest(filterChoices(source, typed))
}

func filterChoices(source []string, prefix string) []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(source))
	for _, s := range source {
		if len(choices) == maxChoices {
			break
		}
		if strings.HasPrefix(s, prefix) {
			choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: s, Value: s})
		}
	}
	return choices
}
