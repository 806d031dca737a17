package commands

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

type mockSession struct {
	respondFunc         func(i *discordgo.Interaction, resp *discordgo.InteractionResponse) error
	editFunc            func(i *discordgo.Interaction, edit *discordgo.WebhookEdit) (*discordgo.Message, error)
	followupFunc        func(i *discordgo.Interaction, wait bool, params *discordgo.WebhookParams) (*discordgo.Message, error)
	guildWithCountsFunc func(guildID string) (*discordgo.Guild, error)
	sendFunc            func(channelID string, data *discordgo.MessageSend) (*discordgo.Message, error)

	responses []*discordgo.InteractionResponse
	edits     []*discordgo.WebhookEdit
	followups []*discordgo.WebhookParams
	sent      []*discordgo.MessageSend
}

func (m *mockSession) InteractionRespond(i *discordgo.Interaction, resp *discordgo.InteractionResponse, opts ...discordgo.RequestOption) error {
	m.responses = append(m.responses, resp)
	if m.respondFunc != nil {
		return m.respondFunc(i, resp)
	}
	return nil
}

func (m *mockSession) InteractionResponseEdit(i *discordgo.Interaction, edit *discordgo.WebhookEdit, opts ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.edits = append(m.edits, edit)
	if m.editFunc != nil {
		return m.editFunc(i, edit)
	}
	return &discordgo.Message{}, nil
}

func (m *mockSession) FollowupMessageCreate(i *discordgo.Interaction, wait bool, params *discordgo.WebhookParams, opts ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.followups = append(m.followups, params)
	if m.followupFunc != nil {
		return m.followupFunc(i, wait, params)
	}
	return &discordgo.Message{}, nil
}

func (m *mockSession) GuildWithCounts(guildID string, opts ...discordgo.RequestOption) (*discordgo.Guild, error) {
	if m.guildWithCountsFunc != nil {
		return m.guildWithCountsFunc(guildID)
	}
	return &discordgo.Guild{ID: guildID}, nil
}

func (m *mockSession) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, opts ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.sent = append(m.sent, data)
	if m.sendFunc != nil {
		return m.sendFunc(channelID, data)
	}
	return &discordgo.Message{ChannelID: channelID}, nil
}

func makeInteraction(name string, iType discordgo.InteractionType) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:    iType,
			GuildID: "guild-1",
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "user-1", Username: "alice"},
			},
			Data: discordgo.ApplicationCommandInteractionData{Name: name},
		},
	}
}

func makeInteractionWithOptions(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	i := makeInteraction(name, discordgo.InteractionApplicationCommand)
	i.Data = discordgo.ApplicationCommandInteractionData{Name: name, Options: opts}
	return i
}

func assertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
