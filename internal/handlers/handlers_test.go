package handlers

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"discord-slash-bot/internal/adapters/discord/commands"
	"discord-slash-bot/internal/adapters/discord/formatting"

	"github.com/bwmarrin/discordgo"
)

type mockDiscordSession struct {
	guildWithCountsFunc func(guildID string) (*discordgo.Guild, error)
	sendFunc            func(channelID string, data *discordgo.MessageSend) (*discordgo.Message, error)

	responses []*discordgo.InteractionResponse
	edits     []string
	followups []string
	sentTo    []string
	sent      []*discordgo.MessageSend
}

func (m *mockDiscordSession) InteractionRespond(i *discordgo.Interaction, resp *discordgo.InteractionResponse, opts ...discordgo.RequestOption) error {
	m.responses = append(m.responses, resp)
	return nil
}

func (m *mockDiscordSession) InteractionResponseEdit(i *discordgo.Interaction, edit *discordgo.WebhookEdit, opts ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.edits = append(m.edits, *edit.Content)
	return &discordgo.Message{}, nil
}

func (m *mockDiscordSession) FollowupMessageCreate(i *discordgo.Interaction, wait bool, params *discordgo.WebhookParams, opts ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.followups = append(m.followups, params.Content)
	return &discordgo.Message{}, nil
}

func (m *mockDiscordSession) GuildWithCounts(guildID string, opts ...discordgo.RequestOption) (*discordgo.Guild, error) {
	if m.guildWithCountsFunc != nil {
		return m.guildWithCountsFunc(guildID)
	}
	return &discordgo.Guild{ID: guildID}, nil
}

func (m *mockDiscordSession) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, opts ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.sentTo = append(m.sentTo, channelID)
	m.sent = append(m.sent, data)
	if m.sendFunc != nil {
		return m.sendFunc(channelID, data)
	}
	return &discordgo.Message{}, nil
}

func (m *mockDiscordSession) lastContent(t *testing.T) string {
	t.Helper()
	if len(m.responses) == 0 {
		t.Fatal("expected an interaction response")
	}
	return m.responses[len(m.responses)-1].Data.Content
}

func newInteraction(session *mockDiscordSession, name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *commands.Interaction {
	return commands.NewInteraction(session, &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:    discordgo.InteractionApplicationCommand,
			GuildID: "guild-1",
			Member: &discordgo.Member{
				User:     &discordgo.User{ID: "user-1", Username: "alice"},
				JoinedAt: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			},
			Data: discordgo.ApplicationCommandInteractionData{Name: name, Options: opts},
		},
	})
}

func stringOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: value}
}

func assertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCatalog_ResolvesEveryBuiltin(t *testing.T) {
	catalog := Catalog()

	for _, name := range []string{"ping", "server", "user", "echo", "guide", "reply"} {
		t.Run(name, func(t *testing.T) {
			h, err := catalog.Handler(name, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if h == nil {
				t.Fatal("expected handler")
			}
		})
	}

	if _, err := catalog.Autocompleter("guide"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPing(t *testing.T) {
	pingDelay = 0
	t.Cleanup(func() { pingDelay = 2 * time.Second })

	session := &mockDiscordSession{}
	if err := Ping(context.Background(), newInteraction(session, "ping")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertEqual(t, session.lastContent(t), "Pong!")
	assertEqual(t, len(session.followups), 1)
	assertEqual(t, session.followups[0], "Pong again!")
}

func TestPing_StopsWhenContextDone(t *testing.T) {
	session := &mockDiscordSession{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Ping(ctx, newInteraction(session, "ping"))

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	assertEqual(t, len(session.followups), 0)
}

func TestServer(t *testing.T) {
	tests := []struct {
		name  string
		guild *discordgo.Guild
		want  string
	}{
		{
			name:  "approximate count",
			guild: &discordgo.Guild{Name: "MyGuild", ApproximateMemberCount: 42},
			want:  "This server is MyGuild and has 42 members.",
		},
		{
			name:  "approximate count preferred over cached count",
			guild: &discordgo.Guild{Name: "MyGuild", MemberCount: 7, ApproximateMemberCount: 42},
			want:  "This server is MyGuild and has 42 members.",
		},
		{
			name:  "falls back to member count",
			guild: &discordgo.Guild{Name: "MyGuild", MemberCount: 42},
			want:  "This server is MyGuild and has 42 members.",
		},
		{
			name:  "approximate count with grouping",
			guild: &discordgo.Guild{Name: "Big", ApproximateMemberCount: 12345},
			want:  "This server is Big and has 12,345 members.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var requested string
			session := &mockDiscordSession{
				guildWithCountsFunc: func(guildID string) (*discordgo.Guild, error) {
					requested = guildID
					return tt.guild, nil
				},
			}

			if err := Server(context.Background(), newInteraction(session, "server")); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertEqual(t, session.lastContent(t), tt.want)
			assertEqual(t, requested, "guild-1")
		})
	}
}

func TestServer_GuildLookupFails(t *testing.T) {
	session := &mockDiscordSession{
		guildWithCountsFunc: func(guildID string) (*discordgo.Guild, error) { return nil, errors.New("unknown guild") },
	}

	if err := Server(context.Background(), newInteraction(session, "server")); err == nil {
		t.Fatal("expected error")
	}
	assertEqual(t, len(session.responses), 0)
}

func TestUser(t *testing.T) {
	session := &mockDiscordSession{}

	if err := User(context.Background(), newInteraction(session, "user")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := session.lastContent(t)
	if !strings.Contains(got, "alice") || !strings.Contains(got, "2023") {
		t.Errorf("unexpected reply: %q", got)
	}
}

func TestUser_NoDateOutsideGuild(t *testing.T) {
	session := &mockDiscordSession{}
	in := commands.NewInteraction(session, &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			User: &discordgo.User{ID: "user-2", Username: "bob"},
			Data: discordgo.ApplicationCommandInteractionData{Name: "user"},
		},
	})

	if err := User(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertEqual(t, session.lastContent(t), formatting.MsgUserInfo("bob", formatting.MsgNoDate))
}

func TestEcho_WithoutChannelEditsReply(t *testing.T) {
	session := &mockDiscordSession{}
	in := newInteraction(session, "echo",
		stringOpt("message", "hello"),
		&discordgo.ApplicationCommandInteractionDataOption{Name: "ephemeral", Type: discordgo.ApplicationCommandOptionBoolean, Value: true},
	)

	if err := Echo(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertEqual(t, session.responses[0].Type, discordgo.InteractionResponseDeferredChannelMessageWithSource)
	assertEqual(t, session.responses[0].Data.Flags, discordgo.MessageFlagsEphemeral)
	assertEqual(t, len(session.edits), 1)
	assertEqual(t, session.edits[0], "hello")
	assertEqual(t, len(session.sent), 0)
}

func TestEcho_ToChannel(t *testing.T) {
	session := &mockDiscordSession{}
	event := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:    discordgo.InteractionApplicationCommand,
			GuildID: "guild-1",
			Member:  &discordgo.Member{User: &discordgo.User{ID: "user-1"}},
			Data: discordgo.ApplicationCommandInteractionData{
				Name: "echo",
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					stringOpt("message", "hello"),
					{Name: "channel", Type: discordgo.ApplicationCommandOptionChannel, Value: "c1"},
					{Name: "attachment", Type: discordgo.ApplicationCommandOptionAttachment, Value: "a1"},
				},
				Resolved: &discordgo.ApplicationCommandInteractionDataResolved{
					Channels:    map[string]*discordgo.Channel{"c1": {ID: "c1", Name: "general", Type: discordgo.ChannelTypeGuildText}},
					Attachments: map[string]*discordgo.MessageAttachment{"a1": {ID: "a1", URL: "https://cdn.example/cat.png"}},
				},
			},
		},
	}

	if err := Echo(context.Background(), commands.NewInteraction(session, event)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertEqual(t, len(session.sent), 1)
	assertEqual(t, session.sentTo[0], "c1")
	assertEqual(t, session.sent[0].Content, "hello\nhttps://cdn.example/cat.png")
	assertEqual(t, session.edits[0], "Message sent to general")
	assertEqual(t, session.responses[0].Data.Flags, discordgo.MessageFlags(0))
}

func TestEcho_ChannelSendFails(t *testing.T) {
	session := &mockDiscordSession{
		sendFunc: func(channelID string, data *discordgo.MessageSend) (*discordgo.Message, error) {
			return nil, errors.New("missing access")
		},
	}
	in := newInteraction(session, "echo",
		stringOpt("message", "hello"),
		&discordgo.ApplicationCommandInteractionDataOption{Name: "channel", Type: discordgo.ApplicationCommandOptionChannel, Value: "c1"},
	)

	err := Echo(context.Background(), in)

	if err == nil || !strings.Contains(err.Error(), "missing access") {
		t.Errorf("expected send error, got %v", err)
	}
	assertEqual(t, in.Deferred(), true)
	assertEqual(t, in.Replied(), false)
}

func TestGuide(t *testing.T) {
	session := &mockDiscordSession{}
	in := newInteraction(session, "guide", stringOpt("query", "Threads"), stringOpt("version", "v14"))

	if err := Guide(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertEqual(t, session.lastContent(t), "Query: Threads, Version: v14")
}

func TestGuideAutocomplete(t *testing.T) {
	tests := []struct {
		name    string
		focused string
		typed   string
		want    []string
	}{
		{"query prefix", "query", "Popular", []string{"Popular Topics: Threads", "Popular Topics: Embed preview"}},
		{"version prefix", "version", "v1", []string{"v11", "v12", "v13", "v14"}},
		{"empty prefix lists all", "version", "", guideVersions},
		{"no match", "query", "zzz", nil},
		{"unknown option", "other", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := &mockDiscordSession{}
			in := commands.NewInteraction(session, &discordgo.InteractionCreate{
				Interaction: &discordgo.Interaction{
					Type: discordgo.InteractionApplicationCommandAutocomplete,
					Data: discordgo.ApplicationCommandInteractionData{
						Name: "guide",
						Options: []*discordgo.ApplicationCommandInteractionDataOption{
							{Name: tt.focused, Type: discordgo.ApplicationCommandOptionString, Value: tt.typed, Focused: true},
						},
					},
				},
			})

			if err := GuideAutocomplete(context.Background(), in); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			resp := session.responses[0]
			assertEqual(t, resp.Type, discordgo.InteractionApplicationCommandAutocompleteResult)
			assertEqual(t, len(resp.Data.Choices), len(tt.want))
			for i, c := range resp.Data.Choices {
				assertEqual(t, c.Name, tt.want[i])
			}
		})
	}
}

func TestFilterChoices_CapsAtLimit(t *testing.T) {
	source := make([]string, 40)
	for i := range source {
		source[i] = "topic"
	}

	assertEqual(t, len(filterChoices(source, "t")), maxChoices)
}

func TestNewReply(t *testing.T) {
	tests := []struct {
		name string
		args map[string]string
		want string
	}{
		{"configured content", map[string]string{"content": "Hi there"}, "Hi there"},
		{"default content", nil, formatting.MsgEmptyCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewReply(tt.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			session := &mockDiscordSession{}
			if err := h(context.Background(), newInteraction(session, "custom")); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertEqual(t, session.lastContent(t), tt.want)
		})
	}
}
