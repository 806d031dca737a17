package commands

import (
	"errors"

	"github.com/bwmarrin/discordgo"
)

// ErrAlreadyAcknowledged is returned when a second initial response is
// attempted for the same interaction.
var ErrAlreadyAcknowledged = errors.New("interaction has already been replied to or deferred")

// Interaction wraps one inbound interaction and remembers how it has been
// answered so far. It is not safe for concurrent use.
type Interaction struct {
	session  DiscordSession
	event    *discordgo.InteractionCreate
	replied  bool
	deferred bool
}

func NewInteraction(s DiscordSession, i *discordgo.InteractionCreate) *Interaction {
	return &Interaction{session: s, event: i}
}

func (in *Interaction) Session() DiscordSession {
	return in.session
}

func (in *Interaction) CommandName() string {
	return in.event.ApplicationCommandData().Name
}

func (in *Interaction) GuildID() string {
	return in.event.GuildID
}

func (in *Interaction) Member() *discordgo.Member {
	return in.event.Member
}

// User is the invoking user, whether the command ran in a guild or a DM.
func (in *Interaction) User() *discordgo.User {
	if in.event.Member != nil && in.event.Member.User != nil {
		return in.event.Member.User
	}
	return in.event.User
}

func (in *Interaction) UserID() string {
	if u := in.User(); u != nil {
		return u.ID
	}
	return ""
}

func (in *Interaction) Replied() bool {
	return in.replied
}

func (in *Interaction) Deferred() bool {
	return in.deferred
}

func (in *Interaction) Reply(content string) error {
	return in.respondMessage(content, 0)
}

func (in *Interaction) ReplyEphemeral(content string) error {
	return in.respondMessage(content, discordgo.MessageFlagsEphemeral)
}

// Defer acknowledges the interaction now; the content follows via EditReply.
func (in *Interaction) Defer(ephemeral bool) error {
	if in.replied || in.deferred {
		return ErrAlreadyAcknowledged
	}

	err := in.session.InteractionRespond(in.event.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: ephemeralFlag(ephemeral)},
	})
	if err != nil {
		return err
	}

	in.deferred = true
	return nil
}

func (in *Interaction) EditReply(content string) error {
	if _, err := in.session.InteractionResponseEdit(in.event.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	}); err != nil {
		return err
	}

	in.replied = true
	return nil
}

func (in *Interaction) FollowUp(content string, ephemeral bool) error {
	_, err := in.session.FollowupMessageCreate(in.event.Interaction, true, &discordgo.WebhookParams{
		Content: content,
		Flags:   ephemeralFlag(ephemeral),
	})
	return err
}

// Suggest answers an autocomplete request.
func (in *Interaction) Suggest(choices []*discordgo.ApplicationCommandOptionChoice) error {
	return in.session.InteractionRespond(in.event.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	})
}

func (in *Interaction) StringOption(name string) (string, bool) {
	opt := findOption(in.options(), name)
	if opt == nil || opt.Type != discordgo.ApplicationCommandOptionString {
		return "", false
	}
	return opt.StringValue(), true
}

func (in *Interaction) BoolOption(name string) (bool, bool) {
	opt := findOption(in.options(), name)
	if opt == nil || opt.Type != discordgo.ApplicationCommandOptionBoolean {
		return false, false
	}
	return opt.BoolValue(), true
}

// ChannelOption returns the resolved channel, or a bare channel carrying
// only the id when the payload did not include it.
func (in *Interaction) ChannelOption(name string) *discordgo.Channel {
	id := in.snowflakeOption(name, discordgo.ApplicationCommandOptionChannel)
	if id == "" {
		return nil
	}

	if resolved := in.event.ApplicationCommandData().Resolved; resolved != nil {
		if ch, ok := resolved.Channels[id]; ok {
			return ch
		}
	}
	return &discordgo.Channel{ID: id}
}

func (in *Interaction) AttachmentOption(name string) *discordgo.MessageAttachment {
	id := in.snowflakeOption(name, discordgo.ApplicationCommandOptionAttachment)
	if id == "" {
		return nil
	}

	if resolved := in.event.ApplicationCommandData().Resolved; resolved != nil {
		return resolved.Attachments[id]
	}
	return nil
}

// FocusedOption is the option the user is typing into during autocomplete.
func (in *Interaction) FocusedOption() *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range in.options() {
		if opt.Focused {
			return opt
		}
	}
	return nil
}

func (in *Interaction) respondMessage(content string, flags discordgo.MessageFlags) error {
	if in.replied || in.deferred {
		return ErrAlreadyAcknowledged
	}

	err := in.session.InteractionRespond(in.event.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   flags,
		},
	})
	if err != nil {
		return err
	}

	in.replied = true
	return nil
}

func (in *Interaction) options() []*discordgo.ApplicationCommandInteractionDataOption {
	return in.event.ApplicationCommandData().Options
}

func (in *Interaction) snowflakeOption(name string, t discordgo.ApplicationCommandOptionType) string {
	opt := findOption(in.options(), name)
	if opt == nil || opt.Type != t {
		return ""
	}
	id, _ := opt.Value.(string)
	return id
}

func findOption(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range opts {
		if opt.Name == name {
			return opt
		}
	}
	return nil
}

func ephemeralFlag(ephemeral bool) discordgo.MessageFlags {
	if ephemeral {
		return discordgo.MessageFlagsEphemeral
	}
	return 0
}
