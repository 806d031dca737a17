package loader

import (
	"fmt"
	"time"

	"discord-slash-bot/internal/adapters/discord/commands"

	"github.com/bwmarrin/discordgo"
)

// descriptor is the on-disk shape of a command module.
type descriptor struct {
	Data         *dataSpec         `yaml:"data"`
	Execute      string            `yaml:"execute"`
	Args         map[string]string `yaml:"args"`
	Autocomplete string            `yaml:"autocomplete"`
	Cooldown     *float64          `yaml:"cooldown"`
	AdminOnly    bool              `yaml:"admin_only"`
	GuildOnly    bool              `yaml:"guild_only"`
}

type dataSpec struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description"`
	Options     []optionSpec `yaml:"options"`
}

type optionSpec struct {
	Type         string       `yaml:"type"`
	Name         string       `yaml:"name"`
	Description  string       `yaml:"description"`
	Required     bool         `yaml:"required"`
	Autocomplete bool         `yaml:"autocomplete"`
	MinLength    *int         `yaml:"min_length"`
	MaxLength    int          `yaml:"max_length"`
	Choices      []choiceSpec `yaml:"choices"`
}

type choiceSpec struct {
	Name  string `yaml:"name"`
	Value any    `yaml:"value"`
}

var optionTypes = map[string]discordgo.ApplicationCommandOptionType{
	"string":      discordgo.ApplicationCommandOptionString,
	"integer":     discordgo.ApplicationCommandOptionInteger,
	"boolean":     discordgo.ApplicationCommandOptionBoolean,
	"user":        discordgo.ApplicationCommandOptionUser,
	"channel":     discordgo.ApplicationCommandOptionChannel,
	"role":        discordgo.ApplicationCommandOptionRole,
	"mentionable": discordgo.ApplicationCommandOptionMentionable,
	"number":      discordgo.ApplicationCommandOptionNumber,
	"attachment":  discordgo.ApplicationCommandOptionAttachment,
}

func (d *descriptor) hasContract() bool {
	return d.Data != nil && d.Execute != ""
}

// build resolves handler names against the catalog and produces a command
// ready for validation.
func (d *descriptor) build(source string, catalog commands.Catalog) (*commands.Command, error) {
	if !d.hasContract() {
		return nil, commands.ErrMissingContract
	}

	data, err := d.Data.applicationCommand()
	if err != nil {
		return nil, err
	}

	execute, err := catalog.Handler(d.Execute, d.Args)
	if err != nil {
		return nil, err
	}

	cmd := &commands.Command{Data: data, Source: source}

	var mws []commands.Middleware
	if d.GuildOnly {
		dm := false
		data.DMPermission = &dm
		mws = append(mws, commands.WithGuildOnly)
	}
	if d.AdminOnly {
		perms := int64(discordgo.PermissionAdministrator)
		data.DefaultMemberPermissions = &perms
		mws = append(mws, commands.WithAdmin)
	}
	cmd.Execute = commands.Chain(execute, mws...)

	if d.Autocomplete != "" {
		ac, err := catalog.Autocompleter(d.Autocomplete)
		if err != nil {
			return nil, err
		}
		cmd.Autocomplete = ac
	}

	if d.Cooldown != nil {
		if *d.Cooldown <= 0 {
			return nil, fmt.Errorf("cooldown must be positive, got %v", *d.Cooldown)
		}
		cmd.Cooldown = time.Duration(*d.Cooldown * float64(time.Second))
	}

	return cmd, nil
}

func (s *dataSpec) applicationCommand() (*discordgo.ApplicationCommand, error) {
	ac := &discordgo.ApplicationCommand{
		Type:        discordgo.ChatApplicationCommand,
		Name:        s.Name,
		Description: s.Description,
	}

	for _, o := range s.Options {
		t, ok := optionTypes[o.Type]
		if !ok {
			return nil, fmt.Errorf("option %q has unknown type %q", o.Name, o.Type)
		}

		opt := &discordgo.ApplicationCommandOption{
			Type:         t,
			Name:         o.Name,
			Description:  o.Description,
			Required:     o.Required,
			Autocomplete: o.Autocomplete,
		}
		if t == discordgo.ApplicationCommandOptionString {
			opt.MinLength = o.MinLength
			opt.MaxLength = o.MaxLength
		}
		for _, c := range o.Choices {
			opt.Choices = append(opt.Choices, &discordgo.ApplicationCommandOptionChoice{Name: c.Name, Value: c.Value})
		}

		ac.Options = append(ac.Options, opt)
	}

	return ac, nil
}
