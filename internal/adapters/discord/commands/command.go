package commands

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/bwmarrin/discordgo"
)

// DefaultCooldown applies to commands that do not declare their own.
const DefaultCooldown = 3 * time.Second

// MaxDescriptionLength is the longest description Discord accepts for a
// command or an option, counted in characters.
const MaxDescriptionLength = 100

const maxOptions = 25

var namePattern = regexp.MustCompile(`^[a-z0-9_-]{1,32}$`)

// ErrMissingContract marks a command that lacks its schema or its handler.
var ErrMissingContract = errors.New(`missing a required "data" or "execute" property`)

type Handler func(ctx context.Context, in *Interaction) error

type AutocompleteHandler func(ctx context.Context, in *Interaction) error

// Command is a slash command schema bound to the code that serves it.
type Command struct {
	Data         *discordgo.ApplicationCommand
	Execute      Handler
	Autocomplete AutocompleteHandler
	Cooldown     time.Duration
	Source       string
}

func (c *Command) Name() string {
	return c.Data.Name
}

func (c *Command) CooldownDuration() time.Duration {
	if c.Cooldown <= 0 {
		return DefaultCooldown
	}
	return c.Cooldown
}

// Validate checks the command against the platform's schema rules.
// All violations are returned together.
func (c *Command) Validate() error {
	if c.Data == nil || c.Execute == nil {
		return ErrMissingContract
	}

	var errs []error

	if !ValidName(c.Data.Name) {
		errs = append(errs, fmt.Errorf("invalid command name %q: use 1-32 chars of a-z, 0-9, - or _", c.Data.Name))
	}

	if err := validateDescription("command", c.Data.Description); err != nil {
		errs = append(errs, err)
	}

	if len(c.Data.Options) > maxOptions {
		errs = append(errs, fmt.Errorf("too many options: %d (max %d)", len(c.Data.Options), maxOptions))
	}

	seenOptional := false
	names := make(map[string]bool, len(c.Data.Options))
	for _, opt := range c.Data.Options {
		if opt == nil {
			errs = append(errs, errors.New("nil option"))
			continue
		}
		if !ValidName(opt.Name) {
			errs = append(errs, fmt.Errorf("invalid option name %q", opt.Name))
		}
		if names[opt.Name] {
			errs = append(errs, fmt.Errorf("duplicate option %q", opt.Name))
		}
		names[opt.Name] = true

		if err := validateDescription("option "+opt.Name, opt.Description); err != nil {
			errs = append(errs, err)
		}

		if opt.Required && seenOptional {
			errs = append(errs, fmt.Errorf("required option %q must come before optional ones", opt.Name))
		}
		if !opt.Required {
			seenOptional = true
		}

		if opt.Autocomplete && c.Autocomplete == nil {
			errs = append(errs, fmt.Errorf("option %q uses autocomplete but the command has no autocomplete handler", opt.Name))
		}
	}

	return errors.Join(errs...)
}

func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

func validateDescription(subject, description string) error {
	if description == "" {
		return fmt.Errorf("%s description cannot be empty", subject)
	}
	if len([]rune(description)) > MaxDescriptionLength {
		return fmt.Errorf("%s description must be at most %d characters", subject, MaxDescriptionLength)
	}
	return nil
}
