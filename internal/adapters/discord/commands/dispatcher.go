package commands

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"discord-slash-bot/internal/adapters/discord/formatting"
	"discord-slash-bot/internal/core/domain"
	"discord-slash-bot/internal/metrics"

	"github.com/bwmarrin/discordgo"
)

const recordTimeout = 5 * time.Second

// UsageRecorder persists one line per handled invocation.
type UsageRecorder interface {
	Record(ctx context.Context, command, userID, guildID string, outcome domain.Outcome, took time.Duration) error
}

type DispatcherOption func(*Dispatcher)

func WithUsageRecorder(r UsageRecorder) DispatcherOption {
	return func(d *Dispatcher) {
		d.usage = r
	}
}

// Dispatcher routes command and autocomplete interactions to the registry,
// applies cooldowns and turns handler failures into a generic reply.
type Dispatcher struct {
	ctx       context.Context
	registry  *Registry
	cooldowns *Cooldowns
	usage     UsageRecorder
}

func NewDispatcher(ctx context.Context, registry *Registry, cooldowns *Cooldowns, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		ctx:       ctx,
		registry:  registry,
		cooldowns: cooldowns,
	}
	for _, opt := range opts {
		opt(d)
	}

	slog.Info("Dispatcher initialized", "commands", registry.Len())
	return d
}

func (d *Dispatcher) Handle(s DiscordSession, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		metrics.InteractionsReceived.WithLabelValues("command").Inc()
		d.handleCommand(NewInteraction(s, i))
	case discordgo.InteractionApplicationCommandAutocomplete:
		metrics.InteractionsReceived.WithLabelValues("autocomplete").Inc()
		d.handleAutocomplete(NewInteraction(s, i))
	}
}

func (d *Dispatcher) HandleFunc() func(*discordgo.Session, *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		d.Handle(s, i)
	}
}

func (d *Dispatcher) handleAutocomplete(in *Interaction) {
	name := in.CommandName()

	cmd, ok := d.registry.Get(name)
	if !ok {
		slog.Error("No command matching autocomplete request", "name", name)
		return
	}
	if cmd.Autocomplete == nil {
		slog.Error("Command has no autocomplete handler", "name", name)
		return
	}

	if err := run(d.ctx, cmd.Autocomplete, in); err != nil {
		slog.Error("Autocomplete handler failed", "name", name, "error", err)
	}
}

func (d *Dispatcher) handleCommand(in *Interaction) {
	name := in.CommandName()

	cmd, ok := d.registry.Get(name)
	if !ok {
		metrics.UnknownCommands.Inc()
		slog.Warn("No command matching interaction", "name", name)
		return
	}

	userID := in.UserID()
	if expiresAt, ok := d.cooldowns.Acquire(name, userID, cmd.CooldownDuration()); !ok {
		metrics.CommandInvocations.WithLabelValues(name, string(domain.OutcomeCooldown)).Inc()
		if err := in.ReplyEphemeral(formatting.MsgCooldown(name, expiresAt)); err != nil {
			slog.Error("Failed to send cooldown reply", "name", name, "user", userID, "error", err)
		}
		d.record(in, domain.OutcomeCooldown, 0)
		return
	}

	start := time.Now()
	err := run(d.ctx, cmd.Execute, in)
	took := time.Since(start)
	metrics.CommandDuration.WithLabelValues(name).Observe(took.Seconds())

	if err == nil {
		metrics.CommandInvocations.WithLabelValues(name, string(domain.OutcomeOK)).Inc()
		d.record(in, domain.OutcomeOK, took)
		return
	}

	metrics.CommandInvocations.WithLabelValues(name, string(domain.OutcomeError)).Inc()
	slog.Error("Command execution failed", "name", name, "user", userID, "error", err)
	replyWithError(in)
	d.record(in, domain.OutcomeError, took)
}

// replyWithError tells the user the command failed through whichever
// response channel is still open. Failures here are only logged.
func replyWithError(in *Interaction) {
	name := in.CommandName()

	switch {
	case !in.Replied() && !in.Deferred():
		if err := in.ReplyEphemeral(formatting.MsgCommandError); err != nil {
			metrics.ErrorReplyFailures.WithLabelValues("reply").Inc()
			slog.Error("Failed to send error reply", "name", name, "error", err)
		}
	case in.Deferred() && !in.Replied():
		if err := in.EditReply(formatting.MsgCommandError); err != nil {
			metrics.ErrorReplyFailures.WithLabelValues("edit").Inc()
			slog.Error("Failed to edit error reply", "name", name, "error", err)
		}
	default:
		if err := in.FollowUp(formatting.MsgCommandError, true); err != nil {
			metrics.ErrorReplyFailures.WithLabelValues("followup").Inc()
			slog.Error("Failed to send error follow-up", "name", name, "error", err)
		}
	}
}

func (d *Dispatcher) record(in *Interaction, outcome domain.Outcome, took time.Duration) {
	if d.usage == nil {
		return
	}

	ctx, cancel := context.WithTimeout(d.ctx, recordTimeout)
	defer cancel()

	if err := d.usage.Record(ctx, in.CommandName(), in.UserID(), in.GuildID(), outcome, took); err != nil {
		slog.Warn("Failed to record command usage", "name", in.CommandName(), "error", err)
	}
}

// run calls h and converts a panic into an error.
func run(ctx context.Context, h func(context.Context, *Interaction) error, in *Interaction) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("Handler panic", "stack", string(debug.Stack()))
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return h(ctx, in)
}
