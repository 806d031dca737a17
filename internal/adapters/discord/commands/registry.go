package commands

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// Registry maps command names to commands. It is built once and never
// modified afterwards, so concurrent reads need no locking.
type Registry struct {
	byName  map[string]*Command
	ordered []*Command
}

// NewRegistry indexes cmds by name. When two commands share a name the later
// one replaces the earlier one in place and a warning is logged.
func NewRegistry(cmds []*Command) *Registry {
	r := &Registry{
		byName:  make(map[string]*Command, len(cmds)),
		ordered: make([]*Command, 0, len(cmds)),
	}

	for _, cmd := range cmds {
		name := cmd.Name()
		if prev, ok := r.byName[name]; ok {
			slog.Warn("Duplicate command name, later definition wins",
				"name", name, "previous", prev.Source, "current", cmd.Source)
			for i, c := range r.ordered {
				if c == prev {
					r.ordered[i] = cmd
					break
				}
			}
		} else {
			r.ordered = append(r.ordered, cmd)
		}
		r.byName[name] = cmd
	}

	slog.Info("Command registry built", "count", len(r.ordered))
	return r
}

func (r *Registry) Get(name string) (*Command, bool) {
	cmd, ok := r.byName[name]
	return cmd, ok
}

// Commands returns the commands in load order.
func (r *Registry) Commands() []*Command {
	out := make([]*Command, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// ApplicationCommands returns the schemas to publish to Discord.
func (r *Registry) ApplicationCommands() []*discordgo.ApplicationCommand {
	out := make([]*discordgo.ApplicationCommand, 0, len(r.ordered))
	for _, cmd := range r.ordered {
		out = append(out, cmd.Data)
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.ordered)
}
