package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CommandsLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slashbot_commands_loaded",
		Help: "Number of commands in the registry",
	})

	InteractionsReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slashbot_interactions_received_total",
		Help: "Total number of interactions routed by the dispatcher",
	}, []string{"type"})

	CommandInvocations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slashbot_command_invocations_total",
		Help: "Total number of command invocations by outcome",
	}, []string{"command", "outcome"})

	CommandDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "slashbot_command_duration_seconds",
		Help:    "Duration of command handler execution",
		Buckets: prometheus.DefBuckets,
	}, []string{"command"})

	UnknownCommands = promauto.NewCounter(prometheus.CounterOpts{
		Name: "slashbot_unknown_commands_total",
		Help: "Total number of interactions for commands missing from the registry",
	})

	ErrorReplyFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "slashbot_error_reply_failures_total",
		Help: "Total number of failed attempts to tell the user a command failed",
	}, []string{"path"})

	ActiveCooldowns = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "slashbot_active_cooldowns",
		Help: "Number of cooldown entries held after the last sweep",
	})
)
