package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"discord-slash-bot/internal/adapters/discord"
	"discord-slash-bot/internal/adapters/discord/commands"
	"discord-slash-bot/internal/adapters/storage/postgres"
	"discord-slash-bot/internal/config"
	"discord-slash-bot/internal/core/ports"
	"discord-slash-bot/internal/core/services"
	"discord-slash-bot/internal/handlers"
	"discord-slash-bot/internal/loader"
	"discord-slash-bot/internal/metrics"

	"github.com/bwmarrin/discordgo"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/netutil"
)

// maxMetricsConns caps concurrent scrapes of the metrics endpoint.
const maxMetricsConns = 16

type App struct {
	config        *config.Config
	registry      *commands.Registry
	cooldowns     *commands.Cooldowns
	store         ports.UsageRepository
	discord       *discordgo.Session
	dispatcher    *commands.Dispatcher
	metricsServer *http.Server
	runCtx        context.Context
	runCancel     context.CancelFunc
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	cmds, err := loader.Load(cfg.CommandsDir, handlers.Catalog())
	if err != nil {
		slog.Error("Failed to load commands", "error", err)
		return nil, err
	}

	registry := commands.NewRegistry(cmds)
	metrics.CommandsLoaded.Set(float64(registry.Len()))
	for _, cmd := range registry.Commands() {
		slog.Debug("Command registered", "name", cmd.Name(), "source", cmd.Source, "cooldown", cmd.CooldownDuration())
	}

	runCtx, runCancel := context.WithCancel(ctx)
	app := &App{
		config:    cfg,
		registry:  registry,
		cooldowns: commands.NewCooldowns(),
		runCtx:    runCtx,
		runCancel: runCancel,
	}

	var opts []commands.DispatcherOption
	if cfg.DatabaseURL != "" {
		store, err := openUsageStore(ctx, cfg.DatabaseURL)
		if err != nil {
			runCancel()
			return nil, err
		}
		app.store = store
		opts = append(opts, commands.WithUsageRecorder(services.NewUsageService(store)))
	} else {
		slog.Info("DATABASE_URL is not set, usage log disabled")
	}

	session, err := discord.NewSession(cfg.Token)
	if err != nil {
		app.closeStore()
		runCancel()
		return nil, err
	}
	app.discord = session

	app.dispatcher = commands.NewDispatcher(runCtx, registry, app.cooldowns, opts...)

	session.AddHandler(handlers.ReadyHandler)
	session.AddHandler(app.dispatcher.HandleFunc())

	return app, nil
}

func openUsageStore(ctx context.Context, url string) (*postgres.UsageStore, error) {
	store, err := postgres.NewUsageStore(ctx, url)
	if err != nil {
		slog.Error("Failed to connect to storage", "error", err)
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		store.Close()
		slog.Error("Failed to migrate storage", "error", err)
		return nil, err
	}
	return store, nil
}

func (a *App) Run() error {
	if err := a.discord.Open(); err != nil {
		slog.Error("Failed to open discord session", "error", err)
		return err
	}

	go a.cooldowns.Run(a.runCtx, a.config.CooldownSweepInterval)
	a.startMetricsServer()

	slog.Info("Bot is online", "commands", a.registry.Len())
	return nil
}

func (a *App) startMetricsServer() {
	addr := a.config.MetricsAddr()
	if addr == "" {
		slog.Info("Metrics server disabled")
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	a.metricsServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	srv := a.metricsServer
	go func() {
		ln, err := net.Listen("tcp", addr)
		if err != nil {
			slog.Error("Metrics server failed to listen", "addr", addr, "error", err)
			return
		}

		slog.Info("Metrics server listening", "addr", addr)
		if err := srv.Serve(netutil.LimitListener(ln, maxMetricsConns)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server failed", "error", err)
		}
	}()
}

func (a *App) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down...")

	if a.runCancel != nil {
		a.runCancel()
	}

	var errs []error
	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("metrics server: %w", err))
		}
	}

	if a.discord != nil {
		if err := a.discord.Close(); err != nil {
			errs = append(errs, fmt.Errorf("discord session: %w", err))
		}
	}

	a.closeStore()

	return errors.Join(errs...)
}

func (a *App) closeStore() {
	if a.store != nil {
		a.store.Close()
	}
}
