package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"discord-slash-bot/internal/config"
	"discord-slash-bot/internal/logging"

	"github.com/urfave/cli/v2"
)

var commandsDirFlag = &cli.StringFlag{
	Name:  "commands-dir",
	Usage: "directory holding command descriptors (overrides COMMANDS_DIR)",
}

func main() {
	app := &cli.App{
		Name:   "bot",
		Usage:  "runs the Discord slash command bot",
		Flags:  []cli.Flag{commandsDirFlag},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Bot exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cliCtx *cli.Context) error {
	cfg, err := config.Load(commandsDirOverride(cliCtx))
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		return err
	}
	logging.Init(cfg.Env)

	ctx := cliCtx.Context

	app, err := NewApp(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return err
	}

	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Shutdown(shutdownCtx); err != nil {
			slog.Error("Application shutdown error", "error", err)
		}
	}()

	if err := app.Run(); err != nil {
		slog.Error("Failed to start application", "error", err)
		return err
	}

	WaitForShutdown(ctx)
	return nil
}

func commandsDirOverride(cliCtx *cli.Context) config.Override {
	return func(cfg *config.Config) {
		if cliCtx.IsSet(commandsDirFlag.Name) {
			cfg.CommandsDir = cliCtx.String(commandsDirFlag.Name)
		}
	}
}
