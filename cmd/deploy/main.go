// Package main publishes the command descriptors under COMMANDS_DIR to
// Discord, either globally or to the test guild.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"discord-slash-bot/internal/adapters/discord"
	"discord-slash-bot/internal/adapters/discord/commands"
	"discord-slash-bot/internal/adapters/discord/deploy"
	"discord-slash-bot/internal/cmdflags"
	"discord-slash-bot/internal/config"
	"discord-slash-bot/internal/handlers"
	"discord-slash-bot/internal/loader"
	"discord-slash-bot/internal/logging"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "deploy",
		Usage:     "registers slash commands with Discord",
		UsageText: "deploy [--global|--test]",
		Flags:     cmdflags.ModeFlags,
		Action:    run,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Deploy failed", "error", err)
		os.Exit(1)
	}
}

func run(cliCtx *cli.Context) error {
	mode, err := cmdflags.Mode(cliCtx)
	if errors.Is(err, deploy.ErrNoMode) {
		return cli.ShowAppHelp(cliCtx)
	}

	cfg, err := config.Parse()
	if err != nil {
		return err
	}
	logging.Init(cfg.Env)

	if err := cfg.ValidateDeploy(mode == deploy.ModeTest); err != nil {
		return err
	}

	cmds, err := loader.Load(cfg.CommandsDir, handlers.Catalog())
	if err != nil {
		return fmt.Errorf("load commands: %w", err)
	}
	registry := commands.NewRegistry(cmds)

	session, err := discord.NewSession(cfg.Token)
	if err != nil {
		return err
	}

	_, err = deploy.Deploy(session, cfg.ClientID, mode.GuildFor(cfg.GuildID), registry.ApplicationCommands())
	return err
}
