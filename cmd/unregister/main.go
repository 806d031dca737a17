// Package main deletes registered slash commands by id.
package main

import (
	"errors"
	"log/slog"
	"os"

	"discord-slash-bot/internal/adapters/discord"
	"discord-slash-bot/internal/adapters/discord/deploy"
	"discord-slash-bot/internal/cmdflags"
	"discord-slash-bot/internal/config"
	"discord-slash-bot/internal/logging"

	"github.com/urfave/cli/v2"
)

var errNoIDs = errors.New("please provide at least one command ID to delete")

func main() {
	app := &cli.App{
		Name:      "unregister",
		Usage:     "deletes slash commands from Discord",
		UsageText: "unregister [--global|--test] <commandId> [commandId...]",
		Flags:     cmdflags.ModeFlags,
		Action:    run,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Unregister failed", "error", err)
		os.Exit(1)
	}
}

func run(cliCtx *cli.Context) error {
	mode, err := cmdflags.Mode(cliCtx)
	if err != nil {
		return err
	}

	ids := cliCtx.Args().Slice()
	if len(ids) == 0 {
		return errNoIDs
	}

	cfg, err := config.Parse()
	if err != nil {
		return err
	}
	logging.Init(cfg.Env)

	if err := cfg.ValidateDeploy(mode == deploy.ModeTest); err != nil {
		return err
	}

	session, err := discord.NewSession(cfg.Token)
	if err != nil {
		return err
	}

	return deploy.Unregister(cliCtx.Context, session, cfg.ClientID, mode.GuildFor(cfg.GuildID), ids)
}
