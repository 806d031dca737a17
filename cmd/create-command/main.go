// Package main interactively scaffolds a new command descriptor.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"discord-slash-bot/internal/scaffold"

	"github.com/urfave/cli/v2"
)

var rootFlag = &cli.StringFlag{
	Name:  "root",
	Usage: "project root holding the commands directory",
	Value: ".",
}

func main() {
	app := &cli.App{
		Name:   "create-command",
		Usage:  "creates a new slash command descriptor",
		Flags:  []cli.Flag{rootFlag},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cliCtx *cli.Context) error {
	root, err := filepath.Abs(cliCtx.String(rootFlag.Name))
	if err != nil {
		return err
	}

	_, err = scaffold.Run(prompter(), os.Stdout, root)
	if errors.Is(err, scaffold.ErrCanceled) {
		return nil
	}
	return err
}

// prompter picks line editing on a terminal and plain line reads otherwise.
func prompter() scaffold.Prompter {
	if fi, err := os.Stdin.Stat(); err == nil && fi.Mode()&os.ModeCharDevice != 0 {
		return scaffold.TerminalPrompter{}
	}
	return scaffold.NewLinePrompter(os.Stdin, os.Stdout)
}
