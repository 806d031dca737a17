// Package loader discovers command descriptor files and turns them into
// commands bound to compiled-in handlers.
package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"discord-slash-bot/internal/adapters/discord/commands"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Pattern matches descriptor files inside a single directory.
const Pattern = "*.{yaml,yml,json}"

// Load reads every descriptor in root and in its immediate subdirectories.
// Invalid descriptors are logged and skipped. A missing root yields no
// commands. Only a failure to list root itself is returned.
func Load(root string, catalog commands.Catalog) ([]*commands.Command, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Commands directory not found", "path", root)
			return nil, nil
		}
		return nil, fmt.Errorf("read commands directory: %w", err)
	}

	dirs := []string{root}
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, filepath.Join(root, e.Name()))
		}
	}

	slog.Info("Reading commands folders (including root)", "count", len(dirs), "path", root)

	var cmds []*commands.Command
	for _, dir := range dirs {
		files, err := doublestar.Glob(os.DirFS(dir), Pattern, doublestar.WithFilesOnly())
		if err != nil {
			slog.Error("Failed to list command files", "dir", dir, "error", err)
			continue
		}
		slices.Sort(files)

		for _, f := range files {
			path := filepath.Join(dir, f)
			cmd, err := loadFile(path, catalog)
			if err != nil {
				if errors.Is(err, commands.ErrMissingContract) {
					slog.Warn(fmt.Sprintf("The command at %s is missing a required \"data\" or \"execute\" property.", path))
				} else {
					slog.Warn("Skipping invalid command", "path", path, "error", err)
				}
				continue
			}

			slog.Debug("Command loaded", "name", cmd.Name(), "path", path)
			cmds = append(cmds, cmd)
		}
	}

	slog.Info("Commands loaded", "count", len(cmds), "root", root)
	return cmds, nil
}

func loadFile(path string, catalog commands.Catalog) (*commands.Command, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var d descriptor
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	cmd, err := d.build(path, catalog)
	if err != nil {
		return nil, err
	}

	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return cmd, nil
}
