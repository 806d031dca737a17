// Package scaffold generates new command descriptor files from a short
// interactive questionnaire.
package scaffold

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"discord-slash-bot/internal/adapters/discord/commands"
	"discord-slash-bot/internal/adapters/discord/formatting"

	"gopkg.in/yaml.v3"
)

const escape = "\x1b"

const reasonLongDescription = "Description is too long. Use at most %d characters."

var (
	// ErrCanceled is returned when the user backs out of a prompt.
	ErrCanceled = errors.New("canceled by user")
	// ErrFileExists is returned instead of overwriting a descriptor.
	ErrFileExists = errors.New("file already exists")
)

type generatedFile struct {
	Data    generatedData     `yaml:"data"`
	Execute string            `yaml:"execute"`
	Args    map[string]string `yaml:"args"`
}

type generatedData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Run asks for a name, a description and a target folder, then writes the
// new descriptor under projectRoot/commands. It returns the created file
// path relative to projectRoot.
func Run(p Prompter, out io.Writer, projectRoot string) (string, error) {
	commandsDir := filepath.Join(projectRoot, "commands")
	if err := os.MkdirAll(commandsDir, 0o755); err != nil {
		return "", fmt.Errorf("create commands directory: %w", err)
	}

	existing, err := CollectCommandNames(commandsDir)
	if err != nil {
		return "", err
	}

	name, err := promptCommandName(p, out, existing)
	if err != nil {
		return "", err
	}

	description, err := promptDescription(p, out)
	if err != nil {
		return "", err
	}

	targetDir, err := chooseTargetFolder(p, out, commandsDir)
	if err != nil {
		return "", err
	}

	rel, err := writeCommandFile(projectRoot, targetDir, name, description)
	if err != nil {
		return "", err
	}

	fmt.Fprintf(out, "Created command: %s\n", rel)
	return rel, nil
}

func promptCommandName(p Prompter, out io.Writer, existing map[string]bool) (string, error) {
	for {
		raw, err := p.Ask("Command name (lowercase, letters/numbers/-_) [Esc + Enter to cancel]")
		if err != nil {
			return "", err
		}
		raw = strings.TrimSpace(raw)
		if raw == escape {
			fmt.Fprintln(out, "Canceled by user.")
			return "", ErrCanceled
		}

		name, err := ValidateCommandName(raw, existing)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		return name, nil
	}
}

func promptDescription(p Prompter, out io.Writer) (string, error) {
	for {
		raw, err := p.Ask("Command description [Esc + Enter to cancel]")
		if err != nil {
			return "", err
		}
		raw = strings.TrimSpace(raw)
		if raw == escape {
			fmt.Fprintln(out, "Canceled by user.")
			return "", ErrCanceled
		}
		if raw == "" {
			fmt.Fprintln(out, "Description cannot be empty. Please enter a description or press Esc to cancel.")
			continue
		}
		if utf8.RuneCountInString(raw) > commands.MaxDescriptionLength {
			fmt.Fprintf(out, reasonLongDescription+"\n", commands.MaxDescriptionLength)
			continue
		}
		return raw, nil
	}
}

func chooseTargetFolder(p Prompter, out io.Writer, commandsDir string) (string, error) {
	entries, err := os.ReadDir(commandsDir)
	if err != nil {
		return "", fmt.Errorf("read commands directory: %w", err)
	}

	var folders []string
	for _, e := range entries {
		if e.IsDir() {
			folders = append(folders, e.Name())
		}
	}
	slices.Sort(folders)

	fmt.Fprintln(out, "\nSelect target folder for the command:")
	fmt.Fprintln(out, "0) root (commands/)")
	for i, f := range folders {
		fmt.Fprintf(out, "%d) %s/\n", i+1, f)
	}
	createNew := len(folders) + 1
	fmt.Fprintf(out, "%d) create a new folder\n", createNew)

	var choice int
	for {
		raw, err := p.Ask("Enter choice number")
		if err != nil {
			return "", err
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err == nil && n >= 0 && n <= createNew {
			choice = n
			break
		}
		fmt.Fprintln(out, "Invalid choice. Please enter a number in range.")
	}

	switch choice {
	case 0:
		return commandsDir, nil
	case createNew:
		return promptNewFolder(p, out, commandsDir)
	default:
		return filepath.Join(commandsDir, folders[choice-1]), nil
	}
}

func promptNewFolder(p Prompter, out io.Writer, commandsDir string) (string, error) {
	for {
		raw, err := p.Ask("New folder name (letters/numbers/-_)")
		if err != nil {
			return "", err
		}
		name := strings.TrimSpace(raw)
		if name == "" {
			fmt.Fprintln(out, "Folder name cannot be empty.")
			continue
		}
		if !ValidateFolderName(name) {
			fmt.Fprintln(out, "Use only letters, numbers, hyphen (-) and underscore (_).")
			continue
		}

		dir := filepath.Join(commandsDir, name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create folder %s: %w", name, err)
		}
		return dir, nil
	}
}

func writeCommandFile(projectRoot, targetDir, name, description string) (string, error) {
	target := filepath.Join(targetDir, name+".yaml")
	rel, err := filepath.Rel(projectRoot, target)
	if err != nil {
		rel = target
	}
	rel = filepath.ToSlash(rel)

	schema, err := ImportPath(projectRoot, targetDir, DefaultContract)
	if err != nil {
		return "", err
	}

	content, err := renderDescriptor(schema, name, description)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrFileExists, rel)
		}
		return "", fmt.Errorf("create %s: %w", rel, err)
	}
	defer f.Close()

	if _, err := f.Write(content); err != nil {
		return "", fmt.Errorf("write %s: %w", rel, err)
	}
	return rel, nil
}

func renderDescriptor(schema, name, description string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# yaml-language-server: $schema=%s\n", schema)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	err := enc.Encode(generatedFile{
		Data:    generatedData{Name: name, Description: description},
		Execute: "reply",
		Args:    map[string]string{"content": formatting.MsgEmptyCommand},
	})
	if err != nil {
		return nil, fmt.Errorf("encode descriptor: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode descriptor: %w", err)
	}
	return buf.Bytes(), nil
}
