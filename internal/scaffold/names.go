package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultContract is the shared descriptor schema generated files point at.
const DefaultContract = "lib/command.schema.json"

const descriptorGlob = "**/*.{yaml,yml,json}"

const (
	reasonInvalidName   = "Invalid command name. Use 1-32 chars: a-z, 0-9, hyphen (-), underscore (_)."
	reasonDuplicateName = "A command named %q already exists. Choose a different name."
)

var (
	commandNamePattern = regexp.MustCompile(`^[a-z0-9_-]{1,32}$`)
	folderNamePattern  = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// NormalizeName lowercases s, trims it and joins inner whitespace runs with
// a single hyphen.
func NormalizeName(s string) string {
	lower := cases.Lower(language.Und).String(s)
	return strings.Join(strings.Fields(lower), "-")
}

// ValidateCommandName normalizes input and checks it against the platform
// name rule and the names already taken. The error text is meant for the
// user.
func ValidateCommandName(input string, existing map[string]bool) (string, error) {
	name := NormalizeName(input)
	if !commandNamePattern.MatchString(name) {
		return "", errors.New(reasonInvalidName)
	}
	if existing[name] {
		return "", fmt.Errorf(reasonDuplicateName, name)
	}
	return name, nil
}

func ValidateFolderName(name string) bool {
	return folderNamePattern.MatchString(name)
}

// CollectCommandNames returns the base names of every descriptor file below
// dir, at any depth.
func CollectCommandNames(dir string) (map[string]bool, error) {
	files, err := doublestar.Glob(os.DirFS(dir), descriptorGlob, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("collect command names: %w", err)
	}

	names := make(map[string]bool, len(files))
	for _, f := range files {
		base := path.Base(f)
		names[strings.TrimSuffix(base, path.Ext(base))] = true
	}
	return names, nil
}

// ImportPath is the relative reference from targetDir to the contract file
// under projectRoot, with forward slashes and a leading "./" or "../".
func ImportPath(projectRoot, targetDir, contract string) (string, error) {
	rel, err := filepath.Rel(targetDir, filepath.Join(projectRoot, contract))
	if err != nil {
		return "", fmt.Errorf("compute import path: %w", err)
	}

	rel = filepath.ToSlash(rel)
	if !strings.HasPrefix(rel, "../") && !strings.HasPrefix(rel, "./") {
		rel = "./" + rel
	}
	return rel, nil
}
