package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Common flag names and descriptions
const (
	// Flag names
	FlagOutput       = "output"
	FlagGroups       = "groups"
	FlagFuzzy        = "fuzzy"
	FlagSet          = "set"
	FlagInteractive  = "interactive"
	FlagForce        = "force"
	FlagDryRun       = "dry-run"
	FlagRaw          = "raw"
	FlagLong         = "long"
	FlagWithTemplate = "with-template"
	FlagFromFile     = "from-file"
	FlagStore        = "store"
	FlagEditor       = "editor"
	FlagConfig       = "config"
	FlagNoColor      = "no-color"
	FlagQuiet        = "quiet"
	FlagDebug        = "debug"

	// Flag descriptions
	DescOutput       = "Directory destinations are resolved against (default: current directory)"
	DescGroups       = "Restrict to templates in any of these groups (comma-separated)"
	DescFuzzy        = "Pick among the group's templates instead of applying all of them"
	DescSet          = "Set a variable (key=value, or key=@file:path); repeatable"
	DescInteractive  = "Prompt for every variable and unresolved placeholder"
	DescForce        = "Overwrite existing files"
	DescDryRun       = "Show the rendered files without writing them"
	DescRaw          = "Show the stored file instead of the substituted body"
	DescLong         = "Show groups and destination file names"
	DescWithTemplate = "Start from a documented example template"
	DescFromFile     = "Start from an existing file's content"
	DescStore        = "Template store directory"
	DescEditor       = "Editor command used to edit templates"
	DescConfig       = "Path to config file"
	DescNoColor      = "Disable colored output"
	DescQuiet        = "Suppress non-error output"
	DescDebug        = "Enable debug logging"
)

// ValidateOutputPath validates the output directory for apply.
// An empty path means the current directory.
func ValidateOutputPath(path string) (string, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to determine current directory: %w", err)
		}
		return cwd, nil
	}

	if strings.ContainsRune(path, 0) {
		return "", fmt.Errorf("output path contains a null byte")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid output path %q: %w", path, err)
	}

	info, err := os.Stat(abs)
	switch {
	case err == nil && !info.IsDir():
		return "", fmt.Errorf("output path exists and is not a directory: %s", path)
	case err != nil && !os.IsNotExist(err):
		return "", fmt.Errorf("cannot access output path %s: %w", path, err)
	}

	return abs, nil
}
