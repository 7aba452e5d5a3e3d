package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tacogips/skel/internal/debug"
	"github.com/tacogips/skel/internal/template"
)

// filePrefix marks an assignment value to be read from a file.
const filePrefix = "@file:"

// ParseAssignments parses key=value overrides. A value of the form
// @file:path is replaced by the content of path (relative to baseDir),
// with one trailing newline removed.
func ParseAssignments(assignments []string, baseDir string) (map[string]template.Value, error) {
	vars := make(map[string]template.Value, len(assignments))

	for _, assignment := range assignments {
		key, value, ok := strings.Cut(assignment, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, NewValidationError(
				fmt.Sprintf("invalid variable assignment %q (expected key=value)", assignment), nil)
		}

		if strings.HasPrefix(value, filePrefix) {
			content, err := readValueFile(key, strings.TrimPrefix(value, filePrefix), baseDir)
			if err != nil {
				return nil, err
			}
			value = content
		}

		debug.Debug("[app] Variable override: %s", key)
		vars[key] = template.StringValue(value)
	}

	return vars, nil
}

func readValueFile(key, filename, baseDir string) (string, error) {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		return "", NewValidationError(fmt.Sprintf("variable %s: @file: prefix without filename", key), nil)
	}

	path := filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, filename)
	}
	debug.DebugValue("[app] Resolved file path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", NewValidationError(fmt.Sprintf("variable %s: failed to read %s", key, filename), err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}
