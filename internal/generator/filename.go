package generator

import (
	"fmt"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/tacogips/skel/internal/debug"
	"github.com/tacogips/skel/internal/template"
)

// Destination returns the relative path a template is materialized to: its
// `filename` variable with placeholders expanded, or the template name when
// `filename` is absent, null or empty.
func Destination(t *template.Template) (string, error) {
	name, err := t.Name()
	if err != nil {
		return "", err
	}

	value, ok := t.Filename()
	if !ok || value.IsNull() {
		debug.Debug("[generator] No filename for %s, using template name", name)
		return name, nil
	}

	filename, isString := value.Str()
	if !isString {
		return "", newGeneratorError(GeneratorPathError,
			fmt.Sprintf("filename of template %q must be a string, got %s", name, value.Kind()),
			t.Path(), nil)
	}

	filename = strings.TrimSpace(t.Expand(filename))
	if filename == "" {
		debug.Debug("[generator] Empty filename for %s, using template name", name)
		return name, nil
	}

	return filename, nil
}

// ResolvePath joins a relative destination onto outputDir. Absolute paths,
// paths escaping outputDir and paths naming outputDir itself are rejected.
// Symlinks along the way are resolved without leaving outputDir.
func ResolvePath(outputDir, rel string) (string, error) {
	debug.Debug("[generator] ResolvePath: outputDir=%s, rel=%s", outputDir, rel)

	if err := validatePath(rel); err != nil {
		return "", err
	}

	resolved, err := securejoin.SecureJoin(outputDir, rel)
	if err != nil {
		return "", newGeneratorError(GeneratorPathError, "failed to resolve destination", rel, err)
	}

	debug.Debug("[generator] ResolvePath: result=%s", resolved)
	return resolved, nil
}

// validatePath validates a destination relative to the output directory.
func validatePath(rel string) error {
	if strings.ContainsRune(rel, 0) {
		return newGeneratorError(GeneratorPathError, "destination contains a null byte", rel, nil)
	}

	if filepath.IsAbs(rel) || strings.HasPrefix(rel, "/") || strings.HasPrefix(rel, `\`) {
		return newGeneratorError(GeneratorPathError,
			"destination must be relative to the output directory", rel, nil)
	}

	cleaned := filepath.Clean(rel)

	// After cleaning, if the path starts with "..", it's trying to escape
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return newGeneratorError(GeneratorPathError, "destination escapes the output directory", rel, nil)
	}

	if cleaned == "." {
		return newGeneratorError(GeneratorPathError, "destination resolves to the output directory", rel, nil)
	}

	return nil
}
