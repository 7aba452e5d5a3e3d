package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/tacogips/skel/internal/debug"
	"github.com/tacogips/skel/internal/runner"
	"github.com/tacogips/skel/internal/template"
)

// CommandLine returns the post-apply command of t split into words, with
// placeholders expanded. It returns nil when the template declares no command.
func CommandLine(t *template.Template) ([]string, error) {
	value, ok := t.Command()
	if !ok || value.IsNull() {
		return nil, nil
	}

	line, isString := value.Str()
	if !isString {
		return nil, newGeneratorError(GeneratorCommandFailed,
			fmt.Sprintf("command must be a string, got %s", value.Kind()), t.Path(), nil)
	}

	line = strings.TrimSpace(t.Expand(line))
	if line == "" {
		return nil, nil
	}

	words, err := shellquote.Split(line)
	if err != nil {
		return nil, newGeneratorError(GeneratorCommandFailed, "failed to parse command", t.Path(), err)
	}
	return words, nil
}

// runCommand runs words with dest appended as the final argument.
func runCommand(ctx context.Context, r runner.Runner, words []string, dest string) (runner.Result, error) {
	args := append(append([]string{}, words[1:]...), dest)
	debug.Debug("[generator] Running post-apply command: %s", shellquote.Join(append([]string{words[0]}, args...)...))

	result, err := r.Run(ctx, words[0], args...)
	if err != nil {
		var exitErr *runner.ExitError
		if errors.As(err, &exitErr) {
			var cause error
			if stderr := strings.TrimSpace(exitErr.Result.Stderr); stderr != "" {
				cause = errors.New(stderr)
			}
			return result, newGeneratorError(GeneratorCommandFailed,
				fmt.Sprintf("command %q exited with status %d", words[0], exitErr.Result.ExitCode),
				dest, cause)
		}
		return result, newGeneratorError(GeneratorCommandFailed,
			fmt.Sprintf("failed to run command %q", words[0]), dest, err)
	}
	return result, nil
}
