package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/tacogips/skel/internal/debug"
	"github.com/tacogips/skel/internal/runner"
	"github.com/tacogips/skel/internal/template"
)

// Editor opens a file for editing and blocks until the user is done.
type Editor interface {
	Edit(ctx context.Context, path string) error
}

// ExternalEditor runs an editor command with the file path appended.
type ExternalEditor struct {
	// Command is the editor command line, e.g. "code --wait".
	Command string
	// Runner runs the editor attached to the terminal.
	Runner runner.Runner
}

// NewExternalEditor creates an editor for command.
func NewExternalEditor(command string, r runner.Runner) *ExternalEditor {
	return &ExternalEditor{Command: command, Runner: r}
}

// Edit implements Editor.
func (e *ExternalEditor) Edit(ctx context.Context, path string) error {
	if strings.TrimSpace(e.Command) == "" {
		return NewAppError(EditorNotFound,
			"no editor configured (set --editor, editor in the config file, $VISUAL or $EDITOR)", nil)
	}

	words, err := shellquote.Split(e.Command)
	if err != nil {
		return NewEditorError(fmt.Sprintf("invalid editor command %q", e.Command), err)
	}

	debug.Debug("[app] Opening editor: %v %s", words, path)
	args := append(append([]string{}, words[1:]...), path)
	if _, err := e.Runner.RunAttached(ctx, words[0], args...); err != nil {
		return NewEditorError(fmt.Sprintf("editor %q failed", words[0]), err)
	}
	return nil
}

// editDraft writes content to a temporary draft file named after the
// template, lets the user edit it and returns the edited text. The draft is
// removed only when the edited text parses; otherwise its path is reported so
// the work is not lost.
func (a *App) editDraft(ctx context.Context, name, content string) (string, error) {
	draft, err := os.CreateTemp("", "skel-"+name+"-*."+a.Store.Extension())
	if err != nil {
		return "", NewEditorError("failed to create draft file", err)
	}
	path := draft.Name()

	_, err = draft.WriteString(content)
	closeErr := draft.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", NewEditorError("failed to write draft file", err)
	}

	if err := a.Editor.Edit(ctx, path); err != nil {
		_ = os.Remove(path)
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", NewEditorError("failed to read draft file", err)
	}
	edited := string(data)

	if _, err := template.ParseContent(filepath.Join(a.Store.Root(), name+"."+a.Store.Extension()), edited); err != nil {
		return "", NewInvalidTemplateError(
			fmt.Sprintf("template %q is invalid, draft kept at %s", name, path), err)
	}

	_ = os.Remove(path)
	return edited, nil
}
