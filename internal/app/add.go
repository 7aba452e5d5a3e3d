package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tacogips/skel/internal/debug"
	"github.com/tacogips/skel/internal/store"
	"github.com/tacogips/skel/internal/template"
)

// AddOptions contains options for adding a template.
type AddOptions struct {
	// Name is the template name. When empty the user is prompted.
	Name string
	// WithTemplate starts the draft from the documented scaffold.
	WithTemplate bool
	// FromFile starts the draft from an existing file's content.
	FromFile string
}

// AddResult contains the result of adding a template.
type AddResult struct {
	// Name is the stored template's name.
	Name string
	// Path is the file the template was written to.
	Path string
}

// Add creates a new template through an editor round trip. The store is
// only written when the edited text parses.
func (a *App) Add(ctx context.Context, opts AddOptions) (*AddResult, error) {
	if opts.WithTemplate && opts.FromFile != "" {
		return nil, NewValidationError("--with-template and --from-file cannot be used together", nil)
	}

	name, err := a.chooseNewName(opts.Name)
	if err != nil {
		return nil, err
	}

	initial, err := initialContent(opts)
	if err != nil {
		return nil, err
	}

	debug.Debug("[app] Adding template %q (initial content: %d bytes)", name, len(initial))
	content, err := a.editDraft(ctx, name, initial)
	if err != nil {
		return nil, err
	}

	if err := a.Store.Write(name, content); err != nil {
		return nil, err
	}

	path, err := a.Store.PathFor(name)
	if err != nil {
		return nil, err
	}
	return &AddResult{Name: name, Path: path}, nil
}

// chooseNewName returns a name no template uses yet. A name given up front
// must be free; a prompted name is asked again until it is.
func (a *App) chooseNewName(name string) (string, error) {
	if name != "" {
		if err := a.Store.CheckAvailable(name); err != nil {
			return "", err
		}
		return name, nil
	}

	message := "Template name:"
	for {
		input, err := a.Prompter.Input(message, "")
		if err != nil {
			return "", err
		}
		input = strings.TrimSpace(input)

		err = a.Store.CheckAvailable(input)
		switch {
		case err == nil:
			return input, nil
		case store.IsCollision(err):
			message = fmt.Sprintf("Template %q already exists. Template name:", input)
		case isInvalidName(err):
			message = fmt.Sprintf("%v. Template name:", err)
		default:
			return "", err
		}
	}
}

func isInvalidName(err error) bool {
	var se *store.StoreError
	return errors.As(err, &se) && se.Type == store.InvalidTemplateName
}

func initialContent(opts AddOptions) (string, error) {
	switch {
	case opts.WithTemplate:
		return template.DefaultContent, nil
	case opts.FromFile != "":
		content, err := template.FromFile(opts.FromFile)
		if err != nil {
			return "", NewValidationError(fmt.Sprintf("failed to read %s", opts.FromFile), err)
		}
		return content, nil
	}
	return "", nil
}
