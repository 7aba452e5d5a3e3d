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

// RenameOptions contains options for renaming templates.
type RenameOptions struct {
	// Names selects templates by name. When empty the user picks.
	Names []string
	// Groups restricts the templates offered to the picker.
	Groups []string
	// NewName renames a single template without prompting.
	NewName string
}

// RenameResult contains the result of renaming templates.
type RenameResult struct {
	// Renamed maps old names to new names.
	Renamed map[string]string
	// Skipped lists templates left unchanged.
	Skipped []string
}

// Rename gives each chosen template a new name. A prompted name that
// collides is asked again; entering the same colliding name twice skips the
// template.
func (a *App) Rename(ctx context.Context, opts RenameOptions) (*RenameResult, error) {
	templates, err := a.resolveTemplates(ctx, opts.Names, opts.Groups)
	if err != nil {
		return nil, err
	}
	if opts.NewName != "" && len(templates) > 1 {
		return nil, NewValidationError("a new name can only be given for a single template", nil)
	}

	result := &RenameResult{Renamed: make(map[string]string)}
	if len(templates) == 0 {
		debug.Debug("[app] Nothing selected, nothing renamed")
		return result, nil
	}

	var errs []error
	for _, t := range templates {
		oldName, err := t.Name()
		if err != nil {
			errs = append(errs, err)
			continue
		}

		newName, err := a.renameOne(t, oldName, opts.NewName)
		if err != nil {
			errs = append(errs, fmt.Errorf("rename %s: %w", oldName, err))
			continue
		}
		if newName == "" || newName == oldName {
			debug.Debug("[app] Skipping rename of %q", oldName)
			result.Skipped = append(result.Skipped, oldName)
			continue
		}
		result.Renamed[oldName] = newName
	}

	return result, errors.Join(errs...)
}

// renameOne renames t and returns its new name, or "" when the user gave up
// on a colliding name.
func (a *App) renameOne(t *template.Template, oldName, given string) (string, error) {
	if given != "" {
		if err := a.Store.Rename(t, given); err != nil {
			return "", err
		}
		return given, nil
	}

	message := fmt.Sprintf("New name for %q:", oldName)
	var lastCollision string
	for {
		input, err := a.Prompter.Input(message, oldName)
		if err != nil {
			return "", err
		}
		input = strings.TrimSpace(input)

		err = a.Store.Rename(t, input)
		switch {
		case err == nil:
			return input, nil
		case store.IsCollision(err):
			if input == lastCollision {
				return "", nil
			}
			lastCollision = input
			message = fmt.Sprintf("Template %q already exists. Enter it again to skip, or a new name for %q:", input, oldName)
		case isInvalidName(err):
			message = fmt.Sprintf("%v. New name for %q:", err, oldName)
		default:
			return "", err
		}
	}
}
