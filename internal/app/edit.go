package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/tacogips/skel/internal/debug"
)

// EditOptions contains options for editing templates.
type EditOptions struct {
	// Names selects templates by name. When empty the user picks.
	Names []string
	// Groups restricts the templates offered to the picker.
	Groups []string
}

// EditResult contains the result of editing templates.
type EditResult struct {
	// Edited lists the names of the templates written back.
	Edited []string
}

// Edit opens each chosen template in the editor and writes it back once it
// parses. Templates are processed independently; failures are joined.
func (a *App) Edit(ctx context.Context, opts EditOptions) (*EditResult, error) {
	templates, err := a.resolveTemplates(ctx, opts.Names, opts.Groups)
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return nil, NewNothingSelectedError("edit")
	}

	result := &EditResult{}
	var errs []error
	for _, t := range templates {
		name, err := t.Name()
		if err != nil {
			errs = append(errs, err)
			continue
		}

		debug.Debug("[app] Editing template %q", name)
		content, err := a.editDraft(ctx, name, t.Content())
		if err != nil {
			errs = append(errs, fmt.Errorf("edit %s: %w", name, err))
			continue
		}

		if err := a.Store.WriteTemplate(t, content); err != nil {
			errs = append(errs, fmt.Errorf("edit %s: %w", name, err))
			continue
		}
		result.Edited = append(result.Edited, name)
	}

	return result, errors.Join(errs...)
}
