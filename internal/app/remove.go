package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/tacogips/skel/internal/debug"
)

// RemoveOptions contains options for removing templates.
type RemoveOptions struct {
	// Names selects templates by name. When empty the user picks.
	Names []string
	// Groups restricts the templates offered to the picker.
	Groups []string
}

// RemoveResult contains the result of removing templates.
type RemoveResult struct {
	// Removed lists the names of the deleted templates.
	Removed []string
}

// Remove deletes the chosen templates. Without names the picker is always
// shown, even for a single candidate. Choosing nothing is not an error.
func (a *App) Remove(ctx context.Context, opts RemoveOptions) (*RemoveResult, error) {
	templates, err := a.pickTemplates(ctx, opts.Names, opts.Groups)
	if err != nil {
		return nil, err
	}

	result := &RemoveResult{}
	if len(templates) == 0 {
		debug.Debug("[app] Nothing selected, nothing removed")
		return result, nil
	}

	var errs []error
	for _, t := range templates {
		name, err := t.Name()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := a.Store.Remove(t); err != nil {
			errs = append(errs, fmt.Errorf("remove %s: %w", name, err))
			continue
		}
		result.Removed = append(result.Removed, name)
	}

	return result, errors.Join(errs...)
}
