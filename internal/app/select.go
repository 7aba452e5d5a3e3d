package app

import (
	"context"
	"errors"

	"github.com/tacogips/skel/internal/debug"
	"github.com/tacogips/skel/internal/template"
)

// resolveTemplates returns the templates a command operates on: the named
// ones when names are given, otherwise the user's pick among the templates
// in groups.
func (a *App) resolveTemplates(ctx context.Context, names, groups []string) ([]*template.Template, error) {
	return a.resolve(ctx, names, groups, a.Selector.Select)
}

// pickTemplates is resolveTemplates without the single-candidate shortcut:
// the picker is shown even when only one template matches.
func (a *App) pickTemplates(ctx context.Context, names, groups []string) ([]*template.Template, error) {
	return a.resolve(ctx, names, groups, a.Selector.Pick)
}

type chooseFunc func(context.Context, []*template.Template) ([]*template.Template, error)

func (a *App) resolve(ctx context.Context, names, groups []string, choose chooseFunc) ([]*template.Template, error) {
	if len(names) > 0 {
		return a.findAll(names)
	}

	candidates, err := a.Store.List(groups)
	if err != nil {
		return nil, err
	}
	debug.Debug("[app] Picking among %d template(s)", len(candidates))
	return choose(ctx, candidates)
}

// findAll looks up every name, reporting all missing names together.
func (a *App) findAll(names []string) ([]*template.Template, error) {
	var (
		templates []*template.Template
		errs      []error
	)
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		t, err := a.Store.Find(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		templates = append(templates, t)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return templates, nil
}
