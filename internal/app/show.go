package app

import (
	"context"
	"os"

	"github.com/tacogips/skel/internal/debug"
)

// ShowOptions contains options for showing a template.
type ShowOptions struct {
	// Name selects the template. When empty the user picks.
	Name string
	// Groups restricts the templates offered to the picker.
	Groups []string
	// Raw shows the file content instead of the substituted body.
	Raw bool
	// Set holds key=value overrides applied before substitution.
	Set []string
}

// Show returns a template's substituted body, or its raw content.
func (a *App) Show(ctx context.Context, opts ShowOptions) (string, error) {
	var names []string
	if opts.Name != "" {
		names = []string{opts.Name}
	}

	templates, err := a.resolveTemplates(ctx, names, opts.Groups)
	if err != nil {
		return "", err
	}
	if len(templates) == 0 {
		return "", NewNothingSelectedError("show")
	}
	t := templates[0].Clone()
	debug.Debug("[app] Showing %s (raw: %v)", t.Path(), opts.Raw)

	if opts.Raw {
		return t.Content(), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	overrides, err := ParseAssignments(opts.Set, cwd)
	if err != nil {
		return "", err
	}
	for key, value := range overrides {
		t.ReplaceVariable(key, value)
	}

	return t.Substitute()
}
