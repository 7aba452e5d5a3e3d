package app

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/tacogips/skel/internal/debug"
	"github.com/tacogips/skel/internal/generator"
	"github.com/tacogips/skel/internal/template"
)

// ApplyOptions contains options for applying templates.
type ApplyOptions struct {
	// Names selects templates by name.
	Names []string
	// Groups restricts the candidate templates.
	Groups []string
	// Fuzzy lets the user pick among the candidates even when groups are given.
	Fuzzy bool
	// Set holds key=value variable overrides.
	Set []string
	// Interactive prompts for every free variable and unresolved placeholder.
	Interactive bool
	// Force overwrites existing destinations.
	Force bool
	// DryRun renders without writing or running commands.
	DryRun bool
	// OutputDir is the directory destinations are resolved against.
	OutputDir string
}

// ApplyResult contains the results of applying templates.
type ApplyResult struct {
	// Results holds one entry per template that was applied.
	Results []*generator.GenerateResult
}

// Apply materializes the chosen templates into OutputDir. Without names or
// groups the user picks; with groups and no names every template in them is
// applied unless Fuzzy is set. Templates are processed independently and
// failures are joined.
func (a *App) Apply(ctx context.Context, opts ApplyOptions) (*ApplyResult, error) {
	if opts.OutputDir == "" {
		return nil, NewValidationError("output directory cannot be empty", nil)
	}

	overrides, err := ParseAssignments(opts.Set, opts.OutputDir)
	if err != nil {
		return nil, err
	}

	templates, err := a.applyCandidates(ctx, opts)
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return nil, NewNothingSelectedError("apply")
	}

	result := &ApplyResult{}
	var errs []error
	for _, t := range templates {
		name, err := t.Name()
		if err != nil {
			errs = append(errs, err)
			continue
		}

		res, err := a.applyOne(ctx, t.Clone(), overrides, opts)
		if err != nil {
			errs = append(errs, NewApplyError(fmt.Sprintf("failed to apply template %q", name), err))
			continue
		}
		result.Results = append(result.Results, res)
	}

	return result, errors.Join(errs...)
}

func (a *App) applyCandidates(ctx context.Context, opts ApplyOptions) ([]*template.Template, error) {
	if len(opts.Names) > 0 || opts.Fuzzy || len(opts.Groups) == 0 {
		return a.resolveTemplates(ctx, opts.Names, opts.Groups)
	}
	return a.Store.List(opts.Groups)
}

func (a *App) applyOne(ctx context.Context, t *template.Template, overrides map[string]template.Value, opts ApplyOptions) (*generator.GenerateResult, error) {
	for key, value := range overrides {
		t.ReplaceVariable(key, value)
	}

	if opts.Interactive {
		if err := a.promptVariables(t, overrides); err != nil {
			return nil, err
		}
	}

	genOpts := generator.GenerateOptions{
		Template:  t,
		OutputDir: opts.OutputDir,
		Overwrite: opts.Force,
		DryRun:    opts.DryRun,
	}

	res, err := a.Generator.Generate(ctx, genOpts)
	if err == nil || !opts.Interactive || !generator.IsGeneratorError(err, generator.GeneratorDestinationExists) {
		return res, err
	}

	diff, diffErr := a.Generator.Diff(ctx, genOpts)
	if diffErr != nil {
		return nil, diffErr
	}
	if diff == "" {
		debug.Debug("[app] %s is unchanged, skipping overwrite", res.Path)
		return res, nil
	}

	overwrite, promptErr := a.Prompter.Confirm(fmt.Sprintf("%s exists:\n%s\nOverwrite?", res.Path, diff), false)
	if promptErr != nil {
		return nil, promptErr
	}
	if !overwrite {
		return nil, err
	}

	genOpts.Overwrite = true
	return a.Generator.Generate(ctx, genOpts)
}

// promptVariables asks for every free variable and every placeholder the
// header leaves undefined, skipping overridden keys and sequences.
func (a *App) promptVariables(t *template.Template, overrides map[string]template.Value) error {
	placeholders, err := t.Placeholders()
	if err != nil {
		return err
	}

	keys := make(map[string]struct{})
	for _, key := range t.FreeVariables() {
		keys[key] = struct{}{}
	}
	for _, key := range placeholders {
		if !template.IsReserved(key) {
			keys[key] = struct{}{}
		}
	}

	sorted := make([]string, 0, len(keys))
	for key := range keys {
		if _, overridden := overrides[key]; !overridden {
			sorted = append(sorted, key)
		}
	}
	sort.Strings(sorted)

	for _, key := range sorted {
		value, ok := t.Variable(key)
		if ok && value.Kind() == template.KindSequence {
			continue
		}

		var current string
		if ok && !value.IsNull() {
			current, _ = value.Str()
		}

		input, err := a.Prompter.Input(key+":", current)
		if err != nil {
			return err
		}
		t.ReplaceVariable(key, template.StringValue(input))
	}
	return nil
}
