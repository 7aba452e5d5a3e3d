// Package generator materializes templates into files.
package generator

import (
	"context"
	"fmt"
	"os"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/tacogips/skel/internal/debug"
	"github.com/tacogips/skel/internal/runner"
	"github.com/tacogips/skel/internal/template"
)

// Generator materializes templates.
type Generator interface {
	// Generate renders a template into its destination and runs its
	// post-apply command.
	Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error)

	// Diff returns a unified diff from the current destination content to the
	// rendered template. It is empty when the destination is unchanged.
	Diff(ctx context.Context, opts GenerateOptions) (string, error)
}

// GenerateOptions configures a single materialization.
type GenerateOptions struct {
	// Template is the template to materialize, with any overrides applied.
	Template *template.Template

	// OutputDir is the directory the destination is resolved against.
	OutputDir string

	// Overwrite allows replacing an existing destination.
	Overwrite bool

	// DryRun renders without writing or running the command.
	DryRun bool
}

// GenerateResult describes a materialization.
type GenerateResult struct {
	// Path is the absolute destination path.
	Path string

	// Content is the rendered content, trailing newline included.
	Content string

	// Existed reports whether the destination existed beforehand.
	Existed bool

	// Command is the post-apply command that ran (or would run), without the
	// destination argument.
	Command []string

	// CommandOutput is the captured standard output of the command.
	CommandOutput string

	// DryRun reports that nothing was written.
	DryRun bool
}

// DefaultGenerator implements Generator.
type DefaultGenerator struct {
	writer Writer
	runner runner.Runner
}

// Option configures a DefaultGenerator.
type Option func(*DefaultGenerator)

// WithWriter replaces the file writer.
func WithWriter(w Writer) Option {
	return func(g *DefaultGenerator) {
		g.writer = w
	}
}

// NewGenerator creates a DefaultGenerator running commands through r.
func NewGenerator(r runner.Runner, opts ...Option) *DefaultGenerator {
	g := &DefaultGenerator{
		writer: NewFileWriter(),
		runner: r,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// rendered is a template prepared for writing.
type rendered struct {
	path    string
	content string
	command []string
}

func (g *DefaultGenerator) render(opts GenerateOptions) (*rendered, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	body, err := opts.Template.Substitute()
	if err != nil {
		return nil, err
	}

	rel, err := Destination(opts.Template)
	if err != nil {
		return nil, err
	}

	path, err := ResolvePath(opts.OutputDir, rel)
	if err != nil {
		return nil, err
	}

	command, err := CommandLine(opts.Template)
	if err != nil {
		return nil, err
	}

	return &rendered{path: path, content: body + "\n", command: command}, nil
}

// Generate implements Generator.
func (g *DefaultGenerator) Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	r, err := g.render(opts)
	if err != nil {
		return nil, err
	}

	debug.Debug("[generator] Starting generation: template=%s, dest=%s, dryRun=%v, overwrite=%v",
		opts.Template.Path(), r.path, opts.DryRun, opts.Overwrite)

	result := &GenerateResult{
		Path:    r.path,
		Content: r.content,
		Existed: g.writer.Exists(r.path),
		Command: r.command,
		DryRun:  opts.DryRun,
	}

	if result.Existed && !opts.Overwrite {
		return result, newGeneratorError(GeneratorDestinationExists,
			"destination already exists (use --force to overwrite)", r.path, nil)
	}

	if opts.DryRun {
		debug.Debug("[generator] Dry run: would write %s (size: %d bytes)", r.path, len(r.content))
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	if err := g.writer.WriteFile(r.path, []byte(r.content)); err != nil {
		return result, err
	}

	if len(r.command) > 0 {
		out, err := runCommand(ctx, g.runner, r.command, r.path)
		result.CommandOutput = out.Stdout
		if err != nil {
			return result, err
		}
	}

	debug.Debug("[generator] Generation complete: %s (existed: %v)", r.path, result.Existed)
	return result, nil
}

// Diff implements Generator.
func (g *DefaultGenerator) Diff(_ context.Context, opts GenerateOptions) (string, error) {
	r, err := g.render(opts)
	if err != nil {
		return "", err
	}

	var current string
	data, err := os.ReadFile(r.path)
	switch {
	case err == nil:
		current = string(data)
	case os.IsNotExist(err):
	default:
		return "", newGeneratorError(GeneratorWriteFailed, "failed to read destination", r.path, err)
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(current),
		FromFile: r.path,
		B:        difflib.SplitLines(r.content),
		ToFile:   r.path + " (rendered)",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}

// validateOptions validates GenerateOptions.
func validateOptions(opts GenerateOptions) error {
	if opts.Template == nil {
		return fmt.Errorf("template cannot be nil")
	}

	if opts.OutputDir == "" {
		return fmt.Errorf("output directory cannot be empty")
	}

	return nil
}
