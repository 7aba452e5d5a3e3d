package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tacogips/skel/internal/generator"
	"github.com/tacogips/skel/internal/runner"
	"github.com/tacogips/skel/internal/selector"
	"github.com/tacogips/skel/internal/store"
)

// fakePrompter answers prompts from queues and records the messages.
type fakePrompter struct {
	inputs   []string
	confirms []bool
	messages []string
	defaults []string
}

func (p *fakePrompter) Input(message, defaultValue string) (string, error) {
	p.messages = append(p.messages, message)
	p.defaults = append(p.defaults, defaultValue)
	if len(p.inputs) == 0 {
		return "", errors.New("unexpected prompt: " + message)
	}
	in := p.inputs[0]
	p.inputs = p.inputs[1:]
	return in, nil
}

func (p *fakePrompter) Confirm(message string, _ bool) (bool, error) {
	p.messages = append(p.messages, message)
	if len(p.confirms) == 0 {
		return false, errors.New("unexpected confirm: " + message)
	}
	c := p.confirms[0]
	p.confirms = p.confirms[1:]
	return c, nil
}

// fakeEditor replaces the edited file's content with the next entry of writes.
type fakeEditor struct {
	writes []string
	seen   []string
	err    error
}

func (e *fakeEditor) Edit(_ context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	e.seen = append(e.seen, string(data))
	if e.err != nil {
		return e.err
	}
	if len(e.writes) == 0 {
		return nil
	}
	next := e.writes[0]
	e.writes = e.writes[1:]
	return os.WriteFile(path, []byte(next), 0644)
}

// fakePicker returns fixed indices.
type fakePicker struct {
	indices []int
	calls   int
}

func (p *fakePicker) Pick(_ context.Context, _ []selector.Item) ([]int, error) {
	p.calls++
	return p.indices, nil
}

type fixture struct {
	app      *App
	store    *store.Store
	prompter *fakePrompter
	editor   *fakeEditor
	picker   *fakePicker
	runner   *runner.Mock
	outDir   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	s, err := store.Load(filepath.Join(t.TempDir(), "store"))
	require.NoError(t, err)

	f := &fixture{
		store:    s,
		prompter: &fakePrompter{},
		editor:   &fakeEditor{},
		picker:   &fakePicker{},
		runner:   runner.NewMock(),
		outDir:   t.TempDir(),
	}
	f.app = &App{
		Store:     s,
		Selector:  selector.New(f.picker),
		Prompter:  f.prompter,
		Editor:    f.editor,
		Generator: generator.NewGenerator(f.runner),
	}
	return f
}

func (f *fixture) write(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, f.store.Write(name, content))
}

func (f *fixture) content(t *testing.T, name string) string {
	t.Helper()
	tmpl, err := f.store.Find(name)
	require.NoError(t, err)
	return tmpl.Content()
}
