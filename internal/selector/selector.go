// Package selector chooses templates through an interactive picker.
package selector

import (
	"context"
	"errors"

	"github.com/tacogips/skel/internal/debug"
	"github.com/tacogips/skel/internal/template"
)

// ErrNothingSelected is returned by SelectOne when the user chose nothing.
var ErrNothingSelected = errors.New("nothing selected")

// Item is one entry offered to the picker.
type Item struct {
	Name    string
	Preview string
}

// Picker presents items and returns the indices the user chose.
// An abort is reported as an empty result, not an error.
type Picker interface {
	Pick(ctx context.Context, items []Item) ([]int, error)
}

// Selector selects templates through a Picker.
type Selector struct {
	picker Picker
}

// New creates a Selector backed by picker.
func New(picker Picker) *Selector {
	return &Selector{picker: picker}
}

// Select lets the user choose any number of templates. A single template is
// returned without asking; no templates or an aborted pick yield an empty
// result.
func (s *Selector) Select(ctx context.Context, templates []*template.Template) ([]*template.Template, error) {
	switch len(templates) {
	case 0:
		debug.Debug("[selector] No templates to select from")
		return nil, nil
	case 1:
		debug.Debug("[selector] Single template, skipping picker")
		return templates, nil
	}
	return s.Pick(ctx, templates)
}

// Pick always shows the picker, even for a single template. Commands that
// destroy what is chosen use it so nothing is chosen implicitly.
func (s *Selector) Pick(ctx context.Context, templates []*template.Template) ([]*template.Template, error) {
	if len(templates) == 0 {
		debug.Debug("[selector] No templates to select from")
		return nil, nil
	}

	items, err := Items(templates)
	if err != nil {
		return nil, err
	}

	indices, err := s.picker.Pick(ctx, items)
	if err != nil {
		return nil, err
	}

	chosen := make([]*template.Template, 0, len(indices))
	seen := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(templates) || seen[i] {
			continue
		}
		seen[i] = true
		chosen = append(chosen, templates[i])
	}

	debug.Debug("[selector] Selected %d of %d template(s)", len(chosen), len(templates))
	return chosen, nil
}

// SelectOne returns the first template the user chose, or ErrNothingSelected.
func (s *Selector) SelectOne(ctx context.Context, templates []*template.Template) (*template.Template, error) {
	chosen, err := s.Select(ctx, templates)
	if err != nil {
		return nil, err
	}
	if len(chosen) == 0 {
		return nil, ErrNothingSelected
	}
	return chosen[0], nil
}

// Items converts templates into picker items named by file stem, previewing
// each template's body.
func Items(templates []*template.Template) ([]Item, error) {
	items := make([]Item, 0, len(templates))
	for _, t := range templates {
		name, err := t.Name()
		if err != nil {
			return nil, err
		}
		body, err := t.Body()
		if err != nil {
			return nil, err
		}
		items = append(items, Item{Name: name, Preview: body})
	}
	return items, nil
}
