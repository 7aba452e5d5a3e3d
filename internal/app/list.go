package app

import (
	"sort"

	"github.com/tacogips/skel/internal/generator"
)

// ListOptions contains options for listing templates.
type ListOptions struct {
	// Groups restricts the listing to templates in any of these groups.
	Groups []string
}

// ListEntry describes one stored template.
type ListEntry struct {
	Name        string
	Path        string
	Groups      []string
	Destination string
}

// List returns the stored templates sorted by name.
func (a *App) List(opts ListOptions) ([]ListEntry, error) {
	templates, err := a.Store.List(opts.Groups)
	if err != nil {
		return nil, err
	}

	entries := make([]ListEntry, 0, len(templates))
	for _, t := range templates {
		name, err := t.Name()
		if err != nil {
			return nil, err
		}
		groups, _ := t.Groups()
		dest, err := generator.Destination(t)
		if err != nil {
			dest = ""
		}
		entries = append(entries, ListEntry{
			Name:        name,
			Path:        t.Path(),
			Groups:      groups,
			Destination: dest,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}
