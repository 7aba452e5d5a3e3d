// Package app implements the skel command workflows on top of the template
// store, the selector and the generator.
package app

import (
	"github.com/tacogips/skel/internal/generator"
	"github.com/tacogips/skel/internal/selector"
	"github.com/tacogips/skel/internal/store"
)

// Prompter asks the user for input.
type Prompter interface {
	// Input asks for a line of text, offering defaultValue.
	Input(message, defaultValue string) (string, error)
	// Confirm asks a yes/no question.
	Confirm(message string, defaultValue bool) (bool, error)
}

// App wires the collaborators used by the workflows.
type App struct {
	Store     *store.Store
	Selector  *selector.Selector
	Prompter  Prompter
	Editor    Editor
	Generator generator.Generator
}
