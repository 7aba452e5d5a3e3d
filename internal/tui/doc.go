// Package tui provides the interactive template picker.
//
// The picker is a Bubble Tea program showing a filterable list of templates
// next to a preview of the highlighted template's body:
//
//	picker := tui.NewPicker()
//	indices, err := picker.Pick(ctx, items)
//
// # Keys
//
//   - j/k or arrows move, / filters
//   - space toggles the highlighted template
//   - enter confirms the toggled templates, or the highlighted one when none are toggled
//   - esc or ctrl+c aborts with an empty selection
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
