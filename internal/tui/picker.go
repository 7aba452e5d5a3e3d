package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"

	"github.com/tacogips/skel/internal/debug"
	"github.com/tacogips/skel/internal/selector"
)

// ErrNoTerminal is returned when the picker is started without a terminal.
var ErrNoTerminal = errors.New("interactive selection requires a terminal")

// templateItem implements list.Item for template display
type templateItem struct {
	index    int
	name     string
	preview  string
	selected bool
}

func (i templateItem) Title() string {
	if i.selected {
		return "[x] " + i.name
	}
	return "[ ] " + i.name
}

func (i templateItem) Description() string {
	return firstLine(i.preview, 40)
}

func (i templateItem) FilterValue() string {
	return i.name
}

// firstLine returns the first line of s cut to maxLen terminal cells.
func firstLine(s string, maxLen int) string {
	line, _, _ := strings.Cut(s, "\n")
	return ansi.Truncate(line, maxLen, "...")
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1)
)

// Model is the bubbletea model for the template picker
type Model struct {
	list     list.Model
	result   []int
	aborted  bool
	quitting bool
	width    int
	height   int
}

// NewModel creates the picker model for items.
func NewModel(items []selector.Item) Model {
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = templateItem{index: i, name: it.Name, preview: it.Preview}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(listItems, delegate, 40, 20)
	l.Title = "skel - Select Templates"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.Styles.Title = titleStyle

	return Model{
		list:   l,
		width:  80,
		height: 24,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width/2, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.abort()
		}

		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case " ":
			m.toggle()
			return m, nil

		case "enter":
			m.result = m.chosen()
			m.quitting = true
			return m, tea.Quit

		case "esc":
			if m.list.FilterState() == list.FilterApplied {
				break
			}
			return m.abort()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) abort() (tea.Model, tea.Cmd) {
	m.result = nil
	m.aborted = true
	m.quitting = true
	return m, tea.Quit
}

func (m *Model) toggle() {
	item, ok := m.list.SelectedItem().(templateItem)
	if !ok {
		return
	}
	item.selected = !item.selected
	m.list.SetItem(item.index, item)
}

// chosen returns the toggled indices, or the highlighted one when nothing is
// toggled.
func (m Model) chosen() []int {
	var indices []int
	for _, it := range m.list.Items() {
		if item, ok := it.(templateItem); ok && item.selected {
			indices = append(indices, item.index)
		}
	}
	if len(indices) > 0 {
		sort.Ints(indices)
		return indices
	}

	if item, ok := m.list.SelectedItem().(templateItem); ok {
		return []int{item.index}
	}
	return nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("[space] Toggle  [enter] Confirm  [/] Filter  [esc] Cancel")

	return lipgloss.JoinHorizontal(lipgloss.Top, m.list.View(), m.preview()) + "\n" + help
}

func (m Model) preview() string {
	item, ok := m.list.SelectedItem().(templateItem)
	if !ok {
		return ""
	}

	maxLines := m.height - 6
	if maxLines < 1 {
		maxLines = 1
	}
	lines := strings.Split(item.preview, "\n")
	if len(lines) > maxLines {
		lines = append(lines[:maxLines], "...")
	}

	width := m.width - m.width/2 - 4
	if width < 10 {
		width = 10
	}
	return previewStyle.Width(width).Render(strings.Join(lines, "\n"))
}

// Result returns the chosen indices. It is empty when the picker was aborted.
func (m Model) Result() []int {
	return m.result
}

// Aborted reports whether the user cancelled the picker.
func (m Model) Aborted() bool {
	return m.aborted
}

// Picker runs the template picker on the terminal. It implements
// selector.Picker.
type Picker struct {
	isTerminal func() bool
}

// NewPicker creates a picker that requires stdin and stdout to be terminals.
func NewPicker() *Picker {
	return &Picker{isTerminal: stdioIsTerminal}
}

func stdioIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// Pick runs the interactive picker over items.
func (p *Picker) Pick(ctx context.Context, items []selector.Item) ([]int, error) {
	if len(items) == 0 {
		return nil, nil
	}
	if !p.isTerminal() {
		return nil, ErrNoTerminal
	}

	debug.Debug("[tui] Starting picker with %d item(s)", len(items))

	prog := tea.NewProgram(NewModel(items), tea.WithAltScreen(), tea.WithContext(ctx))
	finalModel, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("picker failed: %w", err)
	}

	m := finalModel.(Model)
	debug.Debug("[tui] Picker finished (aborted: %v, chosen: %v)", m.Aborted(), m.Result())
	return m.Result(), nil
}
