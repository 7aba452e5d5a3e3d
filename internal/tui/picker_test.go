package tui

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tacogips/skel/internal/selector"
)

func testItems() []selector.Item {
	return []selector.Item{
		{Name: "alpha", Preview: "first body\nsecond line"},
		{Name: "beta", Preview: "beta body"},
		{Name: "gamma", Preview: "gamma body"},
	}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestTemplateItemMethods(t *testing.T) {
	item := templateItem{name: "readme", preview: "# Title\nmore"}

	assert.Equal(t, "[ ] readme", item.Title())
	assert.Equal(t, "readme", item.FilterValue())
	assert.Equal(t, "# Title", item.Description())

	item.selected = true
	assert.Equal(t, "[x] readme", item.Title())
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"one\ntwo", 10, "one"},
		{"a very long first line", 10, "a very ..."},
		{"", 10, ""},
		{"日本語のテキストです", 10, "日本語..."},
		{"héllo wörld, ünïcode", 10, "héllo w..."},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := firstLine(tt.in, tt.maxLen)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestModelKeyHandling(t *testing.T) {
	t.Run("enter without toggles picks highlighted", func(t *testing.T) {
		m, cmd := update(t, NewModel(testItems()), tea.KeyMsg{Type: tea.KeyEnter})
		assert.Equal(t, []int{0}, m.Result())
		assert.False(t, m.Aborted())
		assert.NotNil(t, cmd)
	})

	t.Run("space toggles and enter confirms toggled", func(t *testing.T) {
		m := NewModel(testItems())
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

		assert.Equal(t, []int{0, 2}, m.Result())
	})

	t.Run("space twice untoggles", func(t *testing.T) {
		m := NewModel(testItems())
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

		assert.Equal(t, []int{1}, m.Result())
	})

	t.Run("esc aborts", func(t *testing.T) {
		m := NewModel(testItems())
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
		m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

		assert.True(t, m.Aborted())
		assert.Empty(t, m.Result())
		assert.NotNil(t, cmd)
	})

	t.Run("ctrl+c aborts", func(t *testing.T) {
		m, _ := update(t, NewModel(testItems()), tea.KeyMsg{Type: tea.KeyCtrlC})
		assert.True(t, m.Aborted())
		assert.Empty(t, m.Result())
	})

	t.Run("q does not quit", func(t *testing.T) {
		m, _ := update(t, NewModel(testItems()), key("q"))
		assert.False(t, m.quitting)
	})

	t.Run("window size update", func(t *testing.T) {
		m, cmd := update(t, NewModel(testItems()), tea.WindowSizeMsg{Width: 100, Height: 50})
		assert.Equal(t, 100, m.width)
		assert.Equal(t, 50, m.height)
		assert.Nil(t, cmd)
	})
}

func TestModelInit(t *testing.T) {
	m := Model{}
	assert.Nil(t, m.Init())
}

func TestModelView(t *testing.T) {
	t.Run("normal view contains help and preview", func(t *testing.T) {
		view := NewModel(testItems()).View()
		assert.Contains(t, view, "[space] Toggle")
		assert.Contains(t, view, "[esc] Cancel")
		assert.Contains(t, view, "first body")
	})

	t.Run("quitting view is empty", func(t *testing.T) {
		m := NewModel(testItems())
		m.quitting = true
		assert.Equal(t, "", m.View())
	})
}

func TestPickerRequiresTerminal(t *testing.T) {
	p := &Picker{isTerminal: func() bool { return false }}
	_, err := p.Pick(context.Background(), testItems())
	assert.ErrorIs(t, err, ErrNoTerminal)
}

func TestPickerEmptyItems(t *testing.T) {
	p := &Picker{isTerminal: func() bool { return false }}
	indices, err := p.Pick(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, indices)
}

func TestPreviewTruncates(t *testing.T) {
	items := []selector.Item{{Name: "long", Preview: strings.Repeat("line\n", 100)}}
	m := NewModel(items)
	m.height = 10
	assert.Contains(t, m.preview(), "...")
}
