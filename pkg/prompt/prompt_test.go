//go:build unit

package prompt

import (
	"bufio"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPromptWithInput(input string) *realPrompt {
	return &realPrompt{reader: bufio.NewReader(strings.NewReader(input))}
}

func TestRealPrompt_Confirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		expected   bool
		wantErr    bool
	}{
		{name: "yes", input: "y\n", expected: true},
		{name: "yes full word", input: "yes\n", expected: true},
		{name: "no", input: "n\n", defaultYes: true, expected: false},
		{name: "no full word", input: "no\n", defaultYes: true, expected: false},
		{name: "uppercase yes", input: "Y\n", expected: true},
		{name: "empty uses default yes", input: "\n", defaultYes: true, expected: true},
		{name: "empty uses default no", input: "\n", defaultYes: false, expected: false},
		{name: "whitespace uses default", input: "   \n", defaultYes: true, expected: true},
		{name: "garbage is an error", input: "maybe\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPromptWithInput(tt.input)

			result, err := p.Confirm("Remove worktree?", tt.defaultYes)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfirmationInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSelectWorktree_EmptyChoices(t *testing.T) {
	p := newPromptWithInput("")

	_, err := p.SelectWorktree(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoChoices)
}

var selectChoices = []WorktreeChoice{
	{Repository: "/repos/github.com/owner/repo", Branch: "release-1", Path: "/worktrees/release-1"},
	{Repository: "/repos/github.com/owner/repo", Branch: "hotfix", Path: "/worktrees/hotfix"},
	{Repository: "/repos/github.com/owner/other", Branch: "main-fix", Path: "/worktrees/main-fix"},
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func applyKeys(m selectModel, keys ...string) selectModel {
	for _, key := range keys {
		updated, _ := m.Update(keyMsg(key))
		m = updated.(selectModel)
	}
	return m
}

func TestSelectModel_EnterSelectsCurrentChoice(t *testing.T) {
	m := applyKeys(initialSelectModel(selectChoices), "down", "enter")

	require.NotNil(t, m.selected)
	assert.Equal(t, "hotfix", m.selected.Branch)
}

func TestSelectModel_NavigationStaysInBounds(t *testing.T) {
	m := applyKeys(initialSelectModel(selectChoices), "up")
	assert.Equal(t, 0, m.cursor)

	m = applyKeys(m, "down", "down", "down", "down")
	assert.Equal(t, len(selectChoices)-1, m.cursor)
}

func TestSelectModel_FilterNarrowsByBranch(t *testing.T) {
	m := applyKeys(initialSelectModel(selectChoices), "h", "o", "t")

	require.Len(t, m.filteredChoices, 1)
	assert.Equal(t, "hotfix", m.filteredChoices[0].Branch)

	m = applyKeys(m, "enter")
	require.NotNil(t, m.selected)
	assert.Equal(t, "hotfix", m.selected.Branch)
}

func TestSelectModel_FilterMatchesRepository(t *testing.T) {
	m := applyKeys(initialSelectModel(selectChoices), "o", "t", "h", "e", "r")

	require.Len(t, m.filteredChoices, 1)
	assert.Equal(t, "main-fix", m.filteredChoices[0].Branch)
}

func TestSelectModel_EscClearsFilter(t *testing.T) {
	m := applyKeys(initialSelectModel(selectChoices), "h", "o", "t", "esc")

	assert.Empty(t, m.filter)
	assert.Len(t, m.filteredChoices, len(selectChoices))
}

func TestSelectModel_BackspaceShortensFilter(t *testing.T) {
	m := applyKeys(initialSelectModel(selectChoices), "h", "o", "backspace")

	assert.Equal(t, "h", m.filter)
}

func TestSelectModel_QuitWithoutSelection(t *testing.T) {
	m := applyKeys(initialSelectModel(selectChoices), "ctrl+c")

	assert.True(t, m.quitting)
	assert.Nil(t, m.selected)
}

func TestSelectModel_ViewShowsRepositoryOnlyWhenMixed(t *testing.T) {
	mixed := initialSelectModel(selectChoices)
	assert.Contains(t, mixed.View(), "owner/other")

	single := initialSelectModel(selectChoices[:2])
	view := single.View()
	assert.Contains(t, view, "release-1")
	assert.NotContains(t, view, "owner/repo")
}
