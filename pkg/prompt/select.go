package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// selectModel represents the Bubble Tea model for worktree selection.
type selectModel struct {
	choices         []WorktreeChoice
	filteredChoices []WorktreeChoice
	cursor          int
	filter          string
	showRepository  bool
	selected        *WorktreeChoice
	quitting        bool
}

// initialSelectModel creates a new select model. The repository column is only
// rendered when the choices span more than one repository.
func initialSelectModel(choices []WorktreeChoice) selectModel {
	showRepository := false
	if len(choices) > 0 {
		firstRepo := choices[0].Repository
		for _, choice := range choices {
			if choice.Repository != firstRepo {
				showRepository = true
				break
			}
		}
	}

	return selectModel{
		choices:         choices,
		filteredChoices: choices,
		cursor:          0,
		filter:          "",
		showRepository:  showRepository,
		selected:        nil,
		quitting:        false,
	}
}

// Init initializes the model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyInput(msg)
	}

	return m, nil
}

func (m *selectModel) handleKeyInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.handleSpecialKeys(key) {
		return m, tea.Quit
	}

	m.handleNavigationKeys(key)
	m.handleFilterKeys(key)

	return m, nil
}

// handleSpecialKeys handles keys that cause the program to quit.
func (m *selectModel) handleSpecialKeys(key string) bool {
	switch key {
	case "ctrl+c", "q":
		m.quitting = true
		return true
	case "enter":
		if len(m.filteredChoices) > 0 && m.cursor < len(m.filteredChoices) {
			selected := m.filteredChoices[m.cursor]
			m.selected = &selected
			return true
		}
	}
	return false
}

func (m *selectModel) handleNavigationKeys(key string) {
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.filteredChoices)-1 {
			m.cursor++
		}
	}
}

func (m *selectModel) handleFilterKeys(key string) {
	switch key {
	case "backspace":
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.updateFilteredChoices()
		}
	case "esc":
		m.filter = ""
		m.updateFilteredChoices()
	default:
		if len(key) == 1 {
			m.filter += key
			m.updateFilteredChoices()
		}
	}
}

// updateFilteredChoices narrows the list to choices whose branch or repository
// contains the filter text.
func (m *selectModel) updateFilteredChoices() {
	if m.filter == "" {
		m.filteredChoices = m.choices
	} else {
		m.filteredChoices = []WorktreeChoice{}

		filterLower := strings.ToLower(m.filter)
		for _, choice := range m.choices {
			if strings.Contains(strings.ToLower(choice.Branch), filterLower) ||
				strings.Contains(strings.ToLower(choice.Repository), filterLower) {
				m.filteredChoices = append(m.filteredChoices, choice)
			}
		}
	}

	if m.cursor >= len(m.filteredChoices) {
		m.cursor = 0
	}
}

// View renders the UI.
func (m selectModel) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString("? Choose a worktree:  [Use arrows to move, type to filter]\n\n")

	if m.filter != "" {
		s.WriteString(fmt.Sprintf("Filter: %s\n\n", m.filter))
	}

	for i, choice := range m.filteredChoices {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}

		s.WriteString(fmt.Sprintf("%s %s\n", cursor, formatChoice(choice, m.showRepository)))
	}

	s.WriteString("\nPress Enter to select, Ctrl+C or q to quit")
	if m.filter != "" {
		s.WriteString(", Esc to clear filter")
	}

	return s.String()
}

// formatChoice formats a choice for display.
func formatChoice(choice WorktreeChoice, showRepository bool) string {
	if showRepository {
		return fmt.Sprintf("%s : %s", choice.Repository, choice.Branch)
	}
	return choice.Branch
}

// selectWorktreeBubbleTea runs the Bubble Tea program for worktree selection.
func selectWorktreeBubbleTea(choices []WorktreeChoice) (WorktreeChoice, error) {
	p := tea.NewProgram(initialSelectModel(choices))

	finalModel, err := p.Run()
	if err != nil {
		return WorktreeChoice{}, fmt.Errorf("failed to run selection program: %w", err)
	}

	model, ok := finalModel.(selectModel)
	if !ok {
		return WorktreeChoice{}, fmt.Errorf("unexpected model type")
	}

	if model.selected == nil {
		return WorktreeChoice{}, ErrNoSelection
	}

	return *model.selected, nil
}
