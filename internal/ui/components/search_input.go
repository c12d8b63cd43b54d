package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tagpilot/tagpilot/internal/ui/theme"
)

// SearchInputMsg is sent when search should be executed
type SearchInputMsg struct {
	Query string
	Mode  string // "results" or "history"
}

// CloseSearchMsg is sent when search should be closed
type CloseSearchMsg struct{}

// SearchInput provides a search input box over loaded results or scan history
type SearchInput struct {
	Input   textinput.Model
	Mode    string // "results" or "history"
	Theme   theme.Theme
	Width   int
	Visible bool
}

// NewSearchInput creates a new search input
func NewSearchInput(th theme.Theme) *SearchInput {
	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 40

	return &SearchInput{
		Input: ti,
		Mode:  "results",
		Theme: th,
	}
}

// ToggleMode switches between results and history search
func (s *SearchInput) ToggleMode() {
	if s.Mode == "results" {
		s.Mode = "history"
	} else {
		s.Mode = "results"
	}
}

// Reset clears the search input
func (s *SearchInput) Reset() {
	s.Input.SetValue("")
	s.Mode = "results"
}

// Update handles messages
func (s *SearchInput) Update(msg tea.Msg) (*SearchInput, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			s.ToggleMode()
			return s, nil
		case "enter":
			query := s.Input.Value()
			if query != "" {
				mode := s.Mode
				return s, func() tea.Msg {
					return SearchInputMsg{Query: query, Mode: mode}
				}
			}
			return s, nil
		case "esc":
			return s, func() tea.Msg {
				return CloseSearchMsg{}
			}
		}
	}

	var cmd tea.Cmd
	s.Input, cmd = s.Input.Update(msg)
	return s, cmd
}

// View renders the search input
func (s *SearchInput) View() string {
	modeIndicator := "[Results]"
	modeColor := s.Theme.Success
	if s.Mode == "history" {
		modeIndicator = "[History]"
		modeColor = s.Theme.Info
	}

	modeStyle := lipgloss.NewStyle().
		Foreground(modeColor).
		Bold(true)

	inputWidth := s.Width - 20
	if inputWidth < 20 {
		inputWidth = 20
	}
	s.Input.Width = inputWidth

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.Theme.BorderFocused).
		Padding(0, 1).
		Width(s.Width)

	helpStyle := lipgloss.NewStyle().
		Foreground(s.Theme.Border).
		Italic(true)

	content := modeStyle.Render(modeIndicator) + " " + s.Input.View()
	helpText := helpStyle.Render("Tab: toggle mode │ Enter: search │ Esc: close")

	return boxStyle.Render(content + "\n" + helpText)
}
