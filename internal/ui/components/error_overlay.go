package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tagpilot/tagpilot/internal/ui/theme"
)

// ErrorOverlay displays an error message centered over the UI
type ErrorOverlay struct {
	Theme theme.Theme

	title   string
	message string
}

// NewErrorOverlay creates a new error overlay
func NewErrorOverlay(th theme.Theme) *ErrorOverlay {
	return &ErrorOverlay{Theme: th}
}

// SetError sets the error to display
func (eo *ErrorOverlay) SetError(title, message string) {
	eo.title = title
	eo.message = message
}

// View renders the overlay
func (eo *ErrorOverlay) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(eo.Theme.Error).
		Bold(true)

	hintStyle := lipgloss.NewStyle().
		Foreground(eo.Theme.Border).
		Italic(true)

	var b strings.Builder
	b.WriteString(titleStyle.Render(eo.title))
	b.WriteString("\n\n")
	b.WriteString(eo.message)
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("Press Esc or Enter to dismiss"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(eo.Theme.Error).
		Padding(1, 2).
		Width(60)

	return boxStyle.Render(b.String())
}
