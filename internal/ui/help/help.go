package help

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key         string
	Description string
}

// GetGlobalKeys returns global key bindings
func GetGlobalKeys() []KeyBinding {
	return []KeyBinding{
		{"?", "Toggle help"},
		{"q, Ctrl+C", "Quit application"},
		{"Esc/Enter", "Dismiss error"},
		{"Tab", "Switch panel focus"},
		{"s", "Run scan with current filter and scope"},
		{"o", "Open scope dialog"},
		{"p", "Open tagging profiles"},
		{"/", "Search results or scan history"},
	}
}

// GetFilterKeys returns filter editor key bindings
func GetFilterKeys() []KeyBinding {
	return []KeyBinding{
		{"f", "Open filter editor"},
		{"a", "Add condition"},
		{"e", "Edit condition value"},
		{"d", "Delete condition"},
		{"c", "Toggle AND/OR connector"},
		{"y", "Copy filter clause"},
		{"Enter", "Apply filter"},
		{"v", "View full clause"},
		{"Click chip", "Toggle connector / remove condition"},
	}
}

// GetResultsKeys returns results panel key bindings
func GetResultsKeys() []KeyBinding {
	return []KeyBinding{
		{"↑/k", "Move up"},
		{"↓/j", "Move down"},
		{"Ctrl+U", "Page up"},
		{"Ctrl+D", "Page down"},
		{"x", "Export results to CSV"},
	}
}

// Render creates the help view
func Render(width, height int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("62")).
		Padding(1, 0)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("75")).
		Padding(0, 0, 0, 2)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(20)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	renderSection := func(b *strings.Builder, name string, keys []KeyBinding) {
		b.WriteString(sectionStyle.Render(name))
		b.WriteString("\n")
		for _, kb := range keys {
			b.WriteString("  ")
			b.WriteString(keyStyle.Render(kb.Key))
			b.WriteString(descStyle.Render(kb.Description))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("tagpilot - Keyboard Shortcuts"))
	b.WriteString("\n\n")

	renderSection(&b, "Global", GetGlobalKeys())
	renderSection(&b, "Filter", GetFilterKeys())
	renderSection(&b, "Results", GetResultsKeys())

	b.WriteString(lipgloss.NewStyle().Faint(true).Render("Press '?' or Esc to close help"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2).
		Width(width - 4).
		Height(height - 4)

	return boxStyle.Render(b.String())
}
