package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tagpilot/tagpilot/internal/models"
	"github.com/tagpilot/tagpilot/internal/scope"
	"github.com/tagpilot/tagpilot/internal/ui/theme"
)

// ScopeDialog edits the account/region/service scope a scan runs against
type ScopeDialog struct {
	Width  int
	Height int
	Theme  theme.Theme

	// Discovered account entries shown as a hint list
	DiscoveredAccounts []scope.AccountEntry
	ManualMode         bool
	SelectedIndex      int

	// Manual scope fields, comma separated
	Accounts    string
	Regions     string
	Services    string
	ActiveField int
}

// NewScopeDialog creates a new scope dialog seeded from the current scope
func NewScopeDialog(th theme.Theme, current models.Scope) *ScopeDialog {
	return &ScopeDialog{
		Theme:    th,
		Accounts: strings.Join(current.Accounts, ", "),
		Regions:  strings.Join(current.Regions, ", "),
		Services: strings.Join(current.Services, ", "),
	}
}

// View renders the scope dialog
func (sd *ScopeDialog) View() string {
	if sd.Width <= 0 || sd.Height <= 0 {
		return ""
	}

	var content strings.Builder

	if sd.ManualMode {
		content.WriteString(sd.renderManualMode())
	} else {
		content.WriteString(sd.renderDiscoveryMode())
	}

	style := lipgloss.NewStyle().
		Width(sd.Width).
		Height(sd.Height).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(sd.Theme.BorderFocused)

	return style.Render(content.String())
}

func (sd *ScopeDialog) renderDiscoveryMode() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(sd.Theme.Info)
	b.WriteString(titleStyle.Render("Scan Scope"))
	b.WriteString("\n\n")

	if len(sd.DiscoveredAccounts) == 0 {
		b.WriteString("No accounts discovered.\n")
		b.WriteString("\n")
		b.WriteString("Press 'm' to enter the scope manually\n")
		return b.String()
	}

	b.WriteString("Discovered accounts:\n\n")

	for i, entry := range sd.DiscoveredAccounts {
		prefix := "  "
		if i == sd.SelectedIndex {
			prefix = "> "
		}

		label := entry.ID
		if entry.Alias != "" {
			label += " (" + entry.Alias + ")"
		}
		if len(entry.Regions) > 0 {
			label += ": " + strings.Join(entry.Regions, ", ")
		}
		b.WriteString(prefix + label + "\n")
	}

	b.WriteString("\n")
	b.WriteString("↑/↓: Select | Enter: Use account | m: Manual | Esc: Cancel\n")

	return b.String()
}

func (sd *ScopeDialog) renderManualMode() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(sd.Theme.Info)
	b.WriteString(titleStyle.Render("Manual Scope"))
	b.WriteString("\n\n")

	fields := []struct {
		label string
		value string
		index int
	}{
		{"Accounts:", sd.Accounts, 0},
		{"Regions:", sd.Regions, 1},
		{"Services:", sd.Services, 2},
	}

	for _, field := range fields {
		prefix := "  "
		if field.index == sd.ActiveField {
			prefix = "> "
		}
		b.WriteString(fmt.Sprintf("%s%-10s %s\n", prefix, field.label, field.value))
	}

	b.WriteString("\n")
	b.WriteString("Comma separated; leave a field empty to match everything.\n")
	b.WriteString("↑/↓: Navigate | Type to edit | Enter: Apply | Esc: Cancel\n")

	return b.String()
}

// HandleInput processes text input for the active field in manual mode
func (sd *ScopeDialog) HandleInput(char rune) {
	if !sd.ManualMode {
		return
	}

	switch sd.ActiveField {
	case 0:
		sd.Accounts += string(char)
	case 1:
		sd.Regions += string(char)
	case 2:
		sd.Services += string(char)
	}
}

// HandleBackspace removes the last character from the active field
func (sd *ScopeDialog) HandleBackspace() {
	if !sd.ManualMode {
		return
	}

	var field *string
	switch sd.ActiveField {
	case 0:
		field = &sd.Accounts
	case 1:
		field = &sd.Regions
	case 2:
		field = &sd.Services
	default:
		return
	}

	if len(*field) > 0 {
		*field = (*field)[:len(*field)-1]
	}
}

// MoveSelection moves the selection up or down
func (sd *ScopeDialog) MoveSelection(delta int) {
	if sd.ManualMode {
		sd.ActiveField += delta
		if sd.ActiveField < 0 {
			sd.ActiveField = 2
		}
		if sd.ActiveField > 2 {
			sd.ActiveField = 0
		}
		return
	}

	if len(sd.DiscoveredAccounts) == 0 {
		sd.SelectedIndex = 0
		return
	}
	sd.SelectedIndex += delta
	if sd.SelectedIndex < 0 {
		sd.SelectedIndex = 0
	}
	if sd.SelectedIndex >= len(sd.DiscoveredAccounts) {
		sd.SelectedIndex = len(sd.DiscoveredAccounts) - 1
	}
}

// GetSelectedAccount returns the currently selected discovered account
func (sd *ScopeDialog) GetSelectedAccount() *scope.AccountEntry {
	if sd.ManualMode || sd.SelectedIndex < 0 || sd.SelectedIndex >= len(sd.DiscoveredAccounts) {
		return nil
	}
	return &sd.DiscoveredAccounts[sd.SelectedIndex]
}

// GetScope returns the scope built from the manual fields
func (sd *ScopeDialog) GetScope() models.Scope {
	return models.Scope{
		Accounts: splitScopeList(sd.Accounts),
		Regions:  splitScopeList(sd.Regions),
		Services: splitScopeList(sd.Services),
	}
}

func splitScopeList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		item := strings.TrimSpace(part)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
