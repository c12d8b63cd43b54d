package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"
	"github.com/tagpilot/tagpilot/internal/filter"
	"github.com/tagpilot/tagpilot/internal/models"
	"github.com/tagpilot/tagpilot/internal/ui/theme"
)

// Zone ID prefixes for mouse click handling
const (
	ZoneChipTogglePrefix = "filter-chip-toggle-"
	ZoneChipRemovePrefix = "filter-chip-remove-"
)

// FilterChangedMsg is sent when a chip interaction changed the filter
type FilterChangedMsg struct {
	Clause     string
	Conditions []models.Condition
}

// FilterChips renders the active filter as a row of clickable chips. Clicking
// a connector chip flips it between AND and OR, clicking a condition chip
// removes that condition.
type FilterChips struct {
	Width int
	Theme theme.Theme

	conditions []models.Condition
	tokens     []filter.DisplayToken

	maxChipWidth int
}

// NewFilterChips creates a new chip row
func NewFilterChips(th theme.Theme) *FilterChips {
	return &FilterChips{
		Theme:        th,
		maxChipWidth: 40,
	}
}

// SetConditions replaces the condition list behind the chips
func (fc *FilterChips) SetConditions(conds []models.Condition) {
	fc.conditions = conds
	fc.rebuildTokens()
}

// Conditions returns the current condition list
func (fc *FilterChips) Conditions() []models.Condition {
	return fc.conditions
}

func (fc *FilterChips) rebuildTokens() {
	fc.tokens = filter.Tokenize(fc.conditions, filter.Callbacks{
		ToggleConnector: fc.toggleConnector,
		RemoveCondition: fc.removeCondition,
	})
}

func (fc *FilterChips) toggleConnector(conditionID string) {
	for i := range fc.conditions {
		if fc.conditions[i].ID == conditionID {
			conn := fc.conditions[i].Connector
			if conn == models.ConnectorNone {
				// Rendered as AND, so toggling yields OR
				conn = models.ConnectorAnd
			}
			fc.conditions[i].Connector = conn.Toggle()
			return
		}
	}
}

func (fc *FilterChips) removeCondition(conditionID string) {
	for i := range fc.conditions {
		if fc.conditions[i].ID != conditionID {
			continue
		}
		fc.conditions = append(fc.conditions[:i], fc.conditions[i+1:]...)
		if i == 0 && len(fc.conditions) > 0 {
			fc.conditions[0].Connector = models.ConnectorNone
		}
		return
	}
}

// HandleMouse checks whether a click landed on a chip and applies the
// corresponding mutation
func (fc *FilterChips) HandleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	for _, tok := range fc.tokens {
		var zoneID string
		switch tok.Kind {
		case filter.TokenConnector:
			zoneID = ZoneChipTogglePrefix + tok.ConditionID
		case filter.TokenCondition:
			zoneID = ZoneChipRemovePrefix + tok.ConditionID
		}
		if !zone.Get(zoneID).InBounds(msg) {
			continue
		}

		switch tok.Kind {
		case filter.TokenConnector:
			if tok.Toggle != nil {
				tok.Toggle()
			}
		case filter.TokenCondition:
			if tok.Remove != nil {
				tok.Remove()
			}
		}
		fc.rebuildTokens()

		clause := filter.Build(fc.conditions)
		conds := fc.conditions
		return func() tea.Msg {
			return FilterChangedMsg{Clause: clause, Conditions: conds}
		}
	}
	return nil
}

// View renders the chip row
func (fc *FilterChips) View() string {
	if len(fc.tokens) == 0 {
		return lipgloss.NewStyle().
			Foreground(fc.Theme.Border).
			Italic(true).
			Render("no filter")
	}

	conditionStyle := lipgloss.NewStyle().
		Foreground(fc.Theme.Background).
		Background(fc.Theme.ChipCondition).
		Padding(0, 1)
	connectorStyle := lipgloss.NewStyle().
		Foreground(fc.Theme.Background).
		Background(fc.Theme.ChipConnector).
		Bold(true).
		Padding(0, 1)

	var parts []string
	for _, tok := range fc.tokens {
		label := tok.Label
		if runewidth.StringWidth(label) > fc.maxChipWidth {
			label = runewidth.Truncate(label, fc.maxChipWidth-1, "…")
		}

		switch tok.Kind {
		case filter.TokenConnector:
			zoneID := ZoneChipTogglePrefix + tok.ConditionID
			parts = append(parts, zone.Mark(zoneID, connectorStyle.Render(label)))
		case filter.TokenCondition:
			zoneID := ZoneChipRemovePrefix + tok.ConditionID
			parts = append(parts, zone.Mark(zoneID, conditionStyle.Render(fmt.Sprintf("%s ✕", label))))
		}
	}

	row := strings.Join(parts, " ")
	if fc.Width > 0 && lipgloss.Width(row) > fc.Width {
		row = lipgloss.NewStyle().MaxWidth(fc.Width).Render(row)
	}
	return row
}
