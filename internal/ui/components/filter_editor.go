package components

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/tagpilot/tagpilot/internal/filter"
	"github.com/tagpilot/tagpilot/internal/models"
	"github.com/tagpilot/tagpilot/internal/ui/theme"
)

// ApplyFilterMsg is sent when a filter should be applied
type ApplyFilterMsg struct {
	Clause     string
	Conditions []models.Condition
}

// CloseFilterEditorMsg is sent when the filter editor should close
type CloseFilterEditorMsg struct{}

// FilterEditor provides an interactive UI for building filter conditions
type FilterEditor struct {
	Width  int
	Height int
	Theme  theme.Theme

	// State
	conditions      []models.Condition
	currentIndex    int    // Index in conditions list
	editMode        string // "", "field", "operation", "value"
	fieldIndex      int
	operationIndex  int
	valueInput      textinput.Model
	editingExisting bool // value mode edits the selected condition in place
	validationError string

	// Selection made in field/operation modes while adding
	selectedField models.Field
	availableOps  []filter.OperationChoice

	preview *ClausePreview
	clause  string
}

// NewFilterEditor creates a new filter editor
func NewFilterEditor(th theme.Theme) *FilterEditor {
	ti := textinput.New()
	ti.Placeholder = "value"
	ti.CharLimit = 256
	ti.Width = 40

	return &FilterEditor{
		Width:      80,
		Height:     30,
		Theme:      th,
		valueInput: ti,
		preview:    NewClausePreview(th),
	}
}

// Conditions returns the current condition list
func (fe *FilterEditor) Conditions() []models.Condition {
	return fe.conditions
}

// Clause returns the canonical clause for the current conditions
func (fe *FilterEditor) Clause() string {
	return fe.clause
}

// SetConditions replaces the condition list
func (fe *FilterEditor) SetConditions(conds []models.Condition) {
	fe.conditions = conds
	if len(fe.conditions) == 0 {
		fe.seedDefault()
	}
	if fe.currentIndex >= len(fe.conditions) {
		fe.currentIndex = len(fe.conditions) - 1
	}
	if fe.currentIndex < 0 {
		fe.currentIndex = 0
	}
	fe.refreshClause()
}

// SetClause loads the editor from clause text, reparsing it into conditions
func (fe *FilterEditor) SetClause(text string) {
	fe.SetConditions(filter.Parse(text))
}

// seedDefault adds a starter condition so the editor never shows an empty list
func (fe *FilterEditor) seedDefault() {
	fe.conditions = []models.Condition{{
		ID:        uuid.NewString(),
		Field:     models.FieldCreationDate,
		Operation: filter.DefaultOperation(models.FieldCreationDate),
		Connector: models.ConnectorNone,
	}}
	fe.currentIndex = 0
}

// refreshClause rebuilds the canonical clause after any edit
func (fe *FilterEditor) refreshClause() {
	fe.clause = filter.Build(fe.conditions)
	fe.preview.SetClause(fe.clause)
}

// Update handles keyboard input
func (fe *FilterEditor) Update(msg tea.KeyMsg) (*FilterEditor, tea.Cmd) {
	switch fe.editMode {
	case "":
		return fe.handleNavigationMode(msg)
	case "field":
		return fe.handleFieldMode(msg)
	case "operation":
		return fe.handleOperationMode(msg)
	case "value":
		return fe.handleValueMode(msg)
	}
	return fe, nil
}

// handleNavigationMode handles keys in navigation mode
func (fe *FilterEditor) handleNavigationMode(msg tea.KeyMsg) (*FilterEditor, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if fe.currentIndex > 0 {
			fe.currentIndex--
		}
	case "down", "j":
		if fe.currentIndex < len(fe.conditions)-1 {
			fe.currentIndex++
		}
	case "a", "n":
		// Add new condition
		fe.editMode = "field"
		fe.fieldIndex = 0
		fe.editingExisting = false
		fe.validationError = ""
	case "e":
		// Edit value of the selected condition
		if fe.currentIndex < len(fe.conditions) {
			fe.editingExisting = true
			fe.valueInput.SetValue(fe.conditions[fe.currentIndex].Value)
			fe.valueInput.Focus()
			fe.editMode = "value"
			fe.validationError = ""
		}
	case "c":
		// Toggle the connector joining the selected condition to the previous one
		if fe.currentIndex > 0 && fe.currentIndex < len(fe.conditions) {
			conn := fe.conditions[fe.currentIndex].Connector
			if conn == models.ConnectorNone {
				conn = models.ConnectorAnd
			}
			fe.conditions[fe.currentIndex].Connector = conn.Toggle()
			fe.refreshClause()
		}
	case "d", "x":
		// Delete current condition
		if fe.currentIndex < len(fe.conditions) {
			fe.conditions = append(
				fe.conditions[:fe.currentIndex],
				fe.conditions[fe.currentIndex+1:]...,
			)
			fe.normalizeConnectors()
			if fe.currentIndex > 0 && fe.currentIndex >= len(fe.conditions) {
				fe.currentIndex--
			}
			fe.refreshClause()
		}
	case "y":
		_ = clipboard.WriteAll(fe.clause)
	case "enter":
		// Apply filter
		if fe.clause == "" {
			fe.validationError = "Fill in at least one condition value before applying"
			return fe, nil
		}
		fe.validationError = ""
		clause := fe.clause
		conds := fe.conditions
		return fe, func() tea.Msg {
			return ApplyFilterMsg{Clause: clause, Conditions: conds}
		}
	case "esc":
		return fe, func() tea.Msg {
			return CloseFilterEditorMsg{}
		}
	}
	return fe, nil
}

// handleFieldMode handles field selection
func (fe *FilterEditor) handleFieldMode(msg tea.KeyMsg) (*FilterEditor, tea.Cmd) {
	fields := filter.Fields()
	switch msg.String() {
	case "esc":
		fe.editMode = ""
		fe.validationError = ""
	case "up", "k":
		if fe.fieldIndex > 0 {
			fe.fieldIndex--
		}
	case "down", "j":
		if fe.fieldIndex < len(fields)-1 {
			fe.fieldIndex++
		}
	case "enter":
		fe.selectedField = fields[fe.fieldIndex]
		fe.availableOps = filter.OperationsFor(fe.selectedField)
		fe.operationIndex = 0
		fe.editMode = "operation"
	}
	return fe, nil
}

// handleOperationMode handles operation selection
func (fe *FilterEditor) handleOperationMode(msg tea.KeyMsg) (*FilterEditor, tea.Cmd) {
	switch msg.String() {
	case "esc":
		fe.editMode = "field"
	case "up", "k":
		if fe.operationIndex > 0 {
			fe.operationIndex--
		}
	case "down", "j":
		if fe.operationIndex < len(fe.availableOps)-1 {
			fe.operationIndex++
		}
	case "enter":
		fe.valueInput.SetValue("")
		fe.valueInput.Focus()
		fe.editMode = "value"
	}
	return fe, nil
}

// handleValueMode handles value input
func (fe *FilterEditor) handleValueMode(msg tea.KeyMsg) (*FilterEditor, tea.Cmd) {
	switch msg.String() {
	case "esc":
		fe.valueInput.Blur()
		if fe.editingExisting {
			fe.editMode = ""
		} else {
			fe.editMode = "operation"
		}
		return fe, nil
	case "enter":
		value := fe.valueInput.Value()
		fe.valueInput.Blur()
		if fe.editingExisting {
			fe.conditions[fe.currentIndex].Value = value
		} else {
			connector := models.ConnectorNone
			if len(fe.conditions) > 0 {
				connector = models.ConnectorAnd
			}
			fe.conditions = append(fe.conditions, models.Condition{
				ID:        uuid.NewString(),
				Field:     fe.selectedField,
				Operation: fe.availableOps[fe.operationIndex].Op,
				Value:     value,
				Connector: connector,
			})
			fe.currentIndex = len(fe.conditions) - 1
		}
		fe.editMode = ""
		fe.refreshClause()
		return fe, nil
	}

	var cmd tea.Cmd
	fe.valueInput, cmd = fe.valueInput.Update(msg)
	return fe, cmd
}

// normalizeConnectors keeps the first condition connector-free after edits
func (fe *FilterEditor) normalizeConnectors() {
	for i := range fe.conditions {
		if i == 0 {
			fe.conditions[i].Connector = models.ConnectorNone
		} else if fe.conditions[i].Connector == models.ConnectorNone {
			fe.conditions[i].Connector = models.ConnectorAnd
		}
	}
}

// View renders the filter editor
func (fe *FilterEditor) View() string {
	var sections []string

	// Title
	titleStyle := lipgloss.NewStyle().
		Foreground(fe.Theme.Foreground).
		Background(fe.Theme.Info).
		Padding(0, 1).
		Bold(true)
	sections = append(sections, titleStyle.Render("Filter Editor"))

	// Instructions based on mode
	instructionStyle := lipgloss.NewStyle().
		Foreground(fe.Theme.Border).
		Padding(0, 1)

	var instructions string
	switch fe.editMode {
	case "field":
		instructions = "↑↓ Select field, Enter to confirm, Esc to cancel"
	case "operation":
		instructions = "↑↓ Select operation, Enter to confirm, Esc to go back"
	case "value":
		instructions = "Type value, Enter to confirm, Esc to go back"
	default:
		instructions = "a=Add e=Edit d=Delete c=AND/OR y=Copy Enter=Apply Esc=Cancel"
	}
	sections = append(sections, instructionStyle.Render(instructions))

	// Validation error
	if fe.validationError != "" {
		errorStyle := lipgloss.NewStyle().
			Foreground(fe.Theme.Error).
			Padding(0, 1).
			Bold(true)
		sections = append(sections, errorStyle.Render("Error: "+fe.validationError))
	}

	// Conditions list
	if len(fe.conditions) > 0 {
		sections = append(sections, "\nConditions:")
		connectorStyle := lipgloss.NewStyle().Foreground(fe.Theme.ChipConnector).Bold(true)
		for i, cond := range fe.conditions {
			condStr := fmt.Sprintf("%s %s '%s'",
				filter.FieldLabel(cond.Field),
				filter.OperationLabel(cond.Field, cond.Operation),
				cond.Value,
			)
			if i > 0 {
				connector := cond.Connector
				if connector == models.ConnectorNone {
					connector = models.ConnectorAnd
				}
				condStr = connectorStyle.Render(string(connector)) + " " + condStr
			}

			style := lipgloss.NewStyle().Padding(0, 1)
			if i == fe.currentIndex && fe.editMode == "" {
				style = style.Background(fe.Theme.Selection).Foreground(fe.Theme.Foreground)
			}
			sections = append(sections, style.Render(fmt.Sprintf(" %d. %s", i+1, condStr)))
		}
	}

	// Edit area
	if fe.editMode != "" {
		sections = append(sections, "\n")
		switch fe.editMode {
		case "field":
			sections = append(sections, "Select field:")
			for i, f := range filter.Fields() {
				style := lipgloss.NewStyle().Padding(0, 1)
				if i == fe.fieldIndex {
					style = style.Background(fe.Theme.Selection).Foreground(fe.Theme.Foreground)
				}
				sections = append(sections, style.Render("  "+filter.FieldLabel(f)))
			}
		case "operation":
			sections = append(sections, fmt.Sprintf("Field: %s", filter.FieldLabel(fe.selectedField)))
			sections = append(sections, "Select operation:")
			for i, op := range fe.availableOps {
				style := lipgloss.NewStyle().Padding(0, 1)
				if i == fe.operationIndex {
					style = style.Background(fe.Theme.Selection).Foreground(fe.Theme.Foreground)
				}
				sections = append(sections, style.Render("  "+op.Label))
			}
		case "value":
			if fe.editingExisting {
				cond := fe.conditions[fe.currentIndex]
				sections = append(sections, fmt.Sprintf("Condition: %s %s",
					filter.FieldLabel(cond.Field),
					filter.OperationLabel(cond.Field, cond.Operation)))
			} else {
				sections = append(sections, fmt.Sprintf("Condition: %s %s",
					filter.FieldLabel(fe.selectedField),
					fe.availableOps[fe.operationIndex].Label))
			}
			sections = append(sections, "Value: "+fe.valueInput.View())
		}
	}

	// Clause preview
	sections = append(sections, "\nClause Preview:")
	previewStyle := lipgloss.NewStyle().
		Padding(0, 1).
		Italic(true)
	if fe.clause == "" {
		emptyStyle := previewStyle.Foreground(fe.Theme.Border)
		sections = append(sections, emptyStyle.Render("(empty: all resources in scope match)"))
	} else {
		sections = append(sections, previewStyle.Render(fe.preview.highlightLine(fe.clause)))
	}

	content := strings.Join(sections, "\n")

	// Container
	containerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fe.Theme.Border).
		Foreground(fe.Theme.Foreground).
		Width(fe.Width).
		Height(fe.Height).
		Padding(1)

	return containerStyle.Render(content)
}
