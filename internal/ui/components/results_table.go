package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/tagpilot/tagpilot/internal/models"
	"github.com/tagpilot/tagpilot/internal/ui/theme"
)

var resultColumns = []string{"Name", "Service", "Type", "Account", "Region", "Created", "Tags"}

// ResultsTable displays matched resources with virtual scrolling
type ResultsTable struct {
	Width  int
	Height int
	Theme  theme.Theme

	resources []models.Resource
	rows      [][]string

	// Virtual scrolling state
	TopRow      int
	VisibleRows int
	SelectedRow int
	TotalRows   int

	// Column widths (calculated)
	columnWidths []int
}

// NewResultsTable creates a new results table
func NewResultsTable(th theme.Theme) *ResultsTable {
	return &ResultsTable{
		Theme: th,
	}
}

// SetResources sets the matched resources to display
func (rt *ResultsTable) SetResources(resources []models.Resource, total int) {
	rt.resources = resources
	rt.TotalRows = total
	rt.TopRow = 0
	rt.SelectedRow = 0

	rt.rows = make([][]string, 0, len(resources))
	for _, r := range resources {
		rt.rows = append(rt.rows, []string{
			r.Name,
			r.Service,
			r.Type,
			r.Account,
			r.Region,
			r.CreatedAt.Format("2006-01-02 15:04"),
			formatTags(r.Tags),
		})
	}
	rt.calculateColumnWidths()
}

// Selected returns the resource under the cursor, or nil
func (rt *ResultsTable) Selected() *models.Resource {
	if rt.SelectedRow < 0 || rt.SelectedRow >= len(rt.resources) {
		return nil
	}
	return &rt.resources[rt.SelectedRow]
}

// Len reports how many resources are loaded
func (rt *ResultsTable) Len() int {
	return len(rt.resources)
}

func formatTags(tags map[string]string) string {
	if len(tags) == 0 {
		return ""
	}
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+tags[k])
	}
	return strings.Join(parts, ", ")
}

// calculateColumnWidths calculates optimal column widths
func (rt *ResultsTable) calculateColumnWidths() {
	rt.columnWidths = make([]int, len(resultColumns))

	for i, col := range resultColumns {
		rt.columnWidths[i] = runewidth.StringWidth(col)
	}

	for _, row := range rt.rows {
		for i, cell := range row {
			if i >= len(rt.columnWidths) {
				break
			}
			if w := runewidth.StringWidth(cell); w > rt.columnWidths[i] {
				rt.columnWidths[i] = w
			}
		}
	}

	maxWidth := 40
	for i := range rt.columnWidths {
		if rt.columnWidths[i] > maxWidth {
			rt.columnWidths[i] = maxWidth
		}
		if rt.columnWidths[i] < 8 {
			rt.columnWidths[i] = 8
		}
	}
}

// View renders the table
func (rt *ResultsTable) View() string {
	if len(rt.rows) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(rt.Theme.Border).
			Italic(true)
		return emptyStyle.Render("No resources. Run a scan with 's'.")
	}

	var b strings.Builder

	b.WriteString(rt.renderHeader())
	b.WriteString("\n")
	b.WriteString(rt.renderSeparator())
	b.WriteString("\n")

	rt.VisibleRows = rt.Height - 3 // Header + separator + status
	if rt.VisibleRows < 1 {
		rt.VisibleRows = 1
	}

	endRow := rt.TopRow + rt.VisibleRows
	if endRow > len(rt.rows) {
		endRow = len(rt.rows)
	}

	for i := rt.TopRow; i < endRow; i++ {
		b.WriteString(rt.renderRow(rt.rows[i], i == rt.SelectedRow))
		if i < endRow-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(rt.renderStatus())

	return b.String()
}

func (rt *ResultsTable) renderHeader() string {
	var parts []string
	for i, col := range resultColumns {
		parts = append(parts, rt.pad(col, rt.columnWidths[i]))
	}
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(rt.Theme.TableHeader)
	return headerStyle.Render(" " + strings.Join(parts, " │ ") + " ")
}

func (rt *ResultsTable) renderSeparator() string {
	var parts []string
	for _, width := range rt.columnWidths {
		parts = append(parts, strings.Repeat("─", width))
	}
	separatorStyle := lipgloss.NewStyle().
		Foreground(rt.Theme.Border)
	return separatorStyle.Render("─" + strings.Join(parts, "─┼─") + "─")
}

func (rt *ResultsTable) renderRow(row []string, selected bool) string {
	var parts []string
	for i, cell := range row {
		if i >= len(rt.columnWidths) {
			break
		}
		parts = append(parts, rt.pad(cell, rt.columnWidths[i]))
	}

	line := " " + strings.Join(parts, " │ ") + " "

	if selected {
		return lipgloss.NewStyle().
			Background(rt.Theme.TableRowSelected).
			Foreground(rt.Theme.Foreground).
			Bold(true).
			Render(line)
	}
	return line
}

func (rt *ResultsTable) renderStatus() string {
	endRow := rt.TopRow + len(rt.rows)
	if endRow > rt.TotalRows {
		endRow = rt.TotalRows
	}

	showing := fmt.Sprintf(" %d-%d of %d resources", rt.TopRow+1, endRow, rt.TotalRows)
	return lipgloss.NewStyle().
		Foreground(rt.Theme.Border).
		Italic(true).
		Render(showing)
}

func (rt *ResultsTable) pad(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		return runewidth.Truncate(s, width-1, "…")
	}
	return s + strings.Repeat(" ", width-runewidth.StringWidth(s))
}

// MoveSelection moves the selection up or down
func (rt *ResultsTable) MoveSelection(delta int) {
	rt.SelectedRow += delta

	if rt.SelectedRow < 0 {
		rt.SelectedRow = 0
	}
	if rt.SelectedRow >= len(rt.rows) {
		rt.SelectedRow = len(rt.rows) - 1
	}

	if rt.SelectedRow < rt.TopRow {
		rt.TopRow = rt.SelectedRow
	}
	if rt.SelectedRow >= rt.TopRow+rt.VisibleRows {
		rt.TopRow = rt.SelectedRow - rt.VisibleRows + 1
	}
}

// PageUp moves one page up
func (rt *ResultsTable) PageUp() {
	rt.SelectedRow -= rt.VisibleRows
	if rt.SelectedRow < 0 {
		rt.SelectedRow = 0
	}
	rt.TopRow = rt.SelectedRow
}

// PageDown moves one page down
func (rt *ResultsTable) PageDown() {
	rt.SelectedRow += rt.VisibleRows
	if rt.SelectedRow >= len(rt.rows) {
		rt.SelectedRow = len(rt.rows) - 1
	}
	rt.TopRow = rt.SelectedRow
	if rt.TopRow+rt.VisibleRows > len(rt.rows) {
		rt.TopRow = len(rt.rows) - rt.VisibleRows
		if rt.TopRow < 0 {
			rt.TopRow = 0
		}
	}
}
