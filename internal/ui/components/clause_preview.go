package components

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/tagpilot/tagpilot/internal/ui/theme"
)

// ClausePreviewCloseMsg is sent when the clause preview should be closed
type ClausePreviewCloseMsg struct{}

// ClausePreview shows the canonical filter clause with syntax highlighting
type ClausePreview struct {
	Width   int
	Height  int
	Theme   theme.Theme
	Focused bool

	clause  string
	lines   []string
	scrollY int

	// Chroma formatter (cached for performance)
	chromaStyle     *chroma.Style
	chromaFormatter chroma.Formatter
}

// NewClausePreview creates a new clause preview
func NewClausePreview(th theme.Theme) *ClausePreview {
	cp := &ClausePreview{
		Theme: th,
		lines: []string{""},
	}
	cp.initChroma()
	return cp
}

// initChroma initializes the Chroma syntax highlighter
func (cp *ClausePreview) initChroma() {
	cp.chromaStyle = styles.Get("monokai")
	if cp.chromaStyle == nil {
		cp.chromaStyle = styles.Fallback
	}

	cp.chromaFormatter = formatters.Get("terminal256")
	if cp.chromaFormatter == nil {
		cp.chromaFormatter = formatters.Fallback
	}
}

// SetClause sets the clause text to display
func (cp *ClausePreview) SetClause(clause string) {
	cp.clause = clause
	if clause == "" {
		cp.lines = []string{""}
	} else {
		cp.lines = wrapClause(clause, cp.contentWidth())
	}
	cp.scrollY = 0
}

// Clause returns the clause currently displayed
func (cp *ClausePreview) Clause() string {
	return cp.clause
}

// CopyClause copies the clause to the clipboard
func (cp *ClausePreview) CopyClause() error {
	return clipboard.WriteAll(cp.clause)
}

// highlightLine applies SQL syntax highlighting to a single line
func (cp *ClausePreview) highlightLine(line string) string {
	if line == "" {
		return ""
	}

	lexer := lexers.Get("sql")
	if lexer == nil {
		return line
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	var buf bytes.Buffer
	if err := cp.chromaFormatter.Format(&buf, cp.chromaStyle, iterator); err != nil {
		return line
	}

	return strings.TrimSuffix(buf.String(), "\n")
}

func (cp *ClausePreview) contentWidth() int {
	w := cp.Width - 4
	if w < 20 {
		w = 20
	}
	return w
}

// wrapClause soft-wraps the clause at word boundaries
func wrapClause(clause string, width int) []string {
	words := strings.Fields(clause)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if runewidth.StringWidth(current)+1+runewidth.StringWidth(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	lines = append(lines, current)
	return lines
}

// Update handles keyboard input
func (cp *ClausePreview) Update(msg tea.KeyMsg) (*ClausePreview, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if cp.scrollY < len(cp.lines)-1 {
			cp.scrollY++
		}
	case "k", "up":
		if cp.scrollY > 0 {
			cp.scrollY--
		}
	case "y":
		_ = cp.CopyClause()
	case "q", "esc":
		return cp, func() tea.Msg {
			return ClausePreviewCloseMsg{}
		}
	}
	return cp, nil
}

// View renders the clause preview
func (cp *ClausePreview) View() string {
	if cp.Width <= 0 || cp.Height <= 0 {
		return ""
	}

	borderColor := cp.Theme.Border
	if cp.Focused {
		borderColor = cp.Theme.BorderFocused
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(cp.Theme.Info).
		Bold(true)
	emptyStyle := lipgloss.NewStyle().
		Foreground(cp.Theme.Border).
		Italic(true)
	statusStyle := lipgloss.NewStyle().
		Foreground(cp.Theme.Border).
		Italic(true)

	contentHeight := cp.Height - 4
	if contentHeight < 1 {
		contentHeight = 1
	}

	var body []string
	if cp.clause == "" {
		body = append(body, emptyStyle.Render("(no filter: all resources in scope match)"))
	} else {
		end := cp.scrollY + contentHeight
		if end > len(cp.lines) {
			end = len(cp.lines)
		}
		for i := cp.scrollY; i < end; i++ {
			body = append(body, cp.highlightLine(cp.lines[i]))
		}
	}

	sections := []string{titleStyle.Render("Filter Clause"), ""}
	sections = append(sections, body...)
	for len(sections) < contentHeight+2 {
		sections = append(sections, "")
	}
	sections = append(sections, statusStyle.Render("y:copy  q:close"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(cp.Width-2).
		Padding(0, 1).
		Render(strings.Join(sections, "\n"))
}
