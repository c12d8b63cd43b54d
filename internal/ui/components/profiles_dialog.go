package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/tagpilot/tagpilot/internal/models"
	"github.com/tagpilot/tagpilot/internal/ui/theme"
)

// ProfilesMode represents the dialog mode
type ProfilesMode int

const (
	ProfilesModeList ProfilesMode = iota
	ProfilesModeAdd
	ProfilesModeEdit
)

// ApplyProfileMsg is sent when a profile should be loaded into the session
type ApplyProfileMsg struct {
	Profile models.Profile
}

// SaveProfileMsg is sent when a profile should be created or updated
type SaveProfileMsg struct {
	ID          string // empty for new profiles
	Name        string
	Description string
	Tags        []string
}

// DeleteProfileMsg is sent when a profile should be deleted
type DeleteProfileMsg struct {
	ID string
}

// CloseProfilesDialogMsg is sent when dialog should close
type CloseProfilesDialogMsg struct{}

// ProfilesDialog manages saved tagging profiles
type ProfilesDialog struct {
	Width  int
	Height int
	Theme  theme.Theme

	// State
	mode     ProfilesMode
	profiles []models.Profile
	selected int
	offset   int

	// Add/Edit state
	editID           string
	nameInput        string
	descriptionInput string
	tagsInput        string
	currentField     int // 0=name, 1=description, 2=tags
}

// NewProfilesDialog creates a new profiles dialog
func NewProfilesDialog(th theme.Theme) *ProfilesDialog {
	return &ProfilesDialog{
		Width:  80,
		Height: 30,
		Theme:  th,
		mode:   ProfilesModeList,
	}
}

// SetProfiles updates the profile list
func (pd *ProfilesDialog) SetProfiles(profiles []models.Profile) {
	pd.profiles = profiles
	if pd.selected >= len(profiles) {
		pd.selected = 0
		pd.offset = 0
	}
}

// Update handles keyboard input
func (pd *ProfilesDialog) Update(msg tea.KeyMsg) (*ProfilesDialog, tea.Cmd) {
	switch pd.mode {
	case ProfilesModeList:
		return pd.handleListMode(msg)
	case ProfilesModeAdd, ProfilesModeEdit:
		return pd.handleEditMode(msg)
	}
	return pd, nil
}

func (pd *ProfilesDialog) handleListMode(msg tea.KeyMsg) (*ProfilesDialog, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return pd, func() tea.Msg {
			return CloseProfilesDialogMsg{}
		}
	case "up", "k":
		if pd.selected > 0 {
			pd.selected--
			if pd.selected < pd.offset {
				pd.offset = pd.selected
			}
		}
	case "down", "j":
		if pd.selected < len(pd.profiles)-1 {
			pd.selected++
			visibleHeight := pd.visibleHeight()
			if pd.selected >= pd.offset+visibleHeight {
				pd.offset = pd.selected - visibleHeight + 1
			}
		}
	case "enter":
		// Load selected profile
		if pd.selected < len(pd.profiles) {
			p := pd.profiles[pd.selected]
			return pd, func() tea.Msg {
				return ApplyProfileMsg{Profile: p}
			}
		}
	case "a", "n":
		// Save the current session as a new profile
		pd.mode = ProfilesModeAdd
		pd.editID = ""
		pd.nameInput = ""
		pd.descriptionInput = ""
		pd.tagsInput = ""
		pd.currentField = 0
	case "e":
		// Edit selected profile metadata
		if pd.selected < len(pd.profiles) {
			p := pd.profiles[pd.selected]
			pd.mode = ProfilesModeEdit
			pd.editID = p.ID
			pd.nameInput = p.Name
			pd.descriptionInput = p.Description
			pd.tagsInput = strings.Join(p.Tags, ", ")
			pd.currentField = 0
		}
	case "d", "x":
		// Delete selected profile
		if pd.selected < len(pd.profiles) {
			id := pd.profiles[pd.selected].ID
			return pd, func() tea.Msg {
				return DeleteProfileMsg{ID: id}
			}
		}
	}
	return pd, nil
}

func (pd *ProfilesDialog) handleEditMode(msg tea.KeyMsg) (*ProfilesDialog, tea.Cmd) {
	switch msg.String() {
	case "esc":
		pd.mode = ProfilesModeList
	case "tab":
		pd.currentField = (pd.currentField + 1) % 3
	case "shift+tab":
		pd.currentField = (pd.currentField - 1 + 3) % 3
	case "backspace":
		pd.deleteChar()
	case "enter":
		if pd.currentField == 2 {
			id := pd.editID
			name, description, tags := pd.editData()
			pd.mode = ProfilesModeList
			return pd, func() tea.Msg {
				return SaveProfileMsg{
					ID:          id,
					Name:        name,
					Description: description,
					Tags:        tags,
				}
			}
		}
		pd.currentField++
	default:
		if len(msg.String()) == 1 {
			pd.addChar(msg.String())
		}
	}
	return pd, nil
}

func (pd *ProfilesDialog) addChar(ch string) {
	switch pd.currentField {
	case 0:
		pd.nameInput += ch
	case 1:
		pd.descriptionInput += ch
	case 2:
		pd.tagsInput += ch
	}
}

func (pd *ProfilesDialog) deleteChar() {
	var field *string
	switch pd.currentField {
	case 0:
		field = &pd.nameInput
	case 1:
		field = &pd.descriptionInput
	case 2:
		field = &pd.tagsInput
	default:
		return
	}
	if len(*field) > 0 {
		*field = (*field)[:len(*field)-1]
	}
}

func (pd *ProfilesDialog) editData() (name, description string, tags []string) {
	name = pd.nameInput
	description = pd.descriptionInput

	if pd.tagsInput != "" {
		for _, part := range strings.Split(pd.tagsInput, ",") {
			tag := strings.TrimSpace(part)
			if tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	return
}

func (pd *ProfilesDialog) visibleHeight() int {
	h := pd.Height - 10
	if h < 1 {
		h = 1
	}
	return h
}

// View renders the dialog
func (pd *ProfilesDialog) View() string {
	switch pd.mode {
	case ProfilesModeList:
		return pd.renderList()
	case ProfilesModeAdd, ProfilesModeEdit:
		return pd.renderEdit()
	}
	return ""
}

func (pd *ProfilesDialog) renderList() string {
	var sections []string

	titleStyle := lipgloss.NewStyle().
		Foreground(pd.Theme.Foreground).
		Background(pd.Theme.Info).
		Padding(0, 1).
		Bold(true)
	sections = append(sections, titleStyle.Render("Tagging Profiles"))

	instrStyle := lipgloss.NewStyle().
		Foreground(pd.Theme.Border).
		Padding(0, 1)
	sections = append(sections, instrStyle.Render("↑↓: Navigate  Enter: Load  a: Save current  e: Edit  d: Delete  Esc: Close"))

	if len(pd.profiles) == 0 {
		sections = append(sections, "\nNo profiles yet. Press 'a' to save the current filter and scope.")
	} else {
		sections = append(sections, "")
		visibleStart := pd.offset
		visibleEnd := pd.offset + pd.visibleHeight()
		if visibleEnd > len(pd.profiles) {
			visibleEnd = len(pd.profiles)
		}

		clauseStyle := lipgloss.NewStyle().Foreground(pd.Theme.Border).Italic(true)

		for i := visibleStart; i < visibleEnd; i++ {
			p := pd.profiles[i]

			name := p.Name
			if runewidth.StringWidth(name) > 40 {
				name = runewidth.Truncate(name, 37, "...")
			}

			clause := p.Filter
			if clause == "" {
				clause = "(no filter)"
			}
			if runewidth.StringWidth(clause) > 60 {
				clause = runewidth.Truncate(clause, 57, "...")
			}

			line := fmt.Sprintf("%s\n  %s", name, clauseStyle.Render(clause))
			if len(p.Tags) > 0 {
				line += fmt.Sprintf(" [%s]", strings.Join(p.Tags, ", "))
			}
			if p.UsageCount > 0 {
				line += fmt.Sprintf("  (used %d times)", p.UsageCount)
			}

			style := lipgloss.NewStyle().Padding(0, 1)
			if i == pd.selected {
				style = style.Background(pd.Theme.Selection).Foreground(pd.Theme.Foreground)
			}
			sections = append(sections, style.Render(line))
		}
	}

	containerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pd.Theme.Border).
		Width(pd.Width).
		Height(pd.Height).
		Padding(1)

	return containerStyle.Render(strings.Join(sections, "\n"))
}

func (pd *ProfilesDialog) renderEdit() string {
	var sections []string

	titleStyle := lipgloss.NewStyle().
		Foreground(pd.Theme.Foreground).
		Background(pd.Theme.Info).
		Padding(0, 1).
		Bold(true)

	title := "Save Profile"
	if pd.mode == ProfilesModeEdit {
		title = "Edit Profile"
	}
	sections = append(sections, titleStyle.Render(title))

	instrStyle := lipgloss.NewStyle().
		Foreground(pd.Theme.Border).
		Padding(0, 1)
	sections = append(sections, instrStyle.Render("Tab: Next field  Enter: Save  Esc: Cancel"))

	sections = append(sections, "")
	sections = append(sections, pd.renderField("Name:", pd.nameInput, pd.currentField == 0))
	sections = append(sections, pd.renderField("Description:", pd.descriptionInput, pd.currentField == 1))
	sections = append(sections, pd.renderField("Tags (comma separated):", pd.tagsInput, pd.currentField == 2))

	containerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(pd.Theme.Border).
		Width(pd.Width).
		Height(pd.Height).
		Padding(1)

	return containerStyle.Render(strings.Join(sections, "\n"))
}

func (pd *ProfilesDialog) renderField(label, value string, active bool) string {
	style := lipgloss.NewStyle().Padding(0, 1)
	if active {
		style = style.Background(pd.Theme.Selection).Foreground(pd.Theme.Foreground)
		value = value + "_"
	}
	return style.Render(fmt.Sprintf("%s %s", label, value))
}
