package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/tagpilot/tagpilot/internal/config"
	"github.com/tagpilot/tagpilot/internal/creds"
	"github.com/tagpilot/tagpilot/internal/export"
	"github.com/tagpilot/tagpilot/internal/filter"
	"github.com/tagpilot/tagpilot/internal/history"
	"github.com/tagpilot/tagpilot/internal/inventory"
	"github.com/tagpilot/tagpilot/internal/models"
	"github.com/tagpilot/tagpilot/internal/profile"
	"github.com/tagpilot/tagpilot/internal/scope"
	"github.com/tagpilot/tagpilot/internal/ui/components"
	"github.com/tagpilot/tagpilot/internal/ui/help"
	"github.com/tagpilot/tagpilot/internal/ui/theme"
)

// App is the main application model
type App struct {
	state  models.AppState
	config *config.Config
	theme  theme.Theme

	leftPanel  components.Panel
	rightPanel components.Panel

	// Filter surfaces
	filterChips   *components.FilterChips
	clausePreview *components.ClausePreview
	filterEditor  *components.FilterEditor
	showEditor    bool
	showPreview   bool

	// Results
	resultsTable *components.ResultsTable

	// Dialogs
	showScopeDialog    bool
	scopeDialog        *components.ScopeDialog
	showProfilesDialog bool
	profilesDialog     *components.ProfilesDialog
	showSearch         bool
	searchInput        *components.SearchInput

	// Error overlay
	showError    bool
	errorOverlay *components.ErrorOverlay

	// Transient one-line feedback in the bottom bar
	statusMessage string

	// Stores
	profiles      *profile.Manager
	historyStore  *history.Store
	passwordStore *creds.PasswordStore

	// Inventory connection, established on first scan
	poolMu sync.Mutex
	pool   *inventory.Pool

	scanning bool
}

// ScanCompleteMsg is sent when an inventory scan finishes
type ScanCompleteMsg struct {
	Run       models.ScanRun
	Resources []models.Resource
}

// ErrorMsg is sent when an error occurs
type ErrorMsg struct {
	Title   string
	Message string
}

// New creates a new App instance with config
func New(cfg *config.Config) (*App, error) {
	state := models.NewAppState()

	themeName := "default"
	if cfg != nil && cfg.UI.Theme != "" {
		themeName = cfg.UI.Theme
	}
	th := theme.GetTheme(themeName)

	configDir, err := config.GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("resolving config dir: %w", err)
	}
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating config dir: %w", err)
	}

	profiles, err := profile.NewManager(configDir)
	if err != nil {
		return nil, fmt.Errorf("opening profiles: %w", err)
	}

	var historyStore *history.Store
	if cfg.History.Enabled {
		historyStore, err = history.NewStore(filepath.Join(configDir, "history.db"))
		if err != nil {
			return nil, fmt.Errorf("opening scan history: %w", err)
		}
	}

	passwordStore, err := creds.NewPasswordStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("opening credential store: %w", err)
	}

	// Initial scope: config defaults enriched by the accounts file and env
	initialScope := scope.Discover(models.Scope{
		Accounts: cfg.General.DefaultAccounts,
		Regions:  cfg.General.DefaultRegions,
		Services: cfg.General.DefaultServices,
	})
	state.ActiveScope = &initialScope

	a := &App{
		state:          state,
		config:         cfg,
		theme:          th,
		filterChips:    components.NewFilterChips(th),
		clausePreview:  components.NewClausePreview(th),
		filterEditor:   components.NewFilterEditor(th),
		resultsTable:   components.NewResultsTable(th),
		profilesDialog: components.NewProfilesDialog(th),
		searchInput:    components.NewSearchInput(th),
		errorOverlay:   components.NewErrorOverlay(th),
		profiles:       profiles,
		historyStore:   historyStore,
		passwordStore:  passwordStore,
		leftPanel: components.Panel{
			Title: "Filter & Scope",
			Theme: th,
		},
		rightPanel: components.Panel{
			Title: "Resources",
			Theme: th,
		},
	}

	a.profilesDialog.SetProfiles(profiles.GetAll())
	a.updatePanelDimensions()
	a.updatePanelStyles()

	return a, nil
}

// Close releases the stores and the inventory connection
func (a *App) Close() {
	if a.historyStore != nil {
		_ = a.historyStore.Close()
	}
	a.poolMu.Lock()
	if a.pool != nil {
		a.pool.Close()
	}
	a.poolMu.Unlock()
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ErrorMsg:
		a.ShowError(msg.Title, msg.Message)
		return a, nil

	case tea.MouseMsg:
		if cmd := a.filterChips.HandleMouse(msg); cmd != nil {
			return a, cmd
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case components.FilterChangedMsg:
		a.setFilter(msg.Clause, msg.Conditions)
		return a, nil

	case components.ApplyFilterMsg:
		a.showEditor = false
		a.setFilter(msg.Clause, msg.Conditions)
		return a, nil

	case components.CloseFilterEditorMsg:
		a.showEditor = false
		return a, nil

	case components.ClausePreviewCloseMsg:
		a.showPreview = false
		return a, nil

	case components.ApplyProfileMsg:
		a.showProfilesDialog = false
		a.applyProfile(msg.Profile)
		return a, nil

	case components.SaveProfileMsg:
		a.saveProfile(msg)
		return a, nil

	case components.DeleteProfileMsg:
		if err := a.profiles.Delete(msg.ID); err != nil {
			a.ShowError("Profile Error", err.Error())
		}
		a.profilesDialog.SetProfiles(a.profiles.GetAll())
		return a, nil

	case components.CloseProfilesDialogMsg:
		a.showProfilesDialog = false
		return a, nil

	case components.SearchInputMsg:
		a.showSearch = false
		a.runSearch(msg.Query, msg.Mode)
		return a, nil

	case components.CloseSearchMsg:
		a.showSearch = false
		a.searchInput.Reset()
		a.resultsTable.SetResources(a.state.LastResults, len(a.state.LastResults))
		return a, nil

	case ScanCompleteMsg:
		a.scanning = false
		a.finishScan(msg)
		return a, nil

	case tea.WindowSizeMsg:
		a.state.Width = msg.Width
		a.state.Height = msg.Height
		a.updatePanelDimensions()
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Error overlay consumes keys first
	if a.showError {
		switch msg.String() {
		case "esc", "enter":
			a.DismissError()
		case "q", "ctrl+c":
			return a, tea.Quit
		}
		return a, nil
	}

	if a.showEditor {
		var cmd tea.Cmd
		a.filterEditor, cmd = a.filterEditor.Update(msg)
		return a, cmd
	}

	if a.showPreview {
		var cmd tea.Cmd
		a.clausePreview, cmd = a.clausePreview.Update(msg)
		return a, cmd
	}

	if a.showProfilesDialog {
		var cmd tea.Cmd
		a.profilesDialog, cmd = a.profilesDialog.Update(msg)
		return a, cmd
	}

	if a.showSearch {
		var cmd tea.Cmd
		a.searchInput, cmd = a.searchInput.Update(msg)
		return a, cmd
	}

	if a.showScopeDialog {
		return a.handleScopeDialog(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		if a.state.ViewMode == models.HelpMode {
			a.state.ViewMode = models.NormalMode
			return a, nil
		}
		return a, tea.Quit
	case "?":
		if a.state.ViewMode == models.HelpMode {
			a.state.ViewMode = models.NormalMode
		} else {
			a.state.ViewMode = models.HelpMode
		}
	case "esc":
		if a.state.ViewMode == models.HelpMode {
			a.state.ViewMode = models.NormalMode
		}
	case "f":
		a.filterEditor.SetClause(a.state.ActiveFilter)
		a.showEditor = true
	case "v":
		a.clausePreview.SetClause(a.state.ActiveFilter)
		a.showPreview = true
	case "o":
		a.openScopeDialog()
	case "p":
		a.profilesDialog.SetProfiles(a.profiles.GetAll())
		a.showProfilesDialog = true
	case "/":
		a.searchInput.Reset()
		a.showSearch = true
	case "s":
		if !a.scanning {
			a.scanning = true
			a.statusMessage = "scanning..."
			return a, a.startScan()
		}
	case "x":
		a.exportResults()
	case "tab":
		if a.state.ViewMode == models.NormalMode {
			if a.state.FocusedPanel == models.FilterPanel {
				a.state.FocusedPanel = models.ResultsPanel
			} else {
				a.state.FocusedPanel = models.FilterPanel
			}
			a.updatePanelStyles()
		}
	default:
		if a.state.FocusedPanel == models.ResultsPanel && a.state.ViewMode == models.NormalMode {
			switch msg.String() {
			case "up", "k":
				a.resultsTable.MoveSelection(-1)
			case "down", "j":
				a.resultsTable.MoveSelection(1)
			case "ctrl+u":
				a.resultsTable.PageUp()
			case "ctrl+d":
				a.resultsTable.PageDown()
			}
		}
	}
	return a, nil
}

// setFilter replaces the active filter everywhere it is displayed
func (a *App) setFilter(clause string, conds []models.Condition) {
	a.state.ActiveFilter = clause
	a.filterChips.SetConditions(conds)
	a.clausePreview.SetClause(clause)
}

func (a *App) applyProfile(p models.Profile) {
	conds := filter.Parse(p.Filter)
	a.setFilter(filter.Build(conds), conds)
	scopeCopy := p.Scope
	a.state.ActiveScope = &scopeCopy
	if err := a.profiles.RecordUsage(p.ID); err == nil {
		a.profilesDialog.SetProfiles(a.profiles.GetAll())
	}
	a.statusMessage = fmt.Sprintf("loaded profile %q", p.Name)
}

func (a *App) saveProfile(msg components.SaveProfileMsg) {
	currentScope := models.Scope{}
	if a.state.ActiveScope != nil {
		currentScope = *a.state.ActiveScope
	}

	var err error
	if msg.ID == "" {
		_, err = a.profiles.Add(msg.Name, msg.Description, a.state.ActiveFilter, currentScope, msg.Tags)
	} else {
		existing, getErr := a.profiles.Get(msg.ID)
		if getErr != nil {
			a.ShowError("Profile Error", getErr.Error())
			return
		}
		err = a.profiles.Update(msg.ID, msg.Name, msg.Description, existing.Filter, existing.Scope, msg.Tags)
	}
	if err != nil {
		a.ShowError("Profile Error", err.Error())
		return
	}
	a.profilesDialog.SetProfiles(a.profiles.GetAll())
}

// runSearch narrows loaded results or looks up scan history
func (a *App) runSearch(query, mode string) {
	switch mode {
	case "history":
		if a.historyStore == nil {
			a.ShowError("History Disabled", "Scan history is disabled in the configuration.")
			return
		}
		runs, err := a.historyStore.Search(query, 20)
		if err != nil {
			a.ShowError("History Error", err.Error())
			return
		}
		a.statusMessage = fmt.Sprintf("%d past scans match %q", len(runs), query)
	default:
		needle := strings.ToLower(query)
		var matched []models.Resource
		for _, r := range a.state.LastResults {
			if resourceMatches(r, needle) {
				matched = append(matched, r)
			}
		}
		a.resultsTable.SetResources(matched, len(matched))
		a.statusMessage = fmt.Sprintf("%d of %d loaded resources match %q", len(matched), len(a.state.LastResults), query)
	}
}

func resourceMatches(r models.Resource, needle string) bool {
	if strings.Contains(strings.ToLower(r.Name), needle) ||
		strings.Contains(strings.ToLower(r.ARN), needle) ||
		strings.Contains(strings.ToLower(r.Service), needle) ||
		strings.Contains(strings.ToLower(r.Type), needle) {
		return true
	}
	for k, v := range r.Tags {
		if strings.Contains(strings.ToLower(k), needle) || strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

func (a *App) exportResults() {
	if len(a.state.LastResults) == 0 {
		a.statusMessage = "nothing to export"
		return
	}
	path := fmt.Sprintf("tagpilot-resources-%s.csv", time.Now().Format("20060102-150405"))
	if err := export.ResourcesToCSV(a.state.LastResults, path); err != nil {
		a.ShowError("Export Failed", err.Error())
		return
	}
	a.statusMessage = fmt.Sprintf("exported %d resources to %s", len(a.state.LastResults), path)
}

// ensurePool connects to the inventory store on first use
func (a *App) ensurePool(ctx context.Context) (*inventory.Pool, error) {
	a.poolMu.Lock()
	defer a.poolMu.Unlock()

	if a.pool != nil {
		return a.pool, nil
	}

	invCfg := models.InventoryConfig{
		Host:     a.config.Inventory.Host,
		Port:     a.config.Inventory.Port,
		Database: a.config.Inventory.Database,
		User:     a.config.Inventory.User,
		SSLMode:  a.config.Inventory.SSLMode,
	}

	password, err := a.passwordStore.Get(invCfg)
	if err != nil && err != creds.ErrPasswordNotFound {
		return nil, fmt.Errorf("reading inventory password: %w", err)
	}
	invCfg.Password = password

	pool, err := inventory.NewPool(ctx, invCfg)
	if err != nil {
		return nil, err
	}
	a.pool = pool
	return pool, nil
}

// startScan runs an inventory scan in the background
func (a *App) startScan() tea.Cmd {
	currentScope := models.Scope{}
	if a.state.ActiveScope != nil {
		currentScope = *a.state.ActiveScope
	}
	clause := a.state.ActiveFilter
	timeout := time.Duration(a.config.Scan.TimeoutSeconds) * time.Second
	limit := a.config.Scan.MaxResults

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		run := models.ScanRun{
			ID:        uuid.NewString(),
			Scope:     currentScope,
			Filter:    clause,
			StartedAt: time.Now(),
			Status:    models.ScanRunning,
		}

		pool, err := a.ensurePool(ctx)
		if err != nil {
			run.Status = models.ScanFailed
			run.Error = err.Error()
			run.Duration = time.Since(run.StartedAt)
			return ScanCompleteMsg{Run: run}
		}

		result := inventory.Search(ctx, pool, currentScope, clause, limit)
		run.Duration = result.Duration
		if result.Err != nil {
			run.Status = models.ScanFailed
			run.Error = result.Err.Error()
			return ScanCompleteMsg{Run: run}
		}

		run.Status = models.ScanSucceeded
		run.Matched = int64(len(result.Resources))
		return ScanCompleteMsg{Run: run, Resources: result.Resources}
	}
}

func (a *App) finishScan(msg ScanCompleteMsg) {
	run := msg.Run
	a.state.CurrentScan = &run

	if a.historyStore != nil {
		if err := a.historyStore.Add(run); err == nil {
			_ = a.historyStore.Prune(a.config.History.MaxEntries)
		}
	}

	if run.Status == models.ScanFailed {
		a.ShowError("Scan Failed", run.Error)
		a.statusMessage = ""
		return
	}

	a.state.LastResults = msg.Resources
	a.resultsTable.SetResources(msg.Resources, len(msg.Resources))
	a.state.FocusedPanel = models.ResultsPanel
	a.updatePanelStyles()
	a.statusMessage = fmt.Sprintf("scan matched %d resources in %s", run.Matched, run.Duration.Round(time.Millisecond))
}

func (a *App) openScopeDialog() {
	currentScope := models.Scope{}
	if a.state.ActiveScope != nil {
		currentScope = *a.state.ActiveScope
	}
	a.scopeDialog = components.NewScopeDialog(a.theme, currentScope)
	if entries, err := scope.ParseAccountsFile(); err == nil {
		a.scopeDialog.DiscoveredAccounts = entries
	}
	a.showScopeDialog = true
}

// handleScopeDialog handles key events when the scope dialog is visible
func (a *App) handleScopeDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.showScopeDialog = false
		return a, nil

	case "up", "k":
		a.scopeDialog.MoveSelection(-1)
		return a, nil

	case "down", "j":
		a.scopeDialog.MoveSelection(1)
		return a, nil

	case "m":
		a.scopeDialog.ManualMode = !a.scopeDialog.ManualMode
		return a, nil

	case "enter":
		if a.scopeDialog.ManualMode {
			newScope := a.scopeDialog.GetScope()
			a.state.ActiveScope = &newScope
			a.showScopeDialog = false
			a.statusMessage = "scope updated"
			return a, nil
		}

		entry := a.scopeDialog.GetSelectedAccount()
		if entry == nil {
			return a, nil
		}
		newScope := models.Scope{
			Accounts: []string{entry.ID},
			Regions:  entry.Regions,
		}
		if a.state.ActiveScope != nil {
			newScope.Services = a.state.ActiveScope.Services
		}
		a.state.ActiveScope = &newScope
		a.showScopeDialog = false
		a.statusMessage = "scope updated"
		return a, nil

	case "backspace":
		a.scopeDialog.HandleBackspace()
		return a, nil

	default:
		if a.scopeDialog.ManualMode {
			key := msg.String()
			if len(key) == 1 {
				a.scopeDialog.HandleInput(rune(key[0]))
			}
		}
		return a, nil
	}
}

// View implements tea.Model
func (a *App) View() string {
	if a.showError {
		return lipgloss.Place(
			a.state.Width, a.state.Height,
			lipgloss.Center, lipgloss.Center,
			a.errorOverlay.View(),
		)
	}

	if a.showEditor {
		return a.renderCentered(a.filterEditor.View, 80, 30, func(w, h int) {
			a.filterEditor.Width = w
			a.filterEditor.Height = h
		})
	}

	if a.showPreview {
		return a.renderCentered(a.clausePreview.View, 70, 12, func(w, h int) {
			a.clausePreview.Width = w
			a.clausePreview.Height = h
		})
	}

	if a.showProfilesDialog {
		return a.renderCentered(a.profilesDialog.View, 80, 30, func(w, h int) {
			a.profilesDialog.Width = w
			a.profilesDialog.Height = h
		})
	}

	if a.showScopeDialog {
		return a.renderCentered(a.scopeDialog.View, 60, 16, func(w, h int) {
			a.scopeDialog.Width = w
			a.scopeDialog.Height = h
		})
	}

	if a.state.ViewMode == models.HelpMode {
		return help.Render(a.state.Width, a.state.Height)
	}

	return a.renderNormalView()
}

// renderCentered sizes a dialog and centers it on screen
func (a *App) renderCentered(view func() string, width, height int, resize func(w, h int)) string {
	if width > a.state.Width-2 && a.state.Width > 10 {
		width = a.state.Width - 2
	}
	if height > a.state.Height-2 && a.state.Height > 6 {
		height = a.state.Height - 2
	}
	resize(width, height)

	return lipgloss.Place(
		a.state.Width, a.state.Height,
		lipgloss.Center, lipgloss.Center,
		view(),
	)
}

// renderNormalView renders the normal application view
func (a *App) renderNormalView() string {
	topBarContent := a.formatStatusBar("tagpilot", a.scopeSummary())
	topBar := lipgloss.NewStyle().
		Width(a.state.Width).
		Background(a.theme.BorderFocused).
		Foreground(lipgloss.Color("230")).
		Padding(0, 2).
		Render(topBarContent)

	bottomLeft := "[f] Filter  [s] Scan  [o] Scope  [p] Profiles  [?] Help  [q] Quit"
	bottomRight := a.statusMessage
	bottomBar := lipgloss.NewStyle().
		Width(a.state.Width).
		Background(a.theme.Selection).
		Foreground(a.theme.Foreground).
		Padding(0, 2).
		Render(a.formatStatusBar(bottomLeft, bottomRight))

	// Search bar replaces the bottom bar while open
	if a.showSearch {
		a.searchInput.Width = a.state.Width - 4
		bottomBar = a.searchInput.View()
	}

	a.leftPanel.Content = a.renderFilterPanel()

	a.resultsTable.Width = a.rightPanel.Width
	a.resultsTable.Height = a.rightPanel.Height
	a.rightPanel.Content = a.resultsTable.View()

	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		a.leftPanel.View(),
		a.rightPanel.View(),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		topBar,
		panels,
		bottomBar,
	)
}

// renderFilterPanel renders the chips, scope and last scan summary
func (a *App) renderFilterPanel() string {
	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(a.theme.Info)
	faintStyle := lipgloss.NewStyle().Foreground(a.theme.Border)

	a.filterChips.Width = a.leftPanel.Width - 2

	var b strings.Builder
	b.WriteString(labelStyle.Render("Filter"))
	b.WriteString("\n")
	b.WriteString(a.filterChips.View())
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Scope"))
	b.WriteString("\n")
	b.WriteString(a.scopeLines())
	b.WriteString("\n")

	if a.state.CurrentScan != nil {
		run := a.state.CurrentScan
		b.WriteString(labelStyle.Render("Last Scan"))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s, %d matched, %s\n",
			run.Status, run.Matched, run.Duration.Round(time.Millisecond)))
		if run.Error != "" {
			b.WriteString(faintStyle.Render(run.Error))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (a *App) scopeSummary() string {
	if a.state.ActiveScope == nil {
		return "scope: all"
	}
	s := a.state.ActiveScope
	return fmt.Sprintf("scope: %s acct / %s region / %s svc",
		countOrAll(s.Accounts), countOrAll(s.Regions), countOrAll(s.Services))
}

func (a *App) scopeLines() string {
	if a.state.ActiveScope == nil {
		return "all accounts, regions and services\n"
	}
	s := a.state.ActiveScope
	return fmt.Sprintf("accounts: %s\nregions:  %s\nservices: %s\n",
		listOrAll(s.Accounts), listOrAll(s.Regions), listOrAll(s.Services))
}

func countOrAll(items []string) string {
	if len(items) == 0 {
		return "all"
	}
	return fmt.Sprintf("%d", len(items))
}

func listOrAll(items []string) string {
	if len(items) == 0 {
		return "(all)"
	}
	return strings.Join(items, ", ")
}

// updatePanelDimensions calculates panel sizes based on window size
func (a *App) updatePanelDimensions() {
	if a.state.Width <= 0 || a.state.Height <= 0 {
		return
	}

	// Top bar and bottom bar take one line each
	contentHeight := a.state.Height - 2
	if contentHeight < 5 {
		contentHeight = 5
	}

	leftWidth := (a.state.Width * 35) / 100
	if leftWidth < 24 {
		leftWidth = 24
	}

	rightWidth := a.state.Width - leftWidth - 4
	if rightWidth < 20 {
		rightWidth = 20
		leftWidth = a.state.Width - rightWidth - 4
	}

	a.leftPanel.Width = leftWidth
	a.leftPanel.Height = contentHeight
	a.rightPanel.Width = rightWidth
	a.rightPanel.Height = contentHeight
}

// updatePanelStyles updates panel styling based on focus
func (a *App) updatePanelStyles() {
	a.leftPanel.Focused = a.state.FocusedPanel == models.FilterPanel
	a.rightPanel.Focused = a.state.FocusedPanel == models.ResultsPanel
}

// formatStatusBar formats a status bar with left and right aligned content
func (a *App) formatStatusBar(left, right string) string {
	availableWidth := a.state.Width - 4
	if availableWidth < 0 {
		availableWidth = 0
	}

	leftLen := len(left)
	rightLen := len(right)

	if leftLen+rightLen > availableWidth {
		if availableWidth > rightLen {
			return left[:availableWidth-rightLen] + right
		}
		return left[:availableWidth]
	}

	spacing := availableWidth - leftLen - rightLen
	if spacing < 0 {
		spacing = 0
	}

	return left + lipgloss.NewStyle().Width(spacing).Render("") + right
}

// ShowError displays an error overlay with the given title and message
func (a *App) ShowError(title, message string) {
	a.errorOverlay.SetError(title, message)
	a.showError = true
}

// DismissError hides the error overlay
func (a *App) DismissError() {
	a.showError = false
}
