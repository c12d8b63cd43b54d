package models

import "time"

// AppState holds the application state
type AppState struct {
	Width        int
	Height       int
	FocusedPanel PanelType
	ViewMode     ViewMode

	// Scan state
	ActiveScope  *Scope
	CurrentScan  *ScanRun
	LastResults  []Resource
	ActiveFilter string // canonical WHERE-clause text
}

// PanelType identifies which panel is focused
type PanelType int

const (
	FilterPanel PanelType = iota
	ResultsPanel
)

// ViewMode identifies the current view
type ViewMode int

const (
	NormalMode ViewMode = iota
	HelpMode
)

// NewAppState creates a new AppState with defaults
func NewAppState() AppState {
	return AppState{
		Width:        80,
		Height:       24,
		FocusedPanel: FilterPanel,
		ViewMode:     NormalMode,
	}
}

// Scope bounds a discovery scan to a set of accounts, regions and services
type Scope struct {
	Accounts []string `yaml:"accounts"`
	Regions  []string `yaml:"regions"`
	Services []string `yaml:"services"`
}

// Resource is one discovered infrastructure resource as reported by the
// inventory store
type Resource struct {
	ARN       string
	Account   string
	Region    string
	Service   string
	Type      string
	Name      string
	CreatedAt time.Time
	Tags      map[string]string
	Metadata  string
}

// ScanStatus represents the lifecycle of a scan run
type ScanStatus int

const (
	ScanPending ScanStatus = iota
	ScanRunning
	ScanSucceeded
	ScanFailed
)

func (s ScanStatus) String() string {
	switch s {
	case ScanPending:
		return "pending"
	case ScanRunning:
		return "running"
	case ScanSucceeded:
		return "succeeded"
	case ScanFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ScanRun records one discovery scan: the scope it covered, the filter clause
// submitted to the query engine and what came back
type ScanRun struct {
	ID          string
	Scope       Scope
	Filter      string // canonical WHERE-clause text as submitted
	StartedAt   time.Time
	Duration    time.Duration
	Status      ScanStatus
	Matched     int64
	TagsApplied int64
	TagsRemoved int64
	Error       string
}
