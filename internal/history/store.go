package history

import (
	"database/sql"
	_ "embed"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tagpilot/tagpilot/internal/models"
)

//go:embed schema.sql
var schemaSQL string

// Store persists scan runs in a local sqlite database
type Store struct {
	db *sql.DB
}

// NewStore creates a new scan history store
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(schemaSQL)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Add records a finished scan run
func (s *Store) Add(run models.ScanRun) error {
	_, err := s.db.Exec(`
		INSERT INTO scan_history
		(scan_id, accounts, regions, services, filter, duration_ms, status, matched, tags_applied, tags_removed, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		strings.Join(run.Scope.Accounts, ","),
		strings.Join(run.Scope.Regions, ","),
		strings.Join(run.Scope.Services, ","),
		run.Filter,
		run.Duration.Milliseconds(),
		run.Status.String(),
		run.Matched,
		run.TagsApplied,
		run.TagsRemoved,
		run.Error,
	)
	return err
}

// GetRecent retrieves the most recent scan runs
func (s *Store) GetRecent(limit int) ([]models.ScanRun, error) {
	rows, err := s.db.Query(`
		SELECT scan_id, accounts, regions, services, filter, started_at,
		       duration_ms, status, matched, tags_applied, tags_removed, error_message
		FROM scan_history
		ORDER BY started_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return scanRows(rows)
}

// Search searches scan history by filter clause text
func (s *Store) Search(clause string, limit int) ([]models.ScanRun, error) {
	rows, err := s.db.Query(`
		SELECT scan_id, accounts, regions, services, filter, started_at,
		       duration_ms, status, matched, tags_applied, tags_removed, error_message
		FROM scan_history
		WHERE filter LIKE ?
		ORDER BY started_at DESC
		LIMIT ?`, "%"+clause+"%", limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return scanRows(rows)
}

// Prune deletes all but the newest max entries
func (s *Store) Prune(max int) error {
	_, err := s.db.Exec(`
		DELETE FROM scan_history
		WHERE id NOT IN (
			SELECT id FROM scan_history ORDER BY started_at DESC LIMIT ?
		)`, max)
	return err
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func scanRows(rows *sql.Rows) ([]models.ScanRun, error) {
	var runs []models.ScanRun
	for rows.Next() {
		var r models.ScanRun
		var accounts, regions, services, startedAt, status string
		var durationMs int64

		err := rows.Scan(
			&r.ID,
			&accounts,
			&regions,
			&services,
			&r.Filter,
			&startedAt,
			&durationMs,
			&status,
			&r.Matched,
			&r.TagsApplied,
			&r.TagsRemoved,
			&r.Error,
		)
		if err != nil {
			return nil, err
		}

		r.Scope = models.Scope{
			Accounts: splitList(accounts),
			Regions:  splitList(regions),
			Services: splitList(services),
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.StartedAt, _ = time.Parse("2006-01-02 15:04:05", startedAt)
		r.Status = parseStatus(status)

		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return runs, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func parseStatus(s string) models.ScanStatus {
	switch s {
	case "pending":
		return models.ScanPending
	case "running":
		return models.ScanRunning
	case "succeeded":
		return models.ScanSucceeded
	default:
		return models.ScanFailed
	}
}
