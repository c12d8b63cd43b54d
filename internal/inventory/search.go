package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tagpilot/tagpilot/internal/models"
)

// SearchResult carries one page of matched resources
type SearchResult struct {
	Resources []models.Resource
	Duration  time.Duration
	Err       error
}

// Search runs the compiled filter clause against the inventory store, bounded
// by the scan scope. The clause text is the wire contract produced by the
// filter builder; it is embedded verbatim so the engine sees exactly what the
// editor previewed.
func Search(ctx context.Context, pool *Pool, scope models.Scope, clause string, limit int) SearchResult {
	start := time.Now()

	sql, args := buildSearchSQL(scope, clause, limit)
	rows, err := pool.pool.Query(ctx, sql, args...)
	if err != nil {
		return SearchResult{Err: err, Duration: time.Since(start)}
	}
	defer rows.Close()

	var resources []models.Resource
	for rows.Next() {
		var r models.Resource
		var tags string
		if err := rows.Scan(&r.ARN, &r.Account, &r.Region, &r.Service, &r.Type, &r.Name, &r.CreatedAt, &tags, &r.Metadata); err != nil {
			return SearchResult{Err: err, Duration: time.Since(start)}
		}
		r.Tags = parseTags(tags)
		resources = append(resources, r)
	}
	if err := rows.Err(); err != nil {
		return SearchResult{Err: err, Duration: time.Since(start)}
	}

	return SearchResult{Resources: resources, Duration: time.Since(start)}
}

// Count returns how many resources in scope match the clause
func Count(ctx context.Context, pool *Pool, scope models.Scope, clause string) (int64, error) {
	sql, args := buildCountSQL(scope, clause)

	var n int64
	if err := pool.pool.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

const resourceColumns = "arn, account_id, region, service, resource_type, name, creation_date, tags, metadata"

// buildSearchSQL composes the SELECT sent to the query engine. Scope bounds
// are bound parameters; the filter clause is inserted as-is since its text is
// the persisted contract with the engine.
func buildSearchSQL(scope models.Scope, clause string, limit int) (string, []interface{}) {
	where, args := whereParts(scope, clause)

	sql := "SELECT " + resourceColumns + " FROM resources"
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, limit)
	sql += fmt.Sprintf(" ORDER BY creation_date DESC LIMIT $%d", len(args))

	return sql, args
}

func buildCountSQL(scope models.Scope, clause string) (string, []interface{}) {
	where, args := whereParts(scope, clause)

	sql := "SELECT COUNT(*) FROM resources"
	if len(where) > 0 {
		sql += " WHERE " + strings.Join(where, " AND ")
	}
	return sql, args
}

func whereParts(scope models.Scope, clause string) ([]string, []interface{}) {
	var where []string
	var args []interface{}

	if len(scope.Accounts) > 0 {
		args = append(args, scope.Accounts)
		where = append(where, fmt.Sprintf("account_id = ANY($%d)", len(args)))
	}
	if len(scope.Regions) > 0 {
		args = append(args, scope.Regions)
		where = append(where, fmt.Sprintf("region = ANY($%d)", len(args)))
	}
	if len(scope.Services) > 0 {
		args = append(args, scope.Services)
		where = append(where, fmt.Sprintf("service = ANY($%d)", len(args)))
	}
	if strings.TrimSpace(clause) != "" {
		where = append(where, "("+clause+")")
	}

	return where, args
}

// parseTags expands the flattened key=value tag column into a map
func parseTags(s string) map[string]string {
	if s == "" {
		return nil
	}

	tags := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		if k, v, ok := strings.Cut(pair, "="); ok {
			tags[k] = v
		} else {
			tags[pair] = ""
		}
	}
	return tags
}
