package scope

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/tagpilot/tagpilot/internal/models"
)

// AccountEntry represents a line in the accounts file: an account id, an
// optional alias, and the regions the operator cares about in that account.
type AccountEntry struct {
	ID      string
	Alias   string
	Regions []string
}

// FromEnvironment reads scope seeds from TAGPILOT_ACCOUNTS, TAGPILOT_REGIONS
// and TAGPILOT_SERVICES (comma-separated). Returns nil when none are set.
func FromEnvironment() *models.Scope {
	accounts := splitEnvList(os.Getenv("TAGPILOT_ACCOUNTS"))
	regions := splitEnvList(os.Getenv("TAGPILOT_REGIONS"))
	services := splitEnvList(os.Getenv("TAGPILOT_SERVICES"))

	if len(accounts) == 0 && len(regions) == 0 && len(services) == 0 {
		return nil
	}

	return &models.Scope{
		Accounts: accounts,
		Regions:  regions,
		Services: services,
	}
}

// ParseAccountsFile reads and parses ~/.tagpilot_accounts
func ParseAccountsFile() ([]AccountEntry, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return parseAccountsFileAt(filepath.Join(home, ".tagpilot_accounts"))
}

func parseAccountsFileAt(path string) ([]AccountEntry, error) {
	// The file can carry account aliases the operator considers sensitive,
	// so insist on owner-only permissions like other credential files.
	if runtime.GOOS != "windows" {
		fileInfo, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return []AccountEntry{}, nil
			}
			return nil, err
		}

		mode := fileInfo.Mode()
		if mode.Perm()&0077 != 0 {
			return nil, fmt.Errorf("accounts file has insecure permissions %v, must be 0600", mode.Perm())
		}
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []AccountEntry{}, nil
		}
		return nil, err
	}
	defer file.Close()

	var entries []AccountEntry
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := parseAccountsLine(line)
		if err != nil {
			continue // Skip invalid lines
		}

		entries = append(entries, entry)
	}

	return entries, scanner.Err()
}

// parseAccountsLine parses one `account_id:alias:region1,region2` line
func parseAccountsLine(line string) (AccountEntry, error) {
	parts := strings.Split(line, ":")
	if len(parts) < 1 || strings.TrimSpace(parts[0]) == "" {
		return AccountEntry{}, fmt.Errorf("invalid accounts line: %q", line)
	}

	entry := AccountEntry{ID: strings.TrimSpace(parts[0])}
	if len(entry.ID) != 12 || strings.Trim(entry.ID, "0123456789") != "" {
		return AccountEntry{}, fmt.Errorf("invalid account id: %q", parts[0])
	}

	if len(parts) > 1 {
		entry.Alias = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		entry.Regions = splitEnvList(parts[2])
	}

	return entry, nil
}

// Discover merges every scope source into one deduplicated default scope:
// config defaults first, then the accounts file, then environment overrides.
func Discover(defaults models.Scope) models.Scope {
	merged := defaults

	if entries, err := ParseAccountsFile(); err == nil {
		for _, e := range entries {
			merged.Accounts = append(merged.Accounts, e.ID)
			merged.Regions = append(merged.Regions, e.Regions...)
		}
	}

	if env := FromEnvironment(); env != nil {
		merged.Accounts = append(merged.Accounts, env.Accounts...)
		merged.Regions = append(merged.Regions, env.Regions...)
		merged.Services = append(merged.Services, env.Services...)
	}

	merged.Accounts = dedupe(merged.Accounts)
	merged.Regions = dedupe(merged.Regions)
	merged.Services = dedupe(merged.Services)

	return merged
}

func splitEnvList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func dedupe(items []string) []string {
	if len(items) == 0 {
		return items
	}

	seen := make(map[string]bool, len(items))
	var out []string
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	sort.Strings(out)
	return out
}
