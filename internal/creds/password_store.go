package creds

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/99designs/keyring"

	"github.com/tagpilot/tagpilot/internal/models"
)

const serviceName = "tagpilot"

// ErrPasswordNotFound is returned when no password is stored for a key
var ErrPasswordNotFound = errors.New("password not found")

// PasswordStore keeps the inventory store password in the OS keyring, with an
// encrypted file fallback where no native keyring is available
type PasswordStore struct {
	ring          keyring.Keyring
	usingFallback bool
}

// NewPasswordStore creates a new password store with platform-appropriate backends
func NewPasswordStore(configDir string) (*PasswordStore, error) {
	backends := getBackendsForPlatform()
	fileDir := filepath.Join(configDir, "keyring")

	ring, err := keyring.Open(keyring.Config{
		ServiceName:     serviceName,
		AllowedBackends: backends,
		FileDir:         fileDir,
		FilePasswordFunc: func(_ string) (string, error) {
			return deriveFilePassword()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open keyring: %w", err)
	}

	return &PasswordStore{
		ring:          ring,
		usingFallback: isUsingFallback(backends),
	}, nil
}

// getBackendsForPlatform returns the appropriate backend priority for the current OS
func getBackendsForPlatform() []keyring.BackendType {
	switch runtime.GOOS {
	case "darwin":
		return []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.FileBackend,
		}
	case "linux":
		return []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.FileBackend,
		}
	case "windows":
		return []keyring.BackendType{
			keyring.WinCredBackend,
			keyring.FileBackend,
		}
	default:
		return []keyring.BackendType{
			keyring.FileBackend,
		}
	}
}

// isUsingFallback checks if the opened keyring is using the file backend
func isUsingFallback(requestedBackends []keyring.BackendType) bool {
	if len(requestedBackends) == 1 && requestedBackends[0] == keyring.FileBackend {
		return true
	}

	for _, b := range keyring.AvailableBackends() {
		if b != keyring.FileBackend {
			return false
		}
	}

	return true
}

// IsUsingFallback returns true if the password store is using the file backend
// instead of the native OS keyring
func (ps *PasswordStore) IsUsingFallback() bool {
	return ps.usingFallback
}

// Save stores the password for an inventory store. Empty passwords are not
// stored.
func (ps *PasswordStore) Save(cfg models.InventoryConfig, password string) error {
	if password == "" {
		return nil
	}

	err := ps.ring.Set(keyring.Item{
		Key:         makeKey(cfg),
		Data:        []byte(password),
		Label:       fmt.Sprintf("tagpilot: %s@%s:%d/%s", cfg.User, cfg.Host, cfg.Port, cfg.Database),
		Description: "Inventory store password for tagpilot",
	})
	if err != nil {
		return fmt.Errorf("failed to save password to keyring: %w", err)
	}
	return nil
}

// Get retrieves the password for an inventory store
func (ps *PasswordStore) Get(cfg models.InventoryConfig) (string, error) {
	item, err := ps.ring.Get(makeKey(cfg))
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return "", ErrPasswordNotFound
		}
		return "", fmt.Errorf("failed to read password from keyring: %w", err)
	}
	return string(item.Data), nil
}

// Delete removes the password for an inventory store
func (ps *PasswordStore) Delete(cfg models.InventoryConfig) error {
	err := ps.ring.Remove(makeKey(cfg))
	if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("failed to delete password from keyring: %w", err)
	}
	return nil
}

// makeKey creates a unique key for password storage
func makeKey(cfg models.InventoryConfig) string {
	return fmt.Sprintf("%s:%d:%s:%s", cfg.Host, cfg.Port, cfg.Database, cfg.User)
}
