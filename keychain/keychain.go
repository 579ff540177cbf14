// Package keychain keeps Linkar passwords in the OS credential store so
// the command line tool never needs them in flags or config files.
package keychain

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/99designs/keyring"
)

// ServiceName identifies our credential store namespace.
const ServiceName = "linkar"

// ErrNotFound is returned when no password is stored for a profile.
var ErrNotFound = errors.New("keychain: no password stored")

// Config selects the backing store.
type Config struct {
	// Backends restricts the stores tried, nil picks per platform.
	Backends []keyring.BackendType

	// FileDir enables the encrypted file fallback when set.
	FileDir string

	// Passphrase unlocks the file fallback.
	Passphrase keyring.PromptFunc
}

// Store reads and writes passwords keyed by profile and user.
type Store struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// Open opens the OS keyring described by cfg.
func Open(cfg Config) (*Store, error) {
	backends := cfg.Backends
	if backends == nil {
		backends = defaultBackends(cfg.FileDir != "")
	}

	kc := keyring.Config{
		ServiceName:      ServiceName,
		AllowedBackends:  backends,
		PassPrefix:       ServiceName,
		FileDir:          cfg.FileDir,
		FilePasswordFunc: cfg.Passphrase,
	}
	if runtime.GOOS == "windows" {
		kc.WinCredPrefix = ServiceName
	}

	ring, err := keyring.Open(kc)
	if err != nil {
		return nil, fmt.Errorf("keychain: open: %w", err)
	}
	return New(ring), nil
}

// New wraps an already opened keyring.
func New(ring keyring.Keyring) *Store {
	return &Store{ring: ring}
}

func defaultBackends(withFile bool) []keyring.BackendType {
	var out []keyring.BackendType
	switch runtime.GOOS {
	case "darwin":
		out = []keyring.BackendType{keyring.KeychainBackend, keyring.PassBackend}
	case "windows":
		out = []keyring.BackendType{keyring.WinCredBackend}
	default:
		out = []keyring.BackendType{keyring.SecretServiceBackend, keyring.KWalletBackend, keyring.PassBackend}
	}
	if withFile {
		out = append(out, keyring.FileBackend)
	}
	return out
}

// Key is the item key for a profile and user.
func Key(profile, username string) string {
	return profile + "/" + username
}

// SavePassword stores password for the profile and user.
func (s *Store) SavePassword(profile, username, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.ring.Set(keyring.Item{
		Key:         Key(profile, username),
		Data:        []byte(password),
		Label:       "Linkar password for " + username,
		Description: "Linkar entry point password",
	})
	if err != nil {
		return fmt.Errorf("keychain: save %s: %w", Key(profile, username), err)
	}
	return nil
}

// LoadPassword returns the stored password or ErrNotFound.
func (s *Store) LoadPassword(profile, username string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, err := s.ring.Get(Key(profile, username))
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("keychain: load %s: %w", Key(profile, username), err)
	}
	return string(item.Data), nil
}

// Delete removes the stored password. Deleting a missing entry is not an
// error.
func (s *Store) Delete(profile, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.ring.Remove(Key(profile, username))
	if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("keychain: delete %s: %w", Key(profile, username), err)
	}
	return nil
}

// Profiles lists the stored keys.
func (s *Store) Profiles() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ring.Keys()
}
