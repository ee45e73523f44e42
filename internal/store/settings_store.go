package store

import (
	"fmt"
	"sync"

	"userdeck/internal/domain"
)

const settingsFile = "settings.json"

// SettingsFileStore persists client preferences as JSON.
type SettingsFileStore struct {
	dir string
	mu  sync.Mutex
}

func NewSettingsFileStore(dir string) *SettingsFileStore { return &SettingsFileStore{dir: dir} }

func (s *SettingsFileStore) SaveSettings(settings domain.Settings) error {
	if settings.PageSize < 0 {
		return fmt.Errorf("store: negative page size %d", settings.PageSize)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fileIn(s.dir, settingsFile).encode(settings)
}

// LoadSettings returns the saved settings and whether any were found.
func (s *SettingsFileStore) LoadSettings() (domain.Settings, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out domain.Settings
	ok, err := fileIn(s.dir, settingsFile).decode(&out)
	if err != nil {
		return domain.Settings{}, false, fmt.Errorf("read settings: %w", err)
	}
	return out, ok, nil
}

// Compile-time assertion that SettingsFileStore implements domain.SettingsStore.
var _ domain.SettingsStore = (*SettingsFileStore)(nil)
