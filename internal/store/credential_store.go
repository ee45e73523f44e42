package store

import (
	"errors"
	"strings"
	"sync"

	"userdeck/internal/domain"
)

const credentialFile = "app_id.enc"

// ErrNoCredential is returned by LoadAppID when nothing has been saved.
var ErrNoCredential = errors.New("store: no saved app-id")

// CredentialFileStore keeps the service app-id encrypted under a passphrase.
type CredentialFileStore struct {
	dir string
	kdf kdfParams
	mu  sync.Mutex
}

// NewCredentialFileStore returns a CredentialFileStore rooted at dir.
func NewCredentialFileStore(dir string) *CredentialFileStore {
	return &CredentialFileStore{dir: dir, kdf: defaultKDF()}
}

func (s *CredentialFileStore) file() privateFile { return fileIn(s.dir, credentialFile) }

// SaveAppID encrypts appID and writes it to disk, replacing any previous one.
func (s *CredentialFileStore) SaveAppID(passphrase, appID string) error {
	appID = strings.TrimSpace(appID)
	if appID == "" {
		return errors.New("store: empty app-id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := seal(passphrase, credentialFile, []byte(appID), s.kdf)
	if err != nil {
		return err
	}
	return s.file().replace(b)
}

// LoadAppID reads and decrypts the saved app-id.
func (s *CredentialFileStore) LoadAppID(passphrase string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.file().bytes()
	if err != nil {
		return "", err
	}
	if b == nil {
		return "", ErrNoCredential
	}
	pt, err := open(passphrase, credentialFile, b)
	if err != nil {
		return "", err
	}
	return string(pt), nil
}

// DeleteAppID removes the saved app-id. Deleting nothing is not an error.
func (s *CredentialFileStore) DeleteAppID() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file().remove()
}

// Compile-time assertion that CredentialFileStore implements domain.CredentialStore.
var _ domain.CredentialStore = (*CredentialFileStore)(nil)
