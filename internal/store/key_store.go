package store

import (
	"os"
	"path/filepath"
	"sync"

	"agentid/internal/crypto"
	"agentid/internal/domain"
)

const keyFilename = "key.json.enc"

// KeyFileStore persists the local signing key seed to disk, encrypted with a
// passphrase.
type KeyFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewKeyFileStore returns a KeyFileStore rooted at dir.
func NewKeyFileStore(dir string) *KeyFileStore {
	return &KeyFileStore{dir: dir}
}

// SaveKey seals the seed with the passphrase and writes it to disk.
func (s *KeyFileStore) SaveKey(passphrase string, seed []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ct, err := crypto.SealSecret(passphrase, seed)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, keyFilename), ct, 0o600)
}

// LoadKey reads and unseals the seed.
func (s *KeyFileStore) LoadKey(passphrase string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(filepath.Join(s.dir, keyFilename))
	if err != nil {
		return nil, err
	}
	return crypto.OpenSecret(passphrase, b)
}

// Compile-time assertion that KeyFileStore implements domain.KeyStore.
var _ domain.KeyStore = (*KeyFileStore)(nil)
