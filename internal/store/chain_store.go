package store

import (
	"encoding/json"
	"path/filepath"
	"sync"

	"agentid/internal/delegation"
)

const chainFilename = "delegation.json"

// ChainFileStore persists a delegation chain in the interoperable JSON wire
// format. Chains carry no private material, so the file is plaintext.
type ChainFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewChainFileStore returns a ChainFileStore rooted at dir.
func NewChainFileStore(dir string) *ChainFileStore {
	return &ChainFileStore{dir: dir}
}

// SaveChain writes the chain to disk.
func (s *ChainFileStore) SaveChain(c *delegation.Chain) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, chainFilename), b, 0o644)
}

// LoadChain reads and validates the stored chain. A missing file is reported
// as (nil, false, nil).
func (s *ChainFileStore) LoadChain() (*delegation.Chain, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(filepath.Join(s.dir, chainFilename))
	if err != nil || b == nil {
		return nil, false, err
	}
	c, err := delegation.FromJSON(b)
	if err != nil {
		return nil, false, err
	}
	return c, true, nil
}
