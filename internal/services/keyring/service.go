package keyring

import (
	"fmt"
	"unicode"

	"agentid/internal/crypto"
	"agentid/internal/domain"
	"agentid/internal/util/memzero"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
)

// Service manages the local signing key behind a backing store. The key is
// the capability handed to the delegation builder as the delegating signer.
type Service struct {
	store domain.KeyStore
}

// New returns a keyring service backed by the given store.
func New(s domain.KeyStore) *Service { return &Service{store: s} }

// Generate creates a new Ed25519 signing key, saves its seed encrypted with
// the passphrase, and returns the signer plus a fingerprint of the public
// key.
func (s *Service) Generate(passphrase string) (domain.Signer, domain.Fingerprint, error) {
	if !isSecurePassphrase(passphrase) {
		return nil, "", ErrWeakPassphrase
	}
	signer, err := crypto.GenerateEd25519()
	if err != nil {
		return nil, "", err
	}
	seed := signer.Seed()
	defer memzero.Zero(seed)
	if err := s.store.SaveKey(passphrase, seed); err != nil {
		return nil, "", err
	}
	return signer, domain.Fingerprint(crypto.Fingerprint(signer.Public().DER())), nil
}

// Load decrypts the stored seed and returns the signer.
func (s *Service) Load(passphrase string) (domain.Signer, error) {
	seed, err := s.store.LoadKey(passphrase)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(seed)
	return crypto.Ed25519FromSeed(seed)
}

// Fingerprint returns a fingerprint of the stored key's public key.
func (s *Service) Fingerprint(passphrase string) (domain.Fingerprint, error) {
	signer, err := s.Load(passphrase)
	if err != nil {
		return "", err
	}
	return domain.Fingerprint(crypto.Fingerprint(signer.Public().DER())), nil
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.KeyService.
var _ domain.KeyService = (*Service)(nil)
