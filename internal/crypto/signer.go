package crypto

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"fmt"

	"agentid/internal/domain"
)

// Ed25519Signer is an in-process signing capability backed by an Ed25519
// key. The public key is exposed in PKIX/DER form.
type Ed25519Signer struct {
	priv ed25519.PrivateKey
	der  []byte
}

// GenerateEd25519 returns a signer with a fresh key pair.
func GenerateEd25519() (*Ed25519Signer, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return newEd25519(priv)
}

// Ed25519FromSeed rebuilds a signer from a stored 32-byte seed.
func Ed25519FromSeed(seed []byte) (*Ed25519Signer, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("ed25519 seed must be %d bytes, got %d", ed25519.SeedSize, len(seed))
	}
	return newEd25519(ed25519.NewKeyFromSeed(seed))
}

func newEd25519(priv ed25519.PrivateKey) (*Ed25519Signer, error) {
	der, err := x509.MarshalPKIXPublicKey(priv.Public().(ed25519.PublicKey))
	if err != nil {
		return nil, err
	}
	return &Ed25519Signer{priv: priv, der: der}, nil
}

// Public returns the DER-encoded public key capability.
func (s *Ed25519Signer) Public() domain.PublicKey {
	return domain.DERPublicKey(append([]byte(nil), s.der...))
}

// Sign signs the message. Ed25519 needs no interaction, so the context is
// only consulted for early cancellation.
func (s *Ed25519Signer) Sign(ctx context.Context, message []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ed25519.Sign(s.priv, message), nil
}

// Seed returns the private seed for persistence. Treat as sensitive.
func (s *Ed25519Signer) Seed() []byte { return s.priv.Seed() }

// Fingerprint returns a SHA-256 hex digest of a DER-encoded public key.
func Fingerprint(der []byte) string {
	sum := sha256.Sum256(der)
	return hex.EncodeToString(sum[:])
}

// Compile-time assertion that Ed25519Signer implements domain.Signer.
var _ domain.Signer = (*Ed25519Signer)(nil)
