package domain

import "context"

// PublicKey is a public-key capability exposing its DER encoding.
type PublicKey interface {
	DER() []byte
}

// DERPublicKey is a plain DER-encoded public key.
type DERPublicKey []byte

// DER returns the encoded key bytes.
func (k DERPublicKey) DER() []byte { return k }

// Signer is a signing capability. Sign may be backed by a hardware token or
// an interactive credential prompt; failures propagate to the caller and are
// never retried here.
type Signer interface {
	Public() PublicKey
	Sign(ctx context.Context, message []byte) ([]byte, error)
}

// RequestID computes the canonical request-id digest of a structured record.
// The algorithm is supplied by the embedding application and must match the
// relying party's, or signatures will not verify.
type RequestID func(record Record) ([32]byte, error)

// KeyStore persists the local signing key seed, encrypted at rest.
type KeyStore interface {
	SaveKey(passphrase string, seed []byte) error
	LoadKey(passphrase string) ([]byte, error)
}

// KeyService manages the local signing key.
type KeyService interface {
	Generate(passphrase string) (Signer, Fingerprint, error)
	Load(passphrase string) (Signer, error)
	Fingerprint(passphrase string) (Fingerprint, error)
}
