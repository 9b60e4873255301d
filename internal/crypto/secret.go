package crypto

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"agentid/internal/util/memzero"
)

const (
	// The current supported version of the encrypted blob format on disk.
	secretFormatVersion = 1

	saltBytes = 16
)

// ErrWrongPassphrase is returned when the passphrase is incorrect or the
// ciphertext has been modified or corrupted.
var ErrWrongPassphrase = errors.New("wrong passphrase or corrupted key material")

// blob is the on-disk JSON structure holding the ciphertext and KDF
// parameters.
type blob struct {
	V       int    `json:"v"`
	Salt    []byte `json:"salt"`
	Time    uint32 `json:"argon2_time"`
	Memory  uint32 `json:"argon2_memory"`
	Threads uint8  `json:"argon2_threads"`
	Cipher  []byte `json:"cipher"`
}

// SealSecret derives a key from the passphrase with Argon2id and seals raw
// into a self-describing JSON blob.
func SealSecret(passphrase string, raw []byte) ([]byte, error) {
	var salt [saltBytes]byte
	if _, err := rand.Read(salt[:]); err != nil {
		return nil, err
	}
	t, m, p := argon2ParamsDefault()
	key := argon2.IDKey([]byte(passphrase), salt[:], t, m, p, chacha20poly1305.KeySize)
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte // zero nonce; salt-bound key guarantees uniqueness
	ct := aead.Seal(nil, nonce[:], raw, salt[:])

	return json.Marshal(blob{
		V:       secretFormatVersion,
		Salt:    salt[:],
		Time:    t,
		Memory:  m,
		Threads: p,
		Cipher:  ct,
	})
}

// OpenSecret opens a JSON blob produced by SealSecret.
func OpenSecret(passphrase string, b []byte) ([]byte, error) {
	var bl blob
	if err := json.Unmarshal(b, &bl); err != nil {
		return nil, err
	}
	if bl.V > secretFormatVersion {
		return nil, fmt.Errorf("unsupported keystore version %d", bl.V)
	}
	if bl.Time == 0 || bl.Threads == 0 {
		return nil, fmt.Errorf("invalid key derivation parameters")
	}

	key := argon2.IDKey([]byte(passphrase), bl.Salt, bl.Time, bl.Memory, bl.Threads, chacha20poly1305.KeySize)
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	var nonce [chacha20poly1305.NonceSize]byte
	pt, err := aead.Open(nil, nonce[:], bl.Cipher, bl.Salt)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return pt, nil
}

// Tunables for Argon2id key derivation.
func argon2ParamsDefault() (time, memory uint32, threads uint8) { return 1, 1 << 16, 4 }
