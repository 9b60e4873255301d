package principal

import (
	"crypto/sha256"
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"strings"
)

const (
	// selfAuthTag marks a principal derived from a public key.
	selfAuthTag = 0x02
	// anonymousTag is the single-byte anonymous principal.
	anonymousTag = 0x04
)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Principal identifies a recipient of requests. The zero value is the
// management principal ("aaaaa-aa").
type Principal struct {
	raw string
}

// FromBytes wraps raw principal bytes.
func FromBytes(raw []byte) Principal {
	return Principal{raw: string(raw)}
}

// SelfAuthenticating derives the principal of a DER-encoded public key:
// SHA-224 of the key followed by the self-authenticating tag byte.
func SelfAuthenticating(der []byte) Principal {
	sum := sha256.Sum224(der)
	raw := make([]byte, 0, len(sum)+1)
	raw = append(raw, sum[:]...)
	raw = append(raw, selfAuthTag)
	return Principal{raw: string(raw)}
}

// Anonymous returns the anonymous principal.
func Anonymous() Principal {
	return Principal{raw: string([]byte{anonymousTag})}
}

// FromText parses the canonical text form: lowercase unpadded base32 of a
// CRC32 checksum followed by the raw bytes, in dash-separated groups of five.
func FromText(text string) (Principal, error) {
	compact := strings.ReplaceAll(text, "-", "")
	decoded, err := encoding.DecodeString(strings.ToUpper(compact))
	if err != nil {
		return Principal{}, fmt.Errorf("principal %q: %w", text, err)
	}
	if len(decoded) < 4 {
		return Principal{}, fmt.Errorf("principal %q: too short", text)
	}
	p := Principal{raw: string(decoded[4:])}
	// Round-tripping also checks the checksum and the grouping.
	if p.String() != text {
		return Principal{}, fmt.Errorf("principal %q: not in canonical form", text)
	}
	return p, nil
}

// Bytes returns a copy of the raw principal bytes.
func (p Principal) Bytes() []byte { return []byte(p.raw) }

// String renders the canonical text form.
func (p Principal) String() string {
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc32.ChecksumIEEE([]byte(p.raw)))
	encoded := strings.ToLower(encoding.EncodeToString(append(sum[:], p.raw...)))

	var b strings.Builder
	for i, r := range encoded {
		if i > 0 && i%5 == 0 {
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MarshalText encodes the principal in canonical text form.
func (p Principal) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText mirrors MarshalText.
func (p *Principal) UnmarshalText(text []byte) error {
	parsed, err := FromText(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
