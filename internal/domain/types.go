package domain

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"agentid/internal/principal"
)

var (
	// ErrFormat is returned when a serialized chain has the wrong structure.
	ErrFormat = errors.New("delegation: malformed chain structure")
	// ErrKeyFormat is returned when a hex-encoded key or signature field is
	// missing, not a string, or shorter than the minimum accepted length.
	ErrKeyFormat = errors.New("delegation: invalid key or signature encoding")
)

// minKeyHexLen is a coarse sanity bound on hex-encoded key material, not a
// structural DER check.
const minKeyHexLen = 64

// Record is a structured record handed to the canonical request-id function.
type Record map[string]any

// Fingerprint is a short hex digest of a public key, for display and logging.
type Fingerprint string

// Delegation grants a public key the right to act as a more senior key until
// an expiration instant, optionally scoped to specific recipients.
type Delegation struct {
	// PubKey is the DER-encoded public key of the delegate.
	PubKey []byte
	// Expiration is nanoseconds since epoch. Kept as a big integer so
	// far-future instants cannot silently overflow.
	Expiration *big.Int
	// Targets, when non-empty, restricts the delegation to requests
	// addressed to one of these recipients.
	Targets []principal.Principal
}

// Record returns the canonical field map that gets digested before signing.
// Targets are included only when present.
func (d Delegation) Record() Record {
	rec := Record{
		"pubkey":     d.PubKey,
		"expiration": d.Expiration,
	}
	if len(d.Targets) > 0 {
		rec["targets"] = d.Targets
	}
	return rec
}

// SignedDelegation pairs a delegation with the signature the delegating key
// produced over its canonical hash.
type SignedDelegation struct {
	Delegation Delegation
	Signature  []byte
}

// wireDelegation is the interoperable JSON form of one chain entry. Key and
// signature fields are decoded as any so non-string values can be rejected
// with ErrKeyFormat rather than a bare type error.
type wireDelegation struct {
	Delegation struct {
		Pubkey     any             `json:"pubkey"`
		Expiration string          `json:"expiration"`
		Targets    json.RawMessage `json:"targets,omitempty"`
	} `json:"delegation"`
	Signature any `json:"signature"`
}

// MarshalJSON encodes the entry in the wire format: hex keys and signature,
// base-16 expiration, targets as principal text (omitted when none).
func (s SignedDelegation) MarshalJSON() ([]byte, error) {
	var w wireDelegation
	w.Delegation.Pubkey = hex.EncodeToString(s.Delegation.PubKey)
	w.Delegation.Expiration = s.Delegation.Expiration.Text(16)
	w.Signature = hex.EncodeToString(s.Signature)
	if len(s.Delegation.Targets) > 0 {
		targets := make([]string, len(s.Delegation.Targets))
		for i, t := range s.Delegation.Targets {
			targets[i] = t.String()
		}
		raw, err := json.Marshal(targets)
		if err != nil {
			return nil, err
		}
		w.Delegation.Targets = raw
	}
	return json.Marshal(w)
}

// UnmarshalJSON mirrors MarshalJSON and validates strictly: structural
// problems fail with ErrFormat, bad key material with ErrKeyFormat.
func (s *SignedDelegation) UnmarshalJSON(data []byte) error {
	var w wireDelegation
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}

	pubkey, err := ParseHexKey(w.Delegation.Pubkey)
	if err != nil {
		return fmt.Errorf("delegation pubkey: %w", err)
	}
	sig, err := ParseHexKey(w.Signature)
	if err != nil {
		return fmt.Errorf("delegation signature: %w", err)
	}
	exp, ok := new(big.Int).SetString(w.Delegation.Expiration, 16)
	if !ok {
		return fmt.Errorf("%w: expiration %q is not a base-16 integer", ErrFormat, w.Delegation.Expiration)
	}

	var targets []principal.Principal
	if w.Delegation.Targets != nil {
		var texts []string
		if err := json.Unmarshal(w.Delegation.Targets, &texts); err != nil || texts == nil {
			return fmt.Errorf("%w: targets must be a sequence of text identifiers", ErrFormat)
		}
		targets = make([]principal.Principal, len(texts))
		for i, t := range texts {
			p, err := principal.FromText(t)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrFormat, err)
			}
			targets[i] = p
		}
	}

	s.Delegation = Delegation{PubKey: pubkey, Expiration: exp, Targets: targets}
	s.Signature = sig
	return nil
}

// ParseHexKey decodes a hex-encoded key or signature field, enforcing the
// minimum accepted length.
func ParseHexKey(v any) ([]byte, error) {
	s, ok := v.(string)
	if !ok || len(s) < minKeyHexLen {
		return nil, ErrKeyFormat
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyFormat, err)
	}
	return b, nil
}

// Envelope wraps a request body with the sender's authentication: the outer
// signature, the delegation chain, and the root public key the chain leads
// back to.
type Envelope struct {
	Content          Record             `json:"content"`
	SenderSig        []byte             `json:"sender_sig"`
	SenderDelegation []SignedDelegation `json:"sender_delegation,omitempty"`
	SenderPubKey     []byte             `json:"sender_pubkey"`
}

// Request is an outgoing call before sender authentication is attached.
// Body holds the record that gets signed; the other fields pass through the
// transform untouched.
type Request struct {
	Endpoint string
	Headers  map[string]string
	Body     Record
}

// SignedRequest carries the same transport fields with the body wrapped in an
// authentication envelope.
type SignedRequest struct {
	Endpoint string
	Headers  map[string]string
	Body     Envelope
}
