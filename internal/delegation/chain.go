package delegation

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	"agentid/internal/domain"
	"agentid/internal/principal"
)

// DefaultExpiry is how long a delegation lasts when no expiration is given.
const DefaultExpiry = 15 * time.Minute

// Chain is an ordered custody chain of signed delegations from a root key
// down to the currently active key. Index 0 was signed by the root; each
// later entry was signed by the holder of the previous entry's delegate key.
//
// A Chain is immutable once constructed and carries no private key material,
// so it is safe to transmit, persist, and share across goroutines. Build one
// with Create or FromJSON; the zero value is not usable.
type Chain struct {
	delegations   []domain.SignedDelegation
	rootPublicKey []byte
}

// CreateOptions carries the optional parameters of Create.
type CreateOptions struct {
	// Expiration of the new delegation. The zero value means
	// time.Now().Add(DefaultExpiry).
	Expiration time.Time
	// Targets restricts the delegation to requests addressed to one of
	// these recipients. Empty means unrestricted.
	Targets []principal.Principal
	// Previous, when set, is the chain being extended. The new entry is
	// appended and the root public key carries over unchanged.
	Previous *Chain
}

// Create signs a delegation from the key held by from to the public key to,
// and returns the resulting chain. Without Previous the chain has length one
// and its root public key is from's own DER key; with Previous the base
// chain's entries are reused unchanged and the new entry is appended.
// requestID is the canonical digest the verifier also uses.
func Create(
	ctx context.Context,
	from domain.Signer,
	to domain.PublicKey,
	requestID domain.RequestID,
	opts *CreateOptions,
) (*Chain, error) {
	if opts == nil {
		opts = &CreateOptions{}
	}
	expiration := opts.Expiration
	if expiration.IsZero() {
		expiration = time.Now().Add(DefaultExpiry)
	}

	d := domain.Delegation{
		PubKey:     to.DER(),
		Expiration: nanosSinceEpoch(expiration),
	}
	if len(opts.Targets) > 0 {
		d.Targets = append([]principal.Principal(nil), opts.Targets...)
	}

	signed, err := signDelegation(ctx, from, d, requestID)
	if err != nil {
		return nil, err
	}

	if prev := opts.Previous; prev != nil {
		delegations := make([]domain.SignedDelegation, 0, len(prev.delegations)+1)
		delegations = append(delegations, prev.delegations...)
		delegations = append(delegations, signed)
		return &Chain{
			delegations:   delegations,
			rootPublicKey: prev.rootPublicKey,
		}, nil
	}
	return &Chain{
		delegations:   []domain.SignedDelegation{signed},
		rootPublicKey: from.Public().DER(),
	}, nil
}

// Delegations returns the signed delegations in custody order, root first.
func (c *Chain) Delegations() []domain.SignedDelegation {
	return append([]domain.SignedDelegation(nil), c.delegations...)
}

// RootPublicKey returns the DER-encoded public key of the chain's first
// signer.
func (c *Chain) RootPublicKey() []byte {
	return append([]byte(nil), c.rootPublicKey...)
}

// Len returns the number of delegations in the chain.
func (c *Chain) Len() int { return len(c.delegations) }

// MarshalJSON encodes the chain in the interoperable wire format: the root
// key hex-encoded under "publicKey" and the entries under "delegations".
func (c *Chain) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		PublicKey   string                    `json:"publicKey"`
		Delegations []domain.SignedDelegation `json:"delegations"`
	}{
		PublicKey:   hex.EncodeToString(c.rootPublicKey),
		Delegations: c.delegations,
	})
}

// FromJSON parses and strictly validates a serialized chain. Structural
// problems fail with domain.ErrFormat and bad key material with
// domain.ErrKeyFormat; no partial chain is ever returned.
func FromJSON(data []byte) (*Chain, error) {
	var w struct {
		PublicKey   any             `json:"publicKey"`
		Delegations json.RawMessage `json:"delegations"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFormat, err)
	}
	if w.Delegations == nil {
		return nil, fmt.Errorf("%w: missing delegations", domain.ErrFormat)
	}

	var delegations []domain.SignedDelegation
	if err := json.Unmarshal(w.Delegations, &delegations); err != nil {
		if errors.Is(err, domain.ErrFormat) || errors.Is(err, domain.ErrKeyFormat) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: delegations must be a sequence", domain.ErrFormat)
	}
	if len(delegations) == 0 {
		return nil, fmt.Errorf("%w: empty delegation sequence", domain.ErrFormat)
	}

	root, err := domain.ParseHexKey(w.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("root public key: %w", err)
	}
	return &Chain{delegations: delegations, rootPublicKey: root}, nil
}

// nanosSinceEpoch converts an instant to nanoseconds since epoch at
// millisecond precision, as an arbitrary-precision integer.
func nanosSinceEpoch(t time.Time) *big.Int {
	ns := big.NewInt(t.UnixMilli())
	return ns.Mul(ns, big.NewInt(int64(time.Millisecond)))
}
