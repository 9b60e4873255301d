package delegation

import (
	"context"
	"errors"
	"fmt"

	"agentid/internal/domain"
)

// DelegatedIdentity is a signing capability that presents the chain's root
// key as its identity while producing signatures with the inner (leaf)
// signer. It holds no state beyond the two references and is safe for
// concurrent use to the extent the inner signer is.
type DelegatedIdentity struct {
	inner     domain.Signer
	chain     *Chain
	requestID domain.RequestID
}

// FromDelegation pairs an inner signer with a delegation chain. It performs
// no I/O. requestID is used when transforming outgoing requests and must
// match the digest the chain was built with.
func FromDelegation(inner domain.Signer, chain *Chain, requestID domain.RequestID) (*DelegatedIdentity, error) {
	switch {
	case inner == nil:
		return nil, errors.New("delegation: nil inner signer")
	case chain == nil || chain.Len() == 0:
		return nil, errors.New("delegation: empty chain")
	case requestID == nil:
		return nil, errors.New("delegation: nil request-id function")
	}
	return &DelegatedIdentity{inner: inner, chain: chain, requestID: requestID}, nil
}

// Public returns the chain's root public key, not the inner signer's own
// key: callers perceive the root identity's authority.
func (id *DelegatedIdentity) Public() domain.PublicKey {
	return domain.DERPublicKey(id.chain.RootPublicKey())
}

// Sign forwards to the inner signer.
func (id *DelegatedIdentity) Sign(ctx context.Context, message []byte) ([]byte, error) {
	return id.inner.Sign(ctx, message)
}

// Chain returns the delegation chain this identity presents.
func (id *DelegatedIdentity) Chain() *Chain { return id.chain }

// TransformRequest re-signs an outgoing request so a remote verifier can
// recover the root authority behind it: the body's canonical hash is signed
// under the request domain separator and the body is replaced by an envelope
// carrying the original content, the signature, the delegation chain, and
// the root public key. All other request fields pass through unchanged.
func (id *DelegatedIdentity) TransformRequest(ctx context.Context, req domain.Request) (domain.SignedRequest, error) {
	digest, err := id.requestID(req.Body)
	if err != nil {
		return domain.SignedRequest{}, fmt.Errorf("hash request body: %w", err)
	}
	sig, err := id.Sign(ctx, withSeparator(RequestDomainSeparator, digest))
	if err != nil {
		return domain.SignedRequest{}, fmt.Errorf("sign request: %w", err)
	}
	return domain.SignedRequest{
		Endpoint: req.Endpoint,
		Headers:  req.Headers,
		Body: domain.Envelope{
			Content:          req.Body,
			SenderSig:        sig,
			SenderDelegation: id.chain.Delegations(),
			SenderPubKey:     id.chain.RootPublicKey(),
		},
	}, nil
}

// Compile-time assertion that DelegatedIdentity implements domain.Signer.
var _ domain.Signer = (*DelegatedIdentity)(nil)
