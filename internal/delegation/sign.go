package delegation

import (
	"context"
	"fmt"

	"agentid/internal/domain"
)

// Domain separators bind a signature to one protocol purpose, so a
// delegation signature can never be replayed as a request signature or the
// other way round. The exact bytes are fixed by the verifier.
var (
	DelegationDomainSeparator = []byte("\x1aic-request-auth-delegation")
	RequestDomainSeparator    = []byte("\x0aic-request")
)

// signDelegation produces one signed delegation: the canonical hash of the
// record, prefixed with the delegation domain separator, signed by the
// delegating key. Signing failures propagate unchanged.
func signDelegation(
	ctx context.Context,
	from domain.Signer,
	d domain.Delegation,
	requestID domain.RequestID,
) (domain.SignedDelegation, error) {
	digest, err := requestID(d.Record())
	if err != nil {
		return domain.SignedDelegation{}, fmt.Errorf("hash delegation: %w", err)
	}
	sig, err := from.Sign(ctx, withSeparator(DelegationDomainSeparator, digest))
	if err != nil {
		return domain.SignedDelegation{}, fmt.Errorf("sign delegation: %w", err)
	}
	return domain.SignedDelegation{Delegation: d, Signature: sig}, nil
}

// withSeparator concatenates a domain separator and a digest into a fresh
// buffer ready for signing.
func withSeparator(sep []byte, digest [32]byte) []byte {
	msg := make([]byte, 0, len(sep)+len(digest))
	msg = append(msg, sep...)
	return append(msg, digest[:]...)
}
