// Package delegation builds and serializes chains of signed delegations, and
// wraps an inner signer into an identity that acts with the chain's root
// authority.
//
// Contents
//
//   - Domain separators for delegation and request signing
//     (DelegationDomainSeparator, RequestDomainSeparator)
//   - Chain construction and extension (Create, CreateOptions)
//   - The interoperable JSON wire format (Chain.MarshalJSON, FromJSON)
//   - Delegated request signing (DelegatedIdentity, TransformRequest)
//
// # Notes
//
// Chains are immutable: extending one produces a new value and never touches
// the base chain, so values are freely shared across goroutines. The
// canonical request-id digest is a collaborator supplied by the caller; its
// algorithm must match the relying party's.
package delegation
