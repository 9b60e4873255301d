// Package keyring manages the local signing key: generation, encrypted
// persistence, and loading for use as the delegating signer.
package keyring
