// Package crypto exposes the concrete primitives used by agentid.
//
// Contents
//
//   - An Ed25519 signing capability with PKIX/DER public keys
//     (GenerateEd25519, Ed25519FromSeed)
//   - Passphrase encryption of key material at rest with Argon2id and
//     ChaCha20-Poly1305 (SealSecret, OpenSecret)
//   - Short public-key fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// Callers should treat seeds and derived keys as sensitive and rely on
// memzero when practical to reduce their lifetime in memory.
package crypto
