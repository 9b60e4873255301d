// Package principal implements recipient identifiers: raw bytes rendered as
// dash-grouped lowercase base32 over a CRC32 checksum prefix, plus derivation
// of self-authenticating principals from DER-encoded public keys.
package principal
