// Package store provides file-based persistence for agentid's key material
// and delegation chains.
//
// The signing key seed is sealed with a passphrase before it touches disk;
// delegation chains are stored in the interoperable JSON wire format. All
// writes go through a temp-file-then-rename replace and all methods are
// concurrency-safe via internal locking. Files live under the configured
// home directory.
package store
