// Package commands defines the agentid CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - init         Create the local signing key
//   - fingerprint  Print the key fingerprint and principal
//   - pubkey       Print the DER-encoded public key as hex
//   - inspect      Validate and summarize a delegation chain file
//
// # Implementation
//
// The root command builds a dependency graph (stores, keyring service)
// before any subcommand runs, so handlers share one app context. Chain
// creation is deliberately not a CLI concern: the canonical request-id
// digest is an injected collaborator of the delegation package, and this
// tool ships no verifier-compatible implementation of it.
package commands
