// Package domain defines core data models and interfaces shared across the
// toolkit. It contains plain types (delegation records, request envelopes)
// and contracts (signer capabilities, storage interfaces) only.
package domain
