// Package aggregates contains infrastructure implementations of domain aggregate contracts.
//
// Implementations compose the nutrition table repos from internal/data/repos
// and own the transaction boundary of every write. Invariant checks run inside
// the same transaction as the writes they guard; unique indexes and foreign
// keys on the tables back them up, and violations surfaced by the database are
// mapped onto the same error codes.
package aggregates
