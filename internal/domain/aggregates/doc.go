// Package aggregates defines write-side contracts for the nutrition entities.
//
// Each aggregate owns the transaction boundary of its writes and the
// cross-table invariants those writes must hold: unique names, existing
// references, no deletion of referenced rows, and all-or-nothing creation of
// an entity together with its links. Reads that serve list endpoints stay on
// table repos.
package aggregates
