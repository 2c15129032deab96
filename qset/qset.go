// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package qset holds the recursive quorum-set declaration that a validator
// publishes, and the map from validator identifier to declaration that the
// graph builder consumes.
package qset

import (
	"fmt"

	"github.com/luxfi/fbas/errs"
)

// ID is a validator identifier: the ed25519 public key in Stellar's string
// (strkey) encoding. Equality is byte-identity.
type ID string

// QuorumSet is a validator's declaration of which combinations of peers
// suffice for it to agree. It is acyclic by construction: the declaration
// syntax does not permit naming another validator's quorum set, only
// nesting new ones inline.
type QuorumSet struct {
	// Threshold is the minimum number of Validators and InnerSets,
	// combined, that must be satisfied for this quorum set to be
	// satisfied. Must be >= 1.
	Threshold uint32

	// Validators are the direct validator members of this quorum set.
	// Order is presentation-only; duplicates are semantically equivalent
	// to a single occurrence.
	Validators []ID

	// InnerSets are nested quorum sets. Order is presentation-only.
	InnerSets []QuorumSet
}

// New constructs a QuorumSet from its parts. It performs no validation
// beyond what Valid reports; callers that parse untrusted input should
// check Valid explicitly if they want to reject vacuous declarations
// early rather than let the graph builder treat them as unsatisfiable
// leaves.
func New(threshold uint32, validators []ID, innerSets []QuorumSet) QuorumSet {
	return QuorumSet{
		Threshold:  threshold,
		Validators: validators,
		InnerSets:  innerSets,
	}
}

// Map is a mapping from validator identifier to its declared quorum set.
// Insertion order is irrelevant to the map itself; the graph builder
// iterates it in sorted key order for deterministic node indices.
type Map map[ID]QuorumSet

// successorCount returns the number of direct members (validators plus
// inner sets) this quorum set declares, i.e. its out-degree once built
// into the graph.
func (q QuorumSet) successorCount() int {
	return len(q.Validators) + len(q.InnerSets)
}

// Valid reports whether the quorum set's threshold is satisfiable by its
// declared membership: 1 <= Threshold <= out-degree. A quorum set with
// zero members and a nonzero threshold is a vacuous (unsatisfiable) leaf,
// which is syntactically legal but can never contribute to any quorum.
func (q QuorumSet) Valid() bool {
	return q.Threshold >= 1 && int(q.Threshold) <= q.successorCount()
}

// Entry pairs a validator identifier with its declared quorum set, in the
// order a front-end parser encountered it. NewMap uses this ordering only
// to report which occurrence of a duplicate key is the offending one.
type Entry struct {
	ID        ID
	QuorumSet QuorumSet
}

// NewMap builds a Map from an ordered list of entries, the shape a JSON or
// XDR front-end parser naturally produces. It is the one place duplicate
// top-level validator declarations can be detected: once entries are
// folded into a Map, a second occurrence is indistinguishable from an
// update. Returns an error wrapping fbas.ErrDuplicateValidator; callers
// compare with errors.Is.
func NewMap(entries []Entry) (Map, error) {
	m := make(Map, len(entries))
	for _, e := range entries {
		if _, exists := m[e.ID]; exists {
			return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateValidator, e.ID)
		}
		m[e.ID] = e.QuorumSet
	}
	return m, nil
}
