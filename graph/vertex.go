// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package graph

import "github.com/luxfi/fbas/qset"

// NodeIndex addresses a vertex in an Fbas graph. Indices are stable for the
// lifetime of the Fbas: the order in which validators are registered
// becomes their index order, and QSet vertices are appended afterward as
// interning creates them; a nested quorum set is appended before the
// quorum set that contains it.
type NodeIndex int

// kind distinguishes the two vertex variants the graph can hold.
type kind uint8

const (
	kindValidator kind = iota
	kindQSet
)

// Vertex is either a Validator (exactly one outgoing edge, to the QSet
// vertex encoding its declared quorum set) or a QSet (outgoing edges to
// all of its members, validators and nested quorum sets alike).
type Vertex struct {
	kind       kind
	validator  qset.ID
	threshold  uint32
	successors []NodeIndex
}

// IsValidator reports whether this vertex represents a validator, as
// opposed to an interned quorum set.
func (v Vertex) IsValidator() bool {
	return v.kind == kindValidator
}

// Validator returns the validator identifier this vertex represents, and
// whether it is in fact a validator vertex.
func (v Vertex) Validator() (qset.ID, bool) {
	if v.kind != kindValidator {
		return "", false
	}
	return v.validator, true
}

// Threshold returns the number of successors that must be present for
// this vertex to be considered "in the quorum". Validator vertices always
// report a threshold of 1 over their single successor (their declared
// quorum set).
func (v Vertex) Threshold() uint32 {
	return v.threshold
}

// Successors returns the vertex's outgoing edges: for a Validator, a
// single-element slice naming its QSet; for a QSet, its member validators
// and nested quorum sets in a stable, deterministic order.
func (v Vertex) Successors() []NodeIndex {
	return v.successors
}
