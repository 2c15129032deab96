// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fbas decides whether a Federated Byzantine Agreement System
// satisfies quorum intersection: that every two quorums share at least one
// validator. It reduces the question to Boolean satisfiability over the
// FBAS's trust graph and, when the property fails, returns a concrete
// counter-example of two disjoint quorums.
//
// The module is organized leaves-first:
//
//   - qset holds the recursive quorum-set value type and the map from
//     validator identifier to declared quorum set.
//   - graph interns a QuorumSetMap into a deduplicated DAG and assigns the
//     deterministic literal layout the encoder depends on.
//   - cnf compiles the "no disjoint quorums" negation into CNF clauses.
//   - sat drives a CDCL-style solver over those clauses and lifts a
//     satisfying model back into a pair of validator sets.
//   - adapter builds a qset.Map from XDR-encoded node records or from a
//     JSON document in either of two on-disk dialects.
package fbas
