// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package graph

// Literal layout (component C3): given a graph of N vertices, the solver
// is handed exactly 2N base variables. Variable i (0 <= i < N) means
// "vertex i is in quorum A"; variable N+i means "vertex i is in quorum
// B". Auxiliary Tseitin variables the encoder introduces are allocated
// after these 2N, so a vertex's A- and B-literals can always be derived
// from its node index alone, independent of how many auxiliary variables
// have been created so far.
//
// This layout must be established before any clause is emitted, which is
// why BaseVarCount, LitA, and LitB live on Fbas itself rather than on the
// encoder: the encoder reads them, it does not choose them.

// BaseVarCount returns 2*NodeCount, the number of solver variables that
// must be allocated before any clause referencing a vertex's quorum
// membership is emitted.
func (f *Fbas) BaseVarCount() int {
	return 2 * f.NodeCount()
}

// LitA returns the 0-based solver variable representing "vertex v is in
// quorum A".
func (f *Fbas) LitA(v NodeIndex) int {
	return int(v)
}

// LitB returns the 0-based solver variable representing "vertex v is in
// quorum B".
func (f *Fbas) LitB(v NodeIndex) int {
	return int(v) + f.NodeCount()
}
