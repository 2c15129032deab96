// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package cnf compiles the negation of quorum intersection ("there exist
// two non-empty, disjoint quorums A and B") into CNF clauses over the
// literal layout a graph.Fbas assigns. A satisfying assignment is a
// counter-example; an unsatisfiable formula proves quorum intersection
// holds.
package cnf

import (
	"fmt"

	"github.com/luxfi/fbas/errs"
	"github.com/luxfi/fbas/graph"
)

// Lit is a signed literal in the DIMACS convention: a positive value
// names a variable asserted true, a negative value the same variable
// (by absolute value, 1-indexed) asserted false. Builder implementations
// translate Lit directly into whatever literal type their underlying
// solver uses.
type Lit int32

// Pos returns the literal asserting variable v (0-based) true.
func Pos(v int) Lit { return Lit(v + 1) }

// Neg returns the literal asserting variable v (0-based) false.
func Neg(v int) Lit { return Lit(-(v + 1)) }

// Negate flips a literal's polarity.
func (l Lit) Negate() Lit { return -l }

// Builder is the minimal capability the encoder needs from a SAT
// backend: allocate a fresh propositional variable, and add one clause
// (a disjunction of literals). Variable indices returned by NewVar are
// 0-based and must be dense and contiguous, matching the base layout
// graph.Fbas.BaseVarCount already reserved — the first call to NewVar
// made by the encoder itself returns BaseVarCount, i.e. the first
// Tseitin auxiliary.
type Builder interface {
	NewVar() int
	AddClause(lits []Lit)
}

// Encode compiles f's "no disjoint quorums" negation into clauses added
// to b. The caller must have already allocated f.BaseVarCount() base
// variables on b (one NewVar call per base variable) before calling
// Encode, since the literal layout in graph.Fbas assumes it.
//
// It emits, in order: non-emptiness of quorum A, non-emptiness of quorum
// B, pairwise disjointness of every validator, and slice-satisfaction
// clauses for every vertex under both the A- and B-membership
// interpretation. Returns errs.ErrInternal only if f itself is
// inconsistent (a node index with no backing vertex); it never rejects
// otherwise-legal input.
func Encode(f *graph.Fbas, b Builder) error {
	validators := f.Validators()

	quorumANotEmpty := make([]Lit, 0, len(validators))
	quorumBNotEmpty := make([]Lit, 0, len(validators))
	for _, v := range validators {
		quorumANotEmpty = append(quorumANotEmpty, Pos(f.LitA(v)))
		quorumBNotEmpty = append(quorumBNotEmpty, Pos(f.LitB(v)))
	}
	b.AddClause(quorumANotEmpty)
	b.AddClause(quorumBNotEmpty)

	for _, v := range validators {
		b.AddClause([]Lit{Neg(f.LitA(v)), Neg(f.LitB(v))})
	}

	if err := encodeSliceRelations(f, b, f.LitA); err != nil {
		return err
	}
	if err := encodeSliceRelations(f, b, f.LitB); err != nil {
		return err
	}
	return nil
}

// litFunc derives a vertex's quorum-membership literal variable; it is
// f.LitA or f.LitB, applied once per encoding pass.
type litFunc func(graph.NodeIndex) int

// encodeSliceRelations emits, for every vertex v in the graph, the
// Tseitin expansion of "v is in the quorum implies its threshold-of-
// successors relation holds". See spec §4.4 for the clause shapes; combinations are streamed via forEachCombination rather
// than materialized, since for wide quorum sets C(d, t) dominates cost.
func encodeSliceRelations(f *graph.Fbas, b Builder, in litFunc) error {
	for i := 0; i < f.NodeCount(); i++ {
		vi := graph.NodeIndex(i)
		vtx, err := f.Vertex(vi)
		if err != nil {
			return fmt.Errorf("%w: encoding slice relation for node %d: %v", errs.ErrInternal, i, err)
		}

		notQV := Neg(in(vi))
		threshold := int(vtx.Threshold())
		successors := vtx.Successors()

		witness := []Lit{notQV}
		combo := make([]graph.NodeIndex, threshold)
		forEachCombination(successors, threshold, combo, func(c []graph.NodeIndex) {
			xij := Pos(b.NewVar()) // fresh proposition, asserted true

			neg := make([]Lit, 0, len(c)+2)
			neg = append(neg, notQV, xij)
			for _, s := range c {
				sLit := in(s)
				b.AddClause([]Lit{notQV, xij.Negate(), Pos(sLit)})
				neg = append(neg, Neg(sLit))
			}
			b.AddClause(neg)

			witness = append(witness, xij)
		})
		b.AddClause(witness)
	}
	return nil
}
