// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sat is the external entry point for quorum intersection
// analysis: it builds the CNF encoding of an Fbas graph, hands it to a
// SAT backend, and translates the backend's verdict back into validator
// IDs. Analyzer is the Go analogue of the original's
// QuorumIntersectionChecker: construct once from an Fbas, call Solve,
// then read GetPotentialSplit if the result is Sat.
package sat

import (
	"sync/atomic"

	"github.com/bits-and-blooms/bitset"
	"github.com/luxfi/fbas/cnf"
	"github.com/luxfi/fbas/graph"
	"github.com/luxfi/fbas/internal/alloc"
	"github.com/luxfi/fbas/internal/cdcl"
	"github.com/luxfi/log"
)

// Status is the outcome of Analyzer.Solve.
type Status int

const (
	// StatusUnknown means the solve was interrupted before a verdict was
	// reached.
	StatusUnknown Status = iota
	// StatusSat means a potential split was found: the quorum intersection
	// property does not hold for this FBAS.
	StatusSat
	// StatusUnsat means no split exists: every two quorums intersect.
	StatusUnsat
)

func (s Status) String() string {
	switch s {
	case StatusSat:
		return "sat"
	case StatusUnsat:
		return "unsat"
	default:
		return "unknown"
	}
}

// backendBuilder adapts cdcl.Solver to the cnf.Builder interface: the two
// packages use identical signed-1-based literal encodings by
// construction, so the only work here is the type conversion.
type backendBuilder struct {
	solver *cdcl.Solver
}

func (b *backendBuilder) NewVar() int {
	return b.solver.NewVar()
}

func (b *backendBuilder) AddClause(lits []cnf.Lit) {
	cl := make([]cdcl.Literal, len(lits))
	for i, l := range lits {
		cl[i] = cdcl.Literal(l)
	}
	b.solver.AddClause(cl)
}

// Analyzer holds a constructed CNF encoding of an Fbas and the backend
// that will search it. It is not safe for concurrent use: Solve mutates
// backend state.
type Analyzer struct {
	fbas    *graph.Fbas
	solver  *cdcl.Solver
	logger  log.Logger
	guard   *alloc.Guard
	status  Status
	solved  bool
	splitA  []string
	splitB  []string
	interr  atomic.Bool
}

// Option configures an Analyzer at construction time.
type Option func(*Analyzer)

// WithLogger overrides the default no-op logger.
func WithLogger(l log.Logger) Option {
	return func(a *Analyzer) { a.logger = l }
}

// WithGuard overrides the default process-wide allocation guard. Passing
// nil disables the cap entirely.
func WithGuard(g *alloc.Guard) Option {
	return func(a *Analyzer) { a.guard = g }
}

// NewFromFbas builds the CNF encoding of f and returns an Analyzer ready
// to solve it. This mirrors the original's two-step
// Fbas::from_quorum_set_map followed by QuorumIntersectionChecker::new:
// the graph is already built by the caller (graph.Build), and this
// constructor owns only the encode-and-wire step.
func NewFromFbas(f *graph.Fbas, opts ...Option) (*Analyzer, error) {
	a := &Analyzer{
		fbas:   f,
		solver: cdcl.New(),
		logger: log.NoLog{},
		guard:  alloc.Default,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = log.NoLog{}
	}

	if err := a.guard.Reserve(uint64(f.NodeCount())); err != nil {
		return nil, err
	}

	b := &backendBuilder{solver: a.solver}
	for i := 0; i < f.BaseVarCount(); i++ {
		b.NewVar()
	}
	if err := cnf.Encode(f, b); err != nil {
		return nil, err
	}
	if err := a.guard.Reserve(uint64(a.solver.NumClauses())); err != nil {
		return nil, err
	}

	a.logger.Debug("encoded fbas to cnf",
		log.Int("vertices", f.NodeCount()),
		log.Int("vars", a.solver.NumVars()),
	)
	return a, nil
}

// Interrupt requests that an in-progress or future Solve call return
// StatusUnknown as soon as it next polls for cancellation. It is safe to
// call from any goroutine, any number of times, before or during Solve.
func (a *Analyzer) Interrupt() {
	a.interr.Store(true)
}

// Solve runs the SAT search and caches its verdict. Calling Solve again
// after a prior non-Unknown result returns the cached verdict without
// re-running the search, matching the original's memoized
// QuorumIntersectionChecker::solve.
func (a *Analyzer) Solve() Status {
	if a.solved && a.status != StatusUnknown {
		return a.status
	}

	switch a.solver.Solve(&a.interr) {
	case cdcl.Sat:
		a.status = StatusSat
		a.splitA, a.splitB = a.extractSplit()
	case cdcl.Unsat:
		a.status = StatusUnsat
	default:
		a.status = StatusUnknown
	}
	a.solved = true
	return a.status
}

// GetPotentialSplit returns the two disjoint quorums witnessing a failure
// of the intersection property, as validator IDs, or two empty slices if
// the most recent Solve did not return StatusSat.
func (a *Analyzer) GetPotentialSplit() (quorumA, quorumB []string) {
	if a.status != StatusSat {
		return nil, nil
	}
	return a.splitA, a.splitB
}

// extractSplit reads the satisfying assignment's membership bits for
// every validator vertex. It stages each quorum in a bitset rather than
// appending validator IDs directly, so disjointness (Encode's own
// per-validator clauses already enforce it, but a solver bug or a future
// backend swap should fail loudly here rather than hand back a corrupt
// split) can be checked with one IntersectionCardinality call instead of
// a map built just for this.
func (a *Analyzer) extractSplit() (quorumA, quorumB []string) {
	n := uint(a.fbas.NodeCount())
	bitsA := bitset.New(n)
	bitsB := bitset.New(n)
	for _, v := range a.fbas.Validators() {
		if a.solver.Value(a.fbas.LitA(v)) {
			bitsA.Set(uint(v))
		}
		if a.solver.Value(a.fbas.LitB(v)) {
			bitsB.Set(uint(v))
		}
	}

	if bitsA.IntersectionCardinality(bitsB) != 0 {
		a.logger.Error("solver returned overlapping quorums, discarding split")
		return nil, nil
	}

	for _, v := range a.fbas.Validators() {
		id, ok := a.fbas.ValidatorID(v)
		if !ok {
			continue
		}
		if bitsA.Test(uint(v)) {
			quorumA = append(quorumA, string(id))
		}
		if bitsB.Test(uint(v)) {
			quorumB = append(quorumB, string(id))
		}
	}
	return quorumA, quorumB
}
