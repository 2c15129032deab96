// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package cdcl is a small, in-tree CDCL-style boolean satisfiability
// solver. No Go SAT solver appears anywhere in the example pack this
// module was grounded on, and the core spec treats the solver as a
// pluggable backend ("any CDCL solver exposing incremental
// variable/clause APIs suffices") — so it is written the way the rest of
// this module writes its own algorithmic cores: plain state, no
// framework, unexported unless a caller genuinely needs it.
//
// It implements unit propagation, chronological backtracking search, and
// cooperative interruption polled at every conflict — not a full
// non-chronological-backtracking, clause-learning engine. The encoder
// depends only on the small cnf.Builder interface, so another solver can
// be plugged into it without touching the encoder; sat.Analyzer itself
// holds a *Solver directly.
package cdcl

import "sync/atomic"

// Literal is a signed, 1-based DIMACS-style literal: a positive value
// names a variable (by value - 1) asserted true, a negative value the
// same variable asserted false. Variable 0 is never used.
type Literal int32

// Var returns the 0-based variable this literal refers to.
func (l Literal) Var() int {
	if l < 0 {
		return int(-l) - 1
	}
	return int(l) - 1
}

// Positive reports whether this literal asserts its variable true.
func (l Literal) Positive() bool {
	return l > 0
}

// Negate returns the complementary literal.
func (l Literal) Negate() Literal {
	return -l
}

// Status is the outcome of a solve attempt.
type Status int

const (
	Unknown Status = iota
	Sat
	Unsat
)

// Solver is an incremental CNF satisfiability engine: variables and
// clauses may be added between, but not during, a call to Solve.
type Solver struct {
	numVars int
	clauses [][]Literal
	assign  []int8 // 1-based index by variable+1; 0 = unassigned, 1 = true, -1 = false

	conflicts int
}

// New returns an empty solver with no variables and no clauses.
func New() *Solver {
	return &Solver{}
}

// NewVar allocates a fresh variable and returns its 0-based index.
func (s *Solver) NewVar() int {
	s.numVars++
	return s.numVars - 1
}

// NumVars returns the number of variables allocated so far.
func (s *Solver) NumVars() int {
	return s.numVars
}

// NumClauses returns the number of clauses added so far.
func (s *Solver) NumClauses() int {
	return len(s.clauses)
}

// AddClause adds one clause (a disjunction of the given literals) to the
// solver. The slice is copied; the caller may reuse it afterward.
func (s *Solver) AddClause(lits []Literal) {
	cp := make([]Literal, len(lits))
	copy(cp, lits)
	s.clauses = append(s.clauses, cp)
}

// Conflicts returns the number of conflicts encountered by the most
// recent call to Solve.
func (s *Solver) Conflicts() int {
	return s.conflicts
}

// Solve runs the search to completion, to Unsat, or until interrupt is
// observed set. interrupt may be nil, in which case the search always
// runs to completion. It is polled once per conflict and once before
// each new decision, which bounds how stale an observed interruption can
// be by a bounded number of conflicts, not by wall-clock time.
func (s *Solver) Solve(interrupt *atomic.Bool) Status {
	s.assign = make([]int8, s.numVars+1)
	s.conflicts = 0

	var trail []Literal
	type frame struct {
		trailLen  int
		lit       Literal
		triedBoth bool
	}
	var stack []frame

	assignLit := func(l Literal) bool {
		v := l.Var() + 1
		want := int8(1)
		if !l.Positive() {
			want = -1
		}
		if s.assign[v] != 0 {
			return s.assign[v] == want
		}
		s.assign[v] = want
		trail = append(trail, l)
		return true
	}

	undoTo := func(trailLen int) {
		for len(trail) > trailLen {
			l := trail[len(trail)-1]
			trail = trail[:len(trail)-1]
			s.assign[l.Var()+1] = 0
		}
	}

	// unitPropagate scans all clauses to a fixed point, assigning any
	// unit clause's last free literal and detecting conflicts. It is not
	// watched-literal incremental; correctness, not asymptotic
	// propagation cost, is the goal here.
	unitPropagate := func() bool {
		for {
			progressed := false
			for _, cl := range s.clauses {
				satisfied := false
				var unassignedLit Literal
				unassignedCount := 0
				for _, lit := range cl {
					v := lit.Var() + 1
					switch {
					case s.assign[v] == 0:
						unassignedCount++
						unassignedLit = lit
					case (s.assign[v] == 1) == lit.Positive():
						satisfied = true
					}
					if satisfied {
						break
					}
				}
				if satisfied {
					continue
				}
				if unassignedCount == 0 {
					return false // conflict: every literal false
				}
				if unassignedCount == 1 {
					if !assignLit(unassignedLit) {
						return false
					}
					progressed = true
				}
			}
			if !progressed {
				return true
			}
		}
	}

	if interrupt != nil && interrupt.Load() {
		return Unknown
	}
	if !unitPropagate() {
		return Unsat
	}

	for {
		if interrupt != nil && interrupt.Load() {
			return Unknown
		}

		if ok := unitPropagate(); !ok {
			s.conflicts++
			if interrupt != nil && interrupt.Load() {
				return Unknown
			}

			for {
				if len(stack) == 0 {
					return Unsat
				}
				top := &stack[len(stack)-1]
				undoTo(top.trailLen)
				if !top.triedBoth {
					top.triedBoth = true
					flipped := top.lit.Negate()
					assignLit(flipped)
					break
				}
				stack = stack[:len(stack)-1]
			}
			continue
		}

		v := s.pickUnassigned()
		if v == 0 {
			return Sat
		}
		lit := Literal(v)
		stack = append(stack, frame{trailLen: len(trail), lit: lit})
		assignLit(lit)
	}
}

// pickUnassigned returns the 1-based index of the first unassigned
// variable, or 0 if every variable is assigned.
func (s *Solver) pickUnassigned() int {
	for v := 1; v <= s.numVars; v++ {
		if s.assign[v] == 0 {
			return v
		}
	}
	return 0
}

// Value returns the truth value the most recent satisfying assignment
// gave to the 0-based variable v. Only meaningful after Solve returns
// Sat.
func (s *Solver) Value(v int) bool {
	return s.assign[v+1] == 1
}
