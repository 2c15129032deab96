// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sat

import (
	"testing"

	"github.com/luxfi/fbas/graph"
	"github.com/luxfi/fbas/qset"
	"github.com/stretchr/testify/require"
)

// topTier returns a 3-validator FBAS where every validator requires all
// three — the simplest "top tier", which intersects (UNSAT: no split
// exists).
func topTier() qset.Map {
	all := []qset.ID{"v1", "v2", "v3"}
	m := qset.Map{}
	for _, id := range all {
		var others []qset.ID
		for _, o := range all {
			if o != id {
				others = append(others, o)
			}
		}
		m[id] = qset.New(3, append([]qset.ID{id}, others...), nil)
	}
	return m
}

// twoDisjointSingles returns two validators that only trust themselves:
// {v1} and {v2} each form their own quorum, so A={v1}, B={v2} is a valid
// split (SAT).
func twoDisjointSingles() qset.Map {
	return qset.Map{
		"v1": qset.New(1, []qset.ID{"v1"}, nil),
		"v2": qset.New(1, []qset.ID{"v2"}, nil),
	}
}

// almostSymmetricSparse is four validators split into two trust pairs
// that never cross: {v1,v2} each need only 1-of-2 from their own pair,
// same for {v3,v4}. Quorums from different pairs never intersect.
func almostSymmetricSparse() qset.Map {
	return qset.Map{
		"v1": qset.New(1, []qset.ID{"v1", "v2"}, nil),
		"v2": qset.New(1, []qset.ID{"v1", "v2"}, nil),
		"v3": qset.New(1, []qset.ID{"v3", "v4"}, nil),
		"v4": qset.New(1, []qset.ID{"v3", "v4"}, nil),
	}
}

// almostSymmetricDense is the same four validators but each requires a
// 3-of-4 threshold across all of them: any two size->=3 subsets of a
// 4-element universe intersect, so this is UNSAT.
func almostSymmetricDense() qset.Map {
	all := []qset.ID{"v1", "v2", "v3", "v4"}
	m := qset.Map{}
	for _, id := range all {
		m[id] = qset.New(3, all, nil)
	}
	return m
}

func buildAnalyzer(t *testing.T, m qset.Map) *Analyzer {
	t.Helper()
	f, err := graph.Build(m)
	require.NoError(t, err)
	a, err := NewFromFbas(f)
	require.NoError(t, err)
	return a
}

func TestSolveTopTierIsUnsat(t *testing.T) {
	a := buildAnalyzer(t, topTier())
	require.Equal(t, StatusUnsat, a.Solve())

	qa, qb := a.GetPotentialSplit()
	require.Empty(t, qa)
	require.Empty(t, qb)
}

func TestSolveTwoDisjointSinglesIsSat(t *testing.T) {
	a := buildAnalyzer(t, twoDisjointSingles())
	require.Equal(t, StatusSat, a.Solve())

	qa, qb := a.GetPotentialSplit()
	require.NotEmpty(t, qa)
	require.NotEmpty(t, qb)

	seen := make(map[string]bool)
	for _, id := range qa {
		seen[id] = true
	}
	for _, id := range qb {
		require.False(t, seen[id], "quorums must be disjoint, got overlap on %s", id)
	}
}

func TestSolveAlmostSymmetricSparseIsSat(t *testing.T) {
	a := buildAnalyzer(t, almostSymmetricSparse())
	require.Equal(t, StatusSat, a.Solve())
}

func TestSolveAlmostSymmetricDenseIsUnsat(t *testing.T) {
	a := buildAnalyzer(t, almostSymmetricDense())
	require.Equal(t, StatusUnsat, a.Solve())
}

func TestSolveSingleValidatorIsUnsat(t *testing.T) {
	m := qset.Map{"v1": qset.New(1, []qset.ID{"v1"}, nil)}
	a := buildAnalyzer(t, m)
	require.Equal(t, StatusUnsat, a.Solve())
}

func TestSolveIsIdempotent(t *testing.T) {
	a := buildAnalyzer(t, twoDisjointSingles())
	first := a.Solve()
	second := a.Solve()
	require.Equal(t, first, second)

	qa1, qb1 := a.GetPotentialSplit()
	qa2, qb2 := a.GetPotentialSplit()
	require.Equal(t, qa1, qa2)
	require.Equal(t, qb1, qb2)
}

func TestInterruptBeforeSolveYieldsUnknown(t *testing.T) {
	a := buildAnalyzer(t, topTier())
	a.Interrupt()
	require.Equal(t, StatusUnknown, a.Solve())
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "sat", StatusSat.String())
	require.Equal(t, "unsat", StatusUnsat.String())
	require.Equal(t, "unknown", StatusUnknown.String())
}
