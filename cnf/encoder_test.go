// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cnf

import (
	"testing"

	"github.com/luxfi/fbas/graph"
	"github.com/luxfi/fbas/qset"
	"github.com/stretchr/testify/require"
)

// fakeBuilder records clauses and hands out sequential variable indices,
// standing in for a real SAT backend in unit tests.
type fakeBuilder struct {
	nextVar int
	clauses [][]Lit
}

func newFakeBuilder(baseVars int) *fakeBuilder {
	return &fakeBuilder{nextVar: baseVars}
}

func (fb *fakeBuilder) NewVar() int {
	v := fb.nextVar
	fb.nextVar++
	return v
}

func (fb *fakeBuilder) AddClause(lits []Lit) {
	cp := append([]Lit(nil), lits...)
	fb.clauses = append(fb.clauses, cp)
}

func twoValidatorDisjointMap() qset.Map {
	return qset.Map{
		"v1": qset.New(1, []qset.ID{"v2"}, nil),
		"v2": qset.New(1, []qset.ID{"v1"}, nil),
	}
}

func TestEncodeEmitsNonEmptinessClauses(t *testing.T) {
	f, err := graph.Build(twoValidatorDisjointMap())
	require.NoError(t, err)

	b := newFakeBuilder(f.BaseVarCount())
	require.NoError(t, Encode(f, b))

	validators := f.Validators()
	wantA := make([]Lit, 0, len(validators))
	wantB := make([]Lit, 0, len(validators))
	for _, v := range validators {
		wantA = append(wantA, Pos(f.LitA(v)))
		wantB = append(wantB, Pos(f.LitB(v)))
	}
	require.Contains(t, b.clauses, wantA)
	require.Contains(t, b.clauses, wantB)
}

func TestEncodeEmitsDisjointnessClauses(t *testing.T) {
	f, err := graph.Build(twoValidatorDisjointMap())
	require.NoError(t, err)

	b := newFakeBuilder(f.BaseVarCount())
	require.NoError(t, Encode(f, b))

	for _, v := range f.Validators() {
		want := []Lit{Neg(f.LitA(v)), Neg(f.LitB(v))}
		require.Contains(t, b.clauses, want)
	}
}

func TestEncodeAllocatesAuxVarsAfterBase(t *testing.T) {
	f, err := graph.Build(twoValidatorDisjointMap())
	require.NoError(t, err)

	base := f.BaseVarCount()
	b := newFakeBuilder(base)
	require.NoError(t, Encode(f, b))

	require.Greater(t, b.nextVar, base)
}

func TestForEachCombinationThresholdOne(t *testing.T) {
	items := []graph.NodeIndex{0, 1, 2}
	var got [][]graph.NodeIndex
	buf := make([]graph.NodeIndex, 1)
	forEachCombination(items, 1, buf, func(c []graph.NodeIndex) {
		got = append(got, append([]graph.NodeIndex(nil), c...))
	})
	require.Equal(t, [][]graph.NodeIndex{{0}, {1}, {2}}, got)
}

func TestForEachCombinationThresholdAll(t *testing.T) {
	items := []graph.NodeIndex{0, 1, 2}
	var got [][]graph.NodeIndex
	buf := make([]graph.NodeIndex, 3)
	forEachCombination(items, 3, buf, func(c []graph.NodeIndex) {
		got = append(got, append([]graph.NodeIndex(nil), c...))
	})
	require.Equal(t, [][]graph.NodeIndex{{0, 1, 2}}, got)
}

func TestForEachCombinationThresholdExceedsSize(t *testing.T) {
	items := []graph.NodeIndex{0, 1}
	called := false
	buf := make([]graph.NodeIndex, 3)
	forEachCombination(items, 3, buf, func(c []graph.NodeIndex) { called = true })
	require.False(t, called)
}

func TestForEachCombinationThresholdZero(t *testing.T) {
	items := []graph.NodeIndex{0, 1}
	calls := 0
	buf := make([]graph.NodeIndex, 0)
	forEachCombination(items, 0, buf, func(c []graph.NodeIndex) {
		calls++
		require.Empty(t, c)
	})
	require.Equal(t, 1, calls)
}
