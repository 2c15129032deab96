// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package graph interns a qset.Map into a deduplicated DAG of validators
// and nested quorum sets, and assigns the deterministic literal layout the
// CNF encoder depends on.
package graph

import (
	"fmt"
	"sort"

	"github.com/luxfi/fbas/errs"
	"github.com/luxfi/fbas/qset"
	"github.com/luxfi/fbas/set"
	"github.com/luxfi/log"
)

// DefaultMaxDepth bounds quorum-set nesting depth. It is not a hard
// ceiling: callers targeting a deployment with a stricter bound (Stellar
// Core itself enforces 3 in practice) can lower it with WithMaxDepth.
const DefaultMaxDepth = 4

// Fbas is a directed acyclic graph built from a qset.Map: one Validator
// vertex per map entry, and one QSet vertex per distinct quorum-set value
// reachable from those entries. It is read-only once built.
type Fbas struct {
	vertices   []Vertex
	validators []NodeIndex
	maxDepth   int
}

// NodeCount returns the total number of vertices (validators plus interned
// quorum sets) in the graph.
func (f *Fbas) NodeCount() int {
	return len(f.vertices)
}

// Validators returns the node index of every validator vertex, in
// registration order (sorted by validator identifier).
func (f *Fbas) Validators() []NodeIndex {
	return f.validators
}

// Vertex returns the vertex at the given index. It returns
// errs.ErrInternal if the index is out of range, which should not happen
// for any index this package itself handed out.
func (f *Fbas) Vertex(i NodeIndex) (Vertex, error) {
	if i < 0 || int(i) >= len(f.vertices) {
		return Vertex{}, fmt.Errorf("%w: node index %d out of range", errs.ErrInternal, i)
	}
	return f.vertices[i], nil
}

// ValidatorID returns the validator identifier for a validator's node
// index. The second return value is false if the index does not name a
// validator vertex.
func (f *Fbas) ValidatorID(i NodeIndex) (qset.ID, bool) {
	if i < 0 || int(i) >= len(f.vertices) {
		return "", false
	}
	return f.vertices[i].Validator()
}

// options configures Build.
type options struct {
	maxDepth int
	log      log.Logger
}

// Option configures the graph builder.
type Option func(*options)

// WithMaxDepth overrides DefaultMaxDepth. Quorum sets nesting strictly
// deeper than depth are rejected with errs.ErrQuorumSetTooDeep.
func WithMaxDepth(depth int) Option {
	return func(o *options) { o.maxDepth = depth }
}

// WithLogger directs the silent-drop warning required by the "unknown
// inner validator" rule (a validator named inside a quorum set that has
// no top-level entry) to the given sink instead of discarding it. The
// default is log.NoLog{}.
func WithLogger(l log.Logger) Option {
	return func(o *options) { o.log = l }
}

// Build interns m into an Fbas. Validators are registered first, in
// sorted key order for deterministic node indices (invariant I4); their
// quorum sets are then processed depth-first and interned by structural
// value (invariant I1, the Qset interning key). A validator referenced
// inside a quorum set that has no top-level entry in m is silently
// dropped (invariant I2) and logged as a warning, not treated as an
// error.
func Build(m qset.Map, opts ...Option) (*Fbas, error) {
	o := options{maxDepth: DefaultMaxDepth, log: log.NoLog{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = log.NoLog{}
	}

	f := &Fbas{maxDepth: o.maxDepth}

	ids := make([]qset.ID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	known := make(map[qset.ID]NodeIndex, len(ids))
	for _, id := range ids {
		idx := NodeIndex(len(f.vertices))
		f.vertices = append(f.vertices, Vertex{kind: kindValidator, validator: id, threshold: 1})
		f.validators = append(f.validators, idx)
		known[id] = idx
	}

	interned := make(map[string]NodeIndex)
	for _, id := range ids {
		qIdx, err := f.process(m[id], 0, known, interned, o.log)
		if err != nil {
			return nil, err
		}
		vIdx := known[id]
		f.vertices[vIdx].successors = []NodeIndex{qIdx}
	}

	return f, nil
}

// process interns qs and everything beneath it, returning the node index
// of the (possibly shared) QSet vertex that represents it.
func (f *Fbas) process(
	qs qset.QuorumSet,
	depth int,
	known map[qset.ID]NodeIndex,
	interned map[string]NodeIndex,
	logger log.Logger,
) (NodeIndex, error) {
	if depth >= f.maxDepth {
		return 0, fmt.Errorf("%w: nesting depth %d", errs.ErrQuorumSetTooDeep, depth+1)
	}

	var validatorSuccessors []int
	for _, v := range qs.Validators {
		idx, ok := known[v]
		if !ok {
			logger.Warn("dropping unknown validator referenced in quorum set", "validator", string(v))
			continue
		}
		validatorSuccessors = append(validatorSuccessors, int(idx))
	}

	innerSuccessors := make([]int, 0, len(qs.InnerSets))
	for _, inner := range qs.InnerSets {
		idx, err := f.process(inner, depth+1, known, interned, logger)
		if err != nil {
			return 0, err
		}
		innerSuccessors = append(innerSuccessors, int(idx))
	}

	dedupInts(&validatorSuccessors)
	dedupInts(&innerSuccessors)

	key := internKey(qs.Threshold, validatorSuccessors, innerSuccessors)
	if idx, ok := interned[key]; ok {
		return idx, nil
	}

	successors := make([]NodeIndex, 0, len(validatorSuccessors)+len(innerSuccessors))
	for _, i := range validatorSuccessors {
		successors = append(successors, NodeIndex(i))
	}
	for _, i := range innerSuccessors {
		successors = append(successors, NodeIndex(i))
	}

	idx := NodeIndex(len(f.vertices))
	f.vertices = append(f.vertices, Vertex{
		kind:       kindQSet,
		threshold:  qs.Threshold,
		successors: successors,
	})
	interned[key] = idx
	return idx, nil
}

// internKey produces the canonical interning key for a Qset vertex: its
// threshold plus the sorted, deduplicated sets of successor validator and
// successor quorum-set indices. Two syntactically distinct quorum-set
// trees that normalize to the same key share one vertex.
func internKey(threshold uint32, validators, innerSets []int) string {
	sorted := append([]int(nil), validators...)
	sort.Ints(sorted)
	sortedQ := append([]int(nil), innerSets...)
	sort.Ints(sortedQ)

	var b []byte
	b = append(b, fmt.Sprintf("t%d|v", threshold)...)
	for _, v := range sorted {
		b = append(b, fmt.Sprintf(",%d", v)...)
	}
	b = append(b, "|q"...)
	for _, q := range sortedQ {
		b = append(b, fmt.Sprintf(",%d", q)...)
	}
	return string(b)
}

// dedupInts removes duplicate successor indices and fixes their order,
// so two structurally identical quorum sets intern to the same key
// regardless of how their members were originally listed. set.Set's
// iteration order is unspecified, so the dedup pass through it is always
// followed by an explicit sort.
func dedupInts(s *[]int) {
	if len(*s) < 2 {
		return
	}
	deduped := set.Of(*s...).List()
	sort.Ints(deduped)
	*s = deduped
}
