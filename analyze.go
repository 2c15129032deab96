// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fbas

import (
	"github.com/luxfi/fbas/adapter"
	"github.com/luxfi/fbas/graph"
	"github.com/luxfi/fbas/qset"
	"github.com/luxfi/fbas/sat"
	"github.com/luxfi/log"
)

// Option configures Analyze and the front-end constructors built on it.
// It composes graph.Option and sat.Option under one roof so a caller
// doesn't need to import either subpackage just to set a logger or a
// custom depth bound.
type Option func(*config)

type config struct {
	logger    log.Logger
	graphOpts []graph.Option
	satOpts   []sat.Option
}

// WithLogger directs every diagnostic this package emits (dropped
// unknown validators, CNF encoding stats) to l instead of discarding
// them.
func WithLogger(l log.Logger) Option {
	return func(c *config) {
		c.logger = l
		c.graphOpts = append(c.graphOpts, graph.WithLogger(l))
		c.satOpts = append(c.satOpts, sat.WithLogger(l))
	}
}

// WithMaxDepth overrides graph.DefaultMaxDepth for quorum-set nesting.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		c.graphOpts = append(c.graphOpts, graph.WithMaxDepth(depth))
	}
}

// Analyze builds the interned FBAS graph and CNF encoding for m and
// returns a ready-to-solve Analyzer. This is the single entry point
// every front-end constructor below funnels through, mirroring how the
// original's Fbas::from_quorum_set_map is the common tail of
// from_json, from_quorum_set_map_buf, and direct construction.
func Analyze(m qset.Map, opts ...Option) (*sat.Analyzer, error) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	f, err := graph.Build(m, c.graphOpts...)
	if err != nil {
		return nil, err
	}
	return sat.NewFromFbas(f, c.satOpts...)
}

// AnalyzeJSON parses data in either supported JSON dialect (see
// adapter.FromJSON) and analyzes the result.
func AnalyzeJSON(data []byte, opts ...Option) (*sat.Analyzer, error) {
	m, err := adapter.QuorumSetMapFromJSON(data)
	if err != nil {
		return nil, err
	}
	return Analyze(m, opts...)
}

// AnalyzeXDR decodes paired XDR-encoded NodeId/ScpQuorumSet buffers (see
// adapter.FromQuorumSetMapBuf) and analyzes the result.
func AnalyzeXDR(nodes, qsets [][]byte, opts ...Option) (*sat.Analyzer, error) {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = log.NoLog{}
	}

	m, err := adapter.FromQuorumSetMapBuf(nodes, qsets, c.logger)
	if err != nil {
		return nil, err
	}
	return Analyze(m, opts...)
}
