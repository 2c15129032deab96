// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package alloc is a blunt safety net against CNF explosion on
// pathological FBAS inputs: a process-wide cap on the number of
// vertices and clauses this module will build before giving up.
//
// The original Rust implementation installed a global #[global_allocator]
// wrapper that counted every byte the process allocated. Go has no
// equivalent hook — there is no way to intercept runtime.mallocgc from a
// library — so this is an adapted approximation, not a port: it is
// consulted only at the coarse points that actually drive CNF size (the
// vertex count of a built graph and the clause count of its encoding,
// both reserved by sat.NewFromFbas), not at every allocation. It is not precise byte accounting, exactly as spec §5
// describes the original as being.
package alloc

import (
	"errors"
	"sync/atomic"
)

// ErrLimitExceeded is returned by Guard.Reserve when admitting the
// requested count would exceed the guard's limit.
var ErrLimitExceeded = errors.New("alloc: allocation cap exceeded")

// DefaultLimit is the cap spec §5/§9 names: 1 GiB, translated here into
// an item count rather than a byte count (see package doc). One million
// combined vertices/clauses is a generous stand-in for
// "pathological" inputs well beyond any realistic FBAS deployment (spec
// §4.4: realistic deployments are hundreds of validators).
const DefaultLimit = 1 << 20

// Guard is a process-wide, atomic-counted budget. The zero value is not
// usable; construct with NewGuard. A nil *Guard is treated as
// unconstrained by Reserve and Release, so callers that want the cap
// disabled can simply pass a nil Guard through.
type Guard struct {
	limit uint64
	used  atomic.Uint64
}

// NewGuard returns a Guard that admits at most limit reservations over
// its lifetime (net of releases).
func NewGuard(limit uint64) *Guard {
	return &Guard{limit: limit}
}

// Default is the process-wide guard consulted by sat.NewFromFbas unless
// a caller supplies its own with sat.WithGuard. Initialized once at program start and
// never torn down, matching the original's static global-allocator
// lifecycle; this makes the module unsuitable for in-process composition
// with other large consumers of the same budget unless they share this
// Guard.
var Default = NewGuard(DefaultLimit)

// Reserve admits n units against the guard's budget, or returns
// ErrLimitExceeded without changing the counter if doing so would exceed
// the limit.
func (g *Guard) Reserve(n uint64) error {
	if g == nil {
		return nil
	}
	if g.used.Add(n) > g.limit {
		g.used.Add(^(n - 1)) // subtract n
		return ErrLimitExceeded
	}
	return nil
}

// Release returns n units to the guard's budget.
func (g *Guard) Release(n uint64) {
	if g == nil {
		return
	}
	g.used.Add(^(n - 1)) // subtract n
}

// Used returns the number of units currently reserved.
func (g *Guard) Used() uint64 {
	if g == nil {
		return 0
	}
	return g.used.Load()
}
