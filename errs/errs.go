// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package errs holds the sentinel errors shared by every package in this
// module. It exists as its own leaf package (rather than living on the
// root fbas package, which would be the more natural home) so that qset,
// graph, cnf, and adapter can return these errors without importing the
// root package that in turn imports all of them.
package errs

import "errors"

var (
	// ErrQuorumSetTooDeep is returned when a declared quorum-set nests
	// inner sets beyond the configured maximum depth.
	ErrQuorumSetTooDeep = errors.New("fbas: quorum set exceeds max nesting depth")

	// ErrDuplicateValidator is returned when a QuorumSetMap is built from
	// an input source (JSON, XDR buffers) that declares the same
	// top-level validator twice.
	ErrDuplicateValidator = errors.New("fbas: duplicate validator declaration")

	// ErrMalformedInput is returned by a front-end adapter when its input
	// does not parse into a QuorumSetMap.
	ErrMalformedInput = errors.New("fbas: malformed input")

	// ErrXDRDecode is returned when an XDR-encoded NodeId or
	// ScpQuorumSet record fails to decode.
	ErrXDRDecode = errors.New("fbas: xdr decode error")

	// ErrInternal is returned only on a graph inconsistency (a node index
	// with no backing vertex). It never signals a rejection of legal
	// input.
	ErrInternal = errors.New("fbas: internal error")
)
