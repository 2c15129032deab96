// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package adapter

import (
	"bytes"
	"errors"
	"io"

	"github.com/luxfi/fbas/errs"
)

// errXDRDecode and errMalformedJSON alias the shared sentinels so callers
// can errors.Is against fbas.ErrXDRDecode / fbas.ErrMalformedInput (the
// root package re-exports the same vars from errs).
var (
	errXDRDecode     = errs.ErrXDRDecode
	errMalformedJSON = errs.ErrMalformedInput
)

// errMismatchedLengths is returned when FromQuorumSetMapBuf is given
// node and quorum-set buffer slices of different lengths. It has no
// useful root-package analogue, since it signals a caller bug (mismatched
// iterator lengths) rather than malformed wire data.
var errMismatchedLengths = errors.New("adapter: mismatched node/quorum-set buffer counts")

func newReader(b []byte) io.Reader {
	return bytes.NewReader(b)
}
