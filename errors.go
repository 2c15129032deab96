// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fbas

import "github.com/luxfi/fbas/errs"

// These re-export the sentinel errors every subpackage returns, so
// callers of this package's top-level Analyze/AnalyzeJSON/AnalyzeXDR
// functions can compare with errors.Is against fbas.ErrX without also
// importing github.com/luxfi/fbas/errs directly.
var (
	ErrQuorumSetTooDeep   = errs.ErrQuorumSetTooDeep
	ErrDuplicateValidator = errs.ErrDuplicateValidator
	ErrMalformedInput     = errs.ErrMalformedInput
	ErrXDRDecode          = errs.ErrXDRDecode
	ErrInternal           = errs.ErrInternal
)
