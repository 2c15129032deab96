// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package adapter

import "github.com/luxfi/fbas/qset"

// QuorumSetMapFromJSON parses data (in either supported JSON dialect, see
// FromJSON) into a qset.Map, detecting duplicate top-level validator
// declarations along the way.
func QuorumSetMapFromJSON(data []byte) (qset.Map, error) {
	entries, err := FromJSON(data)
	if err != nil {
		return nil, err
	}

	out := make([]qset.Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, qset.Entry{ID: qset.ID(e.ID), QuorumSet: rawToQuorumSet(e.raw)})
	}
	return qset.NewMap(out)
}

func rawToQuorumSet(r rawQuorumSet) qset.QuorumSet {
	validators := make([]qset.ID, 0, len(r.validators))
	for _, v := range r.validators {
		validators = append(validators, qset.ID(v))
	}
	inner := make([]qset.QuorumSet, 0, len(r.innerSets))
	for _, is := range r.innerSets {
		inner = append(inner, rawToQuorumSet(is))
	}
	return qset.New(r.threshold, validators, inner)
}
