// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package adapter builds a qset.Map from the two wire formats a
// real Stellar network deployment actually produces: paired XDR-encoded
// NodeId/ScpQuorumSet buffers (as archived by Horizon or read from a
// validator's own config), and the two JSON dialects used by
// quorum-monitoring tooling (fbas-analyzer's own format, and
// stellarbeat.io's crawl export).
package adapter

import (
	"fmt"

	"github.com/luxfi/fbas/qset"
	"github.com/luxfi/log"
	"github.com/stellar/go/strkey"
	"github.com/stellar/go/xdr"
)

// FromQuorumSetMapBuf decodes paired XDR buffers into a qset.Map: nodes[i]
// is a NodeId and qsets[i] is either that node's ScpQuorumSet, or an empty
// slice if the node's quorum set is unknown (e.g. it was never observed
// nominating). Unknown nodes are reported through logger and silently
// excluded from the result rather than treated as an error, mirroring the
// "unknown validator" handling in graph.Build. len(nodes) must equal
// len(qsets).
func FromQuorumSetMapBuf(nodes, qsets [][]byte, logger log.Logger) (qset.Map, error) {
	if len(nodes) != len(qsets) {
		return nil, fmt.Errorf("%w: %d node buffers but %d quorum-set buffers", errMismatchedLengths, len(nodes), len(qsets))
	}
	if logger == nil {
		logger = log.NoLog{}
	}

	entries := make([]qset.Entry, 0, len(nodes))
	for i, nodeBuf := range nodes {
		var nodeID xdr.NodeId
		if _, err := xdr.Unmarshal(newReader(nodeBuf), &nodeID); err != nil {
			return nil, fmt.Errorf("%w: decoding node %d: %v", errXDRDecode, i, err)
		}
		pk, err := nodeIDToStrkey(nodeID)
		if err != nil {
			return nil, fmt.Errorf("%w: node %d: %v", errXDRDecode, i, err)
		}

		qsetBuf := qsets[i]
		if len(qsetBuf) == 0 {
			logger.Warn("validator has unknown quorum set, skipping", "validator", pk)
			continue
		}

		var wire xdr.ScpQuorumSet
		if _, err := xdr.Unmarshal(newReader(qsetBuf), &wire); err != nil {
			return nil, fmt.Errorf("%w: decoding quorum set for %s: %v", errXDRDecode, pk, err)
		}
		qs, err := qsetFromXDR(wire)
		if err != nil {
			return nil, err
		}
		entries = append(entries, qset.Entry{ID: qset.ID(pk), QuorumSet: qs})
	}

	return qset.NewMap(entries)
}

// qsetFromXDR recursively translates an xdr.ScpQuorumSet (validators named
// by xdr.NodeId) into a qset.QuorumSet (validators named by strkey
// string), the same flattening the original's `impl From<ScpQuorumSet>`
// performs.
func qsetFromXDR(wire xdr.ScpQuorumSet) (qset.QuorumSet, error) {
	validators := make([]qset.ID, 0, len(wire.Validators))
	for _, v := range wire.Validators {
		pk, err := nodeIDToStrkey(v)
		if err != nil {
			return qset.QuorumSet{}, fmt.Errorf("%w: %v", errXDRDecode, err)
		}
		validators = append(validators, qset.ID(pk))
	}

	inner := make([]qset.QuorumSet, 0, len(wire.InnerSets))
	for _, is := range wire.InnerSets {
		child, err := qsetFromXDR(is)
		if err != nil {
			return qset.QuorumSet{}, err
		}
		inner = append(inner, child)
	}

	return qset.New(uint32(wire.Threshold), validators, inner), nil
}

// nodeIDToStrkey renders an ed25519 NodeId in Stellar's "G..." strkey
// public-key encoding, the form a qset.ID is compared and displayed as
// everywhere else in this module. NodeId is a typedef of PublicKey, so
// the union accessor lives on the PublicKey conversion, not NodeId
// itself.
func nodeIDToStrkey(n xdr.NodeId) (string, error) {
	pk := xdr.PublicKey(n)
	key, ok := pk.GetEd25519()
	if !ok {
		return "", fmt.Errorf("unsupported public key type %v", pk.Type)
	}
	return strkey.Encode(strkey.VersionByteAccountID, key[:])
}
