// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package adapter

import (
	"encoding/json"
	"fmt"
)

// FromJSON parses data as either of the two supported JSON dialects and
// returns the decoded entries in document order. Duplicate-key detection
// is left to qset.NewMap, which the caller invokes on the result.
//
// A document whose root is a JSON object is parsed as the regular
// dialect: {"nodes":[{"node":"<id>","qset":{"t":N,"v":[...]}}, ...]},
// where each element of "v" is either a validator ID string or a nested
// qset object. A document whose root is a JSON array is parsed as the
// Stellarbeat.io crawl export:
// [{"publicKey":"<id>","quorumSet":{"threshold":N,"validators":[...],
// "innerQuorumSets":[...]}}, ...].
func FromJSON(data []byte) ([]jsonEntry, error) {
	var probe json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedJSON, err)
	}

	trimmed := firstNonSpace(probe)
	switch trimmed {
	case '{':
		return parseRegular(data)
	case '[':
		return parseStellarbeat(data)
	default:
		return nil, fmt.Errorf("%w: root is neither an object nor an array", errMalformedJSON)
	}
}

func firstNonSpace(b []byte) byte {
	for _, c := range b {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return c
		}
	}
	return 0
}

// jsonEntry is one decoded (validator ID, quorum-set) pair, kept separate
// from qset.Entry so this file's decoding logic stays free of a direct
// dependency on qset's field names; QuorumSetMapFromJSON performs the
// translation.
type jsonEntry struct {
	ID  string
	raw rawQuorumSet
}

// rawQuorumSet is the dialect-agnostic decoded shape of one quorum set:
// a threshold plus flat validator ID strings plus nested quorum sets.
// Both dialects normalize into this shape even though the regular
// dialect interleaves validators and inner sets in a single "v" array
// while Stellarbeat keeps them in separate "validators"/"innerQuorumSets"
// arrays.
type rawQuorumSet struct {
	threshold  uint32
	validators []string
	innerSets  []rawQuorumSet
}

// --- regular dialect ---

type regularRoot struct {
	Nodes []regularNode `json:"nodes"`
}

type regularNode struct {
	Node string          `json:"node"`
	Qset json.RawMessage `json:"qset"`
}

type regularQset struct {
	T uint32            `json:"t"`
	V []json.RawMessage `json:"v"`
}

func parseRegular(data []byte) ([]jsonEntry, error) {
	var root regularRoot
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedJSON, err)
	}
	if root.Nodes == nil {
		return nil, fmt.Errorf("%w: nodes field missing or not an array", errMalformedJSON)
	}

	entries := make([]jsonEntry, 0, len(root.Nodes))
	for _, n := range root.Nodes {
		if n.Node == "" {
			return nil, fmt.Errorf("%w: node field missing or not a string", errMalformedJSON)
		}
		raw, err := parseRegularQset(n.Qset)
		if err != nil {
			return nil, err
		}
		entries = append(entries, jsonEntry{ID: n.Node, raw: raw})
	}
	return entries, nil
}

// parseRegularQset decodes one "qset" value. Each element of its "v"
// array is either a validator ID (a JSON string) or a nested quorum set
// (a JSON object carrying its own "t" field); the two are distinguished
// by trying a string decode first.
func parseRegularQset(data json.RawMessage) (rawQuorumSet, error) {
	var q regularQset
	if err := json.Unmarshal(data, &q); err != nil {
		return rawQuorumSet{}, fmt.Errorf("%w: %v", errMalformedJSON, err)
	}

	out := rawQuorumSet{threshold: q.T}
	for _, item := range q.V {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out.validators = append(out.validators, s)
			continue
		}
		inner, err := parseRegularQset(item)
		if err != nil {
			return rawQuorumSet{}, fmt.Errorf("%w: v entry is neither a validator string nor a quorum set object", errMalformedJSON)
		}
		out.innerSets = append(out.innerSets, inner)
	}
	return out, nil
}

// --- Stellarbeat.io dialect ---

type stellarbeatNode struct {
	PublicKey string          `json:"publicKey"`
	QuorumSet stellarbeatQset `json:"quorumSet"`
}

type stellarbeatQset struct {
	Threshold       uint32            `json:"threshold"`
	Validators      []string          `json:"validators"`
	InnerQuorumSets []stellarbeatQset `json:"innerQuorumSets"`
}

func parseStellarbeat(data []byte) ([]jsonEntry, error) {
	var nodes []stellarbeatNode
	if err := json.Unmarshal(data, &nodes); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedJSON, err)
	}

	entries := make([]jsonEntry, 0, len(nodes))
	for _, n := range nodes {
		if n.PublicKey == "" {
			return nil, fmt.Errorf("%w: publicKey field missing or not a string", errMalformedJSON)
		}
		entries = append(entries, jsonEntry{ID: n.PublicKey, raw: stellarbeatToRaw(n.QuorumSet)})
	}
	return entries, nil
}

func stellarbeatToRaw(q stellarbeatQset) rawQuorumSet {
	inner := make([]rawQuorumSet, 0, len(q.InnerQuorumSets))
	for _, is := range q.InnerQuorumSets {
		inner = append(inner, stellarbeatToRaw(is))
	}
	return rawQuorumSet{
		threshold:  q.Threshold,
		validators: q.Validators,
		innerSets:  inner,
	}
}
