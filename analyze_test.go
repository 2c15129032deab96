// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fbas

import (
	"errors"
	"testing"

	"github.com/luxfi/fbas/qset"
	"github.com/luxfi/fbas/sat"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeJSONRegularDialectSat(t *testing.T) {
	doc := `{
		"nodes": [
			{"node": "v1", "qset": {"t": 1, "v": ["v1"]}},
			{"node": "v2", "qset": {"t": 1, "v": ["v2"]}}
		]
	}`

	a, err := AnalyzeJSON([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, sat.StatusSat, a.Solve())
}

func TestAnalyzeJSONRegularDialectUnsat(t *testing.T) {
	doc := `{
		"nodes": [
			{"node": "v1", "qset": {"t": 3, "v": ["v1", "v2", "v3"]}},
			{"node": "v2", "qset": {"t": 3, "v": ["v1", "v2", "v3"]}},
			{"node": "v3", "qset": {"t": 3, "v": ["v1", "v2", "v3"]}}
		]
	}`

	a, err := AnalyzeJSON([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, sat.StatusUnsat, a.Solve())
}

func TestAnalyzeRejectsExcessiveDepthViaOption(t *testing.T) {
	// v1's qset nests one inner set deep; a max depth of 1 rejects it.
	m := qset.Map{
		"v1": qset.New(1, nil, []qset.QuorumSet{
			qset.New(1, []qset.ID{"v1"}, nil),
		}),
	}

	_, err := Analyze(m, WithMaxDepth(1))
	require.True(t, errors.Is(err, ErrQuorumSetTooDeep))
}
