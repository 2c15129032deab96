// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package qset

import (
	"errors"
	"testing"

	"github.com/luxfi/fbas/errs"
	"github.com/stretchr/testify/require"
)

func TestQuorumSetValid(t *testing.T) {
	cases := []struct {
		name string
		qs   QuorumSet
		want bool
	}{
		{
			name: "threshold within membership",
			qs:   New(2, []ID{"a", "b", "c"}, nil),
			want: true,
		},
		{
			name: "threshold equals membership",
			qs:   New(3, []ID{"a", "b", "c"}, nil),
			want: true,
		},
		{
			name: "threshold exceeds membership",
			qs:   New(4, []ID{"a", "b", "c"}, nil),
			want: false,
		},
		{
			name: "zero threshold is invalid",
			qs:   New(0, []ID{"a"}, nil),
			want: false,
		},
		{
			name: "vacuous leaf",
			qs:   New(1, nil, nil),
			want: false,
		},
		{
			name: "threshold counts inner sets too",
			qs:   New(2, []ID{"a"}, []QuorumSet{New(1, []ID{"b"}, nil)}),
			want: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.qs.Valid())
		})
	}
}

func TestSuccessorCount(t *testing.T) {
	qs := New(2, []ID{"a", "b"}, []QuorumSet{New(1, []ID{"c"}, nil)})
	require.Equal(t, 3, qs.successorCount())
}

func TestNewMapRejectsDuplicateValidator(t *testing.T) {
	_, err := NewMap([]Entry{
		{ID: "v1", QuorumSet: New(1, []ID{"v2"}, nil)},
		{ID: "v2", QuorumSet: New(1, []ID{"v1"}, nil)},
		{ID: "v1", QuorumSet: New(1, []ID{"v2"}, nil)},
	})
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrDuplicateValidator))
}

func TestNewMapAcceptsUniqueEntries(t *testing.T) {
	m, err := NewMap([]Entry{
		{ID: "v1", QuorumSet: New(1, []ID{"v2"}, nil)},
		{ID: "v2", QuorumSet: New(1, []ID{"v1"}, nil)},
	})
	require.NoError(t, err)
	require.Len(t, m, 2)
}
