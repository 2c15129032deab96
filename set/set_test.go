// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package set

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	s := Of[int]()
	require.Equal(t, 0, s.Len())

	s = Of(1, 2, 2, 3)
	require.Equal(t, 3, s.Len())
	require.True(t, s.Contains(2))
	require.False(t, s.Contains(4))
}

func TestAdd(t *testing.T) {
	s := Set[string]{}
	s.Add("a", "b", "a")
	require.Equal(t, 2, s.Len())
	require.True(t, s.Contains("a"))
	require.True(t, s.Contains("b"))
}

func TestList(t *testing.T) {
	s := Of(1, 2, 3)
	got := s.List()
	require.ElementsMatch(t, []int{1, 2, 3}, got)
}
