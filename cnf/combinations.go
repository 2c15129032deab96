// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cnf

import "github.com/luxfi/fbas/graph"

// forEachCombination calls visit once for every size-k subset of items, in
// lexicographic index order, reusing buf as scratch space across calls
// (visit must not retain buf past its call). It streams rather than
// materializing all C(len(items), k) subsets at once: for a vertex with a
// wide quorum set this is the dominant cost, so the combinations are
// generated one at a time with an index cursor rather than built into a
// slice-of-slices up front.
//
// If k is 0, visit is called exactly once with an empty slice. If k is
// negative or greater than len(items), visit is never called.
func forEachCombination(items []graph.NodeIndex, k int, buf []graph.NodeIndex, visit func([]graph.NodeIndex)) {
	n := len(items)
	if k < 0 || k > n {
		return
	}
	if k == 0 {
		visit(buf[:0])
		return
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		for i, j := range idx {
			buf[i] = items[j]
		}
		visit(buf[:k])

		// Advance idx to the next lexicographic combination.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
