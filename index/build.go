package index

import (
	"sort"

	"github.com/katalvlaran/eventidx/event"
)

// Build constructs a coordinate index over the table's anchored records.
//
// Algorithm:
//  1. Snapshot the records (copy-on-write: the table is never touched).
//  2. Sort by anchor start; equal starts stay in insertion (Seq) order.
//  3. Augment the sorted array as an implicit balanced BST (midpoint
//     recursion), storing for every node the maximum anchor end in its
//     subtree. Overlap queries prune any subtree whose max end lies
//     entirely below the query.
//
// Duplicate anchors are preserved as distinct entries; deduplication
// across sources belongs to the merge package, not here. An empty table
// yields a valid index whose queries all return empty results.
//
// Complexity: O(n log n) time, O(n) extra memory.
func Build(t *event.Table) *Index {
	recs := t.Records()
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Anchor.Start != recs[j].Anchor.Start {
			return recs[i].Anchor.Start < recs[j].Anchor.Start
		}

		return recs[i].Seq < recs[j].Seq
	})

	ix := &Index{
		records: recs,
		maxEnd:  make([]float64, len(recs)),
	}
	ix.augment(0, len(recs))

	return ix
}

// augment fills maxEnd over the half-open node range [lo, hi) and returns
// nothing; the subtree root is the midpoint, matching the descent used by
// the overlap query.
func (ix *Index) augment(lo, hi int) {
	if lo >= hi {
		return
	}
	mid := lo + (hi-lo)/2
	m := ix.records[mid].Anchor.End
	ix.augment(lo, mid)
	ix.augment(mid+1, hi)
	if lo < mid && ix.maxEnd[subtreeRoot(lo, mid)] > m {
		m = ix.maxEnd[subtreeRoot(lo, mid)]
	}
	if mid+1 < hi && ix.maxEnd[subtreeRoot(mid+1, hi)] > m {
		m = ix.maxEnd[subtreeRoot(mid+1, hi)]
	}
	ix.maxEnd[mid] = m
}

// subtreeRoot returns the implicit-BST root of the node range [lo, hi).
func subtreeRoot(lo, hi int) int {
	return lo + (hi-lo)/2
}
