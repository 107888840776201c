package index

import (
	"math"
	"sort"

	"github.com/katalvlaran/eventidx/event"
)

// Resolve answers a point or range query under the given policy.
//
// Result sets are in index order: ascending anchor start, ties in original
// insertion order. Records already stored in the index are returned as-is;
// Resolve never fabricates or mutates records.
//
// Policy/query compatibility:
//   - Exact and Nearest accept scalar queries only (ErrPolicyQuery for
//     intervals).
//   - AllOverlapping, First and Last accept both; a scalar query acts as
//     the degenerate point interval.
//
// Complexity: O(log n + k) where k is the number of candidate matches.
func (ix *Index) Resolve(q Query, policy Policy) ([]event.Record, error) {
	if err := validate(q); err != nil {
		return nil, err
	}

	switch policy {
	case Exact:
		if !q.point {
			return nil, ErrPolicyQuery
		}

		return ix.exact(q.start), nil
	case Nearest:
		if !q.point {
			return nil, ErrPolicyQuery
		}

		return ix.nearest(q.start), nil
	case AllOverlapping:
		return ix.overlapping(q), nil
	case First:
		res := ix.overlapping(q)
		if len(res) == 0 {
			return nil, nil
		}

		return res[:1], nil
	case Last:
		res := ix.overlapping(q)
		if len(res) == 0 {
			return nil, nil
		}

		return res[len(res)-1:], nil
	default:
		return nil, ErrUnknownPolicy
	}
}

// validate rejects NaN coordinates and inverted intervals.
func validate(q Query) error {
	if math.IsNaN(q.start) || math.IsNaN(q.end) {
		return ErrBadQuery
	}
	if !q.point && q.start > q.end {
		return ErrBadQuery
	}

	return nil
}

// exact returns the records whose anchor start equals v, in insertion order.
func (ix *Index) exact(v float64) []event.Record {
	i := sort.Search(len(ix.records), func(i int) bool {
		return ix.records[i].Anchor.Start >= v
	})
	var out []event.Record
	for ; i < len(ix.records) && ix.records[i].Anchor.Start == v; i++ {
		out = append(out, ix.records[i])
	}

	return out
}

// nearest returns the single record whose anchor start is closest to v,
// equal distances broken by earliest insertion order. Empty index yields
// an empty result.
func (ix *Index) nearest(v float64) []event.Record {
	n := len(ix.records)
	if n == 0 {
		return nil
	}

	// i is the first start >= v; the nearest start is either the run
	// ending just before i or the run beginning at i.
	i := sort.Search(n, func(i int) bool {
		return ix.records[i].Anchor.Start >= v
	})

	var lo, hi *event.Record
	if i > 0 {
		lo = ix.runHead(ix.records[i-1].Anchor.Start)
	}
	if i < n {
		hi = &ix.records[i]
	}

	switch {
	case lo == nil:
		return []event.Record{*hi}
	case hi == nil:
		return []event.Record{*lo}
	}

	dLo, dHi := v-lo.Anchor.Start, hi.Anchor.Start-v
	switch {
	case dLo < dHi:
		return []event.Record{*lo}
	case dHi < dLo:
		return []event.Record{*hi}
	case lo.Seq <= hi.Seq: // equal distance: earliest insertion wins
		return []event.Record{*lo}
	default:
		return []event.Record{*hi}
	}
}

// runHead returns the earliest-inserted record among those starting at s.
// Equal starts are stored in Seq order, so it is the first of the run.
func (ix *Index) runHead(s float64) *event.Record {
	j := sort.Search(len(ix.records), func(i int) bool {
		return ix.records[i].Anchor.Start >= s
	})

	return &ix.records[j]
}

// overlapping collects every record intersecting the query, in index
// order, by in-order descent over the implicit interval tree. Subtrees
// whose maximum end lies strictly below the query start cannot intersect
// it and are pruned; right descents stop at the first inadmissible start.
func (ix *Index) overlapping(q Query) []event.Record {
	// an empty half-open interval [v, v) intersects nothing; only At(v)
	// carries point semantics
	if !q.point && q.start == q.end {
		return nil
	}

	var out []event.Record
	ix.collect(0, len(ix.records), q, q.anchor(), &out)

	return out
}

// collect walks the implicit-BST node range [lo, hi) in-order.
func (ix *Index) collect(lo, hi int, q Query, qa event.Anchor, out *[]event.Record) {
	if lo >= hi {
		return
	}
	mid := subtreeRoot(lo, hi)
	if lo < mid && ix.maxEnd[subtreeRoot(lo, mid)] >= q.start {
		ix.collect(lo, mid, q, qa, out)
	}
	r := ix.records[mid]
	if r.Anchor.Overlaps(qa) {
		*out = append(*out, r)
	}
	if q.admitsStart(r.Anchor.Start) {
		ix.collect(mid+1, hi, q, qa, out)
	}
}
