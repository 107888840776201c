// Package merge combines multiple event tables anchored to the same
// dimension into one table, resolving cross-source anchor collisions
// deterministically.
//
// 🚀 What counts as a collision?
//
//	Two records from *different* source tables whose anchors are exactly
//	equal (both endpoints for intervals, the coordinate for scalars).
//	Duplicate anchors inside a single source are not collisions — they
//	are legitimate repeated events and are always preserved.
//
// ✨ Collision policies:
//   - KeepAll     — keep every record from every source (default);
//     downstream resolution policies handle multiplicity
//   - PreferFirst — on collision, keep only the earliest source's records
//   - PreferLast  — on collision, keep only the latest source's records
//   - Fail        — return a *CollisionError listing every colliding
//     anchor; no partially-merged table is ever observable
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/eventidx/merge"
//
//	opts := merge.DefaultOptions()
//	opts.Policy = merge.Fail
//	tbl, err := merge.Merge([]*event.Table{a, b}, &opts)
//
// The merged table is rebuilt from scratch: records are re-sequenced
// source by source in input order, so rebuilding an index over it is
// deterministic. Unanchored buckets and skip counts are loader-side
// diagnostics and are not carried across a merge.
//
// Complexity: O(n) over the total record count (plus the map of anchors).
package merge
