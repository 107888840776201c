// Package index builds queryable coordinate indexes over event tables and
// resolves point and range queries against them under configurable
// resolution policies.
//
// 🚀 What is a coordinate index?
//
//	A copy-on-write snapshot of an event.Table, sorted by anchor start
//	(ties kept in insertion order) and augmented with a subtree max-end,
//	forming an implicit interval tree over the sorted array. Point and
//	range queries prune whole subtrees whose max end falls below the
//	query, giving O(log n + k) lookups instead of full scans.
//
// ✨ Resolution policies:
//   - Exact          — records whose anchor start equals the query scalar
//   - Nearest        — the single record with minimal |start − q|,
//     equal distances broken by earliest insertion
//   - AllOverlapping — every record whose anchor intersects the query
//     (half-open; touching endpoints do not overlap)
//   - First / Last   — of the overlapping records, only the one with the
//     smallest / largest anchor start
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/eventidx/index"
//
//	idx := index.Build(tbl)
//	recs, err := idx.Resolve(index.At(4.0), index.Nearest)
//	recs, err = idx.Resolve(index.Between(1.0, 3.0), index.AllOverlapping)
//
// An index over zero records is valid: every query resolves to an empty
// result. Indexes are immutable; when the source table changes, build a
// new index rather than mutating the old one.
//
// Performance:
//
//   - Build:   O(n log n)
//   - Resolve: O(log n + k) for k matches
//
// See example_test.go and bench_test.go for walkthroughs and numbers.
package index
