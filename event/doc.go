// Package event defines the core Anchor, Record, Table, and Schema types,
// and provides the normalizer that turns raw tabular rows into immutable
// event tables ready for indexing.
//
// 🚀 What is an event table?
//
//	A sequence of records, each pinned to a position along one array
//	dimension (commonly time) by an anchor:
//	  • a scalar coordinate — the degenerate interval [v, v], or
//	  • a half-open interval [start, end), start ≤ end.
//	Everything else on the row is carried as opaque attributes.
//
// ✨ Key features:
//   - explicit Schema descriptor: anchor column(s) + attribute columns are
//     declared up front, never inferred per access
//   - lenient normalization by default: bad rows are skipped and counted;
//     Strict mode escalates the first bad row to a whole-table failure
//   - null/NaN anchors are dropped, or parked in an unanchored bucket with
//     KeepUnanchored — the bucket is never visible to coordinate queries
//   - attribute filtering by value set, predicate, or scalar equality
//   - YAML schema descriptors for loader-side configuration
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/eventidx/event"
//
//	schema := event.Schema{
//	  Dimension:  "time",
//	  Anchor:     "start",
//	  End:        "stop",
//	  Attributes: []string{"kind", "label"},
//	}
//	opts := event.DefaultOptions()
//	tbl, err := event.Normalize(rows, schema, &opts)
//
// Tables are read-only after normalization; downstream indexes are built
// over them copy-on-write and never mutate them.
//
// See example_test.go for end-to-end walkthroughs.
package event
