// Package align projects resolved events onto a host array's coordinate
// positions as a derived label, with an explicit, invalidatable cache.
//
// 🚀 What is alignment?
//
//	The host array library owns the coordinate system; events live in a
//	coordinate index. Alignment walks the host coordinates of one target
//	dimension and resolves each position against the index, producing one
//	Label per position: either a matched record's attributes or the
//	explicit NoMatch sentinel (Label.Matched == false).
//
// ✨ Key features:
//   - per-position resolution under any index policy (Nearest by default,
//     with an optional MaxDistance tolerance)
//   - an explicit cache owned by the Aligner instance — never a module
//     global — recomputed lazily after any invalidation
//   - SetIndex / SetHost / Invalidate hooks so stale alignments are never
//     served after the index or the host coordinates change
//   - an RWMutex around the cache: concurrent readers share it, a rebuild
//     excludes them (single-writer invalidation per the core model)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/eventidx/align"
//
//	host := align.NewArrayHost()
//	host.SetCoords("time", []float64{0, 1, 2, 3, 4})
//
//	a := align.New(host, idx, nil)
//	labels, err := a.Labels("time")
//
//	// the source table changed: rebuild and swap the index
//	a.SetIndex(index.Build(tbl2))
//	labels, err = a.Labels("time") // fresh, never stale
//
// The cache lifecycle is Unbuilt → Built → Invalidated → Built: the
// transition back to Built happens lazily on the next Labels call, not
// eagerly at invalidation time.
//
// Complexity: O(m·(log n + k)) per rebuild for m host positions.
package align
