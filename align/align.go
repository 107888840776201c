package align

import (
	"math"
	"sync"

	"github.com/katalvlaran/eventidx/index"
)

// Aligner derives per-position labels for host dimensions from a
// coordinate index and caches them until explicitly invalidated.
//
// The cache is owned by the instance — there is no package-level state —
// and is guarded by an RWMutex: any number of readers may serve cached
// labels concurrently while a swap of the index or host excludes them.
// Recomputation is lazy: invalidation only marks the cache stale; the
// next Labels call rebuilds it.
type Aligner struct {
	mu    sync.RWMutex
	host  Host
	idx   *index.Index
	opts  Options
	cache map[string][]Label // dim → derived labels, nil entries never stored
}

// New returns an Aligner over host and idx. A nil opts selects
// DefaultOptions; a nil idx resolves every position to NoMatch until
// SetIndex installs one.
func New(host Host, idx *index.Index, opts *Options) *Aligner {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	return &Aligner{
		host:  host,
		idx:   idx,
		opts:  o,
		cache: make(map[string][]Label),
	}
}

// Labels returns one Label per host position along dim, computing and
// caching the alignment on first access after any invalidation.
// Returns ErrDimension when the host lacks dim. The returned slice is a
// copy; callers may keep it across later invalidations.
func (a *Aligner) Labels(dim string) ([]Label, error) {
	a.mu.RLock()
	if cached, ok := a.cache[dim]; ok {
		out := make([]Label, len(cached))
		copy(out, cached)
		a.mu.RUnlock()

		return out, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// another writer may have rebuilt while we upgraded the lock
	if cached, ok := a.cache[dim]; ok {
		out := make([]Label, len(cached))
		copy(out, cached)

		return out, nil
	}

	labels, err := a.compute(dim)
	if err != nil {
		return nil, err
	}
	a.cache[dim] = labels

	out := make([]Label, len(labels))
	copy(out, labels)

	return out, nil
}

// SetIndex swaps the coordinate index and invalidates every cached
// alignment. Use after rebuilding the index from a changed table set.
func (a *Aligner) SetIndex(idx *index.Index) {
	a.mu.Lock()
	a.idx = idx
	a.cache = make(map[string][]Label)
	a.mu.Unlock()
}

// SetHost swaps the host and invalidates every cached alignment.
func (a *Aligner) SetHost(host Host) {
	a.mu.Lock()
	a.host = host
	a.cache = make(map[string][]Label)
	a.mu.Unlock()
}

// Invalidate drops every cached alignment without swapping anything.
// Call it when host coordinates were mutated in place.
func (a *Aligner) Invalidate() {
	a.mu.Lock()
	a.cache = make(map[string][]Label)
	a.mu.Unlock()
}

// compute builds the label sequence for dim. Caller holds the write lock.
func (a *Aligner) compute(dim string) ([]Label, error) {
	if a.host == nil || !a.host.HasDim(dim) {
		return nil, ErrDimension
	}

	coords := a.host.Coords(dim)
	labels := make([]Label, len(coords))
	for i, c := range coords {
		labels[i] = Label{Coord: c}
		if a.idx == nil {
			continue
		}

		recs, err := a.idx.Resolve(index.At(c), a.opts.Policy)
		if err != nil {
			return nil, err
		}
		if len(recs) == 0 {
			continue
		}

		rec := recs[0]
		if a.opts.Policy == index.Nearest &&
			math.Abs(rec.Anchor.Start-c) > a.opts.MaxDistance {
			continue
		}
		labels[i].Matched = true
		labels[i].Anchor = rec.Anchor
		labels[i].Attrs = rec.Attrs
	}

	return labels, nil
}
