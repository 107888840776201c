// This file declares Host, ArrayHost, Label, Options,
// and the ErrDimension sentinel.
package align

import (
	"errors"
	"math"
	"sync"

	"github.com/katalvlaran/eventidx/event"
	"github.com/katalvlaran/eventidx/index"
)

// ErrDimension indicates the target dimension is absent from the host.
var ErrDimension = errors.New("align: host dimension not found")

// Host is the black-box side of the host array library: it owns the
// coordinate arrays of named dimensions. Implementations must return
// coordinate slices that the aligner may read but never needs to own;
// the aligner treats them as read-only.
type Host interface {
	// HasDim reports whether the named dimension exists.
	HasDim(dim string) bool

	// Coords returns the coordinate sequence of the named dimension.
	Coords(dim string) []float64
}

// ArrayHost is a minimal in-memory Host for tests, examples, and hosts
// without a native adapter. Safe for concurrent use.
type ArrayHost struct {
	mu   sync.RWMutex
	dims map[string][]float64
}

// NewArrayHost returns an empty ArrayHost.
func NewArrayHost() *ArrayHost {
	return &ArrayHost{dims: make(map[string][]float64)}
}

// SetCoords installs (or replaces) the coordinate sequence of dim.
// The slice is copied; the caller keeps ownership of its argument.
func (h *ArrayHost) SetCoords(dim string, coords []float64) {
	cp := make([]float64, len(coords))
	copy(cp, coords)

	h.mu.Lock()
	h.dims[dim] = cp
	h.mu.Unlock()
}

// HasDim reports whether the named dimension exists.
func (h *ArrayHost) HasDim(dim string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.dims[dim]

	return ok
}

// Coords returns the coordinate sequence of the named dimension.
func (h *ArrayHost) Coords(dim string) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.dims[dim]
}

// Label is one entry of a derived coordinate: the alignment outcome for a
// single host position. Matched == false is the explicit no-match
// sentinel; Attrs and Anchor are meaningful only when Matched is true.
type Label struct {
	// Coord is the host coordinate this label was resolved for.
	Coord float64

	// Matched reports whether any event resolved at this position.
	Matched bool

	// Anchor is the matched record's anchor (zero when unmatched).
	Anchor event.Anchor

	// Attrs is the matched record's attribute map. Treat as read-only.
	Attrs map[string]any
}

// Options contains tunable parameters for alignment.
type Options struct {
	// Policy is the resolution policy applied per host position.
	// Multi-record results (AllOverlapping) keep the first in index order.
	Policy index.Policy

	// MaxDistance caps the anchor distance accepted under Nearest;
	// farther matches become NoMatch. +Inf (no cap) by default.
	MaxDistance float64
}

// DefaultOptions returns Options with default settings:
// Policy=Nearest, MaxDistance=+Inf.
func DefaultOptions() Options {
	return Options{
		Policy:      index.Nearest,
		MaxDistance: math.Inf(1),
	}
}
