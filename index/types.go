// This file declares Policy, Query, the Index type,
// and sentinel errors for coordinate resolution.
//
// Errors:
//
//	ErrPolicyQuery   - query kind is invalid under the chosen policy
//	                   (e.g. an interval query under Exact or Nearest).
//	ErrBadQuery      - query coordinates are NaN or start > end.
//	ErrUnknownPolicy - policy value is out of range.
package index

import (
	"errors"

	"github.com/katalvlaran/eventidx/event"
)

// Sentinel errors for index queries.
var (
	// ErrPolicyQuery indicates a query kind that the chosen policy rejects.
	ErrPolicyQuery = errors.New("index: query kind not valid under policy")

	// ErrBadQuery indicates NaN coordinates or an interval with start > end.
	ErrBadQuery = errors.New("index: malformed query coordinates")

	// ErrUnknownPolicy indicates a Policy value outside the known set.
	ErrUnknownPolicy = errors.New("index: unknown resolution policy")
)

// Policy selects how candidate matches collapse into a query's result set.
type Policy int

const (
	// Exact returns records whose anchor start equals the query scalar.
	Exact Policy = iota
	// Nearest returns the single record with minimal |start - q|.
	Nearest
	// AllOverlapping returns every record intersecting the query.
	AllOverlapping
	// First returns the overlapping record with the smallest anchor start.
	First
	// Last returns the overlapping record with the largest anchor start.
	Last
)

// String returns the policy name for diagnostics.
func (p Policy) String() string {
	switch p {
	case Exact:
		return "exact"
	case Nearest:
		return "nearest"
	case AllOverlapping:
		return "all-overlapping"
	case First:
		return "first"
	case Last:
		return "last"
	default:
		return "unknown"
	}
}

// Query is either a scalar coordinate or a half-open coordinate interval.
// Construct with At or Between; the zero value is the empty interval [0, 0).
type Query struct {
	start, end float64
	point      bool
}

// At returns the scalar query for coordinate v.
func At(v float64) Query {
	return Query{start: v, end: v, point: true}
}

// Between returns the half-open interval query [start, end).
// Validity (start <= end, no NaN) is checked by Resolve.
func Between(start, end float64) Query {
	return Query{start: start, end: end}
}

// IsPoint reports whether the query is scalar.
func (q Query) IsPoint() bool { return q.point }

// Start returns the query's inclusive lower coordinate.
func (q Query) Start() float64 { return q.start }

// End returns the query's exclusive upper coordinate (== Start for scalars).
func (q Query) End() float64 { return q.end }

// anchor converts the query into anchor form for overlap tests.
func (q Query) anchor() event.Anchor {
	if q.point {
		return event.At(q.start)
	}

	return event.Anchor{Start: q.start, End: q.end}
}

// admitsStart reports whether a record starting at s could still overlap
// the query; starts are sorted, so a false answer prunes every later one.
func (q Query) admitsStart(s float64) bool {
	if q.point {
		return s <= q.start
	}

	return s < q.end
}

// Index is an immutable, queryable snapshot of one event table (or of a
// merged set), sorted by anchor start with insertion order as tie-breaker
// and augmented with per-subtree maximum ends for overlap pruning.
//
// Build constructs it; Resolve queries it. It is safe for concurrent
// readers since nothing mutates it after Build returns.
type Index struct {
	// records sorted by (anchor start, Seq); never exposed for mutation.
	records []event.Record

	// maxEnd[i] is the maximum anchor end within the implicit-BST subtree
	// rooted at i over the sorted records slice.
	maxEnd []float64
}

// Len returns the number of indexed records.
func (ix *Index) Len() int {
	return len(ix.records)
}
