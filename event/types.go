// This file declares Anchor, Record, Table, Options,
// sentinel errors, and the NewTable constructor.
//
// Errors:
//
//	ErrSchema          - anchor column missing from the schema or a row,
//	                     or an anchor value is not orderable.
//	ErrInvalidInterval - an interval anchor has start > end.
package event

import (
	"errors"
	"math"
)

// Sentinel errors for event normalization.
var (
	// ErrSchema indicates a malformed schema or a row whose anchor column
	// is missing or holds a non-orderable value.
	ErrSchema = errors.New("event: anchor column missing or non-orderable")

	// ErrInvalidInterval indicates an interval anchor with start > end.
	ErrInvalidInterval = errors.New("event: interval anchor has start > end")
)

// Anchor pins a record to a position along one dimension as the half-open
// interval [Start, End). A scalar coordinate is the degenerate case
// Start == End and is treated as a single point, not an empty interval.
//
// Invariant: Start <= End. NewAnchor enforces it; zero value is the point 0.
type Anchor struct {
	// Start is the inclusive lower coordinate of the anchor.
	Start float64

	// End is the exclusive upper coordinate; End == Start marks a point.
	End float64
}

// At returns the scalar (point) anchor [v, v].
func At(v float64) Anchor {
	return Anchor{Start: v, End: v}
}

// NewAnchor returns the interval anchor [start, end).
// Returns ErrInvalidInterval when start > end.
func NewAnchor(start, end float64) (Anchor, error) {
	if start > end {
		return Anchor{}, ErrInvalidInterval
	}

	return Anchor{Start: start, End: end}, nil
}

// IsPoint reports whether the anchor is a degenerate (scalar) interval.
func (a Anchor) IsPoint() bool {
	return a.Start == a.End
}

// Equal reports exact anchor equality (both endpoints).
func (a Anchor) Equal(b Anchor) bool {
	return a.Start == b.Start && a.End == b.End
}

// Contains reports whether coordinate v lies inside the anchor:
// Start <= v < End for intervals, v == Start for points.
func (a Anchor) Contains(v float64) bool {
	if a.IsPoint() {
		return v == a.Start
	}

	return a.Start <= v && v < a.End
}

// Overlaps reports whether a and b have a non-empty intersection.
// Touching endpoints of half-open intervals do not count as overlap;
// a point overlaps an interval only when the interval contains it.
func (a Anchor) Overlaps(b Anchor) bool {
	switch {
	case a.IsPoint() && b.IsPoint():
		return a.Start == b.Start
	case a.IsPoint():
		return b.Contains(a.Start)
	case b.IsPoint():
		return a.Contains(b.Start)
	default:
		return a.Start < b.End && b.Start < a.End
	}
}

// Record is one normalized event: an anchor plus the row's attributes.
// Records are immutable once normalized; Attrs must not be mutated.
type Record struct {
	// Anchor locates the event along the table's dimension.
	Anchor Anchor

	// Attrs carries the row's non-anchor columns. Treat as read-only.
	Attrs map[string]any

	// Seq is the record's insertion position within its table. It is
	// assigned by Normalize / NewTable and is the stable tie-breaker for
	// equal-distance and equal-start resolution.
	Seq int
}

// Options contains tunable parameters for normalization.
type Options struct {
	// Strict escalates the first per-row failure to a whole-table failure.
	// When false (default) bad rows are skipped and counted.
	Strict bool

	// KeepUnanchored parks rows with null/NaN anchors in the table's
	// unanchored bucket instead of dropping them.
	KeepUnanchored bool
}

// DefaultOptions returns Options with default settings:
// lenient normalization, unanchored rows dropped.
func DefaultOptions() Options {
	return Options{
		Strict:         false,
		KeepUnanchored: false,
	}
}

// Table is an ordered, read-only sequence of normalized records anchored
// to one named dimension. Indexes built over a Table never mutate it.
type Table struct {
	dim        string
	records    []Record
	unanchored []Record
	skipped    int
}

// NewTable builds a Table over dim from already-normalized records.
// Record order is preserved and Seq is reassigned to match it.
// Returns ErrInvalidInterval if any record violates Start <= End.
func NewTable(dim string, records []Record) (*Table, error) {
	recs := make([]Record, len(records))
	for i, r := range records {
		if r.Anchor.Start > r.Anchor.End {
			return nil, ErrInvalidInterval
		}
		r.Seq = i
		recs[i] = r
	}

	return &Table{dim: dim, records: recs}, nil
}

// Dim returns the name of the dimension the table anchors to.
func (t *Table) Dim() string {
	return t.dim
}

// Len returns the number of anchored records.
func (t *Table) Len() int {
	return len(t.records)
}

// Record returns the anchored record at insertion position i.
func (t *Table) Record(i int) Record {
	return t.records[i]
}

// Records returns a copy of the anchored record sequence in insertion
// order. The attribute maps are shared; treat them as read-only.
func (t *Table) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)

	return out
}

// Unanchored returns a copy of the rows retained under KeepUnanchored.
// These records never participate in point or range queries.
func (t *Table) Unanchored() []Record {
	out := make([]Record, len(t.unanchored))
	copy(out, t.unanchored)

	return out
}

// Skipped returns the number of rows dropped during lenient normalization.
func (t *Table) Skipped() int {
	return t.skipped
}

// isMissing reports whether a coerced anchor coordinate counts as absent.
func isMissing(v float64) bool {
	return math.IsNaN(v)
}
