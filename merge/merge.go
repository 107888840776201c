// This file declares Policy, Options, sentinel errors, the CollisionError
// type, and the Merge operation.
//
// Errors:
//
//	ErrNoTables          - Merge called with zero tables.
//	ErrDimensionMismatch - input tables anchor different dimensions.
//	ErrCollision         - anchors collide across sources under Fail;
//	                       returned wrapped in a *CollisionError.
package merge

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/eventidx/event"
)

// Sentinel errors for merge operations.
var (
	// ErrNoTables indicates Merge was called with an empty table set.
	ErrNoTables = errors.New("merge: at least one table required")

	// ErrDimensionMismatch indicates input tables anchor different dimensions.
	ErrDimensionMismatch = errors.New("merge: tables anchor different dimensions")

	// ErrCollision indicates cross-source anchor collisions under Fail.
	ErrCollision = errors.New("merge: colliding anchors across sources")
)

// Policy selects the outcome when records from different sources share an
// anchor (exact equality of both endpoints).
type Policy int

const (
	// KeepAll retains colliding records from every source (default).
	KeepAll Policy = iota
	// PreferFirst keeps only the earliest source's records on collision.
	PreferFirst
	// PreferLast keeps only the latest source's records on collision.
	PreferLast
	// Fail aborts the merge with a *CollisionError listing all collisions.
	Fail
)

// String returns the policy name for diagnostics.
func (p Policy) String() string {
	switch p {
	case KeepAll:
		return "keep-all"
	case PreferFirst:
		return "prefer-first-source"
	case PreferLast:
		return "prefer-last-source"
	case Fail:
		return "error"
	default:
		return "unknown"
	}
}

// Options contains tunable parameters for Merge.
type Options struct {
	// Policy picks the collision outcome; KeepAll by default.
	Policy Policy
}

// DefaultOptions returns Options with default settings: KeepAll.
func DefaultOptions() Options {
	return Options{Policy: KeepAll}
}

// CollisionError reports every anchor shared across sources under Fail.
// It unwraps to ErrCollision so callers can match with errors.Is.
type CollisionError struct {
	// Anchors lists the colliding anchors, ascending by start then end.
	Anchors []event.Anchor
}

// Error implements the error interface.
func (e *CollisionError) Error() string {
	return fmt.Sprintf("%v: %d colliding anchor(s) %v", ErrCollision, len(e.Anchors), e.Anchors)
}

// Unwrap ties CollisionError to the ErrCollision sentinel.
func (e *CollisionError) Unwrap() error {
	return ErrCollision
}

// Merge combines the tables into one table over their shared dimension.
//
// Records are concatenated source by source in input order and
// re-sequenced, so the merged insertion order — and every index built
// from it — is deterministic. Cross-source anchor collisions are settled
// by the configured Policy; under Fail no partially-merged table is
// returned. With KeepAll no record is ever lost:
// the merged length is the sum of the input lengths.
func Merge(tables []*event.Table, opts *Options) (*event.Table, error) {
	if len(tables) == 0 {
		return nil, ErrNoTables
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	dim := tables[0].Dim()
	for _, t := range tables[1:] {
		if t.Dim() != dim {
			return nil, fmt.Errorf("%w: %q vs %q", ErrDimensionMismatch, dim, t.Dim())
		}
	}

	switch o.Policy {
	case KeepAll:
		return concat(dim, tables, nil)
	case PreferFirst, PreferLast:
		return concat(dim, tables, chooseSources(tables, o.Policy))
	case Fail:
		if collided := collisions(tables); len(collided) > 0 {
			return nil, &CollisionError{Anchors: collided}
		}

		return concat(dim, tables, nil)
	default:
		return nil, fmt.Errorf("merge: unknown collision policy %d", o.Policy)
	}
}

// concat flattens the tables in source order. When chosen is non-nil,
// a record survives only if its anchor's chosen source is its own.
func concat(dim string, tables []*event.Table, chosen map[event.Anchor]int) (*event.Table, error) {
	var recs []event.Record
	for src, t := range tables {
		for _, r := range t.Records() {
			if chosen != nil && chosen[r.Anchor] != src {
				continue
			}
			recs = append(recs, r)
		}
	}

	return event.NewTable(dim, recs)
}

// chooseSources maps every anchor to the source index that wins under
// PreferFirst (lowest) or PreferLast (highest).
func chooseSources(tables []*event.Table, p Policy) map[event.Anchor]int {
	chosen := make(map[event.Anchor]int)
	for src, t := range tables {
		for _, r := range t.Records() {
			if prev, seen := chosen[r.Anchor]; seen {
				if p == PreferLast && src > prev {
					chosen[r.Anchor] = src
				}

				continue
			}
			chosen[r.Anchor] = src
		}
	}

	return chosen
}

// collisions returns the anchors present in two or more sources,
// ascending by start then end.
func collisions(tables []*event.Table) []event.Anchor {
	firstSeen := make(map[event.Anchor]int)
	collided := make(map[event.Anchor]struct{})
	for src, t := range tables {
		for _, r := range t.Records() {
			if prev, seen := firstSeen[r.Anchor]; seen {
				if prev != src {
					collided[r.Anchor] = struct{}{}
				}

				continue
			}
			firstSeen[r.Anchor] = src
		}
	}
	if len(collided) == 0 {
		return nil
	}

	out := make([]event.Anchor, 0, len(collided))
	for a := range collided {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}

		return out[i].End < out[j].End
	})

	return out
}
