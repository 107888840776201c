package index_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/eventidx/event"
	"github.com/katalvlaran/eventidx/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolve_ExactMatches returns records whose anchor start equals the
// query scalar, and nothing else.
func TestResolve_ExactMatches(t *testing.T) {
	ix := index.Build(scalarTable(t, 2.0, "a", 5.0, "b", 7.0, "c"))

	recs, err := ix.Resolve(index.At(5), index.Exact)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, names(recs))

	recs, err = ix.Resolve(index.At(4.999), index.Exact)
	require.NoError(t, err)
	assert.Empty(t, recs, "exact means exact")
}

// TestResolve_ExactUniqueAnchors: with unique anchors, Exact returns at
// most one record, and one iff some anchor equals the query.
func TestResolve_ExactUniqueAnchors(t *testing.T) {
	anchors := []float64{1, 3, 8, 13, 21}
	ix := index.Build(scalarTable(t, 1.0, "a", 3.0, "b", 8.0, "c", 13.0, "d", 21.0, "e"))

	for q := 0.0; q <= 22; q += 0.5 {
		recs, err := ix.Resolve(index.At(q), index.Exact)
		require.NoError(t, err)
		require.LessOrEqual(t, len(recs), 1, "unique anchors yield at most one match")

		want := false
		for _, a := range anchors {
			if a == q {
				want = true
			}
		}
		assert.Equal(t, want, len(recs) == 1, "q=%v", q)
	}
}

// TestResolve_ExactRejectsIntervalQuery: interval queries are invalid
// under Exact (and Nearest).
func TestResolve_ExactRejectsIntervalQuery(t *testing.T) {
	ix := index.Build(scalarTable(t, 1.0, "a"))

	_, err := ix.Resolve(index.Between(0, 2), index.Exact)
	assert.ErrorIs(t, err, index.ErrPolicyQuery)

	_, err = ix.Resolve(index.Between(0, 2), index.Nearest)
	assert.ErrorIs(t, err, index.ErrPolicyQuery)
}

// TestResolve_Nearest reproduces the canonical worked example:
// anchors (2,"a"), (5,"b"), (5,"c"); q=4 is at distance 2 from 2 and
// distance 1 from 5, so (5,"b") wins — the tie-break never enters.
func TestResolve_Nearest(t *testing.T) {
	ix := index.Build(scalarTable(t, 2.0, "a", 5.0, "b", 5.0, "c"))

	recs, err := ix.Resolve(index.At(4), index.Nearest)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, names(recs), "distance 1 beats distance 2")
}

// TestResolve_NearestTieBreak: at equal distance the earlier-inserted
// record wins — anchors 3 and 5 are both at distance 1 from q=4.
func TestResolve_NearestTieBreak(t *testing.T) {
	ix := index.Build(scalarTable(t, 3.0, "early", 5.0, "late"))
	recs, err := ix.Resolve(index.At(4), index.Nearest)
	require.NoError(t, err)
	assert.Equal(t, []string{"early"}, names(recs), "equal distance: earliest insertion wins")

	// same anchors, reversed insertion order
	ix = index.Build(scalarTable(t, 5.0, "early", 3.0, "late"))
	recs, err = ix.Resolve(index.At(4), index.Nearest)
	require.NoError(t, err)
	assert.Equal(t, []string{"early"}, names(recs), "tie-break follows insertion, not coordinate")
}

// TestResolve_NearestDuplicateAnchors: among duplicates of the winning
// anchor, the earliest-inserted record is returned.
func TestResolve_NearestDuplicateAnchors(t *testing.T) {
	ix := index.Build(scalarTable(t, 2.0, "a", 5.0, "b", 5.0, "c"))
	recs, err := ix.Resolve(index.At(5), index.Nearest)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, names(recs))
}

// TestResolve_NearestAtEdges: queries beyond either extreme still
// resolve to the closest anchor.
func TestResolve_NearestAtEdges(t *testing.T) {
	ix := index.Build(scalarTable(t, 2.0, "lo", 8.0, "hi"))

	recs, err := ix.Resolve(index.At(-100), index.Nearest)
	require.NoError(t, err)
	assert.Equal(t, []string{"lo"}, names(recs))

	recs, err = ix.Resolve(index.At(100), index.Nearest)
	require.NoError(t, err)
	assert.Equal(t, []string{"hi"}, names(recs))
}

// TestResolve_AllOverlapping covers half-open overlap semantics,
// including touching endpoints and point anchors.
func TestResolve_AllOverlapping(t *testing.T) {
	ix := index.Build(intervalTable(t,
		1.0, 4.0, "a", // [1,4)
		4.0, 6.0, "b", // [4,6) — touches a, no overlap between them
		3.0, 5.0, "c", // [3,5)
		5.0, 5.0, "d", // point at 5
	))

	recs, err := ix.Resolve(index.Between(3.5, 4.5), index.AllOverlapping)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b"}, names(recs), "index order: by start, then insertion")

	recs, err = ix.Resolve(index.Between(4.0, 5.0), index.AllOverlapping)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, names(recs), "[1,4) touching [4,5) does not overlap")

	recs, err = ix.Resolve(index.Between(5.0, 6.0), index.AllOverlapping)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "d"}, names(recs), "point 5 lies inside [5,6)")

	recs, err = ix.Resolve(index.At(5), index.AllOverlapping)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "d"}, names(recs), "scalar query acts as the point 5")

	recs, err = ix.Resolve(index.Between(6.0, 9.0), index.AllOverlapping)
	require.NoError(t, err)
	assert.Empty(t, recs, "[4,6) touching [6,9) does not overlap")
}

// TestResolve_FirstLast: of the overlapping records, First keeps the
// smallest start and Last the largest.
func TestResolve_FirstLast(t *testing.T) {
	ix := index.Build(intervalTable(t,
		2.0, 9.0, "a",
		4.0, 6.0, "b",
		1.0, 3.0, "c",
	))

	recs, err := ix.Resolve(index.Between(2.5, 5.0), index.First)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, names(recs))

	recs, err = ix.Resolve(index.Between(2.5, 5.0), index.Last)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, names(recs))

	recs, err = ix.Resolve(index.Between(10, 20), index.First)
	require.NoError(t, err)
	assert.Empty(t, recs, "no overlap, no winner")
}

// TestResolve_EmptyIntervalQuery: [v, v) is empty and intersects nothing,
// even where the scalar query At(v) would match.
func TestResolve_EmptyIntervalQuery(t *testing.T) {
	ix := index.Build(scalarTable(t, 5.0, "point"))

	recs, err := ix.Resolve(index.Between(5, 5), index.AllOverlapping)
	require.NoError(t, err)
	assert.Empty(t, recs, "empty interval matches nothing")

	recs, err = ix.Resolve(index.At(5), index.AllOverlapping)
	require.NoError(t, err)
	assert.Equal(t, []string{"point"}, names(recs), "the scalar query does match")
}

// TestResolve_BadQuery rejects NaN coordinates and inverted intervals.
func TestResolve_BadQuery(t *testing.T) {
	ix := index.Build(scalarTable(t, 1.0, "a"))

	_, err := ix.Resolve(index.Between(5, 2), index.AllOverlapping)
	assert.ErrorIs(t, err, index.ErrBadQuery)

	_, err = ix.Resolve(index.At(math.NaN()), index.Nearest)
	assert.ErrorIs(t, err, index.ErrBadQuery)
}

// TestResolve_UnknownPolicy rejects out-of-range policy values.
func TestResolve_UnknownPolicy(t *testing.T) {
	ix := index.Build(scalarTable(t, 1.0, "a"))
	_, err := ix.Resolve(index.At(1), index.Policy(99))
	assert.ErrorIs(t, err, index.ErrUnknownPolicy)
}

// TestResolve_OverlapBruteForce cross-checks AllOverlapping against a
// naive O(n) scan on randomized interval sets.
func TestResolve_OverlapBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(64)
		recs := make([]event.Record, n)
		for i := range recs {
			start := math.Round(rng.Float64()*200) / 10 // 0.0 .. 20.0 step 0.1
			length := math.Round(rng.Float64()*50) / 10 // 0.0 .. 5.0, zero → point
			a, err := event.NewAnchor(start, start+length)
			require.NoError(t, err)
			recs[i] = event.Record{Anchor: a, Attrs: map[string]any{"i": i}}
		}
		tbl, err := event.NewTable("time", recs)
		require.NoError(t, err)
		ix := index.Build(tbl)

		for probe := 0; probe < 20; probe++ {
			qs := math.Round(rng.Float64()*200) / 10
			qe := qs + 0.1 + math.Round(rng.Float64()*60)/10 // non-empty query interval
			q := index.Between(qs, qe)
			qa, err := event.NewAnchor(qs, qe)
			require.NoError(t, err)

			got, err := ix.Resolve(q, index.AllOverlapping)
			require.NoError(t, err)

			var want []int
			for _, r := range tbl.Records() {
				if r.Anchor.Overlaps(qa) {
					want = append(want, r.Attrs["i"].(int))
				}
			}

			gotIDs := make(map[int]bool, len(got))
			for _, r := range got {
				gotIDs[r.Attrs["i"].(int)] = true
			}
			require.Len(t, got, len(want),
				"trial %d probe %d: index and scan disagree on [%g,%g)", trial, probe, qs, qe)
			for _, id := range want {
				assert.True(t, gotIDs[id],
					"trial %d probe %d: record %d missing from [%g,%g)", trial, probe, id, qs, qe)
			}
		}
	}
}
