package event_test

import (
	"testing"

	"github.com/katalvlaran/eventidx/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// filterTable builds a small table with kind/level attributes.
func filterTable(t *testing.T) *event.Table {
	t.Helper()
	rows := []map[string]any{
		{"t": 1.0, "kind": "spike", "level": 1},
		{"t": 2.0, "kind": "drift", "level": 2},
		{"t": 3.0, "kind": "spike", "level": 3},
		{"t": 4.0, "kind": "calib", "level": 2},
	}
	schema := event.Schema{Dimension: "time", Anchor: "t", Attributes: []string{"kind", "level"}}
	tbl, err := event.Normalize(rows, schema, nil)
	require.NoError(t, err)

	return tbl
}

// TestFilter_Scalar keeps records whose attribute equals the value.
func TestFilter_Scalar(t *testing.T) {
	got := filterTable(t).Filter(map[string]any{"kind": "spike"})
	require.Equal(t, 2, got.Len())
	assert.Equal(t, event.At(1), got.Record(0).Anchor)
	assert.Equal(t, event.At(3), got.Record(1).Anchor)
	assert.Equal(t, 0, got.Record(0).Seq, "filtered tables are re-sequenced")
}

// TestFilter_Membership keeps records whose attribute is in the slice.
func TestFilter_Membership(t *testing.T) {
	got := filterTable(t).Filter(map[string]any{"kind": []string{"drift", "calib"}})
	require.Equal(t, 2, got.Len())
	assert.Equal(t, event.At(2), got.Record(0).Anchor)
	assert.Equal(t, event.At(4), got.Record(1).Anchor)
}

// TestFilter_Predicate keeps records accepted by the function.
func TestFilter_Predicate(t *testing.T) {
	got := filterTable(t).Filter(map[string]any{
		"level": func(v any) bool { return v.(int) >= 2 },
	})
	require.Equal(t, 3, got.Len())
	assert.Equal(t, event.At(2), got.Record(0).Anchor)
}

// TestFilter_Conjunction: every constraint must hold.
func TestFilter_Conjunction(t *testing.T) {
	got := filterTable(t).Filter(map[string]any{
		"kind":  "spike",
		"level": func(v any) bool { return v.(int) > 1 },
	})
	require.Equal(t, 1, got.Len())
	assert.Equal(t, event.At(3), got.Record(0).Anchor)
}

// TestFilter_MissingAttribute: records lacking the column never match.
func TestFilter_MissingAttribute(t *testing.T) {
	got := filterTable(t).Filter(map[string]any{"absent": 1})
	assert.Equal(t, 0, got.Len())
}

// TestFilter_LeavesReceiverIntact: Filter is copy-on-write.
func TestFilter_LeavesReceiverIntact(t *testing.T) {
	tbl := filterTable(t)
	_ = tbl.Filter(map[string]any{"kind": "spike"})
	assert.Equal(t, 4, tbl.Len(), "the receiver must not shrink")
}
