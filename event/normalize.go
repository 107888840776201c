package event

import (
	"fmt"
	"math"
	"time"
)

// Normalize turns raw rows into an immutable Table under the given schema.
//
// Each row must expose the schema's anchor column (and end column for
// interval anchors) with an orderable value; the remaining schema
// attributes are copied onto the record. Rows with null/NaN anchors are
// dropped (or parked in the unanchored bucket under KeepUnanchored) and do
// not count as failures.
//
// Per-row failures (missing/non-orderable anchor → ErrSchema, start > end
// → ErrInvalidInterval) are skipped and counted under the lenient default;
// with Strict the first failure aborts the whole table.
//
// Normalize is a pure transform: rows are read, never mutated.
// Complexity: O(n · c) for n rows and c schema columns.
func Normalize(rows []map[string]any, schema Schema, opts *Options) (*Table, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	t := &Table{dim: schema.Dimension}
	for i, row := range rows {
		rec, ok, err := normalizeRow(row, schema)
		if err != nil {
			if o.Strict {
				return nil, fmt.Errorf("event: row %d: %w", i, err)
			}
			t.skipped++

			continue
		}
		if !ok { // null/NaN anchor
			if o.KeepUnanchored {
				rec.Seq = len(t.unanchored)
				t.unanchored = append(t.unanchored, rec)
			}

			continue
		}
		rec.Seq = len(t.records)
		t.records = append(t.records, rec)
	}

	return t, nil
}

// normalizeRow converts one raw row. ok=false (with nil error) marks an
// unanchored row; errors mark genuinely malformed rows.
func normalizeRow(row map[string]any, schema Schema) (Record, bool, error) {
	raw, present := row[schema.Anchor]
	if !present {
		return Record{}, false, fmt.Errorf("%w: column %q absent", ErrSchema, schema.Anchor)
	}
	start, err := coerce(raw)
	if err != nil {
		return Record{}, false, fmt.Errorf("%w: column %q: %v", ErrSchema, schema.Anchor, err)
	}

	end := start
	if schema.End != "" {
		rawEnd, endPresent := row[schema.End]
		if !endPresent {
			return Record{}, false, fmt.Errorf("%w: column %q absent", ErrSchema, schema.End)
		}
		if end, err = coerce(rawEnd); err != nil {
			return Record{}, false, fmt.Errorf("%w: column %q: %v", ErrSchema, schema.End, err)
		}
	}

	rec := Record{Attrs: pickAttrs(row, schema)}
	if isMissing(start) || isMissing(end) {
		return rec, false, nil
	}
	if rec.Anchor, err = NewAnchor(start, end); err != nil {
		return Record{}, false, err
	}

	return rec, true, nil
}

// pickAttrs copies the schema's attribute columns off the row. An empty
// attribute list means every non-anchor column.
func pickAttrs(row map[string]any, schema Schema) map[string]any {
	attrs := make(map[string]any)
	if len(schema.Attributes) > 0 {
		for _, col := range schema.Attributes {
			if v, ok := row[col]; ok {
				attrs[col] = v
			}
		}

		return attrs
	}
	for col, v := range row {
		if col == schema.Anchor || (schema.End != "" && col == schema.End) {
			continue
		}
		attrs[col] = v
	}

	return attrs
}

// coerce converts a raw anchor cell into a float64 coordinate.
// nil coerces to NaN (an unanchored marker, not an error); time.Time
// coerces to fractional Unix seconds. Everything non-numeric is an error.
func coerce(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return math.NaN(), nil
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case time.Time:
		return float64(x.UnixNano()) / float64(time.Second), nil
	default:
		return 0, fmt.Errorf("value of type %T is not orderable", v)
	}
}
