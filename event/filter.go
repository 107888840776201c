package event

import "reflect"

// Filter returns a new Table holding only the records whose attributes
// satisfy every constraint. The constraint value selects the test:
//
//   - a slice: the attribute must equal one of its elements (membership),
//   - a func(any) bool: the predicate must accept the attribute,
//   - anything else: the attribute must equal the value.
//
// Records lacking a constrained attribute never match. The unanchored
// bucket is filtered by the same rules; skip counts are not carried over.
// The receiver is left untouched.
func (t *Table) Filter(constraints map[string]any) *Table {
	out := &Table{dim: t.dim}
	for _, r := range t.records {
		if matches(r, constraints) {
			r.Seq = len(out.records)
			out.records = append(out.records, r)
		}
	}
	for _, r := range t.unanchored {
		if matches(r, constraints) {
			r.Seq = len(out.unanchored)
			out.unanchored = append(out.unanchored, r)
		}
	}

	return out
}

// matches reports whether every constraint accepts the record.
func matches(r Record, constraints map[string]any) bool {
	for col, want := range constraints {
		got, ok := r.Attrs[col]
		if !ok {
			return false
		}
		if !accepts(got, want) {
			return false
		}
	}

	return true
}

// accepts applies one constraint value to one attribute value.
func accepts(got, want any) bool {
	if pred, ok := want.(func(any) bool); ok {
		return pred(got)
	}
	rv := reflect.ValueOf(want)
	if rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
		for i := 0; i < rv.Len(); i++ {
			if reflect.DeepEqual(got, rv.Index(i).Interface()) {
				return true
			}
		}

		return false
	}

	return reflect.DeepEqual(got, want)
}
