package record

import "strings"

// Filter selects documents by field values. The zero value matches every
// document in a collection.
type Filter struct {
	// Equals maps field names to exact-match values.
	Equals map[string]string
	// Contains maps field names to case-insensitive substring values.
	Contains map[string]string
}

// Matches reports whether a document satisfies every condition of the filter.
// Only string-valued fields can match; a condition on a missing or non-string
// field fails.
func (f Filter) Matches(doc map[string]any) bool {
	for field, want := range f.Equals {
		got, ok := doc[field].(string)
		if !ok || got != want {
			return false
		}
	}
	for field, want := range f.Contains {
		got, ok := doc[field].(string)
		if !ok || !strings.Contains(strings.ToLower(got), strings.ToLower(want)) {
			return false
		}
	}
	return true
}
