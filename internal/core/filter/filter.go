// Package filter implements the list-view search and filter engine: a
// free-text term matched case-insensitively as a substring of any
// configured search field, combined with exact-match categorical
// filters. The result preserves the input order.
package filter

import "strings"

// Exact is one categorical filter. An empty Value deactivates it.
type Exact[T any] struct {
	Value string
	Field func(T) string
}

// Query bundles the active search term and filters for one collection.
type Query[T any] struct {
	// Term is the free-text search input. Empty matches everything.
	Term string
	// SearchFields are the string projections the term is matched against.
	SearchFields []func(T) string
	// Filters are the exact-match predicates, ANDed together.
	Filters []Exact[T]
}

// Apply returns the subset of items matching the query, in input order.
// Recomputation is pure: the input slice is never mutated.
func Apply[T any](items []T, q Query[T]) []T {
	term := strings.ToLower(strings.TrimSpace(q.Term))

	out := make([]T, 0, len(items))
	for _, item := range items {
		if term != "" && !matchesTerm(item, term, q.SearchFields) {
			continue
		}
		if !matchesFilters(item, q.Filters) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesTerm[T any](item T, term string, fields []func(T) string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field(item)), term) {
			return true
		}
	}
	return false
}

func matchesFilters[T any](item T, filters []Exact[T]) bool {
	for _, f := range filters {
		if f.Value == "" {
			continue
		}
		if f.Field(item) != f.Value {
			return false
		}
	}
	return true
}
