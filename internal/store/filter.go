package store

import (
	"sort"
	"strconv"
	"strings"
)

// sortedValues returns the rows accepted by keep, id ascending.
func sortedValues[T any](rows map[int]T, keep func(T) bool) []T {
	ids := make([]int, 0, len(rows))
	for id, row := range rows {
		if keep == nil || keep(row) {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, rows[id])
	}
	return out
}

// refMatcher implements the catalog filter convention: a term that parses
// as an integer matches the id exactly, anything else is a case-insensitive
// substring match against the name.
type refMatcher struct {
	id     int
	byID   bool
	needle string
}

func newRefMatcher(term string) (refMatcher, bool) {
	term = strings.TrimSpace(term)
	if term == "" {
		return refMatcher{}, false
	}
	if n, err := strconv.Atoi(term); err == nil {
		return refMatcher{id: n, byID: true}, true
	}
	return refMatcher{needle: strings.ToLower(term)}, true
}

func (m refMatcher) match(id int, name string) bool {
	if m.byID {
		return id == m.id
	}
	return strings.Contains(strings.ToLower(name), m.needle)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(strings.TrimSpace(substr)))
}
