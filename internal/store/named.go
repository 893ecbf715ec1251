package store

import (
	"sort"
	"strings"
)

// namedTable is a by-id collection with a case-insensitive name index.
// Artists, genres and labels share it.
type namedTable[T any] struct {
	entity string
	seq    sequence
	rows   map[int]T
	byName map[string]int
	nameOf func(T) string
	build  func(id int, name string) T
}

func newNamedTable[T any](entity string, nameOf func(T) string, build func(int, string) T) *namedTable[T] {
	return &namedTable[T]{
		entity: entity,
		rows:   map[int]T{},
		byName: map[string]int{},
		nameOf: nameOf,
		build:  build,
	}
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// create returns the existing row when the name is already taken.
func (t *namedTable[T]) create(name string) (T, bool, error) {
	var zero T
	name = strings.TrimSpace(name)
	if name == "" {
		return zero, false, invalid("%s name must not be blank", t.entity)
	}
	if id, ok := t.byName[nameKey(name)]; ok {
		return t.rows[id], false, nil
	}
	id := t.seq.next()
	row := t.build(id, name)
	t.rows[id] = row
	t.byName[nameKey(name)] = id
	return row, true, nil
}

func (t *namedTable[T]) get(id int) (T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

func (t *namedTable[T]) find(name string) (T, bool) {
	id, ok := t.byName[nameKey(name)]
	if !ok {
		var zero T
		return zero, false
	}
	return t.rows[id], true
}

// list returns rows whose name contains substr (case-insensitive), id ascending.
func (t *namedTable[T]) list(substr string) []T {
	needle := nameKey(substr)
	ids := make([]int, 0, len(t.rows))
	for id, row := range t.rows {
		if needle == "" || strings.Contains(strings.ToLower(t.nameOf(row)), needle) {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *namedTable[T]) rename(id int, name string) (T, error) {
	var zero T
	current, ok := t.rows[id]
	if !ok {
		return zero, notFound(t.entity, id)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return zero, invalid("%s name must not be blank", t.entity)
	}
	key := nameKey(name)
	if other, taken := t.byName[key]; taken && other != id {
		return zero, conflict("%s named %q already exists with id %d", t.entity, name, other)
	}
	delete(t.byName, nameKey(t.nameOf(current)))
	row := t.build(id, name)
	t.rows[id] = row
	t.byName[key] = id
	return row, nil
}

func (t *namedTable[T]) remove(id int) error {
	row, ok := t.rows[id]
	if !ok {
		return notFound(t.entity, id)
	}
	delete(t.rows, id)
	delete(t.byName, nameKey(t.nameOf(row)))
	return nil
}
