package database

import (
	"errors"
	"sync"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// Record is anything stored in a Table.
type Record interface {
	Key() string
}

// Table is an ordered in-memory collection keyed by Record.Key. Rows are
// copied in and out, so callers never share memory with the table.
type Table[T Record] struct {
	mu    sync.RWMutex
	order []string
	rows  map[string]T
}

// NewTable keeps the seed rows in the given order.
func NewTable[T Record](rows ...T) *Table[T] {
	t := &Table[T]{rows: make(map[string]T, len(rows))}
	for _, row := range rows {
		k := row.Key()
		if _, ok := t.rows[k]; ok {
			continue
		}
		t.rows[k] = row
		t.order = append(t.order, k)
	}
	return t
}

// Insert puts row first, newest entries are listed before the seed.
func (t *Table[T]) Insert(row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	k := row.Key()
	if _, ok := t.rows[k]; ok {
		return ErrDuplicate
	}
	t.rows[k] = row
	t.order = append([]string{k}, t.order...)
	return nil
}

// Append puts row last.
func (t *Table[T]) Append(row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	k := row.Key()
	if _, ok := t.rows[k]; ok {
		return ErrDuplicate
	}
	t.rows[k] = row
	t.order = append(t.order, k)
	return nil
}

func (t *Table[T]) Get(key string) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[key]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return row, nil
}

// Find returns the first row, in table order, accepted by match.
func (t *Table[T]) Find(match func(T) bool) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, k := range t.order {
		if row := t.rows[k]; match(row) {
			return row, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

// Update applies fn to a copy of the row and stores the result when fn succeeds.
func (t *Table[T]) Update(key string, fn func(*T) error) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[key]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	if err := fn(&row); err != nil {
		var zero T
		return zero, err
	}
	if row.Key() != key {
		var zero T
		return zero, errors.New("update must not change the record key")
	}
	t.rows[key] = row
	return row, nil
}

func (t *Table[T]) Delete(key string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[key]; !ok {
		return ErrNotFound
	}
	delete(t.rows, key)
	for i, k := range t.order {
		if k == key {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns the rows accepted by filter in table order. A nil filter keeps everything.
func (t *Table[T]) List(filter func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.order))
	for _, k := range t.order {
		row := t.rows[k]
		if filter == nil || filter(row) {
			out = append(out, row)
		}
	}
	return out
}

func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.order)
}
