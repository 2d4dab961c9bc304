package memstore

import (
	"sync"
	"time"
)

// Table is an append-only, id-keyed record set. Ids start at 1 and are dense, so row i holds id i+1.
type Table[T any] struct {
	mu   sync.RWMutex
	rows []T
	now  func() time.Time
}

type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the timestamp source used for createdAt.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func NewTable[T any](opts ...Option) *Table[T] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Table[T]{now: o.now}
}

// Insert assigns the next id and a creation timestamp and stores the row built from them.
func (t *Table[T]) Insert(build func(id int64, createdAt time.Time) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()
	row := build(int64(len(t.rows)+1), t.now().UTC())
	t.rows = append(t.rows, row)
	return row
}

// List returns a copy of all rows, most recently inserted first.
func (t *Table[T]) List() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, 0, len(t.rows))
	for i := len(t.rows) - 1; i >= 0; i-- {
		out = append(out, t.rows[i])
	}
	return out
}

func (t *Table[T]) Get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var zero T
	if id < 1 || id > int64(len(t.rows)) {
		return zero, false
	}
	return t.rows[id-1], true
}

// Update applies mutate to the row with id under the write lock and returns the result.
func (t *Table[T]) Update(id int64, mutate func(*T)) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var zero T
	if id < 1 || id > int64(len(t.rows)) {
		return zero, false
	}
	mutate(&t.rows[id-1])
	return t.rows[id-1], true
}

func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
