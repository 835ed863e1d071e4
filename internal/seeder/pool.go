package seeder

import (
	"errors"
	"fmt"
	"sync"
)

// ErrEmptyPool means a stage needed a parent record and none was persisted.
var ErrEmptyPool = errors.New("empty entity pool")

// Pool holds the records of one entity type that were persisted in this run.
// It only grows.
type Pool[T any] struct {
	mu    sync.RWMutex
	name  string
	items []T
}

func NewPool[T any](name string) *Pool[T] {
	return &Pool[T]{name: name}
}

func (p *Pool[T]) Name() string { return p.name }

func (p *Pool[T]) Add(items ...T) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = append(p.items, items...)
}

func (p *Pool[T]) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.items)
}

// Items returns a snapshot of the pool.
func (p *Pool[T]) Items() []T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]T(nil), p.items...)
}

// Pick draws one record uniformly at random.
func (p *Pool[T]) Pick(r RandomSource) (T, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if len(p.items) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrEmptyPool, p.name)
	}
	return pick(r, p.items), nil
}
