// Package loader wraps the API client in stateful fetchers the
// dashboard views consume: simple list fetchers, the composite run
// view, the analytics snapshot poller and the cron refresher.
package loader

import (
	"context"
	"sync"
)

// FetchFunc produces one page of data.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// List holds the fetch state for one listing: data, loading flag and
// last error. There is no caching; every Refetch hits the API. When
// refetches overlap, the last one to resolve wins, which can
// momentarily surface stale data but never a torn mix of two fetches.
type List[T any] struct {
	mu      sync.Mutex
	fetch   FetchFunc[T]
	gen     uint64
	data    []T
	loading bool
	err     error
}

// NewList creates a list fetcher. No fetch happens until Refetch.
func NewList[T any](fetch FetchFunc[T]) *List[T] {
	return &List[T]{fetch: fetch}
}

// State returns a consistent view of the current fetch state.
func (l *List[T]) State() (data []T, loading bool, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.data, l.loading, l.err
}

// Data returns the last resolved data, nil before the first resolve.
func (l *List[T]) Data() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.data
}

// Refetch fetches synchronously and stores the outcome. A fetch that
// was superseded by a newer Refetch discards its result.
func (l *List[T]) Refetch(ctx context.Context) error {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.loading = true
	fetch := l.fetch
	l.mu.Unlock()

	data, err := fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if gen != l.gen {
		return err
	}
	l.loading = false
	l.err = err
	if err == nil {
		l.data = data
	}
	return err
}
