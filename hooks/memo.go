package hooks

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
)

// Memo caches compute results by key in a bounded LRU.
type Memo[K comparable, V any] struct {
	cache        *lru.Cache
	computations int64
}

// NewMemo creates a Memo holding at most size entries.
func NewMemo[K comparable, V any](size int) (*Memo[K, V], error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("create memo cache of size %d: %w", size, err)
	}
	return &Memo[K, V]{cache: cache}, nil
}

// Get returns the cached value for key, calling compute on a miss.
func (m *Memo[K, V]) Get(key K, compute func(K) V) V {
	if v, ok := m.cache.Get(key); ok {
		return v.(V)
	}
	v := compute(key)
	m.computations++
	m.cache.Add(key, v)
	return v
}

// Computations returns how many times compute has been called.
func (m *Memo[K, V]) Computations() int64 {
	return m.computations
}

// Len returns the number of cached entries.
func (m *Memo[K, V]) Len() int {
	return m.cache.Len()
}

// Purge drops every cached entry. The computation count is kept.
func (m *Memo[K, V]) Purge() {
	m.cache.Purge()
}
