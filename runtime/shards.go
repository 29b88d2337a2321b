package runtime

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

const defaultShardCount = 32

// Shards is a string-keyed map split into independently locked shards.
// Writers on different keys rarely contend; all operations on one key are
// serialized by its shard lock.
type Shards[K ~string, V any] struct {
	shards []*shard[K, V]
}

type shard[K ~string, V any] struct {
	mu    sync.RWMutex
	items map[K]V
}

func NewShards[K ~string, V any](count int) *Shards[K, V] {
	if count <= 0 {
		count = defaultShardCount
	}
	s := &Shards[K, V]{shards: make([]*shard[K, V], count)}
	for i := range s.shards {
		s.shards[i] = &shard[K, V]{items: make(map[K]V)}
	}
	return s
}

func (s *Shards[K, V]) pick(key K) *shard[K, V] {
	return s.shards[xxhash.Sum64String(string(key))%uint64(len(s.shards))]
}

func (s *Shards[K, V]) Load(key K) (V, bool) {
	sh := s.pick(key)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	v, ok := sh.items[key]
	return v, ok
}

// LoadOrCreate returns the value for key, building it with create when absent.
func (s *Shards[K, V]) LoadOrCreate(key K, create func() V) V {
	if v, ok := s.Load(key); ok {
		return v
	}
	sh := s.pick(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if v, ok := sh.items[key]; ok {
		return v
	}
	v := create()
	sh.items[key] = v
	return v
}

// Compute atomically replaces the value for key with the result of fn.
// Returning keep == false removes the key.
func (s *Shards[K, V]) Compute(key K, fn func(current V, exists bool) (next V, keep bool)) {
	sh := s.pick(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	current, exists := sh.items[key]
	next, keep := fn(current, exists)
	if !keep {
		delete(sh.items, key)
		return
	}
	sh.items[key] = next
}

// View runs fn under the read lock of key's shard.
func (s *Shards[K, V]) View(key K, fn func(current V, exists bool)) {
	sh := s.pick(key)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	current, exists := sh.items[key]
	fn(current, exists)
}

func (s *Shards[K, V]) Delete(key K) {
	sh := s.pick(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	delete(sh.items, key)
}

// Range visits every entry shard by shard. fn must not call back into s.
func (s *Shards[K, V]) Range(fn func(key K, value V) bool) {
	for _, sh := range s.shards {
		sh.mu.RLock()
		for k, v := range sh.items {
			if !fn(k, v) {
				sh.mu.RUnlock()
				return
			}
		}
		sh.mu.RUnlock()
	}
}

func (s *Shards[K, V]) Len() int {
	n := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		n += len(sh.items)
		sh.mu.RUnlock()
	}
	return n
}
