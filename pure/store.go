package pure

import (
	"sync"
	"sync/atomic"

	"github.com/on-the-ground/memo_ive_go/shared/helper"
)

// Store maps keys to computed results for a single memoized function.
//
// Stores only grow: an entry, once present, is never replaced or removed.
// Implementations must be safe for concurrent use.
type Store[K any, V any] interface {
	Load(key K) (V, bool)

	// LoadOrStore returns the existing value for key if present.
	// Otherwise it stores value and returns it. loaded reports which happened.
	LoadOrStore(key K, value V) (actual V, loaded bool)

	Len() int
}

var (
	_ Store[int, int]  = (*SyncStore[int, int])(nil)
	_ Store[Args, int] = (*ArgsStore[int])(nil)
)

// slot boxes stored values so that nil interface results stay distinguishable from a miss.
type slot[V any] struct {
	value V
}

// SyncStore is a Store over comparable keys backed by sync.Map.
type SyncStore[K comparable, V any] struct {
	m    sync.Map
	size atomic.Int64
}

func NewSyncStore[K comparable, V any]() *SyncStore[K, V] {
	return &SyncStore[K, V]{}
}

func (s *SyncStore[K, V]) Load(key K) (V, bool) {
	e, ok := helper.LoadTyped[slot[V]](&s.m, key)
	return e.value, ok
}

// LoadOrStore does not store under a key that is not equal to itself,
// since such an entry could never be loaded.
func (s *SyncStore[K, V]) LoadOrStore(key K, value V) (V, bool) {
	if key != key {
		return value, false
	}
	e, loaded := helper.MustLoadOrStoreTyped(&s.m, key, slot[V]{value: value})
	if !loaded {
		s.size.Add(1)
	}
	return e.value, loaded
}

func (s *SyncStore[K, V]) Len() int {
	return int(s.size.Load())
}

const argsShards = 32

// ArgsStore is a Store keyed by Args.
//
// Entries are bucketed by Args.Hash and spread over shards by the same hash;
// within a bucket keys are compared with Args.Equal, so colliding hashes never
// share a result.
type ArgsStore[V any] struct {
	shards [argsShards]argsShard[V]
	size   atomic.Int64
}

type argsShard[V any] struct {
	mu      sync.RWMutex
	buckets map[uint64][]argsEntry[V]
}

type argsEntry[V any] struct {
	key   Args
	value V
}

func NewArgsStore[V any]() *ArgsStore[V] {
	s := &ArgsStore[V]{}
	for i := range s.shards {
		s.shards[i].buckets = make(map[uint64][]argsEntry[V])
	}
	return s
}

func (s *ArgsStore[V]) shardOf(key Args) *argsShard[V] {
	return &s.shards[key.Hash()%argsShards]
}

func (s *ArgsStore[V]) Load(key Args) (V, bool) {
	sh := s.shardOf(key)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	return sh.find(key)
}

// LoadOrStore does not store under an unkeyable Args.
func (s *ArgsStore[V]) LoadOrStore(key Args, value V) (V, bool) {
	if !key.Keyable() {
		return value, false
	}
	sh := s.shardOf(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	if v, ok := sh.find(key); ok {
		return v, true
	}
	h := key.Hash()
	sh.buckets[h] = append(sh.buckets[h], argsEntry[V]{key: key, value: value})
	s.size.Add(1)
	return value, false
}

func (s *ArgsStore[V]) Len() int {
	return int(s.size.Load())
}

// find must be called with sh.mu held.
func (sh *argsShard[V]) find(key Args) (V, bool) {
	for _, e := range sh.buckets[key.Hash()] {
		if e.key.Equal(key) {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}
