package client

import (
	"context"
	"sync"

	"github.com/ptypek/listic/internal/model"
)

// Entity names a kind of cached query.
type Entity string

const (
	EntityLastList   Entity = "last-list"
	EntityCategories Entity = "categories"
)

// Key identifies one cached query.
type Key struct {
	Entity  Entity
	OwnerID string
}

type cacheEntry[T any] struct {
	value   T
	present bool
	stale   bool
	// version increases on every write to value.
	version uint64
	// fetchGen increases whenever in-flight fetches are abandoned.
	fetchGen uint64
	cancel   context.CancelFunc
	// pending counts patches whose remote call has not been released yet.
	// Fetch results are dropped while it is non-zero.
	pending int
}

// QueryCache holds query results for a session. All methods are safe for
// concurrent use and hand out copies, never the stored value.
type QueryCache[T any] struct {
	mu      sync.Mutex
	clone   func(T) T
	entries map[Key]*cacheEntry[T]
}

// NewQueryCache creates an empty cache. clone must return a deep copy.
func NewQueryCache[T any](clone func(T) T) *QueryCache[T] {
	return &QueryCache[T]{clone: clone, entries: make(map[Key]*cacheEntry[T])}
}

// NewListCache creates a cache for shopping lists.
func NewListCache() *QueryCache[model.ShoppingListWithItems] {
	return NewQueryCache(model.ShoppingListWithItems.Clone)
}

// NewCategoryCache creates a cache for the category taxonomy.
func NewCategoryCache() *QueryCache[[]model.Category] {
	return NewQueryCache(func(c []model.Category) []model.Category {
		if c == nil {
			return nil
		}
		out := make([]model.Category, len(c))
		copy(out, c)
		return out
	})
}

func (q *QueryCache[T]) entry(key Key) *cacheEntry[T] {
	e, ok := q.entries[key]
	if !ok {
		e = &cacheEntry[T]{}
		q.entries[key] = e
	}
	return e
}

// Peek returns the cached value whether or not it is stale.
func (q *QueryCache[T]) Peek(key Key) (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	var zero T
	e, ok := q.entries[key]
	if !ok || !e.present {
		return zero, false
	}
	return q.clone(e.value), true
}

// Fresh returns the cached value only if it is present and not stale.
func (q *QueryCache[T]) Fresh(key Key) (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	var zero T
	e, ok := q.entries[key]
	if !ok || !e.present || e.stale {
		return zero, false
	}
	return q.clone(e.value), true
}

// Stale reports whether the entry must be refetched before it is trusted.
func (q *QueryCache[T]) Stale(key Key) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	e, ok := q.entries[key]
	return !ok || !e.present || e.stale
}

// Version returns the write counter of key.
func (q *QueryCache[T]) Version(key Key) uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	if e, ok := q.entries[key]; ok {
		return e.version
	}
	return 0
}

// Set stores value as fresh and abandons in-flight fetches.
func (q *QueryCache[T]) Set(key Key, value T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	e := q.entry(key)
	q.abandonFetch(e)
	e.value = q.clone(value)
	e.present = true
	e.stale = false
	e.version++
}

// Invalidate marks key stale so the next read refetches it.
func (q *QueryCache[T]) Invalidate(key Key) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if e, ok := q.entries[key]; ok {
		e.stale = true
	}
}

// BeginFetch registers a fetch for key. The returned context is cancelled
// when a later patch abandons the fetch; gen must be passed to CompleteFetch.
func (q *QueryCache[T]) BeginFetch(ctx context.Context, key Key) (context.Context, uint64, context.CancelFunc) {
	q.mu.Lock()
	defer q.mu.Unlock()
	e := q.entry(key)
	q.abandonFetch(e)
	fetchCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	return fetchCtx, e.fetchGen, cancel
}

// CompleteFetch stores a fetch result unless the fetch was abandoned in the
// meantime or a patch is still pending. It reports whether value was stored.
func (q *QueryCache[T]) CompleteFetch(key Key, gen uint64, value T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	e := q.entry(key)
	if e.fetchGen != gen || e.pending > 0 {
		return false
	}
	e.cancel = nil
	e.value = q.clone(value)
	e.present = true
	e.stale = false
	e.version++
	return true
}

// CancelFetches abandons in-flight fetches of key; their results are discarded.
func (q *QueryCache[T]) CancelFetches(key Key) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if e, ok := q.entries[key]; ok {
		q.abandonFetch(e)
	}
}

func (q *QueryCache[T]) abandonFetch(e *cacheEntry[T]) {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.fetchGen++
}

// Snapshot is the state of an entry before a patch.
type Snapshot[T any] struct {
	Value T
	// Version is the entry version right after the patch was applied.
	Version uint64
}

// Patch abandons in-flight fetches and applies fn to a copy of the cached
// value. fn reports whether it changed anything; if not, or if key is not
// cached, nothing is written and ok is false. A successful patch stays
// pending until Release is called for it.
func (q *QueryCache[T]) Patch(key Key, fn func(T) (T, bool)) (Snapshot[T], bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	e, exists := q.entries[key]
	if !exists || !e.present {
		return Snapshot[T]{}, false
	}
	q.abandonFetch(e)

	previous := q.clone(e.value)
	next, changed := fn(q.clone(e.value))
	if !changed {
		return Snapshot[T]{}, false
	}
	e.value = next
	e.version++
	e.pending++
	return Snapshot[T]{Value: previous, Version: e.version}, true
}

// Update applies fn to a copy of the cached value without abandoning fetches
// or registering a pending patch. It reports whether anything was written.
func (q *QueryCache[T]) Update(key Key, fn func(T) (T, bool)) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	e, ok := q.entries[key]
	if !ok || !e.present {
		return false
	}
	next, changed := fn(q.clone(e.value))
	if !changed {
		return false
	}
	e.value = next
	e.version++
	return true
}

// Release marks one patch of key as finished and returns how many remain.
func (q *QueryCache[T]) Release(key Key) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	e, ok := q.entries[key]
	if !ok {
		return 0
	}
	if e.pending > 0 {
		e.pending--
	}
	return e.pending
}

// Pending returns the number of unreleased patches of key.
func (q *QueryCache[T]) Pending(key Key) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	if e, ok := q.entries[key]; ok {
		return e.pending
	}
	return 0
}

// Revert rolls back one patch. When nothing was written since snap it puts
// snap back; otherwise undo is applied to the current value so that only
// this patch is reverted and newer writes survive. It reports whether
// anything changed.
func (q *QueryCache[T]) Revert(key Key, snap Snapshot[T], undo func(T) (T, bool)) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	e, ok := q.entries[key]
	if !ok || !e.present {
		return false
	}
	if e.version == snap.Version {
		e.value = q.clone(snap.Value)
		e.version++
		return true
	}
	if undo == nil {
		return false
	}
	next, changed := undo(q.clone(e.value))
	if !changed {
		return false
	}
	e.value = next
	e.version++
	return true
}
