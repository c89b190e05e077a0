package core

import (
	"sync"
	"sync/atomic"

	"github.com/go-drift/finestra/pkg/errors"
)

// HandlerMap holds the optional application callbacks of one view. A nil
// slot means the view has no behavior for that kind of event.
type HandlerMap[S any] struct {
	Click       func(state *S, w Window)
	Checked     func(state *S, checked bool, w Window)
	TextChanged func(state *S, text string, w Window)
}

// IsEmpty reports whether no slot is set.
func (m *HandlerMap[S]) IsEmpty() bool {
	return m.Click == nil && m.Checked == nil && m.TextChanged == nil
}

// Take moves the callbacks out of m and leaves m empty, so a view
// descriptor never holds live callbacks once its native counterpart exists.
func (m *HandlerMap[S]) Take() HandlerMap[S] {
	out := *m
	*m = HandlerMap[S]{}
	return out
}

const registryShards = 32

type registryShard[S any] struct {
	mu      sync.RWMutex
	entries map[ViewID]HandlerMap[S]
}

// Registry maps view identities to their handler maps. Entries are written
// once while a tree is built and read on every dispatch; locking is per
// shard so lookups for unrelated views do not contend.
type Registry[S any] struct {
	shards [registryShards]registryShard[S]
	size   atomic.Int64
}

// NewRegistry creates an empty registry.
func NewRegistry[S any]() *Registry[S] {
	r := &Registry[S]{}
	for i := range r.shards {
		r.shards[i].entries = make(map[ViewID]HandlerMap[S])
	}
	return r
}

func (r *Registry[S]) shard(id ViewID) *registryShard[S] {
	return &r.shards[uint32(id)%registryShards]
}

// Insert stores m under id. Handler maps are write-once: inserting a second
// map for the same identity is fatal.
func (r *Registry[S]) Insert(id ViewID, m HandlerMap[S]) {
	sh := r.shard(id)
	sh.mu.Lock()
	_, exists := sh.entries[id]
	if !exists {
		sh.entries[id] = m
	}
	sh.mu.Unlock()

	if exists {
		errors.Fatal("core.Registry.Insert", errors.KindDuplicate,
			"handlers for %s registered twice", id)
	}
	r.size.Add(1)
}

// Lookup returns the handler map stored under id. A missing entry is not an
// error; callers treat it as "no behavior configured".
func (r *Registry[S]) Lookup(id ViewID) (HandlerMap[S], bool) {
	sh := r.shard(id)
	sh.mu.RLock()
	m, ok := sh.entries[id]
	sh.mu.RUnlock()
	return m, ok
}

// Len returns the number of registered views.
func (r *Registry[S]) Len() int {
	return int(r.size.Load())
}
