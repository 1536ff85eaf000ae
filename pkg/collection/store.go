// Package collection implements ordered, uniquely-keyed collections with
// load-once semantics and asynchronous write-through to the kv store.
package collection

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/billfold/billfold/pkg/kv"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotLoaded reports a read or mutation before Load completed. An
// uninitialized store is distinct from a loaded-but-empty one.
var ErrNotLoaded = errors.New("collection: not loaded")

// Options binds a Store to one storage key and teaches it about T's id field.
type Options[T any] struct {
	Key      string
	ID       func(T) string
	AssignID func(T, string) T
}

// Store is an ordered collection of T persisted in full under a single key.
// Mutations apply to memory synchronously; persistence is write-through on a
// per-key writer goroutine.
type Store[T any] struct {
	opts Options[T]
	kv   *kv.Store
	log  *zap.Logger
	w    *writer

	mu     sync.Mutex
	loaded bool
	items  []T
}

func New[T any](store *kv.Store, log *zap.Logger, opts Options[T]) *Store[T] {
	log = log.Named("collection").With(zap.String("key", opts.Key))
	return &Store[T]{
		opts: opts,
		kv:   store,
		log:  log,
		w:    newWriter(store, log, opts.Key),
	}
}

// Load reads the collection once. Absent key means empty collection.
// Subsequent calls are no-ops.
func (s *Store[T]) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return nil
	}
	items, err := kv.Get(ctx, s.kv, s.opts.Key, []T{})
	if err != nil {
		return fmt.Errorf("load %s: %w", s.opts.Key, err)
	}
	if items == nil {
		items = []T{}
	}
	s.items = items
	s.loaded = true
	return nil
}

// List returns the collection in insertion order.
func (s *Store[T]) List() ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return nil, ErrNotLoaded
	}
	return s.snapshotLocked(), nil
}

// Get returns the item matching id.
func (s *Store[T]) Get(id string) (T, bool, error) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return zero, false, ErrNotLoaded
	}
	for _, item := range s.items {
		if s.opts.ID(item) == id {
			return item, true, nil
		}
	}
	return zero, false, nil
}

// Add appends item, assigning a fresh random id when it has none, and
// schedules a full-collection write.
func (s *Store[T]) Add(item T) (T, error) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return zero, ErrNotLoaded
	}
	if s.opts.ID(item) == "" {
		item = s.opts.AssignID(item, uuid.NewString())
	}
	s.items = append(s.items, item)
	s.w.schedule(s.snapshotLocked())
	return item, nil
}

// Update applies mutate to the item matching id. Unknown ids are absorbed as
// no-ops without a persistence write; that is a caller bug, so it is logged.
func (s *Store[T]) Update(id string, mutate func(*T)) (T, bool, error) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return zero, false, ErrNotLoaded
	}
	for i := range s.items {
		if s.opts.ID(s.items[i]) == id {
			mutate(&s.items[i])
			s.w.schedule(s.snapshotLocked())
			return s.items[i], true, nil
		}
	}
	s.log.Warn("update on unknown id", zap.String("id", id))
	return zero, false, nil
}

// Delete removes the item matching id. Idempotent.
func (s *Store[T]) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrNotLoaded
	}
	for i := range s.items {
		if s.opts.ID(s.items[i]) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.w.schedule(s.snapshotLocked())
			return nil
		}
	}
	return nil
}

// Len reports the number of items.
func (s *Store[T]) Len() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return 0, ErrNotLoaded
	}
	return len(s.items), nil
}

// Close flushes pending writes.
func (s *Store[T]) Close() {
	s.w.close()
}

func (s *Store[T]) snapshotLocked() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
