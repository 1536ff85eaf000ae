package collection

import (
	"context"
	"fmt"
	"sync"

	"github.com/billfold/billfold/pkg/kv"
	"go.uber.org/zap"
)

// Value is a single persisted record under one key, with the same load-once
// and ordered write-through semantics as Store.
type Value[T any] struct {
	key      string
	fallback T
	kv       *kv.Store
	w        *writer

	mu     sync.Mutex
	loaded bool
	v      T
}

func NewValue[T any](store *kv.Store, log *zap.Logger, key string, fallback T) *Value[T] {
	log = log.Named("collection").With(zap.String("key", key))
	return &Value[T]{
		key:      key,
		fallback: fallback,
		kv:       store,
		w:        newWriter(store, log, key),
	}
}

func (v *Value[T]) Load(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.loaded {
		return nil
	}
	val, err := kv.Get(ctx, v.kv, v.key, v.fallback)
	if err != nil {
		return fmt.Errorf("load %s: %w", v.key, err)
	}
	v.v = val
	v.loaded = true
	return nil
}

func (v *Value[T]) Get() (T, error) {
	var zero T
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.loaded {
		return zero, ErrNotLoaded
	}
	return v.v, nil
}

// Set overwrites the record and schedules a write.
func (v *Value[T]) Set(val T) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.loaded {
		return ErrNotLoaded
	}
	v.v = val
	v.w.schedule(val)
	return nil
}

func (v *Value[T]) Close() {
	v.w.close()
}
