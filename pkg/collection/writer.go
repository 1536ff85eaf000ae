package collection

import (
	"context"
	"sync"
	"time"

	"github.com/billfold/billfold/pkg/kv"
	"go.uber.org/zap"
)

const writeTimeout = 5 * time.Second

// writer persists full snapshots for one storage key on a single goroutine,
// so writes to a key are applied in the order their mutations occurred.
// Bursts coalesce to the newest snapshot; the stored value never regresses.
type writer struct {
	key string
	kv  *kv.Store
	log *zap.Logger

	mu      sync.Mutex
	pending any
	dirty   bool

	wake chan struct{}
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

func newWriter(store *kv.Store, log *zap.Logger, key string) *writer {
	w := &writer{
		key:  key,
		kv:   store,
		log:  log,
		wake: make(chan struct{}, 1),
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go w.run()
	return w
}

// schedule queues snapshot for persistence. Never blocks the mutation path.
func (w *writer) schedule(snapshot any) {
	w.mu.Lock()
	w.pending = snapshot
	w.dirty = true
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

func (w *writer) run() {
	defer close(w.done)
	for {
		select {
		case <-w.wake:
			w.drain()
		case <-w.stop:
			w.drain()
			return
		}
	}
}

func (w *writer) drain() {
	for {
		w.mu.Lock()
		if !w.dirty {
			w.mu.Unlock()
			return
		}
		snapshot := w.pending
		w.dirty = false
		w.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := kv.Set(ctx, w.kv, w.key, snapshot)
		cancel()
		if err != nil {
			// Non-fatal: in-memory state stays authoritative for the
			// session and the next mutation re-synchronizes storage.
			w.log.Warn("persist failed",
				zap.String("key", w.key),
				zap.Error(err),
			)
		}
	}
}

// close flushes pending writes and stops the goroutine.
func (w *writer) close() {
	w.once.Do(func() { close(w.stop) })
	<-w.done
}
