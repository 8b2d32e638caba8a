package gatt

import (
	"sync"
	"testing"

	"gattshim/internal/btif/loopback"
	"gattshim/internal/dispatch"
)

// recorder collects events from the three categories.
type recorder struct {
	mu      sync.Mutex
	client  []ClientEvent
	server  []ServerEvent
	scanner []ScannerEvent
}

func (r *recorder) onClient(ev ClientEvent) {
	r.mu.Lock()
	r.client = append(r.client, ev)
	r.mu.Unlock()
}

func (r *recorder) onServer(ev ServerEvent) {
	r.mu.Lock()
	r.server = append(r.server, ev)
	r.mu.Unlock()
}

func (r *recorder) onScanner(ev ScannerEvent) {
	r.mu.Lock()
	r.scanner = append(r.scanner, ev)
	r.mu.Unlock()
}

func (r *recorder) clientEvents() []ClientEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ClientEvent(nil), r.client...)
}

func (r *recorder) serverEvents() []ServerEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ServerEvent(nil), r.server...)
}

func (r *recorder) scannerEvents() []ScannerEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ScannerEvent(nil), r.scanner...)
}

// lastClient returns the last client event of type T.
func lastClient[T ClientEvent](t *testing.T, r *recorder) T {
	t.Helper()
	evs := r.clientEvents()
	for i := len(evs) - 1; i >= 0; i-- {
		if ev, ok := evs[i].(T); ok {
			return ev
		}
	}
	var zero T
	t.Fatalf("no %T among %d client events", zero, len(evs))
	return zero
}

func lastServer[T ServerEvent](t *testing.T, r *recorder) T {
	t.Helper()
	evs := r.serverEvents()
	for i := len(evs) - 1; i >= 0; i-- {
		if ev, ok := evs[i].(T); ok {
			return ev
		}
	}
	var zero T
	t.Fatalf("no %T among %d server events", zero, len(evs))
	return zero
}

func lastScanner[T ScannerEvent](t *testing.T, r *recorder) T {
	t.Helper()
	evs := r.scannerEvents()
	for i := len(evs) - 1; i >= 0; i-- {
		if ev, ok := evs[i].(T); ok {
			return ev
		}
	}
	var zero T
	t.Fatalf("no %T among %d scanner events", zero, len(evs))
	return zero
}

// newGatt returns an uninitialized Gatt on a fresh loopback stack with its
// own registry.
func newGatt(t *testing.T) (*Gatt, *loopback.Stack) {
	t.Helper()
	s := loopback.New()
	t.Cleanup(s.Close)
	g, err := New(s, WithRegistry(dispatch.NewRegistry()))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	return g, s
}

// startGatt returns an initialized Gatt whose events go to a recorder.
func startGatt(t *testing.T) (*Gatt, *loopback.Stack, *recorder) {
	t.Helper()
	g, s := newGatt(t)
	r := &recorder{}
	if !g.Initialize(r.onClient, r.onServer, r.onScanner) {
		t.Fatalf("initialize failed")
	}
	return g, s, r
}

func expectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	fn()
}
