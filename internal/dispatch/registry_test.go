package dispatch

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

type pingEvent interface{ isPing() }

type ping struct{ n int }

func (ping) isPing() {}

type otherEvent struct{ s string }

func TestRegisterTwiceKeepsFirstHandler(t *testing.T) {
	r := NewRegistry()
	var got []string
	if err := Register(r, func(e pingEvent) { got = append(got, "first") }); err != nil {
		t.Fatalf("first register: %v", err)
	}
	err := Register(r, func(e pingEvent) { got = append(got, "second") })
	if !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}
	Dispatch[pingEvent](r, ping{n: 1})
	if len(got) != 1 || got[0] != "first" {
		t.Fatalf("expected first handler only, got %v", got)
	}
}

func TestRegisterNilHandler(t *testing.T) {
	r := NewRegistry()
	if err := Register[pingEvent](r, nil); err == nil {
		t.Fatalf("expected error for nil handler")
	}
	if Registered[pingEvent](r) {
		t.Fatalf("nil handler must not bind the category")
	}
}

func TestDispatchWithoutHandlerPanics(t *testing.T) {
	r := NewRegistry()
	defer func() {
		v := recover()
		if v == nil {
			t.Fatalf("expected panic")
		}
		if !strings.Contains(v.(string), "pingEvent") {
			t.Fatalf("panic should name the category: %v", v)
		}
	}()
	Dispatch[pingEvent](r, ping{})
}

func TestCategoriesAreIndependent(t *testing.T) {
	r := NewRegistry()
	var pings, others int
	_ = Register(r, func(pingEvent) { pings++ })
	_ = Register(r, func(otherEvent) { others++ })
	Dispatch[pingEvent](r, ping{})
	Dispatch(r, otherEvent{s: "x"})
	Dispatch(r, otherEvent{s: "y"})
	if pings != 1 || others != 2 {
		t.Fatalf("pings=%d others=%d", pings, others)
	}
	cats := r.Categories()
	if len(cats) != 2 {
		t.Fatalf("expected 2 categories, got %v", cats)
	}
}

func TestDispatchPreservesOrderOnOneGoroutine(t *testing.T) {
	r := NewRegistry()
	var seq []int
	_ = Register(r, func(e pingEvent) { seq = append(seq, e.(ping).n) })
	for i := 0; i < 100; i++ {
		Dispatch[pingEvent](r, ping{n: i})
	}
	for i, n := range seq {
		if n != i {
			t.Fatalf("out of order at %d: %d", i, n)
		}
	}
}

func TestConcurrentRegistrationBindsOnce(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	var mu sync.Mutex
	ok := 0
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if Register(r, func(otherEvent) {}) == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if ok != 1 {
		t.Fatalf("expected exactly one successful registration, got %d", ok)
	}
}

func TestConcurrentDispatch(t *testing.T) {
	r := NewRegistry()
	var mu sync.Mutex
	total := 0
	_ = Register(r, func(e pingEvent) {
		mu.Lock()
		total += e.(ping).n
		mu.Unlock()
	})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				Dispatch[pingEvent](r, ping{n: 1})
			}
		}()
	}
	wg.Wait()
	if total != 800 {
		t.Fatalf("expected 800, got %d", total)
	}
}

func TestReset(t *testing.T) {
	r := NewRegistry()
	_ = Register(r, func(otherEvent) {})
	r.Reset()
	if Registered[otherEvent](r) {
		t.Fatalf("expected empty registry after reset")
	}
	if err := Register(r, func(otherEvent) {}); err != nil {
		t.Fatalf("register after reset: %v", err)
	}
}

func TestDispatchMetrics(t *testing.T) {
	r := NewRegistry()
	_ = Register(r, func(pingEvent) {})
	cat := CategoryOf[pingEvent]().String()
	before := testutil.ToFloat64(eventsTotal.WithLabelValues(cat))
	Dispatch[pingEvent](r, ping{})
	Dispatch[pingEvent](r, ping{})
	if got := testutil.ToFloat64(eventsTotal.WithLabelValues(cat)) - before; got != 2 {
		t.Fatalf("expected 2 dispatches counted, got %v", got)
	}
	conflicts := testutil.ToFloat64(registrationsTotal.WithLabelValues(cat, "conflict"))
	_ = Register(r, func(pingEvent) {})
	if got := testutil.ToFloat64(registrationsTotal.WithLabelValues(cat, "conflict")) - conflicts; got != 1 {
		t.Fatalf("expected 1 conflict counted, got %v", got)
	}
}

func TestDefaultIsShared(t *testing.T) {
	if Default() != Default() {
		t.Fatalf("Default must return the same registry")
	}
}
