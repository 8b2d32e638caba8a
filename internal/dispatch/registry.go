// Package dispatch routes typed events to the single handler registered for
// their category.
//
// A category is a Go type, usually a sealed event interface. The handler for
// a category is set at most once and never replaced; after that, Dispatch
// reads it without contention and calls it on the dispatching goroutine.
// Handlers may be invoked concurrently from several goroutines.
package dispatch

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// ErrAlreadyRegistered is returned by Register when the category already
// has a handler.
var ErrAlreadyRegistered = errors.New("dispatch: handler already registered")

// Category names an event category.
type Category struct{ t reflect.Type }

// String returns the category's type name.
func (c Category) String() string {
	if c.t == nil {
		return "<nil>"
	}
	return c.t.String()
}

// CategoryOf returns the category of E.
func CategoryOf[E any]() Category {
	return Category{t: reflect.TypeOf((*E)(nil)).Elem()}
}

// Registry holds one handler per category.
type Registry struct {
	mu       sync.RWMutex
	handlers map[reflect.Type]any
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[reflect.Type]any)}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// Register binds h as the handler for category E. A second registration for
// the same category fails with ErrAlreadyRegistered and keeps the first
// handler.
func Register[E any](r *Registry, h func(E)) error {
	if h == nil {
		return fmt.Errorf("dispatch: nil handler for %s", CategoryOf[E]())
	}
	c := CategoryOf[E]()
	r.mu.Lock()
	if _, ok := r.handlers[c.t]; ok {
		r.mu.Unlock()
		registrationsTotal.WithLabelValues(c.String(), "conflict").Inc()
		zlog.Warn().Str("category", c.String()).Msg("handler already registered")
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, c)
	}
	r.handlers[c.t] = h
	r.mu.Unlock()
	registrationsTotal.WithLabelValues(c.String(), "ok").Inc()
	zlog.Debug().Str("category", c.String()).Msg("handler registered")
	return nil
}

// Lookup returns the handler bound to category E.
func Lookup[E any](r *Registry) (func(E), bool) {
	r.mu.RLock()
	h, ok := r.handlers[CategoryOf[E]().t]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return h.(func(E)), true
}

// Registered reports whether category E has a handler.
func Registered[E any](r *Registry) bool {
	_, ok := Lookup[E](r)
	return ok
}

// Dispatch delivers ev to the handler of category E on the calling
// goroutine. Dispatching to a category without a handler is a programming
// error and panics.
func Dispatch[E any](r *Registry, ev E) {
	h, ok := Lookup[E](r)
	if !ok {
		panic(fmt.Sprintf("dispatch: no handler registered for %s", CategoryOf[E]()))
	}
	eventsTotal.WithLabelValues(CategoryOf[E]().String()).Inc()
	h(ev)
}

// Categories lists the categories that have a handler, sorted by name.
func (r *Registry) Categories() []Category {
	r.mu.RLock()
	out := make([]Category, 0, len(r.handlers))
	for t := range r.handlers {
		out = append(out, Category{t: t})
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Reset drops every handler. Only tests should call it.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.handlers = make(map[reflect.Type]any)
	r.mu.Unlock()
}
