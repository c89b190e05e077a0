package core

import (
	"sync"

	"github.com/go-drift/finestra/pkg/errors"
	"github.com/go-drift/finestra/pkg/resources"
)

var errNilEvent = errors.New("nil event")

// EventDispatcher is the single entry point native callback shims report
// events through.
type EventDispatcher interface {
	DispatchEvent(ev Event)
}

// DispatcherFunc adapts a function to EventDispatcher.
type DispatcherFunc func(ev Event)

// DispatchEvent calls f(ev).
func (f DispatcherFunc) DispatchEvent(ev Event) { f(ev) }

// SharedState holds the application state of one window behind a single
// mutex. Every event handler runs with the lock held, so handlers never
// observe each other's partial mutations.
type SharedState[S any] struct {
	mu       sync.Mutex
	value    *S
	poisoned bool
}

// NewSharedState wraps value. The caller must not touch value directly
// afterwards.
func NewSharedState[S any](value *S) *SharedState[S] {
	if value == nil {
		value = new(S)
	}
	return &SharedState[S]{value: value}
}

// Lock runs f with exclusive access to the state. A panic in f poisons the
// state and is propagated; every later Lock is fatal.
//
// f must not dispatch events or call Lock again: the mutex is not
// reentrant and doing so deadlocks.
func (s *SharedState[S]) Lock(f func(*S)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.poisoned {
		errors.Fatal("core.SharedState.Lock", errors.KindPoisoned,
			"application state was poisoned by a panicking handler")
	}
	defer errors.Repanic("core.SharedState.Lock", func() { s.poisoned = true })
	f(s.value)
}

// Poisoned reports whether a handler panicked while holding the lock.
func (s *SharedState[S]) Poisoned() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.poisoned
}

// MenuHandler receives menu events. It runs under the state lock like any
// other handler.
type MenuHandler[S any] func(item resources.MenuItem, state *S, w Window)

// Dispatcher routes events to the handlers stored in a Registry and invokes
// them against a SharedState.
type Dispatcher[S any] struct {
	registry *Registry[S]
	state    *SharedState[S]
	window   Window
	menu     MenuHandler[S]
}

// NewDispatcher creates a dispatcher for one window. w is passed to every
// handler it invokes.
func NewDispatcher[S any](registry *Registry[S], state *SharedState[S], w Window) *Dispatcher[S] {
	return &Dispatcher[S]{
		registry: registry,
		state:    state,
		window:   w,
	}
}

// OnMenu installs the receiver of MenuInvoked events. Without one, menu
// events are dropped.
func (d *Dispatcher[S]) OnMenu(h MenuHandler[S]) *Dispatcher[S] {
	d.menu = h
	return d
}

// DispatchEvent takes the state lock, resolves the handler for ev and
// invokes it. Events for unknown views or for handler slots that are not set
// are dropped silently. Events are serialized in the order DispatchEvent is
// called.
func (d *Dispatcher[S]) DispatchEvent(ev Event) {
	if ev == nil {
		errors.Report(&errors.Error{
			Op:   "core.Dispatcher.DispatchEvent",
			Kind: errors.KindDispatch,
			Err:  errNilEvent,
		})
		return
	}

	d.state.Lock(func(s *S) {
		switch ev := ev.(type) {
		case Activated:
			if m, ok := d.registry.Lookup(ev.View); ok && m.Click != nil {
				m.Click(s, d.window)
			}
		case ToggleChanged:
			if m, ok := d.registry.Lookup(ev.View); ok && m.Checked != nil {
				m.Checked(s, ev.Checked, d.window)
			}
		case TextChanged:
			if m, ok := d.registry.Lookup(ev.View); ok && m.TextChanged != nil {
				m.TextChanged(s, ev.Text, d.window)
			}
		case MenuInvoked:
			if d.menu != nil {
				d.menu(ev.Item, s, d.window)
			}
		}
	})
}

// Window returns the handle passed to handlers.
func (d *Dispatcher[S]) Window() Window {
	return d.window
}

// State returns the shared state the dispatcher locks.
func (d *Dispatcher[S]) State() *SharedState[S] {
	return d.state
}
