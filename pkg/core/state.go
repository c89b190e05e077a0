package core

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/go-drift/finestra/pkg/errors"
)

type originKind uint8

const (
	originUser originKind = iota
	originOwner
	originSystem
)

// Origin tags a State mutation with who caused it. It is used to keep a
// native control from being told about an edit it made itself.
type Origin struct {
	kind  originKind
	owner ViewID
}

var (
	// OriginUser marks application-initiated changes. They reach every listener.
	OriginUser = Origin{kind: originUser}

	// OriginSystem marks framework-internal changes, such as reflecting a
	// window configuration value into the native window.
	OriginSystem = Origin{kind: originSystem}
)

// OwnerOrigin marks a change pushed by the widget that owns the native
// control backing the cell.
func OwnerOrigin(id ViewID) Origin {
	return Origin{kind: originOwner, owner: id}
}

// Owner returns the owning view for owner origins.
func (o Origin) Owner() (ViewID, bool) {
	return o.owner, o.kind == originOwner
}

func (o Origin) String() string {
	switch o.kind {
	case originOwner:
		return fmt.Sprintf("owner(%d)", o.owner)
	case originSystem:
		return "system"
	default:
		return "user"
	}
}

// suppresses reports whether a listener registered with the given origin must
// be skipped for a change with origin o. User changes always propagate; owner
// and system changes skip only the listener registered with the same origin.
func (o Origin) suppresses(registered Origin) bool {
	return o.kind != originUser && o == registered
}

type listener[T any] struct {
	id     uint64
	fn     func(T)
	origin Origin
}

// State is a value cell with change notification. A State is shared by
// pointer; views bind to it and application code sets it from event
// handlers:
//
//	type AppState struct {
//	    Count int
//	    Label *core.State[string]
//	}
//
//	widgets.ButtonOf[AppState]("Press").OnClick(func(s *AppState, _ core.Window) {
//	    s.Count++
//	    s.Label.Set(fmt.Sprintf("Clicked: %d", s.Count))
//	})
//
// State is safe for concurrent use. Listeners for a single Set run
// synchronously, in registration order, before Set returns. A listener must
// not set the cell it listens to.
type State[T any] struct {
	mu        sync.RWMutex
	notifyMu  sync.Mutex
	value     T
	listeners []listener[T]
	nextID    uint64
	poisoned  atomic.Bool
}

// NewState creates a cell holding value, with no listeners.
func NewState[T any](value T) *State[T] {
	return &State[T]{value: value}
}

// TextValue is a State holding a string.
type TextValue = State[string]

func (s *State[T]) checkPoisoned(op string) {
	if s.poisoned.Load() {
		errors.Fatal(op, errors.KindPoisoned, "state cell was poisoned by an earlier panic")
	}
}

// With calls f with the current value under the read lock.
func (s *State[T]) With(f func(T)) {
	s.checkPoisoned("core.State.With")
	s.mu.RLock()
	defer s.mu.RUnlock()
	f(s.value)
}

// WithMut calls f with a pointer to the value under the write lock. Changes
// made through WithMut do not notify listeners. If f panics the cell is
// poisoned and every later access is fatal.
func (s *State[T]) WithMut(f func(*T)) {
	s.checkPoisoned("core.State.WithMut")
	s.mu.Lock()
	defer s.mu.Unlock()
	defer errors.Repanic("core.State.WithMut", func() { s.poisoned.Store(true) })
	f(&s.value)
}

// Get returns a copy of the current value.
func (s *State[T]) Get() T {
	var v T
	s.With(func(value T) { v = value })
	return v
}

// Set replaces the value with OriginUser, notifying every listener.
func (s *State[T]) Set(value T) {
	s.SetWithOrigin(value, OriginUser)
}

// SetWithOrigin notifies the listeners whose registered origin is not
// suppressed by origin, then stores value. Listeners run without the cell's
// lock held and observe the previous value through Get.
func (s *State[T]) SetWithOrigin(value T, origin Origin) {
	s.checkPoisoned("core.State.SetWithOrigin")
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.RLock()
	listeners := s.listeners[:len(s.listeners):len(s.listeners)]
	s.mu.RUnlock()

	for _, l := range listeners {
		if origin.suppresses(l.origin) {
			continue
		}
		l.fn(value)
	}

	s.mu.Lock()
	s.value = value
	s.mu.Unlock()
}

// AddListener registers f for every future change. It is not called for the
// current value. The returned function removes the listener.
func (s *State[T]) AddListener(f func(T)) (remove func()) {
	return s.AddListenerWithOrigin(f, OriginUser)
}

// AddListenerWithOrigin registers f tagged with origin. f is skipped for
// changes carrying the same origin, unless that origin is OriginUser.
// The returned function removes the listener; calling it again is a no-op.
func (s *State[T]) AddListenerWithOrigin(f func(T), origin Origin) (remove func()) {
	s.checkPoisoned("core.State.AddListenerWithOrigin")
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener[T]{id: id, fn: f, origin: origin})
	s.mu.Unlock()
	return func() { s.removeListener(id) }
}

// removeListener copies the slice instead of editing it in place, since a
// concurrent SetWithOrigin may be iterating the old one.
func (s *State[T]) removeListener(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.listeners, func(l listener[T]) bool { return l.id == id })
	if i < 0 {
		return
	}
	s.listeners = slices.Concat(s.listeners[:i], s.listeners[i+1:])
}

// ListenerCount returns the number of registered listeners.
func (s *State[T]) ListenerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners)
}

func (s *State[T]) String() string {
	return fmt.Sprintf("State{%v}", s.Get())
}

// Read calls f with the value of s under the read lock and returns its result.
func Read[T, R any](s *State[T], f func(T) R) R {
	var r R
	s.With(func(v T) { r = f(v) })
	return r
}

// Update calls f with a pointer to the value of s under the write lock and
// returns its result.
func Update[T, R any](s *State[T], f func(*T) R) R {
	var r R
	s.WithMut(func(v *T) { r = f(v) })
	return r
}

// Value is either a raw value, applied once when a view is built, or a
// State the view stays bound to. The zero Value is the raw zero value.
type Value[T any] struct {
	raw   T
	state *State[T]
}

// Raw wraps a plain value.
func Raw[T any](v T) Value[T] {
	return Value[T]{raw: v}
}

// Bind wraps a State; views built from the Value follow its changes.
func Bind[T any](s *State[T]) Value[T] {
	return Value[T]{state: s}
}

// Get returns the current value.
func (v Value[T]) Get() T {
	if v.state != nil {
		return v.state.Get()
	}
	return v.raw
}

// With calls f with the current value.
func (v Value[T]) With(f func(T)) {
	if v.state != nil {
		v.state.With(f)
		return
	}
	f(v.raw)
}

// State returns the bound State, if any.
func (v Value[T]) State() (*State[T], bool) {
	return v.state, v.state != nil
}
