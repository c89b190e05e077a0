package backend

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-drift/finestra/pkg/core"
	"github.com/go-drift/finestra/pkg/errors"
	"github.com/go-drift/finestra/pkg/resources"
)

var (
	// ErrBackendUnavailable indicates the requested backend cannot run on
	// this operating system or has not been linked into the program.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrAlreadyShowing indicates Show was called on a visible window.
	ErrAlreadyShowing = errors.New("window is already shown")

	// ErrClosed indicates the host was closed.
	ErrClosed = errors.New("host closed")
)

// HostConfig carries the values a backend needs to create its window.
type HostConfig struct {
	// AppName is the application name shown by the operating system.
	AppName string
	// Title is the initial window title.
	Title string
}

// Host is one native window together with the UI thread that owns it.
// All methods except Post, Close and the WindowDelegator timer methods must
// be called on the UI thread.
type Host interface {
	core.WindowDelegator

	// Kind reports which backend created the host.
	Kind() Kind
	// Toolkit returns the constructors for controls inside this window.
	Toolkit() Toolkit

	SetTitle(title string)
	SetTheme(theme resources.Theme)
	SetContentSize(width, height float64)
	// SetMenuBar installs the application menu. Menu actions are reported
	// to the dispatcher as core.MenuInvoked events.
	SetMenuBar(bar *resources.MenuBar, dispatcher core.EventDispatcher)
	// SetContent replaces the window's content view.
	SetContent(view NativeView)

	// Show makes the window visible. Showing a visible window returns
	// ErrAlreadyShowing.
	Show() error
	// Run pumps the message loop until the window closes or ctx is done.
	Run(ctx context.Context) error
	// Post schedules f on the UI thread. It is safe to call from any
	// goroutine and reports false once the host is closed.
	Post(f func()) bool
	// Close ends the message loop.
	Close()
}

// HostFactory opens a Host.
type HostFactory func(cfg HostConfig) (Host, error)

var (
	factoriesMu sync.RWMutex
	factories   = make(map[Kind]HostFactory)
)

// Register makes a backend available under kind. It is meant to be called
// from the backend package's init function.
func Register(kind Kind, f HostFactory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	if f == nil {
		delete(factories, kind)
		return
	}
	factories[kind] = f
}

// Registered reports whether a backend has been registered for kind.
func Registered(kind Kind) bool {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()
	_, ok := factories[kind]
	return ok
}

// Open creates a Host using the factory registered for kind.
func Open(kind Kind, cfg HostConfig) (Host, error) {
	factoriesMu.RLock()
	f, ok := factories[kind]
	factoriesMu.RUnlock()

	if !ok || !kind.Available() {
		return nil, fmt.Errorf("%w: %s on this system", ErrBackendUnavailable, kind)
	}
	return f(cfg)
}
