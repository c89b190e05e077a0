// Package headless implements an in-memory backend. Views are plain Go
// values recording the properties set on them, the message loop is a queue
// of closures and timers are driven by the runtime's timers. Importing the
// package registers it as backend.Headless.
package headless

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/go-drift/finestra/pkg/backend"
	"github.com/go-drift/finestra/pkg/core"
	"github.com/go-drift/finestra/pkg/errors"
	"github.com/go-drift/finestra/pkg/resources"
)

func init() {
	backend.Register(backend.Headless, func(cfg backend.HostConfig) (backend.Host, error) {
		return New(cfg), nil
	})
}

// Host is an in-memory window.
type Host struct {
	id      uuid.UUID
	appName string
	toolkit *Toolkit

	mu       sync.Mutex
	title    string
	theme    resources.Theme
	width    float64
	height   float64
	menuBar  *resources.MenuBar
	menuSink core.EventDispatcher
	content  backend.NativeView
	shown    bool
	dialogs  []*Dialog
	cursors  []resources.Cursor
	queue    []func()
	closed   bool

	running atomic.Bool
	wake    chan struct{}
	done    chan struct{}
	once    sync.Once
}

// New creates a hidden window.
func New(cfg backend.HostConfig) *Host {
	return &Host{
		id:      uuid.New(),
		appName: cfg.AppName,
		title:   cfg.Title,
		toolkit: NewToolkit(),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

func (h *Host) ID() uuid.UUID            { return h.id }
func (h *Host) Kind() backend.Kind       { return backend.Headless }
func (h *Host) Toolkit() backend.Toolkit { return h.toolkit }

// Views returns the toolkit with its headless-specific lookups.
func (h *Host) Views() *Toolkit { return h.toolkit }

// AppName returns the application name the host was opened with.
func (h *Host) AppName() string { return h.appName }

func (h *Host) SetTitle(title string) {
	h.mu.Lock()
	h.title = title
	h.mu.Unlock()
}

func (h *Host) Title() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.title
}

func (h *Host) SetTheme(theme resources.Theme) {
	h.mu.Lock()
	h.theme = theme
	h.mu.Unlock()
}

func (h *Host) Theme() resources.Theme {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.theme
}

func (h *Host) SetContentSize(width, height float64) {
	h.mu.Lock()
	h.width, h.height = width, height
	h.mu.Unlock()
}

func (h *Host) ContentSize() (width, height float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.width, h.height
}

func (h *Host) SetMenuBar(bar *resources.MenuBar, dispatcher core.EventDispatcher) {
	h.mu.Lock()
	h.menuBar = bar
	h.menuSink = dispatcher
	h.mu.Unlock()
}

func (h *Host) MenuBar() *resources.MenuBar {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.menuBar
}

// InvokeMenu simulates choosing item from the menu bar. It reports false
// when no menu bar is installed or the bar does not contain item.
func (h *Host) InvokeMenu(item resources.MenuItem) bool {
	h.mu.Lock()
	bar, sink := h.menuBar, h.menuSink
	h.mu.Unlock()
	if bar == nil || sink == nil || !bar.Contains(item) {
		return false
	}
	sink.DispatchEvent(core.MenuInvoked{Item: item})
	return true
}

func (h *Host) SetContent(view backend.NativeView) {
	h.mu.Lock()
	h.content = view
	h.mu.Unlock()
}

// Content returns the current content view.
func (h *Host) Content() *View {
	h.mu.Lock()
	defer h.mu.Unlock()
	v, _ := h.content.(*View)
	return v
}

func (h *Host) Show() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return backend.ErrClosed
	}
	if h.shown {
		return backend.ErrAlreadyShowing
	}
	h.shown = true
	return nil
}

// Shown reports whether Show succeeded.
func (h *Host) Shown() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.shown
}

// Post queues f for the message loop.
func (h *Host) Post(f func()) bool {
	if f == nil {
		return false
	}
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return false
	}
	h.queue = append(h.queue, f)
	h.mu.Unlock()

	select {
	case h.wake <- struct{}{}:
	default:
	}
	return true
}

func (h *Host) drain() []func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	q := h.queue
	h.queue = nil
	return q
}

// Flush runs every queued closure on the calling goroutine, including those
// queued by the closures themselves. Tests use it instead of Run.
func (h *Host) Flush() {
	for {
		q := h.drain()
		if len(q) == 0 {
			return
		}
		for _, f := range q {
			f()
		}
	}
}

// Run executes posted closures until Close is called or ctx is done. The
// goroutine calling Run is the UI thread.
func (h *Host) Run(ctx context.Context) error {
	if !h.running.CompareAndSwap(false, true) {
		return &errors.Error{
			Op:   "headless.Host.Run",
			Kind: errors.KindPlatform,
			Err:  errors.New("message loop already running"),
		}
	}
	defer h.running.Store(false)

	for {
		h.Flush()
		select {
		case <-h.wake:
		case <-h.done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close ends the message loop. Closures still queued are dropped.
func (h *Host) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		h.queue = nil
		h.mu.Unlock()
		close(h.done)
	})
}

// Done is closed once Close has been called.
func (h *Host) Done() <-chan struct{} { return h.done }

// ScheduleTimer posts t.Action to the message loop after t.Delay.
func (h *Host) ScheduleTimer(t resources.Timer) {
	time.AfterFunc(t.Delay, func() { h.Post(t.Fire) })
}

func (h *Host) PushCursor(c resources.Cursor) {
	h.mu.Lock()
	h.cursors = append(h.cursors, c)
	h.mu.Unlock()
}

func (h *Host) PopCursor() {
	h.mu.Lock()
	if n := len(h.cursors); n > 0 {
		h.cursors = h.cursors[:n-1]
	}
	h.mu.Unlock()
}

// Cursor returns the cursor on top of the cursor stack, or the default
// cursor when the stack is empty.
func (h *Host) Cursor() resources.Cursor {
	h.mu.Lock()
	defer h.mu.Unlock()
	if n := len(h.cursors); n > 0 {
		return h.cursors[n-1]
	}
	return resources.NewSystemCursor(resources.CursorDefault)
}

// CreateDialog starts a dialog titled like the window.
func (h *Host) CreateDialog(text string) core.DialogAPI {
	h.mu.Lock()
	defer h.mu.Unlock()
	d := &Dialog{Text: text, Title: h.title, host: h}
	h.dialogs = append(h.dialogs, d)
	return d
}

// Dialogs returns the dialogs that have been shown.
func (h *Host) Dialogs() []Dialog {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []Dialog
	for _, d := range h.dialogs {
		if d.Shown {
			out = append(out, *d)
		}
	}
	return out
}

// Dialog is a recorded message box. Its fields are guarded by the host's
// lock; read them through Host.Dialogs.
type Dialog struct {
	Kind  core.DialogKind
	Text  string
	Title string
	Shown bool

	host *Host
}

func (d *Dialog) update(f func()) {
	if d.host == nil {
		f()
		return
	}
	d.host.mu.Lock()
	defer d.host.mu.Unlock()
	f()
}

func (d *Dialog) SetKind(kind core.DialogKind) { d.update(func() { d.Kind = kind }) }
func (d *Dialog) SetText(text string)          { d.update(func() { d.Text = text }) }
func (d *Dialog) SetTitle(title string)        { d.update(func() { d.Title = title }) }
func (d *Dialog) Show()                        { d.update(func() { d.Shown = true }) }

var _ backend.Host = (*Host)(nil)
