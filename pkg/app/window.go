package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-drift/finestra/pkg/backend"
	"github.com/go-drift/finestra/pkg/backend/appkit"
	"github.com/go-drift/finestra/pkg/config"
	"github.com/go-drift/finestra/pkg/core"
	"github.com/go-drift/finestra/pkg/errors"
	"github.com/go-drift/finestra/pkg/platform"
	"github.com/go-drift/finestra/pkg/resources"
	"github.com/go-drift/finestra/pkg/widgets"
)

// Window is the running main window of an application.
//
// The window owns the handler registry of its current content. Rebuild
// replaces the content, registry and dispatcher in one step; nothing is
// diffed or reused between builds.
type Window[S any] struct {
	host     backend.Host
	delegate Delegate[S]
	state    *core.SharedState[S]
	handle   core.Window
	config   *WindowConfiguration

	mu         sync.Mutex
	menuBar    *resources.MenuBar
	registry   *core.Registry[S]
	dispatcher *core.Dispatcher[S]
	bindings   *widgets.Bindings
	contentID  core.ViewID
}

func newWindow[S any](host backend.Host, d Delegate[S], state *core.SharedState[S]) *Window[S] {
	return &Window[S]{
		host:     host,
		delegate: d,
		state:    state,
		handle:   core.NewWindow(host),
	}
}

func (w *Window[S]) launch(file *config.Window) error {
	var conf *WindowConfiguration
	w.state.Lock(func(s *S) {
		w.delegate.DidLaunch(s)
		conf = w.delegate.ConfigureMainWindow(s)
	})
	conf = conf.resolve(file)
	w.config = conf

	w.host.SetTitle(conf.Title.Get())
	if s, ok := conf.Title.State(); ok {
		s.AddListenerWithOrigin(w.host.SetTitle, core.OriginSystem)
	}
	w.host.SetTheme(conf.Theme.Get())
	if s, ok := conf.Theme.State(); ok {
		s.AddListenerWithOrigin(w.host.SetTheme, core.OriginSystem)
	}

	bar := conf.MenuBar
	if w.host.Kind() == backend.AppKit {
		if bar == nil {
			bar = resources.NewMenuBar()
		}
		bar.FillStandardMenus()
	}
	if bar != nil {
		w.mu.Lock()
		w.menuBar = bar
		w.mu.Unlock()
		w.host.SetMenuBar(bar, w)
	}

	if conf.Width > 0 && conf.Height > 0 {
		w.host.SetContentSize(conf.Width, conf.Height)
	}

	w.Rebuild()

	w.state.Lock(func(s *S) {
		w.delegate.WillShowWindow(w.handle, s)
	})
	return w.host.Show()
}

// Rebuild asks the delegate for a new content view and replaces the current
// one. The previous content's bindings are released, so its controls stop
// following state cells. It must run on the UI thread and must not be
// called from an event handler, which already holds the state lock;
// handlers use RequestRebuild.
func (w *Window[S]) Rebuild() {
	registry := core.NewRegistry[S]()
	dispatcher := core.NewDispatcher(registry, w.state, w.handle).
		OnMenu(w.delegate.DidInvokeMenuAction)
	tree := core.NewViewTree[S](registry, dispatcher)

	// The window's content area is the parent of the root view.
	contentID := tree.ExchangeEventsForID(core.HandlerMap[S]{})
	tree.SetParentID(contentID)

	var root widgets.View[S]
	w.state.Lock(func(s *S) {
		root = w.delegate.MakeContentView(s, w.handle)
	})
	ctx := widgets.NewBuildContext(tree, w.host.Toolkit())
	view := widgets.Build(ctx, root)

	w.mu.Lock()
	old := w.bindings
	w.registry = registry
	w.dispatcher = dispatcher
	w.bindings = ctx.Bindings
	w.contentID = contentID
	w.mu.Unlock()

	old.Release()
	w.host.SetContent(view)
}

// RequestRebuild schedules Rebuild on the UI thread. It is safe to call
// from handlers and other goroutines.
func (w *Window[S]) RequestRebuild() bool {
	return w.host.Post(w.Rebuild)
}

// DispatchEvent routes ev to the dispatcher of the current content. The
// menu bar reports through the window, so menu events reach the delegate
// across rebuilds. Menu events for items that are not in the window's
// menu bar, or that AppKit handles itself, are reported and dropped.
func (w *Window[S]) DispatchEvent(ev core.Event) {
	w.mu.Lock()
	d, bar := w.dispatcher, w.menuBar
	w.mu.Unlock()
	if d == nil {
		return
	}
	if m, ok := ev.(core.MenuInvoked); ok && !w.menuItemLive(bar, m.Item) {
		errors.Report(&errors.Error{
			Op:   "app.Window.DispatchEvent",
			Kind: errors.KindDispatch,
			Err:  fmt.Errorf("menu item %s is not in the menu bar", m.Item),
		})
		return
	}
	d.DispatchEvent(ev)
}

func (w *Window[S]) menuItemLive(bar *resources.MenuBar, item resources.MenuItem) bool {
	if bar == nil || item.IsSeparator() || !bar.Contains(item) {
		return false
	}
	if w.host.Kind() == backend.AppKit {
		_, builtin := appkit.StandardAction(item)
		return !builtin
	}
	return true
}

// Bindings returns the state bindings of the current content.
func (w *Window[S]) Bindings() *widgets.Bindings {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.bindings
}

// Bridge returns a bridge that decodes events from an out-of-process shim
// with codec and delivers them to this window on its UI thread.
func (w *Window[S]) Bridge(codec platform.MessageCodec) *platform.Bridge {
	return platform.NewBridge(codec, w).WithQueue(platform.NewMainQueue(w.host.Post))
}

// Run pumps messages until the window closes or ctx is done.
func (w *Window[S]) Run(ctx context.Context) error {
	return w.host.Run(ctx)
}

// Close closes the window and ends Run.
func (w *Window[S]) Close() {
	w.host.Close()
}

// Host returns the backend window.
func (w *Window[S]) Host() backend.Host { return w.host }

// Handle returns the handle passed to handlers and delegate methods.
func (w *Window[S]) Handle() core.Window { return w.handle }

// State returns the locked application state.
func (w *Window[S]) State() *core.SharedState[S] { return w.state }

// Configuration returns the configuration the window was launched with,
// with defaults filled in.
func (w *Window[S]) Configuration() *WindowConfiguration { return w.config }

// Registry returns the handler registry of the current content.
func (w *Window[S]) Registry() *core.Registry[S] {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.registry
}

// ContentID returns the identity reserved for the content area of the
// current build.
func (w *Window[S]) ContentID() core.ViewID {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.contentID
}
