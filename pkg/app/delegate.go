package app

import (
	"github.com/go-drift/finestra/pkg/core"
	"github.com/go-drift/finestra/pkg/resources"
	"github.com/go-drift/finestra/pkg/widgets"
)

// Delegate customizes the lifecycle of an application with state type S.
// Every method runs on the UI thread while the application state is locked,
// so the state can be read and modified freely.
//
// Embed DelegateBase to implement only the methods you need.
type Delegate[S any] interface {
	// DidLaunch is called once the backend is up, before the main window
	// is configured.
	DidLaunch(state *S)

	// ConfigureMainWindow returns the title, size, theme and menu bar of
	// the main window. A nil configuration uses the defaults.
	ConfigureMainWindow(state *S) *WindowConfiguration

	// MakeContentView describes the content of the main window. It is
	// called again on every Window.Rebuild.
	MakeContentView(state *S, w core.Window) widgets.View[S]

	// WillShowWindow is called after the content is built, right before
	// the window becomes visible.
	WillShowWindow(w core.Window, state *S)

	// DidInvokeMenuAction is called when an item of the menu bar is
	// chosen.
	DidInvokeMenuAction(item resources.MenuItem, state *S, w core.Window)
}

// DelegateBase implements every Delegate method as a no-op. The content
// view it makes is empty.
type DelegateBase[S any] struct{}

func (DelegateBase[S]) DidLaunch(*S) {}

func (DelegateBase[S]) ConfigureMainWindow(*S) *WindowConfiguration { return nil }

func (DelegateBase[S]) MakeContentView(*S, core.Window) widgets.View[S] { return nil }

func (DelegateBase[S]) WillShowWindow(core.Window, *S) {}

func (DelegateBase[S]) DidInvokeMenuAction(resources.MenuItem, *S, core.Window) {}
