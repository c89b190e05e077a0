// Package app runs a finestra application: it opens the backend, drives the
// delegate through launch and keeps the main window's content view wired to
// the application state.
//
//	type Counter struct{ clicks int }
//
//	type delegate struct{ app.DelegateBase[Counter] }
//
//	func (delegate) MakeContentView(s *Counter, w core.Window) widgets.View[Counter] {
//	    return widgets.ButtonOf[Counter]("Click").OnClick(func(s *Counter, w core.Window) {
//	        s.clicks++
//	    })
//	}
//
//	err := app.New[Counter](delegate{}, nil).Run(ctx)
package app

import (
	"context"

	"github.com/go-drift/finestra/pkg/backend"
	"github.com/go-drift/finestra/pkg/config"
	"github.com/go-drift/finestra/pkg/core"
	"github.com/go-drift/finestra/pkg/errors"
	"github.com/go-drift/finestra/pkg/platform"
)

// App describes an application with state type S.
type App[S any] struct {
	// Delegate receives the lifecycle callbacks. Nil uses DelegateBase.
	Delegate Delegate[S]
	// State is the application state. Nil starts from the zero value.
	State *S
	// Backend selects the native toolkit.
	Backend backend.Kind

	config *config.Resolved
}

// New creates an application on the default backend of the operating
// system.
func New[S any](d Delegate[S], state *S) *App[S] {
	return &App[S]{
		Delegate: d,
		State:    state,
		Backend:  backend.Default(),
	}
}

// WithBackend selects the backend.
func (a *App[S]) WithBackend(kind backend.Kind) *App[S] {
	a.Backend = kind
	return a
}

// WithConfig applies a resolved finestra.yaml: it selects the configured
// backend and supplies the window values the delegate leaves unset. Call
// WithBackend afterwards to override the backend.
func (a *App[S]) WithConfig(cfg *config.Resolved) *App[S] {
	a.config = cfg
	if cfg != nil {
		a.Backend = cfg.Backend
	}
	return a
}

// Start opens the backend and launches the main window on the calling
// goroutine, which becomes the UI thread. The window is visible when Start
// returns; call Window.Run to pump its messages. platform.Dispatch posts to
// the new window from then on.
func (a *App[S]) Start() (*Window[S], error) {
	const op = "app.Start"

	hostCfg := backend.HostConfig{}
	var file *config.Window
	if a.config != nil {
		hostCfg.AppName = a.config.AppName
		hostCfg.Title = a.config.Window.Title
		file = &a.config.Window
	}

	host, err := backend.Open(a.Backend, hostCfg)
	if err != nil {
		return nil, &errors.Error{Op: op, Kind: errors.KindInit, Err: err}
	}

	platform.RegisterDispatch(host.Post)

	d := a.Delegate
	if d == nil {
		d = DelegateBase[S]{}
	}
	w := newWindow(host, d, core.NewSharedState(a.State))
	if err := w.launch(file); err != nil {
		host.Close()
		return nil, &errors.Error{Op: op, Kind: errors.KindInit, Err: err}
	}
	return w, nil
}

// Run starts the application and pumps messages until the window closes or
// ctx is done.
func (a *App[S]) Run(ctx context.Context) error {
	w, err := a.Start()
	if err != nil {
		return err
	}
	defer w.Close()
	return w.Run(ctx)
}
