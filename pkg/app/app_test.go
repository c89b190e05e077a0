package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/finestra/pkg/backend"
	"github.com/go-drift/finestra/pkg/backend/headless"
	"github.com/go-drift/finestra/pkg/config"
	"github.com/go-drift/finestra/pkg/core"
	"github.com/go-drift/finestra/pkg/errors"
	"github.com/go-drift/finestra/pkg/platform"
	"github.com/go-drift/finestra/pkg/resources"
	"github.com/go-drift/finestra/pkg/widgets"
)

type counter struct {
	count int
	label *core.State[string]
	menu  []string
}

type counterDelegate struct {
	DelegateBase[counter]
	calls []string
	conf  *WindowConfiguration
	built int
}

func (d *counterDelegate) DidLaunch(s *counter) {
	d.calls = append(d.calls, "DidLaunch")
	s.label = core.NewState("Clicked: 0")
}

func (d *counterDelegate) ConfigureMainWindow(*counter) *WindowConfiguration {
	d.calls = append(d.calls, "ConfigureMainWindow")
	return d.conf
}

func (d *counterDelegate) MakeContentView(s *counter, _ core.Window) widgets.View[counter] {
	d.calls = append(d.calls, "MakeContentView")
	d.built++
	return widgets.VStack[counter](
		widgets.LabelOf[counter]("").WithText(core.Bind(s.label)),
		widgets.ButtonOf[counter]("Click me").OnClick(func(s *counter, _ core.Window) {
			s.count++
			s.label.Set(fmt.Sprintf("Clicked: %d", s.count))
		}),
	)
}

func (d *counterDelegate) WillShowWindow(core.Window, *counter) {
	d.calls = append(d.calls, "WillShowWindow")
}

func (d *counterDelegate) DidInvokeMenuAction(item resources.MenuItem, s *counter, _ core.Window) {
	s.menu = append(s.menu, item.String())
}

func start(t *testing.T, d *counterDelegate) (*Window[counter], *headless.Host) {
	t.Helper()
	w, err := New[counter](d, nil).WithBackend(backend.Headless).Start()
	require.NoError(t, err)
	t.Cleanup(w.Close)
	host, ok := w.Host().(*headless.Host)
	require.True(t, ok)
	return w, host
}

func findView(t *testing.T, host *headless.Host, match func(*headless.View) bool) *headless.View {
	t.Helper()
	v, ok := host.Views().Find(match)
	require.True(t, ok)
	return v
}

func TestStart_LifecycleOrder(t *testing.T) {
	d := &counterDelegate{}
	_, host := start(t, d)

	assert.Equal(t, []string{"DidLaunch", "ConfigureMainWindow", "MakeContentView", "WillShowWindow"}, d.calls)
	assert.True(t, host.Shown())
	assert.Equal(t, DefaultTitle, host.Title())
	require.NotNil(t, host.Content())
	assert.Equal(t, headless.KindStack, host.Content().Kind())
}

func TestStart_CounterButton(t *testing.T) {
	_, host := start(t, &counterDelegate{})

	label := findView(t, host, headless.OfKind(headless.KindLabel))
	button := findView(t, host, headless.WithTitle("Click me"))
	assert.Equal(t, "Clicked: 0", label.Text())

	for range 3 {
		button.Press()
	}
	assert.Equal(t, "Clicked: 3", label.Text())
}

func TestStart_ContentIsParentOfRoot(t *testing.T) {
	w, _ := start(t, &counterDelegate{})

	assert.Equal(t, core.FirstViewID, w.ContentID())
	// content area, stack, label, button
	assert.Equal(t, 4, w.Registry().Len())
}

func TestStart_WindowConfiguration(t *testing.T) {
	title := core.NewState("Counter")
	theme := core.NewState(resources.ThemeLight)
	d := &counterDelegate{conf: NewWindowConfiguration().
		WithTitle(core.Bind(title)).
		WithTheme(core.Bind(theme)).
		WithSize(320, 200)}
	_, host := start(t, d)

	assert.Equal(t, "Counter", host.Title())
	assert.Equal(t, resources.ThemeLight, host.Theme())
	width, height := host.ContentSize()
	assert.Equal(t, 320.0, width)
	assert.Equal(t, 200.0, height)

	title.Set("Renamed")
	assert.Equal(t, "Renamed", host.Title())

	title.SetWithOrigin("From the window", core.OriginSystem)
	assert.Equal(t, "Renamed", host.Title())

	theme.Set(resources.ThemeDark)
	assert.Equal(t, resources.ThemeDark, host.Theme())
}

func TestStart_ConfigFillsDefaults(t *testing.T) {
	cfg := &config.Resolved{
		AppName: "Counter",
		AppID:   "org.example.counter",
		Backend: backend.Headless,
		Window: config.Window{
			Title:  "From File",
			Width:  640,
			Height: 480,
			Theme:  resources.ThemeDark,
		},
	}

	w, err := New[counter](&counterDelegate{}, nil).WithConfig(cfg).Start()
	require.NoError(t, err)
	t.Cleanup(w.Close)
	host := w.Host().(*headless.Host)

	assert.Equal(t, "Counter", host.AppName())
	assert.Equal(t, "From File", host.Title())
	assert.Equal(t, resources.ThemeDark, host.Theme())
	width, height := host.ContentSize()
	assert.Equal(t, 640.0, width)
	assert.Equal(t, 480.0, height)

	// Values from the delegate win over the file.
	d := &counterDelegate{conf: NewWindowConfiguration().WithTitle(core.Raw("Mine")).WithSize(10, 20)}
	w, err = New[counter](d, nil).WithConfig(cfg).Start()
	require.NoError(t, err)
	t.Cleanup(w.Close)
	host = w.Host().(*headless.Host)
	assert.Equal(t, "Mine", host.Title())
	width, height = host.ContentSize()
	assert.Equal(t, 10.0, width)
	assert.Equal(t, 20.0, height)
}

func TestStart_Menu(t *testing.T) {
	open := resources.Titled("Open")
	d := &counterDelegate{conf: NewWindowConfiguration().
		WithMenu(resources.NewMenu("File").With(open)).
		WithMenu(resources.NewMenu("File").With(open, resources.Titled("Save")))}
	w, host := start(t, d)

	require.NotNil(t, host.MenuBar())
	require.Len(t, host.MenuBar().Menus, 1)
	assert.Len(t, host.MenuBar().Menus[0].Items, 2)

	assert.True(t, host.InvokeMenu(open))
	assert.False(t, host.InvokeMenu(resources.Titled("Quit")))

	// Menu events keep reaching the delegate after a rebuild.
	w.Rebuild()
	assert.True(t, host.InvokeMenu(resources.Titled("Save")))

	w.State().Lock(func(s *counter) {
		assert.Equal(t, []string{"Open", "Save"}, s.menu)
	})
}

func TestWindow_Rebuild(t *testing.T) {
	d := &counterDelegate{}
	w, host := start(t, d)

	findView(t, host, headless.WithTitle("Click me")).Press()
	old := w.Registry()

	assert.True(t, w.RequestRebuild())
	assert.Equal(t, 1, d.built)
	host.Flush()
	assert.Equal(t, 2, d.built)
	assert.NotSame(t, old, w.Registry())

	button := findView(t, host, headless.WithTitle("Click me"))
	button.Press()

	label := findView(t, host, headless.OfKind(headless.KindLabel))
	assert.Equal(t, "Clicked: 2", label.Text())
	w.State().Lock(func(s *counter) {
		assert.Equal(t, 2, s.count)
	})
}

func TestWindow_RebuildReleasesBindings(t *testing.T) {
	w, host := start(t, &counterDelegate{})
	first := findView(t, host, headless.OfKind(headless.KindLabel))

	listeners := func() int {
		var n int
		w.State().Lock(func(s *counter) { n = s.label.ListenerCount() })
		return n
	}
	built := listeners()
	bindings := w.Bindings().Len()
	require.Equal(t, 1, built)

	for range 10 {
		require.True(t, w.RequestRebuild())
		host.Flush()
	}
	assert.Equal(t, built, listeners(), "rebuilds must not accumulate listeners")
	assert.Equal(t, bindings, w.Bindings().Len())

	w.State().Lock(func(s *counter) { s.label.Set("after rebuilds") })

	current := findView(t, host, headless.OfKind(headless.KindLabel))
	assert.NotSame(t, first, current)
	assert.Equal(t, "after rebuilds", current.Text())
	assert.Equal(t, "Clicked: 0", first.Text(), "replaced controls no longer follow the cell")
}

type errorLog struct {
	errors []*errors.Error
}

func (l *errorLog) HandleError(err *errors.Error)  { l.errors = append(l.errors, err) }
func (l *errorLog) HandlePanic(*errors.PanicError) {}
func (l *errorLog) HandleFatal(*errors.FatalError) {}

func TestWindow_MenuEventsOutsideBarAreDropped(t *testing.T) {
	log := &errorLog{}
	errors.SetHandler(log)
	t.Cleanup(func() { errors.SetHandler(nil) })

	open := resources.Titled("Open")
	w, host := start(t, &counterDelegate{conf: NewWindowConfiguration().
		WithMenu(resources.NewMenu("File").With(open))})
	bridge := w.Bridge(platform.JsonCodec{})

	require.NoError(t, bridge.Send(core.MenuInvoked{Item: resources.Titled("Erase Disk")}))
	require.NoError(t, bridge.Send(core.MenuInvoked{Item: open}))
	host.Flush()

	w.State().Lock(func(s *counter) {
		assert.Equal(t, []string{"Open"}, s.menu)
	})
	require.Len(t, log.errors, 1)
	assert.Equal(t, errors.KindDispatch, log.errors[0].Kind)
	assert.Equal(t, "app.Window.DispatchEvent", log.errors[0].Op)
}

func TestWindow_MenuEventsWithoutBarAreDropped(t *testing.T) {
	errors.SetHandler(&errorLog{})
	t.Cleanup(func() { errors.SetHandler(nil) })

	w, _ := start(t, &counterDelegate{})
	w.DispatchEvent(core.MenuInvoked{Item: resources.Titled("Open")})
	w.State().Lock(func(s *counter) {
		assert.Empty(t, s.menu)
	})
}

func TestWindow_HandlerRequestsRebuild(t *testing.T) {
	var w *Window[counter]
	d := &rebuildDelegate{window: &w}
	var err error
	w, err = New[counter](d, nil).WithBackend(backend.Headless).Start()
	require.NoError(t, err)
	t.Cleanup(w.Close)
	host := w.Host().(*headless.Host)

	findView(t, host, headless.WithTitle("Rebuild")).Press()
	host.Flush()
	assert.Equal(t, 2, d.built)
}

type rebuildDelegate struct {
	DelegateBase[counter]
	window **Window[counter]
	built  int
}

func (d *rebuildDelegate) MakeContentView(*counter, core.Window) widgets.View[counter] {
	d.built++
	return widgets.ButtonOf[counter]("Rebuild").OnClick(func(*counter, core.Window) {
		(*d.window).RequestRebuild()
	})
}

func TestStart_NilDelegate(t *testing.T) {
	w, err := New[counter](nil, &counter{count: 7}).WithBackend(backend.Headless).Start()
	require.NoError(t, err)
	t.Cleanup(w.Close)

	host := w.Host().(*headless.Host)
	require.NotNil(t, host.Content())
	assert.Equal(t, headless.KindEmpty, host.Content().Kind())
	assert.Nil(t, host.MenuBar())
	w.State().Lock(func(s *counter) {
		assert.Equal(t, 7, s.count)
	})
}

func TestStart_BackendUnavailable(t *testing.T) {
	kind := backend.Win32
	if backend.Win32.Available() {
		kind = backend.AppKit
	}

	_, err := New[counter](&counterDelegate{}, nil).WithBackend(kind).Start()
	require.Error(t, err)
	assert.True(t, errors.Is(err, backend.ErrBackendUnavailable))

	var appErr *errors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, errors.KindInit, appErr.Kind)
	assert.Equal(t, "app.Start", appErr.Op)
}

func TestRun_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New[counter](&counterDelegate{}, nil).WithBackend(backend.Headless).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWindow_RunEndsOnClose(t *testing.T) {
	w, _ := start(t, &counterDelegate{})

	done := make(chan error, 1)
	go func() { done <- w.Run(context.Background()) }()
	w.Close()
	assert.NoError(t, <-done)
}

func TestWindow_Bridge(t *testing.T) {
	w, host := start(t, &counterDelegate{})
	bridge := w.Bridge(platform.MsgpackCodec{})

	button := findView(t, host, headless.WithTitle("Click me"))
	require.NoError(t, bridge.Send(core.Activated{View: button.ID()}))
	require.NoError(t, bridge.Send(core.Activated{View: button.ID()}))

	label := findView(t, host, headless.OfKind(headless.KindLabel))
	assert.Equal(t, "Clicked: 0", label.Text())
	host.Flush()
	assert.Equal(t, "Clicked: 2", label.Text())
}

func TestStart_RegistersDispatch(t *testing.T) {
	_, host := start(t, &counterDelegate{})

	ran := false
	require.True(t, platform.Dispatch(func() { ran = true }))
	host.Flush()
	assert.True(t, ran)
}
