package widgets

import (
	"sync"

	"github.com/go-drift/finestra/pkg/backend"
	"github.com/go-drift/finestra/pkg/core"
	"github.com/go-drift/finestra/pkg/resources"
)

// View is a declarative description of a native control for an application
// with state type S.
type View[S any] interface {
	// BuildNative creates the native control, registers the view's
	// callbacks and returns the control to the parent.
	BuildNative(ctx *BuildContext[S]) backend.NativeView
}

// BuildContext is passed through one build of a content view. It pairs the
// identity and handler bookkeeping of core.ViewTree with the toolkit that
// constructs native controls. Bindings collects the state listeners the
// build installs, so the owner can release them when the content is
// replaced.
type BuildContext[S any] struct {
	*core.ViewTree[S]
	Toolkit  backend.Toolkit
	Bindings *Bindings

	root bool
}

// NewBuildContext creates a build context.
func NewBuildContext[S any](tree *core.ViewTree[S], toolkit backend.Toolkit) *BuildContext[S] {
	return &BuildContext[S]{ViewTree: tree, Toolkit: toolkit, Bindings: &Bindings{}}
}

// Build builds root and everything below it. When the tree has no parent
// yet, the root becomes its own parent.
func Build[S any](ctx *BuildContext[S], root View[S]) backend.NativeView {
	if root == nil {
		root = EmptyOf[S]()
	}
	if _, ok := ctx.ParentID(); !ok {
		ctx.root = true
	}
	return root.BuildNative(ctx)
}

// register stores m under a fresh identity. The first view registered after
// Build found no parent is the root and becomes the parent.
func (ctx *BuildContext[S]) register(m core.HandlerMap[S]) core.ViewID {
	id := ctx.ExchangeEventsForID(m)
	if ctx.root {
		ctx.root = false
		ctx.SetParentID(id)
	}
	return id
}

// Bindings holds the listeners one build added to state cells. A nil
// Bindings keeps listeners for the life of their cells.
type Bindings struct {
	mu      sync.Mutex
	removes []func()
}

func (b *Bindings) track(remove func()) {
	if b == nil {
		return
	}
	b.mu.Lock()
	b.removes = append(b.removes, remove)
	b.mu.Unlock()
}

// Len returns the number of live bindings.
func (b *Bindings) Len() int {
	if b == nil {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.removes)
}

// Release removes every listener. Controls of the build stop following
// their cells.
func (b *Bindings) Release() {
	if b == nil {
		return
	}
	b.mu.Lock()
	removes := b.removes
	b.removes = nil
	b.mu.Unlock()
	for _, remove := range removes {
		remove()
	}
}

// Base holds the properties shared by every control.
type Base struct {
	// Tooltip is shown when the pointer rests on the control.
	Tooltip core.Value[string]
}

func (b *Base) attach(bindings *Bindings, ctl backend.Control) {
	if s, ok := b.Tooltip.State(); ok {
		ctl.SetTooltip(s.Get())
		bindings.track(s.AddListener(ctl.SetTooltip))
		return
	}
	if tip := b.Tooltip.Get(); tip != "" {
		ctl.SetTooltip(tip)
	}
}

// bindText keeps a control's text in sync with v. The control owns the
// text, so changes it pushes back with its own origin are not echoed.
func bindText(bindings *Bindings, v core.Value[string], id core.ViewID, set func(string)) {
	if s, ok := v.State(); ok {
		bindings.track(s.AddListenerWithOrigin(set, core.OwnerOrigin(id)))
	}
}

// bindValue applies v once unless it is the zero value, then follows a
// bound state.
func bindValue[T comparable](bindings *Bindings, v core.Value[T], set func(T)) {
	var zero T
	if cur := v.Get(); cur != zero {
		set(cur)
	}
	if s, ok := v.State(); ok {
		bindings.track(s.AddListener(set))
	}
}

func bindColors(bindings *Bindings, textColor, background core.Value[resources.Color], ctl backend.ColoredControl) {
	bindValue(bindings, textColor, ctl.SetTextColor)
	bindValue(bindings, background, ctl.SetBackgroundColor)
}

// Empty is a placeholder view without content.
type Empty[S any] struct{}

// EmptyOf creates an empty view.
func EmptyOf[S any]() *Empty[S] {
	return &Empty[S]{}
}

func (e *Empty[S]) BuildNative(ctx *BuildContext[S]) backend.NativeView {
	id := ctx.register(core.HandlerMap[S]{})
	return ctx.Toolkit.NewEmpty(id)
}
