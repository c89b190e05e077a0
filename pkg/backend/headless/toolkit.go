package headless

import (
	"slices"
	"sync"

	"github.com/go-drift/finestra/pkg/backend"
	"github.com/go-drift/finestra/pkg/core"
	"github.com/go-drift/finestra/pkg/resources"
)

// Toolkit creates in-memory views and indexes them by identity.
type Toolkit struct {
	mu    sync.RWMutex
	views map[core.ViewID]*View
	order []*View
}

// NewToolkit creates an empty toolkit.
func NewToolkit() *Toolkit {
	return &Toolkit{views: make(map[core.ViewID]*View)}
}

// add indexes v. A rebuilt content view reuses identities, so a view
// replaces any earlier view with the same identity.
func (t *Toolkit) add(v *View) *View {
	t.mu.Lock()
	defer t.mu.Unlock()
	if old, ok := t.views[v.id]; ok {
		t.order = slices.DeleteFunc(t.order, func(o *View) bool { return o == old })
	}
	t.views[v.id] = v
	t.order = append(t.order, v)
	return v
}

func (t *Toolkit) NewButton(id core.ViewID, title string) backend.ButtonControl {
	v := newView(id, KindButton)
	v.title = title
	return t.add(v)
}

func (t *Toolkit) NewCheckbox(id core.ViewID, title string) backend.ToggleControl {
	v := newView(id, KindCheckbox)
	v.title = title
	return t.add(v)
}

func (t *Toolkit) NewLabel(id core.ViewID, text string) backend.TextControl {
	v := newView(id, KindLabel)
	v.text = text
	return t.add(v)
}

func (t *Toolkit) NewTextBlock(id core.ViewID, text string) backend.AlignedControl {
	v := newView(id, KindTextBlock)
	v.text = text
	return t.add(v)
}

func (t *Toolkit) NewTextField(id core.ViewID, text string) backend.TextInputControl {
	v := newView(id, KindTextField)
	v.text = text
	return t.add(v)
}

func (t *Toolkit) NewStack(id core.ViewID, direction backend.StackDirection) backend.NativeView {
	v := newView(id, KindStack)
	v.direction = direction
	return t.add(v)
}

func (t *Toolkit) NewImageView(id core.ViewID, img resources.Image) backend.ImageControl {
	v := newView(id, KindImage)
	v.image = img
	return t.add(v)
}

func (t *Toolkit) NewEmpty(id core.ViewID) backend.NativeView {
	return t.add(newView(id, KindEmpty))
}

// Constrain records c on view.
func (t *Toolkit) Constrain(view backend.NativeView, c backend.Constraint) {
	v, ok := view.(*View)
	if !ok {
		core.Unsupported("headless.Toolkit.Constrain", "foreign native views")
	}
	v.addConstraint(c)
}

// View returns the view built with the given identity.
func (t *Toolkit) View(id core.ViewID) (*View, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.views[id]
	return v, ok
}

// Find returns the first view, in construction order, for which match
// reports true.
func (t *Toolkit) Find(match func(*View) bool) (*View, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, v := range t.order {
		if match(v) {
			return v, true
		}
	}
	return nil, false
}

// Views returns every view in construction order.
func (t *Toolkit) Views() []*View {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]*View(nil), t.order...)
}

// Reset forgets all views.
func (t *Toolkit) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.views = make(map[core.ViewID]*View)
	t.order = nil
}

// WithTitle matches buttons and checkboxes by title.
func WithTitle(title string) func(*View) bool {
	return func(v *View) bool {
		return (v.kind == KindButton || v.kind == KindCheckbox) && v.Title() == title
	}
}

// OfKind matches views of the given kind.
func OfKind(kind ViewKind) func(*View) bool {
	return func(v *View) bool { return v.kind == kind }
}
