package headless

import (
	"sync"

	"github.com/go-drift/finestra/pkg/backend"
	"github.com/go-drift/finestra/pkg/core"
	"github.com/go-drift/finestra/pkg/resources"
)

// ViewKind names the kind of control a View stands in for.
type ViewKind string

const (
	KindButton    ViewKind = "button"
	KindCheckbox  ViewKind = "checkbox"
	KindLabel     ViewKind = "label"
	KindTextBlock ViewKind = "text_block"
	KindTextField ViewKind = "text_field"
	KindStack     ViewKind = "stack"
	KindImage     ViewKind = "image"
	KindEmpty     ViewKind = "empty"
)

// View is an in-memory control. It records every property the framework
// sets on it and lets tests drive the native event sources with Press,
// Toggle and Type. A View implements every control interface of package
// backend; the toolkit hands it out typed as the one matching its kind.
type View struct {
	id   core.ViewID
	kind ViewKind

	mu          sync.RWMutex
	title       string
	text        string
	placeholder string
	tooltip     string
	checked     bool
	textColor   resources.Color
	background  resources.Color
	alignment   resources.TextAlignment
	image       resources.Image
	direction   backend.StackDirection
	children    []*View
	constraints []backend.Constraint

	onActivate func()
	onToggle   func(bool)
	onText     func(string)
}

func newView(id core.ViewID, kind ViewKind) *View {
	return &View{id: id, kind: kind}
}

func (v *View) ID() core.ViewID          { return v.id }
func (v *View) Kind() ViewKind           { return v.kind }
func (v *View) Handle() any              { return v }
func (v *View) Anchors() backend.Anchors { return backend.AnchorsOf(v.id) }

// AddChild appends child to a stack.
func (v *View) AddChild(child backend.NativeView) {
	if v.kind != KindStack {
		core.Unsupported("headless.View.AddChild", "adding children to a "+string(v.kind))
	}
	c, ok := child.(*View)
	if !ok {
		core.Unsupported("headless.View.AddChild", "foreign native views")
	}
	v.mu.Lock()
	v.children = append(v.children, c)
	v.mu.Unlock()
}

// Children returns the views added to a stack.
func (v *View) Children() []*View {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]*View(nil), v.children...)
}

func (v *View) SetTooltip(tooltip string) {
	v.mu.Lock()
	v.tooltip = tooltip
	v.mu.Unlock()
}

func (v *View) Tooltip() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.tooltip
}

func (v *View) SetTextColor(c resources.Color) {
	v.mu.Lock()
	v.textColor = c
	v.mu.Unlock()
}

func (v *View) TextColor() resources.Color {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.textColor
}

func (v *View) SetBackgroundColor(c resources.Color) {
	v.mu.Lock()
	v.background = c
	v.mu.Unlock()
}

func (v *View) BackgroundColor() resources.Color {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.background
}

func (v *View) SetTitle(title string) {
	v.mu.Lock()
	v.title = title
	v.mu.Unlock()
}

func (v *View) Title() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.title
}

func (v *View) SetText(text string) {
	v.mu.Lock()
	v.text = text
	v.mu.Unlock()
}

func (v *View) Text() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.text
}

func (v *View) SetPlaceholder(placeholder string) {
	v.mu.Lock()
	v.placeholder = placeholder
	v.mu.Unlock()
}

func (v *View) Placeholder() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.placeholder
}

func (v *View) SetChecked(checked bool) {
	v.mu.Lock()
	v.checked = checked
	v.mu.Unlock()
}

func (v *View) Checked() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.checked
}

func (v *View) SetAlignment(a resources.TextAlignment) {
	v.mu.Lock()
	v.alignment = a
	v.mu.Unlock()
}

func (v *View) Alignment() resources.TextAlignment {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.alignment
}

func (v *View) SetImage(img resources.Image) {
	v.mu.Lock()
	v.image = img
	v.mu.Unlock()
}

func (v *View) Image() resources.Image {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.image
}

// Direction returns the axis of a stack.
func (v *View) Direction() backend.StackDirection {
	return v.direction
}

// Constraints returns the layout constraints attached to the view.
func (v *View) Constraints() []backend.Constraint {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return append([]backend.Constraint(nil), v.constraints...)
}

func (v *View) addConstraint(c backend.Constraint) {
	v.mu.Lock()
	v.constraints = append(v.constraints, c)
	v.mu.Unlock()
}

func (v *View) OnActivate(f func()) {
	v.mu.Lock()
	v.onActivate = f
	v.mu.Unlock()
}

func (v *View) OnToggle(f func(bool)) {
	v.mu.Lock()
	v.onToggle = f
	v.mu.Unlock()
}

func (v *View) OnTextChange(f func(string)) {
	v.mu.Lock()
	v.onText = f
	v.mu.Unlock()
}

// Press simulates a click on a button.
func (v *View) Press() {
	v.mu.RLock()
	f := v.onActivate
	v.mu.RUnlock()
	if f != nil {
		f()
	}
}

// Toggle simulates a click on a checkbox: the displayed state flips and
// the action runs with the new state.
func (v *View) Toggle() {
	v.mu.Lock()
	v.checked = !v.checked
	checked, f := v.checked, v.onToggle
	v.mu.Unlock()
	if f != nil {
		f(checked)
	}
}

// Type simulates the user replacing the contents of a text field.
func (v *View) Type(text string) {
	v.mu.Lock()
	v.text = text
	f := v.onText
	v.mu.Unlock()
	if f != nil {
		f(text)
	}
}

var (
	_ backend.ButtonControl    = (*View)(nil)
	_ backend.ToggleControl    = (*View)(nil)
	_ backend.AlignedControl   = (*View)(nil)
	_ backend.TextInputControl = (*View)(nil)
	_ backend.ImageControl     = (*View)(nil)
)
