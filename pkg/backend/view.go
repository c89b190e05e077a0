package backend

import (
	"github.com/go-drift/finestra/pkg/core"
	"github.com/go-drift/finestra/pkg/resources"
)

// AnchorPosition names a layout anchor of a native view.
type AnchorPosition int

const (
	AnchorLeft AnchorPosition = iota
	AnchorRight
	AnchorTop
	AnchorBottom
	AnchorCenterX
	AnchorCenterY
)

// Anchor is one layout anchor of a native view.
type Anchor struct {
	View     core.ViewID
	Position AnchorPosition
}

// Anchors lists the layout anchors of a native view.
type Anchors struct {
	Left, Right, Top, Bottom Anchor
	CenterX, CenterY         Anchor
}

// AnchorsOf returns the anchors of the view with the given identity.
func AnchorsOf(id core.ViewID) Anchors {
	return Anchors{
		Left:    Anchor{View: id, Position: AnchorLeft},
		Right:   Anchor{View: id, Position: AnchorRight},
		Top:     Anchor{View: id, Position: AnchorTop},
		Bottom:  Anchor{View: id, Position: AnchorBottom},
		CenterX: Anchor{View: id, Position: AnchorCenterX},
		CenterY: Anchor{View: id, Position: AnchorCenterY},
	}
}

// NativeView is the capability set every native widget provides.
type NativeView interface {
	// ID returns the identity the view was built with.
	ID() core.ViewID
	// Handle returns the backend's native object.
	Handle() any
	// Anchors returns the view's layout anchors.
	Anchors() Anchors
	// AddChild adds child to a container view. Calling it on a view that is
	// not a container is fatal.
	AddChild(child NativeView)
}

// Control is a native view with a tooltip.
type Control interface {
	NativeView
	SetTooltip(tooltip string)
}

// ColoredControl is a control with configurable colors.
type ColoredControl interface {
	Control
	SetTextColor(c resources.Color)
	SetBackgroundColor(c resources.Color)
}

// TextControl displays a string, such as a label.
type TextControl interface {
	ColoredControl
	SetText(text string)
}

// AlignedControl is a TextControl with configurable alignment.
type AlignedControl interface {
	TextControl
	SetAlignment(a resources.TextAlignment)
}

// ButtonControl is a push button.
type ButtonControl interface {
	ColoredControl
	SetTitle(title string)
	// OnActivate installs the function the native action calls.
	OnActivate(f func())
}

// ToggleControl is a checkbox.
type ToggleControl interface {
	ColoredControl
	SetTitle(title string)
	SetChecked(checked bool)
	Checked() bool
	// OnToggle installs the function the native action calls with the
	// control's new state.
	OnToggle(f func(checked bool))
}

// TextInputControl is an editable single-line text field.
type TextInputControl interface {
	Control
	SetText(text string)
	Text() string
	SetPlaceholder(placeholder string)
	// OnTextChange installs the function the native text delegate calls
	// with the field's new contents.
	OnTextChange(f func(text string))
}

// ImageControl displays an image.
type ImageControl interface {
	Control
	SetImage(img resources.Image)
}

// StackDirection is the axis children of a stack are laid out along.
type StackDirection int

const (
	Vertical StackDirection = iota
	Horizontal
)

func (d StackDirection) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ConstraintAlignment is the edge a layout constraint pins.
type ConstraintAlignment int

const (
	ConstraintLeft ConstraintAlignment = iota
	ConstraintRight
	ConstraintTop
	ConstraintBottom
)

func (a ConstraintAlignment) String() string {
	switch a {
	case ConstraintRight:
		return "right"
	case ConstraintTop:
		return "top"
	case ConstraintBottom:
		return "bottom"
	default:
		return "left"
	}
}

// Constraint keeps an edge of a view within the matching edge of the view
// identified by Reference.
type Constraint struct {
	Alignment          ConstraintAlignment
	Reference          core.ViewID
	ReferenceAlignment ConstraintAlignment
}

// ParentBox returns the constraints that keep a view inside its logical
// parent on all four edges.
func ParentBox(parent core.ViewID) []Constraint {
	edges := []ConstraintAlignment{ConstraintTop, ConstraintBottom, ConstraintLeft, ConstraintRight}
	out := make([]Constraint, 0, len(edges))
	for _, e := range edges {
		out = append(out, Constraint{Alignment: e, Reference: parent, ReferenceAlignment: e})
	}
	return out
}
