package core

import (
	"fmt"

	"github.com/go-drift/finestra/pkg/resources"
)

// Event is a backend-neutral notification produced by a native callback
// shim and consumed by an EventDispatcher. The set of events is closed.
type Event interface {
	fmt.Stringer
	event()
}

// Activated reports that a button-like control was clicked.
type Activated struct {
	View ViewID
}

// ToggleChanged reports the new state of a checkbox-like control.
type ToggleChanged struct {
	View    ViewID
	Checked bool
}

// TextChanged reports the new contents of a text input control.
type TextChanged struct {
	View ViewID
	Text string
}

// MenuInvoked reports that a menu item was chosen.
type MenuInvoked struct {
	Item resources.MenuItem
}

func (Activated) event()     {}
func (ToggleChanged) event() {}
func (TextChanged) event()   {}
func (MenuInvoked) event()   {}

func (e Activated) String() string { return fmt.Sprintf("Activated(%d)", e.View) }
func (e ToggleChanged) String() string {
	return fmt.Sprintf("ToggleChanged(%d, %t)", e.View, e.Checked)
}
func (e TextChanged) String() string { return fmt.Sprintf("TextChanged(%d, %q)", e.View, e.Text) }
func (e MenuInvoked) String() string { return fmt.Sprintf("MenuInvoked(%s)", e.Item) }

// ViewOf returns the view an event originates from. Menu events have none.
func ViewOf(ev Event) (ViewID, bool) {
	switch ev := ev.(type) {
	case Activated:
		return ev.View, true
	case ToggleChanged:
		return ev.View, true
	case TextChanged:
		return ev.View, true
	default:
		return NoView, false
	}
}

// ToggleFromControl reports a toggle made on the native control id. The
// bound cell, if any, is set first with the control as origin, so the
// control's own listener is skipped and the handler sees the new state.
// Every checkbox shim reports through it.
func ToggleFromControl(d EventDispatcher, id ViewID, cell *State[bool], checked bool) {
	if cell != nil {
		cell.SetWithOrigin(checked, OwnerOrigin(id))
	}
	d.DispatchEvent(ToggleChanged{View: id, Checked: checked})
}

// TextFromControl reports an edit made in the native control id. The
// handler runs first; the bound cell, if any, is then set with the control
// as origin. Every text input shim reports through it.
func TextFromControl(d EventDispatcher, id ViewID, cell *TextValue, text string) {
	d.DispatchEvent(TextChanged{View: id, Text: text})
	if cell != nil {
		cell.SetWithOrigin(text, OwnerOrigin(id))
	}
}
