// Package appkit holds the target and delegate objects the macOS backend
// installs on native controls. Each one captures a view identity and the
// dispatcher it reports to, and turns an AppKit action or delegate
// callback into a core event.
package appkit

import (
	"github.com/go-drift/finestra/pkg/core"
)

// ButtonTarget is the action target of an NSButton.
type ButtonTarget struct {
	View       core.ViewID
	Dispatcher core.EventDispatcher
}

// Action is invoked by the button's action selector.
func (t *ButtonTarget) Action() {
	t.Dispatcher.DispatchEvent(core.Activated{View: t.View})
}

// CheckboxTarget is the action target of an NSButton of switch type. The
// checkbox's displayed state is bound to Checked.
type CheckboxTarget struct {
	View       core.ViewID
	Dispatcher core.EventDispatcher
	Checked    *core.State[bool]
}

// Action flips the bound cell and reports the new state. AppKit has
// already redrawn the checkbox, so the flip carries the checkbox as origin
// and skips its own listener. The widgets checkbox reports the same way,
// through core.ToggleFromControl.
func (t *CheckboxTarget) Action() {
	core.ToggleFromControl(t.Dispatcher, t.View, t.Checked, !t.Checked.Get())
}

// TextFieldDelegate is the delegate of an NSTextField.
type TextFieldDelegate struct {
	View       core.ViewID
	Dispatcher core.EventDispatcher
	// Text, when set, follows the field's contents.
	Text *core.TextValue
}

// TextDidChange is called by the field after every edit. The handler runs
// first; the bound cell is then updated with the field as origin so the
// field is not told about its own edit.
func (d *TextFieldDelegate) TextDidChange(value string) {
	core.TextFromControl(d.Dispatcher, d.View, d.Text, value)
}
