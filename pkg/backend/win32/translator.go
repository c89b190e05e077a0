package win32

import (
	"fmt"
	"sync"

	"github.com/go-drift/finestra/pkg/core"
	"github.com/go-drift/finestra/pkg/errors"
)

// ControlKind is the kind of native control behind a ControlID.
type ControlKind int

const (
	ControlButton ControlKind = iota
	ControlCheckbox
	ControlEdit
	ControlStatic
)

// ToggleReader returns whether a checkbox is checked (BM_GETCHECK).
type ToggleReader func(id ControlID, hwnd uintptr) bool

// TextReader returns the text of an edit control (GetWindowText).
type TextReader func(id ControlID, hwnd uintptr) string

// Translator turns WM_COMMAND parameters into core events.
type Translator struct {
	mu       sync.RWMutex
	controls map[ControlID]ControlKind
	menus    *MenuTable

	readToggle ToggleReader
	readText   TextReader
}

// NewTranslator creates a translator. The readers query native control
// state when a notification needs a payload.
func NewTranslator(toggle ToggleReader, text TextReader) *Translator {
	return &Translator{
		controls:   make(map[ControlID]ControlKind),
		menus:      NewMenuTable(nil),
		readToggle: toggle,
		readText:   text,
	}
}

// SetMenus installs the table menu commands are resolved against.
func (t *Translator) SetMenus(menus *MenuTable) {
	if menus == nil {
		menus = NewMenuTable(nil)
	}
	t.mu.Lock()
	t.menus = menus
	t.mu.Unlock()
}

// RegisterControl records the kind of the control created for id and
// returns its control identifier.
func (t *Translator) RegisterControl(id core.ViewID, kind ControlKind) ControlID {
	ctl, ok := ControlFromViewID(id)
	if !ok {
		errors.Fatal("win32.Translator.RegisterControl", errors.KindExhausted,
			"%s does not fit into a control identifier", id)
	}
	t.mu.Lock()
	t.controls[ctl] = kind
	t.mu.Unlock()
	return ctl
}

// Reset forgets every registered control. Called before a content view is
// rebuilt.
func (t *Translator) Reset() {
	t.mu.Lock()
	t.controls = make(map[ControlID]ControlKind)
	t.mu.Unlock()
}

// Translate converts the parameters of a WM_COMMAND message. It reports
// false for messages that do not map to an event: accelerators, unknown
// menu commands, notifications of unregistered controls and notification
// codes the control kind does not produce events for.
func (t *Translator) Translate(wParam, lParam uintptr) (core.Event, bool) {
	id, code := LoWord(wParam), HiWord(wParam)

	t.mu.RLock()
	menus := t.menus
	kind, known := t.controls[ControlID(id)]
	t.mu.RUnlock()

	if lParam == 0 {
		if code != sourceMenu {
			return nil, false
		}
		item, ok := menus.Lookup(id)
		if !ok {
			return nil, false
		}
		return core.MenuInvoked{Item: item}, true
	}

	if !known {
		return nil, false
	}
	view := ViewIDFromControl(ControlID(id))

	switch {
	case code == BN_CLICKED && kind == ControlButton:
		return core.Activated{View: view}, true
	case code == BN_CLICKED && kind == ControlCheckbox:
		checked := false
		if t.readToggle != nil {
			checked = t.readToggle(ControlID(id), lParam)
		}
		return core.ToggleChanged{View: view, Checked: checked}, true
	case code == EN_CHANGE && kind == ControlEdit:
		text := ""
		if t.readText != nil {
			text = t.readText(ControlID(id), lParam)
		}
		return core.TextChanged{View: view, Text: text}, true
	}
	return nil, false
}

// HandleCommand translates a WM_COMMAND message and hands the event to d.
// It reports whether an event was dispatched.
func (t *Translator) HandleCommand(d core.EventDispatcher, wParam, lParam uintptr) bool {
	ev, ok := t.Translate(wParam, lParam)
	if !ok {
		return false
	}
	d.DispatchEvent(ev)
	return true
}

func (k ControlKind) String() string {
	switch k {
	case ControlButton:
		return "button"
	case ControlCheckbox:
		return "checkbox"
	case ControlEdit:
		return "edit"
	case ControlStatic:
		return "static"
	}
	return fmt.Sprintf("ControlKind(%d)", int(k))
}
