package core

import (
	"time"

	"github.com/google/uuid"

	"github.com/go-drift/finestra/pkg/errors"
	"github.com/go-drift/finestra/pkg/resources"
)

// WindowDelegator is implemented by backends to perform window-level
// actions requested from application callbacks.
type WindowDelegator interface {
	// ID identifies the native window in error reports and dialogs.
	ID() uuid.UUID
	// CreateDialog prepares a message box with the given text.
	CreateDialog(text string) DialogAPI
	// ScheduleTimer runs t.Action on the UI thread once t.Delay elapses.
	ScheduleTimer(t resources.Timer)
	// PushCursor makes c the current cursor until the matching PopCursor.
	PushCursor(c resources.Cursor)
	// PopCursor restores the cursor active before the last PushCursor.
	PopCursor()
}

// Window is the handle passed to every event handler. It is a small value
// and may be copied freely; it does not own the native window.
type Window struct {
	delegator WindowDelegator
}

// NewWindow wraps a backend delegator.
func NewWindow(d WindowDelegator) Window {
	return Window{delegator: d}
}

func (w Window) backend(op string) WindowDelegator {
	if w.delegator == nil {
		Unsupported(op, "window actions without a backend window")
	}
	return w.delegator
}

// ID returns the native window's identity, or uuid.Nil for a detached handle.
func (w Window) ID() uuid.UUID {
	if w.delegator == nil {
		return uuid.Nil
	}
	return w.delegator.ID()
}

// CreateDialog starts building a dialog. Nothing is shown until Show is
// called on the returned builder:
//
//	w.CreateDialog("Saved").Title("My App").Kind(core.DialogInformational).Show()
func (w Window) CreateDialog(text string) *DialogBuilder {
	return &DialogBuilder{api: w.backend("core.Window.CreateDialog").CreateDialog(text)}
}

// ScheduleTimer schedules t on the window's UI thread.
func (w Window) ScheduleTimer(t resources.Timer) {
	w.backend("core.Window.ScheduleTimer").ScheduleTimer(t)
}

// ShowCursorFor shows c now and restores the previous cursor after d.
func (w Window) ShowCursorFor(c resources.Cursor, d time.Duration) {
	b := w.backend("core.Window.ShowCursorFor")
	b.PushCursor(c)
	b.ScheduleTimer(resources.DelayedAction(d, b.PopCursor))
}

// DialogKind selects the icon and accessibility role of a dialog.
type DialogKind int

const (
	// DialogNormal is a message box without a specific icon.
	DialogNormal DialogKind = iota
	// DialogInformational tells the user about an event or action.
	DialogInformational
	// DialogWarning tells the user about a possible mistake.
	DialogWarning
	// DialogError tells the user about an unrecoverable error.
	DialogError
)

func (k DialogKind) String() string {
	switch k {
	case DialogInformational:
		return "informational"
	case DialogWarning:
		return "warning"
	case DialogError:
		return "error"
	default:
		return "normal"
	}
}

// DialogAPI is the backend side of a dialog under construction.
type DialogAPI interface {
	SetKind(kind DialogKind)
	SetText(text string)
	SetTitle(title string)
	// Show presents the dialog. It does not block.
	Show()
}

// DialogBuilder configures a dialog created by Window.CreateDialog. The title
// defaults to the window title.
type DialogBuilder struct {
	api DialogAPI
}

// Kind sets the dialog kind.
func (b *DialogBuilder) Kind(kind DialogKind) *DialogBuilder {
	b.api.SetKind(kind)
	return b
}

// Title sets the dialog title.
func (b *DialogBuilder) Title(title string) *DialogBuilder {
	b.api.SetTitle(title)
	return b
}

// Show presents the dialog without waiting for it to close.
func (b *DialogBuilder) Show() {
	b.api.Show()
}

// Unsupported aborts with a KindUnsupported fatal error. Backends call it
// for capabilities they do not implement.
func Unsupported(op, capability string) {
	errors.Fatal(op, errors.KindUnsupported, "%s is not supported by this backend", capability)
}
