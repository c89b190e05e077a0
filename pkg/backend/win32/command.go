// Package win32 translates Win32 window messages into framework events.
//
// A Win32 control reports user interaction to its parent window with a
// WM_COMMAND message: the low word of WPARAM carries the control
// identifier, the high word the notification code and LPARAM the control's
// window handle. Menu commands arrive the same way with LPARAM zero. The
// control identifier is the control's core.ViewID, which is why identities
// are limited to 16 bits.
//
// The package holds no cgo; the native window procedure hands the raw
// message parameters to a Translator.
package win32

import (
	"github.com/go-drift/finestra/pkg/core"
)

// Window message and notification codes used by the translator.
const (
	WM_COMMAND = 0x0111

	BN_CLICKED = 0
	EN_CHANGE  = 0x0300

	// Notification codes of WM_COMMAND messages without a control handle.
	sourceMenu        = 0
	sourceAccelerator = 1
)

// ControlID is a Win32 child-window identifier.
type ControlID uint16

// LoWord returns the low 16 bits of a message parameter.
func LoWord(v uintptr) uint16 { return uint16(v & 0xFFFF) }

// HiWord returns bits 16-31 of a message parameter.
func HiWord(v uintptr) uint16 { return uint16((v >> 16) & 0xFFFF) }

// MakeWParam packs a notification code and an identifier the way Windows
// does for WM_COMMAND.
func MakeWParam(id, code uint16) uintptr {
	return uintptr(code)<<16 | uintptr(id)
}

// ViewIDFromControl recovers the identity a control was created with.
func ViewIDFromControl(c ControlID) core.ViewID {
	return core.ViewID(c)
}

// ControlFromViewID returns the control identifier for id. It reports
// false for NoView and for identities that do not fit into 16 bits.
func ControlFromViewID(id core.ViewID) (ControlID, bool) {
	if id == core.NoView || id > 0xFFFF {
		return 0, false
	}
	return ControlID(id), true
}
