package resources

// SystemCursor is a cursor available on every platform, or with an
// alternative that carries the same meaning.
type SystemCursor int

const (
	CursorDefault SystemCursor = iota
	CursorArrow
	CursorCrossHair
	CursorNotAllowed
	CursorIBeam
	CursorHand
	CursorResizeDown
	CursorResizeLeft
	CursorResizeRight
	CursorResizeUp
)

// UnstableCursor is a cursor that exists on some platforms only.
type UnstableCursor int

const (
	// CursorBusy is the spinning cursor that blocks interaction (Win32 only).
	CursorBusy UnstableCursor = iota
	// CursorBusyInBackground is the spinning cursor that still allows interaction (Win32 only).
	CursorBusyInBackground
	// CursorDisappearingItem signals the item will vanish (AppKit only).
	CursorDisappearingItem
	// CursorHelp signals context help is available (Win32 only).
	CursorHelp
)

// Cursor is the mouse pointer shape. The zero value is CursorDefault.
type Cursor struct {
	system      SystemCursor
	unstable    UnstableCursor
	hasUnstable bool
}

// NewSystemCursor creates a cursor from a SystemCursor.
func NewSystemCursor(c SystemCursor) Cursor {
	return Cursor{system: c}
}

// NewUnstableCursor creates a cursor that falls back to alternative when
// the platform does not provide cursor.
func NewUnstableCursor(cursor UnstableCursor, alternative SystemCursor) Cursor {
	return Cursor{system: alternative, unstable: cursor, hasUnstable: true}
}

// Resolve picks the cursor to show given the set of unstable cursors the
// backend supports. The result is either the unstable cursor (ok=true) or the
// system fallback.
func (c Cursor) Resolve(supported func(UnstableCursor) bool) (SystemCursor, UnstableCursor, bool) {
	if c.hasUnstable && supported != nil && supported(c.unstable) {
		return c.system, c.unstable, true
	}
	return c.system, 0, false
}
