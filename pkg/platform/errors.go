package platform

import "github.com/go-drift/finestra/pkg/errors"

// Sentinel errors for bridge operations.
var (
	// ErrClosed is returned when delivering to a closed bridge.
	ErrClosed = errors.New("platform: bridge closed")

	// ErrNotConnected is returned when the bridge has no dispatcher.
	ErrNotConnected = errors.New("platform: not connected")

	// ErrUnknownEvent is returned for messages with an unknown kind.
	ErrUnknownEvent = errors.New("platform: unknown event kind")
)
