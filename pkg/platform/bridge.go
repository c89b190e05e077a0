package platform

import (
	"sync/atomic"

	"github.com/go-drift/finestra/pkg/core"
	"github.com/go-drift/finestra/pkg/errors"
)

// Bridge decodes events sent by a native shim and forwards them to a
// dispatcher. With a MainQueue the dispatch is posted to the UI thread,
// otherwise it runs on the goroutine calling HandleEvent.
type Bridge struct {
	codec  MessageCodec
	target core.EventDispatcher
	queue  *MainQueue
	closed atomic.Bool
}

// NewBridge creates a bridge delivering to target. A nil codec uses
// DefaultCodec.
func NewBridge(codec MessageCodec, target core.EventDispatcher) *Bridge {
	if codec == nil {
		codec = DefaultCodec
	}
	return &Bridge{codec: codec, target: target}
}

// WithQueue makes the bridge dispatch through q.
func (b *Bridge) WithQueue(q *MainQueue) *Bridge {
	b.queue = q
	return b
}

// Codec returns the codec the bridge decodes with.
func (b *Bridge) Codec() MessageCodec { return b.codec }

// HandleEvent decodes data and delivers the event. Decode failures are
// reported to the error handler with KindParsing and returned.
func (b *Bridge) HandleEvent(data []byte) error {
	const op = "platform.Bridge.HandleEvent"

	if b.closed.Load() {
		return ErrClosed
	}
	if b.target == nil {
		return ErrNotConnected
	}

	ev, err := DecodeEvent(b.codec, data)
	if err != nil {
		errors.Report(&errors.Error{Op: op, Kind: errors.KindParsing, Err: err})
		return err
	}

	if b.queue == nil {
		b.target.DispatchEvent(ev)
		return nil
	}
	if !b.queue.Dispatch(func() { b.target.DispatchEvent(ev) }) {
		return ErrClosed
	}
	return nil
}

// Send encodes ev as a shim would. Tests and in-process shims use it to
// feed HandleEvent.
func (b *Bridge) Send(ev core.Event) error {
	data, err := EncodeEvent(b.codec, ev)
	if err != nil {
		return err
	}
	return b.HandleEvent(data)
}

// Close makes later deliveries fail with ErrClosed.
func (b *Bridge) Close() {
	b.closed.Store(true)
}
