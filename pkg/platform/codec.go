// Package platform carries events between native shims and the Go side of a
// finestra application. Shims that cannot call into Go directly (an
// out-of-process helper, a cgo callback that must not block) encode each
// event with a MessageCodec; a Bridge decodes it and hands it to the
// window's dispatcher.
package platform

import (
	"bytes"
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
)

// MessageCodec encodes and decodes messages exchanged with native code.
type MessageCodec interface {
	// Encode converts a Go value to bytes for transmission to native code.
	Encode(value any) ([]byte, error)

	// Decode converts bytes received from native code to a Go value.
	// Maps decode to map[string]any.
	Decode(data []byte) (any, error)

	// DecodeInto decodes bytes into v.
	DecodeInto(data []byte, v any) error
}

// JsonCodec implements MessageCodec using JSON encoding.
// JSON prioritizes interoperability and minimal native dependencies.
type JsonCodec struct{}

// Encode serializes the value to JSON bytes.
func (c JsonCodec) Encode(value any) ([]byte, error) {
	return json.Marshal(value)
}

// Decode deserializes JSON bytes to a Go value.
func (c JsonCodec) Decode(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var result any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DecodeInto deserializes JSON bytes into a specific type.
func (c JsonCodec) DecodeInto(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// MsgpackCodec implements MessageCodec using MessagePack. It is the compact
// choice for shims that send an event per keystroke.
type MsgpackCodec struct{}

// Encode serializes the value to MessagePack. Struct fields are named by
// their json tags so both codecs produce the same keys.
func (c MsgpackCodec) Encode(value any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode deserializes MessagePack bytes to a Go value.
func (c MsgpackCodec) Decode(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var result any
	if err := c.DecodeInto(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DecodeInto deserializes MessagePack bytes into a specific type.
func (c MsgpackCodec) DecodeInto(data []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	return dec.Decode(v)
}

// DefaultCodec is the codec used by bridges created without one.
var DefaultCodec MessageCodec = JsonCodec{}
