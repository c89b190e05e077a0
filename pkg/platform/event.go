package platform

import (
	"fmt"

	"github.com/go-drift/finestra/pkg/core"
	"github.com/go-drift/finestra/pkg/errors"
	"github.com/go-drift/finestra/pkg/resources"
)

// Event kinds on the wire.
const (
	KindActivated     = "activated"
	KindToggleChanged = "toggle_changed"
	KindTextChanged   = "text_changed"
	KindMenuInvoked   = "menu_invoked"
)

// EventEnvelope is the wire form of a core.Event.
type EventEnvelope struct {
	Kind    string `json:"kind"`
	View    uint32 `json:"view,omitempty"`
	Checked bool   `json:"checked,omitempty"`
	Text    string `json:"text,omitempty"`
	Menu    string `json:"menu,omitempty"`
}

// Envelope converts ev to its wire form.
func Envelope(ev core.Event) (EventEnvelope, error) {
	switch ev := ev.(type) {
	case core.Activated:
		return EventEnvelope{Kind: KindActivated, View: uint32(ev.View)}, nil
	case core.ToggleChanged:
		return EventEnvelope{Kind: KindToggleChanged, View: uint32(ev.View), Checked: ev.Checked}, nil
	case core.TextChanged:
		return EventEnvelope{Kind: KindTextChanged, View: uint32(ev.View), Text: ev.Text}, nil
	case core.MenuInvoked:
		title, ok := ev.Item.Title()
		if !ok {
			return EventEnvelope{}, fmt.Errorf("%w: separators cannot be invoked", ErrUnknownEvent)
		}
		return EventEnvelope{Kind: KindMenuInvoked, Menu: title}, nil
	}
	return EventEnvelope{}, fmt.Errorf("%w: %T", ErrUnknownEvent, ev)
}

// Event converts the envelope back to a core.Event.
func (e EventEnvelope) Event() (core.Event, error) {
	id := core.ViewID(e.View)
	switch e.Kind {
	case KindActivated:
		return core.Activated{View: id}, nil
	case KindToggleChanged:
		return core.ToggleChanged{View: id, Checked: e.Checked}, nil
	case KindTextChanged:
		return core.TextChanged{View: id, Text: e.Text}, nil
	case KindMenuInvoked:
		return core.MenuInvoked{Item: resources.Titled(e.Menu)}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, e.Kind)
}

// EncodeEvent encodes ev with codec.
func EncodeEvent(codec MessageCodec, ev core.Event) ([]byte, error) {
	env, err := Envelope(ev)
	if err != nil {
		return nil, err
	}
	return codec.Encode(env)
}

// DecodeEvent decodes an event encoded by EncodeEvent or by a native shim.
// Malformed fields are reported as *errors.ParseError.
func DecodeEvent(codec MessageCodec, data []byte) (core.Event, error) {
	raw, err := codec.Decode(data)
	if err != nil {
		return nil, err
	}
	env, err := envelopeFromMap(raw)
	if err != nil {
		return nil, err
	}
	return env.Event()
}

func envelopeFromMap(raw any) (EventEnvelope, error) {
	const source = "platform.DecodeEvent"

	m, ok := parseMap(raw)
	if !ok {
		return EventEnvelope{}, &errors.ParseError{Source: source, DataType: "EventEnvelope", Got: raw}
	}

	var env EventEnvelope
	if env.Kind, ok = parseString(m["kind"]); !ok {
		return EventEnvelope{}, &errors.ParseError{Source: source, DataType: "kind", Got: m["kind"]}
	}
	if v, present := m["view"]; present {
		n, ok := toUint64(v)
		if !ok || n > uint64(core.MaxViewID) {
			return EventEnvelope{}, &errors.ParseError{Source: source, DataType: "view", Got: v}
		}
		env.View = uint32(n)
	}
	if v, present := m["checked"]; present {
		if env.Checked, ok = parseBool(v); !ok {
			return EventEnvelope{}, &errors.ParseError{Source: source, DataType: "checked", Got: v}
		}
	}
	if v, present := m["text"]; present {
		if env.Text, ok = parseString(v); !ok {
			return EventEnvelope{}, &errors.ParseError{Source: source, DataType: "text", Got: v}
		}
	}
	if v, present := m["menu"]; present {
		if env.Menu, ok = parseString(v); !ok {
			return EventEnvelope{}, &errors.ParseError{Source: source, DataType: "menu", Got: v}
		}
	}
	return env, nil
}
