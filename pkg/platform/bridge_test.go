package platform

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/go-drift/finestra/pkg/core"
	"github.com/go-drift/finestra/pkg/errors"
	"github.com/go-drift/finestra/pkg/resources"
)

// --- Test helpers ---

// recordingDispatcher captures delivered events.
type recordingDispatcher struct {
	mu     sync.Mutex
	events []core.Event
}

func (d *recordingDispatcher) DispatchEvent(ev core.Event) {
	d.mu.Lock()
	d.events = append(d.events, ev)
	d.mu.Unlock()
}

func (d *recordingDispatcher) received() []core.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]core.Event(nil), d.events...)
}

// captureErrors installs an error handler for the duration of the test.
type captureErrors struct {
	mu     sync.Mutex
	errors []*errors.Error
}

func (c *captureErrors) HandleError(err *errors.Error) {
	c.mu.Lock()
	c.errors = append(c.errors, err)
	c.mu.Unlock()
}
func (c *captureErrors) HandlePanic(*errors.PanicError) {}
func (c *captureErrors) HandleFatal(*errors.FatalError) {}

func installCapture(t *testing.T) *captureErrors {
	t.Helper()
	c := &captureErrors{}
	errors.SetHandler(c)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return c
}

var sampleEvents = []core.Event{
	core.Activated{View: 1},
	core.ToggleChanged{View: 2, Checked: true},
	core.ToggleChanged{View: 3, Checked: false},
	core.TextChanged{View: 4, Text: "héllo"},
	core.TextChanged{View: core.MaxViewID, Text: ""},
	core.MenuInvoked{Item: resources.Titled("Open")},
}

// --- Tests ---

func TestCodecs_EventRoundTrip(t *testing.T) {
	codecs := map[string]MessageCodec{"json": JsonCodec{}, "msgpack": MsgpackCodec{}}
	for name, codec := range codecs {
		t.Run(name, func(t *testing.T) {
			for _, ev := range sampleEvents {
				data, err := EncodeEvent(codec, ev)
				if err != nil {
					t.Fatalf("EncodeEvent(%v): %v", ev, err)
				}
				got, err := DecodeEvent(codec, data)
				if err != nil {
					t.Fatalf("DecodeEvent(%v): %v", ev, err)
				}
				if got != ev {
					t.Errorf("round trip: got %v, want %v", got, ev)
				}
			}
		})
	}
}

func TestJsonCodec_WireFormat(t *testing.T) {
	data, err := EncodeEvent(JsonCodec{}, core.ToggleChanged{View: 7, Checked: true})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), `{"kind":"toggle_changed","view":7,"checked":true}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestMsgpackCodec_UsesJSONKeys(t *testing.T) {
	data, err := MsgpackCodec{}.Encode(EventEnvelope{Kind: KindTextChanged, View: 3, Text: "x"})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := msgpack.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if m["kind"] != KindTextChanged || m["text"] != "x" {
		t.Errorf("unexpected keys: %v", m)
	}
	if _, ok := m["checked"]; ok {
		t.Errorf("empty fields should be omitted: %v", m)
	}
}

func TestDecodeEvent_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		dataType string
	}{
		{"not an object", `[1, 2]`, "EventEnvelope"},
		{"missing kind", `{"view": 1}`, "kind"},
		{"negative view", `{"kind": "activated", "view": -1}`, "view"},
		{"fractional view", `{"kind": "activated", "view": 1.5}`, "view"},
		{"view too large", `{"kind": "activated", "view": 65536}`, "view"},
		{"checked not bool", `{"kind": "toggle_changed", "view": 1, "checked": "yes"}`, "checked"},
		{"text not string", `{"kind": "text_changed", "view": 1, "text": 3}`, "text"},
		{"menu not string", `{"kind": "menu_invoked", "menu": false}`, "menu"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeEvent(JsonCodec{}, []byte(tt.data))
			var pe *errors.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected ParseError, got %v", err)
			}
			if pe.DataType != tt.dataType {
				t.Errorf("DataType = %q, want %q", pe.DataType, tt.dataType)
			}
		})
	}
}

func TestDecodeEvent_UnknownKind(t *testing.T) {
	_, err := DecodeEvent(JsonCodec{}, []byte(`{"kind": "resized"}`))
	if !errors.Is(err, ErrUnknownEvent) {
		t.Errorf("expected ErrUnknownEvent, got %v", err)
	}
}

func TestEncodeEvent_Separator(t *testing.T) {
	_, err := EncodeEvent(JsonCodec{}, core.MenuInvoked{Item: resources.Separator()})
	if !errors.Is(err, ErrUnknownEvent) {
		t.Errorf("expected ErrUnknownEvent, got %v", err)
	}
}

func TestBridge_DeliversDirectly(t *testing.T) {
	target := &recordingDispatcher{}
	b := NewBridge(nil, target)

	for _, ev := range sampleEvents {
		if err := b.Send(ev); err != nil {
			t.Fatalf("Send(%v): %v", ev, err)
		}
	}
	got := target.received()
	if len(got) != len(sampleEvents) {
		t.Fatalf("received %d events, want %d", len(got), len(sampleEvents))
	}
	for i := range got {
		if got[i] != sampleEvents[i] {
			t.Errorf("event %d: got %v, want %v", i, got[i], sampleEvents[i])
		}
	}
}

func TestBridge_ReportsParseErrors(t *testing.T) {
	capture := installCapture(t)
	target := &recordingDispatcher{}
	b := NewBridge(JsonCodec{}, target)

	if err := b.HandleEvent([]byte(`{"kind": 1}`)); err == nil {
		t.Fatal("expected error")
	}
	if err := b.HandleEvent([]byte(`{not json`)); err == nil {
		t.Fatal("expected error")
	}
	if len(target.received()) != 0 {
		t.Error("malformed events must not be dispatched")
	}
	if len(capture.errors) != 2 {
		t.Fatalf("reported %d errors, want 2", len(capture.errors))
	}
	for _, err := range capture.errors {
		if err.Kind != errors.KindParsing {
			t.Errorf("Kind = %v, want KindParsing", err.Kind)
		}
	}
}

func TestBridge_Queue(t *testing.T) {
	var pending []func()
	q := NewMainQueue(func(f func()) bool {
		pending = append(pending, f)
		return true
	})
	target := &recordingDispatcher{}
	b := NewBridge(MsgpackCodec{}, target).WithQueue(q)

	if err := b.Send(core.Activated{View: 1}); err != nil {
		t.Fatal(err)
	}
	if len(target.received()) != 0 {
		t.Fatal("event delivered before the queue ran")
	}
	for _, f := range pending {
		f()
	}
	if len(target.received()) != 1 {
		t.Errorf("received %d events, want 1", len(target.received()))
	}
}

func TestBridge_Closed(t *testing.T) {
	b := NewBridge(nil, &recordingDispatcher{})
	b.Close()
	if err := b.Send(core.Activated{View: 1}); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}

	stopped := NewBridge(nil, &recordingDispatcher{}).WithQueue(NewMainQueue(func(func()) bool { return false }))
	if err := stopped.Send(core.Activated{View: 1}); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed from a stopped queue, got %v", err)
	}

	if err := NewBridge(nil, nil).Send(core.Activated{View: 1}); !errors.Is(err, ErrNotConnected) {
		t.Errorf("expected ErrNotConnected, got %v", err)
	}
}

func TestMainQueue(t *testing.T) {
	q := NewMainQueue(nil)
	if q.Dispatch(func() {}) {
		t.Error("Dispatch without a post function should fail")
	}

	ran := 0
	q.Register(func(f func()) bool { f(); return true })
	if q.Dispatch(nil) {
		t.Error("Dispatch(nil) should fail")
	}
	if !q.Dispatch(func() { ran++ }) || ran != 1 {
		t.Errorf("callback ran %d times, want 1", ran)
	}
}

func TestJsonCodec_DecodeEmpty(t *testing.T) {
	for _, codec := range []MessageCodec{JsonCodec{}, MsgpackCodec{}} {
		v, err := codec.Decode(nil)
		if err != nil || v != nil {
			t.Errorf("%T.Decode(nil) = %v, %v", codec, v, err)
		}
	}
}

func TestEnvelope_JSONTags(t *testing.T) {
	var env EventEnvelope
	if err := json.Unmarshal([]byte(`{"kind":"menu_invoked","menu":"Quit"}`), &env); err != nil {
		t.Fatal(err)
	}
	ev, err := env.Event()
	if err != nil {
		t.Fatal(err)
	}
	if ev != (core.MenuInvoked{Item: resources.Titled("Quit")}) {
		t.Errorf("got %v", ev)
	}
}
