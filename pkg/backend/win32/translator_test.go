package win32

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/finestra/pkg/core"
	"github.com/go-drift/finestra/pkg/resources"
)

const someHWND = 0xBEEF

func TestWords(t *testing.T) {
	w := MakeWParam(0x1234, EN_CHANGE)
	assert.Equal(t, uint16(0x1234), LoWord(w))
	assert.Equal(t, uint16(EN_CHANGE), HiWord(w))
}

func TestControlIDCoupling(t *testing.T) {
	tests := []struct {
		id   core.ViewID
		ok   bool
		want ControlID
	}{
		{core.NoView, false, 0},
		{core.FirstViewID, true, 1},
		{core.MaxViewID, true, 0xFFFF},
		{core.MaxViewID + 1, false, 0},
	}
	for _, tt := range tests {
		got, ok := ControlFromViewID(tt.id)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ControlFromViewID(%d) = %d, %v; want %d, %v", tt.id, got, ok, tt.want, tt.ok)
		}
		if ok {
			assert.Equal(t, tt.id, ViewIDFromControl(got))
		}
	}
}

func TestTranslate(t *testing.T) {
	tr := NewTranslator(
		func(ControlID, uintptr) bool { return true },
		func(ControlID, uintptr) string { return "typed" },
	)
	tr.RegisterControl(1, ControlButton)
	tr.RegisterControl(2, ControlCheckbox)
	tr.RegisterControl(3, ControlEdit)
	tr.RegisterControl(4, ControlStatic)
	tr.SetMenus(NewMenuTable(resources.NewMenuBar().With(
		resources.NewMenu("File").With(resources.Titled("Open"), resources.Separator(), resources.Titled("Quit")),
	)))

	tests := []struct {
		name   string
		wParam uintptr
		lParam uintptr
		want   core.Event
	}{
		{"button click", MakeWParam(1, BN_CLICKED), someHWND, core.Activated{View: 1}},
		{"checkbox click", MakeWParam(2, BN_CLICKED), someHWND, core.ToggleChanged{View: 2, Checked: true}},
		{"edit change", MakeWParam(3, EN_CHANGE), someHWND, core.TextChanged{View: 3, Text: "typed"}},
		{"menu command", MakeWParam(2, sourceMenu), 0, core.MenuInvoked{Item: resources.Titled("Quit")}},
		{"static click", MakeWParam(4, BN_CLICKED), someHWND, nil},
		{"edit click", MakeWParam(3, BN_CLICKED), someHWND, nil},
		{"unknown control", MakeWParam(9, BN_CLICKED), someHWND, nil},
		{"accelerator", MakeWParam(1, sourceAccelerator), 0, nil},
		{"unknown menu", MakeWParam(40, sourceMenu), 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := tr.Translate(tt.wParam, tt.lParam)
			if tt.want == nil {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want, ev)
		})
	}
}

func TestMenuTable(t *testing.T) {
	bar := resources.NewMenuBar().With(
		resources.NewMenu("File").With(resources.Titled("Open"), resources.Separator()),
		resources.NewMenu("Edit").With(resources.Titled("Copy"), resources.Titled("Open")),
	)
	table := NewMenuTable(bar)

	assert.Equal(t, 2, table.Len())
	id, ok := table.CommandID(resources.Titled("Copy"))
	require.True(t, ok)
	assert.Equal(t, uint16(2), id)
	_, ok = table.CommandID(resources.Separator())
	assert.False(t, ok)
}

func TestHandleCommand_CounterButton(t *testing.T) {
	type counter struct{ n int }
	c := &counter{}
	reg := core.NewRegistry[counter]()
	d := core.NewDispatcher(reg, core.NewSharedState(c), core.Window{})
	tree := core.NewViewTree(reg, d)

	id := tree.NextID()
	tr := NewTranslator(nil, nil)
	ctl := tr.RegisterControl(id, ControlButton)
	tree.PutEventHandlersWithID(id, core.HandlerMap[counter]{
		Click: func(s *counter, _ core.Window) { s.n++ },
	})

	for range 3 {
		assert.True(t, tr.HandleCommand(d, MakeWParam(uint16(ctl), BN_CLICKED), someHWND))
	}
	assert.False(t, tr.HandleCommand(d, MakeWParam(uint16(ctl), EN_CHANGE), someHWND))
	assert.Equal(t, 3, c.n)

	tr.Reset()
	assert.False(t, tr.HandleCommand(d, MakeWParam(uint16(ctl), BN_CLICKED), someHWND))
}
