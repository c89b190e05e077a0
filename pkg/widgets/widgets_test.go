package widgets

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/finestra/pkg/backend"
	"github.com/go-drift/finestra/pkg/backend/headless"
	"github.com/go-drift/finestra/pkg/core"
	"github.com/go-drift/finestra/pkg/resources"
)

type appState struct {
	Count   int
	Label   *core.TextValue
	Enabled *core.State[bool]
	Name    *core.TextValue
	Log     []string
}

func newAppState() *appState {
	return &appState{
		Label:   core.NewState("Clicked: 0"),
		Enabled: core.NewState(false),
		Name:    core.NewState(""),
	}
}

type harness struct {
	state   *appState
	reg     *core.Registry[appState]
	toolkit *headless.Toolkit
	ctx     *BuildContext[appState]
}

func newHarness() *harness {
	st := newAppState()
	reg := core.NewRegistry[appState]()
	d := core.NewDispatcher(reg, core.NewSharedState(st), core.Window{})
	tk := headless.NewToolkit()
	return &harness{
		state:   st,
		reg:     reg,
		toolkit: tk,
		ctx:     NewBuildContext(core.NewViewTree(reg, d), backend.Toolkit(tk)),
	}
}

func (h *harness) view(t *testing.T, id core.ViewID) *headless.View {
	t.Helper()
	v, ok := h.toolkit.View(id)
	require.True(t, ok, "no native view for %s", id)
	return v
}

func TestCounterButton(t *testing.T) {
	h := newHarness()
	root := VStack[appState](
		LabelOf[appState]("").WithText(core.Bind(h.state.Label)),
		ButtonOf[appState]("Press").OnClick(func(s *appState, _ core.Window) {
			s.Count++
			s.Label.Set(fmt.Sprintf("Clicked: %d", s.Count))
		}),
	)
	Build(h.ctx, root)

	label, ok := h.toolkit.Find(headless.OfKind(headless.KindLabel))
	require.True(t, ok)
	assert.Equal(t, "Clicked: 0", label.Text())

	button, ok := h.toolkit.Find(headless.WithTitle("Press"))
	require.True(t, ok)
	for range 3 {
		button.Press()
	}

	assert.Equal(t, 3, h.state.Count)
	assert.Equal(t, "Clicked: 3", h.state.Label.Get())
	assert.Equal(t, "Clicked: 3", label.Text())
}

func TestCheckboxEchoSuppression(t *testing.T) {
	h := newHarness()
	box := CheckboxOf[appState]("Enabled").WithChecked(h.state.Enabled)
	var userCalls []bool
	h.state.Enabled.AddListener(func(v bool) { userCalls = append(userCalls, v) })

	ctl := box.BuildNative(h.ctx)
	native := h.view(t, ctl.ID())

	native.Toggle()

	assert.True(t, h.state.Enabled.Get())
	assert.True(t, native.Checked())
	assert.Equal(t, []bool{true}, userCalls)

	h.state.Enabled.Set(false)
	assert.False(t, native.Checked(), "user changes reach the checkbox")
}

func TestCheckboxHandlerSeesNewState(t *testing.T) {
	h := newHarness()
	box := CheckboxOf[appState]("Enabled").
		WithChecked(h.state.Enabled).
		OnChecked(func(s *appState, checked bool, _ core.Window) {
			s.Log = append(s.Log, fmt.Sprintf("checked=%t cell=%t", checked, s.Enabled.Get()))
		})
	ctl := box.BuildNative(h.ctx)

	h.view(t, ctl.ID()).Toggle()

	assert.Equal(t, []string{"checked=true cell=true"}, h.state.Log)
}

func TestTextFieldBinding(t *testing.T) {
	h := newHarness()
	var fieldEchoes int
	field := TextFieldOf[appState](core.Bind(h.state.Name)).
		WithPlaceholder("Your name").
		OnChange(func(s *appState, text string, _ core.Window) {
			s.Log = append(s.Log, text)
		})
	ctl := field.BuildNative(h.ctx)
	native := h.view(t, ctl.ID())
	h.state.Name.AddListenerWithOrigin(func(string) { fieldEchoes++ }, core.OwnerOrigin(ctl.ID()))

	native.Type("Ada")

	assert.Equal(t, "Your name", native.Placeholder())
	assert.Equal(t, []string{"Ada"}, h.state.Log)
	assert.Equal(t, "Ada", h.state.Name.Get())
	assert.Zero(t, fieldEchoes)

	h.state.Name.Set("Grace")
	assert.Equal(t, "Grace", native.Text())
}

func TestTooltipAndColors(t *testing.T) {
	h := newHarness()
	tip := core.NewState("first")
	bg := core.NewState(resources.System(resources.SystemRed))

	b := ButtonOf[appState]("OK").
		WithTooltip(core.Bind(tip)).
		WithBackgroundColor(core.Bind(bg)).
		WithTextColor(core.Raw(resources.RGB(1, 2, 3)))
	native := h.view(t, b.BuildNative(h.ctx).ID())

	assert.Equal(t, "first", native.Tooltip(), "bound tooltips are applied immediately")
	assert.Equal(t, resources.System(resources.SystemRed), native.BackgroundColor())
	assert.Equal(t, resources.RGB(1, 2, 3), native.TextColor())

	tip.Set("second")
	bg.SetWithOrigin(resources.Transparent(), core.OriginSystem)
	assert.Equal(t, "second", native.Tooltip())
	assert.Equal(t, resources.Transparent(), native.BackgroundColor())
}

func TestTextBlockAlignment(t *testing.T) {
	h := newHarness()
	align := core.NewState(resources.AlignCenter)
	tb := TextBlockOf[appState]("lorem").WithAlignment(core.Bind(align))
	native := h.view(t, tb.BuildNative(h.ctx).ID())

	assert.Equal(t, resources.AlignCenter, native.Alignment())
	align.Set(resources.AlignRight)
	assert.Equal(t, resources.AlignRight, native.Alignment())
}

func TestStackParentsAndConstraints(t *testing.T) {
	h := newHarness()
	root := VStack[appState](
		HStack[appState](
			ImageViewOf[appState](resources.ImageFromFile("a.png")),
		),
		ImageViewOf[appState](resources.ImageFromFile("b.png")),
		nil,
	)
	native := Build(h.ctx, root)

	rootView := h.view(t, native.ID())
	require.Len(t, rootView.Children(), 2)
	inner := rootView.Children()[0]
	require.Len(t, inner.Children(), 1)

	a := inner.Children()[0]
	b := rootView.Children()[1]
	require.Len(t, a.Constraints(), 4)
	require.Len(t, b.Constraints(), 4)
	assert.Equal(t, inner.ID(), a.Constraints()[0].Reference)
	assert.Equal(t, rootView.ID(), b.Constraints()[0].Reference, "nested stacks restore the parent")

	parent, ok := h.ctx.ParentID()
	assert.True(t, ok)
	assert.Equal(t, rootView.ID(), parent, "the root stack stays the anchor")
}

func TestRebuildRegistersNoLiveHandlers(t *testing.T) {
	h := newHarness()
	b := ButtonOf[appState]("Press").OnClick(func(s *appState, _ core.Window) { s.Count++ })

	first := b.BuildNative(h.ctx).ID()
	second := b.BuildNative(h.ctx).ID()

	m, ok := h.reg.Lookup(first)
	require.True(t, ok)
	assert.NotNil(t, m.Click)

	m, ok = h.reg.Lookup(second)
	require.True(t, ok)
	assert.True(t, m.IsEmpty())

	h.view(t, second).Press()
	assert.Zero(t, h.state.Count)
}

func TestBuildNilRoot(t *testing.T) {
	h := newHarness()
	native := Build[appState](h.ctx, nil)
	assert.Equal(t, headless.KindEmpty, h.view(t, native.ID()).Kind())
}

func TestBuildLeafRootIsItsOwnParent(t *testing.T) {
	h := newHarness()
	native := Build(h.ctx, ImageViewOf[appState](resources.ImageFromFile("logo.png")))

	parent, ok := h.ctx.ParentID()
	require.True(t, ok)
	assert.Equal(t, native.ID(), parent)

	img := h.view(t, native.ID())
	require.Len(t, img.Constraints(), 4)
	assert.Equal(t, native.ID(), img.Constraints()[0].Reference)
}

func TestBuildKeepsExistingParent(t *testing.T) {
	h := newHarness()
	content := h.ctx.ExchangeEventsForID(core.HandlerMap[appState]{})
	h.ctx.SetParentID(content)

	native := Build(h.ctx, ImageViewOf[appState](resources.ImageFromFile("logo.png")))

	parent, _ := h.ctx.ParentID()
	assert.Equal(t, content, parent)
	assert.Equal(t, content, h.view(t, native.ID()).Constraints()[0].Reference)
}

func TestBindingsRelease(t *testing.T) {
	h := newHarness()
	tip := core.NewState("tip")
	root := VStack[appState](
		LabelOf[appState]("").WithText(core.Bind(h.state.Label)).WithTooltip(core.Bind(tip)),
		CheckboxOf[appState]("On").WithChecked(h.state.Enabled),
	)
	native := Build(h.ctx, root)
	label := h.view(t, native.ID()).Children()[0]
	box := h.view(t, native.ID()).Children()[1]

	assert.Equal(t, 3, h.ctx.Bindings.Len())
	assert.Equal(t, 1, h.state.Label.ListenerCount())

	h.ctx.Bindings.Release()
	assert.Zero(t, h.ctx.Bindings.Len())
	assert.Zero(t, h.state.Label.ListenerCount())
	assert.Zero(t, h.state.Enabled.ListenerCount())
	assert.Zero(t, tip.ListenerCount())

	h.state.Label.Set("changed")
	h.state.Enabled.Set(true)
	assert.Equal(t, "Clicked: 0", label.Text())
	assert.False(t, box.Checked())
}

func TestBindingsNilIsPermanent(t *testing.T) {
	var b *Bindings
	b.track(func() { t.Fatal("nil bindings must not keep removers") })
	b.Release()
	assert.Zero(t, b.Len())
}
