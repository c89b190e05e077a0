package widgets

import (
	"github.com/go-drift/finestra/pkg/backend"
	"github.com/go-drift/finestra/pkg/core"
	"github.com/go-drift/finestra/pkg/resources"
)

// Button is a push button.
//
//	widgets.ButtonOf[AppState]("Save").
//	    WithBackgroundColor(core.Raw(resources.System(resources.SystemBlue))).
//	    OnClick(func(s *AppState, w core.Window) {
//	        w.CreateDialog("Saved").Show()
//	    })
type Button[S any] struct {
	Base
	// Text is the button title.
	Text core.Value[string]
	// TextColor is the title color.
	TextColor core.Value[resources.Color]
	// BackgroundColor is the bezel color.
	BackgroundColor core.Value[resources.Color]

	events core.HandlerMap[S]
}

// ButtonOf creates a button with a fixed title.
func ButtonOf[S any](text string) *Button[S] {
	return &Button[S]{Text: core.Raw(text)}
}

// WithText sets the title.
func (b *Button[S]) WithText(text core.Value[string]) *Button[S] {
	b.Text = text
	return b
}

// WithTextColor sets the title color.
func (b *Button[S]) WithTextColor(c core.Value[resources.Color]) *Button[S] {
	b.TextColor = c
	return b
}

// WithBackgroundColor sets the bezel color.
func (b *Button[S]) WithBackgroundColor(c core.Value[resources.Color]) *Button[S] {
	b.BackgroundColor = c
	return b
}

// WithTooltip sets the tooltip.
func (b *Button[S]) WithTooltip(tip core.Value[string]) *Button[S] {
	b.Tooltip = tip
	return b
}

// OnClick sets the function called when the button is clicked.
func (b *Button[S]) OnClick(f func(state *S, w core.Window)) *Button[S] {
	b.events.Click = f
	return b
}

func (b *Button[S]) BuildNative(ctx *BuildContext[S]) backend.NativeView {
	id := ctx.register(b.events.Take())

	ctl := ctx.Toolkit.NewButton(id, b.Text.Get())
	bindColors(ctx.Bindings, b.TextColor, b.BackgroundColor, ctl)
	bindText(ctx.Bindings, b.Text, id, ctl.SetTitle)
	b.attach(ctx.Bindings, ctl)

	d := ctx.Dispatcher()
	ctl.OnActivate(func() {
		d.DispatchEvent(core.Activated{View: id})
	})
	return ctl
}
