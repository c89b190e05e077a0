package widgets

import (
	"github.com/go-drift/finestra/pkg/backend"
	"github.com/go-drift/finestra/pkg/core"
)

// TextField is an editable single line of text. When Text is bound, the
// cell follows the user's edits; OnChange runs before the cell is updated.
type TextField[S any] struct {
	Base
	Text        core.Value[string]
	Placeholder string

	events core.HandlerMap[S]
}

// TextFieldOf creates a text field showing text.
func TextFieldOf[S any](text core.Value[string]) *TextField[S] {
	return &TextField[S]{Text: text}
}

// WithPlaceholder sets the text shown while the field is empty.
func (f *TextField[S]) WithPlaceholder(placeholder string) *TextField[S] {
	f.Placeholder = placeholder
	return f
}

// WithTooltip sets the tooltip.
func (f *TextField[S]) WithTooltip(tip core.Value[string]) *TextField[S] {
	f.Tooltip = tip
	return f
}

// OnChange sets the function called after every edit with the new text.
func (f *TextField[S]) OnChange(fn func(state *S, text string, w core.Window)) *TextField[S] {
	f.events.TextChanged = fn
	return f
}

func (f *TextField[S]) BuildNative(ctx *BuildContext[S]) backend.NativeView {
	id := ctx.register(f.events.Take())

	ctl := ctx.Toolkit.NewTextField(id, f.Text.Get())
	if f.Placeholder != "" {
		ctl.SetPlaceholder(f.Placeholder)
	}
	bindText(ctx.Bindings, f.Text, id, ctl.SetText)
	f.attach(ctx.Bindings, ctl)

	d := ctx.Dispatcher()
	bound, _ := f.Text.State()
	ctl.OnTextChange(func(text string) {
		core.TextFromControl(d, id, bound, text)
	})
	return ctl
}
