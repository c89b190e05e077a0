package widgets

import (
	"github.com/go-drift/finestra/pkg/backend"
	"github.com/go-drift/finestra/pkg/core"
	"github.com/go-drift/finestra/pkg/resources"
)

// Label is a single line of non-editable text.
type Label[S any] struct {
	Base
	Text            core.Value[string]
	TextColor       core.Value[resources.Color]
	BackgroundColor core.Value[resources.Color]
}

// LabelOf creates a label with fixed text.
func LabelOf[S any](text string) *Label[S] {
	return &Label[S]{Text: core.Raw(text)}
}

// WithText sets the text.
func (l *Label[S]) WithText(text core.Value[string]) *Label[S] {
	l.Text = text
	return l
}

// WithTextColor sets the text color.
func (l *Label[S]) WithTextColor(c core.Value[resources.Color]) *Label[S] {
	l.TextColor = c
	return l
}

// WithBackgroundColor sets the background color.
func (l *Label[S]) WithBackgroundColor(c core.Value[resources.Color]) *Label[S] {
	l.BackgroundColor = c
	return l
}

// WithTooltip sets the tooltip.
func (l *Label[S]) WithTooltip(tip core.Value[string]) *Label[S] {
	l.Tooltip = tip
	return l
}

func (l *Label[S]) BuildNative(ctx *BuildContext[S]) backend.NativeView {
	id := ctx.register(core.HandlerMap[S]{})

	ctl := ctx.Toolkit.NewLabel(id, l.Text.Get())
	bindColors(ctx.Bindings, l.TextColor, l.BackgroundColor, ctl)
	bindText(ctx.Bindings, l.Text, id, ctl.SetText)
	l.attach(ctx.Bindings, ctl)
	return ctl
}

// TextBlock is a multi-line block of non-editable text.
type TextBlock[S any] struct {
	Base
	Text            core.Value[string]
	TextColor       core.Value[resources.Color]
	BackgroundColor core.Value[resources.Color]
	Alignment       core.Value[resources.TextAlignment]
}

// TextBlockOf creates a text block with fixed text.
func TextBlockOf[S any](text string) *TextBlock[S] {
	return &TextBlock[S]{Text: core.Raw(text)}
}

// WithText sets the text.
func (t *TextBlock[S]) WithText(text core.Value[string]) *TextBlock[S] {
	t.Text = text
	return t
}

// WithTextColor sets the text color.
func (t *TextBlock[S]) WithTextColor(c core.Value[resources.Color]) *TextBlock[S] {
	t.TextColor = c
	return t
}

// WithBackgroundColor sets the background color.
func (t *TextBlock[S]) WithBackgroundColor(c core.Value[resources.Color]) *TextBlock[S] {
	t.BackgroundColor = c
	return t
}

// WithAlignment sets the horizontal text alignment.
func (t *TextBlock[S]) WithAlignment(a core.Value[resources.TextAlignment]) *TextBlock[S] {
	t.Alignment = a
	return t
}

// WithTooltip sets the tooltip.
func (t *TextBlock[S]) WithTooltip(tip core.Value[string]) *TextBlock[S] {
	t.Tooltip = tip
	return t
}

func (t *TextBlock[S]) BuildNative(ctx *BuildContext[S]) backend.NativeView {
	id := ctx.register(core.HandlerMap[S]{})

	ctl := ctx.Toolkit.NewTextBlock(id, t.Text.Get())
	bindColors(ctx.Bindings, t.TextColor, t.BackgroundColor, ctl)
	bindValue(ctx.Bindings, t.Alignment, ctl.SetAlignment)
	bindText(ctx.Bindings, t.Text, id, ctl.SetText)
	t.attach(ctx.Bindings, ctl)
	return ctl
}
