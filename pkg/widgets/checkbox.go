package widgets

import (
	"github.com/go-drift/finestra/pkg/backend"
	"github.com/go-drift/finestra/pkg/core"
	"github.com/go-drift/finestra/pkg/resources"
)

// Checkbox is a labeled two-state toggle. Its displayed state is bound to
// Checked; clicking the checkbox updates the cell and then runs the
// OnChecked callback with the new state.
type Checkbox[S any] struct {
	Base
	Text            core.Value[string]
	TextColor       core.Value[resources.Color]
	BackgroundColor core.Value[resources.Color]
	// Checked holds the checkbox state. A nil Checked gets a fresh cell
	// when the checkbox is built.
	Checked *core.State[bool]

	events core.HandlerMap[S]
}

// CheckboxOf creates a checkbox with a fixed title.
func CheckboxOf[S any](text string) *Checkbox[S] {
	return &Checkbox[S]{Text: core.Raw(text)}
}

// WithText sets the title.
func (c *Checkbox[S]) WithText(text core.Value[string]) *Checkbox[S] {
	c.Text = text
	return c
}

// WithTextColor sets the title color.
func (c *Checkbox[S]) WithTextColor(color core.Value[resources.Color]) *Checkbox[S] {
	c.TextColor = color
	return c
}

// WithBackgroundColor sets the bezel color.
func (c *Checkbox[S]) WithBackgroundColor(color core.Value[resources.Color]) *Checkbox[S] {
	c.BackgroundColor = color
	return c
}

// WithTooltip sets the tooltip.
func (c *Checkbox[S]) WithTooltip(tip core.Value[string]) *Checkbox[S] {
	c.Tooltip = tip
	return c
}

// WithChecked binds the checkbox state to s.
func (c *Checkbox[S]) WithChecked(s *core.State[bool]) *Checkbox[S] {
	c.Checked = s
	return c
}

// OnChecked sets the function called after the user toggles the checkbox.
func (c *Checkbox[S]) OnChecked(f func(state *S, checked bool, w core.Window)) *Checkbox[S] {
	c.events.Checked = f
	return c
}

func (c *Checkbox[S]) BuildNative(ctx *BuildContext[S]) backend.NativeView {
	id := ctx.register(c.events.Take())
	if c.Checked == nil {
		c.Checked = core.NewState(false)
	}
	checked := c.Checked
	owner := core.OwnerOrigin(id)

	ctl := ctx.Toolkit.NewCheckbox(id, c.Text.Get())
	ctl.SetChecked(checked.Get())
	bindColors(ctx.Bindings, c.TextColor, c.BackgroundColor, ctl)
	bindText(ctx.Bindings, c.Text, id, ctl.SetTitle)
	ctx.Bindings.track(checked.AddListenerWithOrigin(ctl.SetChecked, owner))
	c.attach(ctx.Bindings, ctl)

	d := ctx.Dispatcher()
	ctl.OnToggle(func(on bool) {
		core.ToggleFromControl(d, id, checked, on)
	})
	return ctl
}
