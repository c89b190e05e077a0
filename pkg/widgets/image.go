package widgets

import (
	"github.com/go-drift/finestra/pkg/backend"
	"github.com/go-drift/finestra/pkg/core"
	"github.com/go-drift/finestra/pkg/resources"
)

// ImageView displays an image. It is kept within the bounds of its
// logical parent.
type ImageView[S any] struct {
	Base
	Image resources.Image
}

// ImageViewOf creates an image view.
func ImageViewOf[S any](img resources.Image) *ImageView[S] {
	return &ImageView[S]{Image: img}
}

// WithTooltip sets the tooltip.
func (v *ImageView[S]) WithTooltip(tip core.Value[string]) *ImageView[S] {
	v.Tooltip = tip
	return v
}

func (v *ImageView[S]) BuildNative(ctx *BuildContext[S]) backend.NativeView {
	id := ctx.register(core.HandlerMap[S]{})

	ctl := ctx.Toolkit.NewImageView(id, v.Image)
	v.attach(ctx.Bindings, ctl)

	if parent, ok := ctx.ParentID(); ok {
		for _, c := range backend.ParentBox(parent) {
			ctx.Toolkit.Constrain(ctl, c)
		}
	}
	return ctl
}
