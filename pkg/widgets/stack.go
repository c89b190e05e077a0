package widgets

import (
	"github.com/go-drift/finestra/pkg/backend"
	"github.com/go-drift/finestra/pkg/core"
)

// Stack lays its children out along one axis. The native toolkit decides
// spacing and sizing.
type Stack[S any] struct {
	Direction backend.StackDirection
	Children  []View[S]
}

// VStack stacks children vertically.
func VStack[S any](children ...View[S]) *Stack[S] {
	return &Stack[S]{Direction: backend.Vertical, Children: children}
}

// HStack stacks children horizontally.
func HStack[S any](children ...View[S]) *Stack[S] {
	return &Stack[S]{Direction: backend.Horizontal, Children: children}
}

// With appends a child.
func (s *Stack[S]) With(child View[S]) *Stack[S] {
	s.Children = append(s.Children, child)
	return s
}

// BuildNative builds the children with the stack as their logical parent
// and adds them to the native stack. A nested stack restores the previous
// parent afterwards; the root stack stays the parent so later constraint
// attachment has an anchor.
func (s *Stack[S]) BuildNative(ctx *BuildContext[S]) backend.NativeView {
	id := ctx.register(core.HandlerMap[S]{})
	native := ctx.Toolkit.NewStack(id, s.Direction)

	prev, nested := ctx.ParentID()
	ctx.SetParentID(id)
	for _, child := range s.Children {
		if child == nil {
			continue
		}
		native.AddChild(child.BuildNative(ctx))
	}
	if nested {
		ctx.SetParentID(prev)
	}
	return native
}
