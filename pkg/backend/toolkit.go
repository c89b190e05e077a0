package backend

import (
	"github.com/go-drift/finestra/pkg/core"
	"github.com/go-drift/finestra/pkg/resources"
)

// Toolkit constructs native controls. Every constructor receives the
// identity the control was registered under; backends that need a native
// control identifier (Win32) derive it from that identity.
type Toolkit interface {
	NewButton(id core.ViewID, title string) ButtonControl
	NewCheckbox(id core.ViewID, title string) ToggleControl
	NewLabel(id core.ViewID, text string) TextControl
	NewTextBlock(id core.ViewID, text string) AlignedControl
	NewTextField(id core.ViewID, text string) TextInputControl
	NewStack(id core.ViewID, direction StackDirection) NativeView
	NewImageView(id core.ViewID, img resources.Image) ImageControl
	NewEmpty(id core.ViewID) NativeView

	// Constrain attaches c to view.
	Constrain(view NativeView, c Constraint)
}
