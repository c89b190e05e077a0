package app

import (
	"github.com/go-drift/finestra/pkg/config"
	"github.com/go-drift/finestra/pkg/core"
	"github.com/go-drift/finestra/pkg/resources"
)

// DefaultTitle is the main window title when neither the delegate nor
// finestra.yaml sets one.
const DefaultTitle = "My Application"

// WindowConfiguration describes the main window.
//
// Title and Theme may be bound to a state cell; the window follows later
// changes of the cell. A zero Width or Height keeps the backend's default
// size.
type WindowConfiguration struct {
	Title   core.Value[string]
	Width   float64
	Height  float64
	Theme   core.Value[resources.Theme]
	MenuBar *resources.MenuBar
}

// NewWindowConfiguration returns an empty configuration. Values left unset
// are taken from finestra.yaml, then from the defaults.
func NewWindowConfiguration() *WindowConfiguration {
	return &WindowConfiguration{}
}

// WithTitle sets the title.
func (c *WindowConfiguration) WithTitle(title core.Value[string]) *WindowConfiguration {
	c.Title = title
	return c
}

// WithSize sets the content size.
func (c *WindowConfiguration) WithSize(width, height float64) *WindowConfiguration {
	c.Width, c.Height = width, height
	return c
}

// WithTheme sets the appearance.
func (c *WindowConfiguration) WithTheme(theme core.Value[resources.Theme]) *WindowConfiguration {
	c.Theme = theme
	return c
}

// WithMenuBar replaces the menu bar.
func (c *WindowConfiguration) WithMenuBar(bar *resources.MenuBar) *WindowConfiguration {
	c.MenuBar = bar
	return c
}

// WithMenu adds menu to the menu bar, creating the bar if needed. Items of
// a menu with the same name are merged.
func (c *WindowConfiguration) WithMenu(menu *resources.Menu) *WindowConfiguration {
	if c.MenuBar == nil {
		c.MenuBar = resources.NewMenuBar()
	}
	c.MenuBar.AddMenu(menu)
	return c
}

// resolve fills the values c leaves unset from the configuration file and
// the package defaults. c may be nil.
func (c *WindowConfiguration) resolve(file *config.Window) *WindowConfiguration {
	out := &WindowConfiguration{}
	if c != nil {
		*out = *c
	}

	if _, bound := out.Title.State(); !bound && out.Title.Get() == "" {
		switch {
		case file != nil && file.Title != "":
			out.Title = core.Raw(file.Title)
		default:
			out.Title = core.Raw(DefaultTitle)
		}
	}
	if out.Width == 0 && out.Height == 0 && file != nil {
		out.Width, out.Height = file.Width, file.Height
	}
	if _, bound := out.Theme.State(); !bound && out.Theme.Get() == resources.ThemeAutomatic && file != nil {
		out.Theme = core.Raw(file.Theme)
	}
	return out
}
