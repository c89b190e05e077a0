package appkit

import (
	"github.com/go-drift/finestra/pkg/core"
	"github.com/go-drift/finestra/pkg/resources"
)

// standardActions maps item titles AppKit implements itself to their
// first-responder selectors. Such items never reach the application.
var standardActions = map[string]string{
	"Close Window":     "performClose:",
	"Copy":             "copy:",
	"Cut":              "cut:",
	"Enter FullScreen": "toggleFullScreen:",
	"Hide":             "hide:",
	"Hide Others":      "hideOtherApplications:",
	"Minimize":         "performMiniaturize:",
	"Paste":            "paste:",
	"Quit":             "terminate:",
	"Redo":             "redo:",
	"Select All":       "selectAll:",
	"Show All":         "unhideAllApplications:",
	"Toggle Sidebar":   "toggleSidebar:",
	"Undo":             "undo:",
	"Zoom":             "performZoom:",
}

// StandardAction returns the built-in selector for item, if AppKit
// handles it without application code.
func StandardAction(item resources.MenuItem) (string, bool) {
	title, ok := item.Title()
	if !ok {
		return "", false
	}
	sel, ok := standardActions[title]
	return sel, ok
}

// MenuEntry describes how one item of a menu bar is installed.
type MenuEntry struct {
	Menu string
	Item resources.MenuItem
	// Selector is the built-in action, empty for application items.
	Selector string
}

// MenuTarget is the action target of every application-defined menu item.
type MenuTarget struct {
	Dispatcher core.EventDispatcher
}

// Install completes bar with the standard menus and lists how each item is
// wired: built-in items get their selector, the rest target t.
func (t *MenuTarget) Install(bar *resources.MenuBar) []MenuEntry {
	bar.FillStandardMenus()

	var entries []MenuEntry
	for _, m := range bar.Menus {
		for _, item := range m.Items {
			if item.IsSeparator() {
				continue
			}
			sel, _ := StandardAction(item)
			entries = append(entries, MenuEntry{Menu: m.Name, Item: item, Selector: sel})
		}
	}
	return entries
}

// Perform is called when an application-defined item is chosen. Built-in
// items are ignored; AppKit routes them through the responder chain.
func (t *MenuTarget) Perform(item resources.MenuItem) bool {
	if _, builtin := StandardAction(item); builtin || item.IsSeparator() {
		return false
	}
	t.Dispatcher.DispatchEvent(core.MenuInvoked{Item: item})
	return true
}
