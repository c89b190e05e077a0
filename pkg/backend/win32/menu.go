package win32

import (
	"sync"

	"github.com/go-drift/finestra/pkg/resources"
)

// MenuTable assigns WM_COMMAND identifiers to the titled items of a menu
// bar. Identifiers start at 1 and follow the order of the bar. An item
// appearing in several menus gets a single identifier.
type MenuTable struct {
	mu     sync.RWMutex
	byID   map[uint16]resources.MenuItem
	byItem map[resources.MenuItem]uint16
}

// NewMenuTable numbers the items of bar. A nil bar gives an empty table.
func NewMenuTable(bar *resources.MenuBar) *MenuTable {
	t := &MenuTable{
		byID:   make(map[uint16]resources.MenuItem),
		byItem: make(map[resources.MenuItem]uint16),
	}
	if bar == nil {
		return t
	}
	next := uint16(1)
	for _, m := range bar.Menus {
		for _, item := range m.Items {
			if item.IsSeparator() {
				continue
			}
			if _, ok := t.byItem[item]; ok {
				continue
			}
			t.byID[next] = item
			t.byItem[item] = next
			next++
		}
	}
	return t
}

// Lookup returns the item registered under a command identifier.
func (t *MenuTable) Lookup(cmd uint16) (resources.MenuItem, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	item, ok := t.byID[cmd]
	return item, ok
}

// CommandID returns the identifier assigned to item.
func (t *MenuTable) CommandID(item resources.MenuItem) (uint16, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	id, ok := t.byItem[item]
	return id, ok
}

// Len returns the number of numbered items.
func (t *MenuTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byID)
}
