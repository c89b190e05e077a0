package resources

import "slices"

// MenuItem is an entry in a Menu, such as "Open" in the "File" menu.
// MenuItem is comparable; two titled items with the same title are equal.
type MenuItem struct {
	title     string
	separator bool
}

// Titled creates a menu item with the given title.
func Titled(title string) MenuItem {
	return MenuItem{title: title}
}

// Separator creates a separator item.
func Separator() MenuItem {
	return MenuItem{separator: true}
}

// Title returns the item's title; ok is false for separators.
func (m MenuItem) Title() (string, bool) {
	return m.title, !m.separator
}

// IsSeparator reports whether the item is a separator.
func (m MenuItem) IsSeparator() bool {
	return m.separator
}

func (m MenuItem) String() string {
	if m.separator {
		return "---"
	}
	return m.title
}

// Menu is a drop-down menu in a MenuBar.
type Menu struct {
	Name  string
	Items []MenuItem
}

// NewMenu creates an empty menu with the given name.
func NewMenu(name string) *Menu {
	return &Menu{Name: name}
}

// AddItem appends an item to the menu.
func (m *Menu) AddItem(item MenuItem) {
	m.Items = append(m.Items, item)
}

// With appends items and returns the menu for chaining.
//
//	resources.NewMenu("File").With(resources.Titled("Open"), resources.Separator())
func (m *Menu) With(items ...MenuItem) *Menu {
	m.Items = append(m.Items, items...)
	return m
}

// MenuBar is an ordered list of menus.
type MenuBar struct {
	Menus []*Menu
}

// NewMenuBar creates an empty menu bar.
func NewMenuBar() *MenuBar {
	return &MenuBar{}
}

// Menu returns the menu with the given name, creating it at the end of the
// bar if it does not exist yet.
func (b *MenuBar) Menu(name string) *Menu {
	if m := b.find(name); m != nil {
		return m
	}
	m := NewMenu(name)
	b.Menus = append(b.Menus, m)
	return m
}

// AddMenu inserts menu, or merges its items into an existing menu with the
// same name. Items already present in the existing menu are not duplicated.
func (b *MenuBar) AddMenu(menu *Menu) {
	existing := b.Menu(menu.Name)
	if existing == menu {
		return
	}
	for _, item := range menu.Items {
		if !slices.Contains(existing.Items, item) {
			existing.Items = append(existing.Items, item)
		}
	}
}

// With merges menus into the bar and returns it for chaining.
func (b *MenuBar) With(menus ...*Menu) *MenuBar {
	for _, m := range menus {
		b.AddMenu(m)
	}
	return b
}

// EnsureMenuAt moves (or creates) the named menu so that it sits at pos.
func (b *MenuBar) EnsureMenuAt(name string, pos int) *Menu {
	idx := slices.IndexFunc(b.Menus, func(m *Menu) bool { return m.Name == name })
	if idx == pos {
		return b.Menus[pos]
	}

	var menu *Menu
	if idx >= 0 {
		menu = b.Menus[idx]
		b.Menus = slices.Delete(b.Menus, idx, idx+1)
	} else {
		menu = NewMenu(name)
	}

	if pos > len(b.Menus) {
		pos = len(b.Menus)
	}
	b.Menus = slices.Insert(b.Menus, pos, menu)
	return menu
}

// FillStandardMenus adds the menus a desktop user expects: the application
// menu (named ""), File and Edit with their standard items when empty, and
// keeps Selection third and Help last when present.
func (b *MenuBar) FillStandardMenus() {
	b.EnsureMenuAt("", 0)

	if file := b.EnsureMenuAt("File", 1); len(file.Items) == 0 {
		file.AddItem(Titled("Close Window"))
	}

	if edit := b.EnsureMenuAt("Edit", 2); len(edit.Items) == 0 {
		edit.With(
			Titled("Undo"),
			Titled("Redo"),
			Separator(),
			Titled("Cut"),
			Titled("Copy"),
			Titled("Paste"),
			Separator(),
			Titled("Select All"),
		)
	}

	if b.find("Selection") != nil {
		b.EnsureMenuAt("Selection", 3)
	}
	if b.find("Help") != nil {
		b.EnsureMenuAt("Help", len(b.Menus)-1)
	}
}

// Contains reports whether any menu of the bar holds item. Separators are
// never contained.
func (b *MenuBar) Contains(item MenuItem) bool {
	if item.separator {
		return false
	}
	for _, m := range b.Menus {
		if slices.Contains(m.Items, item) {
			return true
		}
	}
	return false
}

func (b *MenuBar) find(name string) *Menu {
	for _, m := range b.Menus {
		if m.Name == name {
			return m
		}
	}
	return nil
}
