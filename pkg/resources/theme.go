package resources

// Theme is the appearance of a window.
type Theme int

const (
	// ThemeAutomatic follows the user's system preference.
	ThemeAutomatic Theme = iota
	// ThemeLight is a light appearance.
	ThemeLight
	// ThemeDark is a dark appearance.
	ThemeDark
)

func (t Theme) String() string {
	switch t {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	default:
		return "automatic"
	}
}

// ParseTheme converts a configuration string into a Theme. Unknown and empty
// values map to ThemeAutomatic and ok=false for unknown ones.
func ParseTheme(s string) (Theme, bool) {
	switch s {
	case "", "automatic", "auto", "system":
		return ThemeAutomatic, true
	case "light":
		return ThemeLight, true
	case "dark":
		return ThemeDark, true
	default:
		return ThemeAutomatic, false
	}
}

// TextAlignment is the justification of lines in a text view.
type TextAlignment int

const (
	AlignDefault TextAlignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a TextAlignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "natural"
	}
}
