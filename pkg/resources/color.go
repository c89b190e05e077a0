// Package resources contains the platform-independent resource types that
// views and windows are configured with: colors, themes, menus, timers,
// cursors and images.
package resources

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"
)

// ColorKind identifies how a Color is specified.
type ColorKind int

const (
	// ColorDefault leaves the native control's own color untouched.
	ColorDefault ColorKind = iota
	// ColorTransparent is fully transparent.
	ColorTransparent
	// ColorSystem is one of the platform's named colors.
	ColorSystem
	// ColorRGBA is an explicit 8-bit RGBA color.
	ColorRGBA
)

// SystemColor names a platform-dependent color. Each backend maps it onto
// the closest native equivalent (NSColor on AppKit, GetSysColor on Win32).
type SystemColor int

const (
	// SystemLabel is the default foreground color of a label.
	SystemLabel SystemColor = iota
	// SystemBackground is the default background color.
	SystemBackground
	// SystemLink is the default foreground color of a link.
	SystemLink

	SystemBlack
	SystemWhite
	SystemBrown
	SystemBlue
	SystemGreen
	SystemIndigo
	SystemOrange
	SystemPink
	SystemPurple
	SystemRed
	SystemTeal
	SystemYellow
	SystemGray
)

var systemColorNames = [...]string{
	SystemLabel:      "label",
	SystemBackground: "background",
	SystemLink:       "link",
	SystemBlack:      "black",
	SystemWhite:      "white",
	SystemBrown:      "brown",
	SystemBlue:       "blue",
	SystemGreen:      "green",
	SystemIndigo:     "indigo",
	SystemOrange:     "orange",
	SystemPink:       "pink",
	SystemPurple:     "purple",
	SystemRed:        "red",
	SystemTeal:       "teal",
	SystemYellow:     "yellow",
	SystemGray:       "gray",
}

func (c SystemColor) String() string {
	if c >= 0 && int(c) < len(systemColorNames) {
		return systemColorNames[c]
	}
	return "unknown"
}

// fallbackPalette is used by backends without a native notion of the named
// color (and by the headless backend).
var fallbackPalette = map[SystemColor]color.RGBA{
	SystemLabel:      colornames.Black,
	SystemBackground: colornames.White,
	SystemLink:       colornames.Royalblue,
	SystemBlack:      colornames.Black,
	SystemWhite:      colornames.White,
	SystemBrown:      colornames.Brown,
	SystemBlue:       colornames.Blue,
	SystemGreen:      colornames.Green,
	SystemIndigo:     colornames.Indigo,
	SystemOrange:     colornames.Orange,
	SystemPink:       colornames.Pink,
	SystemPurple:     colornames.Purple,
	SystemRed:        colornames.Red,
	SystemTeal:       colornames.Teal,
	SystemYellow:     colornames.Yellow,
	SystemGray:       colornames.Gray,
}

// Color is a platform-independent color. The zero value is the
// context-dependent default color.
//
//	resources.System(resources.SystemRed)
//	resources.RGB(0x00, 0x00, 0xFF)
//	resources.RGBA(255, 0, 0, 127)
type Color struct {
	kind   ColorKind
	system SystemColor
	rgba   color.RGBA
}

// System creates a color from a platform-dependent SystemColor.
func System(c SystemColor) Color {
	return Color{kind: ColorSystem, system: c}
}

// RGB creates an opaque color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{kind: ColorRGBA, rgba: color.RGBA{R: r, G: g, B: b, A: 0xFF}}
}

// RGBA creates a color from 8-bit channels including alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{kind: ColorRGBA, rgba: color.RGBA{R: r, G: g, B: b, A: a}}
}

// Transparent creates a fully transparent color.
func Transparent() Color {
	return Color{kind: ColorTransparent}
}

// Kind returns how the color was specified.
func (c Color) Kind() ColorKind {
	return c.kind
}

// IsDefault reports whether the color leaves the native default in place.
func (c Color) IsDefault() bool {
	return c.kind == ColorDefault
}

// SystemColor returns the named color, if the color is a system color.
func (c Color) SystemColor() (SystemColor, bool) {
	return c.system, c.kind == ColorSystem
}

// Resolve converts the color into concrete RGBA channels. The second result
// is false for the default color, which has no concrete value.
func (c Color) Resolve() (color.RGBA, bool) {
	switch c.kind {
	case ColorTransparent:
		return color.RGBA{}, true
	case ColorSystem:
		rgba, ok := fallbackPalette[c.system]
		return rgba, ok
	case ColorRGBA:
		return c.rgba, true
	default:
		return color.RGBA{}, false
	}
}

// String returns "default", "transparent", the system color name or the
// hex form #rrggbbaa.
func (c Color) String() string {
	switch c.kind {
	case ColorDefault:
		return "default"
	case ColorTransparent:
		return "transparent"
	case ColorSystem:
		return c.system.String()
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.rgba.R, c.rgba.G, c.rgba.B, c.rgba.A)
}
