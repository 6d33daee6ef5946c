package sdlview

import "github.com/veandco/go-sdl2/sdl"

// Theme defines the colors shared by the built-in views.
type Theme struct {
	HighlightColor  sdl.Color // Selected row
	AccentColor     sdl.Color // Row stripes and icon tint
	TextColor       sdl.Color
	BackgroundColor sdl.Color // Window clear color
}

// CannoliTheme is the palette of the Cannoli firmware.
var CannoliTheme = Theme{
	HighlightColor:  HexToColor(0xFFFFFF),
	AccentColor:     HexToColor(0x008080),
	TextColor:       HexToColor(0xFFFFFF),
	BackgroundColor: HexToColor(0x000000),
}

var currentTheme = CannoliTheme

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 0xFF,
	}
}

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// Inset shrinks r by the padding.
func (p Padding) Inset(r sdl.Rect) sdl.Rect {
	return sdl.Rect{
		X: r.X + p.Left,
		Y: r.Y + p.Top,
		W: max(r.W-p.Left-p.Right, 0),
		H: max(r.H-p.Top-p.Bottom, 0),
	}
}
