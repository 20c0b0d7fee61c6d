package tui

// colorMode discriminates how a Color's value is interpreted.
type colorMode uint8

const (
	colorDefault colorMode = iota // terminal default fg/bg
	colorANSI                     // 16-color palette, value is 0-15
	color256                      // 256-color palette, value is 0-255
	colorRGB                      // 24-bit, value is 0xRRGGBB
)

// Color represents a terminal color. The zero value is the terminal's
// default color.
type Color struct {
	mode  colorMode
	value uint32
}

// Basic 16-color palette. The bright variants map to SGR 90-97.
var (
	ColorDefault  = Color{}
	Black         = Color{mode: colorANSI, value: 0}
	Red           = Color{mode: colorANSI, value: 1}
	Green         = Color{mode: colorANSI, value: 2}
	Yellow        = Color{mode: colorANSI, value: 3}
	Blue          = Color{mode: colorANSI, value: 4}
	Magenta       = Color{mode: colorANSI, value: 5}
	Cyan          = Color{mode: colorANSI, value: 6}
	White         = Color{mode: colorANSI, value: 7}
	BrightBlack   = Color{mode: colorANSI, value: 8}
	BrightRed     = Color{mode: colorANSI, value: 9}
	BrightGreen   = Color{mode: colorANSI, value: 10}
	BrightYellow  = Color{mode: colorANSI, value: 11}
	BrightBlue    = Color{mode: colorANSI, value: 12}
	BrightMagenta = Color{mode: colorANSI, value: 13}
	BrightCyan    = Color{mode: colorANSI, value: 14}
	BrightWhite   = Color{mode: colorANSI, value: 15}
)

// Color256 returns a color from the 256-color palette.
func Color256(n uint8) Color {
	return Color{mode: color256, value: uint32(n)}
}

// RGB returns a 24-bit true color.
func RGB(r, g, b uint8) Color {
	return Color{mode: colorRGB, value: uint32(r)<<16 | uint32(g)<<8 | uint32(b)}
}

// IsDefault returns true if this is the terminal's default color.
func (c Color) IsDefault() bool {
	return c.mode == colorDefault
}

// Equal returns true if both colors are identical.
func (c Color) Equal(other Color) bool {
	return c.mode == other.mode && c.value == other.value
}

// rgb splits an RGB color into components. Only valid for colorRGB.
func (c Color) rgb() (r, g, b uint8) {
	return uint8(c.value >> 16), uint8(c.value >> 8), uint8(c.value)
}
