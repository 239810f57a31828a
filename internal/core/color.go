package core

// Color is a semantic colour role for a screen cell.
// The platform decides the actual terminal colour for each role.
type Color uint8

// Colour roles used by the renderer.
const (
	ColorDefault Color = iota
	ColorBorder
	ColorText
	ColorHead
	ColorBodyDark
	ColorBodyLight
	ColorFood
	ColorAlert
	ColorMuted
)

// String returns the role name used in configuration files.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBorder:
		return "border"
	case ColorText:
		return "text"
	case ColorHead:
		return "head"
	case ColorBodyDark:
		return "body_dark"
	case ColorBodyLight:
		return "body_light"
	case ColorFood:
		return "food"
	case ColorAlert:
		return "alert"
	case ColorMuted:
		return "muted"
	default:
		return "unknown"
	}
}

// Colors lists every colour role in declaration order.
func Colors() []Color {
	return []Color{
		ColorDefault, ColorBorder, ColorText, ColorHead, ColorBodyDark,
		ColorBodyLight, ColorFood, ColorAlert, ColorMuted,
	}
}
