package core

// Color is the role a screen cell plays, not a concrete terminal colour.
// The platform theme decides how each role is styled.
type Color uint8

const (
	ColorDefault Color = iota
	ColorText          // HUD text
	ColorMuted         // hints, separators
	ColorFrame         // board border
	ColorWire          // unpowered wiring, the neutral colour
	ColorPower1        // dimmest powered shade
	ColorPower2
	ColorPower3
	ColorPower4 // brightest powered shade
	ColorSource
	ColorCursor
	ColorSuccess
	ColorWarning
)

// PowerShades is the number of distinct powered colours.
const PowerShades = 4

// PowerColor maps a shade bucket in [0, PowerShades] to a colour role.
// Shade 0 is unpowered and uses the neutral wire colour.
func PowerColor(shade int) Color {
	if shade <= 0 {
		return ColorWire
	}
	if shade > PowerShades {
		shade = PowerShades
	}
	return ColorPower1 + Color(shade-1)
}

// String returns the role name, used by themes and tests.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorText:
		return "text"
	case ColorMuted:
		return "muted"
	case ColorFrame:
		return "frame"
	case ColorWire:
		return "wire"
	case ColorPower1:
		return "power1"
	case ColorPower2:
		return "power2"
	case ColorPower3:
		return "power3"
	case ColorPower4:
		return "power4"
	case ColorSource:
		return "source"
	case ColorCursor:
		return "cursor"
	case ColorSuccess:
		return "success"
	case ColorWarning:
		return "warning"
	default:
		return "unknown"
	}
}
