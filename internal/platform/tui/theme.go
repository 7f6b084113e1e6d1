package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lightemall/internal/core"
)

// Theme contains all configurable visual styles.
type Theme struct {
	Name string

	// Board styles
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Frame   lipgloss.Style
	Wire    lipgloss.Style // Unpowered tiles
	Power   [core.PowerShades]lipgloss.Style
	Source  lipgloss.Style
	Cursor  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style

	// Help bar
	Help lipgloss.Style

	// Level picker styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	TableHeader     lipgloss.Style
	TableSelected   lipgloss.Style
}

// DefaultTheme returns the default visual theme. Power shades run from a
// dim amber at the edge of the radius to bright yellow next to the source.
func DefaultTheme() Theme {
	return Theme{
		Name: "default",

		Text:  lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Frame: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Wire:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Power: [core.PowerShades]lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("94")),  // Dark amber
			lipgloss.NewStyle().Foreground(lipgloss.Color("136")), // Amber
			lipgloss.NewStyle().Foreground(lipgloss.Color("178")), // Gold
			lipgloss.NewStyle().Foreground(lipgloss.Color("226")), // Bright yellow
		},
		Source:  lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true),
		Cursor:  lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),

		Help: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		TableHeader: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true),
		TableSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")),
	}
}

// NeonTheme returns a neon-style theme.
func NeonTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "neon"
	theme.Wire = lipgloss.NewStyle().Foreground(lipgloss.Color("54")) // Deep purple
	theme.Power = [core.PowerShades]lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("93")),  // Violet
		lipgloss.NewStyle().Foreground(lipgloss.Color("171")), // Neon purple
		lipgloss.NewStyle().Foreground(lipgloss.Color("199")), // Neon pink
		lipgloss.NewStyle().Foreground(lipgloss.Color("87")),  // Neon cyan
	}
	theme.Cursor = lipgloss.NewStyle().Foreground(lipgloss.Color("118")).Bold(true)
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("199")).Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("87")).Bold(true)
	return theme
}

// MonoTheme returns a grayscale theme.
func MonoTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "mono"
	theme.Wire = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	theme.Power = [core.PowerShades]lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("247")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("251")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	}
	theme.Cursor = lipgloss.NewStyle().Reverse(true)
	theme.Success = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Underline(true)
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.TableSelected = lipgloss.NewStyle().Reverse(true)
	return theme
}

// ThemeByName returns the named theme. An empty name selects the default.
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", "default":
		return DefaultTheme(), nil
	case "neon":
		return NeonTheme(), nil
	case "mono":
		return MonoTheme(), nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q", name)
}

// Style maps a colour role from the screen buffer to a lipgloss style.
func (t Theme) Style(c core.Color) lipgloss.Style {
	switch c {
	case core.ColorText:
		return t.Text
	case core.ColorMuted:
		return t.Muted
	case core.ColorFrame:
		return t.Frame
	case core.ColorWire:
		return t.Wire
	case core.ColorPower1, core.ColorPower2, core.ColorPower3, core.ColorPower4:
		return t.Power[c-core.ColorPower1]
	case core.ColorSource:
		return t.Source
	case core.ColorCursor:
		return t.Cursor
	case core.ColorSuccess:
		return t.Success
	case core.ColorWarning:
		return t.Warning
	}
	return lipgloss.NewStyle()
}
