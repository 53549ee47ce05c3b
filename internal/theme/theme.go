package theme

import "github.com/charmbracelet/lipgloss"

// ThemeName identifies a theme variant.
type ThemeName string

const (
	// ThemeDefault uses soft green and red labels.
	ThemeDefault ThemeName = "default"

	// ThemeHighContrast is the high-contrast accessibility theme.
	ThemeHighContrast ThemeName = "high-contrast"
)

// Theme holds the colors used to paint a report.
type Theme struct {
	// Name is the theme identifier.
	Name ThemeName

	Success lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Muted   lipgloss.TerminalColor

	// Bold renders labels in bold.
	Bold bool
}

// DefaultTheme returns the default theme.
func DefaultTheme() *Theme {
	return &Theme{
		Name:    ThemeDefault,
		Success: ColorSuccess,
		Error:   ColorError,
		Muted:   ColorTextMuted,
		Bold:    true,
	}
}

// HighContrastTheme returns a high-contrast accessible theme.
func HighContrastTheme() *Theme {
	return &Theme{
		Name:    ThemeHighContrast,
		Success: ColorHighContrastSuccess,
		Error:   ColorHighContrastError,
		Muted:   ColorHighContrastText,
		Bold:    true,
	}
}

// GetTheme returns a theme by name. Returns DefaultTheme if name is not recognized.
func GetTheme(name ThemeName) *Theme {
	switch name {
	case ThemeHighContrast:
		return HighContrastTheme()
	default:
		return DefaultTheme()
	}
}

// AvailableThemes returns a list of all available theme names.
func AvailableThemes() []ThemeName {
	return []ThemeName{
		ThemeDefault,
		ThemeHighContrast,
	}
}

// IsAvailable reports whether name is a known theme.
func IsAvailable(name string) bool {
	for _, n := range AvailableThemes() {
		if string(n) == name {
			return true
		}
	}
	return false
}
