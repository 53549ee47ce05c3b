// Package theme colours pjatext reports for terminal output.
// Only the labels are styled; the messages stay plain so reports remain easy
// to grep even when coloured.
package theme

import "github.com/charmbracelet/lipgloss"

// Semantic colors using AdaptiveColor for automatic light/dark theme support.
var (
	// ColorSuccess marks successful outputs (green tones).
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#4ADE80"}

	// ColorError marks failed outputs (red tones).
	ColorError = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}

	// ColorTextMuted is used for the label separator.
	ColorTextMuted = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
)

// High contrast colors for accessibility.
var (
	ColorHighContrastSuccess = lipgloss.AdaptiveColor{Light: "#008000", Dark: "#00FF00"}
	ColorHighContrastError   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF0000"}
	ColorHighContrastText    = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}
)
