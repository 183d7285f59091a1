package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the color palette shared by the three visualizer apps.
type Theme struct {
	Name string

	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Success   lipgloss.AdaptiveColor
	Warning   lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor

	Border    lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Selected  lipgloss.AdaptiveColor

	// Board colors
	LightSquare lipgloss.AdaptiveColor
	DarkSquare  lipgloss.AdaptiveColor
}

// DefaultTheme returns the standard palette.
func DefaultTheme() Theme {
	return Theme{
		Name:        "default",
		Primary:     lipgloss.AdaptiveColor{Light: "#3B82F6", Dark: "#60A5FA"},
		Secondary:   lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"},
		Success:     lipgloss.AdaptiveColor{Light: "#10B981", Dark: "#34D399"},
		Warning:     lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#FBBF24"},
		Error:       lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#F87171"},
		Border:      lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"},
		Muted:       lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"},
		Highlight:   lipgloss.AdaptiveColor{Light: "#FDE68A", Dark: "#92400E"},
		Selected:    lipgloss.AdaptiveColor{Light: "#DBEAFE", Dark: "#1E3A8A"},
		LightSquare: lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"},
		DarkSquare:  lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#1F2937"},
	}
}

// ApplyColorMode forces color on or off for the whole program. It must
// run before the first render because the terminal profile is detected
// lazily from the environment.
func ApplyColorMode(mode string) {
	switch mode {
	case "never":
		os.Setenv("NO_COLOR", "1")
	case "always":
		os.Setenv("CLICOLOR_FORCE", "1")
	}
}
