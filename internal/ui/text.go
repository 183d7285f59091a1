package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"algoviz/internal/engine"
	"algoviz/internal/solver"
)

// textRenderer draws the search text with the hash window highlighted.
type textRenderer struct {
	theme Theme
}

func newTextRenderer(theme Theme) *textRenderer {
	return &textRenderer{theme: theme}
}

// RenderText draws the haystack with per-character classes.
func (r *textRenderer) RenderText(text string, classes []engine.CharClass) string {
	normal := lipgloss.NewStyle()
	window := lipgloss.NewStyle().Background(r.theme.Selected).Foreground(r.theme.Primary).Bold(true)
	match := lipgloss.NewStyle().Background(r.theme.Success).Bold(true)

	var sb strings.Builder
	for i := 0; i < len(text); i++ {
		ch := string(text[i])
		switch classes[i] {
		case engine.CharWindow:
			sb.WriteString(window.Render(ch))
		case engine.CharMatch:
			sb.WriteString(match.Render(ch))
		default:
			sb.WriteString(normal.Render(ch))
		}
	}
	return sb.String()
}

// RenderIndexRuler draws index marks under the text every five
// characters so match offsets can be read off the screen.
func (r *textRenderer) RenderIndexRuler(length int) string {
	muted := lipgloss.NewStyle().Foreground(r.theme.Muted)
	var sb strings.Builder
	for i := 0; i < length; i++ {
		if i%5 == 0 {
			sb.WriteString(fmt.Sprintf("%d", i%10))
		} else {
			sb.WriteString("·")
		}
	}
	return muted.Render(sb.String())
}

// RenderHashes draws the pattern/window hash comparison for a step.
func (r *textRenderer) RenderHashes(step solver.SearchStep) string {
	muted := lipgloss.NewStyle().Foreground(r.theme.Secondary)
	equal := lipgloss.NewStyle().Foreground(r.theme.Success).Bold(true)

	if step.StepType == solver.StepComputePatternHash {
		return muted.Render(fmt.Sprintf("pattern hash: %-4d", step.PatternHash))
	}

	line := fmt.Sprintf("pattern hash: %-4d window hash: %-4d", step.PatternHash, step.WindowHash)
	if step.PatternHash == step.WindowHash {
		return muted.Render(line) + equal.Render("  (hashes equal)")
	}
	return muted.Render(line)
}
