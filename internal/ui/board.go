package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"algoviz/internal/engine"
)

const queenGlyph = "♛"

// boardRenderer turns a grid of cell classes into a checkerboard.
type boardRenderer struct {
	theme Theme
}

func newBoardRenderer(theme Theme) *boardRenderer {
	return &boardRenderer{theme: theme}
}

// Render draws the board with rank and file labels. The cursor cell, if
// any, is drawn selected; pass cursorRow = -1 to hide it.
func (r *boardRenderer) Render(classes [][]engine.CellClass, cursorRow, cursorCol int) string {
	n := len(classes)
	if n == 0 {
		return ""
	}

	labelStyle := lipgloss.NewStyle().Foreground(r.theme.Muted)

	var sb strings.Builder
	sb.WriteString(labelStyle.Render("   "))
	for col := 0; col < n; col++ {
		sb.WriteString(labelStyle.Render(fmt.Sprintf(" %c ", 'a'+col)))
	}
	sb.WriteString("\n")

	for row := 0; row < n; row++ {
		sb.WriteString(labelStyle.Render(fmt.Sprintf(" %d ", row+1)))
		for col := 0; col < n; col++ {
			style := r.cellStyle(classes[row][col], row, col)
			if row == cursorRow && col == cursorCol {
				style = style.Background(r.theme.Selected).Bold(true)
			}
			sb.WriteString(style.Render(r.cellText(classes[row][col])))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *boardRenderer) cellText(class engine.CellClass) string {
	switch class {
	case engine.CellQueen, engine.CellActive, engine.CellConflict:
		return " " + queenGlyph + " "
	case engine.CellRemoved:
		return " × "
	case engine.CellHintTarget:
		return " ? "
	default:
		return "   "
	}
}

func (r *boardRenderer) cellStyle(class engine.CellClass, row, col int) lipgloss.Style {
	square := r.theme.LightSquare
	if (row+col)%2 == 1 {
		square = r.theme.DarkSquare
	}
	style := lipgloss.NewStyle().Background(square)

	switch class {
	case engine.CellQueen:
		return style.Foreground(r.theme.Primary).Bold(true)
	case engine.CellActive:
		return style.Foreground(r.theme.Success).Bold(true)
	case engine.CellRemoved:
		return style.Foreground(r.theme.Warning).Bold(true)
	case engine.CellConflict:
		return style.Foreground(r.theme.Error).Bold(true).Background(r.theme.Highlight)
	case engine.CellHintTarget:
		return style.Foreground(r.theme.Warning).Bold(true)
	default:
		return style
	}
}
