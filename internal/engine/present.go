package engine

import (
	"fmt"
	"strings"

	"algoviz/internal/solver"
)

// CellClass classifies one board cell for rendering.
type CellClass int

const (
	CellEmpty CellClass = iota
	CellQueen
	// CellActive marks the queen most recently placed by the trace.
	CellActive
	// CellRemoved marks the cell a backtrack step just vacated.
	CellRemoved
	// CellConflict marks an attacking queen from a rejected placement.
	CellConflict
	// CellHintTarget marks the cell a hint suggests.
	CellHintTarget
)

// CharClass classifies one text character for rendering in search mode.
type CharClass int

const (
	CharNormal CharClass = iota
	// CharWindow marks characters under the current hash window.
	CharWindow
	// CharMatch marks characters of a confirmed match window.
	CharMatch
)

// TraceBoardView derives per-cell classes from the current backtracking
// step. The board rendered is the step's snapshot, never a live board.
func TraceBoardView(step solver.SolveStep) [][]CellClass {
	n := step.Board.Size()
	classes := make([][]CellClass, n)
	for row := range classes {
		classes[row] = make([]CellClass, n)
		for col := range classes[row] {
			if step.Board.HasQueen(row, col) {
				classes[row][col] = CellQueen
			}
		}
	}

	if step.Row == solver.NoCell || step.Row >= n || step.Col >= n {
		return classes
	}

	switch step.StepType {
	case solver.StepPlace:
		classes[step.Row][step.Col] = CellActive
	case solver.StepBacktrack:
		classes[step.Row][step.Col] = CellRemoved
	}
	return classes
}

// PlayBoardView derives per-cell classes for the interactive board:
// queens, the transient conflict set, and an optional hint target.
func PlayBoardView(loop *PlacementLoop, hint *solver.HintResponse) [][]CellClass {
	n := loop.BoardSize()
	board := loop.Board()
	classes := make([][]CellClass, n)
	for row := range classes {
		classes[row] = make([]CellClass, n)
		for col := range classes[row] {
			if board.HasQueen(row, col) {
				classes[row][col] = CellQueen
			}
		}
	}

	for _, c := range loop.Conflicts() {
		if c.Row >= 0 && c.Row < n && c.Col >= 0 && c.Col < n {
			classes[c.Row][c.Col] = CellConflict
		}
	}

	if hint != nil && hint.HasHint && hint.Row < n && hint.Col < n && !board.HasQueen(hint.Row, hint.Col) {
		classes[hint.Row][hint.Col] = CellHintTarget
	}
	return classes
}

// SearchTextView derives a per-character class for the search text from
// the current step's highlight window.
func SearchTextView(text string, step solver.SearchStep) []CharClass {
	classes := make([]CharClass, len(text))
	window := CharWindow
	if step.StepType == solver.StepMatchFound {
		window = CharMatch
	}
	for _, i := range step.HighlightIndices {
		if i >= 0 && i < len(text) {
			classes[i] = window
		}
	}
	return classes
}

// SearchSummary produces the result line for a finished search trace: the
// match list once the final step is reached, or an explicit no-match
// message when the trace ended with none.
func SearchSummary(resp *solver.SearchResponse, position int) string {
	if resp == nil || len(resp.Steps) == 0 {
		return "No steps to show. Pattern must be non-empty and no longer than the text."
	}
	if position < len(resp.Steps)-1 {
		return fmt.Sprintf("Step %d of %d", position+1, len(resp.Steps))
	}
	if len(resp.Matches) == 0 {
		return "Search complete: no match found."
	}
	positions := make([]string, len(resp.Matches))
	for i, m := range resp.Matches {
		positions[i] = fmt.Sprintf("%d", m)
	}
	return "Search complete: pattern found at index " + strings.Join(positions, ", ")
}

// ProgressLabel renders the "step k / n" counter for any playback
// controller, or an empty-state label for a zero-length sequence.
func ProgressLabel(position, length int) string {
	if length == 0 {
		return "no steps"
	}
	return fmt.Sprintf("step %d / %d", position+1, length)
}
