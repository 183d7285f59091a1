package engine

import (
	"testing"

	"algoviz/internal/solver"
)

func boardWithQueens(n int, cells ...solver.Cell) solver.Board {
	b := solver.NewBoard(n)
	for _, c := range cells {
		b[c.Row][c.Col] = 1
	}
	return b
}

func TestTraceBoardViewPlaceStep(t *testing.T) {
	step := solver.SolveStep{
		StepType: solver.StepPlace,
		Row:      1,
		Col:      3,
		Board:    boardWithQueens(4, solver.Cell{Row: 0, Col: 1}, solver.Cell{Row: 1, Col: 3}),
	}

	classes := TraceBoardView(step)
	if classes[1][3] != CellActive {
		t.Error("Expected the just-placed queen to be marked active")
	}
	if classes[0][1] != CellQueen {
		t.Error("Expected the earlier queen to be marked as a plain queen")
	}
	if classes[2][2] != CellEmpty {
		t.Error("Expected untouched cells to be empty")
	}
}

func TestTraceBoardViewBacktrackStep(t *testing.T) {
	step := solver.SolveStep{
		StepType: solver.StepBacktrack,
		Row:      2,
		Col:      0,
		Board:    boardWithQueens(4, solver.Cell{Row: 0, Col: 1}),
	}

	classes := TraceBoardView(step)
	if classes[2][0] != CellRemoved {
		t.Error("Expected the vacated cell to be marked removed")
	}
}

func TestTraceBoardViewSolutionStepHasNoActiveCell(t *testing.T) {
	step := solver.SolveStep{
		StepType: solver.StepSolution,
		Row:      solver.NoCell,
		Col:      solver.NoCell,
		Board:    boardWithQueens(4, solver.Cell{Row: 0, Col: 2}, solver.Cell{Row: 1, Col: 0}, solver.Cell{Row: 2, Col: 3}, solver.Cell{Row: 3, Col: 1}),
	}

	classes := TraceBoardView(step)
	for row := range classes {
		for col, class := range classes[row] {
			if class == CellActive || class == CellRemoved {
				t.Errorf("Expected no active or removed cell on a solution step, got one at (%d, %d)", row, col)
			}
		}
	}
	if classes[0][2] != CellQueen {
		t.Error("Expected solution queens to be marked as queens")
	}
}

func TestPlayBoardViewConflictsAndHint(t *testing.T) {
	loop := NewPlacementLoop(4)
	loop.ApplyAccept(0, 0)
	loop.ApplyReject(&solver.ValidateResponse{
		Valid:     false,
		Message:   "Invalid move!",
		Conflicts: []solver.Cell{{Row: 0, Col: 0}},
	})

	hint := &solver.HintResponse{HasHint: true, Row: 1, Col: 2}
	classes := PlayBoardView(loop, hint)

	if classes[0][0] != CellConflict {
		t.Error("Expected the attacking queen to be marked as a conflict")
	}
	if classes[1][2] != CellHintTarget {
		t.Error("Expected the hinted cell to be marked as a hint target")
	}
}

func TestPlayBoardViewHintOnOccupiedCellIgnored(t *testing.T) {
	loop := NewPlacementLoop(4)
	loop.ApplyAccept(0, 0)

	hint := &solver.HintResponse{HasHint: true, Row: 0, Col: 0}
	classes := PlayBoardView(loop, hint)

	if classes[0][0] != CellQueen {
		t.Error("Expected the occupied cell to stay a queen, not a hint target")
	}
}

func TestSearchTextViewWindowAndMatch(t *testing.T) {
	text := "ABABC"

	window := SearchTextView(text, solver.SearchStep{
		StepType:         solver.StepCompareHash,
		HighlightIndices: []int{1, 2, 3},
	})
	if window[0] != CharNormal || window[1] != CharWindow || window[3] != CharWindow {
		t.Error("Expected window characters to be classed CharWindow")
	}

	match := SearchTextView(text, solver.SearchStep{
		StepType:         solver.StepMatchFound,
		HighlightIndices: []int{0, 1, 2},
	})
	if match[0] != CharMatch {
		t.Error("Expected match characters to be classed CharMatch")
	}
}

func TestSearchSummary(t *testing.T) {
	resp := &solver.SearchResponse{
		Steps:   make([]solver.SearchStep, 5),
		Matches: []int{10},
	}

	if got := SearchSummary(nil, 0); got != "No steps to show. Pattern must be non-empty and no longer than the text." {
		t.Errorf("Unexpected empty summary: %q", got)
	}
	if got := SearchSummary(resp, 2); got != "Step 3 of 5" {
		t.Errorf("Unexpected mid-trace summary: %q", got)
	}
	if got := SearchSummary(resp, 4); got != "Search complete: pattern found at index 10" {
		t.Errorf("Unexpected final summary: %q", got)
	}

	resp.Matches = nil
	if got := SearchSummary(resp, 4); got != "Search complete: no match found." {
		t.Errorf("Unexpected no-match summary: %q", got)
	}
}

func TestProgressLabel(t *testing.T) {
	if got := ProgressLabel(0, 0); got != "no steps" {
		t.Errorf("Unexpected empty label: %q", got)
	}
	if got := ProgressLabel(2, 7); got != "step 3 / 7" {
		t.Errorf("Unexpected label: %q", got)
	}
}
