// Package solver implements the algorithm engines behind the visualizer:
// a step-recording N-Queens backtracking solver and a step-recording
// Rabin-Karp matcher. The step records produced here are the unit of
// animation everywhere else in the program.
package solver

import (
	"encoding/json"
	"fmt"
)

// SolveStepType tags one recorded moment of the backtracking solver.
type SolveStepType string

const (
	StepPlace     SolveStepType = "place"
	StepBacktrack SolveStepType = "backtrack"
	StepSolution  SolveStepType = "solution"
)

// SearchStepType tags one recorded moment of the Rabin-Karp matcher.
type SearchStepType string

const (
	StepComputePatternHash SearchStepType = "compute_pattern_hash"
	StepComputeWindowHash  SearchStepType = "compute_window_hash"
	StepCompareHash        SearchStepType = "compare_hash"
	StepHashMatch          SearchStepType = "hash_match"
	StepMatchFound         SearchStepType = "match_found"
	StepNoMatch            SearchStepType = "no_match"
	StepSlideWindow        SearchStepType = "slide_window"
)

// NoCell marks a step whose row/col coordinates do not point at a cell,
// such as a solution step.
const NoCell = -1

// Board is an N×N grid where a nonzero cell holds a queen. It serializes
// as nested integer arrays.
type Board [][]int

// NewBoard returns an empty n×n board.
func NewBoard(n int) Board {
	b := make(Board, n)
	for i := range b {
		b[i] = make([]int, n)
	}
	return b
}

// Size returns the board dimension.
func (b Board) Size() int { return len(b) }

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	c := make(Board, len(b))
	for i, row := range b {
		c[i] = make([]int, len(row))
		copy(c[i], row)
	}
	return c
}

// HasQueen reports whether the cell holds a queen. Out-of-range
// coordinates report false.
func (b Board) HasQueen(row, col int) bool {
	if row < 0 || row >= len(b) || col < 0 || col >= len(b[row]) {
		return false
	}
	return b[row][col] != 0
}

// QueenCount returns the number of queens on the board.
func (b Board) QueenCount() int {
	count := 0
	for _, row := range b {
		for _, cell := range row {
			if cell != 0 {
				count++
			}
		}
	}
	return count
}

// Cell is a board coordinate. It serializes as a [row, col] pair to match
// the service wire format.
type Cell struct {
	Row int
	Col int
}

// MarshalJSON encodes the cell as a two-element array.
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.Row, c.Col})
}

// UnmarshalJSON decodes a two-element array into the cell.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var pair [2]int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("cell must be a [row, col] pair: %w", err)
	}
	c.Row, c.Col = pair[0], pair[1]
	return nil
}

// SolveStep is one recorded moment of the backtracking solver. Board is a
// snapshot taken at the moment the step was recorded; Row and Col name the
// queen most recently placed or removed, or NoCell on solution steps.
type SolveStep struct {
	StepType SolveStepType `json:"step_type"`
	Row      int           `json:"row"`
	Col      int           `json:"col"`
	Board    Board         `json:"board"`
	Message  string        `json:"message"`
}

// SearchStep is one recorded moment of the Rabin-Karp matcher.
type SearchStep struct {
	StepType         SearchStepType `json:"step_type"`
	WindowStart      int            `json:"window_start"`
	WindowEnd        int            `json:"window_end"`
	PatternHash      int            `json:"pattern_hash"`
	WindowHash       int            `json:"window_hash"`
	Message          string         `json:"message"`
	IsMatch          bool           `json:"is_match"`
	HighlightIndices []int          `json:"highlight_indices"`
}

// ValidateRequest asks whether a queen may be placed at (Row, Col) on the
// given board.
type ValidateRequest struct {
	N     int   `json:"n"`
	Board Board `json:"board"`
	Row   int   `json:"row"`
	Col   int   `json:"col"`
}

// ValidateResponse reports the outcome of a placement check. Conflicts
// lists the already-placed queens attacking the proposed cell.
type ValidateResponse struct {
	Valid     bool   `json:"valid"`
	Message   string `json:"message"`
	Conflicts []Cell `json:"conflicts"`
}

// SolveRequest asks for the full step trace leading to one particular
// solution, selected by its 0-based index.
type SolveRequest struct {
	N             int `json:"n"`
	SolutionIndex int `json:"solution_index"`
}

// SolveResponse carries the recorded trace. CurrentSolution is 1-based for
// display.
type SolveResponse struct {
	Steps           []SolveStep `json:"steps"`
	TotalSolutions  int         `json:"total_solutions"`
	CurrentSolution int         `json:"current_solution"`
}

// SolutionCountRequest asks how many distinct solutions exist for a board
// size.
type SolutionCountRequest struct {
	N int `json:"n"`
}

// SolutionCountResponse reports the known solution count for N.
type SolutionCountResponse struct {
	N              int `json:"n"`
	TotalSolutions int `json:"total_solutions"`
}

// HintRequest asks for advice on the next placement given the current
// board.
type HintRequest struct {
	N     int   `json:"n"`
	Board Board `json:"board"`
}

// HintResponse suggests a placement. Row and Col are meaningful only when
// HasHint is true.
type HintResponse struct {
	HasHint bool   `json:"has_hint"`
	Row     int    `json:"row,omitempty"`
	Col     int    `json:"col,omitempty"`
	Message string `json:"message"`
}

// SearchRequest asks for a Rabin-Karp trace of pattern over text.
type SearchRequest struct {
	Text    string `json:"text"`
	Pattern string `json:"pattern"`
}

// SearchResponse carries the recorded trace and the final match offsets.
// Empty Steps signals invalid input (empty pattern, or pattern longer than
// text).
type SearchResponse struct {
	Steps   []SearchStep `json:"steps"`
	Matches []int        `json:"matches"`
	Text    string       `json:"text"`
	Pattern string       `json:"pattern"`
}
