package solver

import "fmt"

// SolutionCounts holds the well-known number of distinct N-Queens
// solutions for every supported board size.
var SolutionCounts = map[int]int{
	4: 2,
	5: 10,
	6: 4,
	7: 40,
	8: 92,
}

// MinBoardSize and MaxBoardSize bound the board sizes the solver accepts.
const (
	MinBoardSize = 4
	MaxBoardSize = 8
)

// nqueensSolver walks the backtracking search while recording a step for
// every placement, removal, and completed solution.
type nqueensSolver struct {
	n     int
	board Board
	steps []SolveStep
	found int
}

func newNQueensSolver(n int) *nqueensSolver {
	return &nqueensSolver{n: n, board: NewBoard(n)}
}

// isSafe checks whether a queen at (row, col) is attacked by any queen in
// the rows above. It returns the attacking cells when it is not. Only the
// upper half-plane is checked because the solver fills rows top to bottom
// and the interactive board is validated one placement at a time.
func isSafe(board Board, n, row, col int) (bool, []Cell) {
	var conflicts []Cell

	for i := 0; i < row; i++ {
		if board[i][col] != 0 {
			conflicts = append(conflicts, Cell{Row: i, Col: col})
		}
	}

	for i, j := row-1, col-1; i >= 0 && j >= 0; i, j = i-1, j-1 {
		if board[i][j] != 0 {
			conflicts = append(conflicts, Cell{Row: i, Col: j})
		}
	}

	for i, j := row-1, col+1; i >= 0 && j < n; i, j = i-1, j+1 {
		if board[i][j] != 0 {
			conflicts = append(conflicts, Cell{Row: i, Col: j})
		}
	}

	return len(conflicts) == 0, conflicts
}

// solve searches from the given row and returns true once the solution
// with the target index has been recorded. Steps for earlier solutions and
// all intervening backtracks stay in the trace.
func (s *nqueensSolver) solve(target, row int) bool {
	if row == s.n {
		s.found++
		s.steps = append(s.steps, SolveStep{
			StepType: StepSolution,
			Row:      NoCell,
			Col:      NoCell,
			Board:    s.board.Clone(),
			Message:  fmt.Sprintf("Solution #%d found!", s.found),
		})
		return s.found > target
	}

	for col := 0; col < s.n; col++ {
		safe, _ := isSafe(s.board, s.n, row, col)
		if !safe {
			continue
		}

		s.board[row][col] = 1
		s.steps = append(s.steps, SolveStep{
			StepType: StepPlace,
			Row:      row,
			Col:      col,
			Board:    s.board.Clone(),
			Message:  fmt.Sprintf("Placing queen at row %d, column %d", row+1, col+1),
		})

		if s.solve(target, row+1) {
			return true
		}

		s.board[row][col] = 0
		s.steps = append(s.steps, SolveStep{
			StepType: StepBacktrack,
			Row:      row,
			Col:      col,
			Board:    s.board.Clone(),
			Message:  fmt.Sprintf("Backtracking from row %d, column %d", row+1, col+1),
		})
	}

	return false
}

// Solve records the backtracking trace up to and including the requested
// solution. Board sizes outside the supported range yield an empty trace.
func Solve(req *SolveRequest) *SolveResponse {
	total := SolutionCounts[req.N]
	if total == 0 {
		return &SolveResponse{Steps: []SolveStep{}}
	}

	index := req.SolutionIndex
	if index < 0 {
		index = 0
	}
	if index > total-1 {
		index = total - 1
	}

	s := newNQueensSolver(req.N)
	s.solve(index, 0)

	return &SolveResponse{
		Steps:           s.steps,
		TotalSolutions:  total,
		CurrentSolution: index + 1,
	}
}

// Validate checks a proposed queen placement against the current board.
func Validate(req *ValidateRequest) *ValidateResponse {
	if req.Row < 0 || req.Row >= req.N || req.Col < 0 || req.Col >= req.N {
		return &ValidateResponse{
			Valid:     false,
			Message:   fmt.Sprintf("Position (%d, %d) is outside the %d×%d board.", req.Row+1, req.Col+1, req.N, req.N),
			Conflicts: []Cell{},
		}
	}

	if req.Board.HasQueen(req.Row, req.Col) {
		return &ValidateResponse{
			Valid:     false,
			Message:   "There's already a queen at this position!",
			Conflicts: []Cell{},
		}
	}

	safe, conflicts := isSafe(req.Board, req.N, req.Row, req.Col)
	if safe {
		return &ValidateResponse{
			Valid:     true,
			Message:   "Valid move! Queen placed successfully.",
			Conflicts: []Cell{},
		}
	}

	desc := ""
	for i, c := range conflicts {
		if i > 0 {
			desc += ", "
		}
		desc += fmt.Sprintf("(%d, %d)", c.Row+1, c.Col+1)
	}

	return &ValidateResponse{
		Valid:     false,
		Message:   "Invalid move! Conflicts with queens at: " + desc,
		Conflicts: conflicts,
	}
}

// Hint suggests the next placement for the interactive board. The solver
// fills rows top to bottom, so the hint targets the first empty row and
// insists every row above it already holds exactly one queen.
func Hint(req *HintRequest) *HintResponse {
	firstEmpty := NoCell
	for row := 0; row < req.N; row++ {
		if rowQueenCount(req.Board, row) == 0 {
			firstEmpty = row
			break
		}
	}

	if firstEmpty == NoCell {
		return &HintResponse{
			HasHint: false,
			Message: "All queens are placed! Check if it's a valid solution.",
		}
	}

	for row := 0; row < firstEmpty; row++ {
		if rowQueenCount(req.Board, row) != 1 {
			return &HintResponse{
				HasHint: false,
				Message: fmt.Sprintf("Row %d needs exactly one queen before placing in row %d.", row+1, firstEmpty+1),
			}
		}
	}

	for col := 0; col < req.N; col++ {
		if safe, _ := isSafe(req.Board, req.N, firstEmpty, col); safe {
			return &HintResponse{
				HasHint: true,
				Row:     firstEmpty,
				Col:     col,
				Message: fmt.Sprintf("Try placing a queen at row %d, column %d.", firstEmpty+1, col+1),
			}
		}
	}

	return &HintResponse{
		HasHint: false,
		Message: "No valid moves in current row. You may need to backtrack!",
	}
}

// SolutionCount reports the known solution count for a board size.
// Unsupported sizes report zero.
func SolutionCount(req *SolutionCountRequest) *SolutionCountResponse {
	return &SolutionCountResponse{
		N:              req.N,
		TotalSolutions: SolutionCounts[req.N],
	}
}

func rowQueenCount(board Board, row int) int {
	if row >= len(board) {
		return 0
	}
	count := 0
	for _, cell := range board[row] {
		if cell != 0 {
			count++
		}
	}
	return count
}
