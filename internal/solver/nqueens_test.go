package solver

import "testing"

// isValidSolution checks one queen per row and no two queens sharing a
// column or diagonal.
func isValidSolution(t *testing.T, board Board) {
	t.Helper()
	n := board.Size()

	var queens []Cell
	for row := 0; row < n; row++ {
		count := 0
		for col := 0; col < n; col++ {
			if board.HasQueen(row, col) {
				count++
				queens = append(queens, Cell{Row: row, Col: col})
			}
		}
		if count != 1 {
			t.Fatalf("Row %d has %d queens, expected 1", row, count)
		}
	}

	for i := 0; i < len(queens); i++ {
		for j := i + 1; j < len(queens); j++ {
			a, b := queens[i], queens[j]
			if a.Col == b.Col {
				t.Errorf("Queens at (%d,%d) and (%d,%d) share a column", a.Row, a.Col, b.Row, b.Col)
			}
			dr, dc := b.Row-a.Row, b.Col-a.Col
			if dr == dc || dr == -dc {
				t.Errorf("Queens at (%d,%d) and (%d,%d) share a diagonal", a.Row, a.Col, b.Row, b.Col)
			}
		}
	}
}

func TestSolveFirstSolution(t *testing.T) {
	resp := Solve(&SolveRequest{N: 4, SolutionIndex: 0})

	if len(resp.Steps) == 0 {
		t.Fatal("Expected a non-empty trace")
	}
	if resp.TotalSolutions != 2 {
		t.Errorf("Expected 2 total solutions, got %d", resp.TotalSolutions)
	}
	if resp.CurrentSolution != 1 {
		t.Errorf("Expected current solution 1, got %d", resp.CurrentSolution)
	}

	last := resp.Steps[len(resp.Steps)-1]
	if last.StepType != StepSolution {
		t.Fatalf("Expected trace to end with a solution step, got %q", last.StepType)
	}
	if last.Row != NoCell || last.Col != NoCell {
		t.Errorf("Expected solution step coordinates (%d, %d), got (%d, %d)", NoCell, NoCell, last.Row, last.Col)
	}
	if last.Board.QueenCount() != 4 {
		t.Errorf("Expected 4 queens on the solution board, got %d", last.Board.QueenCount())
	}
	isValidSolution(t, last.Board)
}

func TestSolveEverySolutionIsValid(t *testing.T) {
	for n := 4; n <= 6; n++ {
		for index := 0; index < SolutionCounts[n]; index++ {
			resp := Solve(&SolveRequest{N: n, SolutionIndex: index})

			last := resp.Steps[len(resp.Steps)-1]
			if last.StepType != StepSolution {
				t.Fatalf("n=%d index=%d: expected trace to end with a solution step, got %q", n, index, last.StepType)
			}
			if resp.CurrentSolution != index+1 {
				t.Errorf("n=%d index=%d: expected current solution %d, got %d", n, index, index+1, resp.CurrentSolution)
			}
			isValidSolution(t, last.Board)
		}
	}
}

func TestSolveDistinctSolutions(t *testing.T) {
	first := Solve(&SolveRequest{N: 4, SolutionIndex: 0})
	second := Solve(&SolveRequest{N: 4, SolutionIndex: 1})

	a := first.Steps[len(first.Steps)-1].Board
	b := second.Steps[len(second.Steps)-1].Board

	same := true
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if a[row][col] != b[row][col] {
				same = false
			}
		}
	}
	if same {
		t.Error("Expected solution 0 and solution 1 to differ")
	}
}

func TestSolveLaterTraceContainsEarlierSolutions(t *testing.T) {
	resp := Solve(&SolveRequest{N: 4, SolutionIndex: 1})

	solutions := 0
	for _, step := range resp.Steps {
		if step.StepType == StepSolution {
			solutions++
		}
	}
	if solutions != 2 {
		t.Errorf("Expected trace to pass through 2 solution steps, got %d", solutions)
	}
}

func TestSolveClampsSolutionIndex(t *testing.T) {
	resp := Solve(&SolveRequest{N: 4, SolutionIndex: 99})
	if resp.CurrentSolution != 2 {
		t.Errorf("Expected index clamped to the last solution (2), got %d", resp.CurrentSolution)
	}

	resp = Solve(&SolveRequest{N: 4, SolutionIndex: -1})
	if resp.CurrentSolution != 1 {
		t.Errorf("Expected negative index clamped to the first solution, got %d", resp.CurrentSolution)
	}
}

func TestSolveUnsupportedBoardSize(t *testing.T) {
	for _, n := range []int{0, 3, 9} {
		resp := Solve(&SolveRequest{N: n})
		if len(resp.Steps) != 0 {
			t.Errorf("n=%d: expected empty trace, got %d steps", n, len(resp.Steps))
		}
		if resp.TotalSolutions != 0 {
			t.Errorf("n=%d: expected 0 total solutions, got %d", n, resp.TotalSolutions)
		}
	}
}

func TestSolveStepBoardsAreSnapshots(t *testing.T) {
	resp := Solve(&SolveRequest{N: 4, SolutionIndex: 0})

	// A backtrack must leave later snapshots unaffected by earlier ones.
	for i, step := range resp.Steps {
		if step.StepType == StepPlace && !step.Board.HasQueen(step.Row, step.Col) {
			t.Errorf("Step %d: place snapshot missing its own queen", i)
		}
		if step.StepType == StepBacktrack && step.Board.HasQueen(step.Row, step.Col) {
			t.Errorf("Step %d: backtrack snapshot still holds the removed queen", i)
		}
	}
}

func TestValidate(t *testing.T) {
	empty := NewBoard(4)

	columnAttack := NewBoard(4)
	columnAttack[0][2] = 1

	diagonalAttack := NewBoard(4)
	diagonalAttack[0][0] = 1

	tests := []struct {
		name      string
		board     Board
		row, col  int
		valid     bool
		conflicts []Cell
	}{
		{name: "empty board accepts", board: empty, row: 0, col: 0, valid: true},
		{name: "column conflict", board: columnAttack, row: 2, col: 2, valid: false, conflicts: []Cell{{Row: 0, Col: 2}}},
		{name: "diagonal conflict", board: diagonalAttack, row: 2, col: 2, valid: false, conflicts: []Cell{{Row: 0, Col: 0}}},
		{name: "safe beside diagonal", board: diagonalAttack, row: 2, col: 3, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Validate(&ValidateRequest{N: 4, Board: tt.board, Row: tt.row, Col: tt.col})
			if resp.Valid != tt.valid {
				t.Fatalf("Expected valid=%v, got %v (%s)", tt.valid, resp.Valid, resp.Message)
			}
			if len(resp.Conflicts) != len(tt.conflicts) {
				t.Fatalf("Expected %d conflicts, got %d", len(tt.conflicts), len(resp.Conflicts))
			}
			for i, want := range tt.conflicts {
				if resp.Conflicts[i] != want {
					t.Errorf("Conflict %d: expected %v, got %v", i, want, resp.Conflicts[i])
				}
			}
		})
	}
}

func TestValidateOccupiedCell(t *testing.T) {
	board := NewBoard(4)
	board[1][1] = 1

	resp := Validate(&ValidateRequest{N: 4, Board: board, Row: 1, Col: 1})
	if resp.Valid {
		t.Fatal("Expected occupied cell to be rejected")
	}
	if resp.Message != "There's already a queen at this position!" {
		t.Errorf("Unexpected message: %q", resp.Message)
	}
}

func TestValidateOutOfRange(t *testing.T) {
	tests := []struct{ row, col int }{
		{row: -1, col: 0},
		{row: 0, col: -1},
		{row: 4, col: 0},
		{row: 0, col: 4},
	}

	for _, tt := range tests {
		resp := Validate(&ValidateRequest{N: 4, Board: NewBoard(4), Row: tt.row, Col: tt.col})
		if resp.Valid {
			t.Errorf("Expected (%d, %d) to be rejected as out of range", tt.row, tt.col)
		}
		if len(resp.Conflicts) != 0 {
			t.Errorf("Expected no conflict cells for out-of-range input, got %d", len(resp.Conflicts))
		}
	}
}

func TestValidateConflictMessageListsAttackers(t *testing.T) {
	board := NewBoard(4)
	board[0][1] = 1
	board[1][3] = 1

	resp := Validate(&ValidateRequest{N: 4, Board: board, Row: 2, Col: 1})
	if resp.Valid {
		t.Fatal("Expected rejection")
	}
	want := "Invalid move! Conflicts with queens at: (1, 2)"
	if resp.Message != want {
		t.Errorf("Expected message %q, got %q", want, resp.Message)
	}
}

func TestHintEmptyBoard(t *testing.T) {
	resp := Hint(&HintRequest{N: 4, Board: NewBoard(4)})
	if !resp.HasHint {
		t.Fatalf("Expected a hint on an empty board: %s", resp.Message)
	}
	if resp.Row != 0 || resp.Col != 0 {
		t.Errorf("Expected hint at (0, 0), got (%d, %d)", resp.Row, resp.Col)
	}
}

func TestHintTargetsFirstEmptyRow(t *testing.T) {
	board := NewBoard(4)
	board[0][1] = 1

	resp := Hint(&HintRequest{N: 4, Board: board})
	if !resp.HasHint {
		t.Fatalf("Expected a hint: %s", resp.Message)
	}
	if resp.Row != 1 {
		t.Errorf("Expected hint in row 1, got row %d", resp.Row)
	}
	if safe, _ := isSafe(board, 4, resp.Row, resp.Col); !safe {
		t.Errorf("Hinted cell (%d, %d) is not safe", resp.Row, resp.Col)
	}
}

func TestHintRequiresOneQueenPerRowAbove(t *testing.T) {
	board := NewBoard(4)
	board[1][0] = 1 // row 0 is empty but row 1 has a queen

	resp := Hint(&HintRequest{N: 4, Board: board})
	if !resp.HasHint {
		t.Fatalf("Expected a hint for the first empty row: %s", resp.Message)
	}
	if resp.Row != 0 {
		t.Errorf("Expected hint in row 0, got row %d", resp.Row)
	}

	// Two queens in one row block hints for later rows.
	board = NewBoard(4)
	board[0][0] = 1
	board[0][2] = 1
	resp = Hint(&HintRequest{N: 4, Board: board})
	if resp.HasHint {
		t.Error("Expected no hint when a row above holds two queens")
	}
}

func TestHintDeadEnd(t *testing.T) {
	// Queens at (0,0) and (1,2) leave no safe column in row 2.
	board := NewBoard(4)
	board[0][0] = 1
	board[1][2] = 1

	resp := Hint(&HintRequest{N: 4, Board: board})
	if resp.HasHint {
		t.Fatalf("Expected no hint at a dead end, got (%d, %d)", resp.Row, resp.Col)
	}
	if resp.Message != "No valid moves in current row. You may need to backtrack!" {
		t.Errorf("Unexpected message: %q", resp.Message)
	}
}

func TestHintFullBoard(t *testing.T) {
	board := NewBoard(4)
	board[0][2] = 1
	board[1][0] = 1
	board[2][3] = 1
	board[3][1] = 1

	resp := Hint(&HintRequest{N: 4, Board: board})
	if resp.HasHint {
		t.Error("Expected no hint on a full board")
	}
	if resp.Message != "All queens are placed! Check if it's a valid solution." {
		t.Errorf("Unexpected message: %q", resp.Message)
	}
}

func TestSolutionCount(t *testing.T) {
	tests := []struct{ n, want int }{
		{n: 4, want: 2},
		{n: 5, want: 10},
		{n: 6, want: 4},
		{n: 7, want: 40},
		{n: 8, want: 92},
		{n: 3, want: 0},
	}

	for _, tt := range tests {
		resp := SolutionCount(&SolutionCountRequest{N: tt.n})
		if resp.TotalSolutions != tt.want {
			t.Errorf("n=%d: expected %d solutions, got %d", tt.n, tt.want, resp.TotalSolutions)
		}
		if resp.N != tt.n {
			t.Errorf("Expected N=%d echoed back, got %d", tt.n, resp.N)
		}
	}
}
