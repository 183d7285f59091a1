// Package solverclient gives the UI a transport-agnostic handle on the
// solver service. The local client calls the solver package in-process;
// the HTTP client talks to a running `algoviz serve` instance. Both
// satisfy Solver, so the engine never knows which one it is driving.
package solverclient

import (
	"context"

	"algoviz/internal/solver"
)

// Solver is the request contract the visualizer consumes.
type Solver interface {
	// Search returns the Rabin-Karp trace for pattern over text.
	Search(ctx context.Context, text, pattern string) (*solver.SearchResponse, error)

	// Solve returns the backtracking trace ending at the solution with
	// the given 0-based index.
	Solve(ctx context.Context, n, solutionIndex int) (*solver.SolveResponse, error)

	// Validate checks a proposed queen placement against the board.
	Validate(ctx context.Context, n int, board solver.Board, row, col int) (*solver.ValidateResponse, error)

	// Hint suggests the next placement for the board.
	Hint(ctx context.Context, n int, board solver.Board) (*solver.HintResponse, error)

	// Solutions reports the solution family size for a board size.
	Solutions(ctx context.Context, n int) (*solver.SolutionCountResponse, error)
}
