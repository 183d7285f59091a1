package solverclient

import (
	"context"

	"algoviz/internal/solver"
)

// Local runs the solver in-process. It is the default client so the
// visualizer works with no service running.
type Local struct{}

// NewLocal returns an in-process solver client.
func NewLocal() *Local {
	return &Local{}
}

// Search implements Solver.
func (l *Local) Search(ctx context.Context, text, pattern string) (*solver.SearchResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewServiceErrorWithCause(ErrTypeTimeout, "search canceled", err)
	}
	return solver.Search(&solver.SearchRequest{Text: text, Pattern: pattern}), nil
}

// Solve implements Solver.
func (l *Local) Solve(ctx context.Context, n, solutionIndex int) (*solver.SolveResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewServiceErrorWithCause(ErrTypeTimeout, "solve canceled", err)
	}
	return solver.Solve(&solver.SolveRequest{N: n, SolutionIndex: solutionIndex}), nil
}

// Validate implements Solver.
func (l *Local) Validate(ctx context.Context, n int, board solver.Board, row, col int) (*solver.ValidateResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewServiceErrorWithCause(ErrTypeTimeout, "validate canceled", err)
	}
	return solver.Validate(&solver.ValidateRequest{N: n, Board: board, Row: row, Col: col}), nil
}

// Hint implements Solver.
func (l *Local) Hint(ctx context.Context, n int, board solver.Board) (*solver.HintResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewServiceErrorWithCause(ErrTypeTimeout, "hint canceled", err)
	}
	return solver.Hint(&solver.HintRequest{N: n, Board: board}), nil
}

// Solutions implements Solver.
func (l *Local) Solutions(ctx context.Context, n int) (*solver.SolutionCountResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewServiceErrorWithCause(ErrTypeTimeout, "solutions canceled", err)
	}
	return solver.SolutionCount(&solver.SolutionCountRequest{N: n}), nil
}
