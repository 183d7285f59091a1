package solverclient

import (
	"context"
	"errors"
	"testing"

	"algoviz/internal/solver"
)

// Local must satisfy the same interface the HTTP client does.
var (
	_ Solver = (*Local)(nil)
	_ Solver = (*HTTP)(nil)
)

func TestLocalSolve(t *testing.T) {
	client := NewLocal()

	resp, err := client.Solve(context.Background(), 4, 0)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if resp.TotalSolutions != 2 {
		t.Errorf("Expected 2 total solutions, got %d", resp.TotalSolutions)
	}
}

func TestLocalSearch(t *testing.T) {
	client := NewLocal()

	resp, err := client.Search(context.Background(), "AABA", "ABA")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(resp.Matches) != 1 || resp.Matches[0] != 1 {
		t.Errorf("Expected matches [1], got %v", resp.Matches)
	}
}

func TestLocalValidateAndHint(t *testing.T) {
	client := NewLocal()
	board := solver.NewBoard(4)

	vresp, err := client.Validate(context.Background(), 4, board, 0, 0)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !vresp.Valid {
		t.Errorf("Expected placement on an empty board to be valid: %s", vresp.Message)
	}

	hresp, err := client.Hint(context.Background(), 4, board)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if !hresp.HasHint {
		t.Errorf("Expected a hint on an empty board: %s", hresp.Message)
	}
}

func TestLocalHonorsCanceledContext(t *testing.T) {
	client := NewLocal()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.Solve(ctx, 4, 0); err == nil {
		t.Error("Expected error for a canceled context")
	}
	if _, err := client.Search(ctx, "A", "A"); !IsTimeout(err) {
		t.Errorf("Expected a timeout-typed error, got %v", err)
	}
}

func TestServiceErrorMatching(t *testing.T) {
	err := NewServiceErrorWithCause(ErrTypeNetwork, "request failed", errors.New("connection refused"))

	if !errors.Is(err, &ServiceError{Type: ErrTypeNetwork}) {
		t.Error("Expected errors.Is to match by error type")
	}
	if errors.Is(err, &ServiceError{Type: ErrTypeTimeout}) {
		t.Error("Expected errors.Is not to match a different type")
	}
	if err.Unwrap() == nil {
		t.Error("Expected the cause to be exposed via Unwrap")
	}
}
