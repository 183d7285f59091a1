package solverclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"algoviz/internal/solver"
)

// DefaultTimeout bounds every solver round-trip. A hung request is
// treated as a failure rather than waited out.
const DefaultTimeout = 10 * time.Second

// HTTPConfig configures the HTTP solver client.
type HTTPConfig struct {
	// BaseURL is the root of a running solver service.
	BaseURL string

	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration
}

// HTTP talks to a solver service over its JSON API.
type HTTP struct {
	client  *http.Client
	baseURL *url.URL
}

// NewHTTP returns a client for the service at cfg.BaseURL.
func NewHTTP(cfg HTTPConfig) (*HTTP, error) {
	if cfg.BaseURL == "" {
		return nil, NewServiceError(ErrTypeValidation, "base URL is required")
	}
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, NewServiceErrorWithCause(ErrTypeValidation, "invalid base URL", err)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &HTTP{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}, nil
}

// Search implements Solver.
func (h *HTTP) Search(ctx context.Context, text, pattern string) (*solver.SearchResponse, error) {
	var resp solver.SearchResponse
	req := &solver.SearchRequest{Text: text, Pattern: pattern}
	if err := h.post(ctx, "/api/search", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Solve implements Solver.
func (h *HTTP) Solve(ctx context.Context, n, solutionIndex int) (*solver.SolveResponse, error) {
	var resp solver.SolveResponse
	req := &solver.SolveRequest{N: n, SolutionIndex: solutionIndex}
	if err := h.post(ctx, "/api/nqueens/solve", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Validate implements Solver.
func (h *HTTP) Validate(ctx context.Context, n int, board solver.Board, row, col int) (*solver.ValidateResponse, error) {
	var resp solver.ValidateResponse
	req := &solver.ValidateRequest{N: n, Board: board, Row: row, Col: col}
	if err := h.post(ctx, "/api/nqueens/validate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Hint implements Solver.
func (h *HTTP) Hint(ctx context.Context, n int, board solver.Board) (*solver.HintResponse, error) {
	var resp solver.HintResponse
	req := &solver.HintRequest{N: n, Board: board}
	if err := h.post(ctx, "/api/nqueens/hint", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Solutions implements Solver.
func (h *HTTP) Solutions(ctx context.Context, n int) (*solver.SolutionCountResponse, error) {
	var resp solver.SolutionCountResponse
	req := &solver.SolutionCountRequest{N: n}
	if err := h.post(ctx, "/api/nqueens/solutions", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// HealthCheck verifies the service is reachable.
func (h *HTTP) HealthCheck(ctx context.Context) error {
	endpoint := h.baseURL.JoinPath("/health")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), http.NoBody)
	if err != nil {
		return NewServiceErrorWithCause(ErrTypeNetwork, "failed to create health check request", err)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return wrapTransportError("health check failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &ServiceError{
			Type:       ErrTypeService,
			Message:    "health check failed",
			StatusCode: resp.StatusCode,
		}
	}
	return nil
}

// post performs one JSON round-trip against the service.
func (h *HTTP) post(ctx context.Context, path string, reqBody, respBody any) error {
	endpoint := h.baseURL.JoinPath(path)

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return NewServiceErrorWithCause(ErrTypeValidation, "failed to marshal request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewBuffer(payload))
	if err != nil {
		return NewServiceErrorWithCause(ErrTypeNetwork, "failed to create request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(httpReq)
	if err != nil {
		return wrapTransportError("request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &ServiceError{
			Type:       ErrTypeService,
			Message:    fmt.Sprintf("%s: %s", path, string(body)),
			StatusCode: resp.StatusCode,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(respBody); err != nil {
		return NewServiceErrorWithCause(ErrTypeDecode, "failed to decode response", err)
	}
	return nil
}

func wrapTransportError(msg string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return NewServiceErrorWithCause(ErrTypeTimeout, msg, err)
	}
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return NewServiceErrorWithCause(ErrTypeTimeout, msg, err)
	}
	return NewServiceErrorWithCause(ErrTypeNetwork, msg, err)
}
