// Package server exposes the solver as a JSON HTTP service, the same
// surface the HTTP client in solverclient consumes. Running `algoviz
// serve` lets the TUI (or any other frontend) talk to the solver over
// the network instead of in-process.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"algoviz/internal/logger"
	"algoviz/internal/solver"
)

// Server hosts the solver API.
type Server struct {
	addr       string
	log        *logger.Logger
	version    string
	httpServer *http.Server
}

// New creates a server listening on addr once started.
func New(addr, version string, log *logger.Logger) *Server {
	s := &Server{
		addr:    addr,
		log:     log.WithComponent("server"),
		version: version,
	}
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler builds the route table. Exposed so tests can drive the routes
// without a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/search", s.handleSearch)
	mux.HandleFunc("/api/nqueens/solve", s.handleSolve)
	mux.HandleFunc("/api/nqueens/validate", s.handleValidate)
	mux.HandleFunc("/api/nqueens/hint", s.handleHint)
	mux.HandleFunc("/api/nqueens/solutions", s.handleSolutions)
	return mux
}

// ListenAndServe blocks serving requests until Shutdown or failure.
func (s *Server) ListenAndServe() error {
	s.log.Info("solver service listening on %s", s.addr)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, map[string]string{
		"name":    "algoviz solver service",
		"version": s.version,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req solver.SearchRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.log.Debug("search: text=%d chars, pattern=%d chars", len(req.Text), len(req.Pattern))
	writeJSON(w, solver.Search(&req))
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solver.SolveRequest
	if !s.decode(w, r, &req) {
		return
	}
	if !s.checkBoardSize(w, req.N) {
		return
	}
	s.log.Debug("solve: n=%d index=%d", req.N, req.SolutionIndex)
	writeJSON(w, solver.Solve(&req))
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req solver.ValidateRequest
	if !s.decode(w, r, &req) {
		return
	}
	if !s.checkBoardSize(w, req.N) {
		return
	}
	writeJSON(w, solver.Validate(&req))
}

func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	var req solver.HintRequest
	if !s.decode(w, r, &req) {
		return
	}
	if !s.checkBoardSize(w, req.N) {
		return
	}
	writeJSON(w, solver.Hint(&req))
}

func (s *Server) handleSolutions(w http.ResponseWriter, r *http.Request) {
	var req solver.SolutionCountRequest
	if !s.decode(w, r, &req) {
		return
	}
	writeJSON(w, solver.SolutionCount(&req))
}

// decode reads a POST JSON body into dst. It writes the error response
// itself and returns false when the request is unusable.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.log.Warn("bad request on %s: %v", r.URL.Path, err)
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

func (s *Server) checkBoardSize(w http.ResponseWriter, n int) bool {
	if n < solver.MinBoardSize || n > solver.MaxBoardSize {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("board size must be between %d and %d", solver.MinBoardSize, solver.MaxBoardSize))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already sent; nothing left to report to the client.
		_ = err
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
