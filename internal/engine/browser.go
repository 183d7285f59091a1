package engine

import "algoviz/internal/solver"

// MaxBrowseSize is the largest board size whose solution family can be
// browsed one solution at a time. Above it the traces get long enough
// that only the first solution is shown.
const MaxBrowseSize = 6

// SolutionBrowser tracks which solution of a board size's family is
// loaded. It decides indices and capability only; fetching the trace and
// reloading the playback controller is the caller's job.
type SolutionBrowser struct {
	n       int
	current int
	total   int
}

// NewSolutionBrowser returns a browser positioned at the first solution
// for the given board size.
func NewSolutionBrowser(n int) *SolutionBrowser {
	b := &SolutionBrowser{}
	b.SetBoardSize(n)
	return b
}

// SetBoardSize switches to a new board size and rewinds to solution 0.
func (b *SolutionBrowser) SetBoardSize(n int) {
	b.n = n
	b.current = 0
	b.total = solver.SolutionCounts[n]
}

// BoardSize returns the current board size.
func (b *SolutionBrowser) BoardSize() int { return b.n }

// Current returns the 0-based index of the loaded solution.
func (b *SolutionBrowser) Current() int { return b.current }

// Total returns the size of the solution family.
func (b *SolutionBrowser) Total() int { return b.total }

// BrowseEnabled reports whether per-solution browsing is available for
// the current board size.
func (b *SolutionBrowser) BrowseEnabled() bool {
	return b.n <= MaxBrowseSize && b.total > 0
}

// CanNext reports whether a next solution exists and browsing is enabled.
func (b *SolutionBrowser) CanNext() bool {
	return b.BrowseEnabled() && b.current < b.total-1
}

// CanPrev reports whether a previous solution exists and browsing is
// enabled.
func (b *SolutionBrowser) CanPrev() bool {
	return b.BrowseEnabled() && b.current > 0
}

// Next advances to the next solution and reports whether the index
// changed. The caller fetches the new trace on true.
func (b *SolutionBrowser) Next() bool {
	if !b.CanNext() {
		return false
	}
	b.current++
	return true
}

// Prev moves to the previous solution and reports whether the index
// changed.
func (b *SolutionBrowser) Prev() bool {
	if !b.CanPrev() {
		return false
	}
	b.current--
	return true
}

// PromptNext reports whether the end-of-trace "show next solution?"
// prompt should be offered. Advancing is always an explicit user action;
// this only signals that the offer is available.
func (b *SolutionBrowser) PromptNext() bool {
	return b.CanNext()
}
