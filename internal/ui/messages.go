// Package ui hosts the bubbletea programs for the three visualizer
// modes. Solver calls run as commands tagged with a request id captured
// at issue time; Update drops any response whose id is no longer
// current, so a reply from a superseded request can never land on newer
// state. Auto-advance ticks carry the playback epoch the same way.
package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"algoviz/internal/solver"
	"algoviz/internal/solverclient"
)

// playbackTickMsg is one auto-advance tick. The epoch identifies the
// playback generation the tick was scheduled under.
type playbackTickMsg struct {
	epoch int
}

// conflictFlashMsg ends a conflict highlight. The token identifies the
// rejection that armed the timer.
type conflictFlashMsg struct {
	token int
}

type solveLoadedMsg struct {
	id   int
	resp *solver.SolveResponse
}

type searchLoadedMsg struct {
	id   int
	resp *solver.SearchResponse
}

type validateResultMsg struct {
	id   int
	row  int
	col  int
	resp *solver.ValidateResponse
}

type hintResultMsg struct {
	id   int
	resp *solver.HintResponse
}

type requestFailedMsg struct {
	id  int
	err error
}

// fileChangedMsg reports that the watched text file was rewritten.
type fileChangedMsg struct{}

// playbackTick schedules the next auto-advance tick for the given epoch.
func playbackTick(interval time.Duration, epoch int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return playbackTickMsg{epoch: epoch}
	})
}

// conflictFlash schedules the conflict-clear for the given token.
func conflictFlash(duration time.Duration, token int) tea.Cmd {
	return tea.Tick(duration, func(time.Time) tea.Msg {
		return conflictFlashMsg{token: token}
	})
}

// fetchSolve requests the trace for one solution of one board size.
func fetchSolve(client solverclient.Solver, timeout time.Duration, id, n, index int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.Solve(ctx, n, index)
		if err != nil {
			return requestFailedMsg{id: id, err: err}
		}
		return solveLoadedMsg{id: id, resp: resp}
	}
}

// fetchSearch requests the Rabin-Karp trace.
func fetchSearch(client solverclient.Solver, timeout time.Duration, id int, text, pattern string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.Search(ctx, text, pattern)
		if err != nil {
			return requestFailedMsg{id: id, err: err}
		}
		return searchLoadedMsg{id: id, resp: resp}
	}
}

// fetchValidate requests a placement validation.
func fetchValidate(client solverclient.Solver, timeout time.Duration, id, n int, board solver.Board, row, col int) tea.Cmd {
	// The board must be snapshotted before the command runs; the live
	// board can change while the request is in flight.
	snapshot := board.Clone()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.Validate(ctx, n, snapshot, row, col)
		if err != nil {
			return requestFailedMsg{id: id, err: err}
		}
		return validateResultMsg{id: id, row: row, col: col, resp: resp}
	}
}

// fetchHint requests a placement hint.
func fetchHint(client solverclient.Solver, timeout time.Duration, id, n int, board solver.Board) tea.Cmd {
	snapshot := board.Clone()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.Hint(ctx, n, snapshot)
		if err != nil {
			return requestFailedMsg{id: id, err: err}
		}
		return hintResultMsg{id: id, resp: resp}
	}
}
