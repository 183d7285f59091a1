package engine

import (
	"fmt"

	"algoviz/internal/solver"
)

// ToggleAction tells the caller what a cell toggle requires.
type ToggleAction int

const (
	// ToggleIgnored means the toggle had no effect (game already won).
	ToggleIgnored ToggleAction = iota
	// ToggleRemoved means the queen was removed locally, no round trip.
	ToggleRemoved
	// ToggleValidate means the caller must run a validation request and
	// feed the outcome back through ApplyAccept or ApplyReject.
	ToggleValidate
)

// PlacementLoop owns the interactive play-mode board. Cells become
// occupied only through ApplyAccept, never speculatively; removals are
// local because taking a queen off the board cannot create a conflict.
//
// Rejected placements leave a transient conflict set behind. Each
// rejection hands out a fresh token; the flash timer the UI schedules
// carries that token into ClearConflicts, so an old timer cannot clear
// the conflicts of a newer rejection.
type PlacementLoop struct {
	n             int
	board         solver.Board
	queens        int
	won           bool
	conflicts     []solver.Cell
	conflictToken int
	message       string
}

// NewPlacementLoop returns an empty interactive board of the given size.
func NewPlacementLoop(n int) *PlacementLoop {
	l := &PlacementLoop{}
	l.Resize(n)
	return l
}

// Resize clears everything and switches to a new board size.
func (l *PlacementLoop) Resize(n int) {
	l.n = n
	l.board = solver.NewBoard(n)
	l.queens = 0
	l.won = false
	l.conflicts = nil
	l.conflictToken++
	l.message = ""
}

// Reset clears the board without changing its size.
func (l *PlacementLoop) Reset() {
	l.Resize(l.n)
}

// BoardSize returns the board dimension.
func (l *PlacementLoop) BoardSize() int { return l.n }

// Board returns the live board. Callers must treat it as read-only.
func (l *PlacementLoop) Board() solver.Board { return l.board }

// QueensPlaced returns the number of queens on the board.
func (l *PlacementLoop) QueensPlaced() int { return l.queens }

// Won reports whether all n queens are placed.
func (l *PlacementLoop) Won() bool { return l.won }

// Conflicts returns the transient conflict set from the last rejection.
func (l *PlacementLoop) Conflicts() []solver.Cell { return l.conflicts }

// Message returns the last status message.
func (l *PlacementLoop) Message() string { return l.message }

// Toggle handles a click on (row, col). Occupied cells are cleared
// immediately; empty cells require validation by the caller.
func (l *PlacementLoop) Toggle(row, col int) ToggleAction {
	if l.won {
		return ToggleIgnored
	}

	if l.board.HasQueen(row, col) {
		l.board[row][col] = 0
		l.queens--
		l.conflicts = nil
		l.conflictToken++
		l.message = fmt.Sprintf("Removed queen from row %d, column %d.", row+1, col+1)
		return ToggleRemoved
	}

	return ToggleValidate
}

// ApplyAccept places a queen after a successful validation.
func (l *PlacementLoop) ApplyAccept(row, col int) {
	if l.won || l.board.HasQueen(row, col) {
		return
	}
	l.board[row][col] = 1
	l.queens++
	l.conflicts = nil
	l.conflictToken++

	if l.queens == l.n {
		l.won = true
		l.message = fmt.Sprintf("Solved! All %d queens placed.", l.n)
		return
	}
	l.message = fmt.Sprintf("Queen placed. %d more to go.", l.n-l.queens)
}

// ApplyReject stores the conflict set and message from a failed
// validation and returns the token the flash timer must present to
// ClearConflicts.
func (l *PlacementLoop) ApplyReject(resp *solver.ValidateResponse) int {
	l.conflicts = resp.Conflicts
	l.conflictToken++
	l.message = resp.Message
	return l.conflictToken
}

// ConflictToken returns the token of the current conflict set.
func (l *PlacementLoop) ConflictToken() int { return l.conflictToken }

// ClearConflicts drops the conflict set when the token still names it.
// A stale token means a newer rejection (or a board change) superseded
// the flash timer, which then must not fire.
func (l *PlacementLoop) ClearConflicts(token int) {
	if token != l.conflictToken {
		return
	}
	l.conflicts = nil
}

// SetMessage replaces the status message, used for hints and errors that
// do not touch the board.
func (l *PlacementLoop) SetMessage(msg string) {
	l.message = msg
}
