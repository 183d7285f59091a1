package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"algoviz/internal/solver"
	"algoviz/internal/ui"
)

var simulateBoardSize int

func newSimulateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Animate the N-Queens backtracking search",
		Long: `Watch the backtracking solver place queens, hit dead ends, and
backtrack its way to a solution. For board sizes up to 6 every distinct
solution can be browsed; larger boards show the first solution.

Examples:
  algoviz simulate
  algoviz simulate -n 6
  algoviz simulate -n 8 --solver http://localhost:8711`,
		RunE: runSimulate,
	}

	cmd.Flags().IntVarP(&simulateBoardSize, "board-size", "n", 0, "board size (4-8, default from config)")

	return cmd
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	n := simulateBoardSize
	if n == 0 {
		n = cfg.Board.DefaultSize
	}
	if n < solver.MinBoardSize || n > solver.MaxBoardSize {
		return fmt.Errorf("board size must be between %d and %d", solver.MinBoardSize, solver.MaxBoardSize)
	}

	client, err := newSolverClient()
	if err != nil {
		return err
	}

	model := ui.NewSimulateModel(ui.SimulateOptions{
		Client:    client,
		BoardSize: n,
		Interval:  cfg.Playback.SolveInterval,
		Timeout:   cfg.Solver.Timeout,
		Theme:     ui.DefaultTheme(),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
