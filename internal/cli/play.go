package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"algoviz/internal/solver"
	"algoviz/internal/ui"
)

var playBoardSize int

func newPlayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Solve the N-Queens puzzle yourself",
		Long: `Place queens on the board one at a time. Every placement is checked
by the solver; attacking placements are rejected and the conflicting
queens flash briefly. Press h for a hint.

Examples:
  algoviz play
  algoviz play -n 8`,
		RunE: runPlay,
	}

	cmd.Flags().IntVarP(&playBoardSize, "board-size", "n", 0, "board size (4-8, default from config)")

	return cmd
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	n := playBoardSize
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

	model := ui.NewPlayModel(ui.PlayOptions{
		Client:        client,
		BoardSize:     n,
		ConflictFlash: cfg.Playback.ConflictFlash,
		Timeout:       cfg.Solver.Timeout,
		Theme:         ui.DefaultTheme(),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
