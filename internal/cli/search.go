package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"algoviz/internal/ui"
)

var (
	searchText     string
	searchPattern  string
	searchTextFile string
	searchWatch    bool
)

func newSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Animate Rabin-Karp string search",
		Long: `Watch the Rabin-Karp rolling hash slide across a text. Hash matches
are verified character by character; collisions and confirmed matches
are called out step by step. Inputs are normalized to uppercase.

The text can come from a file, and with --watch the search re-runs
whenever the file is rewritten.

Examples:
  algoviz search --text ABABDABACDABABCABAB --pattern ABABC
  algoviz search --text-file corpus.txt --pattern NEEDLE
  algoviz search --text-file corpus.txt --pattern NEEDLE --watch`,
		RunE: runSearch,
	}

	cmd.Flags().StringVarP(&searchText, "text", "t", "", "text to search in")
	cmd.Flags().StringVarP(&searchPattern, "pattern", "p", "", "pattern to search for")
	cmd.Flags().StringVar(&searchTextFile, "text-file", "", "read the text from a file")
	cmd.Flags().BoolVar(&searchWatch, "watch", false, "re-run the search when the text file changes")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	if searchText != "" && searchTextFile != "" {
		return fmt.Errorf("--text and --text-file are mutually exclusive")
	}
	if searchWatch && searchTextFile == "" {
		return fmt.Errorf("--watch requires --text-file")
	}

	text := searchText
	if searchTextFile != "" {
		data, err := os.ReadFile(searchTextFile)
		if err != nil {
			return fmt.Errorf("failed to read text file: %w", err)
		}
		text = strings.TrimSpace(string(data))
	}

	client, err := newSolverClient()
	if err != nil {
		return err
	}

	opts := ui.SearchOptions{
		Client:   client,
		Text:     text,
		Pattern:  searchPattern,
		Interval: cfg.Playback.SearchInterval,
		Timeout:  cfg.Solver.Timeout,
		Theme:    ui.DefaultTheme(),
		TextFile: searchTextFile,
	}

	if searchWatch {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create file watcher: %w", err)
		}
		defer func() { _ = watcher.Close() }()

		if err := watcher.Add(searchTextFile); err != nil {
			return fmt.Errorf("failed to watch %s: %w", searchTextFile, err)
		}
		opts.Watcher = watcher
	}

	p := tea.NewProgram(ui.NewSearchModel(opts), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
