package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"algoviz/internal/engine"
	"algoviz/internal/solver"
	"algoviz/internal/solverclient"
)

// SimulateOptions configures the simulation app.
type SimulateOptions struct {
	Client    solverclient.Solver
	BoardSize int
	Interval  time.Duration
	Timeout   time.Duration
	Theme     Theme
}

// SimulateModel animates backtracking traces and browses the solution
// family for small boards.
type SimulateModel struct {
	client   solverclient.Solver
	interval time.Duration
	timeout  time.Duration
	theme    Theme
	board    *boardRenderer

	playback *engine.Playback[solver.SolveStep]
	browser  *engine.SolutionBrowser
	resp     *solver.SolveResponse

	// reqID tags the latest solve request; stale replies are dropped.
	reqID      int
	loading    bool
	errMsg     string
	promptNext bool

	width    int
	height   int
	quitting bool
}

// NewSimulateModel creates the simulation app for the given board size.
func NewSimulateModel(opts SimulateOptions) *SimulateModel {
	return &SimulateModel{
		client:   opts.Client,
		interval: opts.Interval,
		timeout:  opts.Timeout,
		theme:    opts.Theme,
		board:    newBoardRenderer(opts.Theme),
		playback: engine.NewPlayback[solver.SolveStep](),
		browser:  engine.NewSolutionBrowser(opts.BoardSize),
	}
}

// Init fetches the first trace.
func (m *SimulateModel) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, m.requestSolve())
}

// requestSolve starts a fetch for the browser's current (n, index) and
// invalidates every earlier in-flight request.
func (m *SimulateModel) requestSolve() tea.Cmd {
	m.reqID++
	m.loading = true
	m.errMsg = ""
	m.promptNext = false
	m.playback.Load(nil)
	return fetchSolve(m.client, m.timeout, m.reqID, m.browser.BoardSize(), m.browser.Current())
}

// Update handles input, solver replies, and auto-advance ticks.
func (m *SimulateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case solveLoadedMsg:
		if msg.id != m.reqID {
			return m, nil
		}
		m.loading = false
		m.resp = msg.resp
		m.playback.Load(msg.resp.Steps)
		return m, nil
	case requestFailedMsg:
		if msg.id != m.reqID {
			return m, nil
		}
		m.loading = false
		m.resp = nil
		m.playback.Load(nil)
		m.errMsg = msg.err.Error()
		return m, nil
	case playbackTickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

func (m *SimulateModel) handleTick(msg playbackTickMsg) (tea.Model, tea.Cmd) {
	more, finished := m.playback.Advance(msg.epoch)
	if more {
		return m, playbackTick(m.interval, m.playback.Epoch())
	}
	if finished && m.browser.PromptNext() {
		m.promptNext = true
	}
	return m, nil
}

func (m *SimulateModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case " ":
		if m.playback.Playing() {
			m.playback.Pause()
			return m, nil
		}
		m.promptNext = false
		m.playback.Play()
		if m.playback.Playing() {
			return m, playbackTick(m.interval, m.playback.Epoch())
		}
		return m, nil

	case "right", "l":
		if m.playback.AtEnd() && m.browser.PromptNext() {
			m.promptNext = true
			return m, nil
		}
		m.playback.StepForward()
		return m, nil

	case "left", "h":
		m.promptNext = false
		m.playback.StepBackward()
		return m, nil

	case "r":
		m.promptNext = false
		m.playback.Reset()
		return m, nil

	case "]":
		if m.browser.Next() {
			return m, m.requestSolve()
		}
		return m, nil

	case "[":
		if m.browser.Prev() {
			return m, m.requestSolve()
		}
		return m, nil

	case "enter", "y":
		// Accept the end-of-trace offer. Advancing is always explicit.
		if m.promptNext && m.browser.Next() {
			return m, m.requestSolve()
		}
		return m, nil

	case "n":
		m.promptNext = false
		return m, nil

	case "4", "5", "6", "7", "8":
		n := int(msg.String()[0] - '0')
		if n != m.browser.BoardSize() {
			m.browser.SetBoardSize(n)
			return m, m.requestSolve()
		}
		return m, nil
	}
	return m, nil
}

// View renders the current trace step.
func (m *SimulateModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(m.theme.Secondary)
	errStyle := lipgloss.NewStyle().Foreground(m.theme.Error)
	promptStyle := lipgloss.NewStyle().Foreground(m.theme.Warning).Bold(true)

	n := m.browser.BoardSize()
	title := titleStyle.Render(fmt.Sprintf("N-Queens Simulation — %d×%d", n, n))

	var body string
	switch {
	case m.loading:
		body = mutedStyle.Render("Loading trace...")
	case m.errMsg != "":
		body = errStyle.Render("Solver unavailable: " + m.errMsg)
	case m.playback.Len() == 0:
		body = mutedStyle.Render("No steps to animate for this board size.")
	default:
		step, _ := m.playback.Current()
		body = m.board.Render(engine.TraceBoardView(step), -1, -1)
		body += "\n" + mutedStyle.Render(step.Message)
	}

	status := mutedStyle.Render(engine.ProgressLabel(m.playback.Position(), m.playback.Len()))
	if m.browser.BrowseEnabled() {
		status += mutedStyle.Render(fmt.Sprintf("   solution %d / %d", m.browser.Current()+1, m.browser.Total()))
	} else if m.browser.Total() > 0 {
		status += mutedStyle.Render(fmt.Sprintf("   solution 1 of %d (browsing available for n ≤ %d)",
			m.browser.Total(), engine.MaxBrowseSize))
	}

	var prompt string
	if m.promptNext {
		prompt = promptStyle.Render("End of trace. Show next solution? (y/n)")
	}

	controls := []string{"space play/pause", "←/→ step", "r reset", "4-8 board size"}
	if m.browser.BrowseEnabled() {
		controls = append(controls, "[/] prev/next solution")
	}
	controls = append(controls, "q quit")
	help := mutedStyle.Render(strings.Join(controls, " • "))

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", status, prompt, help)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, border.Render(content))
	}
	return border.Render(content)
}
