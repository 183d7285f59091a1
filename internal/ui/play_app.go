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

// PlayOptions configures the interactive play app.
type PlayOptions struct {
	Client        solverclient.Solver
	BoardSize     int
	ConflictFlash time.Duration
	Timeout       time.Duration
	Theme         Theme
}

// PlayModel is the interactive N-Queens puzzle. Every placement goes
// through the solver for validation; removals are local.
type PlayModel struct {
	client        solverclient.Solver
	conflictFlash time.Duration
	timeout       time.Duration
	theme         Theme
	board         *boardRenderer

	loop *engine.PlacementLoop
	hint *solver.HintResponse

	cursorRow int
	cursorCol int

	// reqID tags the latest validate/hint request; stale replies are
	// dropped.
	reqID   int
	pending bool

	width    int
	height   int
	quitting bool
}

// NewPlayModel creates the play app for the given board size.
func NewPlayModel(opts PlayOptions) *PlayModel {
	return &PlayModel{
		client:        opts.Client,
		conflictFlash: opts.ConflictFlash,
		timeout:       opts.Timeout,
		theme:         opts.Theme,
		board:         newBoardRenderer(opts.Theme),
		loop:          engine.NewPlacementLoop(opts.BoardSize),
	}
}

// Init enters the alternate screen.
func (m *PlayModel) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update handles input, validation results, hints, and conflict flashes.
func (m *PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case validateResultMsg:
		return m.handleValidateResult(msg)
	case hintResultMsg:
		if msg.id != m.reqID {
			return m, nil
		}
		m.pending = false
		m.hint = msg.resp
		m.loop.SetMessage(msg.resp.Message)
		return m, nil
	case requestFailedMsg:
		if msg.id != m.reqID {
			return m, nil
		}
		m.pending = false
		m.loop.SetMessage("Solver unavailable: " + msg.err.Error())
		return m, nil
	case conflictFlashMsg:
		m.loop.ClearConflicts(msg.token)
		return m, nil
	}
	return m, nil
}

func (m *PlayModel) handleValidateResult(msg validateResultMsg) (tea.Model, tea.Cmd) {
	if msg.id != m.reqID {
		return m, nil
	}
	m.pending = false

	if msg.resp.Valid {
		m.loop.ApplyAccept(msg.row, msg.col)
		return m, nil
	}

	token := m.loop.ApplyReject(msg.resp)
	return m, conflictFlash(m.conflictFlash, token)
}

func (m *PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.loop.BoardSize()

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursorRow > 0 {
			m.cursorRow--
		}
		return m, nil
	case "down", "j":
		if m.cursorRow < n-1 {
			m.cursorRow++
		}
		return m, nil
	case "left":
		if m.cursorCol > 0 {
			m.cursorCol--
		}
		return m, nil
	case "right":
		if m.cursorCol < n-1 {
			m.cursorCol++
		}
		return m, nil

	case "enter", " ":
		return m.toggleCursor()

	case "h":
		if m.loop.Won() || m.pending {
			return m, nil
		}
		m.reqID++
		m.pending = true
		return m, fetchHint(m.client, m.timeout, m.reqID, n, m.loop.Board())

	case "r":
		m.resetBoard(n)
		return m, nil

	case "4", "5", "6", "7", "8":
		size := int(msg.String()[0] - '0')
		if size != n {
			m.resetBoard(size)
		}
		return m, nil
	}
	return m, nil
}

// resetBoard clears all state, including any in-flight request's claim
// on the board.
func (m *PlayModel) resetBoard(n int) {
	m.loop.Resize(n)
	m.hint = nil
	m.reqID++
	m.pending = false
	if m.cursorRow >= n {
		m.cursorRow = n - 1
	}
	if m.cursorCol >= n {
		m.cursorCol = n - 1
	}
}

func (m *PlayModel) toggleCursor() (tea.Model, tea.Cmd) {
	if m.pending {
		return m, nil
	}

	m.hint = nil
	switch m.loop.Toggle(m.cursorRow, m.cursorCol) {
	case engine.ToggleValidate:
		m.reqID++
		m.pending = true
		return m, fetchValidate(m.client, m.timeout, m.reqID,
			m.loop.BoardSize(), m.loop.Board(), m.cursorRow, m.cursorCol)
	default:
		return m, nil
	}
}

// View renders the interactive board.
func (m *PlayModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(m.theme.Secondary)
	wonStyle := lipgloss.NewStyle().Foreground(m.theme.Success).Bold(true)

	n := m.loop.BoardSize()
	title := titleStyle.Render(fmt.Sprintf("N-Queens Puzzle — %d×%d", n, n))

	classes := engine.PlayBoardView(m.loop, m.hint)
	body := m.board.Render(classes, m.cursorRow, m.cursorCol)

	status := mutedStyle.Render(fmt.Sprintf("queens: %d / %d", m.loop.QueensPlaced(), n))
	if m.pending {
		status += mutedStyle.Render("   validating...")
	}

	message := m.loop.Message()
	msgLine := mutedStyle.Render(message)
	if m.loop.Won() {
		msgLine = wonStyle.Render(message)
	}

	controls := []string{"arrows move", "enter place/remove", "h hint", "r reset", "4-8 board size", "q quit"}
	help := mutedStyle.Render(strings.Join(controls, " • "))

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", status, msgLine, help)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, border.Render(content))
	}
	return border.Render(content)
}
