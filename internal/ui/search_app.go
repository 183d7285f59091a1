package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"algoviz/internal/engine"
	"algoviz/internal/solver"
	"algoviz/internal/solverclient"
)

// searchFocus names the input field that receives keystrokes.
type searchFocus int

const (
	focusText searchFocus = iota
	focusPattern
	focusNone
)

// SearchOptions configures the Rabin-Karp search app.
type SearchOptions struct {
	Client   solverclient.Solver
	Text     string
	Pattern  string
	Interval time.Duration
	Timeout  time.Duration
	Theme    Theme

	// TextFile, when set, is the source of the haystack text. With
	// Watcher also set, a rewrite of the file reloads the text and
	// re-issues the search.
	TextFile string
	Watcher  *fsnotify.Watcher
}

// SearchModel animates Rabin-Karp traces.
type SearchModel struct {
	client   solverclient.Solver
	interval time.Duration
	timeout  time.Duration
	theme    Theme
	text     *textRenderer

	playback *engine.Playback[solver.SearchStep]
	resp     *solver.SearchResponse

	inputText    string
	inputPattern string
	focus        searchFocus

	textFile string
	watcher  *fsnotify.Watcher

	// reqID tags the latest search request; stale replies are dropped.
	reqID   int
	loading bool
	errMsg  string

	width    int
	height   int
	quitting bool
}

// NewSearchModel creates the search app. Inputs are normalized to
// uppercase before they reach the solver.
func NewSearchModel(opts SearchOptions) *SearchModel {
	m := &SearchModel{
		client:       opts.Client,
		interval:     opts.Interval,
		timeout:      opts.Timeout,
		theme:        opts.Theme,
		text:         newTextRenderer(opts.Theme),
		playback:     engine.NewPlayback[solver.SearchStep](),
		inputText:    strings.ToUpper(opts.Text),
		inputPattern: strings.ToUpper(opts.Pattern),
		focus:        focusText,
		textFile:     opts.TextFile,
		watcher:      opts.Watcher,
	}
	if m.textFile != "" {
		// File-fed text is not editable; start on the pattern field.
		m.focus = focusPattern
	}
	return m
}

// Init issues the initial search when both inputs are present and arms
// the file watcher.
func (m *SearchModel) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen}
	if m.inputText != "" && m.inputPattern != "" {
		cmds = append(cmds, m.requestSearch())
	}
	if m.watcher != nil {
		cmds = append(cmds, waitForFileChange(m.watcher))
	}
	return tea.Batch(cmds...)
}

// waitForFileChange blocks until the watched file is rewritten.
func waitForFileChange(w *fsnotify.Watcher) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return nil
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					return fileChangedMsg{}
				}
			case _, ok := <-w.Errors:
				if !ok {
					return nil
				}
			}
		}
	}
}

// requestSearch starts a fetch for the current inputs and invalidates
// every earlier in-flight request.
func (m *SearchModel) requestSearch() tea.Cmd {
	m.reqID++
	m.loading = true
	m.errMsg = ""
	m.playback.Load(nil)
	m.resp = nil
	return fetchSearch(m.client, m.timeout, m.reqID, m.inputText, m.inputPattern)
}

// Update handles input, solver replies, ticks, and file reloads.
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case searchLoadedMsg:
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
		m.playback.Load(nil)
		m.errMsg = msg.err.Error()
		return m, nil
	case playbackTickMsg:
		if more, _ := m.playback.Advance(msg.epoch); more {
			return m, playbackTick(m.interval, m.playback.Epoch())
		}
		return m, nil
	case fileChangedMsg:
		return m.handleFileChanged()
	}
	return m, nil
}

func (m *SearchModel) handleFileChanged() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{waitForFileChange(m.watcher)}

	data, err := os.ReadFile(m.textFile)
	if err != nil {
		m.errMsg = fmt.Sprintf("reload %s: %v", m.textFile, err)
		return m, tea.Batch(cmds...)
	}

	m.inputText = strings.ToUpper(strings.TrimSpace(string(data)))
	if m.inputPattern != "" {
		cmds = append(cmds, m.requestSearch())
	}
	return m, tea.Batch(cmds...)
}

func (m *SearchModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		if m.focus == focusNone {
			m.quitting = true
			return m, tea.Quit
		}
		m.focus = focusNone
		return m, nil

	case "tab":
		m.focus = m.nextFocus()
		return m, nil

	case "enter":
		if m.inputText != "" && m.inputPattern != "" {
			m.focus = focusNone
			return m, m.requestSearch()
		}
		return m, nil
	}

	if m.focus == focusText || m.focus == focusPattern {
		return m.handleEditKey(msg)
	}
	return m.handlePlaybackKey(msg)
}

func (m *SearchModel) nextFocus() searchFocus {
	switch m.focus {
	case focusText:
		return focusPattern
	case focusPattern:
		return focusNone
	default:
		if m.textFile != "" {
			return focusPattern
		}
		return focusText
	}
}

func (m *SearchModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	field := &m.inputText
	if m.focus == focusPattern {
		field = &m.inputPattern
	}

	switch msg.Type {
	case tea.KeyBackspace:
		if len(*field) > 0 {
			*field = (*field)[:len(*field)-1]
		}
	case tea.KeyRunes, tea.KeySpace:
		*field += strings.ToUpper(string(msg.Runes))
	}
	return m, nil
}

func (m *SearchModel) handlePlaybackKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case " ":
		if m.playback.Playing() {
			m.playback.Pause()
			return m, nil
		}
		m.playback.Play()
		if m.playback.Playing() {
			return m, playbackTick(m.interval, m.playback.Epoch())
		}
		return m, nil

	case "right", "l":
		m.playback.StepForward()
		return m, nil

	case "left", "h":
		m.playback.StepBackward()
		return m, nil

	case "r":
		m.playback.Reset()
		return m, nil
	}
	return m, nil
}

// View renders the current search step.
func (m *SearchModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(m.theme.Secondary)
	errStyle := lipgloss.NewStyle().Foreground(m.theme.Error)
	labelStyle := lipgloss.NewStyle().Foreground(m.theme.Secondary).Width(9)
	focusedStyle := lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true)

	title := titleStyle.Render("Rabin-Karp Search")

	textLabel := labelStyle.Render("text:")
	patternLabel := labelStyle.Render("pattern:")
	if m.focus == focusText {
		textLabel = focusedStyle.Width(9).Render("text:")
	}
	if m.focus == focusPattern {
		patternLabel = focusedStyle.Width(9).Render("pattern:")
	}

	textValue := m.inputText
	var ruler string
	if step, ok := m.playback.Current(); ok {
		textValue = m.text.RenderText(m.inputText, engine.SearchTextView(m.inputText, step))
		ruler = strings.Repeat(" ", 9) + m.text.RenderIndexRuler(len(m.inputText))
	}

	lines := []string{
		title,
		"",
		textLabel + textValue,
	}
	if ruler != "" {
		lines = append(lines, ruler)
	}
	lines = append(lines, patternLabel+m.inputPattern, "")

	switch {
	case m.loading:
		lines = append(lines, mutedStyle.Render("Searching..."))
	case m.errMsg != "":
		lines = append(lines, errStyle.Render("Solver unavailable: "+m.errMsg))
	case m.resp != nil && len(m.resp.Steps) == 0:
		lines = append(lines, mutedStyle.Render(engine.SearchSummary(m.resp, 0)))
	case m.playback.Len() > 0:
		step, _ := m.playback.Current()
		lines = append(lines,
			m.text.RenderHashes(step),
			mutedStyle.Render(step.Message),
			"",
			mutedStyle.Render(engine.ProgressLabel(m.playback.Position(), m.playback.Len())),
			mutedStyle.Render(engine.SearchSummary(m.resp, m.playback.Position())),
		)
	default:
		lines = append(lines, mutedStyle.Render("Type a text and a pattern, then press enter."))
	}

	controls := []string{"tab focus", "enter search", "space play/pause", "←/→ step", "r rewind", "esc/q quit"}
	if m.textFile != "" {
		controls = append(controls, "watching "+m.textFile)
	}
	lines = append(lines, "", mutedStyle.Render(strings.Join(controls, " • ")))

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(1, 2)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, border.Render(content))
	}
	return border.Render(content)
}
