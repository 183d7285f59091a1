package ui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"algoviz/internal/solver"
	"algoviz/internal/solverclient"
)

func newSearchModel(text, pattern string) *SearchModel {
	return NewSearchModel(SearchOptions{
		Client:   solverclient.NewLocal(),
		Text:     text,
		Pattern:  pattern,
		Interval: time.Second,
		Timeout:  time.Second,
		Theme:    DefaultTheme(),
	})
}

func loadSearch(m *SearchModel) {
	resp := solver.Search(&solver.SearchRequest{Text: m.inputText, Pattern: m.inputPattern})
	m.Update(searchLoadedMsg{id: m.reqID, resp: resp})
}

func TestSearchNormalizesInput(t *testing.T) {
	m := newSearchModel("abab", "ab")
	if m.inputText != "ABAB" || m.inputPattern != "AB" {
		t.Errorf("Expected uppercase inputs, got %q / %q", m.inputText, m.inputPattern)
	}
}

func TestSearchTypingUppercases(t *testing.T) {
	m := newSearchModel("", "")

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")})
	if m.inputText != "AB" {
		t.Errorf("Expected typed text uppercased, got %q", m.inputText)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if m.inputText != "A" {
		t.Errorf("Expected backspace to delete one character, got %q", m.inputText)
	}
}

func TestSearchTabCyclesFocus(t *testing.T) {
	m := newSearchModel("", "")
	if m.focus != focusText {
		t.Fatalf("Expected initial focus on text, got %v", m.focus)
	}

	m.Update(key("tab"))
	if m.focus != focusPattern {
		t.Errorf("Expected focus on pattern, got %v", m.focus)
	}

	m.Update(key("tab"))
	if m.focus != focusNone {
		t.Errorf("Expected focus on playback, got %v", m.focus)
	}
}

func TestSearchEnterIssuesRequest(t *testing.T) {
	m := newSearchModel("ABAB", "AB")

	_, cmd := m.Update(key("enter"))
	if cmd == nil {
		t.Fatal("Expected enter to start a search")
	}
	if !m.loading {
		t.Error("Expected loading state")
	}

	loadSearch(m)
	if m.loading {
		t.Error("Expected loading to clear")
	}
	if m.playback.Len() == 0 {
		t.Error("Expected the trace to be loaded")
	}
}

func TestSearchEnterWithoutInputsIgnored(t *testing.T) {
	m := newSearchModel("", "")
	if _, cmd := m.Update(key("enter")); cmd != nil {
		t.Error("Expected enter with empty inputs to be a no-op")
	}
}

func TestSearchDropsStaleResponse(t *testing.T) {
	m := newSearchModel("ABAB", "AB")
	m.Update(key("enter"))
	staleID := m.reqID
	staleResp := solver.Search(&solver.SearchRequest{Text: "ABAB", Pattern: "AB"})

	// A second search supersedes the first before it lands.
	m.Update(key("enter"))

	m.Update(searchLoadedMsg{id: staleID, resp: staleResp})
	if m.playback.Len() != 0 {
		t.Error("Expected the stale response to be dropped")
	}
	if !m.loading {
		t.Error("Expected the newer request to still be loading")
	}
}

func TestSearchInvalidInputShowsEmptyState(t *testing.T) {
	m := newSearchModel("AB", "ABCDE")
	m.Update(key("enter"))
	loadSearch(m)

	if m.playback.Len() != 0 {
		t.Error("Expected an empty trace for a pattern longer than the text")
	}
	if m.resp == nil {
		t.Fatal("Expected the response to be stored")
	}
	view := m.View()
	if view == "" {
		t.Error("Expected a non-empty view")
	}
}

func TestSearchPlaybackKeys(t *testing.T) {
	m := newSearchModel("ABAB", "AB")
	m.Update(key("enter"))
	loadSearch(m)
	m.focus = focusNone

	m.Update(key("right"))
	if m.playback.Position() != 1 {
		t.Errorf("Expected position 1, got %d", m.playback.Position())
	}

	m.Update(key("left"))
	if m.playback.Position() != 0 {
		t.Errorf("Expected position 0, got %d", m.playback.Position())
	}

	_, cmd := m.Update(key(" "))
	if cmd == nil {
		t.Error("Expected space to schedule a tick")
	}
	if !m.playback.Playing() {
		t.Error("Expected playback to be playing")
	}
}

func TestSearchEditKeysDoNotDrivePlayback(t *testing.T) {
	m := newSearchModel("ABAB", "AB")
	m.Update(key("enter"))
	loadSearch(m)
	m.focus = focusPattern

	m.Update(key("r"))
	if m.inputPattern != "ABR" {
		t.Errorf("Expected r to edit the pattern, got %q", m.inputPattern)
	}
	if m.playback.Position() != 0 {
		t.Error("Expected playback untouched while editing")
	}
}

func TestSearchFileChangeReloadsAndReissues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.txt")
	if err := os.WriteFile(path, []byte("abcabc\n"), 0o600); err != nil {
		t.Fatalf("Failed to write text file: %v", err)
	}

	m := NewSearchModel(SearchOptions{
		Client:   solverclient.NewLocal(),
		Text:     "old",
		Pattern:  "ABC",
		Interval: time.Second,
		Timeout:  time.Second,
		Theme:    DefaultTheme(),
		TextFile: path,
	})
	if m.focus != focusPattern {
		t.Errorf("Expected file-fed text to start focus on pattern, got %v", m.focus)
	}

	_, cmd := m.handleFileChanged()
	if m.inputText != "ABCABC" {
		t.Errorf("Expected reloaded text ABCABC, got %q", m.inputText)
	}
	if cmd == nil {
		t.Error("Expected the reload to re-issue the search")
	}
	if !m.loading {
		t.Error("Expected loading state after the reload")
	}
}
