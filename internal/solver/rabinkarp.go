package solver

import "fmt"

// Rolling hash parameters. Small prime keeps the hash values readable on
// screen, which matters more here than collision resistance.
const (
	hashBase  = 256
	hashPrime = 101
)

// rabinKarp runs the search while recording a step for every hash
// computation, comparison, verification, and window slide.
type rabinKarp struct {
	text    string
	pattern string
	steps   []SearchStep
	matches []int
}

func (rk *rabinKarp) hash(s string) int {
	h := 0
	for _, ch := range []byte(s) {
		h = (hashBase*h + int(ch)) % hashPrime
	}
	return h
}

func indexRange(start, end int) []int {
	indices := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		indices = append(indices, i)
	}
	return indices
}

func (rk *rabinKarp) record(stepType SearchStepType, start, end, patternHash, windowHash int, msg string, isMatch bool, highlight []int) {
	if highlight == nil {
		highlight = []int{}
	}
	rk.steps = append(rk.steps, SearchStep{
		StepType:         stepType,
		WindowStart:      start,
		WindowEnd:        end,
		PatternHash:      patternHash,
		WindowHash:       windowHash,
		Message:          msg,
		IsMatch:          isMatch,
		HighlightIndices: highlight,
	})
}

func (rk *rabinKarp) search() {
	n, m := len(rk.text), len(rk.pattern)
	if m == 0 || m > n {
		return
	}

	patternHash := rk.hash(rk.pattern)
	rk.record(StepComputePatternHash, NoCell, NoCell, patternHash, 0,
		fmt.Sprintf("Computing pattern hash: %q → %d", rk.pattern, patternHash), false, nil)

	windowHash := rk.hash(rk.text[:m])
	rk.record(StepComputeWindowHash, 0, m-1, patternHash, windowHash,
		fmt.Sprintf("Computing first window hash: %q → %d", rk.text[:m], windowHash), false, indexRange(0, m))

	// base^(m-1) mod prime, used to drop the outgoing character.
	high := 1
	for i := 0; i < m-1; i++ {
		high = (high * hashBase) % hashPrime
	}

	for i := 0; i+m <= n; i++ {
		rk.record(StepCompareHash, i, i+m-1, patternHash, windowHash,
			fmt.Sprintf("Comparing hashes: pattern=%d, window=%d", patternHash, windowHash), false, indexRange(i, i+m))

		if patternHash == windowHash {
			rk.record(StepHashMatch, i, i+m-1, patternHash, windowHash,
				"Hash match! Verifying characters...", false, indexRange(i, i+m))

			if rk.text[i:i+m] == rk.pattern {
				rk.matches = append(rk.matches, i)
				rk.record(StepMatchFound, i, i+m-1, patternHash, windowHash,
					fmt.Sprintf("Pattern found at index %d!", i), true, indexRange(i, i+m))
			} else {
				rk.record(StepNoMatch, i, i+m-1, patternHash, windowHash,
					"Hash collision - characters don't match", false, indexRange(i, i+m))
			}
		}

		if i+m < n {
			oldChar := rk.text[i]
			newChar := rk.text[i+m]
			windowHash = (hashBase*(windowHash-int(oldChar)*high) + int(newChar)) % hashPrime
			if windowHash < 0 {
				windowHash += hashPrime
			}

			rk.record(StepSlideWindow, i+1, i+m, patternHash, windowHash,
				fmt.Sprintf("Sliding window: remove %q, add %q → hash=%d", oldChar, newChar, windowHash),
				false, indexRange(i+1, i+m+1))
		}
	}
}

// Search records the Rabin-Karp trace of pattern over text. Invalid input
// (empty pattern or pattern longer than text) yields an empty trace.
func Search(req *SearchRequest) *SearchResponse {
	rk := &rabinKarp{text: req.Text, pattern: req.Pattern}
	rk.search()

	resp := &SearchResponse{
		Steps:   rk.steps,
		Matches: rk.matches,
		Text:    req.Text,
		Pattern: req.Pattern,
	}
	if resp.Steps == nil {
		resp.Steps = []SearchStep{}
	}
	if resp.Matches == nil {
		resp.Matches = []int{}
	}
	return resp
}
