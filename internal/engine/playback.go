// Package engine holds the playback and interaction state machines that
// drive the visualizer: step playback, solution browsing, and the
// interactive placement loop. The types here are plain synchronous state
// machines; timers and solver round-trips live with the UI layer, which
// calls back in with the epoch and token values handed out here so that
// stale ticks and superseded responses can never touch current state.
package engine

// Playback owns the current position within one immutable step sequence
// and the playing flag for auto-advance.
//
// Every Load and every transition out of the playing state bumps the
// epoch. A scheduled auto-advance tick carries the epoch observed when it
// was scheduled and is rejected by Advance when it no longer matches, so a
// tick scheduled against a discarded sequence is inert by construction.
type Playback[T any] struct {
	steps   []T
	pos     int
	playing bool
	epoch   int
}

// NewPlayback returns a controller with no sequence loaded.
func NewPlayback[T any]() *Playback[T] {
	return &Playback[T]{}
}

// Load replaces the sequence, rewinds to the first step, and stops
// playback. Any previously scheduled tick is orphaned by the epoch bump.
func (p *Playback[T]) Load(steps []T) {
	p.steps = steps
	p.pos = 0
	p.playing = false
	p.epoch++
}

// Len returns the length of the loaded sequence.
func (p *Playback[T]) Len() int { return len(p.steps) }

// Position returns the current step index. It is meaningful only when
// Len() > 0.
func (p *Playback[T]) Position() int { return p.pos }

// Playing reports whether auto-advance is active.
func (p *Playback[T]) Playing() bool { return p.playing }

// Epoch returns the token a scheduled tick must present to Advance.
func (p *Playback[T]) Epoch() int { return p.epoch }

// Current returns the step at the current position, or false when the
// sequence is empty.
func (p *Playback[T]) Current() (T, bool) {
	var zero T
	if len(p.steps) == 0 {
		return zero, false
	}
	return p.steps[p.pos], true
}

// Steps returns the loaded sequence. Callers must treat it as read-only.
func (p *Playback[T]) Steps() []T { return p.steps }

// AtEnd reports whether the position is at the last step of a non-empty
// sequence.
func (p *Playback[T]) AtEnd() bool {
	return len(p.steps) > 0 && p.pos == len(p.steps)-1
}

// Play starts auto-advance. A sequence that already finished restarts
// from the beginning. No-op on an empty sequence.
func (p *Playback[T]) Play() {
	if len(p.steps) == 0 {
		return
	}
	if p.pos == len(p.steps)-1 {
		p.pos = 0
	}
	p.playing = true
	p.epoch++
}

// Pause stops auto-advance. Idempotent.
func (p *Playback[T]) Pause() {
	if p.playing {
		p.playing = false
		p.epoch++
	}
}

// StepForward pauses and advances one step, stopping at the last index.
func (p *Playback[T]) StepForward() {
	p.Pause()
	if p.pos < len(p.steps)-1 {
		p.pos++
	}
}

// StepBackward pauses and moves back one step, stopping at index 0.
func (p *Playback[T]) StepBackward() {
	p.Pause()
	if p.pos > 0 {
		p.pos--
	}
}

// Reset pauses and rewinds to the first step.
func (p *Playback[T]) Reset() {
	p.Pause()
	p.pos = 0
}

// Advance applies one auto-advance tick scheduled under the given epoch.
// more reports whether a follow-up tick should be scheduled; finished
// reports that this very tick reached the last step and stopped playback
// (it can be true at most once per play). A stale epoch, a paused
// controller, or an empty sequence leaves the state untouched.
func (p *Playback[T]) Advance(epoch int) (more, finished bool) {
	if epoch != p.epoch || !p.playing || len(p.steps) == 0 {
		return false, false
	}
	if p.pos < len(p.steps)-1 {
		p.pos++
	}
	if p.pos == len(p.steps)-1 {
		// The epoch bump orphans any tick already in flight, so the
		// stop happens exactly once.
		p.playing = false
		p.epoch++
		return false, true
	}
	return true, false
}
