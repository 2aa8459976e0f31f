// Package stories implements the story viewer playback state machine.
//
// A Player advances through one user's ordered story sequence on a fixed
// per-story timer. It is deliberately decoupled from any scheduling
// primitive: callers advance it with Tick(dt), so tests never need
// wall-clock waits.
package stories

import (
	"time"

	"vidloop-backend/internal/models"
)

// StoryDuration is how long each story plays before auto-advancing.
const StoryDuration = 5 * time.Second

// Status is the playback state of a Player.
type Status int

const (
	StatusPlaying Status = iota
	StatusPaused
	StatusClosed
)

// String returns the wire name of the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	default:
		return "closed"
	}
}

// Player drives a timed, interruptible slideshow over an ordered story
// list. Not safe for concurrent use; callers serialize access.
type Player struct {
	stories []*models.Story
	index   int
	elapsed float64 // fraction of the current story elapsed, in [0, 1]
	status  Status

	// Per-story derived state; resets whenever the index changes.
	liked      bool
	replyDraft string
}

// NewPlayer opens a viewer over the given stories, starting at the first
// one. An empty list is a degenerate case: the viewer opens already closed.
func NewPlayer(stories []*models.Story) *Player {
	p := &Player{stories: stories}
	if len(stories) == 0 {
		p.status = StatusClosed
		return p
	}
	stories[0].Viewed = true
	return p
}

// Tick advances playback by dt. While playing, reaching the end of the
// current story auto-advances; reaching the end of the last story closes
// the viewer. Ticks are ignored while paused or closed.
func (p *Player) Tick(dt time.Duration) {
	if p.status != StatusPlaying {
		return
	}
	p.elapsed += dt.Seconds() / StoryDuration.Seconds()
	if p.elapsed < 1 {
		return
	}
	if p.index == len(p.stories)-1 {
		p.elapsed = 1
		p.status = StatusClosed
		return
	}
	p.setIndex(p.index + 1)
}

// Pause freezes the timer at the current elapsed fraction.
func (p *Player) Pause() {
	if p.status == StatusPlaying {
		p.status = StatusPaused
	}
}

// Resume continues from the frozen elapsed fraction. Pausing and resuming
// must not lose or double-count progress.
func (p *Player) Resume() {
	if p.status == StatusPaused {
		p.status = StatusPlaying
	}
}

// Next moves to the following story, resetting its progress. Navigating
// past the last story closes the viewer.
func (p *Player) Next() {
	if p.status == StatusClosed {
		return
	}
	if p.index >= len(p.stories)-1 {
		p.status = StatusClosed
		return
	}
	p.setIndex(p.index + 1)
}

// Prev moves to the previous story, resetting its progress. At the first
// story it is a no-op.
func (p *Player) Prev() {
	if p.status == StatusClosed || p.index == 0 {
		return
	}
	p.setIndex(p.index - 1)
}

// Close dismisses the viewer from any state.
func (p *Player) Close() {
	p.status = StatusClosed
}

// setIndex jumps to a story and resets progress and per-story state.
// The playback status (playing vs paused) is preserved.
func (p *Player) setIndex(i int) {
	p.index = i
	p.elapsed = 0
	p.liked = false
	p.replyDraft = ""
	p.stories[i].Viewed = true
}

// Index returns the current story index.
func (p *Player) Index() int { return p.index }

// Status returns the playback status.
func (p *Player) Status() Status { return p.status }

// Closed reports whether the viewer has been dismissed.
func (p *Player) Closed() bool { return p.status == StatusClosed }

// Current returns the story on screen, or nil once closed.
func (p *Player) Current() *models.Story {
	if p.status == StatusClosed || p.index >= len(p.stories) {
		return nil
	}
	return p.stories[p.index]
}

// Progress returns the per-story completion percentages used to render the
// segmented progress bar: 100 for stories before the current index, the
// elapsed percentage for the current one, 0 for the rest.
func (p *Player) Progress() []float64 {
	progress := make([]float64, len(p.stories))
	for i := range p.stories {
		switch {
		case i < p.index:
			progress[i] = 100
		case i == p.index:
			pct := p.elapsed * 100
			if pct > 100 {
				pct = 100
			}
			progress[i] = pct
		}
	}
	return progress
}

// ElapsedFraction returns the progress through the current story in [0, 1].
func (p *Player) ElapsedFraction() float64 {
	if p.elapsed > 1 {
		return 1
	}
	return p.elapsed
}

// ToggleLike flips the like flag for the current story and returns the new
// value.
func (p *Player) ToggleLike() bool {
	p.liked = !p.liked
	return p.liked
}

// Liked reports whether the current story is liked.
func (p *Player) Liked() bool { return p.liked }

// SetReplyDraft stores the in-progress reply text for the current story.
func (p *Player) SetReplyDraft(text string) { p.replyDraft = text }

// ReplyDraft returns the in-progress reply text for the current story.
func (p *Player) ReplyDraft() string { return p.replyDraft }
