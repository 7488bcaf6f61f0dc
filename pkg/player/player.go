// Package player implements the terminal playback engine.
//
// The engine displays a fixed sequence of character frames at an
// approximately constant wall-clock cadence, re-sampling the terminal
// size before every render so a live resize takes effect on the next
// frame. The loop owns the calling goroutine for its whole duration;
// the only suspension point is the per-frame wait, which a context
// cancellation wakes early.
package player

import (
	"context"
	"fmt"
	"time"

	"github.com/user/termshow/pkg/pipeline"
	"github.com/user/termshow/pkg/ports"
)

const (
	// widthFraction of the terminal columns is used for the frame,
	// reserving margin for borders and prompt reflow.
	widthFraction = 0.7
	// heightFraction caps the frame height, leaving room for the cursor.
	heightFraction = 0.9

	// Minimum negotiated frame size so degenerate terminals never
	// produce a zero-sized or unreadable frame.
	minFrameWidth  = 20
	minFrameHeight = 10

	// aspectCompensation matches the converter's glyph aspect constant.
	aspectCompensation = 0.5

	// MinFPS and MaxFPS bound the frame rate. Out-of-range requests are
	// silently clamped, never rejected.
	MinFPS = 1.0
	MaxFPS = 60.0
)

// StopReason reports how a playback session ended. Cancellation is a
// normal termination, not an error.
type StopReason int

const (
	// ReasonFinished means the frame sequence was exhausted.
	ReasonFinished StopReason = iota
	// ReasonCancelled means an interrupt stopped playback early.
	ReasonCancelled
	// ReasonEmpty means there was nothing to render.
	ReasonEmpty
)

// String returns the string representation of the stop reason.
func (r StopReason) String() string {
	switch r {
	case ReasonFinished:
		return "finished"
	case ReasonCancelled:
		return "cancelled"
	case ReasonEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Player paces and draws character frames on a terminal.
type Player struct {
	term     ports.Terminal
	logger   ports.Logger
	pacing   PacingPolicy
	interval time.Duration
}

// New creates a Player rendering to the given terminal at the given
// frame rate.
func New(term ports.Terminal, logger ports.Logger, fps float64) *Player {
	p := &Player{
		term:   term,
		logger: logger.WithComponent("player"),
		pacing: FixedIntervalSleep{},
	}
	p.SetFrameRate(fps)
	return p
}

// SetFrameRate clamps fps to [MinFPS, MaxFPS] and recomputes the frame
// interval.
func (p *Player) SetFrameRate(fps float64) {
	if fps < MinFPS {
		fps = MinFPS
	}
	if fps > MaxFPS {
		fps = MaxFPS
	}
	p.interval = time.Duration(float64(time.Second) / fps)
}

// FrameInterval returns the current per-frame interval.
func (p *Player) FrameInterval() time.Duration {
	return p.interval
}

// SetPacing selects an alternate pacing policy.
func (p *Player) SetPacing(policy PacingPolicy) {
	p.pacing = policy
}

// NegotiateFrameSize computes the character-grid size that fits the
// source aspect ratio inside the current terminal. Width starts from
// widthFraction of the columns; if the derived height overflows
// heightFraction of the rows, height becomes the binding constraint
// and width is recomputed backward from it. Both values are floored to
// the minimum frame size.
func (p *Player) NegotiateFrameSize(sourceWidth, sourceHeight int) (int, int) {
	size := p.term.Size()

	width := int(float64(size.Cols) * widthFraction)
	aspect := float64(sourceHeight) / float64(sourceWidth)
	height := int(float64(width) * aspect * aspectCompensation)

	maxHeight := int(float64(size.Rows) * heightFraction)
	if height > maxHeight {
		height = maxHeight
		width = int(float64(height) / (aspect * aspectCompensation))
	}

	if width < minFrameWidth {
		width = minFrameWidth
	}
	if height < minFrameHeight {
		height = minFrameHeight
	}
	return width, height
}

// Play renders the frames in order at the configured cadence. With loop
// set, the sequence wraps to the start instead of finishing. An empty
// sequence is a no-op. Cancellation is absorbed: the loop stops after
// the current frame and reports ReasonCancelled.
func (p *Player) Play(ctx context.Context, frames []pipeline.CharacterFrame, loop bool) StopReason {
	if len(frames) == 0 {
		p.logger.Info("No frames to play")
		return ReasonEmpty
	}

	p.term.HideCursor()
	defer p.term.ShowCursor()

	index := 0
	for {
		if ctx.Err() != nil {
			return p.stopped()
		}

		// One row stays reserved so the last printed line never forces
		// a scroll.
		size := p.term.Size()
		p.term.DrawFrame(clipLines(frames[index].Lines, size.Rows-1))

		if err := p.pacing.Wait(ctx, p.interval); err != nil {
			return p.stopped()
		}

		index++
		if index >= len(frames) {
			if !loop {
				return ReasonFinished
			}
			index = 0
		}
	}
}

// PlayWithProgress renders the frames once, prepending a status line
// with the current index, total count and live terminal size on every
// redraw. Two rows are reserved instead of one.
func (p *Player) PlayWithProgress(ctx context.Context, frames []pipeline.CharacterFrame) StopReason {
	total := len(frames)
	if total == 0 {
		p.logger.Info("No frames to play")
		return ReasonEmpty
	}

	p.term.HideCursor()
	defer p.term.ShowCursor()

	for i, frame := range frames {
		if ctx.Err() != nil {
			return p.stopped()
		}

		size := p.term.Size()
		status := fmt.Sprintf("Frame %d/%d | Terminal: %dx%d", i+1, total, size.Cols, size.Rows)
		lines := append([]string{status}, clipLines(frame.Lines, size.Rows-2)...)
		p.term.DrawFrame(lines)

		if err := p.pacing.Wait(ctx, p.interval); err != nil {
			return p.stopped()
		}
	}
	return ReasonFinished
}

// stopped reports user cancellation as a normal termination.
func (p *Player) stopped() StopReason {
	p.logger.Info("Playback stopped by user")
	return ReasonCancelled
}

// clipLines truncates the frame body to the visible row budget.
func clipLines(lines []string, max int) []string {
	if max < 0 {
		max = 0
	}
	if len(lines) > max {
		return lines[:max]
	}
	return lines
}
