package pipeline

import (
	"strings"

	"github.com/user/termshow/pkg/ports"
)

// Dimension represents width and height in character cells.
type Dimension struct {
	Width  int
	Height int
}

// CharacterFrame is one full screen's worth of glyph-mapped text
// representing a single video frame. It is immutable once produced:
// the converter creates it, the player reads it, nothing mutates it.
type CharacterFrame struct {
	Lines []string
}

// String joins the frame lines with newlines.
func (f CharacterFrame) String() string {
	return strings.Join(f.Lines, "\n")
}

// =============================================================================
// Convert Stage Types
// =============================================================================

// ConvertInput contains parameters for glyph conversion of a frame sequence.
type ConvertInput struct {
	Frames      []ports.VideoFrame
	TargetWidth int     // Target width in characters (>= 1)
	Ramp        string  // Glyph ramp, darkest to lightest
	Contrast    float64 // Contrast multiplier (1.0 = identity)
}

// DefaultConvertInput returns ConvertInput with default values.
func DefaultConvertInput() ConvertInput {
	return ConvertInput{
		Ramp:     " .:-=+*#%@",
		Contrast: 1.0,
	}
}

// ConvertResult contains the converted frame sequence, in source order.
type ConvertResult struct {
	Frames []CharacterFrame
}
