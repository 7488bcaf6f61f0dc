package ports

// TermSize is a snapshot of terminal geometry at a point in time.
// It is re-sampled before every render because the terminal may be
// resized live during playback.
type TermSize struct {
	Cols int
	Rows int
}

// Terminal abstracts the output terminal for playback.
type Terminal interface {
	// Size returns the current terminal dimensions. Implementations must
	// never fail: when no size can be determined they fall back to a
	// safe default.
	Size() TermSize

	// DrawFrame erases the screen and draws the given lines from the
	// top-left origin, flushing so the frame appears atomically.
	DrawFrame(lines []string)

	// HideCursor hides the cursor for the duration of playback.
	HideCursor()

	// ShowCursor restores cursor visibility.
	ShowCursor()
}
