// Package termscreen implements the terminal port against a real TTY.
package termscreen

import (
	"bufio"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/user/termshow/pkg/ports"
)

// Default terminal size used when every probe fails. Size discovery is
// unreliable across environments (piped output, restricted shells,
// remote sessions); playback degrades to this instead of failing.
const (
	DefaultCols = 80
	DefaultRows = 24
)

// Control sequences for frame drawing.
const (
	seqHomeClear  = "\x1b[H\x1b[J"
	seqHideCursor = "\x1b[?25l"
	seqShowCursor = "\x1b[?25h"
)

// SizeProbe attempts one way of discovering the terminal size.
// It reports false when that mechanism is unavailable.
type SizeProbe func() (ports.TermSize, bool)

// Screen writes frames to a terminal and senses its size through an
// ordered chain of probes, first success wins.
type Screen struct {
	out    *bufio.Writer
	probes []SizeProbe
}

// New creates a Screen on stdout with the standard probe chain:
// direct size query, then external size-reporting commands.
func New() *Screen {
	return NewWithProbes(os.Stdout, ProbeTerm, ProbeStty, ProbeTput)
}

// NewWithProbes creates a Screen with a custom writer and probe chain.
func NewWithProbes(out io.Writer, probes ...SizeProbe) *Screen {
	return &Screen{
		out:    bufio.NewWriter(out),
		probes: probes,
	}
}

// Size returns the current terminal dimensions from the first probe
// that succeeds, falling back to DefaultCols x DefaultRows.
func (s *Screen) Size() ports.TermSize {
	for _, probe := range s.probes {
		if size, ok := probe(); ok {
			return size
		}
	}
	return ports.TermSize{Cols: DefaultCols, Rows: DefaultRows}
}

// DrawFrame homes the cursor, clears the screen, writes the frame body
// and flushes, so the frame appears atomically to the viewer.
func (s *Screen) DrawFrame(lines []string) {
	s.out.WriteString(seqHomeClear)
	s.out.WriteString(strings.Join(lines, "\n"))
	s.out.Flush()
}

// HideCursor hides the cursor.
func (s *Screen) HideCursor() {
	s.out.WriteString(seqHideCursor)
	s.out.Flush()
}

// ShowCursor restores cursor visibility.
func (s *Screen) ShowCursor() {
	s.out.WriteString(seqShowCursor)
	s.out.Flush()
}

// ProbeTerm queries the controlling terminal directly.
func ProbeTerm() (ports.TermSize, bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return ports.TermSize{}, false
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil || cols <= 0 || rows <= 0 {
		return ports.TermSize{}, false
	}
	return ports.TermSize{Cols: cols, Rows: rows}, true
}

// ProbeStty runs `stty size`, which reports "rows cols".
func ProbeStty() (ports.TermSize, bool) {
	cmd := exec.Command("stty", "size")
	cmd.Stdin = os.Stdin
	out, err := cmd.Output()
	if err != nil {
		return ports.TermSize{}, false
	}
	fields := strings.Fields(string(out))
	if len(fields) != 2 {
		return ports.TermSize{}, false
	}
	rows, err1 := strconv.Atoi(fields[0])
	cols, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil || cols <= 0 || rows <= 0 {
		return ports.TermSize{}, false
	}
	return ports.TermSize{Cols: cols, Rows: rows}, true
}

// ProbeTput runs `tput lines` and `tput cols`.
func ProbeTput() (ports.TermSize, bool) {
	rows, ok := tputNumber("lines")
	if !ok {
		return ports.TermSize{}, false
	}
	cols, ok := tputNumber("cols")
	if !ok {
		return ports.TermSize{}, false
	}
	if cols <= 0 || rows <= 0 {
		return ports.TermSize{}, false
	}
	return ports.TermSize{Cols: cols, Rows: rows}, true
}

func tputNumber(capname string) (int, bool) {
	out, err := exec.Command("tput", capname).Output()
	if err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Ensure Screen implements ports.Terminal
var _ ports.Terminal = (*Screen)(nil)
