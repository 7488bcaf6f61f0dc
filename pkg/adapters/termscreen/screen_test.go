package termscreen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/termshow/pkg/ports"
)

func failingProbe() (ports.TermSize, bool) {
	return ports.TermSize{}, false
}

func fixedProbe(cols, rows int) SizeProbe {
	return func() (ports.TermSize, bool) {
		return ports.TermSize{Cols: cols, Rows: rows}, true
	}
}

func TestSize_FirstSuccessWins(t *testing.T) {
	tests := []struct {
		name   string
		probes []SizeProbe
		want   ports.TermSize
	}{
		{
			name:   "first probe succeeds",
			probes: []SizeProbe{fixedProbe(120, 40), fixedProbe(999, 999)},
			want:   ports.TermSize{Cols: 120, Rows: 40},
		},
		{
			name:   "falls through failing probes",
			probes: []SizeProbe{failingProbe, failingProbe, fixedProbe(100, 30)},
			want:   ports.TermSize{Cols: 100, Rows: 30},
		},
		{
			name:   "all probes fail",
			probes: []SizeProbe{failingProbe, failingProbe},
			want:   ports.TermSize{Cols: DefaultCols, Rows: DefaultRows},
		},
		{
			name:   "no probes at all",
			probes: nil,
			want:   ports.TermSize{Cols: 80, Rows: 24},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewWithProbes(&bytes.Buffer{}, tt.probes...)
			if got := s.Size(); got != tt.want {
				t.Errorf("Size() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDrawFrame(t *testing.T) {
	var buf bytes.Buffer
	s := NewWithProbes(&buf, fixedProbe(80, 24))

	s.DrawFrame([]string{"top", "middle", "bottom"})

	out := buf.String()
	if !strings.HasPrefix(out, "\x1b[H\x1b[J") {
		t.Error("frame does not start with home+clear")
	}
	if !strings.HasSuffix(out, "top\nmiddle\nbottom") {
		t.Errorf("frame body wrong: %q", out)
	}
}

func TestDrawFrame_FlushesEachFrame(t *testing.T) {
	var buf bytes.Buffer
	s := NewWithProbes(&buf, fixedProbe(80, 24))

	s.DrawFrame([]string{"a"})
	first := buf.Len()
	if first == 0 {
		t.Fatal("first frame not flushed")
	}

	s.DrawFrame([]string{"b"})
	if buf.Len() <= first {
		t.Error("second frame not flushed")
	}
}

func TestCursorSequences(t *testing.T) {
	var buf bytes.Buffer
	s := NewWithProbes(&buf, fixedProbe(80, 24))

	s.HideCursor()
	if got := buf.String(); got != "\x1b[?25l" {
		t.Errorf("HideCursor wrote %q", got)
	}

	buf.Reset()
	s.ShowCursor()
	if got := buf.String(); got != "\x1b[?25h" {
		t.Errorf("ShowCursor wrote %q", got)
	}
}
