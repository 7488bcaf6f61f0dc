package ffmpegdecoder

import (
	"bytes"
	"errors"
	"image/color"
	"testing"
)

func TestDecodeArgs(t *testing.T) {
	args := decodeArgs("movie.mp4")

	want := []string{"-v", "error", "-i", "movie.mp4", "-f", "rawvideo", "-pix_fmt", "rgb24", "pipe:1"}
	if len(args) != len(want) {
		t.Fatalf("got %d args, want %d: %v", len(args), len(want), args)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("arg %d: got %q, want %q", i, args[i], want[i])
		}
	}
}

func TestRGBToImage(t *testing.T) {
	// 2x2 frame: red, green / blue, white.
	buf := []byte{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 255, 255, 255,
	}
	img := rgbToImage(buf, 2, 2)

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, color.RGBA{255, 0, 0, 255}},
		{1, 0, color.RGBA{0, 255, 0, 255}},
		{0, 1, color.RGBA{0, 0, 255, 255}},
		{1, 1, color.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("(%d,%d): got %+v, want %+v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestFrameTimestampMs(t *testing.T) {
	tests := []struct {
		name string
		i    int
		fps  float64
		want int
	}{
		{"first frame", 0, 30, 0},
		{"one second in at 30fps", 30, 30, 1000},
		{"24fps grid", 3, 24, 125},
		{"unknown fps", 5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frameTimestampMs(tt.i, tt.fps); got != tt.want {
				t.Errorf("frameTimestampMs(%d, %v) = %d, want %d", tt.i, tt.fps, got, tt.want)
			}
		})
	}
}

func TestFindFFmpeg_CustomPathMissing(t *testing.T) {
	SetFFmpegPath("/nonexistent/path/to/ffmpeg")
	defer SetFFmpegPath("")

	_, err := findFFmpeg()
	if !errors.Is(err, ErrFFmpegNotFound) {
		t.Errorf("got error %v, want ErrFFmpegNotFound", err)
	}
}

func TestProbeReader_NotAnMP4(t *testing.T) {
	_, err := ProbeReader(bytes.NewReader([]byte("definitely not an mp4 file")))
	if err == nil {
		t.Fatal("want error for garbage input")
	}
}
