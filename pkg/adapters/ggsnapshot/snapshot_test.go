package ggsnapshot

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/user/termshow/pkg/pipeline"
)

func TestRender_Dimensions(t *testing.T) {
	frame := pipeline.CharacterFrame{Lines: []string{"####", "....", "=="}}
	opts := DefaultOptions()

	img := Render(frame, opts)

	bounds := img.Bounds()
	wantW := 4*cellWidth + opts.Padding*2
	wantH := 3*cellHeight + opts.Padding*2
	if bounds.Dx() != wantW || bounds.Dy() != wantH {
		t.Errorf("got %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), wantW, wantH)
	}
}

func TestRender_EmptyFrame(t *testing.T) {
	img := Render(pipeline.CharacterFrame{}, Options{})

	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		t.Errorf("empty frame produced degenerate canvas %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRender_BackgroundFill(t *testing.T) {
	opts := DefaultOptions()
	img := Render(pipeline.CharacterFrame{Lines: []string{"@"}}, opts)

	// Corner pixel lies in the padding, so it must be pure background.
	r, g, b, _ := img.At(0, 0).RGBA()
	wr, wg, wb, _ := opts.Background.RGBA()
	if r != wr || g != wg || b != wb {
		t.Errorf("corner pixel is not background: got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	frame := pipeline.CharacterFrame{Lines: []string{"#%@", ".:-"}}

	if err := WritePNG(&buf, frame, DefaultOptions()); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	if decoded.Bounds().Dx() == 0 {
		t.Error("decoded PNG is empty")
	}
}
