// Package ggsnapshot renders a character frame back into a raster
// image, for exporting a single frame of a conversion as a PNG.
package ggsnapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/fogleman/gg"

	"github.com/user/termshow/pkg/pipeline"
)

// Cell size of the default gg font face (7x13 basic font).
const (
	cellWidth  = 7
	cellHeight = 13
	// Baseline offset inside a cell for the 7x13 face.
	cellAscent = 11
)

// Options controls snapshot styling.
type Options struct {
	Background color.Color
	Foreground color.Color
	Padding    int
}

// DefaultOptions returns dark-terminal styling.
func DefaultOptions() Options {
	return Options{
		Background: color.RGBA{R: 16, G: 16, B: 16, A: 255},
		Foreground: color.RGBA{R: 220, G: 220, B: 220, A: 255},
		Padding:    8,
	}
}

// Render draws the character frame onto a canvas, one glyph cell per
// character.
func Render(frame pipeline.CharacterFrame, opts Options) image.Image {
	cols := 0
	for _, line := range frame.Lines {
		if len(line) > cols {
			cols = len(line)
		}
	}
	rows := len(frame.Lines)

	width := cols*cellWidth + opts.Padding*2
	height := rows*cellHeight + opts.Padding*2
	if width <= 0 {
		width = cellWidth
	}
	if height <= 0 {
		height = cellHeight
	}

	bg, fg := opts.Background, opts.Foreground
	if bg == nil {
		bg = color.Black
	}
	if fg == nil {
		fg = color.White
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()

	dc.SetColor(fg)
	for y, line := range frame.Lines {
		dc.DrawString(line, float64(opts.Padding), float64(opts.Padding+y*cellHeight+cellAscent))
	}

	return dc.Image()
}

// WritePNG renders the frame and encodes it as PNG.
func WritePNG(w io.Writer, frame pipeline.CharacterFrame, opts Options) error {
	if err := png.Encode(w, Render(frame, opts)); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}
