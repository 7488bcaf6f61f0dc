// Package convert implements the glyph conversion stage.
package convert

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/user/termshow/pkg/pipeline"
	"github.com/user/termshow/pkg/ports"
)

// aspectCompensation accounts for terminal glyphs being roughly twice
// as tall as wide. Fixed design constant, shared with frame size
// negotiation in the player.
const aspectCompensation = 0.5

// DefaultRamp is the default glyph ramp, ordered darkest to lightest.
const DefaultRamp = " .:-=+*#%@"

var (
	// ErrInvalidWidth is returned when the target width is not positive.
	ErrInvalidWidth = errors.New("convert: target width must be at least 1")
	// ErrEmptyImage is returned for a nil or zero-sized source image.
	ErrEmptyImage = errors.New("convert: image has zero width or height")
	// ErrEmptyRamp is returned when the glyph ramp has no characters.
	ErrEmptyRamp = errors.New("convert: glyph ramp is empty")
)

// Config holds the conversion parameters.
// Contrast is deliberately unvalidated: 1.0 is the identity, values at
// or below zero flatten or invert the mapping and are accepted.
type Config struct {
	Ramp     []rune
	Contrast float64
}

// DefaultConfig returns a Config with the default ramp and neutral contrast.
func DefaultConfig() Config {
	return Config{
		Ramp:     []rune(DefaultRamp),
		Contrast: 1.0,
	}
}

// Image converts a raster image to a character frame of the given width.
//
// The pipeline: derive the target height from the source aspect ratio
// with the 0.5 glyph compensation, resample with a Catmull-Rom filter,
// reduce to perceptual luma, apply contrast around the 128 midpoint,
// and bucket each sample into the ramp. Deterministic for identical
// inputs, no side effects.
func Image(img image.Image, targetWidth int, cfg Config) (pipeline.CharacterFrame, error) {
	if targetWidth < 1 {
		return pipeline.CharacterFrame{}, ErrInvalidWidth
	}
	if len(cfg.Ramp) == 0 {
		return pipeline.CharacterFrame{}, ErrEmptyRamp
	}
	if img == nil {
		return pipeline.CharacterFrame{}, ErrEmptyImage
	}
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW <= 0 || srcH <= 0 {
		return pipeline.CharacterFrame{}, ErrEmptyImage
	}

	aspect := float64(srcH) / float64(srcW)
	targetHeight := int(math.Round(float64(targetWidth) * aspect * aspectCompensation))
	if targetHeight < 1 {
		targetHeight = 1
	}

	resized := resize(img, targetWidth, targetHeight)

	rampLen := len(cfg.Ramp)
	lines := make([]string, targetHeight)
	var sb strings.Builder
	for y := 0; y < targetHeight; y++ {
		sb.Reset()
		sb.Grow(targetWidth)
		for x := 0; x < targetWidth; x++ {
			i := resized.PixOffset(x, y)
			r := int(resized.Pix[i])
			g := int(resized.Pix[i+1])
			b := int(resized.Pix[i+2])

			// ITU-R 601 luma weighting. Integer weights keep a uniform
			// gray exact: 128 stays 128, never 127.999....
			luma := float64(299*r+587*g+114*b) / 1000
			v := applyContrast(luma, cfg.Contrast)
			sb.WriteRune(cfg.Ramp[rampIndex(v, rampLen)])
		}
		lines[y] = sb.String()
	}

	return pipeline.CharacterFrame{Lines: lines}, nil
}

// File converts a single still image file by the identical pipeline.
func File(path string, targetWidth int, cfg Config) (pipeline.CharacterFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return pipeline.CharacterFrame{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return pipeline.CharacterFrame{}, fmt.Errorf("decode image: %w", err)
	}

	return Image(img, targetWidth, cfg)
}

// resize resamples the image to the target character grid. Catmull-Rom
// keeps small target widths free of the banding a nearest-neighbor
// filter produces on video-resolution sources.
func resize(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return dst
}

// applyContrast scales a luma sample around the 128 midpoint and clamps
// to [0, 255]. Contrast 1.0 is the identity.
func applyContrast(luma, contrast float64) float64 {
	v := (luma-128)*contrast + 128
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// rampIndex buckets a luminance sample in [0, 255] into rampLen equal
// bins, clamping the v == 255 edge into the last bin.
func rampIndex(v float64, rampLen int) int {
	idx := int(v / 256 * float64(rampLen))
	if idx >= rampLen {
		idx = rampLen - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// Stage converts a decoded frame sequence into character frames.
type Stage struct {
	logger     ports.Logger
	numWorkers int
}

// NewStage creates a new convert stage.
func NewStage(logger ports.Logger, numWorkers int) *Stage {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Stage{
		logger:     logger.WithComponent("convert"),
		numWorkers: numWorkers,
	}
}

// Execute converts all frames, preserving source order.
func (s *Stage) Execute(ctx context.Context, input pipeline.ConvertInput) (pipeline.ConvertResult, error) {
	if len(input.Frames) == 0 {
		return pipeline.ConvertResult{Frames: []pipeline.CharacterFrame{}}, nil
	}

	cfg := Config{
		Ramp:     []rune(input.Ramp),
		Contrast: input.Contrast,
	}

	s.logger.Debug("Converting %d frames with %d workers", len(input.Frames), s.numWorkers)

	result, err := s.executeParallel(ctx, input, cfg)
	if err != nil {
		return result, err
	}

	s.logger.Debug("Conversion completed")
	return result, nil
}

// indexedFrame holds a frame with its original index for reassembly.
type indexedFrame struct {
	index int
	frame pipeline.CharacterFrame
}

// executeParallel converts frames using a worker pool. Display order is
// strict: results are reassembled by source index.
func (s *Stage) executeParallel(ctx context.Context, input pipeline.ConvertInput, cfg Config) (pipeline.ConvertResult, error) {
	numFrames := len(input.Frames)
	jobs := make(chan int, numFrames)
	results := make(chan indexedFrame, numFrames)
	errChan := make(chan error, s.numWorkers)

	var wg sync.WaitGroup
	for w := 0; w < s.numWorkers; w++ {
		wg.Add(1)
		go s.worker(ctx, &wg, input, cfg, jobs, results, errChan)
	}

	for i := 0; i < numFrames; i++ {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
		close(errChan)
	}()

	frames := make([]indexedFrame, 0, numFrames)
	for result := range results {
		frames = append(frames, result)
	}

	if err := <-errChan; err != nil {
		return pipeline.ConvertResult{}, err
	}

	sort.Slice(frames, func(i, j int) bool {
		return frames[i].index < frames[j].index
	})

	converted := make([]pipeline.CharacterFrame, len(frames))
	for i, f := range frames {
		converted[i] = f.frame
	}

	return pipeline.ConvertResult{Frames: converted}, nil
}

// worker converts frames taken from the jobs channel.
func (s *Stage) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	input pipeline.ConvertInput,
	cfg Config,
	jobs <-chan int,
	results chan<- indexedFrame,
	errChan chan<- error,
) {
	defer wg.Done()

	for idx := range jobs {
		select {
		case <-ctx.Done():
			errChan <- ctx.Err()
			return
		default:
		}

		frame, err := Image(input.Frames[idx].Image, input.TargetWidth, cfg)
		if err != nil {
			errChan <- fmt.Errorf("convert frame %d: %w", idx, err)
			return
		}

		results <- indexedFrame{index: idx, frame: frame}
	}
}

// Ensure Stage satisfies the pipeline contract.
var _ pipeline.Stage[pipeline.ConvertInput, pipeline.ConvertResult] = (*Stage)(nil)
