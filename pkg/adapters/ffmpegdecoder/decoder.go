// Package ffmpegdecoder extracts raster frames from a video file using
// an external ffmpeg process, with stream metadata read via mp4ff.
package ffmpegdecoder

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/user/termshow/pkg/ports"
)

// ErrFFmpegNotFound is returned when no ffmpeg executable can be located.
var ErrFFmpegNotFound = errors.New("ffmpegdecoder: ffmpeg executable not found")

// customFFmpegPath overrides ffmpeg discovery when set via SetFFmpegPath.
var customFFmpegPath string

// SetFFmpegPath sets a custom path to the ffmpeg binary.
func SetFFmpegPath(path string) {
	customFFmpegPath = path
}

// IsAvailable reports whether an ffmpeg executable can be found.
func IsAvailable() bool {
	_, err := findFFmpeg()
	return err == nil
}

// findFFmpeg searches for ffmpeg in PATH and common install locations.
func findFFmpeg() (string, error) {
	if customFFmpegPath != "" {
		if _, err := os.Stat(customFFmpegPath); err == nil {
			return customFFmpegPath, nil
		}
		return "", fmt.Errorf("%w: custom path %s not found", ErrFFmpegNotFound, customFFmpegPath)
	}

	execName := "ffmpeg"
	if runtime.GOOS == "windows" {
		execName = "ffmpeg.exe"
	}
	if path, err := exec.LookPath(execName); err == nil {
		return path, nil
	}

	var commonPaths []string
	if runtime.GOOS == "windows" {
		commonPaths = []string{
			`C:\ffmpeg\bin\ffmpeg.exe`,
			`C:\Program Files\ffmpeg\bin\ffmpeg.exe`,
		}
	} else {
		commonPaths = []string{
			"/usr/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
			"/opt/homebrew/bin/ffmpeg",
			"/snap/bin/ffmpeg",
		}
	}
	for _, p := range commonPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", ErrFFmpegNotFound
}

// Decoder implements ports.VideoDecoder through one ffmpeg process per
// file, streaming rgb24 rawvideo over a pipe.
type Decoder struct {
	ffmpegPath string
}

// New creates a new Decoder. ffmpeg discovery is deferred until the
// first ReadFrames call.
func New() *Decoder {
	return &Decoder{}
}

// Probe reads stream metadata without decoding any frames.
func (d *Decoder) Probe(path string) (ports.VideoMeta, error) {
	return ProbeFile(path)
}

// ReadFrames decodes all frames from a video file in display order.
func (d *Decoder) ReadFrames(ctx context.Context, path string) ([]ports.VideoFrame, error) {
	meta, err := ProbeFile(path)
	if err != nil {
		return nil, fmt.Errorf("probe video: %w", err)
	}

	if d.ffmpegPath == "" {
		ffmpegPath, err := findFFmpeg()
		if err != nil {
			return nil, err
		}
		d.ffmpegPath = ffmpegPath
	}

	cmd := exec.CommandContext(ctx, d.ffmpegPath, decodeArgs(path)...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("open ffmpeg pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start ffmpeg: %w", err)
	}

	frameSize := meta.Width * meta.Height * 3
	reader := bufio.NewReaderSize(stdout, frameSize)
	buf := make([]byte, frameSize)

	var frames []ports.VideoFrame
	for i := 0; ; i++ {
		if _, err := io.ReadFull(reader, buf); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			cmd.Process.Kill()
			cmd.Wait()
			return nil, fmt.Errorf("read frame %d: %w", i, err)
		}
		frames = append(frames, ports.VideoFrame{
			Image:       rgbToImage(buf, meta.Width, meta.Height),
			TimestampMs: frameTimestampMs(i, meta.FPS),
		})
	}

	if err := cmd.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("ffmpeg: %w", err)
	}

	return frames, nil
}

// Close releases decoder resources.
func (d *Decoder) Close() {}

// decodeArgs builds the ffmpeg invocation producing rgb24 rawvideo on
// stdout.
func decodeArgs(path string) []string {
	return []string{
		"-v", "error",
		"-i", path,
		"-f", "rawvideo",
		"-pix_fmt", "rgb24",
		"pipe:1",
	}
}

// rgbToImage copies one rgb24 frame into an opaque RGBA image.
func rgbToImage(buf []byte, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	si := 0
	for di := 0; di < len(img.Pix); di += 4 {
		img.Pix[di] = buf[si]
		img.Pix[di+1] = buf[si+1]
		img.Pix[di+2] = buf[si+2]
		img.Pix[di+3] = 0xff
		si += 3
	}
	return img
}

// frameTimestampMs places frame i on the nominal fps grid.
func frameTimestampMs(i int, fps float64) int {
	if fps <= 0 {
		return 0
	}
	return int(float64(i) * 1000.0 / fps)
}

// Ensure Decoder implements ports.VideoDecoder
var _ ports.VideoDecoder = (*Decoder)(nil)
