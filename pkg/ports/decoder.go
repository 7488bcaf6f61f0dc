package ports

import (
	"context"
	"image"
)

// VideoFrame represents a decoded video frame with timing information.
type VideoFrame struct {
	Image       image.Image
	TimestampMs int
}

// VideoMeta describes a video stream before decoding.
type VideoMeta struct {
	Width      int
	Height     int
	FPS        float64
	FrameCount int
	DurationMs int
}

// VideoDecoder abstracts video frame extraction.
type VideoDecoder interface {
	// Probe reads stream metadata without decoding any frames.
	Probe(path string) (VideoMeta, error)

	// ReadFrames decodes all frames from a video file, in display order.
	ReadFrames(ctx context.Context, path string) ([]VideoFrame, error)

	// Close releases decoder resources.
	Close()
}
