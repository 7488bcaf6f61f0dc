// Package orchestrator coordinates decoding, conversion and playback.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/ideamans/go-l10n"

	"github.com/user/termshow/pkg/pipeline"
	"github.com/user/termshow/pkg/player"
	"github.com/user/termshow/pkg/ports"
)

// Config contains all configuration for one playback run.
type Config struct {
	// Input
	VideoPath string

	// Playback
	FPS      float64
	Loop     bool
	Progress bool

	// Conversion
	TargetWidth int // 0 = negotiate from the current terminal size
	Ramp        string
	Contrast    float64
	Workers     int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		FPS:      30.0,
		Ramp:     " .:-=+*#%@",
		Contrast: 1.0,
	}
}

// RunResult reports what a completed run did.
type RunResult struct {
	Meta       ports.VideoMeta
	FrameCount int
	Reason     player.StopReason
}

// Orchestrator coordinates the decode, convert and play phases.
// Decoding and conversion complete before playback starts; the player
// only ever sees a finished, read-only frame sequence.
type Orchestrator struct {
	decoder      ports.VideoDecoder
	convertStage pipeline.Stage[pipeline.ConvertInput, pipeline.ConvertResult]
	player       *player.Player
	logger       ports.Logger
}

// New creates a new Orchestrator.
func New(
	decoder ports.VideoDecoder,
	convertStage pipeline.Stage[pipeline.ConvertInput, pipeline.ConvertResult],
	pl *player.Player,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		decoder:      decoder,
		convertStage: convertStage,
		player:       pl,
		logger:       logger,
	}
}

// Run executes the complete pipeline for one video.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	result := RunResult{}

	// 1. Probe stream metadata
	o.logger.Info(l10n.F("Opening video: %s", config.VideoPath))
	meta, err := o.decoder.Probe(config.VideoPath)
	if err != nil {
		o.logger.Error(l10n.F("Failed to open video: %s", err))
		return result, fmt.Errorf("probe video: %w", err)
	}
	o.logger.Info(l10n.F("Video info: %dx%d, %.1f fps, %d frames", meta.Width, meta.Height, meta.FPS, meta.FrameCount))
	result.Meta = meta

	// 2. Decode all frames up front
	o.logger.Info(l10n.T("Extracting frames..."))
	frames, err := o.decoder.ReadFrames(ctx, config.VideoPath)
	if err != nil {
		o.logger.Error(l10n.F("Failed to decode video: %s", err))
		return result, fmt.Errorf("decode video: %w", err)
	}
	if len(frames) == 0 {
		return result, fmt.Errorf("no frames extracted from video")
	}
	o.logger.Info(l10n.F("Extracted %d frames", len(frames)))

	// 3. Determine the character frame width
	targetWidth := config.TargetWidth
	if targetWidth <= 0 {
		width, height := o.player.NegotiateFrameSize(meta.Width, meta.Height)
		targetWidth = width
		o.logger.Info(l10n.F("Character frame size: %dx%d", width, height))
	}

	// 4. Convert the full sequence
	o.logger.Info(l10n.F("Converting to text with width %d characters...", targetWidth))
	converted, err := o.convertStage.Execute(ctx, pipeline.ConvertInput{
		Frames:      frames,
		TargetWidth: targetWidth,
		Ramp:        config.Ramp,
		Contrast:    config.Contrast,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to convert frames: %s", err))
		return result, fmt.Errorf("convert stage: %w", err)
	}
	result.FrameCount = len(converted.Frames)

	// 5. Play
	o.player.SetFrameRate(config.FPS)
	o.logger.Info(l10n.F("Playing at %.1f fps (press Ctrl+C to stop)", config.FPS))

	if config.Progress {
		result.Reason = o.player.PlayWithProgress(ctx, converted.Frames)
	} else {
		result.Reason = o.player.Play(ctx, converted.Frames, config.Loop)
	}

	o.logger.Info(l10n.T("Playback finished"))
	return result, nil
}
