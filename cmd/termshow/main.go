// Package main provides the CLI entry point for termshow.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/termshow/pkg/adapters/ffmpegdecoder"
	"github.com/user/termshow/pkg/adapters/ggsnapshot"
	"github.com/user/termshow/pkg/adapters/logger"
	"github.com/user/termshow/pkg/adapters/termscreen"
	"github.com/user/termshow/pkg/config"
	"github.com/user/termshow/pkg/orchestrator"
	"github.com/user/termshow/pkg/player"
	"github.com/user/termshow/pkg/ports"
	"github.com/user/termshow/pkg/stages/convert"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Play     PlayCmd     `cmd:"" help:"Play an MP4 video as character art in the terminal."`
	Image    ImageCmd    `cmd:"" help:"Convert a still image to character art on stdout."`
	Snapshot SnapshotCmd `cmd:"" help:"Export one video frame as a character-art PNG."`
	Version  VersionCmd  `cmd:"" help:"Show version information."`
}

// PlayCmd defines the play subcommand.
type PlayCmd struct {
	// Required arguments
	Video string `arg:"" help:"Path to the MP4 video file."`

	// Playback options (override config file)
	FPS      *float64 `short:"f" help:"Playback frames per second (default: 30)."`
	Loop     bool     `short:"l" help:"Loop video playback."`
	Progress bool     `short:"p" help:"Show a frame progress line."`

	// Conversion options
	Width    *int     `short:"w" help:"Output width in characters (default: fit to terminal)."`
	Charset  *string  `short:"c" help:"Glyph ramp from dark to light (default: \" .:-=+*#%@\")."`
	Contrast *float64 `help:"Contrast multiplier (default: 1.0)."`
	Workers  *int     `help:"Number of conversion workers (default: CPU count)."`

	// Config file
	Config string `help:"Path to a YAML configuration file."`

	// Decoder options
	FFmpegPath string `help:"Path to the ffmpeg executable (falls back to PATH, then common locations)."`

	// Logging options
	LogLevel string `short:"L" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// ImageCmd defines the image subcommand.
type ImageCmd struct {
	Path     string  `arg:"" help:"Path to the image file."`
	Width    int     `short:"w" default:"80" help:"Output width in characters."`
	Charset  string  `short:"c" default:" .:-=+*#%@" help:"Glyph ramp from dark to light."`
	Contrast float64 `default:"1.0" help:"Contrast multiplier."`
}

// SnapshotCmd defines the snapshot subcommand.
type SnapshotCmd struct {
	Video    string  `arg:"" help:"Path to the MP4 video file."`
	Output   string  `short:"o" required:"" help:"Output PNG file path."`
	Frame    int     `short:"n" default:"0" help:"Frame index to export."`
	Width    int     `short:"w" default:"120" help:"Output width in characters."`
	Charset  string  `short:"c" default:" .:-=+*#%@" help:"Glyph ramp from dark to light."`
	Contrast float64 `default:"1.0" help:"Contrast multiplier."`

	FFmpegPath string `help:"Path to the ffmpeg executable."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("termshow"),
		kong.Description("Play MP4 video as character art in the terminal."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the play command.
func (cmd *PlayCmd) Run() error {
	cfg, err := cmd.buildConfig()
	if err != nil {
		return err
	}

	// Create logger
	var log ports.Logger
	if cmd.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cmd.LogLevel))
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	// Create adapters
	if cmd.FFmpegPath != "" {
		ffmpegdecoder.SetFFmpegPath(cmd.FFmpegPath)
	}
	decoder := ffmpegdecoder.New()
	defer decoder.Close()

	screen := termscreen.New()
	pl := player.New(screen, log, cfg.FPS)
	convertStage := convert.NewStage(log, cfg.Workers)

	orch := orchestrator.New(decoder, convertStage, pl, log)

	result, err := orch.Run(ctx, cfg.ToOrchestratorConfig(cmd.Video))
	if err != nil {
		return err
	}

	log.Debug("Run ended: %d frames, reason %s", result.FrameCount, result.Reason)
	return nil
}

// buildConfig creates a Config from an optional file and CLI overrides.
func (cmd *PlayCmd) buildConfig() (config.Config, error) {
	cfg := config.Defaults()
	if cmd.Config != "" {
		loaded, err := config.Load(cmd.Config)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if cmd.FPS != nil {
		cfg.FPS = *cmd.FPS
	}
	if cmd.Width != nil {
		cfg.Width = *cmd.Width
	}
	if cmd.Charset != nil {
		cfg.Charset = *cmd.Charset
	}
	if cmd.Contrast != nil {
		cfg.Contrast = *cmd.Contrast
	}
	if cmd.Workers != nil {
		cfg.Workers = *cmd.Workers
	}
	if cmd.Loop {
		cfg.Loop = true
	}
	if cmd.Progress {
		cfg.Progress = true
	}
	if cmd.FFmpegPath != "" {
		cfg.FFmpegPath = cmd.FFmpegPath
	}

	return cfg.Normalize(), nil
}

// Run executes the image command.
func (cmd *ImageCmd) Run() error {
	frame, err := convert.File(cmd.Path, cmd.Width, convert.Config{
		Ramp:     []rune(cmd.Charset),
		Contrast: cmd.Contrast,
	})
	if err != nil {
		return err
	}

	fmt.Println(frame.String())
	return nil
}

// Run executes the snapshot command.
func (cmd *SnapshotCmd) Run() error {
	if cmd.FFmpegPath != "" {
		ffmpegdecoder.SetFFmpegPath(cmd.FFmpegPath)
	}
	decoder := ffmpegdecoder.New()
	defer decoder.Close()

	frames, err := decoder.ReadFrames(context.Background(), cmd.Video)
	if err != nil {
		return err
	}
	if cmd.Frame < 0 || cmd.Frame >= len(frames) {
		return fmt.Errorf("frame index %d out of range (video has %d frames)", cmd.Frame, len(frames))
	}

	frame, err := convert.Image(frames[cmd.Frame].Image, cmd.Width, convert.Config{
		Ramp:     []rune(cmd.Charset),
		Contrast: cmd.Contrast,
	})
	if err != nil {
		return err
	}

	f, err := os.Create(cmd.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	if err := ggsnapshot.WritePNG(f, frame, ggsnapshot.DefaultOptions()); err != nil {
		return err
	}

	fmt.Println(l10n.F("Snapshot saved to %s", cmd.Output))
	return nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("termshow version %s", version))
	return nil
}
