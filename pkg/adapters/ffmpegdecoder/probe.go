package ffmpegdecoder

import (
	"fmt"
	"io"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/termshow/pkg/ports"
)

// ProbeFile reads MP4 metadata for the first video track without
// decoding any frames.
func ProbeFile(path string) (ports.VideoMeta, error) {
	f, err := os.Open(path)
	if err != nil {
		return ports.VideoMeta{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return ProbeReader(f)
}

// ProbeReader reads MP4 metadata from an io.ReadSeeker.
func ProbeReader(reader io.ReadSeeker) (ports.VideoMeta, error) {
	mp4File, err := mp4.DecodeFile(reader)
	if err != nil {
		return ports.VideoMeta{}, fmt.Errorf("decode mp4: %w", err)
	}

	moov := mp4File.Moov
	if mp4File.IsFragmented() && mp4File.Init != nil {
		moov = mp4File.Init.Moov
	}
	if moov == nil {
		return ports.VideoMeta{}, fmt.Errorf("no moov box found")
	}

	for _, trak := range moov.Traks {
		if trak.Mdia == nil || trak.Mdia.Hdlr == nil || trak.Mdia.Hdlr.HandlerType != "vide" {
			continue
		}

		meta := ports.VideoMeta{}
		if trak.Tkhd != nil {
			// Tkhd dimensions are 16.16 fixed point.
			meta.Width = int(trak.Tkhd.Width >> 16)
			meta.Height = int(trak.Tkhd.Height >> 16)
		}
		if meta.Width <= 0 || meta.Height <= 0 {
			return ports.VideoMeta{}, fmt.Errorf("video track has no dimensions")
		}

		if trak.Mdia.Mdhd != nil && trak.Mdia.Mdhd.Timescale > 0 {
			meta.DurationMs = int(trak.Mdia.Mdhd.Duration * 1000 / uint64(trak.Mdia.Mdhd.Timescale))
		}
		if trak.Mdia.Minf != nil && trak.Mdia.Minf.Stbl != nil && trak.Mdia.Minf.Stbl.Stsz != nil {
			meta.FrameCount = int(trak.Mdia.Minf.Stbl.Stsz.SampleNumber)
		}
		if meta.DurationMs > 0 && meta.FrameCount > 0 {
			meta.FPS = float64(meta.FrameCount) * 1000.0 / float64(meta.DurationMs)
		}

		return meta, nil
	}

	return ports.VideoMeta{}, fmt.Errorf("no video track found")
}
