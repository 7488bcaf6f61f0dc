package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/user/termshow/pkg/stages/convert"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.FPS != 30.0 {
		t.Errorf("FPS: got %v, want 30", cfg.FPS)
	}
	if cfg.Charset != convert.DefaultRamp {
		t.Errorf("Charset: got %q, want default ramp", cfg.Charset)
	}
	if cfg.Contrast != 1.0 {
		t.Errorf("Contrast: got %v, want 1.0", cfg.Contrast)
	}
	if cfg.Width != 0 {
		t.Errorf("Width: got %d, want 0 (auto)", cfg.Width)
	}
	if cfg.Loop || cfg.Progress {
		t.Error("Loop and Progress must default to false")
	}
	if cfg.Workers <= 0 {
		t.Errorf("Workers: got %d, want > 0", cfg.Workers)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "termshow.yaml")
	content := `
fps: 24
width: 64
charset: " .*#"
contrast: 1.4
loop: true
log_level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.FPS != 24 {
		t.Errorf("FPS: got %v, want 24", cfg.FPS)
	}
	if cfg.Width != 64 {
		t.Errorf("Width: got %d, want 64", cfg.Width)
	}
	if cfg.Charset != " .*#" {
		t.Errorf("Charset: got %q", cfg.Charset)
	}
	if cfg.Contrast != 1.4 {
		t.Errorf("Contrast: got %v, want 1.4", cfg.Contrast)
	}
	if !cfg.Loop {
		t.Error("Loop: got false, want true")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want debug", cfg.LogLevel)
	}
	// Unset keys keep their defaults.
	if cfg.Progress {
		t.Error("Progress: got true, want default false")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("want error for missing file")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		chk  func(t *testing.T, cfg Config)
	}{
		{
			name: "fps below range clamps silently",
			in:   Config{FPS: 0.1, Charset: "ab", Workers: 2},
			chk: func(t *testing.T, cfg Config) {
				if cfg.FPS != 1 {
					t.Errorf("FPS: got %v, want 1", cfg.FPS)
				}
			},
		},
		{
			name: "fps above range clamps silently",
			in:   Config{FPS: 500, Charset: "ab", Workers: 2},
			chk: func(t *testing.T, cfg Config) {
				if cfg.FPS != 60 {
					t.Errorf("FPS: got %v, want 60", cfg.FPS)
				}
			},
		},
		{
			name: "empty charset restores default",
			in:   Config{FPS: 30, Workers: 2},
			chk: func(t *testing.T, cfg Config) {
				if cfg.Charset != convert.DefaultRamp {
					t.Errorf("Charset: got %q", cfg.Charset)
				}
			},
		},
		{
			name: "non-positive workers restores default",
			in:   Config{FPS: 30, Charset: "ab", Workers: -1},
			chk: func(t *testing.T, cfg Config) {
				if cfg.Workers <= 0 {
					t.Errorf("Workers: got %d", cfg.Workers)
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.chk(t, tt.in.Normalize())
		})
	}
}

func TestToOrchestratorConfig(t *testing.T) {
	cfg := Defaults()
	cfg.FPS = 24
	cfg.Width = 100
	cfg.Loop = true

	oc := cfg.ToOrchestratorConfig("movie.mp4")

	if oc.VideoPath != "movie.mp4" {
		t.Errorf("VideoPath: got %q", oc.VideoPath)
	}
	if oc.FPS != 24 || oc.TargetWidth != 100 || !oc.Loop {
		t.Errorf("conversion lost fields: %+v", oc)
	}
	if oc.Ramp != cfg.Charset {
		t.Errorf("Ramp: got %q", oc.Ramp)
	}
}
