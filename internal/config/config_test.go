package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"capgen/internal/caption"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, path, exists, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("no config file should exist in a fresh home")
	}
	if !strings.HasSuffix(path, filepath.Join(".config", "capgen", "config.toml")) {
		t.Fatalf("unexpected resolved path %q", path)
	}
	if cfg.Captions.Style != "traditional" {
		t.Fatalf("default style = %q", cfg.Captions.Style)
	}
	if cfg.Captions.GapFrames != 2 || cfg.Captions.FrameRate != 24 {
		t.Fatalf("unexpected gap defaults: %+v", cfg.Captions)
	}
	if cfg.Whisper.Model != "large-v3" || cfg.Whisper.BeamSize != 5 {
		t.Fatalf("unexpected whisper defaults: %+v", cfg.Whisper)
	}
	if strings.HasPrefix(cfg.Paths.CacheDir, "~") {
		t.Fatalf("cache dir not expanded: %q", cfg.Paths.CacheDir)
	}
}

func TestLoadParsesAndOverridesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[captions]
style = "social"
max_chars_per_line = 30
gap_frames = 3
frame_rate = 25.0
confidence_threshold = 0.5

[whisper]
model = "small"
language = "SV"
beam_size = 2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("config file should have been found")
	}
	if cfg.Captions.Style != "social" || cfg.Captions.GapFrames != 3 {
		t.Fatalf("config values not applied: %+v", cfg.Captions)
	}
	// Validation normalizes the language code.
	if cfg.Whisper.Language != "sv" {
		t.Fatalf("language not normalized: %q", cfg.Whisper.Language)
	}

	styleCfg, err := cfg.StyleConfig()
	if err != nil {
		t.Fatalf("StyleConfig returned error: %v", err)
	}
	// Explicit value wins; untouched fields keep the social preset.
	if styleCfg.MaxCharsPerLine != 30 {
		t.Fatalf("explicit width not applied: %+v", styleCfg)
	}
	if styleCfg.MaxLines != 1 || styleCfg.WordsPerBlock != 4 {
		t.Fatalf("social preset not preserved: %+v", styleCfg)
	}

	opts := cfg.SerializeOptions()
	if opts.GapFrames != 3 || opts.FrameRate != 25 || opts.ConfidenceThreshold != 0.5 {
		t.Fatalf("serialize options mismatch: %+v", opts)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cases := map[string]string{
		"unknown style":   "[captions]\nstyle = \"cinematic\"\n",
		"bad frame rate":  "[captions]\nframe_rate = -1.0\n",
		"bad threshold":   "[captions]\nconfidence_threshold = 2.0\n",
		"empty model":     "[whisper]\nmodel = \" \"\n",
		"bad language":    "[whisper]\nlanguage = \"not a language\"\n",
		"bad log format":  "[logging]\nformat = \"xml\"\n",
		"inverted bounds": "[captions]\nmin_duration_s = 5.0\nmax_duration_s = 2.0\n",
	}
	for name, content := range cases {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("%s: write config: %v", name, err)
		}
		if _, _, _, err := Load(path); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestOutputDirEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	override := t.TempDir()
	t.Setenv("CAPGEN_OUTPUT_DIR", override)

	cfg, _, _, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.OutputDir != override {
		t.Fatalf("output dir = %q, want %q", cfg.Paths.OutputDir, override)
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if !exists {
		t.Fatal("sample config not found after write")
	}
	if _, err := cfg.StyleConfig(); err != nil {
		t.Fatalf("sample config style invalid: %v", err)
	}
}

func TestStyleConfigPresetPerStyle(t *testing.T) {
	cfg := Default()
	cfg.Captions.Style = "karaoke"
	styleCfg, err := cfg.StyleConfig()
	if err != nil {
		t.Fatalf("StyleConfig returned error: %v", err)
	}
	if styleCfg.Style != caption.StyleKaraoke || styleCfg.MinDurationSec != 0.1 {
		t.Fatalf("karaoke preset not applied: %+v", styleCfg)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/captions")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if got != filepath.Join(home, "captions") {
		t.Fatalf("ExpandPath = %q", got)
	}

	abs, err := ExpandPath("/var/tmp/out")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if abs != "/var/tmp/out" {
		t.Fatalf("absolute path changed: %q", abs)
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := Default()
	cfg.Paths.StagingDir = filepath.Join(base, "staging")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.CacheDir = filepath.Join(base, "cache")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories returned error: %v", err)
	}
	for _, dir := range []string{cfg.Paths.StagingDir, cfg.Paths.LogDir, cfg.Paths.CacheDir} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Fatalf("directory %s not created: %v", dir, err)
		}
	}
}
