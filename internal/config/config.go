package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"capgen/internal/caption"
	"capgen/internal/srt"
)

//go:embed sample_config.toml
var sampleConfig string

// Captions contains the segmentation and serialization constraint values.
type Captions struct {
	Style                  string  `toml:"style"`
	MaxCharsPerLine        int     `toml:"max_chars_per_line"`
	MaxLines               int     `toml:"max_lines"`
	MinDurationSec         float64 `toml:"min_duration_s"`
	MaxDurationSec         float64 `toml:"max_duration_s"`
	WordsPerCaption        int     `toml:"words_per_caption"`
	GapFrames              int     `toml:"gap_frames"`
	FrameRate              float64 `toml:"frame_rate"`
	HighlightLowConfidence bool    `toml:"highlight_low_confidence"`
	ConfidenceThreshold    float64 `toml:"confidence_threshold"`
}

// Whisper contains transcription settings.
type Whisper struct {
	Model       string `toml:"model"`
	CUDAEnabled bool   `toml:"cuda_enabled"`
	Language    string `toml:"language"`
	BeamSize    int    `toml:"beam_size"`
}

// Paths contains directory configuration.
type Paths struct {
	OutputDir  string `toml:"output_dir"`
	StagingDir string `toml:"staging_dir"`
	LogDir     string `toml:"log_dir"`
	CacheDir   string `toml:"cache_dir"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for capgen.
type Config struct {
	Captions Captions `toml:"captions"`
	Whisper  Whisper  `toml:"whisper"`
	Paths    Paths    `toml:"paths"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/capgen/config.toml")
}

// Load locates, parses, and validates a configuration file. An empty path
// falls back to the default location; a missing file yields defaults.
// Returns the config, the resolved path, and whether the file existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if env := strings.TrimSpace(os.Getenv("CAPGEN_OUTPUT_DIR")); env != "" {
		cfg.Paths.OutputDir = env
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if strings.TrimSpace(path) == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return "", false, err
		}
		path = defaultPath
	} else {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		path = expanded
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return path, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	return path, true, nil
}

func (c *Config) expandPaths() error {
	for _, field := range []*string{
		&c.Paths.OutputDir,
		&c.Paths.StagingDir,
		&c.Paths.LogDir,
		&c.Paths.CacheDir,
	} {
		if strings.TrimSpace(*field) == "" {
			continue
		}
		expanded, err := ExpandPath(*field)
		if err != nil {
			return err
		}
		*field = expanded
	}
	return nil
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}

// EnsureDirectories creates the staging, log, and cache directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.StagingDir, c.Paths.LogDir, c.Paths.CacheDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure directory %s: %w", dir, err)
		}
	}
	return nil
}

// CreateSample writes the annotated sample configuration to path.
func CreateSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// StyleConfig converts the caption section into the segmenter's
// configuration, starting from the style preset and overlaying any
// explicitly set values.
func (c *Config) StyleConfig() (caption.StyleConfig, error) {
	style, err := caption.ParseStyle(c.Captions.Style)
	if err != nil {
		return caption.StyleConfig{}, err
	}
	sc := caption.DefaultStyleConfig(style)
	if c.Captions.MaxCharsPerLine > 0 {
		sc.MaxCharsPerLine = c.Captions.MaxCharsPerLine
	}
	if c.Captions.MaxLines > 0 {
		sc.MaxLines = c.Captions.MaxLines
	}
	if c.Captions.MinDurationSec > 0 {
		sc.MinDurationSec = c.Captions.MinDurationSec
	}
	if c.Captions.MaxDurationSec > 0 {
		sc.MaxDurationSec = c.Captions.MaxDurationSec
	}
	if c.Captions.WordsPerCaption > 0 {
		sc.WordsPerBlock = c.Captions.WordsPerCaption
	}
	return sc, nil
}

// SerializeOptions converts the caption section into serializer options.
func (c *Config) SerializeOptions() srt.Options {
	return srt.Options{
		GapFrames:              c.Captions.GapFrames,
		FrameRate:              c.Captions.FrameRate,
		HighlightLowConfidence: c.Captions.HighlightLowConfidence,
		ConfidenceThreshold:    c.Captions.ConfidenceThreshold,
	}
}
