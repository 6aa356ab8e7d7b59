package whisper

import "strconv"

// Config captures runtime settings for transcription runs.
type Config struct {
	// Model is the WhisperX model to use (e.g., "large-v3").
	Model string
	// CUDAEnabled enables GPU acceleration.
	CUDAEnabled bool
	// Language forces a transcription language (ISO 639-1). Empty means
	// auto-detect.
	Language string
	// BeamSize overrides the decoder beam size when positive.
	BeamSize int
}

func (c Config) model() string {
	if c.Model != "" {
		return c.Model
	}
	return DefaultModel
}

func (c Config) beamSize() string {
	if c.BeamSize > 0 {
		return strconv.Itoa(c.BeamSize)
	}
	return DefaultBeamSize
}

// WhisperX configuration constants.
const (
	DefaultModel    = "large-v3"
	DefaultBeamSize = "5"
	CUDAIndexURL    = "https://download.pytorch.org/whl/cu128"
	PypiIndexURL    = "https://pypi.org/simple"
	BatchSize       = "4"
	Temperature     = "0.0"
	OutputFormat    = "json"
	CPUDevice       = "cpu"
	CUDADevice      = "cuda"
	CPUComputeType  = "float32"
)

// Command names for external tools.
const (
	UVXCommand    = "uvx"
	FFmpegCommand = "ffmpeg"
)
