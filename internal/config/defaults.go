package config

const (
	defaultStyle               = "traditional"
	defaultGapFrames           = 2
	defaultFrameRate           = 24.0
	defaultConfidenceThreshold = 0.7
	defaultWhisperModel        = "large-v3"
	defaultWhisperBeamSize     = 5
	defaultStagingDir          = "~/.local/share/capgen/staging"
	defaultLogDir              = "~/.local/share/capgen/logs"
	defaultCacheDir            = "~/.local/share/capgen/cache"
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
)

// Default returns a Config populated with repository defaults. Caption
// constraint fields left at zero fall back to the selected style's preset.
func Default() Config {
	return Config{
		Captions: Captions{
			Style:               defaultStyle,
			GapFrames:           defaultGapFrames,
			FrameRate:           defaultFrameRate,
			ConfidenceThreshold: defaultConfidenceThreshold,
		},
		Whisper: Whisper{
			Model:    defaultWhisperModel,
			BeamSize: defaultWhisperBeamSize,
		},
		Paths: Paths{
			StagingDir: defaultStagingDir,
			LogDir:     defaultLogDir,
			CacheDir:   defaultCacheDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
