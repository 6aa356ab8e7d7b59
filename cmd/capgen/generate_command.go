package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"capgen/internal/cache"
	"capgen/internal/caption"
	"capgen/internal/config"
	"capgen/internal/language"
	"capgen/internal/logging"
	"capgen/internal/srt"
	"capgen/internal/transcript"
	"capgen/internal/whisper"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var styleFlag string
	var outputFlag string
	var fpsFlag float64
	var languageFlag string
	var workDir string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "generate <media-or-transcript>",
		Short: "Generate an SRT subtitle file from a media file or transcript JSON",
		Long: strings.TrimSpace(`
Generate an SRT subtitle file. The input is either a media file (audio is
extracted with ffmpeg and transcribed with WhisperX) or a WhisperX word-level
transcript JSON, which skips transcription entirely.`),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("provide one input file. Example: capgen generate interview.mp4")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			source := strings.TrimSpace(args[0])
			if source == "" {
				return fmt.Errorf("input file path is required")
			}
			source, _ = filepath.Abs(source)
			info, err := os.Stat(source)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("input file %q not found", source)
				}
				return fmt.Errorf("stat input: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("input path %q is a directory", source)
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			if styleFlag != "" {
				cfg.Captions.Style = styleFlag
			}
			if fpsFlag > 0 {
				cfg.Captions.FrameRate = fpsFlag
			}
			if languageFlag != "" {
				normalized, err := language.Normalize(languageFlag)
				if err != nil {
					return err
				}
				cfg.Whisper.Language = normalized
			}

			styleCfg, err := cfg.StyleConfig()
			if err != nil {
				return err
			}
			opts := cfg.SerializeOptions()
			if err := opts.Validate(); err != nil {
				return err
			}

			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				LogDir: cfg.Paths.LogDir,
			})
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			logger = logger.With(logging.String("run_id", uuid.NewString()[:8]))

			payload, err := loadPayload(cmd.Context(), cfg, logger, source, workDir, noCache)
			if err != nil {
				return err
			}

			tokens := payload.Tokens()
			if len(tokens) == 0 {
				return fmt.Errorf("no speech found in %s", source)
			}
			logger.Info("transcript loaded",
				logging.Int("words", len(tokens)),
				logging.String("language", language.DisplayName(payload.Language)),
			)

			blocks, err := caption.Segment(tokens, styleCfg)
			if err != nil {
				return fmt.Errorf("segment captions: %w", err)
			}
			content, err := srt.Serialize(blocks, opts)
			if err != nil {
				return fmt.Errorf("serialize captions: %w", err)
			}

			outPath, err := resolveOutputPath(cfg, source, outputFlag)
			if err != nil {
				return err
			}
			if err := writeFileAtomic(outPath, []byte(content)); err != nil {
				return fmt.Errorf("write subtitle: %w", err)
			}

			if issues := srt.ValidateFile(outPath); len(issues) > 0 {
				for _, issue := range issues {
					logger.Warn("subtitle validation issue", logging.String("issue", issue))
				}
			}

			var duration time.Duration
			if n := len(blocks); n > 0 {
				duration = time.Duration(blocks[n-1].End * float64(time.Second))
			}
			logger.Info("subtitle generated",
				logging.String("path", outPath),
				logging.Int("blocks", len(blocks)),
				logging.String("style", string(styleCfg.Style)),
				logging.Duration("duration", duration.Round(time.Second)),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Generated subtitle: %s (blocks: %d, style: %s, duration: %s)\n",
				outPath, len(blocks), styleCfg.Style, duration.Round(time.Second))
			return nil
		},
	}

	cmd.Flags().StringVarP(&styleFlag, "style", "s", "", "Caption style: traditional, social, or karaoke (default from config)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output SRT path (default: alongside the input file)")
	cmd.Flags().Float64Var(&fpsFlag, "fps", 0, "Frame rate for gap calculation (default from config)")
	cmd.Flags().StringVarP(&languageFlag, "language", "l", "", "Transcription language code (default: auto-detect)")
	cmd.Flags().StringVar(&workDir, "work-dir", "", "Working directory for intermediate files (default: temporary directory under staging_dir)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Skip the transcript cache")

	return cmd
}

// loadPayload produces the word-level transcript for the input: directly for
// .json inputs, otherwise through the cache or a fresh ffmpeg+WhisperX run.
func loadPayload(ctx context.Context, cfg *config.Config, logger *slog.Logger, source, workDir string, noCache bool) (*transcript.Payload, error) {
	if strings.EqualFold(filepath.Ext(source), ".json") {
		return transcript.Load(source)
	}

	var fingerprint string
	var store *cache.Store
	if !noCache {
		var err error
		fingerprint, err = cache.Fingerprint(source)
		if err != nil {
			return nil, fmt.Errorf("fingerprint media: %w", err)
		}
		store, err = cache.Open(cfg.Paths.CacheDir)
		if err != nil {
			return nil, fmt.Errorf("open transcript cache: %w", err)
		}
		defer store.Close()

		entry, err := store.Lookup(ctx, fingerprint)
		if err != nil {
			return nil, err
		}
		if entry != nil {
			logger.Info("transcript cache hit",
				logging.String("model", entry.Model),
				logging.String("cached_at", entry.CreatedAt.Format(time.RFC3339)),
			)
			return transcript.Parse(entry.Payload)
		}
		logger.Debug("transcript cache miss")
	}

	data, payload, err := transcribeMedia(ctx, cfg, logger, source, workDir)
	if err != nil {
		return nil, err
	}
	if store != nil {
		entry := cache.Entry{
			Fingerprint: fingerprint,
			Language:    payload.Language,
			Model:       cfg.Whisper.Model,
			Payload:     data,
		}
		if err := store.Save(ctx, entry); err != nil {
			logger.Warn("transcript cache save failed", logging.Error(err))
		}
	}
	return payload, nil
}

// transcribeMedia extracts audio and runs WhisperX, returning the raw JSON
// and the parsed payload.
func transcribeMedia(ctx context.Context, cfg *config.Config, logger *slog.Logger, source, workDir string) ([]byte, *transcript.Payload, error) {
	workRoot := strings.TrimSpace(workDir)
	cleanupWorkDir := false
	if workRoot == "" {
		root := cfg.Paths.StagingDir
		if root == "" {
			root = os.TempDir()
		}
		if err := os.MkdirAll(root, 0o755); err != nil {
			return nil, nil, fmt.Errorf("ensure staging directory: %w", err)
		}
		tmp, err := os.MkdirTemp(root, "capgen-")
		if err != nil {
			return nil, nil, fmt.Errorf("create work directory: %w", err)
		}
		workRoot = tmp
		cleanupWorkDir = true
	}
	if err := os.MkdirAll(workRoot, 0o755); err != nil {
		return nil, nil, fmt.Errorf("ensure work directory: %w", err)
	}
	if cleanupWorkDir {
		defer os.RemoveAll(workRoot)
	}

	service := whisper.NewService(whisper.Config{
		Model:       cfg.Whisper.Model,
		CUDAEnabled: cfg.Whisper.CUDAEnabled,
		Language:    cfg.Whisper.Language,
		BeamSize:    cfg.Whisper.BeamSize,
	})

	baseName := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	wavPath := filepath.Join(workRoot, baseName+".wav")
	logger.Info("extracting audio", logging.String("source", source))
	if err := service.ExtractAudio(ctx, source, wavPath); err != nil {
		return nil, nil, err
	}

	logger.Info("transcribing",
		logging.String("model", service.Model()),
		logging.String("language", language.DisplayName(cfg.Whisper.Language)),
	)
	started := time.Now()
	jsonPath, err := service.Transcribe(ctx, wavPath, workRoot)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("transcription finished", logging.Duration("elapsed", time.Since(started).Round(time.Second)))

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, nil, fmt.Errorf("read transcription output: %w", err)
	}
	payload, err := transcript.Parse(data)
	if err != nil {
		return nil, nil, err
	}
	return data, payload, nil
}

func resolveOutputPath(cfg *config.Config, source, outputFlag string) (string, error) {
	if out := strings.TrimSpace(outputFlag); out != "" {
		return filepath.Abs(out)
	}
	baseName := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	dir := cfg.Paths.OutputDir
	if dir == "" {
		dir = filepath.Dir(source)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("ensure output directory: %w", err)
	}
	return filepath.Join(dir, baseName+".srt"), nil
}

// writeFileAtomic writes via a temp file and rename so a failed run leaves
// no partial subtitle behind.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".capgen-*.srt")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
