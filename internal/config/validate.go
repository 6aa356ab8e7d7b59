package config

import (
	"errors"
	"fmt"
	"strings"

	"capgen/internal/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCaptions(); err != nil {
		return err
	}
	if err := c.validateWhisper(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateCaptions() error {
	// The style preset overlay performs the structural checks
	// (positive limits, min < max, known style).
	styleCfg, err := c.StyleConfig()
	if err != nil {
		return err
	}
	if err := styleCfg.Validate(); err != nil {
		return err
	}
	if c.Captions.GapFrames < 0 {
		return errors.New("captions.gap_frames must not be negative")
	}
	if c.Captions.FrameRate <= 0 {
		return errors.New("captions.frame_rate must be positive")
	}
	if c.Captions.ConfidenceThreshold < 0 || c.Captions.ConfidenceThreshold > 1 {
		return errors.New("captions.confidence_threshold must be between 0 and 1")
	}
	return nil
}

func (c *Config) validateWhisper() error {
	if strings.TrimSpace(c.Whisper.Model) == "" {
		return errors.New("whisper.model must be set")
	}
	if c.Whisper.BeamSize < 1 {
		return errors.New("whisper.beam_size must be at least 1")
	}
	normalized, err := language.Normalize(c.Whisper.Language)
	if err != nil {
		return fmt.Errorf("whisper.language: %w", err)
	}
	c.Whisper.Language = normalized
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}
