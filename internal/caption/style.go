package caption

import (
	"fmt"
	"strings"
)

// Style selects the segmentation policy for caption blocks.
type Style string

const (
	// StyleTraditional produces multi-line captions that close at sentence
	// punctuation and long pauses.
	StyleTraditional Style = "traditional"
	// StyleSocial produces short single-line captions with a fixed word cap,
	// the short-form-video look.
	StyleSocial Style = "social"
	// StyleKaraoke produces one block per word for word-by-word display.
	StyleKaraoke Style = "karaoke"
)

// Styles lists the supported styles in display order.
func Styles() []Style {
	return []Style{StyleTraditional, StyleSocial, StyleKaraoke}
}

// ParseStyle maps a user-supplied style name to a Style tag.
func ParseStyle(value string) (Style, error) {
	switch Style(strings.ToLower(strings.TrimSpace(value))) {
	case StyleTraditional:
		return StyleTraditional, nil
	case StyleSocial:
		return StyleSocial, nil
	case StyleKaraoke:
		return StyleKaraoke, nil
	default:
		return "", fmt.Errorf("%w: unknown caption style %q", ErrInvalidInput, value)
	}
}

// StyleConfig carries the active constraint values for one segmentation run.
// Styles differ only in these thresholds plus whether text wraps to lines;
// DefaultStyleConfig returns the built-in preset for each style.
type StyleConfig struct {
	Style           Style
	MaxCharsPerLine int
	MaxLines        int
	MinDurationSec  float64
	MaxDurationSec  float64
	// WordsPerBlock caps block size for the social style. Ignored by the
	// other styles.
	WordsPerBlock int
}

// DefaultStyleConfig returns the preset constraints for a style.
func DefaultStyleConfig(style Style) StyleConfig {
	switch style {
	case StyleSocial:
		return StyleConfig{
			Style:           StyleSocial,
			MaxCharsPerLine: 24,
			MaxLines:        1,
			MinDurationSec:  0.5,
			MaxDurationSec:  3.0,
			WordsPerBlock:   4,
		}
	case StyleKaraoke:
		return StyleConfig{
			Style:           StyleKaraoke,
			MaxCharsPerLine: 42,
			MaxLines:        1,
			MinDurationSec:  0.1,
			MaxDurationSec:  7.0,
			WordsPerBlock:   1,
		}
	default:
		return StyleConfig{
			Style:           StyleTraditional,
			MaxCharsPerLine: 42,
			MaxLines:        2,
			MinDurationSec:  1.0,
			MaxDurationSec:  7.0,
			WordsPerBlock:   4,
		}
	}
}

// Validate ensures the configuration values are usable.
func (c StyleConfig) Validate() error {
	if _, err := ParseStyle(string(c.Style)); err != nil {
		return err
	}
	if c.MaxCharsPerLine <= 0 {
		return fmt.Errorf("%w: max_chars_per_line must be positive, got %d", ErrInvalidInput, c.MaxCharsPerLine)
	}
	if c.MaxLines < 1 {
		return fmt.Errorf("%w: max_lines must be at least 1, got %d", ErrInvalidInput, c.MaxLines)
	}
	if c.MinDurationSec <= 0 {
		return fmt.Errorf("%w: min_duration_s must be positive, got %.3f", ErrInvalidInput, c.MinDurationSec)
	}
	if c.MaxDurationSec <= c.MinDurationSec {
		return fmt.Errorf("%w: max_duration_s %.3f must exceed min_duration_s %.3f",
			ErrInvalidInput, c.MaxDurationSec, c.MinDurationSec)
	}
	if c.Style == StyleSocial && c.WordsPerBlock < 1 {
		return fmt.Errorf("%w: words_per_caption must be at least 1, got %d", ErrInvalidInput, c.WordsPerBlock)
	}
	return nil
}

// singleLine reports whether the style renders blocks as exactly one line.
func (c StyleConfig) singleLine() bool {
	return c.Style != StyleTraditional
}
