package caption

import (
	"errors"
	"testing"
)

func TestParseStyle(t *testing.T) {
	cases := map[string]Style{
		"traditional": StyleTraditional,
		"Social":      StyleSocial,
		" KARAOKE ":   StyleKaraoke,
	}
	for input, want := range cases {
		got, err := ParseStyle(input)
		if err != nil {
			t.Fatalf("ParseStyle(%q) returned error: %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseStyle(%q) = %q, want %q", input, got, want)
		}
	}
	if _, err := ParseStyle("cinematic"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown style, got %v", err)
	}
}

func TestDefaultStyleConfigsValidate(t *testing.T) {
	for _, style := range Styles() {
		cfg := DefaultStyleConfig(style)
		if cfg.Style != style {
			t.Fatalf("preset for %q carries style %q", style, cfg.Style)
		}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("preset for %q fails validation: %v", style, err)
		}
	}
}

func TestStyleConfigValidateRejectsBadValues(t *testing.T) {
	base := DefaultStyleConfig(StyleTraditional)

	cases := map[string]func(*StyleConfig){
		"unknown style":     func(c *StyleConfig) { c.Style = "banner" },
		"zero width":        func(c *StyleConfig) { c.MaxCharsPerLine = 0 },
		"zero lines":        func(c *StyleConfig) { c.MaxLines = 0 },
		"zero min duration": func(c *StyleConfig) { c.MinDurationSec = 0 },
		"max below min":     func(c *StyleConfig) { c.MaxDurationSec = c.MinDurationSec / 2 },
	}
	for name, mutate := range cases {
		cfg := base
		mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}

	social := DefaultStyleConfig(StyleSocial)
	social.WordsPerBlock = 0
	if err := social.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("social with zero word cap: expected ErrInvalidInput, got %v", err)
	}
}

func TestValidateTokensOrdering(t *testing.T) {
	good := []WordToken{
		{Text: "a", Start: 0, End: 0.5, Confidence: 1},
		{Text: "b", Start: 0.5, End: 1.0, Confidence: 0.3},
	}
	if err := ValidateTokens(good); err != nil {
		t.Fatalf("valid tokens rejected: %v", err)
	}
	if err := ValidateTokens(nil); err != nil {
		t.Fatalf("empty sequence rejected: %v", err)
	}

	overlapping := []WordToken{
		{Text: "a", Start: 0, End: 1, Confidence: 1},
		{Text: "b", Start: 0.9, End: 2, Confidence: 1},
	}
	if err := ValidateTokens(overlapping); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for overlap, got %v", err)
	}
}
