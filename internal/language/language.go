package language

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Normalize validates a user-supplied language code and returns its base
// ISO 639-1 form (e.g. "SV" -> "sv", "swe" -> "sv"). Empty input stays
// empty, meaning auto-detect.
func Normalize(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", nil
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", fmt.Errorf("unknown language code %q", code)
	}
	base, _ := tag.Base()
	return base.String(), nil
}

// DisplayName returns the English name for a language code, falling back to
// the code itself when it cannot be parsed. Empty input reads as
// auto-detect.
func DisplayName(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return "auto-detect"
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}
