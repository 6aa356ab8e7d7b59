package caption

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput marks malformed token sequences and out-of-range
// configuration values. Callers classify failures with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// WordToken is one recognized spoken word with timing and a confidence
// score, as produced by the transcription engine.
type WordToken struct {
	Text       string
	Start      float64 // seconds
	End        float64 // seconds
	Confidence float64 // [0, 1]
}

// Duration returns the token's own span in seconds.
func (w WordToken) Duration() float64 {
	return w.End - w.Start
}

// ValidateTokens checks that a token sequence satisfies the segmenter's
// input contract: non-empty text, sane per-token timing, confidence within
// [0, 1], and a time-sorted, non-overlapping sequence.
func ValidateTokens(tokens []WordToken) error {
	for i, tok := range tokens {
		if strings.TrimSpace(tok.Text) == "" {
			return fmt.Errorf("%w: token %d has empty text", ErrInvalidInput, i)
		}
		if tok.Start < 0 {
			return fmt.Errorf("%w: token %d has negative start %.3f", ErrInvalidInput, i, tok.Start)
		}
		if tok.End <= tok.Start {
			return fmt.Errorf("%w: token %d has end %.3f <= start %.3f", ErrInvalidInput, i, tok.End, tok.Start)
		}
		if tok.Confidence < 0 || tok.Confidence > 1 {
			return fmt.Errorf("%w: token %d has confidence %.3f outside [0,1]", ErrInvalidInput, i, tok.Confidence)
		}
		if i > 0 && tok.Start < tokens[i-1].End {
			return fmt.Errorf("%w: token %d starts at %.3f before token %d ends at %.3f",
				ErrInvalidInput, i, tok.Start, i-1, tokens[i-1].End)
		}
	}
	return nil
}
