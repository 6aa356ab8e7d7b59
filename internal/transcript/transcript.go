package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"capgen/internal/caption"
)

// Word is one recognized word within a segment. Start, End, and Score are
// pointers because WhisperX omits timing for number-only words and scores
// are absent in some output variants.
type Word struct {
	Word  string   `json:"word"`
	Start *float64 `json:"start,omitempty"`
	End   *float64 `json:"end,omitempty"`
	Score *float64 `json:"score,omitempty"`
}

// Segment is one transcription segment with its word list.
type Segment struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Words []Word  `json:"words"`
}

// Payload is the top-level transcription result.
type Payload struct {
	Language string    `json:"language,omitempty"`
	Segments []Segment `json:"segments"`
}

// Load reads and parses a transcription JSON file.
func Load(path string) (*Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	return Parse(data)
}

// Parse parses transcription JSON content.
func Parse(data []byte) (*Payload, error) {
	var payload Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse transcript json: %w", err)
	}
	return &payload, nil
}

// Tokens flattens the payload into the segmenter's input sequence. Words
// without timing or text are dropped, missing scores default to full
// confidence, and the occasional sub-millisecond overlap the aligner emits
// is snapped to the previous word's end so the sequence satisfies the
// segmenter's input contract.
func (p *Payload) Tokens() []caption.WordToken {
	if p == nil {
		return nil
	}
	var tokens []caption.WordToken
	for _, seg := range p.Segments {
		for _, w := range seg.Words {
			text := strings.TrimSpace(w.Word)
			if text == "" || w.Start == nil || w.End == nil {
				continue
			}
			tok := caption.WordToken{
				Text:       text,
				Start:      *w.Start,
				End:        *w.End,
				Confidence: 1.0,
			}
			if w.Score != nil {
				tok.Confidence = *w.Score
			}
			if n := len(tokens); n > 0 && tok.Start < tokens[n-1].End {
				tok.Start = tokens[n-1].End
			}
			if tok.End <= tok.Start {
				continue
			}
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// WordCount returns the number of timed words across all segments.
func (p *Payload) WordCount() int {
	return len(p.Tokens())
}
