package srt

import (
	"fmt"
	"strconv"
	"strings"
)

// Cue is one parsed SRT entry.
type Cue struct {
	Index int
	Start float64 // seconds
	End   float64 // seconds
	Lines []string
}

// Duration returns the cue's span in seconds.
func (c Cue) Duration() float64 {
	return c.End - c.Start
}

// Text returns the cue's lines joined with newlines.
func (c Cue) Text() string {
	return strings.Join(c.Lines, "\n")
}

// ParseCues parses SRT content into cues. Blocks without a timestamp line
// fail the parse; a missing or non-numeric index line is tolerated because
// ill-formed files are common in the wild.
func ParseCues(data []byte) ([]Cue, error) {
	normalized := strings.ReplaceAll(string(data), "\r\n", "\n")
	trimmed := strings.TrimSpace(normalized)
	if trimmed == "" {
		return nil, nil
	}

	blocks := strings.Split(trimmed, "\n\n")
	cues := make([]Cue, 0, len(blocks))
	for blockNum, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		cue, err := parseCueBlock(block)
		if err != nil {
			return nil, fmt.Errorf("cue %d: %w", blockNum+1, err)
		}
		if cue.Index == 0 {
			cue.Index = len(cues) + 1
		}
		cues = append(cues, cue)
	}
	return cues, nil
}

func parseCueBlock(block string) (Cue, error) {
	lines := strings.Split(block, "\n")
	var cue Cue

	pos := 0
	if pos < len(lines) {
		if index, err := strconv.Atoi(strings.TrimSpace(lines[pos])); err == nil {
			cue.Index = index
			pos++
		}
	}
	if pos >= len(lines) || !strings.Contains(lines[pos], "-->") {
		return Cue{}, fmt.Errorf("missing timestamp line")
	}
	parts := strings.Split(lines[pos], "-->")
	if len(parts) != 2 {
		return Cue{}, fmt.Errorf("malformed timestamp line %q", lines[pos])
	}
	start, err := ParseTimestamp(parts[0])
	if err != nil {
		return Cue{}, err
	}
	end, err := ParseTimestamp(parts[1])
	if err != nil {
		return Cue{}, err
	}
	cue.Start = start
	cue.End = end
	pos++

	for _, line := range lines[pos:] {
		if trimmed := strings.TrimRight(line, " \t"); trimmed != "" {
			cue.Lines = append(cue.Lines, trimmed)
		}
	}
	return cue, nil
}

// CountCues counts non-empty cue blocks without a full parse.
func CountCues(data []byte) int {
	content := strings.TrimSpace(strings.ReplaceAll(string(data), "\r\n", "\n"))
	if content == "" {
		return 0
	}
	count := 0
	for _, block := range strings.Split(content, "\n\n") {
		if strings.TrimSpace(block) != "" {
			count++
		}
	}
	return count
}

// Bounds returns the first start and last end across cues. Zero values for
// an empty slice.
func Bounds(cues []Cue) (first, last float64) {
	for i, cue := range cues {
		if i == 0 || cue.Start < first {
			first = cue.Start
		}
		if cue.End > last {
			last = cue.End
		}
	}
	return first, last
}
