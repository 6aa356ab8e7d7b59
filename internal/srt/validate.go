package srt

import (
	"fmt"
	"os"
)

// ValidateFile checks an SRT file for format issues. Returns a list of
// issues found; an empty slice means validation passed.
func ValidateFile(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return []string{fmt.Sprintf("read_error: %v", err)}
	}
	return ValidateContent(data)
}

// ValidateContent checks SRT content for structural issues: empty files,
// unparsable cues, empty cue text, non-positive durations, and overlapping
// or out-of-order neighbors.
func ValidateContent(data []byte) []string {
	var issues []string

	if CountCues(data) == 0 {
		return []string{"empty_subtitle_file"}
	}

	cues, err := ParseCues(data)
	if err != nil {
		return append(issues, fmt.Sprintf("parse_error: %v", err))
	}

	for i, cue := range cues {
		if len(cue.Lines) == 0 {
			issues = append(issues, fmt.Sprintf("cue %d: no text", i+1))
		}
		if cue.End <= cue.Start {
			issues = append(issues, fmt.Sprintf("cue %d: non-positive duration (%s --> %s)",
				i+1, FormatTimestamp(cue.Start), FormatTimestamp(cue.End)))
		}
		if i > 0 && cue.Start < cues[i-1].End {
			issues = append(issues, fmt.Sprintf("cue %d: starts at %s before cue %d ends at %s",
				i+1, FormatTimestamp(cue.Start), i, FormatTimestamp(cues[i-1].End)))
		}
	}
	return issues
}
