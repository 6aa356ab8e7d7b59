package srt

import (
	"fmt"
	"strconv"
	"strings"

	"capgen/internal/caption"
)

// Options control serialization.
type Options struct {
	// GapFrames is the minimum silence between neighboring cues, in frames.
	GapFrames int
	// FrameRate converts GapFrames to seconds and sets the one-frame
	// minimum cue duration floor.
	FrameRate float64
	// HighlightLowConfidence wraps uncertain words in a visible marker.
	HighlightLowConfidence bool
	// ConfidenceThreshold is the flagging cutoff in [0, 1].
	ConfidenceThreshold float64
}

// Validate ensures the options are usable.
func (o Options) Validate() error {
	if o.FrameRate <= 0 {
		return fmt.Errorf("%w: frame_rate must be positive, got %.3f", caption.ErrInvalidInput, o.FrameRate)
	}
	if o.GapFrames < 0 {
		return fmt.Errorf("%w: gap_frames must not be negative, got %d", caption.ErrInvalidInput, o.GapFrames)
	}
	if o.ConfidenceThreshold < 0 || o.ConfidenceThreshold > 1 {
		return fmt.Errorf("%w: confidence_threshold %.3f outside [0,1]", caption.ErrInvalidInput, o.ConfidenceThreshold)
	}
	return nil
}

// GapSeconds returns the configured inter-cue gap in seconds.
func (o Options) GapSeconds() float64 {
	return float64(o.GapFrames) / o.FrameRate
}

// Serialize renders caption blocks as SRT text. Indices are renumbered
// densely from 1. An empty block slice produces empty text, not an error.
// The input blocks are not mutated.
func Serialize(blocks []caption.Block, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	if len(blocks) == 0 {
		return "", nil
	}

	adjusted := make([]caption.Block, len(blocks))
	copy(adjusted, blocks)
	enforceGaps(adjusted, opts.GapSeconds(), 1/opts.FrameRate)

	entries := make([]string, 0, len(adjusted))
	for i, block := range adjusted {
		var b strings.Builder
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteByte('\n')
		b.WriteString(FormatTimestamp(block.Start))
		b.WriteString(" --> ")
		b.WriteString(FormatTimestamp(block.End))
		for _, line := range renderLines(block, opts) {
			b.WriteByte('\n')
			b.WriteString(line)
		}
		entries = append(entries, b.String())
	}
	return strings.Join(entries, "\n\n") + "\n", nil
}

// enforceGaps separates neighboring blocks by at least gap seconds. The
// earlier block's end shrinks; only when shrinking would leave it shorter
// than one frame does the later block's start move forward instead. Order
// is never changed and no block ends up with end <= start.
func enforceGaps(blocks []caption.Block, gap, oneFrame float64) {
	for i := 0; i+1 < len(blocks); i++ {
		cur := &blocks[i]
		next := &blocks[i+1]
		if next.Start-cur.End >= gap {
			continue
		}
		shrunk := next.Start - gap
		if shrunk-cur.Start >= oneFrame {
			cur.End = shrunk
			continue
		}
		cur.End = cur.Start + oneFrame
		next.Start = cur.End + gap
		if next.End < next.Start+oneFrame {
			next.End = next.Start + oneFrame
		}
	}
}

// renderLines applies confidence flagging to a block's wrapped lines.
// Wrapped lines join words with single spaces, so words map onto lines by
// field position; the decoration pass therefore cannot move a line break.
func renderLines(block caption.Block, opts Options) []string {
	if !opts.HighlightLowConfidence {
		return block.Lines
	}
	lines := make([]string, 0, len(block.Lines))
	wordIndex := 0
	for _, line := range block.Lines {
		fields := strings.Fields(line)
		for i := range fields {
			if wordIndex >= len(block.Words) {
				break
			}
			if block.Words[wordIndex].Confidence < opts.ConfidenceThreshold {
				fields[i] = "[" + fields[i] + "?]"
			}
			wordIndex++
		}
		lines = append(lines, strings.Join(fields, " "))
	}
	return lines
}
