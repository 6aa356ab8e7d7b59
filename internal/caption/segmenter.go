package caption

import (
	"strings"
	"unicode/utf8"
)

// pauseBreakSec is the inter-token silence treated as a natural phrase
// boundary by the traditional style.
const pauseBreakSec = 0.5

// sentencePunctuation closes a traditional block when the last absorbed word
// ends with one of these.
const sentencePunctuation = ".!?"

// Block is one displayable subtitle entry.
type Block struct {
	// Index is the 1-based display order.
	Index int
	Start float64 // seconds
	End   float64 // seconds
	// Lines holds the wrapped text, top to bottom.
	Lines []string
	// Words retains the constituent tokens for confidence flagging.
	Words []WordToken
}

// Duration returns the block's span in seconds.
func (b Block) Duration() float64 {
	return b.End - b.Start
}

// Text returns the block's lines joined with newlines.
func (b Block) Text() string {
	return strings.Join(b.Lines, "\n")
}

// Segment groups a time-ordered token sequence into caption blocks using the
// style's constraints. Empty input yields empty output. Malformed tokens or
// configuration return an error wrapping ErrInvalidInput.
func Segment(tokens []WordToken, cfg StyleConfig) ([]Block, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateTokens(tokens); err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, nil
	}

	acc := newAccumulator(cfg)
	var blocks []Block
	for _, tok := range tokens {
		if acc.wouldClose(tok) {
			blocks = append(blocks, acc.flush())
		}
		acc.absorb(tok)
	}
	blocks = append(blocks, acc.flush())

	widenToMinDuration(blocks, cfg.MinDurationSec)
	for i := range blocks {
		blocks[i].Index = i + 1
	}
	return blocks, nil
}

// widenToMinDuration stretches under-duration block ends forward, capped at
// the next block's start so the serializer's gap enforcement stays the only
// place that separates neighbors. The final block has no cap.
func widenToMinDuration(blocks []Block, minDuration float64) {
	for i := range blocks {
		if blocks[i].Duration() >= minDuration {
			continue
		}
		widened := blocks[i].Start + minDuration
		if i+1 < len(blocks) && widened > blocks[i+1].Start {
			widened = blocks[i+1].Start
		}
		if widened > blocks[i].End {
			blocks[i].End = widened
		}
	}
}

// accumulator gathers tokens for the block under construction. The closing
// policy lives in wouldClose so each rule stays independently testable.
type accumulator struct {
	cfg   StyleConfig
	words []WordToken
	texts []string
}

func newAccumulator(cfg StyleConfig) *accumulator {
	return &accumulator{cfg: cfg}
}

func (a *accumulator) empty() bool {
	return len(a.words) == 0
}

func (a *accumulator) start() float64 {
	return a.words[0].Start
}

func (a *accumulator) end() float64 {
	return a.words[len(a.words)-1].End
}

func (a *accumulator) duration() float64 {
	return a.end() - a.start()
}

// wouldClose decides whether the current block must close before absorbing
// next. Rule order: the max-duration cap forces a close regardless of
// saturation; saturation and natural breaks apply only once the block meets
// the minimum duration, because an under-duration caption is worse than an
// over-length one.
func (a *accumulator) wouldClose(next WordToken) bool {
	if a.empty() {
		return false
	}
	if a.exceedsMaxDuration(next) {
		return true
	}
	if a.duration() < a.cfg.MinDurationSec {
		return false
	}
	return a.saturatedWith(next) || a.naturalBreakBefore(next)
}

// exceedsMaxDuration reports whether absorbing next would push the block's
// span past the maximum duration.
func (a *accumulator) exceedsMaxDuration(next WordToken) bool {
	return next.End-a.start() > a.cfg.MaxDurationSec
}

// saturatedWith reports whether absorbing next would exceed what the style
// allows in one block.
func (a *accumulator) saturatedWith(next WordToken) bool {
	switch a.cfg.Style {
	case StyleKaraoke:
		return true
	case StyleSocial:
		return len(a.words) >= a.cfg.WordsPerBlock
	default:
		texts := append(append([]string(nil), a.texts...), next.Text)
		return wrappedLineCount(texts, a.cfg.MaxCharsPerLine) > a.cfg.MaxLines
	}
}

// naturalBreakBefore reports a preferred phrase boundary between the last
// absorbed token and next: sentence-ending punctuation or a long pause.
// Traditional style only.
func (a *accumulator) naturalBreakBefore(next WordToken) bool {
	if a.cfg.Style != StyleTraditional {
		return false
	}
	last := strings.TrimSpace(a.texts[len(a.texts)-1])
	if last != "" {
		r, _ := utf8.DecodeLastRuneInString(last)
		if strings.ContainsRune(sentencePunctuation, r) {
			return true
		}
	}
	return next.Start-a.end() > pauseBreakSec
}

func (a *accumulator) absorb(tok WordToken) {
	a.words = append(a.words, tok)
	a.texts = append(a.texts, tok.Text)
}

// flush emits the accumulated tokens as a block and resets the accumulator.
// Line wrapping always works on raw word text; confidence decoration happens
// at serialization time so it cannot influence the breaks.
func (a *accumulator) flush() Block {
	var lines []string
	if a.cfg.singleLine() {
		lines = []string{strings.Join(a.texts, " ")}
	} else {
		lines = WrapLines(a.texts, a.cfg.MaxCharsPerLine)
	}
	block := Block{
		Start: a.start(),
		End:   a.end(),
		Lines: lines,
		Words: a.words,
	}
	a.words = nil
	a.texts = nil
	return block
}
