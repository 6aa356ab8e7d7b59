// Package caption groups word-level transcription tokens into subtitle
// blocks. The segmenter is a pure transformation: it walks a time-ordered
// token sequence, accumulates words into the current block, and closes the
// block when the active style's constraints say so. Rendering the blocks to
// SRT text lives in the srt package.
package caption
