// Package srt renders caption blocks as SubRip text and parses/validates
// existing SRT files. Serialization enforces the configured minimum gap
// between neighboring cues and applies confidence flagging as a final
// text-decoration pass that never moves block boundaries.
package srt
