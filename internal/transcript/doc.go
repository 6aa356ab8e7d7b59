// Package transcript defines the JSON contract with the transcription
// collaborator: WhisperX-style payloads of segments holding word-level
// timestamps and confidence scores. Flattening a payload yields the token
// sequence the caption segmenter consumes.
package transcript
