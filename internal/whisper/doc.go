// Package whisper shells out to a WhisperX installation (via uvx) to
// produce word-level transcription JSON. It is thin orchestration around
// two external tools, ffmpeg and whisperx; no caption logic lives here.
package whisper
