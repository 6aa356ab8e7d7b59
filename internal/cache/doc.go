// Package cache persists transcription results keyed by a media file
// fingerprint, so re-running generation on unchanged media skips the
// expensive WhisperX pass. Storage is a single SQLite database guarded by a
// file lock against concurrent writers from other processes.
package cache
