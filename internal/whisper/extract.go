package whisper

// buildExtractArgs builds the ffmpeg arguments that turn the first audio
// stream of a media file into a mono 16kHz WAV suitable for WhisperX.
func buildExtractArgs(source, dest string) []string {
	return []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", source,
		"-map", "0:a:0",
		"-vn",
		"-sn",
		"-dn",
		"-ac", "1",
		"-ar", "16000",
		"-c:a", "pcm_s16le",
		dest,
	}
}
