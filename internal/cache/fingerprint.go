package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// fingerprintHeadBytes bounds how much of the file is hashed. Size and
// mtime participate too, so a full-content hash buys little.
const fingerprintHeadBytes = 8 << 20

// Fingerprint computes a stable identity for a media file from its size,
// modification time, and a hash of its head bytes.
func Fingerprint(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat media: %w", err)
	}
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open media: %w", err)
	}
	defer file.Close()

	hash := sha256.New()
	if _, err := io.CopyN(hash, file, fingerprintHeadBytes); err != nil && err != io.EOF {
		return "", fmt.Errorf("hash media: %w", err)
	}
	fmt.Fprintf(hash, "|%d|%d", info.Size(), info.ModTime().UnixNano())
	return hex.EncodeToString(hash.Sum(nil)), nil
}
