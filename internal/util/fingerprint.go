package util

import (
	"fmt"
	"hash/crc32"
	"io"
	"os"
)

// CalculateFileFingerprint returns a CRC32 of the whole file. Used to skip
// reloads when a write event leaves the content unchanged.
func CalculateFileFingerprint(filepath string) (string, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hash := crc32.NewIEEE()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("failed to read %s: %w", filepath, err)
	}

	return fmt.Sprintf("%08x", hash.Sum32()), nil
}
