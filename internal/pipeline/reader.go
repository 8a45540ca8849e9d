package pipeline

import (
	"fmt"
	"io"
	"os"
)

// DefaultMaxScriptBytes caps how much scripture a single script may hold
const DefaultMaxScriptBytes = 4 << 20

// Reader loads DivinePL scripts from disk
type Reader struct {
	maxBytes int64
}

// NewReader creates a reader with the given size cap. A non-positive cap
// falls back to DefaultMaxScriptBytes.
func NewReader(maxBytes int64) *Reader {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxScriptBytes
	}
	return &Reader{maxBytes: maxBytes}
}

// ReadScript reads the script at path. Failures here surface before any
// classification begins.
func (r *Reader) ReadScript(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("Failed to read the scripture: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("Failed to read the scripture: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("Failed to read the scripture: %s is a directory", path)
	}
	if info.Size() > r.maxBytes {
		return "", fmt.Errorf("Failed to read the scripture: %s exceeds %d bytes", path, r.maxBytes)
	}

	data, err := io.ReadAll(io.LimitReader(f, r.maxBytes))
	if err != nil {
		return "", fmt.Errorf("Failed to read the scripture: %w", err)
	}
	return string(data), nil
}
