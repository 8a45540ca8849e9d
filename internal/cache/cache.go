// Package cache stores confession reports so unchanged scripts are not
// re-confessed. Keys are derived from script content, not paths: edits
// invalidate naturally and renames stay warm.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for report caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// ReportKey generates a cache key from script content
func ReportKey(content string) string {
	hash := sha256.Sum256([]byte(content))
	return "divinepl:v1:" + hex.EncodeToString(hash[:])
}
